package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"coursedeck/internal/usecase"
	"coursedeck/pkg/jwt"
	"coursedeck/pkg/logger"
	"coursedeck/pkg/middleware"
	"coursedeck/pkg/session"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type NotificationHandler struct {
	notificationUseCase usecase.NotificationUseCase
	redisClient         *redis.Client
	jwtService          *jwt.Service
	sessions            session.Store
	logger              *logger.Logger
}

func NewNotificationHandler(notificationUseCase usecase.NotificationUseCase, redisClient *redis.Client, jwtService *jwt.Service, sessions session.Store, logger *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
		redisClient:         redisClient,
		jwtService:          jwtService,
		sessions:            sessions,
		logger:              logger,
	}
}

// List godoc
// @Summary      List notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]string
// @Router       /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	notifications, err := h.notificationUseCase.List(c.Request.Context(), sess)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	unread := 0
	for _, n := range notifications {
		if !n.IsRead {
			unread++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"count":         len(notifications),
		"unread":        unread,
	})
}

// MarkRead godoc
// @Summary      Mark a notification read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Notification ID"
// @Success      200  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if err := h.notificationUseCase.MarkRead(c.Request.Context(), sess, c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked read"})
}

// HandleWebSocket streams live notifications over a WebSocket. Browsers
// cannot set an Authorization header on the upgrade request, so the token
// arrives as a query parameter instead. The session record is resolved
// before upgrading, so a logged-out token cannot open a stream even while
// the JWT is still unexpired.
func (h *NotificationHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	sess, err := h.sessions.Get(c.Request.Context(), claims.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
		} else {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Session lookup failed"})
		}
		return
	}
	userID := sess.UserID

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade connection to WebSocket: %v", err)
		return
	}
	defer conn.Close()

	h.logger.Info("WebSocket connected for user %s", userID)

	ctx := c.Request.Context()
	pubsub := h.redisClient.Subscribe(ctx, usecase.Channel(userID))
	defer pubsub.Close()

	redisChannel := pubsub.Channel()
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			case msg := <-redisChannel:
				if msg == nil {
					continue
				}
				if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
					h.logger.Error("Failed to write WebSocket message: %v", err)
					return
				}
			}
		}
	}()

	for {
		messageType, _, err := conn.ReadMessage()
		if err != nil {
			h.logger.Warn("WebSocket read error: %v", err)
			break
		}
		if messageType == websocket.CloseMessage {
			break
		}
		if messageType == websocket.PingMessage {
			conn.WriteMessage(websocket.PongMessage, nil)
		}
	}

	close(done)
	h.logger.Info("WebSocket disconnected for user %s", userID)
}
