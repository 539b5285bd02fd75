package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coursedeck/internal/usecase"
	"coursedeck/pkg/logger"
	"coursedeck/pkg/middleware"
)

type UserHandler struct {
	userUseCase usecase.UserAdminUseCase
	logger      *logger.Logger
}

func NewUserHandler(userUseCase usecase.UserAdminUseCase, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// List godoc
// @Summary      List users
// @Description  List platform users with search and categorical filters. Filters accept "all" to disable themselves.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        search query string false "Substring matched against name and email"
// @Param        role query string false "Role filter"
// @Param        class_level query string false "Class level filter"
// @Param        status query string false "active or inactive"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	q := usecase.UserQuery{
		Search:     c.Query("search"),
		Role:       c.Query("role"),
		ClassLevel: c.Query("class_level"),
		Status:     c.Query("status"),
	}

	users, stale, err := h.userUseCase.List(c.Request.Context(), sess, q)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"count": len(users),
		"stale": stale,
	})
}

// SetActive godoc
// @Summary      Activate or deactivate a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        request body SetActiveRequest true "Desired state"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /users/{id}/active [put]
func (h *UserHandler) SetActive(c *gin.Context) {
	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := middleware.CurrentSession(c)
	if err := h.userUseCase.SetActive(c.Request.Context(), sess, c.Param("id"), *req.IsActive); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated", "is_active": *req.IsActive})
}

// Delete godoc
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if err := h.userUseCase.Delete(c.Request.Context(), sess, c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
