package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coursedeck/internal/usecase"
	"coursedeck/pkg/logger"
	"coursedeck/pkg/middleware"
)

type PaymentHandler struct {
	paymentUseCase usecase.PaymentUseCase
	logger         *logger.Logger
}

func NewPaymentHandler(paymentUseCase usecase.PaymentUseCase, logger *logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
		logger:         logger,
	}
}

// List godoc
// @Summary      List payments
// @Description  Admins see all payments; everyone else sees their own. When the backend is unreachable the last fetched copy is served with stale set.
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "Status filter, accepts \"all\""
// @Success      200  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]string
// @Router       /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	payments, stale, err := h.paymentUseCase.List(c.Request.Context(), sess, c.Query("status"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payments": payments,
		"count":    len(payments),
		"stale":    stale,
	})
}

// Totals godoc
// @Summary      Payment totals per status
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]string
// @Router       /payments/totals [get]
func (h *PaymentHandler) Totals(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	totals, err := h.paymentUseCase.Totals(c.Request.Context(), sess)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"totals": totals})
}
