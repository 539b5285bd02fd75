package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coursedeck/internal/usecase"
	"coursedeck/pkg/logger"
	"coursedeck/pkg/middleware"
)

type DashboardHandler struct {
	dashboardUseCase usecase.DashboardUseCase
	logger           *logger.Logger
}

func NewDashboardHandler(dashboardUseCase usecase.DashboardUseCase, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
		logger:           logger,
	}
}

// StudentOverview godoc
// @Summary      Student dashboard overview
// @Description  Enrolled courses, upcoming assignments, average grade and unread count for the signed-in student
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usecase.StudentOverview
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /dashboard/student [get]
func (h *DashboardHandler) StudentOverview(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	overview, err := h.dashboardUseCase.StudentOverview(c.Request.Context(), sess)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// InstructorOverview godoc
// @Summary      Instructor dashboard overview
// @Description  Teaching load, grading queue, earnings and engagement stats when the analytics service can provide them
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usecase.InstructorOverview
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /dashboard/instructor [get]
func (h *DashboardHandler) InstructorOverview(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	overview, err := h.dashboardUseCase.InstructorOverview(c.Request.Context(), sess)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// AdminOverview godoc
// @Summary      Admin dashboard overview
// @Description  Platform-wide user and payment aggregates
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usecase.AdminOverview
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /dashboard/admin [get]
func (h *DashboardHandler) AdminOverview(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	overview, err := h.dashboardUseCase.AdminOverview(c.Request.Context(), sess)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

func (h *DashboardHandler) Navigation(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	entries, err := h.dashboardUseCase.Navigation(c.Request.Context(), sess)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"navigation": entries})
}
