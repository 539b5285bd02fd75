package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"coursedeck/internal/usecase"
	"coursedeck/pkg/logger"
	"coursedeck/pkg/middleware"
)

type AssignmentHandler struct {
	assignmentUseCase usecase.AssignmentUseCase
	logger            *logger.Logger
}

func NewAssignmentHandler(assignmentUseCase usecase.AssignmentUseCase, logger *logger.Logger) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentUseCase: assignmentUseCase,
		logger:            logger,
	}
}

type GradeRequest struct {
	Grade    *float64 `json:"grade" binding:"required"`
	Feedback string   `json:"feedback"`
}

// ListMine godoc
// @Summary      List own assignments
// @Description  The student's assignments annotated with deadline and submission state, soonest deadline first
// @Tags         assignments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]string
// @Router       /assignments [get]
func (h *AssignmentHandler) ListMine(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	statuses, err := h.assignmentUseCase.ForStudent(c.Request.Context(), sess)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"assignments": statuses, "count": len(statuses)})
}

// PendingSubmissions godoc
// @Summary      List submissions awaiting a grade
// @Tags         assignments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]string
// @Router       /assignments/grading [get]
func (h *AssignmentHandler) PendingSubmissions(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	submissions, err := h.assignmentUseCase.PendingSubmissions(c.Request.Context(), sess)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"submissions": submissions, "count": len(submissions)})
}

// Grade godoc
// @Summary      Grade a submission
// @Description  Record a grade. The response reflects what the backend stored; the student is notified on success.
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Assignment ID"
// @Param        submission_id path string true "Submission ID"
// @Param        request body GradeRequest true "Grade and optional feedback"
// @Success      200  {object}  entity.Submission
// @Failure      400  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /assignments/{id}/submissions/{submission_id}/grade [put]
func (h *AssignmentHandler) Grade(c *gin.Context) {
	var req GradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := middleware.CurrentSession(c)
	sub, err := h.assignmentUseCase.Grade(c.Request.Context(), sess,
		c.Param("id"), c.Param("submission_id"), *req.Grade, req.Feedback)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidGrade) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}
