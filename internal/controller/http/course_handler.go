package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coursedeck/internal/repo/backend"
	"coursedeck/internal/usecase"
	"coursedeck/pkg/logger"
	"coursedeck/pkg/middleware"
)

type CourseHandler struct {
	courseUseCase usecase.CourseUseCase
	logger        *logger.Logger
}

func NewCourseHandler(courseUseCase usecase.CourseUseCase, logger *logger.Logger) *CourseHandler {
	return &CourseHandler{
		courseUseCase: courseUseCase,
		logger:        logger,
	}
}

type CreateCourseRequest struct {
	Title       string  `json:"title" binding:"required,min=3,max=200"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	Category    string  `json:"category" binding:"required"`
}

// Browse godoc
// @Summary      Browse the course catalog
// @Description  Students see published courses only; staff see drafts too
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        search query string false "Substring matched against title and description"
// @Param        category query string false "Category filter, accepts \"all\""
// @Success      200  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]string
// @Router       /courses [get]
func (h *CourseHandler) Browse(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	q := usecase.CourseQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}

	courses, err := h.courseUseCase.Browse(c.Request.Context(), sess, q)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"courses": courses, "count": len(courses)})
}

// Mine godoc
// @Summary      List own courses
// @Description  The signed-in instructor's courses, drafts included
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]string
// @Router       /courses/mine [get]
func (h *CourseHandler) Mine(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	courses, err := h.courseUseCase.Mine(c.Request.Context(), sess)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"courses": courses, "count": len(courses)})
}

// Create godoc
// @Summary      Create a course
// @Description  Create a draft course. The response is the record the backend stored.
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateCourseRequest true "Course data"
// @Success      201  {object}  entity.Course
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := middleware.CurrentSession(c)
	course, err := h.courseUseCase.Create(c.Request.Context(), sess, backend.CourseInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, course)
}
