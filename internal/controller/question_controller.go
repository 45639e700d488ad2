package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ieltsmaster/writing-api/internal/dto"
	"github.com/ieltsmaster/writing-api/internal/service"
	"github.com/rs/zerolog/log"
)

type QuestionController struct {
	questionService service.QuestionService
}

func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// GenerateQuestion godoc
// @Summary Generate a new writing question
// @Description Generates an IELTS writing question for the given test/task category and stores it.
// @Tags Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GenerateQuestionRequest true "Test and task category"
// @Success 200 {object} dto.GenerateQuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid access token"
// @Failure 500 {object} dto.ErrorResponse "Generation or storage error"
// @Router /questions [post]
func (c *QuestionController) GenerateQuestion(ctx *gin.Context) {
	var req dto.GenerateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request data", Details: bindingErrorDetails(err)})
		return
	}

	question, err := c.questionService.GenerateQuestion(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("test_type", req.TestType).Str("task_type", req.TaskType).Msg("GenerateQuestion: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, dto.GenerateQuestionResponse{Question: *question})
}
