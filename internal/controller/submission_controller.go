package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ieltsmaster/writing-api/internal/dto"
	"github.com/ieltsmaster/writing-api/internal/middleware"
	"github.com/ieltsmaster/writing-api/internal/service"
	"github.com/rs/zerolog/log"
)

type SubmissionController struct {
	submissionService service.SubmissionService
}

func NewSubmissionController(submissionService service.SubmissionService) *SubmissionController {
	return &SubmissionController{submissionService: submissionService}
}

// SubmitAnswer godoc
// @Summary Submit a writing attempt for scoring
// @Description Persists the attempt, scores it against the four IELTS criteria, and returns the band scores with feedback.
// @Tags Submissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitAnswerRequest true "Attempt content and metadata"
// @Success 200 {object} dto.SubmitAnswerResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid access token"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Scoring or storage error"
// @Router /submissions [post]
func (c *SubmissionController) SubmitAnswer(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	var req dto.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request data", Details: bindingErrorDetails(err)})
		return
	}

	resp, err := c.submissionService.SubmitAnswer(ctx.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Question not found"})
			return
		}
		log.Error().Err(err).Str("question_id", req.QuestionID).Msg("SubmitAnswer: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetResult godoc
// @Summary Fetch the result of a previous attempt
// @Description Returns the submission, its question, and the score. Owner-only: other users' attempts read as not found.
// @Tags Submissions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Submission ID"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid submission id"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid access token"
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /results/{id} [get]
func (c *SubmissionController) GetResult(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	submissionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid submission id"})
		return
	}

	resp, err := c.submissionService.GetResult(ctx.Request.Context(), userID, submissionID)
	if err != nil {
		if errors.Is(err, service.ErrResultNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Result not found"})
			return
		}
		log.Error().Err(err).Str("submission_id", submissionID.String()).Msg("GetResult: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
