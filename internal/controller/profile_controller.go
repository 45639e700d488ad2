package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ieltsmaster/writing-api/internal/dto"
	"github.com/ieltsmaster/writing-api/internal/middleware"
	"github.com/ieltsmaster/writing-api/internal/service"
	"github.com/rs/zerolog/log"
)

type ProfileController struct {
	profileService service.ProfileService
}

func NewProfileController(profileService service.ProfileService) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// GetProfile godoc
// @Summary Get the caller's profile and attempt history
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProfileDetailResponse
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid access token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	resp, err := c.profileService.GetProfile(ctx.Request.Context(), userID, middleware.Email(ctx))
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("GetProfile: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateProfile godoc
// @Summary Update the caller's display name
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "New display name"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid access token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profile [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request data", Details: bindingErrorDetails(err)})
		return
	}

	resp, err := c.profileService.UpdateProfile(ctx.Request.Context(), userID, req)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("UpdateProfile: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
