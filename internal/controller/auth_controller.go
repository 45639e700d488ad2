package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ieltsmaster/writing-api/internal/dto"
	"github.com/ieltsmaster/writing-api/internal/middleware"
	"github.com/ieltsmaster/writing-api/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Logout godoc
// @Summary Log the caller out
// @Description Revokes the caller's session at the identity provider. Succeeds without a token too; there is simply no session to revoke.
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.LogoutResponse
// @Failure 500 {object} dto.ErrorResponse "Identity provider error"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	token, _ := middleware.BearerToken(ctx)
	if err := c.authService.Logout(ctx.Request.Context(), token); err != nil {
		log.Error().Err(err).Msg("Logout: identity provider error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to log out"})
		return
	}
	ctx.JSON(http.StatusOK, dto.LogoutResponse{Success: true})
}
