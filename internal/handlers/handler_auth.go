package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/services"
	"github.com/TrenchWorks/workforce_payroll_app/internal/dto"
	"github.com/TrenchWorks/workforce_payroll_app/internal/middleware"
	"github.com/TrenchWorks/workforce_payroll_app/pkg/config"
	"github.com/gin-gonic/gin"
)

// authHandler handles the three login paths.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

// registerAuthRoutes sets up the public authentication routes, all behind a
// per-IP rate limit.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, authService portssvc.AuthSvcFacade) {
	h := &authHandler{authService: authService}

	rateFormat := cfg.LoginRateLimit
	if rateFormat == "" {
		rateFormat = "10-M"
	}
	rate, err := limiter.NewRateFromFormatted(rateFormat)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("10-M")
	}
	store := memory.NewStore()
	limitMiddleware := middleware.RateLimit(limiter.New(store, rate))

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/login", limitMiddleware, h.login)
		auth.POST("/google", limitMiddleware, h.loginWithGoogle)
		auth.POST("/labourer-login", limitMiddleware, h.labourerLogin)
	}
}

// login godoc
// @Summary Staff login
// @Description Authenticates a staff member with email and password and returns a JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	resp, err := h.authService.LoginStaff(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err, "Failed to log in")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Staff login succeeded", slog.String("user_id", resp.UserID))
	c.JSON(http.StatusOK, resp)
}

// loginWithGoogle godoc
// @Summary Staff login via Google
// @Description Exchanges a verified Google ID token for an application JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.GoogleLoginRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google [post]
func (h *authHandler) loginWithGoogle(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	resp, err := h.authService.LoginWithGoogle(c.Request.Context(), req.IDToken)
	if err != nil {
		respondServiceError(c, err, "Failed to log in with Google")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Google login succeeded", slog.String("user_id", resp.UserID))
	c.JSON(http.StatusOK, resp)
}

// labourerLogin godoc
// @Summary Labourer login
// @Description Authenticates a labourer with phone number and ID number.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LabourerLoginRequest true "Labourer credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/labourer-login [post]
func (h *authHandler) labourerLogin(c *gin.Context) {
	var req dto.LabourerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	resp, err := h.authService.LoginLabourer(c.Request.Context(), req.PhoneNumber, req.IDNumber)
	if err != nil {
		respondServiceError(c, err, "Failed to log in")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Labourer login succeeded", slog.String("labourer_id", resp.UserID))
	c.JSON(http.StatusOK, resp)
}
