package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yudhapratama/portfolio-api/internal/application"
	"github.com/yudhapratama/portfolio-api/pkg/helpers"
	"github.com/yudhapratama/portfolio-api/pkg/response"
	"github.com/yudhapratama/portfolio-api/pkg/validation"
)

// AuthHandler serves operator login and session endpoints. Tokens travel in
// httpOnly cookies; the JSON body never carries them.
type AuthHandler struct {
	Svc    *application.AuthService
	Cookie *helpers.Manager
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, cookie *helpers.Manager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Cookie: cookie, Logger: logger}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,pwd"`
}

// Login POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, pair, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "invalid username or password", nil)
		return
	}

	h.Cookie.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusOK, res, "login successful", nil)
}

// Refresh POST /api/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	token, err := c.Cookie("refresh_token")
	if err != nil || token == "" {
		response.Error[any](c, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}

	pair, err := h.Svc.Refresh(c.Request.Context(), token)
	if err != nil {
		h.Cookie.Clear(c)
		response.Error[any](c, http.StatusUnauthorized, "invalid refresh token", nil)
		return
	}

	h.Cookie.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success[any](c, http.StatusOK, nil, "token refreshed", nil)
}

// Logout POST /api/logout (auth required)
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Svc.Logout(c.Request.Context(), c.GetString("userID"))
	h.Cookie.Clear(c)
	response.Success[any](c, http.StatusOK, nil, "logged out", nil)
}

// Me GET /api/me (auth required)
func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.Svc.Profile(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "session expired", nil)
		return
	}
	response.Success(c, http.StatusOK, application.LoginResponse{UserID: u.ID, Username: u.Username}, "profile", nil)
}
