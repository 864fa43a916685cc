package handler

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinebook/internal/config"
	"github.com/iliyamo/cinebook/internal/middleware"
	"github.com/iliyamo/cinebook/internal/utils"
)

// AuthHandler issues operator access tokens.
type AuthHandler struct {
	Cfg config.Config
}

// NewAuthHandler returns an AuthHandler for cfg.
func NewAuthHandler(cfg config.Config) *AuthHandler {
	return &AuthHandler{Cfg: cfg}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

// Login handles POST /v1/auth/login.  Login is disabled when no operator
// password hash is configured.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username and password are required"})
	}
	if h.Cfg.OperatorPasswordHash == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "operator login disabled"})
	}
	// both checks always run
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.Cfg.OperatorUser)) == 1
	passOK := utils.VerifyPassword(h.Cfg.OperatorPasswordHash, req.Password)
	if !userOK || !passOK {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	at, err := utils.NewAccessToken(h.Cfg.JWTSecret, req.Username, middleware.RoleOperator, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to issue token"})
	}
	return c.JSON(http.StatusOK, echo.Map{"access": tokenPart{Token: at.Token, Expires: at.Exp}})
}
