package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/velobay/bike-rental/internal/config"
	"github.com/velobay/bike-rental/internal/repository"
	"github.com/velobay/bike-rental/internal/utils"
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg    config.Config
	Users  *repository.UserRepo
	Tokens *repository.TokenRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo, t *repository.TokenRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Tokens: t}
}

// ----- DTOs -----

type registerReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type userPart struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}
type authResp struct {
	User    userPart  `json:"user"`
	Access  tokenPart `json:"access"`
	Refresh tokenPart `json:"refresh"`
}

// Register: create user and return tokens immediately.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Username, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		if err == repository.ErrUsernameExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "username already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, uid, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue refresh failed"})
	}
	if err := h.Tokens.StoreRefresh(ctx, uid, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save refresh failed"})
	}

	return c.JSON(http.StatusCreated, authResp{
		User:    userPart{ID: uid, Username: req.Username},
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
		Refresh: tokenPart{Token: refresh.Raw, Expires: refresh.Exp}, // raw back to client
	})
}

// Login: verify credentials and return a new token pair. Unknown username
// and wrong password produce the same response so usernames cannot be
// enumerated.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid username or password"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid username or password"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue refresh failed"})
	}
	if err := h.Tokens.StoreRefresh(ctx, u.ID, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save refresh failed"})
	}

	return c.JSON(http.StatusOK, authResp{
		User:    userPart{ID: u.ID, Username: u.Username},
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
		Refresh: tokenPart{Token: refresh.Raw, Expires: refresh.Exp},
	})
}

// Refresh: validate by hash, revoke old, issue new pair.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}
	raw := strings.TrimSpace(req.RefreshToken)
	hash := utils.HashRefreshRaw(raw)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	userID, err := h.Tokens.ValidateRefresh(ctx, hash)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh"})
	}
	_ = h.Tokens.RevokeByHash(ctx, hash)

	u, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, userID, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	newRef, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue refresh failed"})
	}
	if err := h.Tokens.StoreRefresh(ctx, userID, utils.HashRefreshRaw(newRef.Raw), newRef.Exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save refresh failed"})
	}

	return c.JSON(http.StatusOK, authResp{
		User:    userPart{ID: userID, Username: u.Username},
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
		Refresh: tokenPart{Token: newRef.Raw, Expires: newRef.Exp},
	})
}

// Logout supports two modes: a valid bearer token with no refresh token in
// the body revokes every session of that user; a refresh token in the body
// revokes that single session. With neither, the request is rejected.
func (h *AuthHandler) Logout(c echo.Context) error {
	// Parse the Authorization header directly so this endpoint also works
	// without the JWT middleware.
	var uid uint64
	hasBearer := false
	authHeader := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		rawToken := strings.TrimPrefix(authHeader, "Bearer ")
		tok, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, echo.ErrUnauthorized
			}
			return []byte(h.Cfg.JWTSecret), nil
		})
		if err == nil && tok.Valid {
			if claims, ok := tok.Claims.(jwt.MapClaims); ok {
				switch subVal := claims["sub"].(type) {
				case float64:
					uid = uint64(subVal)
					hasBearer = true
				case string:
					if parsed, err := strconv.ParseUint(subVal, 10, 64); err == nil {
						uid = parsed
						hasBearer = true
					}
				}
			}
		}
	}

	// Invalid JSON simply leaves req.RefreshToken empty; the bearer may
	// still suffice.
	var req refreshReq
	_ = c.Bind(&req)
	refreshToken := strings.TrimSpace(req.RefreshToken)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if hasBearer && refreshToken == "" {
		if uid == 0 {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		}
		if err := h.Tokens.RevokeAllForUser(ctx, uid); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
		}
		return c.NoContent(http.StatusNoContent)
	}
	if refreshToken != "" {
		hash := utils.HashRefreshRaw(refreshToken)
		if _, err := h.Tokens.ValidateRefresh(ctx, hash); err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh token"})
		}
		if err := h.Tokens.RevokeByHash(ctx, hash); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
		}
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "provide Authorization header or refresh_token"})
}

// Me: simple protected endpoint echoing the caller's identity.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"user_id": c.Get("user_id"),
	})
}
