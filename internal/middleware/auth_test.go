package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"budgethero/internal/config"
	"budgethero/internal/models"
	"budgethero/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	tokenService services.TokenServiceInterface
	e            *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.tokenService = s.createTokenService(24 * time.Hour)
	s.e = echo.New()
}

func (s *AuthMiddlewareSuite) createTokenService(duration time.Duration) services.TokenServiceInterface {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	return services.NewTokenService(&config.JWTConfig{
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "test-issuer",
		AccessTokenDuration: duration,
	})
}

func (s *AuthMiddlewareSuite) serve(mw echo.MiddlewareFunc, authHeader string, setup func(echo.Context)) (*httptest.ResponseRecorder, echo.Context) {
	handler := mw(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	if setup != nil {
		setup(c)
	}

	// SendError writes the response and returns nil
	s.NoError(handler(c))
	return rec, c
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	userID := uuid.New()
	token, _, err := s.tokenService.GenerateAccessToken(userID, models.RoleUser)
	s.Require().NoError(err)

	rec, c := s.serve(RequireAuth(s.tokenService), "Bearer "+token, nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(userID, c.Get("user_id"))
	s.Equal(models.RoleUser, c.Get("user_role"))
	s.Equal(false, c.Get("is_admin"))
	s.NotEmpty(c.Get("token_jti"))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_AdminToken() {
	token, _, err := s.tokenService.GenerateAccessToken(uuid.New(), models.RoleAdmin)
	s.Require().NoError(err)

	rec, c := s.serve(RequireAuth(s.tokenService), "bearer "+token, nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(true, c.Get("is_admin"))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_Rejections() {
	expiredService := s.createTokenService(-time.Minute)
	expired, _, err := expiredService.GenerateAccessToken(uuid.New(), models.RoleUser)
	s.Require().NoError(err)

	foreign, _, err := s.createTokenService(time.Hour).GenerateAccessToken(uuid.New(), models.RoleUser)
	s.Require().NoError(err)

	tests := []struct {
		name     string
		service  services.TokenServiceInterface
		header   string
		wantCode string
	}{
		{"missing header", s.tokenService, "", "AUTH_001"},
		{"not bearer", s.tokenService, "InvalidToken", "AUTH_003"},
		{"malformed jwt", s.tokenService, "Bearer invalid.jwt.token", "AUTH_003"},
		{"expired", expiredService, "Bearer " + expired, "AUTH_002"},
		{"signed with another key", s.tokenService, "Bearer " + foreign, "AUTH_003"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec, _ := s.serve(RequireAuth(tt.service), tt.header, nil)

			s.Equal(http.StatusUnauthorized, rec.Code)
			s.Contains(rec.Body.String(), tt.wantCode)
		})
	}
}

func (s *AuthMiddlewareSuite) TestRequireRole() {
	tests := []struct {
		name       string
		roles      []string
		userRole   string
		wantStatus int
	}{
		{"admin allowed", []string{models.RoleAdmin}, models.RoleAdmin, http.StatusOK},
		{"user forbidden", []string{models.RoleAdmin}, models.RoleUser, http.StatusForbidden},
		{"missing role", []string{models.RoleAdmin}, "", http.StatusUnauthorized},
		{"any of several", []string{models.RoleAdmin, models.RoleUser}, models.RoleUser, http.StatusOK},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec, _ := s.serve(RequireRole(tt.roles...), "", func(c echo.Context) {
				if tt.userRole != "" {
					c.Set("user_role", tt.userRole)
				}
			})
			s.Equal(tt.wantStatus, rec.Code)
		})
	}
}

func (s *AuthMiddlewareSuite) TestRequireAdmin() {
	rec, _ := s.serve(RequireAdmin(), "", func(c echo.Context) {
		c.Set("user_role", models.RoleUser)
	})
	s.Equal(http.StatusForbidden, rec.Code)
}
