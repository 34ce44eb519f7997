package services

import (
	"crypto/rsa"
	"testing"
	"time"

	"budgethero/internal/config"
	"budgethero/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TokenServiceTestSuite defines the test suite for TokenService
type TokenServiceTestSuite struct {
	suite.Suite
	privateKey     *rsa.PrivateKey
	publicKey      *rsa.PublicKey
	service        TokenServiceInterface
	issuer         string
	accessDuration time.Duration
}

// SetupTest runs before each test
func (s *TokenServiceTestSuite) SetupTest() {
	var err error
	s.privateKey, s.publicKey, err = config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.issuer = "test-issuer"
	s.accessDuration = time.Hour

	s.service = s.newService(s.issuer, s.accessDuration)
}

func (s *TokenServiceTestSuite) newService(issuer string, duration time.Duration) TokenServiceInterface {
	return NewTokenService(&config.JWTConfig{
		PrivateKey:          s.privateKey,
		PublicKey:           s.publicKey,
		Issuer:              issuer,
		AccessTokenDuration: duration,
	})
}

// TestTokenServiceSuite runs the test suite
func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

func (s *TokenServiceTestSuite) TestGenerateAccessToken() {
	token, expiresAt, err := s.service.GenerateAccessToken(uuid.New(), models.RoleUser)
	s.NoError(err)
	s.NotEmpty(token)
	s.True(expiresAt.After(time.Now()))
	s.True(expiresAt.Before(time.Now().Add(2 * time.Hour)))
}

func (s *TokenServiceTestSuite) TestGenerateAccessToken_Invalid() {
	s.Run("nil user", func() {
		_, _, err := s.service.GenerateAccessToken(uuid.Nil, models.RoleUser)
		s.Error(err)
	})

	s.Run("unknown role", func() {
		_, _, err := s.service.GenerateAccessToken(uuid.New(), "superuser")
		s.ErrorIs(err, ErrInvalidRole)
	})

	s.Run("verify-only configuration", func() {
		verifier := NewTokenService(&config.JWTConfig{PublicKey: s.publicKey, Issuer: s.issuer})
		_, _, err := verifier.GenerateAccessToken(uuid.New(), models.RoleUser)
		s.Error(err)
	})
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_Success() {
	userID := uuid.New()

	token, _, err := s.service.GenerateAccessToken(userID, models.RoleAdmin)
	s.Require().NoError(err)

	claims, err := s.service.ValidateAccessToken(token)
	s.NoError(err)
	s.Require().NotNil(claims)
	s.Equal(userID.String(), claims.UserID)
	s.Equal(models.RoleAdmin, claims.Role)
	s.Equal(s.issuer, claims.Issuer)
	s.Equal(TokenTypeAccess, claims.TokenType)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_Rejects() {
	otherPrivate, otherPublic, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	userID := uuid.New()
	token, _, err := s.service.GenerateAccessToken(userID, models.RoleUser)
	s.Require().NoError(err)

	s.Run("empty token", func() {
		_, err := s.service.ValidateAccessToken("")
		s.ErrorIs(err, ErrEmptyToken)
	})

	s.Run("malformed token", func() {
		_, err := s.service.ValidateAccessToken("eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9.invalid.signature")
		s.ErrorIs(err, ErrInvalidToken)
	})

	s.Run("wrong issuer", func() {
		_, err := s.newService("other-issuer", time.Hour).ValidateAccessToken(token)
		s.ErrorIs(err, ErrInvalidIssuer)
	})

	s.Run("different key pair", func() {
		other := NewTokenService(&config.JWTConfig{
			PrivateKey:          otherPrivate,
			PublicKey:           otherPublic,
			Issuer:              s.issuer,
			AccessTokenDuration: time.Hour,
		})
		_, err := other.ValidateAccessToken(token)
		s.ErrorIs(err, ErrInvalidToken)
	})

	s.Run("wrong token type", func() {
		claims := models.CustomClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    s.issuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
			UserID:    userID.String(),
			TokenType: "refresh",
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
		s.Require().NoError(err)

		_, err = s.service.ValidateAccessToken(signed)
		s.ErrorIs(err, ErrInvalidTokenType)
	})
}

func (s *TokenServiceTestSuite) TestExpiredToken() {
	shortService := s.newService(s.issuer, time.Millisecond)

	token, _, err := shortService.GenerateAccessToken(uuid.New(), models.RoleUser)
	s.NoError(err)

	time.Sleep(10 * time.Millisecond)

	claims, err := shortService.ValidateAccessToken(token)
	s.ErrorIs(err, ErrExpiredToken)
	s.Nil(claims)
}

func (s *TokenServiceTestSuite) TestExtractTokenFromHeader() {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"bearer", "Bearer abc.def", "abc.def", false},
		{"lowercase bearer", "bearer abc.def", "abc.def", false},
		{"no prefix", "abc.def", "", true},
		{"empty", "", "", true},
		{"prefix only", "Bearer", "", true},
		{"prefix and space", "Bearer ", "", true},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			token, err := s.service.ExtractTokenFromHeader(tt.header)
			if tt.wantErr {
				s.Error(err)
				s.Empty(token)
				return
			}
			s.NoError(err)
			s.Equal(tt.want, token)
		})
	}
}

func (s *TokenServiceTestSuite) TestGetTokenExpiry() {
	token, expiresAt, err := s.service.GenerateAccessToken(uuid.New(), models.RoleUser)
	s.Require().NoError(err)

	expiry, err := s.service.GetTokenExpiry(token)
	s.NoError(err)
	s.Equal(expiresAt.Unix(), expiry.Unix())

	_, err = s.service.GetTokenExpiry("")
	s.ErrorIs(err, ErrEmptyToken)
}

func BenchmarkTokenService_ValidateAccessToken(b *testing.B) {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	if err != nil {
		b.Fatal(err)
	}

	ts := NewTokenService(&config.JWTConfig{
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "test-issuer",
		AccessTokenDuration: 24 * time.Hour,
	})

	token, _, err := ts.GenerateAccessToken(uuid.New(), models.RoleUser)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ts.ValidateAccessToken(token); err != nil {
			b.Fatal(err)
		}
	}
}
