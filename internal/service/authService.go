package service

import (
	"errors"
	"strings"
	"time"

	"biteengine/internal/config"
	"biteengine/internal/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the identity encoded in an issued token
type Claims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Login(email, name, avatar string) (*dto.LoginResponse, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	jwtSecret     string
	jwtExpiry     time.Duration
	allowedEmails []string
	adminEmails   []string
}

func NewAuthService(cfg *config.Config) AuthService {
	return &authService{
		jwtSecret:     cfg.JWTSecret,
		jwtExpiry:     cfg.JWTExpiry,
		allowedEmails: cfg.AllowedEmails,
		adminEmails:   cfg.AdminEmails,
	}
}

// Login checks the email allowlist and issues a token carrying the identity.
// There are no passwords; the allowlist is the entire gate and everything
// downstream trusts the identity inside the token at face value.
func (s *authService) Login(email, name, avatar string) (*dto.LoginResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if !containsEmail(s.allowedEmails, email) && !containsEmail(s.adminEmails, email) {
		return nil, errors.New("email not allowed")
	}

	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}

	role := "member"
	if containsEmail(s.adminEmails, email) {
		role = "admin"
	}

	user := dto.UserInfo{
		// Deterministic per email so re-logins keep the same vote row
		ID:     uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+email)).String(),
		Name:   name,
		Email:  email,
		Avatar: avatar,
		Role:   role,
	}

	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Avatar: user.Avatar,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{Token: signed, User: user}, nil
}

// ValidateToken parses and verifies a token, returning its claims
func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func containsEmail(emails []string, email string) bool {
	for _, e := range emails {
		if strings.EqualFold(strings.TrimSpace(e), email) {
			return true
		}
	}
	return false
}
