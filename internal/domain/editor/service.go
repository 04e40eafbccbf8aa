package editor

import (
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"pricingsite/internal/pkg/jwt"
)

// Role is the JWT role carried by content editors
const Role = "editor"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrLoginDisabled      = errors.New("editor login is not configured")
)

// Credentials is the single editor account configured for the service
type Credentials struct {
	Username     string
	PasswordHash string
}

// Service authenticates editors and issues tokens
type Service struct {
	creds Credentials
	jwt   *jwt.Service
}

func NewService(creds Credentials, jwtService *jwt.Service) *Service {
	return &Service{creds: creds, jwt: jwtService}
}

// Login checks the password against the configured bcrypt hash and returns a signed token
func (s *Service) Login(username, password string) (string, error) {
	if s.creds.Username == "" || s.creds.PasswordHash == "" {
		return "", ErrLoginDisabled
	}

	userOK := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(username)), []byte(s.creds.Username)) == 1
	// always run bcrypt so a wrong username costs the same as a wrong password
	pwErr := bcrypt.CompareHashAndPassword([]byte(s.creds.PasswordHash), []byte(password))
	if !userOK || pwErr != nil {
		return "", ErrInvalidCredentials
	}

	return s.jwt.GenerateToken(s.creds.Username, Role)
}

// HashPassword returns a bcrypt hash suitable for EDITOR_PASSWORD_HASH
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
