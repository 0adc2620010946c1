package services

import (
	"errors"
	"fmt"
	"time"

	"sapling/internal/models"
	"sapling/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService. tokenTTL defaults to one hour.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// Register registers a new account with role "user" and a bcrypt hash in
// place of the plaintext password. bcrypt salts per hash, so identical
// passwords on different accounts never share ciphertext.
func (s *AuthService) Register(user *models.User) error {
	if existing, err := s.userRepo.GetByEmail(user.Email); err == nil && existing != nil {
		return fmt.Errorf("email '%s': %w", user.Email, models.ErrConflict)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, models.ErrConflict) {
			return err
		}
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// Login authenticates by email and password, returning a signed token and
// the account's role. The error is the same whether the email is unknown or
// the password is wrong, so the endpoint cannot be used to enumerate
// accounts.
func (s *AuthService) Login(email, password string) (string, models.Role, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return "", "", models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", models.ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(s.tokenTTL).Unix(), // Token expiration time
		"iat":     time.Now().Unix(),                 // Issued at time
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, user.Role, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", models.ErrUnauthorized)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token: %w", models.ErrUnauthorized)
}

// Authorize is the single role policy check: it reads the role claim and
// verifies it satisfies the required role.
func (s *AuthService) Authorize(claims jwt.MapClaims, required models.Role) error {
	role, _ := claims["role"].(string)
	if !models.Role(role).Satisfies(required) {
		return fmt.Errorf("role %q does not satisfy %q: %w", role, required, models.ErrForbidden)
	}
	return nil
}

// ListUsers returns every account. Password hashes are never serialised (the
// field carries no json tag), so the listing is safe to return as-is.
func (s *AuthService) ListUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}
