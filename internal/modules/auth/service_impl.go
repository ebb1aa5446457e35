package auth

import (
	"context"
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/tmwansa/gearparts-backend/internal/modules/user"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for a wrong email or password. The two
// cases are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUserExists is returned when registering an email that is already taken.
var ErrUserExists = errors.New("user already exists")

const tokenTTL = 24 * time.Hour

type service struct {
	userRepo user.Repository
	jwtKey   []byte
}

// NewService creates a new auth service signing tokens with jwtKey.
func NewService(userRepo user.Repository, jwtKey []byte) Service {
	return &service{userRepo: userRepo, jwtKey: jwtKey}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	if req.Email == "" || req.Password == "" {
		return nil, errors.New("email and password are required")
	}
	if _, err := s.userRepo.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &user.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hashed),
		Name:         req.Name,
	}
	if err := s.userRepo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	token, err := s.signToken(u)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, User: u}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	u, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.signToken(u)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, User: u}, nil
}

func (s *service) signToken(u *user.User) (string, error) {
	claims := &jwt.StandardClaims{
		Subject:   u.ID.String(),
		ExpiresAt: time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}
