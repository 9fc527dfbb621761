package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/phuocthien2304/TourManagement/internal/core/domain"
	"github.com/phuocthien2304/TourManagement/internal/core/ports"
)

type Claims struct {
	Kind domain.PartyKind `json:"kind"`
	Role string           `json:"role"`
	jwt.RegisteredClaims
}

type RegisterRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	DateOfBirth string `json:"dateOfBirth" binding:"required"`
	Address     string `json:"address" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type AuthService struct {
	userRepo ports.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(userRepo ports.UserRepository, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{userRepo: userRepo, secret: []byte(secret), tokenTTL: tokenTTL}
}

// Register creates a customer account and logs it in.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	if _, err := s.userRepo.FindByEmail(ctx, domain.PartyCustomer, req.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("invalid dateOfBirth: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Code:         domain.NewCode("CUST"),
		FullName:     req.FullName,
		DateOfBirth:  dob,
		Address:      req.Address,
		PhoneNumber:  req.PhoneNumber,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
	}

	if err := s.userRepo.Create(ctx, domain.PartyCustomer, user); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	token, err := s.issueToken(user, domain.PartyCustomer)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

// Login checks the customer table first, then employees, matching the
// original sign-in order.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	kind := domain.PartyCustomer
	user, err := s.userRepo.FindByEmail(ctx, domain.PartyCustomer, req.Email)
	if errors.Is(err, domain.ErrUserNotFound) {
		kind = domain.PartyEmployee
		user, err = s.userRepo.FindByEmail(ctx, domain.PartyEmployee, req.Email)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(user, kind)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

// UserFromToken validates the token and loads the live user record from the
// collection named by the token's kind claim.
func (s *AuthService) UserFromToken(ctx context.Context, tokenStr string) (*domain.User, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, errors.New("invalid token")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.New("invalid token subject")
	}

	return s.userRepo.FindByID(ctx, claims.Kind, id)
}

func (s *AuthService) issueToken(user *domain.User, kind domain.PartyKind) (string, error) {
	claims := Claims{
		Kind: kind,
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
