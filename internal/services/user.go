package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/clothing-store/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/clothing-store/internal/errors"
	"github.com/aaravmahajanofficial/clothing-store/internal/models"
	repository "github.com/aaravmahajanofficial/clothing-store/internal/repositories"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	Profile(ctx context.Context, userID uuid.UUID, page int, size int) (*models.ProfileResponse, error)
}

type userService struct {
	repo      repository.UserRepository
	rateLimit repository.RateLimitRepository
	identity  IdentityService
	orders    OrderService
	jwtKey    []byte
	jwtExpiry time.Duration
}

func NewUserService(repo repository.UserRepository, rateLimit repository.RateLimitRepository, identity IdentityService, orders OrderService, jwtKey []byte, jwtExpiry time.Duration) UserService {
	return &userService{
		repo:      repo,
		rateLimit: rateLimit,
		identity:  identity,
		orders:    orders,
		jwtKey:    jwtKey,
		jwtExpiry: jwtExpiry,
	}
}

// taken reports whether lookup found an existing user.
func taken(user *models.User, err error) (bool, error) {
	if err == nil {
		return user != nil, nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}

	return false, err
}

func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.Password != req.ConfirmPassword {
		return nil, appErrors.AddValidationError("confirm_password", "passwords do not match")
	}

	exists, err := taken(s.repo.GetUserByUsername(ctx, req.Username))
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to check username").WithError(err)
	}
	if exists {
		return nil, appErrors.DuplicateEntryError("Username already taken")
	}

	exists, err = taken(s.repo.GetUserByEmail(ctx, req.Email))
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to check email").WithError(err)
	}
	if exists {
		return nil, appErrors.DuplicateEntryError("Email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.InternalError("Failed to secure password").WithError(err)
	}

	user := &models.User{
		ID:        uuid.New(),
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  string(hashedPassword),
	}

	client := &models.Client{
		ID:      uuid.New(),
		Phone:   req.Phone,
		Address: req.Address,
	}

	if err := s.repo.CreateUser(ctx, user, client); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.DuplicateEntryError("Username or email already registered").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to create user").WithError(err)
	}

	middleware.LoggerFromContext(ctx).Info("User registered", slog.String("userId", user.ID.String()))

	return user, nil
}

func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {

	allowed, remaining, retryAfter, err := s.rateLimit.CheckLoginRateLimit(ctx, req.Username)
	if err != nil {
		return nil, appErrors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		return &models.LoginResponse{
			Success:    false,
			Message:    "Too many login attempts. Please try again later.",
			RetryAfter: retryAfter,
		}, nil
	}

	user, err := s.repo.GetUserByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.DatabaseError("Failed to load user").WithError(err)
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return &models.LoginResponse{
			Success:        false,
			Message:        "Invalid username or password",
			RemainingTries: remaining,
		}, nil
	}

	now := time.Now()

	claims := &models.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		IsAdmin:  user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return nil, appErrors.InternalError("Failed to generate authentication token").WithError(err)
	}

	return &models.LoginResponse{
		Success:   true,
		Token:     tokenString,
		ExpiresIn: int(s.jwtExpiry.Seconds()),
	}, nil
}

// Profile gathers the account, its buyer profile and a page of its orders.
func (s *userService) Profile(ctx context.Context, userID uuid.UUID, page int, size int) (*models.ProfileResponse, error) {

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("User not found")
		}
		return nil, appErrors.DatabaseError("Failed to load user").WithError(err)
	}

	client, err := s.identity.ResolveClient(ctx, userID)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.ListOrdersByClient(ctx, client.ID, page, size)
	if err != nil {
		return nil, err
	}

	return &models.ProfileResponse{User: user, Client: client, Orders: orders}, nil
}
