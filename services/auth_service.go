package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/yashrajoria/remarket/models"
	"github.com/yashrajoria/remarket/repository"
)

// Defaults every simulated account gets, matching the demo backend.
const (
	defaultTrustRating = 4.2
	tokenTTL           = 24 * time.Hour
)

// AuthService defines the interface for the simulated sign-in backend. The
// account store lives in memory and is lost on restart.
type AuthService interface {
	SignUp(ctx context.Context, req *models.SignUpRequest) (*models.AuthResponse, *ServiceError)
	SignIn(ctx context.Context, req *models.SignInRequest) (*models.AuthResponse, *ServiceError)
	Logout(ctx context.Context, userID string) *ServiceError
}

type authServiceImpl struct {
	users       repository.UserRepository
	carts       repository.CartRepository
	wishlists   repository.WishlistRepository
	logger      *zap.Logger
	jwtSecret   []byte
	signInDelay time.Duration
}

func NewAuthService(users repository.UserRepository, carts repository.CartRepository, wishlists repository.WishlistRepository, logger *zap.Logger, jwtSecret []byte, signInDelay time.Duration) AuthService {
	return &authServiceImpl{
		users:       users,
		carts:       carts,
		wishlists:   wishlists,
		logger:      logger,
		jwtSecret:   jwtSecret,
		signInDelay: signInDelay,
	}
}

func (s *authServiceImpl) SignUp(ctx context.Context, req *models.SignUpRequest) (*models.AuthResponse, *ServiceError) {
	simulateLatency(ctx, s.signInDelay)
	return s.createAccount(ctx, req)
}

func (s *authServiceImpl) createAccount(ctx context.Context, req *models.SignUpRequest) (*models.AuthResponse, *ServiceError) {
	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create account"}
	}

	user := &models.User{
		ID:          uuid.NewString(),
		Email:       req.Email,
		Name:        req.Name,
		Phone:       req.Phone,
		Location:    req.Location,
		Role:        role,
		TrustRating: defaultTrustRating,
		IsVerified:  true,
		Password:    string(hashed),
		CreatedAt:   time.Now(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, &ServiceError{StatusCode: 409, Message: "Email already exists"}
		}
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create account"}
	}

	token, svcErr := s.issueToken(user)
	if svcErr != nil {
		return nil, svcErr
	}

	s.logger.Info("User signed up", zap.String("user_id", user.ID), zap.String("role", user.Role))
	return &models.AuthResponse{User: user, Token: token}, nil
}

// SignIn authenticates a known account. An unknown email is auto-provisioned
// as a customer, preserving the demo behavior of accepting any credentials
// on first sign-in.
func (s *authServiceImpl) SignIn(ctx context.Context, req *models.SignInRequest) (*models.AuthResponse, *ServiceError) {
	simulateLatency(ctx, s.signInDelay)

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return s.provision(ctx, req)
		}
		s.logger.Error("Failed to look up user", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to sign in"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, &ServiceError{StatusCode: 401, Message: "Invalid email or password"}
	}

	token, svcErr := s.issueToken(user)
	if svcErr != nil {
		return nil, svcErr
	}

	s.logger.Info("User signed in", zap.String("user_id", user.ID))
	return &models.AuthResponse{User: user, Token: token}, nil
}

// Logout ends the session and discards the user's cart and wishlist, as the
// original does on sign-out.
func (s *authServiceImpl) Logout(ctx context.Context, userID string) *ServiceError {
	if err := s.carts.DeleteCart(ctx, userID); err != nil {
		s.logger.Error("Failed to clear cart on logout", zap.String("user_id", userID), zap.Error(err))
	}
	if err := s.wishlists.Delete(ctx, userID); err != nil {
		s.logger.Error("Failed to clear wishlist on logout", zap.String("user_id", userID), zap.Error(err))
	}
	s.logger.Info("User logged out", zap.String("user_id", userID))
	return nil
}

func (s *authServiceImpl) provision(ctx context.Context, req *models.SignInRequest) (*models.AuthResponse, *ServiceError) {
	name := req.Email
	if at := strings.Index(name, "@"); at > 0 {
		name = name[:at]
	}
	return s.createAccount(ctx, &models.SignUpRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     name,
		Role:     models.RoleCustomer,
	})
}

// issueToken signs a JWT carrying user id, email, and role.
func (s *authServiceImpl) issueToken(user *models.User) (string, *ServiceError) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		s.logger.Error("Failed to sign token", zap.Error(err))
		return "", &ServiceError{StatusCode: 500, Message: "Failed to generate token"}
	}
	return signed, nil
}
