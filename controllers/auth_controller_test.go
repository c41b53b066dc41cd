package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/yashrajoria/remarket/controllers"
	"github.com/yashrajoria/remarket/models"
	"github.com/yashrajoria/remarket/services"
)

// --- Mock AuthService ---

type mockAuthService struct {
	signUpFn func(ctx context.Context, req *models.SignUpRequest) (*models.AuthResponse, *services.ServiceError)
	signInFn func(ctx context.Context, req *models.SignInRequest) (*models.AuthResponse, *services.ServiceError)
	logoutFn func(ctx context.Context, userID string) *services.ServiceError
}

func (m *mockAuthService) SignUp(ctx context.Context, req *models.SignUpRequest) (*models.AuthResponse, *services.ServiceError) {
	return m.signUpFn(ctx, req)
}
func (m *mockAuthService) SignIn(ctx context.Context, req *models.SignInRequest) (*models.AuthResponse, *services.ServiceError) {
	return m.signInFn(ctx, req)
}
func (m *mockAuthService) Logout(ctx context.Context, userID string) *services.ServiceError {
	return m.logoutFn(ctx, userID)
}

func setupAuthRouter(svc services.AuthService) *gin.Engine {
	r := gin.New()
	ac := controllers.NewAuthController(svc)
	r.POST("/auth/signup", ac.SignUp)
	r.POST("/auth/signin", ac.SignIn)
	return r
}

// --- Tests ---

func TestController_SignUp_Success(t *testing.T) {
	svc := &mockAuthService{
		signUpFn: func(_ context.Context, req *models.SignUpRequest) (*models.AuthResponse, *services.ServiceError) {
			return &models.AuthResponse{
				User:  &models.User{ID: "u1", Email: req.Email, Name: req.Name, Role: models.RoleCustomer},
				Token: "jwt-token",
			}, nil
		},
	}
	r := setupAuthRouter(svc)

	payload, _ := json.Marshal(models.SignUpRequest{
		Email: "asha@example.com", Password: "secret1", Name: "Asha",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var body models.AuthResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "jwt-token", body.Token)
	assert.Equal(t, "asha@example.com", body.User.Email)
}

func TestController_SignUp_InvalidEmailRejected(t *testing.T) {
	r := setupAuthRouter(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/signup",
		bytes.NewReader([]byte(`{"email":"not-an-email","password":"secret1","name":"X"}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestController_SignIn_WrongPassword(t *testing.T) {
	svc := &mockAuthService{
		signInFn: func(_ context.Context, _ *models.SignInRequest) (*models.AuthResponse, *services.ServiceError) {
			return nil, &services.ServiceError{StatusCode: 401, Message: "Invalid email or password"}
		},
	}
	r := setupAuthRouter(svc)

	payload, _ := json.Marshal(models.SignInRequest{Email: "asha@example.com", Password: "wrong"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/signin", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestController_Logout_Success(t *testing.T) {
	var loggedOut string
	svc := &mockAuthService{
		logoutFn: func(_ context.Context, userID string) *services.ServiceError {
			loggedOut = userID
			return nil
		},
	}
	r := gin.New()
	ac := controllers.NewAuthController(svc)
	r.Use(func(c *gin.Context) {
		c.Set("userID", "user-test-id")
		c.Next()
	})
	r.POST("/auth/logout", ac.Logout)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-test-id", loggedOut)
}
