package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"talentsite_backend/internal/models"
	"talentsite_backend/internal/services/dto"
	"talentsite_backend/internal/validator"
	"talentsite_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	resp *dto.AuthResponse
	err  error
}

func (s *stubAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	return s.resp, s.err
}

func (s *stubAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	return s.resp, s.err
}

func (s *stubAuthService) AdminLogin(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	return s.resp, s.err
}

type stubUserService struct {
	profile *dto.UserResponse
	err     error
}

func (s *stubUserService) GetProfile(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	return s.profile, s.err
}

func (s *stubUserService) UpdateProfile(ctx context.Context, userID uint, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	return s.profile, s.err
}

func (s *stubUserService) CreateTicket(ctx context.Context, userID *uint, req *dto.TicketRequest) (*models.Ticket, error) {
	return &models.Ticket{ID: 1, Name: req.Name, Subject: req.Subject, Status: "open"}, s.err
}

func (s *stubUserService) MyTickets(ctx context.Context, userID uint) ([]models.Ticket, error) {
	return nil, s.err
}

func newUserTestRouter(auth *stubAuthService, users *stubUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	base := NewBaseHandler(validator.New())
	h := NewUserHandler(base, auth, users)

	r := gin.New()
	r.POST("/users/register", h.Register)
	r.POST("/users/login", h.Login)
	r.POST("/users/tickets", h.CreateTicket)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginSuccessEnvelope(t *testing.T) {
	auth := &stubAuthService{resp: &dto.AuthResponse{
		Token: "jwt-token",
		User:  dto.UserResponse{ID: 1, Email: "a@b.c", Role: "user"},
	}}
	r := newUserTestRouter(auth, &stubUserService{})

	w := doJSON(t, r, http.MethodPost, "/users/login",
		gin.H{"email": "a@b.c", "password": "secret123"})

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Login successful", body["message"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "jwt-token", data["token"])
}

func TestLoginInvalidCredentialsEnvelope(t *testing.T) {
	auth := &stubAuthService{err: apperrors.ErrInvalidCredentials}
	r := newUserTestRouter(auth, &stubUserService{})

	w := doJSON(t, r, http.MethodPost, "/users/login",
		gin.H{"email": "a@b.c", "password": "wrong-one"})

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, string(apperrors.CodeInvalidCredentials), body["error"])
}

func TestRegisterValidationFailure(t *testing.T) {
	r := newUserTestRouter(&stubAuthService{}, &stubUserService{})

	// Пароль короче минимума
	w := doJSON(t, r, http.MethodPost, "/users/register",
		gin.H{"name": "Alex", "email": "a@b.c", "password": "short"})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
}

func TestCreateTicketAnonymous(t *testing.T) {
	r := newUserTestRouter(&stubAuthService{}, &stubUserService{})

	w := doJSON(t, r, http.MethodPost, "/users/tickets", gin.H{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"subject": "Question",
		"message": "How do I subscribe?",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
}
