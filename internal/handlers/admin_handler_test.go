package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"talentsite_backend/internal/middleware"
	"talentsite_backend/internal/models"
	"talentsite_backend/internal/services/dto"
	"talentsite_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAdminService struct{}

func (s *stubAdminService) ListUsers(ctx context.Context, query *dto.ListQuery) (*dto.UserListResponse, error) {
	return &dto.UserListResponse{}, nil
}
func (s *stubAdminService) BlockUser(ctx context.Context, id uint) error   { return nil }
func (s *stubAdminService) UnblockUser(ctx context.Context, id uint) error { return nil }
func (s *stubAdminService) SuspendUser(ctx context.Context, id uint, req *dto.SuspendRequest) error {
	return nil
}
func (s *stubAdminService) UnsuspendUser(ctx context.Context, id uint) error { return nil }
func (s *stubAdminService) ChangePlan(ctx context.Context, id uint, plan string) error {
	return nil
}
func (s *stubAdminService) ListTickets(ctx context.Context, query *dto.ListQuery) ([]models.Ticket, int64, error) {
	return nil, 0, nil
}
func (s *stubAdminService) UpdateTicketStatus(ctx context.Context, id uint, status string) error {
	return nil
}

func TestAdminProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	base := NewBaseHandler(validator.New())
	h := NewAdminHandler(base, &stubAuthService{}, &stubAdminService{}, &stubUserService{
		profile: &dto.UserResponse{ID: 7, Email: "root@example.com", Role: "admin"},
	})

	r := gin.New()
	r.GET("/admin/profile", func(c *gin.Context) {
		// AuthMiddleware кладет ID в контекст; тут подставляем его напрямую
		c.Set(middleware.ContextUserID, uint(7))
	}, h.Profile)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/profile", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "root@example.com", data["email"])
}

func TestAdminProfileWithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	base := NewBaseHandler(validator.New())
	h := NewAdminHandler(base, &stubAuthService{}, &stubAdminService{}, &stubUserService{})

	r := gin.New()
	r.GET("/admin/profile", h.Profile)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/profile", nil))

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
}
