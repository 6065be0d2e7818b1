package services

import (
	"context"
	"testing"
	"time"

	"talentsite_backend/internal/auth"
	"talentsite_backend/internal/config"
	"talentsite_backend/internal/models"
	"talentsite_backend/internal/repositories"
	"talentsite_backend/internal/services/dto"
	"talentsite_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Токенам нужен секрет, файл конфигурации в тестах не читаем
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 5
	config.AppConfig = cfg
}

type fakeUserRepo struct {
	byEmail map[string]*models.User
	created []*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{byEmail: map[string]*models.User{}}
	for _, u := range users {
		r.byEmail[u.Email] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if _, ok := r.byEmail[user.Email]; ok {
		return repositories.ErrUserAlreadyExists
	}
	user.ID = uint(len(r.byEmail) + 1)
	r.byEmail[user.Email] = user
	r.created = append(r.created, user)
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, limit, offset int) ([]models.User, int64, error) {
	return nil, 0, nil
}

func (r *fakeUserRepo) UpdateName(ctx context.Context, id uint, name string) error  { return nil }
func (r *fakeUserRepo) SetBlocked(ctx context.Context, id uint, blocked bool) error { return nil }
func (r *fakeUserRepo) SetSuspended(ctx context.Context, id uint, from, to *time.Time) error {
	return nil
}
func (r *fakeUserRepo) ClearSuspension(ctx context.Context, id uint) error   { return nil }
func (r *fakeUserRepo) SetPlan(ctx context.Context, id uint, plan string) error { return nil }
func (r *fakeUserRepo) CountAdmins(ctx context.Context) (int64, error)       { return 0, nil }

func testUser(t *testing.T, email, password, role string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &models.User{ID: 1, Name: "Test", Email: email, PasswordHash: hash, Role: role, Plan: "free"}
}

func TestRegisterIssuesToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "longenough",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alex@example.com", resp.User.Email)
	assert.Equal(t, auth.RoleUser, resp.User.Role)

	// Пароль не хранится в открытом виде
	require.Len(t, repo.created, 1)
	assert.NotEqual(t, "longenough", repo.created[0].PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo(testUser(t, "taken@example.com", "password1", auth.RoleUser))
	svc := NewAuthService(repo)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Alex",
		Email:    "taken@example.com",
		Password: "longenough",
	})
	assert.True(t, apperrors.Is(err, apperrors.ErrEmailAlreadyExists))
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo(testUser(t, "a@example.com", "rightpass1", auth.RoleUser))
	svc := NewAuthService(repo)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "a@example.com",
		Password: "wrongpass1",
	})
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidCredentials))
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever1",
	})
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidCredentials))
}

func TestLoginBlockedUser(t *testing.T) {
	user := testUser(t, "b@example.com", "password1", auth.RoleUser)
	user.Blocked = true
	svc := NewAuthService(newFakeUserRepo(user))

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "b@example.com",
		Password: "password1",
	})
	assert.True(t, apperrors.Is(err, apperrors.ErrUserBlocked))
}

func TestLoginSuspendedWindow(t *testing.T) {
	user := testUser(t, "s@example.com", "password1", auth.RoleUser)
	from := time.Now().Add(-time.Hour)
	to := time.Now().Add(time.Hour)
	user.Suspended = true
	user.SuspendedFrom = &from
	user.SuspendedTo = &to
	svc := NewAuthService(newFakeUserRepo(user))

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "s@example.com",
		Password: "password1",
	})
	assert.True(t, apperrors.Is(err, apperrors.ErrUserSuspended))
}

func TestLoginExpiredSuspension(t *testing.T) {
	user := testUser(t, "e@example.com", "password1", auth.RoleUser)
	from := time.Now().Add(-48 * time.Hour)
	to := time.Now().Add(-24 * time.Hour)
	user.Suspended = true
	user.SuspendedFrom = &from
	user.SuspendedTo = &to
	svc := NewAuthService(newFakeUserRepo(user))

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "e@example.com",
		Password: "password1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestAdminLoginRejectsRegularUser(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(testUser(t, "u@example.com", "password1", auth.RoleUser)))

	_, err := svc.AdminLogin(context.Background(), &dto.LoginRequest{
		Email:    "u@example.com",
		Password: "password1",
	})
	assert.True(t, apperrors.Is(err, apperrors.ErrForbidden))
}

func TestAdminLoginAcceptsAdmin(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(testUser(t, "root@example.com", "password1", auth.RoleAdmin)))

	resp, err := svc.AdminLogin(context.Background(), &dto.LoginRequest{
		Email:    "root@example.com",
		Password: "password1",
	})
	require.NoError(t, err)

	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, claims.Role)
}
