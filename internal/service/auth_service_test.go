package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Abh2004/Variphi-assignment/internal/models"
	appErrors "github.com/Abh2004/Variphi-assignment/pkg/errors"
)

type mockUserRepo struct {
	usersByEmail map[string]*models.User
	usersByID    map[int64]*models.User
	created      []*models.User
	createErr    error
	listErr      error
	nextID       int64
}

func newMockUserRepo(users ...*models.User) *mockUserRepo {
	m := &mockUserRepo{
		usersByEmail: make(map[string]*models.User),
		usersByID:    make(map[int64]*models.User),
		nextID:       1,
	}
	for _, u := range users {
		m.usersByEmail[u.Email] = u
		m.usersByID[u.ID] = u
		if u.ID >= m.nextID {
			m.nextID = u.ID + 1
		}
	}
	return m
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := m.usersByEmail[email]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return user, nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*models.User, error) {
	user, ok := m.usersByID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return user, nil
}

func (m *mockUserRepo) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var users []models.User
	for _, u := range m.usersByID {
		if filter.Role != nil && u.Role != *filter.Role {
			continue
		}
		users = append(users, *u)
	}
	return users, nil
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	user.ID = m.nextID
	m.nextID++
	m.usersByEmail[user.Email] = user
	m.usersByID[user.ID] = user
	m.created = append(m.created, user)
	return nil
}

func newAuthService(repo *mockUserRepo) *AuthService {
	return NewAuthService(repo, validator.New(), zap.NewNop(), AuthConfig{
		Secret:     "secret",
		Expiration: time.Hour,
	})
}

func TestAuthServiceRegister(t *testing.T) {
	repo := newMockUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:     "Alice Student",
		Email:    "Alice@Example.com",
		Password: "password",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.NotEqual(t, "password", user.PasswordHash)
	assert.True(t, VerifyPassword("password", user.PasswordHash))
}

func TestAuthServiceRegisterDuplicateEmail(t *testing.T) {
	repo := newMockUserRepo(&models.User{ID: 1, Email: "alice@example.com", Role: models.RoleStudent})
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:     "Alice Again",
		Email:    "alice@example.com",
		Password: "password",
		Role:     models.RoleStudent,
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
	assert.Equal(t, "Email already registered", appErr.Message)
	assert.Empty(t, repo.created)
}

func TestAuthServiceRegisterInvalidRole(t *testing.T) {
	svc := newAuthService(newMockUserRepo())

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "password",
		Role:     "professor",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginSuccess(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	repo := newMockUserRepo(&models.User{
		ID:           7,
		Email:        "tutor@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleTutor,
	})
	svc := newAuthService(repo)

	user, token, err := svc.Login(context.Background(), "tutor@example.com", "password")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(7), user.ID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, models.RoleTutor, claims.Role)
	assert.Equal(t, "tutor@example.com", claims.Email())
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	repo := newMockUserRepo(&models.User{ID: 1, Email: "user@example.com", PasswordHash: string(hash)})
	svc := newAuthService(repo)

	_, _, err := svc.Login(context.Background(), "user@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginUnknownEmail(t *testing.T) {
	svc := newAuthService(newMockUserRepo())

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "password")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)
	assert.Equal(t, "Incorrect email or password", appErr.Message)
}

func TestValidateTokenExpired(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewAuthService(repo, validator.New(), zap.NewNop(), AuthConfig{
		Secret:     "secret",
		Expiration: -time.Minute,
	})

	token, err := svc.GenerateAccessToken(&models.User{ID: 1, Email: "user@example.com", Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUnauthorized.Status, appErr.Status)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := newAuthService(newMockUserRepo())
	verifier := NewAuthService(newMockUserRepo(), validator.New(), zap.NewNop(), AuthConfig{
		Secret:     "other",
		Expiration: time.Hour,
	})

	token, err := issuer.GenerateAccessToken(&models.User{ID: 1, Email: "user@example.com", Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := newAuthService(newMockUserRepo())

	_, err := svc.ValidateToken("not-a-token")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Status, appErrors.FromError(err).Status)
}

func TestValidateTokenEmptySubject(t *testing.T) {
	svc := newAuthService(newMockUserRepo())

	token, err := svc.GenerateAccessToken(&models.User{ID: 1, Email: "", Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Status, appErrors.FromError(err).Status)
}
