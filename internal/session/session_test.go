package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"solidaire/internal/api"
	"solidaire/internal/localstore"
	"solidaire/internal/models"
)

type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) Login(ctx context.Context, email, password string) (*api.LoginResponse, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.LoginResponse), args.Error(1)
}

func (m *MockAPI) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.RegisterResponse), args.Error(1)
}

func (m *MockAPI) Me(ctx context.Context) (*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAPI) VerifyEmail(ctx context.Context, token string) (*api.MessageResponse, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.MessageResponse), args.Error(1)
}

func (m *MockAPI) ForgotPassword(ctx context.Context, email string) (*api.MessageResponse, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.MessageResponse), args.Error(1)
}

func (m *MockAPI) ResetPassword(ctx context.Context, token, password string) (*api.MessageResponse, error) {
	args := m.Called(ctx, token, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.MessageResponse), args.Error(1)
}

func testUser() models.User {
	return models.User{
		ID:         1,
		Email:      "user@example.com",
		FirstName:  "Ivan",
		LastName:   "Petrov",
		Role:       models.RoleUser,
		IsVerified: true,
	}
}

func TestLogin_Success(t *testing.T) {
	remote := new(MockAPI)
	storage := localstore.NewMemoryStorage()
	service := NewService(remote, storage, zerolog.Nop())

	remote.On("Login", mock.Anything, "user@example.com", "Secret1").
		Return(&api.LoginResponse{Token: "t1", User: testUser()}, nil)

	response, err := service.Login(context.Background(), "user@example.com", "Secret1")

	assert.NoError(t, err)
	assert.Equal(t, "t1", response.Token)
	assert.True(t, service.IsAuthenticated())
	assert.Equal(t, StateAuthenticated, service.CurrentState())

	// обе записи должны оказаться в персистентном хранилище
	token, ok := storage.Get(localstore.KeyAuthToken)
	assert.True(t, ok)
	assert.Equal(t, "t1", token)
	_, ok = storage.Get(localstore.KeyAuthUser)
	assert.True(t, ok)
}

func TestLogin_RemoteErrorPropagated(t *testing.T) {
	remote := new(MockAPI)
	service := NewService(remote, localstore.NewMemoryStorage(), zerolog.Nop())

	remoteErr := &api.Error{StatusCode: 403, Message: "Неверный email или пароль"}
	remote.On("Login", mock.Anything, "user@example.com", "bad").
		Return(nil, remoteErr)

	_, err := service.Login(context.Background(), "user@example.com", "bad")

	assert.ErrorIs(t, err, remoteErr)
	assert.False(t, service.IsAuthenticated())
}

func TestLogout_AlwaysClears(t *testing.T) {
	remote := new(MockAPI)
	storage := localstore.NewMemoryStorage()
	service := NewService(remote, storage, zerolog.Nop())

	remote.On("Login", mock.Anything, mock.Anything, mock.Anything).
		Return(&api.LoginResponse{Token: "t1", User: testUser()}, nil)
	_, err := service.Login(context.Background(), "user@example.com", "Secret1")
	assert.NoError(t, err)

	service.Logout()

	assert.False(t, service.IsAuthenticated())
	assert.Equal(t, StateAnonymous, service.CurrentState())
	_, ok := storage.Get(localstore.KeyAuthToken)
	assert.False(t, ok)
	_, ok = storage.Get(localstore.KeyAuthUser)
	assert.False(t, ok)

	// повторный выход из анонимного состояния безопасен
	service.Logout()
	assert.False(t, service.IsAuthenticated())
}

func TestRestore_TokenWithoutUser_Success(t *testing.T) {
	storage := localstore.NewMemoryStorage()
	assert.NoError(t, storage.Set(localstore.KeyAuthToken, "persisted-token"))

	remote := new(MockAPI)
	user := testUser()
	remote.On("Me", mock.Anything).Return(&user, nil)

	service := NewService(remote, storage, zerolog.Nop())
	assert.Equal(t, StateRefreshing, service.CurrentState())

	service.Restore(context.Background())

	assert.Equal(t, StateAuthenticated, service.CurrentState())
	assert.True(t, service.IsAuthenticated())
	_, ok := storage.Get(localstore.KeyAuthUser)
	assert.True(t, ok)
}

func TestRestore_TokenWithoutUser_InvalidSession(t *testing.T) {
	storage := localstore.NewMemoryStorage()
	assert.NoError(t, storage.Set(localstore.KeyAuthToken, "stale-token"))

	remote := new(MockAPI)
	remote.On("Me", mock.Anything).
		Return(nil, &api.Error{StatusCode: 401, Message: "Недействительный токен"})

	service := NewService(remote, storage, zerolog.Nop())
	service.Restore(context.Background())

	// сессия не зависает в refreshing, а сбрасывается до анонимной
	assert.Equal(t, StateAnonymous, service.CurrentState())
	_, ok := storage.Get(localstore.KeyAuthToken)
	assert.False(t, ok)
}

func TestRestore_NetworkErrorResetsSession(t *testing.T) {
	storage := localstore.NewMemoryStorage()
	assert.NoError(t, storage.Set(localstore.KeyAuthToken, "some-token"))

	remote := new(MockAPI)
	remote.On("Me", mock.Anything).Return(nil, assert.AnError)

	service := NewService(remote, storage, zerolog.Nop())
	service.Restore(context.Background())

	assert.Equal(t, StateAnonymous, service.CurrentState())
}

func TestCurrentUser_NoToken(t *testing.T) {
	service := NewService(new(MockAPI), localstore.NewMemoryStorage(), zerolog.Nop())

	_, err := service.CurrentUser(context.Background())

	assert.ErrorIs(t, err, ErrNoToken)
}

func TestCurrentUser_ExpiredJWT(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	tokenString, err := expired.SignedString([]byte("any-secret"))
	assert.NoError(t, err)

	storage := localstore.NewMemoryStorage()
	assert.NoError(t, storage.Set(localstore.KeyAuthToken, tokenString))

	remote := new(MockAPI)
	service := NewService(remote, storage, zerolog.Nop())

	_, err = service.CurrentUser(context.Background())

	// истёкший токен отбрасывается локально, запрос Me не выполняется
	assert.ErrorIs(t, err, ErrInvalidSession)
	assert.Equal(t, StateAnonymous, service.CurrentState())
	remote.AssertNotCalled(t, "Me", mock.Anything)
}

func TestNewService_CorruptStoredUser(t *testing.T) {
	storage := localstore.NewMemoryStorage()
	assert.NoError(t, storage.Set(localstore.KeyAuthToken, "some-token"))
	assert.NoError(t, storage.Set(localstore.KeyAuthUser, "{not-json"))

	service := NewService(new(MockAPI), storage, zerolog.Nop())

	// повреждённый профиль выброшен, сессия ждёт обновления профиля
	assert.Equal(t, StateRefreshing, service.CurrentState())
	_, ok := storage.Get(localstore.KeyAuthUser)
	assert.False(t, ok)
}

func TestIsAdmin(t *testing.T) {
	remote := new(MockAPI)
	service := NewService(remote, localstore.NewMemoryStorage(), zerolog.Nop())

	admin := testUser()
	admin.Role = models.RoleAdmin
	remote.On("Login", mock.Anything, mock.Anything, mock.Anything).
		Return(&api.LoginResponse{Token: "t1", User: admin}, nil)

	_, err := service.Login(context.Background(), "admin@example.com", "Secret1")
	assert.NoError(t, err)
	assert.True(t, service.IsAdmin())
}

func TestTokenExpired_OpaqueToken(t *testing.T) {
	assert.False(t, tokenExpired("opaque-session-token", time.Now()))
}

func TestTokenExpired_FutureExp(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := token.SignedString([]byte("any-secret"))
	assert.NoError(t, err)

	assert.False(t, tokenExpired(tokenString, time.Now()))
}
