package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"solidaire/internal/api"
	"solidaire/internal/localstore"
	"solidaire/internal/models"
)

// State - состояние жизненного цикла сессии
type State int

const (
	StateAnonymous State = iota
	StateRefreshing
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateRefreshing:
		return "refreshing"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

var (
	ErrNoToken        = errors.New("токен аутентификации отсутствует")
	ErrInvalidSession = errors.New("сессия недействительна")
)

// API - удалённые вызовы, нужные сессии
type API interface {
	Login(ctx context.Context, email, password string) (*api.LoginResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)
	Me(ctx context.Context) (*models.User, error)
	VerifyEmail(ctx context.Context, token string) (*api.MessageResponse, error)
	ForgotPassword(ctx context.Context, email string) (*api.MessageResponse, error)
	ResetPassword(ctx context.Context, token, password string) (*api.MessageResponse, error)
}

// Service - единственный владелец токена и кэшированного профиля.
// Создаётся явно и передаётся страницам через внедрение зависимостей.
type Service struct {
	api     API
	storage localstore.Storage
	logger  zerolog.Logger

	mu    sync.RWMutex
	state State
	token string
	user  *models.User
}

// NewService поднимает сессию из хранилища. Токен без профиля оставляет
// сессию в переходном состоянии StateRefreshing до вызова Restore.
func NewService(remote API, storage localstore.Storage, logger zerolog.Logger) *Service {
	s := &Service{
		api:     remote,
		storage: storage,
		logger:  logger,
		state:   StateAnonymous,
	}

	token, hasToken := storage.Get(localstore.KeyAuthToken)
	if !hasToken || token == "" {
		return s
	}
	s.token = token
	s.state = StateRefreshing

	if raw, ok := storage.Get(localstore.KeyAuthUser); ok {
		var user models.User
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			// повреждённый профиль отбрасываем, токен ещё может быть валиден
			_ = storage.Delete(localstore.KeyAuthUser)
		} else {
			s.user = &user
			s.state = StateAuthenticated
		}
	}

	return s
}

// Restore завершает переходное состояние: токен без профиля обменивается на
// профиль, любая неудача приводит к анонимной сессии. Из Restore сессия
// никогда не остаётся в StateRefreshing.
func (s *Service) Restore(ctx context.Context) {
	if s.CurrentState() != StateRefreshing {
		return
	}

	if _, err := s.CurrentUser(ctx); err != nil {
		s.logger.Debug().Err(err).Msg("восстановление сессии не удалось")
		s.Logout()
	}
}

func (s *Service) Login(ctx context.Context, email, password string) (*api.LoginResponse, error) {
	response, err := s.api.Login(ctx, email, password)
	if err != nil {
		// ошибка сервера (неверные данные, неподтверждённый email) уходит наверх как есть
		return nil, err
	}

	s.setAuth(response.Token, response.User)

	s.logger.Info().Str("email", response.User.Email).Msg("вход выполнен")
	return response, nil
}

// Register создаёт аккаунт, но не открывает сессию: токен сервер не возвращает
func (s *Service) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	return s.api.Register(ctx, req)
}

// Logout безусловно очищает сессию и хранилище, никогда не завершается ошибкой
func (s *Service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = nil
	s.state = StateAnonymous

	_ = s.storage.Delete(localstore.KeyAuthToken)
	_ = s.storage.Delete(localstore.KeyAuthUser)
}

// CurrentUser запрашивает профиль по токену и обновляет кэш. Ответ сервера
// с HTTP-ошибкой означает недействительную сессию и принудительный выход.
func (s *Service) CurrentUser(ctx context.Context) (*models.User, error) {
	token := s.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	// истёкший JWT отбрасываем локально, без похода на сервер
	if tokenExpired(token, time.Now()) {
		s.Logout()
		return nil, fmt.Errorf("%w: срок действия токена истёк", ErrInvalidSession)
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		if api.IsRemote(err) {
			s.Logout()
			return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
		}
		// сетевая ошибка не означает, что токен плохой
		return nil, err
	}

	s.mu.Lock()
	s.user = user
	s.state = StateAuthenticated
	s.mu.Unlock()

	if raw, err := json.Marshal(user); err == nil {
		_ = s.storage.Set(localstore.KeyAuthUser, string(raw))
	}

	return user, nil
}

// Stateless-проходы к API, состояние сессии не трогают

func (s *Service) VerifyEmail(ctx context.Context, token string) (*api.MessageResponse, error) {
	return s.api.VerifyEmail(ctx, token)
}

func (s *Service) ForgotPassword(ctx context.Context, email string) (*api.MessageResponse, error) {
	return s.api.ForgotPassword(ctx, email)
}

func (s *Service) ResetPassword(ctx context.Context, token, password string) (*api.MessageResponse, error) {
	return s.api.ResetPassword(ctx, token, password)
}

func (s *Service) setAuth(token string, user models.User) {
	s.mu.Lock()
	s.token = token
	s.user = &user
	s.state = StateAuthenticated
	s.mu.Unlock()

	_ = s.storage.Set(localstore.KeyAuthToken, token)
	if raw, err := json.Marshal(user); err == nil {
		_ = s.storage.Set(localstore.KeyAuthUser, string(raw))
	}
}

func (s *Service) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Service) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

func (s *Service) CurrentState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// IsAuthenticated истинно, только когда есть и токен, и профиль
func (s *Service) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}

func (s *Service) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.Role == models.RoleAdmin
}
