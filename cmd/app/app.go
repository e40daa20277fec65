package app

import (
	"fmt"

	"github.com/rs/zerolog"
	"solidaire/internal/api"
	"solidaire/internal/cache"
	"solidaire/internal/config"
	"solidaire/internal/forms"
	"solidaire/internal/localstore"
	"solidaire/internal/logging"
	"solidaire/internal/query"
	"solidaire/internal/session"
)

// App - собранные зависимости клиента
type App struct {
	Cfg     *config.Config
	Logger  zerolog.Logger
	API     *api.Client
	Session *session.Service
	Queries *query.Client
	Forms   *forms.Validator
}

func New(cfg *config.Config) (*App, error) {
	logger := logging.New(cfg.Environment)

	storage, err := localstore.NewFileStorage(cfg.SessionDir)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть локальное хранилище: %w", err)
	}

	// API-клиент берёт токен у сессии, сессия ходит в API через этот же
	// клиент, поэтому источник токена подключается через замыкание
	var sess *session.Service
	apiClient := api.NewClient(cfg, logger, func() string {
		if sess == nil {
			return ""
		}
		return sess.Token()
	})
	sess = session.NewService(apiClient, storage, logger)

	queries := query.NewClient(cache.NewMemory(), cfg.CacheTTL, logger)

	return &App{
		Cfg:     cfg,
		Logger:  logger,
		API:     apiClient,
		Session: sess,
		Queries: queries,
		Forms:   forms.NewValidator(),
	}, nil
}
