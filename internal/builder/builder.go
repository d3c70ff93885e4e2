package builder

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/prepmate/interview-backend/internal/api"
	interviewapi "github.com/prepmate/interview-backend/internal/api/interview"
	resumeapi "github.com/prepmate/interview-backend/internal/api/resume"
	userapi "github.com/prepmate/interview-backend/internal/api/user"
	"github.com/prepmate/interview-backend/internal/auth"
	"github.com/prepmate/interview-backend/internal/config"
	"github.com/prepmate/interview-backend/internal/integration/llm"
	"github.com/prepmate/interview-backend/internal/interview"
	"github.com/prepmate/interview-backend/internal/pkg/extractor"
	"github.com/prepmate/interview-backend/internal/pkg/validator"
	"github.com/prepmate/interview-backend/internal/repository"
	"github.com/prepmate/interview-backend/internal/resume"
	"github.com/prepmate/interview-backend/internal/telegram"
	interviewuc "github.com/prepmate/interview-backend/internal/usecase/interview"
	useruc "github.com/prepmate/interview-backend/internal/usecase/user"
)

// deps holds everything both entry points need.
type deps struct {
	cfg          *config.Config
	logger       *zap.Logger
	db           *pgxpool.Pool
	llmCloser    io.Closer
	sessionStore *repository.SessionStore
	userStore    *repository.UserStore
	interviewUC  *interviewuc.InterviewUsecase
	userUC       *useruc.UserUsecase
	validator    *validator.Validator
	tokens       *auth.TokenService
}

func Build() (*App, error) {
	d, err := buildDeps(context.Background())
	if err != nil {
		return nil, err
	}

	interviewHandler := interviewapi.NewHandler(d.interviewUC)
	userHandler := userapi.NewHandler(d.userUC)
	resumeHandler := resumeapi.NewHandler(
		extractor.New(),
		resume.NewParser(),
		d.validator,
		d.cfg.FileUploadCfg,
	)
	d.logger.Info("API handlers initialized")

	router := api.SetupRouter(interviewHandler, userHandler, resumeHandler, d.tokens, d.logger)
	d.logger.Info("HTTP router configured")

	server := &http.Server{
		Addr:         d.cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	d.logger.Info("Application built successfully",
		zap.String("environment", d.cfg.Environment),
	)

	return &App{
		server:    server,
		db:        d.db,
		llmCloser: d.llmCloser,
		logger:    d.logger,
	}, nil
}

// BuildTelegramBot creates and initializes the Telegram bot
func BuildTelegramBot() (telegram.Bot, *zap.Logger, error) {
	d, err := buildDeps(context.Background())
	if err != nil {
		return nil, nil, err
	}

	bot, err := telegram.NewBot(&d.cfg.TelegramCfg, d.interviewUC, d.logger)
	if err != nil {
		if d.db != nil {
			d.db.Close()
		}
		return nil, nil, fmt.Errorf("initialize telegram bot: %w", err)
	}

	d.logger.Info("Telegram bot built successfully",
		zap.String("environment", d.cfg.Environment),
	)
	return bot, d.logger, nil
}

// buildDeps wires config, storage, the LLM provider, and the use cases.
func buildDeps(ctx context.Context) (*deps, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Postgres is the durable store; if it is unreachable we keep running on
	// the in-memory fallback so interviews still work during an outage.
	var db *pgxpool.Pool
	var sessionDurable repository.SessionRepository
	var userDurable repository.UserRepository

	db, err = setupDatabase(ctx, cfg, logger)
	if err != nil {
		logger.Warn("database unavailable, continuing with in-memory storage only",
			zap.Error(err),
		)
		db = nil
	} else {
		logger.Info("Running database migrations")
		if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
			db.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("Database migrations completed successfully")

		sessionDurable = repository.NewSessionPostgres(db)
		userDurable = repository.NewUserPostgres(db)
	}

	sessionStore := repository.NewSessionStore(sessionDurable, repository.NewSessionMemory(), logger)
	userStore := repository.NewUserStore(userDurable, repository.NewUserMemory(), logger)
	logger.Info("Repositories initialized")

	completer, llmCloser, err := setupCompleter(ctx, cfg, logger)
	if err != nil {
		if db != nil {
			db.Close()
		}
		return nil, fmt.Errorf("setup LLM provider: %w", err)
	}

	v := validator.New(cfg.FileUploadCfg.MaxResumeSize)
	tokens := auth.NewTokenService(cfg.AuthCfg)

	interviewer := interview.NewService(completer)

	interviewUC := interviewuc.NewUsecase(sessionStore, interviewer, v, logger)
	userUC := useruc.NewUsecase(userStore, tokens, v, logger)
	logger.Info("Use cases initialized")

	return &deps{
		cfg:          cfg,
		logger:       logger,
		db:           db,
		llmCloser:    llmCloser,
		sessionStore: sessionStore,
		userStore:    userStore,
		interviewUC:  interviewUC,
		userUC:       userUC,
		validator:    v,
		tokens:       tokens,
	}, nil
}

// setupCompleter picks the text-completion provider from config.
func setupCompleter(ctx context.Context, cfg *config.Config, logger *zap.Logger) (interview.Completer, io.Closer, error) {
	if cfg.EnableMocks {
		logger.Info("Using mock LLM connector")
		return llm.NewMockConnector(logger), nil, nil
	}

	switch cfg.LLMProvider {
	case config.ProviderGemini:
		logger.Info("Using Gemini LLM connector", zap.String("model", cfg.GeminiCfg.Model))
		conn, err := llm.NewGeminiConnector(ctx, cfg.GeminiCfg, logger)
		if err != nil {
			return nil, nil, err
		}
		return conn, conn, nil
	case config.ProviderMock:
		logger.Info("Using mock LLM connector")
		return llm.NewMockConnector(logger), nil, nil
	default:
		logger.Info("Using HTTP LLM connector", zap.String("url", cfg.LLMConnectorCfg.Url))
		return llm.NewConnector(cfg.LLMConnectorCfg, logger), nil, nil
	}
}
