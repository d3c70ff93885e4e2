package telegram

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/prepmate/interview-backend/internal/config"
	"github.com/prepmate/interview-backend/internal/telegram/bot"
	"github.com/prepmate/interview-backend/internal/telegram/state"
)

// Bot is the main telegram bot interface
type Bot interface {
	Start(ctx context.Context) error
	Stop() error
}

// NewBot initializes the telegram bot with all dependencies
func NewBot(
	cfg *config.TelegramConfig,
	interviewUC bot.InterviewUsecase,
	logger *zap.Logger,
) (Bot, error) {
	stateManager := state.NewManager(cfg.StateTTL)

	b, err := bot.New(cfg, stateManager, interviewUC, logger)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	logger.Info("telegram bot initialized successfully")
	return b, nil
}
