package bot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/prepmate/interview-backend/internal/config"
	"github.com/prepmate/interview-backend/internal/entity"
	"github.com/prepmate/interview-backend/internal/telegram/keyboard"
	"github.com/prepmate/interview-backend/internal/telegram/middleware"
	"github.com/prepmate/interview-backend/internal/telegram/render"
	"github.com/prepmate/interview-backend/internal/telegram/state"
)

const questionsPerInterview = 5

// InterviewUsecase is the slice of the interview service the bot drives.
type InterviewUsecase interface {
	StartInterview(ctx context.Context, ownerID string, req *entity.StartInterviewRequest) (*entity.Session, error)
	SubmitAnswer(ctx context.Context, ownerID, sessionID string, req *entity.SubmitAnswerRequest) (*entity.EvaluationResult, error)
	CompleteInterview(ctx context.Context, ownerID, sessionID string) (*entity.SummaryResult, error)
	GetSession(ctx context.Context, ownerID, sessionID string) (*entity.Session, error)
	DeleteSession(ctx context.Context, ownerID, sessionID string) error
}

// Bot runs mock interviews over Telegram long polling.
type Bot struct {
	api          *tgbotapi.BotAPI
	cfg          *config.TelegramConfig
	stateManager *state.Manager
	interviewUC  InterviewUsecase
	keyboard     *keyboard.Builder
	logger       *zap.Logger
	loggingMW    *middleware.LoggingMiddleware
	recoveryMW   *middleware.RecoveryMiddleware
	rateLimitMW  *middleware.RateLimiterMiddleware
	updatesChan  tgbotapi.UpdatesChannel
	stopChan     chan struct{}
	wg           sync.WaitGroup
}

// New creates a new Telegram bot
func New(
	cfg *config.TelegramConfig,
	stateManager *state.Manager,
	interviewUC InterviewUsecase,
	logger *zap.Logger,
) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("create bot API: %w", err)
	}
	api.Debug = cfg.Debug

	logger.Info("telegram bot authorized",
		zap.String("username", api.Self.UserName),
		zap.Int64("id", api.Self.ID),
	)

	bot := &Bot{
		api:          api,
		cfg:          cfg,
		stateManager: stateManager,
		interviewUC:  interviewUC,
		keyboard:     keyboard.NewBuilder(),
		logger:       logger,
		stopChan:     make(chan struct{}),
	}

	bot.loggingMW = middleware.NewLoggingMiddleware(logger)
	bot.recoveryMW = middleware.NewRecoveryMiddleware(logger, api)
	bot.rateLimitMW = middleware.NewRateLimiterMiddleware(
		cfg.RateLimitPerMinute,
		cfg.RateLimitBurst,
		logger,
		api,
	)

	return bot, nil
}

// Start starts the bot
func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("starting telegram bot")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.UpdateTimeout

	b.updatesChan = b.api.GetUpdatesChan(u)

	ctx = ctxzap.ToContext(ctx, b.logger)
	go b.processUpdates(ctx)

	b.logger.Info("telegram bot started successfully")
	return nil
}

// Stop stops the bot gracefully with timeout
func (b *Bot) Stop() error {
	b.logger.Info("stopping telegram bot")

	close(b.stopChan)
	b.api.StopReceivingUpdates()

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	shutdownTimeout := time.Duration(b.cfg.ShutdownTimeout) * time.Second
	select {
	case <-done:
		b.logger.Info("all handlers completed gracefully")
	case <-time.After(shutdownTimeout):
		b.logger.Warn("shutdown timeout exceeded, some handlers may not have completed",
			zap.Duration("timeout", shutdownTimeout),
		)
		return fmt.Errorf("shutdown timeout exceeded")
	}

	b.logger.Info("telegram bot stopped successfully")
	return nil
}

func (b *Bot) processUpdates(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			ctxzap.Info(ctx, "context cancelled, stopping update processing")
			return
		case <-b.stopChan:
			ctxzap.Info(ctx, "stop signal received, stopping update processing")
			return
		case update := <-b.updatesChan:
			b.wg.Add(1)
			go func(u tgbotapi.Update) {
				defer b.wg.Done()
				b.handleUpdateWithMiddleware(u)
			}(update)
		}
	}
}

func (b *Bot) handleUpdateWithMiddleware(update tgbotapi.Update) {
	b.rateLimitMW.Handle(update, func(u tgbotapi.Update) {
		b.loggingMW.Handle(u, func(u2 tgbotapi.Update) {
			b.recoveryMW.Handle(u2, func(u3 tgbotapi.Update) {
				b.handleUpdate(u3)
			})
		})
	})
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	ctx := ctxzap.ToContext(context.Background(), b.logger)

	if update.CallbackQuery != nil {
		b.handleCallbackQuery(ctx, update.CallbackQuery)
		return
	}
	if update.Message != nil {
		b.handleMessage(ctx, update.Message)
		return
	}
}

func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.IsCommand() {
		b.handleCommand(ctx, message)
		return
	}

	chatID := message.Chat.ID
	conv, ok := b.stateManager.Get(chatID)
	if !ok {
		b.sendText(chatID, render.MsgNoActive, nil)
		return
	}

	switch conv.Step {
	case state.StepAwaitJob:
		b.handleJobDescription(ctx, conv, message)
	case state.StepAnswering:
		b.handleAnswer(ctx, conv, message)
	default:
		// Setup steps advance via inline buttons, not free text.
		b.sendText(chatID, render.MsgChoosePersona, b.keyboard.PersonaKeyboard())
	}
}

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	command := message.Command()

	ctxzap.Info(ctx, "command received",
		zap.String("command", command),
		zap.Int64("user_id", message.From.ID),
	)

	switch command {
	case "start":
		b.sendText(message.Chat.ID, render.MsgWelcome, b.keyboard.StartKeyboard())
	case "help":
		b.sendText(message.Chat.ID, render.MsgHelp, nil)
	case "cancel":
		b.handleCancelCommand(ctx, message)
	default:
		b.sendText(message.Chat.ID, render.ErrUnknownCommand, nil)
	}
}

func (b *Bot) handleCancelCommand(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	conv, ok := b.stateManager.Get(chatID)
	if !ok {
		b.sendText(chatID, render.MsgNoActive, nil)
		return
	}

	if conv.SessionID != "" {
		if err := b.interviewUC.DeleteSession(ctx, ownerID(chatID), conv.SessionID); err != nil {
			ctxzap.Error(ctx, "failed to delete session",
				zap.Error(err),
				zap.String("session_id", conv.SessionID),
			)
		}
	}

	b.stateManager.Delete(chatID)
	b.sendText(chatID, render.MsgCancelled, nil)
}

func (b *Bot) handleCallbackQuery(ctx context.Context, query *tgbotapi.CallbackQuery) {
	data, err := keyboard.ParseCallback(query.Data)
	if err != nil {
		ctxzap.Error(ctx, "invalid callback data",
			zap.Error(err),
			zap.String("data", query.Data),
		)
		b.answerCallback(query.ID, "❌ Bad request")
		return
	}

	chatID := query.Message.Chat.ID

	ctxzap.Info(ctx, "callback query received",
		zap.String("action", data.Action),
		zap.String("value", data.Value),
		zap.Int64("chat_id", chatID),
	)

	b.answerCallback(query.ID, "")

	switch data.Action {
	case keyboard.ActionStart:
		b.stateManager.Put(&state.Conversation{ChatID: chatID, Step: state.StepChoosePersona})
		b.sendText(chatID, render.MsgChoosePersona, b.keyboard.PersonaKeyboard())

	case keyboard.ActionPersona:
		conv, ok := b.stateManager.Get(chatID)
		if !ok {
			b.sendText(chatID, render.MsgNoActive, nil)
			return
		}
		conv.Persona = data.Value
		conv.Step = state.StepChooseDifficulty
		b.stateManager.Put(conv)
		b.sendText(chatID, render.MsgChooseDifficulty, b.keyboard.DifficultyKeyboard())

	case keyboard.ActionDifficulty:
		conv, ok := b.stateManager.Get(chatID)
		if !ok {
			b.sendText(chatID, render.MsgNoActive, nil)
			return
		}
		conv.Difficulty = data.Value
		conv.Step = state.StepAwaitJob
		b.stateManager.Put(conv)
		b.sendText(chatID, render.MsgSendJob, nil)

	case keyboard.ActionFinish:
		conv, ok := b.stateManager.Get(chatID)
		if !ok || conv.SessionID == "" {
			b.sendText(chatID, render.MsgNoActive, nil)
			return
		}
		b.finishInterview(ctx, conv)

	default:
		ctxzap.Warn(ctx, "unknown callback action", zap.String("action", data.Action))
	}
}

// handleJobDescription starts the interview once the job description arrives.
func (b *Bot) handleJobDescription(ctx context.Context, conv *state.Conversation, message *tgbotapi.Message) {
	chatID := conv.ChatID
	conv.JobDescription = message.Text

	b.sendText(chatID, render.MsgGenerating, nil)

	session, err := b.interviewUC.StartInterview(ctx, ownerID(chatID), &entity.StartInterviewRequest{
		Persona:        conv.Persona,
		Difficulty:     conv.Difficulty,
		JobDescription: conv.JobDescription,
		NumQuestions:   questionsPerInterview,
	})
	if err != nil {
		ctxzap.Error(ctx, "failed to start interview", zap.Error(err))
		b.sendText(chatID, render.ErrGeneric, nil)
		return
	}

	conv.SessionID = session.ID
	conv.Step = state.StepAnswering
	b.stateManager.Put(conv)

	b.sendText(chatID, render.Question(0, len(session.Questions), session.Questions[0]), nil)
}

// handleAnswer scores one answer and asks the next question.
func (b *Bot) handleAnswer(ctx context.Context, conv *state.Conversation, message *tgbotapi.Message) {
	chatID := conv.ChatID

	session, err := b.interviewUC.GetSession(ctx, ownerID(chatID), conv.SessionID)
	if err != nil {
		ctxzap.Error(ctx, "failed to load session", zap.Error(err))
		b.stateManager.Delete(chatID)
		b.sendText(chatID, render.ErrGeneric, nil)
		return
	}

	index := session.NextQuestionIndex()
	if index < 0 {
		b.finishInterview(ctx, conv)
		return
	}

	b.sendText(chatID, render.MsgEvaluating, nil)

	result, err := b.interviewUC.SubmitAnswer(ctx, ownerID(chatID), conv.SessionID, &entity.SubmitAnswerRequest{
		QuestionIndex: index,
		Answer:        message.Text,
	})
	if err != nil {
		if errors.Is(err, entity.ErrAllQuestionsDone) {
			b.finishInterview(ctx, conv)
			return
		}
		ctxzap.Error(ctx, "failed to submit answer", zap.Error(err))
		b.sendText(chatID, render.ErrGeneric, nil)
		return
	}

	b.sendText(chatID, render.Feedback(result), nil)

	if index+1 < len(session.Questions) {
		b.sendText(chatID, render.Question(index+1, len(session.Questions), session.Questions[index+1]), nil)
		return
	}

	b.sendText(chatID, "That was the last question!", b.keyboard.FinishKeyboard())
}

func (b *Bot) finishInterview(ctx context.Context, conv *state.Conversation) {
	chatID := conv.ChatID

	summary, err := b.interviewUC.CompleteInterview(ctx, ownerID(chatID), conv.SessionID)
	if err != nil {
		ctxzap.Error(ctx, "failed to complete interview", zap.Error(err))
		b.sendText(chatID, render.ErrGeneric, nil)
		return
	}

	b.stateManager.Delete(chatID)
	b.sendText(chatID, render.Summary(summary), nil)
}

func (b *Bot) sendText(chatID int64, text string, replyMarkup interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	if replyMarkup != nil {
		msg.ReplyMarkup = replyMarkup
	}
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
		)
	}
}

func (b *Bot) answerCallback(callbackID string, text string) {
	callback := tgbotapi.NewCallback(callbackID, text)
	if _, err := b.api.Request(callback); err != nil {
		b.logger.Error("failed to answer callback",
			zap.Error(err),
			zap.String("callback_id", callbackID),
		)
	}
}

// ownerID namespaces telegram chats in the shared session store.
func ownerID(chatID int64) string {
	return fmt.Sprintf("tg:%d", chatID)
}
