package interview

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/prepmate/interview-backend/internal/auth"
	"github.com/prepmate/interview-backend/internal/entity"
	"github.com/prepmate/interview-backend/internal/pkg/logger"
	"github.com/prepmate/interview-backend/internal/pkg/response"
)

type Handler struct {
	usecase InterviewUsecase
}

func NewHandler(usecase InterviewUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// StartInterview handles POST /interviews
func (h *Handler) StartInterview(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "StartInterview")
	ownerID := auth.UserIDFromContext(ctx)

	var req entity.StartInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctxzap.Info(ctx, "starting interview",
		zap.String("persona", req.Persona),
		zap.String("difficulty", req.Difficulty),
		zap.Int("num_questions", req.NumQuestions),
	)

	session, err := h.usecase.StartInterview(ctx, ownerID, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Created(w, toSessionResponse(session))
}

// ListSessions handles GET /interviews
func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListSessions")
	ownerID := auth.UserIDFromContext(ctx)

	sessions, err := h.usecase.ListSessions(ctx, ownerID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, toSessionListItems(sessions))
}

// GetSession handles GET /interviews/{id}
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	ctx := logger.AddFields(logger.WithAction(r.Context(), "GetSession"),
		zap.String("session_id", sessionID),
	)
	ownerID := auth.UserIDFromContext(ctx)

	session, err := h.usecase.GetSession(ctx, ownerID, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, toSessionResponse(session))
}

// SubmitAnswer handles POST /interviews/{id}/answers
func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	ctx := logger.AddFields(logger.WithAction(r.Context(), "SubmitAnswer"),
		zap.String("session_id", sessionID),
	)
	ownerID := auth.UserIDFromContext(ctx)

	var req entity.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctxzap.Info(ctx, "submitting answer", zap.Int("question_index", req.QuestionIndex))

	result, err := h.usecase.SubmitAnswer(ctx, ownerID, sessionID, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, result)
}

// CompleteInterview handles POST /interviews/{id}/complete
func (h *Handler) CompleteInterview(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	ctx := logger.AddFields(logger.WithAction(r.Context(), "CompleteInterview"),
		zap.String("session_id", sessionID),
	)
	ownerID := auth.UserIDFromContext(ctx)

	summary, err := h.usecase.CompleteInterview(ctx, ownerID, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, summary)
}

// GetReport handles GET /interviews/{id}/report?format=markdown|pdf|docx
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	ctx := logger.AddFields(logger.WithAction(r.Context(), "GetReport"),
		zap.String("session_id", sessionID),
	)
	ownerID := auth.UserIDFromContext(ctx)

	formatParam := r.URL.Query().Get("format")
	if formatParam == "" {
		formatParam = string(entity.FormatMarkdown)
	}
	format := entity.ReportFormat(formatParam)
	if err := format.Validate(); err != nil {
		ctxzap.Warn(ctx, "invalid format parameter", zap.String("format", formatParam))
		response.Error(w, http.StatusBadRequest, "format must be one of: markdown, pdf, docx")
		return
	}

	report, err := h.usecase.BuildReport(ctx, ownerID, sessionID, format)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "report generated", zap.String("format", formatParam))
	response.File(w, report.ContentType, report.Filename, report.Data)
}

// DeleteSession handles DELETE /interviews/{id}
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	ctx := logger.AddFields(logger.WithAction(r.Context(), "DeleteSession"),
		zap.String("session_id", sessionID),
	)
	ownerID := auth.UserIDFromContext(ctx)

	if err := h.usecase.DeleteSession(ctx, ownerID, sessionID); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.NoContent(w)
}

// GetStats handles GET /interviews/stats
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GetStats")
	ownerID := auth.UserIDFromContext(ctx)

	stats, err := h.usecase.GetStats(ctx, ownerID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, stats)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	ctxzap.Error(ctx, "request failed", zap.Error(err))

	switch {
	case errors.Is(err, entity.ErrSessionNotFound):
		response.Error(w, http.StatusNotFound, "session not found")
	case errors.Is(err, entity.ErrInvalidPersona),
		errors.Is(err, entity.ErrInvalidDifficulty),
		errors.Is(err, entity.ErrInvalidParameter),
		errors.Is(err, entity.ErrMissingField):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, entity.ErrSessionCompleted),
		errors.Is(err, entity.ErrAllQuestionsDone),
		errors.Is(err, entity.ErrQuestionOutOfOrder):
		response.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, entity.ErrProviderUnavailable):
		response.Error(w, http.StatusBadGateway, "generation service unavailable")
	default:
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
