package resume

import (
	"errors"
	"io"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/prepmate/interview-backend/internal/config"
	"github.com/prepmate/interview-backend/internal/entity"
	"github.com/prepmate/interview-backend/internal/pkg/logger"
	"github.com/prepmate/interview-backend/internal/pkg/response"
	"github.com/prepmate/interview-backend/internal/pkg/validator"
)

type Handler struct {
	extractor TextExtractor
	parser    ResumeParser
	validator *validator.Validator
	cfg       config.FileUploadConfig
}

func NewHandler(extractor TextExtractor, parser ResumeParser, validator *validator.Validator, cfg config.FileUploadConfig) *Handler {
	return &Handler{
		extractor: extractor,
		parser:    parser,
		validator: validator,
		cfg:       cfg,
	}
}

// Parse handles POST /resume/parse - multipart upload with a "file" part
func (h *Handler) Parse(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ParseResume")

	if err := r.ParseMultipartForm(h.cfg.MaxResumeSize); err != nil {
		ctxzap.Error(ctx, "failed to parse multipart form", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid form data or file too large")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		ctxzap.Error(ctx, "missing resume file", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	if err := h.validator.ValidateResumeUpload(header); err != nil {
		ctxzap.Warn(ctx, "resume upload rejected", zap.Error(err))
		h.handleError(w, err)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, h.cfg.MaxResumeSize+1))
	if err != nil {
		ctxzap.Error(ctx, "failed to read resume file", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "failed to read file")
		return
	}
	if int64(len(data)) > h.cfg.MaxResumeSize {
		response.Error(w, http.StatusBadRequest, "file too large")
		return
	}

	ctxzap.Info(ctx, "extracting resume text",
		zap.String("filename", header.Filename),
		zap.Int64("size_bytes", header.Size),
	)

	text, err := h.extractor.ExtractText(data, header.Filename)
	if err != nil {
		ctxzap.Error(ctx, "failed to extract resume text", zap.Error(err))
		h.handleError(w, err)
		return
	}

	response.Success(w, h.parser.Parse(text))
}

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrFileTooLarge):
		response.Error(w, http.StatusBadRequest, "file too large")
	case errors.Is(err, entity.ErrUnsupportedFormat):
		response.Error(w, http.StatusBadRequest, "unsupported file format")
	default:
		response.Error(w, http.StatusUnprocessableEntity, "could not process file")
	}
}
