package entity

import "errors"

// Request validation errors. These surface to the client as 400s.
var (
	ErrInvalidPersona    = errors.New("unknown interviewer persona")
	ErrInvalidDifficulty = errors.New("unknown difficulty level")
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrMissingField      = errors.New("missing required field")
)

// Session lifecycle errors.
var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionCompleted   = errors.New("session already completed")
	ErrAllQuestionsDone   = errors.New("all questions already answered")
	ErrQuestionOutOfOrder = errors.New("question answered out of order")
)

// Auth errors.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
)

// Infrastructure errors.
var (
	ErrProviderUnavailable = errors.New("llm provider unavailable")
	ErrUnsupportedFormat   = errors.New("unsupported file format")
	ErrFileTooLarge        = errors.New("file exceeds size limit")
)
