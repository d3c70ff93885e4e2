package validator

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/prepmate/interview-backend/internal/entity"
)

// Validator checks request DTOs at the API boundary. Enum checks happen
// here, before anything reaches the interview flow.
type Validator struct {
	maxResumeSize int64
}

func New(maxResumeSize int64) *Validator {
	return &Validator{maxResumeSize: maxResumeSize}
}

const maxQuestionCount = 20

// ValidateStartInterview validates StartInterviewRequest
func (v *Validator) ValidateStartInterview(req *entity.StartInterviewRequest) error {
	if err := entity.Persona(req.Persona).Validate(); err != nil {
		return fmt.Errorf("%w: %q", err, req.Persona)
	}
	if err := entity.Difficulty(req.Difficulty).Validate(); err != nil {
		return fmt.Errorf("%w: %q", err, req.Difficulty)
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		return fmt.Errorf("%w: job_description", entity.ErrMissingField)
	}
	if req.NumQuestions < 1 || req.NumQuestions > maxQuestionCount {
		return fmt.Errorf("%w: num_questions must be between 1 and %d", entity.ErrInvalidParameter, maxQuestionCount)
	}
	return nil
}

// ValidateSubmitAnswer validates answer submission
func (v *Validator) ValidateSubmitAnswer(req *entity.SubmitAnswerRequest) error {
	if req.QuestionIndex < 0 {
		return fmt.Errorf("%w: question_index must not be negative", entity.ErrInvalidParameter)
	}
	if strings.TrimSpace(req.Answer) == "" {
		return fmt.Errorf("%w: answer", entity.ErrMissingField)
	}
	return nil
}

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

const minPasswordLength = 8

// ValidateSignup validates account registration
func (v *Validator) ValidateSignup(req *entity.SignupRequest) error {
	if !emailPattern.MatchString(req.Email) {
		return fmt.Errorf("%w: email is not valid", entity.ErrInvalidParameter)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name", entity.ErrMissingField)
	}
	if len(req.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", entity.ErrInvalidParameter, minPasswordLength)
	}
	return nil
}

// ValidateLogin validates login credentials shape
func (v *Validator) ValidateLogin(req *entity.LoginRequest) error {
	if req.Email == "" {
		return fmt.Errorf("%w: email", entity.ErrMissingField)
	}
	if req.Password == "" {
		return fmt.Errorf("%w: password", entity.ErrMissingField)
	}
	return nil
}

var allowedResumeExtensions = map[string]struct{}{
	".pdf":  {},
	".docx": {},
	".txt":  {},
	".md":   {},
}

// ValidateResumeUpload validates an uploaded resume file header
func (v *Validator) ValidateResumeUpload(header *multipart.FileHeader) error {
	if header == nil {
		return fmt.Errorf("%w: file", entity.ErrMissingField)
	}
	if header.Size > v.maxResumeSize {
		return fmt.Errorf("%w: limit is %d bytes", entity.ErrFileTooLarge, v.maxResumeSize)
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if _, ok := allowedResumeExtensions[ext]; !ok {
		return fmt.Errorf("%w: %s", entity.ErrUnsupportedFormat, ext)
	}
	return nil
}
