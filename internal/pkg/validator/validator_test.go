package validator

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prepmate/interview-backend/internal/entity"
)

func validStartRequest() *entity.StartInterviewRequest {
	return &entity.StartInterviewRequest{
		Persona:        "hr",
		Difficulty:     "easy",
		JobDescription: "Looking for a backend engineer",
		NumQuestions:   5,
	}
}

func TestValidateStartInterview(t *testing.T) {
	v := New(1 << 20)

	tests := []struct {
		name    string
		mutate  func(*entity.StartInterviewRequest)
		wantErr error
	}{
		{"valid", func(r *entity.StartInterviewRequest) {}, nil},
		{"unknown persona", func(r *entity.StartInterviewRequest) { r.Persona = "ceo" }, entity.ErrInvalidPersona},
		{"unknown difficulty", func(r *entity.StartInterviewRequest) { r.Difficulty = "brutal" }, entity.ErrInvalidDifficulty},
		{"empty job description", func(r *entity.StartInterviewRequest) { r.JobDescription = "  " }, entity.ErrMissingField},
		{"zero questions", func(r *entity.StartInterviewRequest) { r.NumQuestions = 0 }, entity.ErrInvalidParameter},
		{"too many questions", func(r *entity.StartInterviewRequest) { r.NumQuestions = 21 }, entity.ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validStartRequest()
			tt.mutate(req)

			err := v.ValidateStartInterview(req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSubmitAnswer(t *testing.T) {
	v := New(1 << 20)

	assert.NoError(t, v.ValidateSubmitAnswer(&entity.SubmitAnswerRequest{QuestionIndex: 0, Answer: "something"}))
	assert.ErrorIs(t, v.ValidateSubmitAnswer(&entity.SubmitAnswerRequest{QuestionIndex: -1, Answer: "x"}), entity.ErrInvalidParameter)
	assert.ErrorIs(t, v.ValidateSubmitAnswer(&entity.SubmitAnswerRequest{QuestionIndex: 0, Answer: "   "}), entity.ErrMissingField)
}

func TestValidateSignup(t *testing.T) {
	v := New(1 << 20)

	valid := &entity.SignupRequest{Email: "jane@example.com", Name: "Jane", Password: "longenough"}
	assert.NoError(t, v.ValidateSignup(valid))

	assert.ErrorIs(t, v.ValidateSignup(&entity.SignupRequest{Email: "not-an-email", Name: "Jane", Password: "longenough"}), entity.ErrInvalidParameter)
	assert.ErrorIs(t, v.ValidateSignup(&entity.SignupRequest{Email: "jane@example.com", Name: " ", Password: "longenough"}), entity.ErrMissingField)
	assert.ErrorIs(t, v.ValidateSignup(&entity.SignupRequest{Email: "jane@example.com", Name: "Jane", Password: "short"}), entity.ErrInvalidParameter)
}

func TestValidateResumeUpload(t *testing.T) {
	v := New(100)

	assert.NoError(t, v.ValidateResumeUpload(&multipart.FileHeader{Filename: "resume.PDF", Size: 50}))
	assert.NoError(t, v.ValidateResumeUpload(&multipart.FileHeader{Filename: "resume.txt", Size: 100}))
	assert.ErrorIs(t, v.ValidateResumeUpload(&multipart.FileHeader{Filename: "resume.pdf", Size: 101}), entity.ErrFileTooLarge)
	assert.ErrorIs(t, v.ValidateResumeUpload(&multipart.FileHeader{Filename: "resume.exe", Size: 10}), entity.ErrUnsupportedFormat)
	assert.ErrorIs(t, v.ValidateResumeUpload(nil), entity.ErrMissingField)
}
