package entity

import "time"

type StartInterviewRequest struct {
	Persona        string `json:"persona"`
	Difficulty     string `json:"difficulty"`
	JobDescription string `json:"job_description"`
	ResumeText     string `json:"resume_text"`
	NumQuestions   int    `json:"num_questions"`
}

type SubmitAnswerRequest struct {
	QuestionIndex int    `json:"question_index"`
	Answer        string `json:"answer"`
}

type SessionResponse struct {
	ID             string             `json:"id"`
	Persona        string             `json:"persona"`
	Difficulty     string             `json:"difficulty"`
	Status         string             `json:"status"`
	Questions      []string           `json:"questions"`
	Answers        []string           `json:"answers"`
	Feedback       []EvaluationResult `json:"feedback"`
	Summary        *SummaryResult     `json:"summary,omitempty"`
	NextQuestion   int                `json:"next_question"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
	JobDescription string             `json:"job_description,omitempty"`
}

type SessionListItem struct {
	ID         string    `json:"id"`
	Persona    string    `json:"persona"`
	Difficulty string    `json:"difficulty"`
	Status     string    `json:"status"`
	Questions  int       `json:"questions"`
	Answered   int       `json:"answered"`
	CreatedAt  time.Time `json:"created_at"`
}

type SignupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
