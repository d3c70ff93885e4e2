package entity

import "time"

type Persona string

const (
	PersonaHR         Persona = "hr"
	PersonaTechLead   Persona = "tech_lead"
	PersonaBehavioral Persona = "behavioral"
)

func (p Persona) Validate() error {
	switch p {
	case PersonaHR, PersonaTechLead, PersonaBehavioral:
		return nil
	default:
		return ErrInvalidPersona
	}
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Validate() error {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return nil
	default:
		return ErrInvalidDifficulty
	}
}

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
)

// Session is a single mock interview: a fixed question list generated at
// start, answers with per-answer feedback appended as the candidate goes,
// and a summary filled in on completion.
type Session struct {
	ID             string
	OwnerID        string
	Persona        Persona
	Difficulty     Difficulty
	JobDescription string
	ResumeText     string
	Status         SessionStatus
	Questions      []string
	Answers        []string
	Feedback       []EvaluationResult
	Summary        *SummaryResult
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NextQuestionIndex returns the index of the first unanswered question,
// or -1 when every question has an answer.
func (s *Session) NextQuestionIndex() int {
	if len(s.Answers) >= len(s.Questions) {
		return -1
	}
	return len(s.Answers)
}

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// UserStats aggregates a user's interview history.
type UserStats struct {
	TotalSessions     int     `json:"total_sessions"`
	CompletedSessions int     `json:"completed_sessions"`
	AnsweredQuestions int     `json:"answered_questions"`
	AverageScore      float64 `json:"average_score"`
}
