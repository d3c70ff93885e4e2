package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prepmate/interview-backend/internal/entity"
)

var _ SessionRepository = &SessionPostgres{}

// SessionPostgres implements SessionRepository using PostgreSQL. Question,
// answer, feedback and summary payloads are stored as jsonb.
type SessionPostgres struct {
	db *pgxpool.Pool
}

func NewSessionPostgres(db *pgxpool.Pool) *SessionPostgres {
	return &SessionPostgres{db: db}
}

const sessionColumns = `id, owner_id, persona, difficulty, job_description, resume_text,
	status, questions, answers, feedback, summary, created_at, updated_at`

func (r *SessionPostgres) CreateSession(ctx context.Context, session *entity.Session) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO interview_sessions
			(id, owner_id, persona, difficulty, job_description, resume_text,
			 status, questions, answers, feedback, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)`,
		session.ID, session.OwnerID, session.Persona, session.Difficulty,
		session.JobDescription, session.ResumeText, session.Status,
		session.Questions, session.Answers, session.Feedback, session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *SessionPostgres) GetSession(ctx context.Context, id, ownerID string) (*entity.Session, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+sessionColumns+`
		FROM interview_sessions
		WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	)
	return scanSession(row)
}

func (r *SessionPostgres) ListSessions(ctx context.Context, ownerID string) ([]*entity.Session, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+sessionColumns+`
		FROM interview_sessions
		WHERE owner_id = $1
		ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*entity.Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

func (r *SessionPostgres) AppendAnswer(ctx context.Context, id, ownerID, answer string, feedback entity.EvaluationResult) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE interview_sessions
		SET answers = answers || to_jsonb($3::text),
		    feedback = feedback || $4,
		    updated_at = $5
		WHERE id = $1 AND owner_id = $2 AND status = $6`,
		id, ownerID, answer, feedback, time.Now().UTC(), entity.SessionActive,
	)
	if err != nil {
		return fmt.Errorf("append answer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrSessionNotFound
	}
	return nil
}

func (r *SessionPostgres) CompleteSession(ctx context.Context, id, ownerID string, summary entity.SummaryResult) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE interview_sessions
		SET status = $3, summary = $4, updated_at = $5
		WHERE id = $1 AND owner_id = $2`,
		id, ownerID, entity.SessionCompleted, summary, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("complete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrSessionNotFound
	}
	return nil
}

func (r *SessionPostgres) DeleteSession(ctx context.Context, id, ownerID string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM interview_sessions
		WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrSessionNotFound
	}
	return nil
}

func scanSession(row pgx.Row) (*entity.Session, error) {
	var s entity.Session
	err := row.Scan(
		&s.ID, &s.OwnerID, &s.Persona, &s.Difficulty, &s.JobDescription,
		&s.ResumeText, &s.Status, &s.Questions, &s.Answers, &s.Feedback,
		&s.Summary, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entity.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan session: %w", err)
	}
	return &s, nil
}
