package interview

import "github.com/prepmate/interview-backend/internal/entity"

// toSessionResponse converts a Session entity to its API representation
func toSessionResponse(session *entity.Session) *entity.SessionResponse {
	return &entity.SessionResponse{
		ID:             session.ID,
		Persona:        string(session.Persona),
		Difficulty:     string(session.Difficulty),
		Status:         string(session.Status),
		Questions:      session.Questions,
		Answers:        session.Answers,
		Feedback:       session.Feedback,
		Summary:        session.Summary,
		NextQuestion:   session.NextQuestionIndex(),
		CreatedAt:      session.CreatedAt,
		UpdatedAt:      session.UpdatedAt,
		JobDescription: session.JobDescription,
	}
}

func toSessionListItems(sessions []*entity.Session) []entity.SessionListItem {
	items := make([]entity.SessionListItem, 0, len(sessions))
	for _, session := range sessions {
		items = append(items, entity.SessionListItem{
			ID:         session.ID,
			Persona:    string(session.Persona),
			Difficulty: string(session.Difficulty),
			Status:     string(session.Status),
			Questions:  len(session.Questions),
			Answered:   len(session.Answers),
			CreatedAt:  session.CreatedAt,
		})
	}
	return items
}
