package store

import (
	"context"
	"fmt"
	"time"

	"github.com/lernzeit/lernzeit/ent"
	"github.com/lernzeit/lernzeit/ent/learningsession"
)

// sessionRepo implements SessionRepo backed by ent.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) RecentSessions(ctx context.Context, userID string, since time.Time) ([]SessionRecord, error) {
	rows, err := r.client.LearningSession.Query().
		Where(
			learningsession.UserIDEQ(userID),
			learningsession.CreatedAtGTE(since),
		).
		Order(ent.Desc(learningsession.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}

	out := make([]SessionRecord, 0, len(rows))
	for _, s := range rows {
		out = append(out, SessionRecord{
			ID:           s.ID,
			SessionID:    s.SessionID,
			UserID:       s.UserID,
			Category:     s.Category,
			Grade:        s.Grade,
			Correct:      s.Correct,
			Total:        s.Total,
			DurationSecs: s.DurationSecs,
			TemplateIDs:  s.Templates,
			CreatedAt:    s.CreatedAt,
		})
	}
	return out, nil
}

func (r *sessionRepo) Append(ctx context.Context, rec SessionRecord) error {
	_, err := r.client.LearningSession.Create().
		SetSessionID(rec.SessionID).
		SetUserID(rec.UserID).
		SetCategory(rec.Category).
		SetGrade(rec.Grade).
		SetCorrect(rec.Correct).
		SetTotal(rec.Total).
		SetDurationSecs(rec.DurationSecs).
		SetTemplates(rec.TemplateIDs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Complete(ctx context.Context, sessionID string, correct, total, durationSecs int) error {
	n, err := r.client.LearningSession.Update().
		Where(learningsession.SessionIDEQ(sessionID)).
		SetCorrect(correct).
		SetTotal(total).
		SetDurationSecs(durationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("complete session %s: %w", sessionID, err)
	}
	if n == 0 {
		return fmt.Errorf("complete session %s: not found", sessionID)
	}
	return nil
}
