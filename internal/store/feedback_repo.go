package store

import (
	"context"
	"fmt"

	"github.com/lernzeit/lernzeit/ent"
	"github.com/lernzeit/lernzeit/ent/templatefeedback"
)

// Feedback types that exclude a prompt from the user's future sessions.
const (
	FeedbackConfusing     = "confusing"
	FeedbackInappropriate = "inappropriate"
	FeedbackNotCompliant  = "not_curriculum_compliant"
)

// NegativeFeedbackTypes lists the types the selector filters on.
func NegativeFeedbackTypes() []string {
	return []string{FeedbackConfusing, FeedbackInappropriate, FeedbackNotCompliant}
}

// feedbackRepo implements FeedbackRepo backed by ent.
type feedbackRepo struct {
	client *ent.Client
}

func (r *feedbackRepo) NegativePrompts(ctx context.Context, userID string, types []string) ([]string, error) {
	prompts, err := r.client.TemplateFeedback.Query().
		Where(
			templatefeedback.UserIDEQ(userID),
			templatefeedback.FeedbackTypeIn(types...),
		).
		Select(templatefeedback.FieldPrompt).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query negative feedback: %w", err)
	}
	return prompts, nil
}

func (r *feedbackRepo) Append(ctx context.Context, rec FeedbackRecord) error {
	create := r.client.TemplateFeedback.Create().
		SetUserID(rec.UserID).
		SetPrompt(rec.Prompt).
		SetFeedbackType(rec.FeedbackType)
	if rec.TemplateID != 0 {
		create = create.SetTemplateID(rec.TemplateID)
	}
	_, err := create.Save(ctx)
	if err != nil {
		return fmt.Errorf("append feedback: %w", err)
	}
	return nil
}
