package store

import (
	"context"
	"fmt"

	"github.com/lernzeit/lernzeit/ent"
	"github.com/lernzeit/lernzeit/ent/template"
)

// StatusActive and StatusArchived are the template lifecycle states.
const (
	StatusActive   = "ACTIVE"
	StatusArchived = "ARCHIVED"
)

// templateRepo implements TemplateRepo backed by ent.
type templateRepo struct {
	client *ent.Client
}

func (r *templateRepo) QueryActive(ctx context.Context, q TemplateQuery) ([]TemplateRecord, error) {
	query := r.client.Template.Query().
		Where(
			template.StatusEQ(StatusActive),
			template.GradeAppEQ(q.Grade),
		)

	if q.Quarter != "" && q.Quarter != "ANY" {
		query = query.Where(template.QuarterAppEQ(q.Quarter))
	}
	if len(q.Domains) > 0 {
		query = query.Where(template.DomainIn(q.Domains...))
	}
	if q.Difficulty != "" {
		query = query.Where(template.DifficultyEQ(q.Difficulty))
	}
	if len(q.QuestionTypes) > 0 {
		query = query.Where(template.QuestionTypeIn(q.QuestionTypes...))
	}
	if q.MinQuality > 0 {
		query = query.Where(template.QualityScoreGTE(q.MinQuality))
	}
	for _, kw := range q.ExcludeKeywords {
		query = query.Where(template.Not(template.PromptContainsFold(kw)))
	}
	if q.OrderByPlaysAsc {
		query = query.Order(ent.Asc(template.FieldPlays))
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query active templates: %w", err)
	}
	return fromEntTemplates(rows), nil
}

func (r *templateRepo) ListActive(ctx context.Context) ([]TemplateRecord, error) {
	rows, err := r.client.Template.Query().
		Where(template.StatusEQ(StatusActive)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active templates: %w", err)
	}
	return fromEntTemplates(rows), nil
}

func (r *templateRepo) SampleActive(ctx context.Context, grade, limit int) ([]TemplateRecord, error) {
	rows, err := r.client.Template.Query().
		Where(
			template.StatusEQ(StatusActive),
			template.GradeAppEQ(grade),
		).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("sample active templates: %w", err)
	}
	return fromEntTemplates(rows), nil
}

func (r *templateRepo) IncrementPlays(ctx context.Context, id int) error {
	// AddPlays compiles to "plays = plays + 1"; concurrent selections
	// never lose an update.
	err := r.client.Template.UpdateOneID(id).AddPlays(1).Exec(ctx)
	if err != nil {
		return fmt.Errorf("increment plays for template %d: %w", id, err)
	}
	return nil
}

func (r *templateRepo) RecordAnswer(ctx context.Context, id int, correct bool) error {
	if !correct {
		return nil
	}
	err := r.client.Template.UpdateOneID(id).AddCorrect(1).Exec(ctx)
	if err != nil {
		return fmt.Errorf("record answer for template %d: %w", id, err)
	}
	return nil
}

func (r *templateRepo) AddRating(ctx context.Context, id int, rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating %d out of range 1-5", rating)
	}
	err := r.client.Template.UpdateOneID(id).
		AddRatingSum(rating).
		AddRatingCount(1).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("add rating for template %d: %w", id, err)
	}
	return nil
}

func (r *templateRepo) Insert(ctx context.Context, t TemplateRecord) (int, error) {
	status := t.Status
	if status == "" {
		status = StatusActive
	}
	created, err := r.client.Template.Create().
		SetGrade(t.Grade).
		SetGradeApp(t.GradeApp).
		SetQuarterApp(t.QuarterApp).
		SetDomain(t.Domain).
		SetSubcategory(t.Subcategory).
		SetDifficulty(t.Difficulty).
		SetQuestionType(t.QuestionType).
		SetPrompt(t.Prompt).
		SetSolution(t.Solution).
		SetDistractors(t.Distractors).
		SetQualityScore(t.QualityScore).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("insert template: %w", err)
	}
	return created.ID, nil
}

func (r *templateRepo) SetStatus(ctx context.Context, id int, status string) error {
	if status != StatusActive && status != StatusArchived {
		return fmt.Errorf("unknown template status %q", status)
	}
	err := r.client.Template.UpdateOneID(id).SetStatus(status).Exec(ctx)
	if err != nil {
		return fmt.Errorf("set status for template %d: %w", id, err)
	}
	return nil
}

func (r *templateRepo) SetQualityScore(ctx context.Context, id int, score float64) error {
	if score < 0 || score > 1 {
		return fmt.Errorf("quality score %f out of range [0,1]", score)
	}
	err := r.client.Template.UpdateOneID(id).SetQualityScore(score).Exec(ctx)
	if err != nil {
		return fmt.Errorf("set quality score for template %d: %w", id, err)
	}
	return nil
}

func fromEntTemplates(rows []*ent.Template) []TemplateRecord {
	out := make([]TemplateRecord, 0, len(rows))
	for _, t := range rows {
		out = append(out, TemplateRecord{
			ID:           t.ID,
			Grade:        t.Grade,
			GradeApp:     t.GradeApp,
			QuarterApp:   t.QuarterApp,
			Domain:       t.Domain,
			Subcategory:  t.Subcategory,
			Difficulty:   t.Difficulty,
			QuestionType: t.QuestionType,
			Prompt:       t.Prompt,
			Solution:     t.Solution,
			Distractors:  t.Distractors,
			QualityScore: t.QualityScore,
			Plays:        t.Plays,
			Correct:      t.Correct,
			RatingSum:    t.RatingSum,
			RatingCount:  t.RatingCount,
			Status:       t.Status,
			CreatedAt:    t.CreatedAt,
		})
	}
	return out
}
