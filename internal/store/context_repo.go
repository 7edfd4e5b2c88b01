package store

import (
	"context"
	"fmt"
	"time"

	"github.com/lernzeit/lernzeit/ent"
	"github.com/lernzeit/lernzeit/ent/contexthistory"
	"github.com/lernzeit/lernzeit/ent/contextvariant"
	"github.com/lernzeit/lernzeit/ent/scenariofamily"
	"github.com/lernzeit/lernzeit/ent/schema"
)

// contextRepo implements ContextRepo backed by ent.
type contextRepo struct {
	client *ent.Client
}

func (r *contextRepo) FamiliesFor(ctx context.Context, category string, grade int) ([]ScenarioFamilyRecord, error) {
	rows, err := r.client.ScenarioFamily.Query().
		Where(
			scenariofamily.CategoryEQ(category),
			scenariofamily.GradeMinLTE(grade),
			scenariofamily.GradeMaxGTE(grade),
		).
		Order(ent.Asc(scenariofamily.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query scenario families: %w", err)
	}

	out := make([]ScenarioFamilyRecord, 0, len(rows))
	for _, f := range rows {
		slots := make(map[string]SlotSpec, len(f.ContextSlots))
		for dim, spec := range f.ContextSlots {
			slots[dim] = SlotSpec{Required: spec.Required, Hint: spec.Hint}
		}
		out = append(out, ScenarioFamilyRecord{
			ID:              f.ID,
			Name:            f.Name,
			Category:        f.Category,
			GradeMin:        f.GradeMin,
			GradeMax:        f.GradeMax,
			BaseTemplate:    f.BaseTemplate,
			ContextSlots:    slots,
			DifficultyLevel: f.DifficultyLevel,
		})
	}
	return out, nil
}

func (r *contextRepo) VariantsFor(ctx context.Context, familyID int, dimension string) ([]ContextVariantRecord, error) {
	rows, err := r.client.ContextVariant.Query().
		Where(
			contextvariant.ScenarioFamilyIDEQ(familyID),
			contextvariant.DimensionTypeEQ(dimension),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query context variants: %w", err)
	}

	out := make([]ContextVariantRecord, 0, len(rows))
	for _, v := range rows {
		out = append(out, ContextVariantRecord{
			ID:               v.ID,
			ScenarioFamilyID: v.ScenarioFamilyID,
			DimensionType:    v.DimensionType,
			Value:            v.Value,
			SemanticCluster:  v.SemanticCluster,
			UsageCount:       v.UsageCount,
			QualityScore:     v.QualityScore,
		})
	}
	return out, nil
}

func (r *contextRepo) IncrementVariantUsage(ctx context.Context, variantID int) error {
	err := r.client.ContextVariant.UpdateOneID(variantID).AddUsageCount(1).Exec(ctx)
	if err != nil {
		return fmt.Errorf("increment usage for variant %d: %w", variantID, err)
	}
	return nil
}

func (r *contextRepo) HistoryFor(ctx context.Context, userID, category string, grade int, since time.Time) ([]ContextHistoryRecord, error) {
	rows, err := r.client.ContextHistory.Query().
		Where(
			contexthistory.UserIDEQ(userID),
			contexthistory.CategoryEQ(category),
			contexthistory.GradeEQ(grade),
			contexthistory.CreatedAtGTE(since),
		).
		Order(ent.Desc(contexthistory.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query context history: %w", err)
	}

	out := make([]ContextHistoryRecord, 0, len(rows))
	for _, h := range rows {
		out = append(out, ContextHistoryRecord{
			ID:               h.ID,
			UserID:           h.UserID,
			ScenarioFamilyID: h.ScenarioFamilyID,
			Category:         h.Category,
			Grade:            h.Grade,
			Combination:      h.Combination,
			CombinationHash:  h.CombinationHash,
			CreatedAt:        h.CreatedAt,
		})
	}
	return out, nil
}

func (r *contextRepo) AppendHistory(ctx context.Context, rec ContextHistoryRecord) error {
	_, err := r.client.ContextHistory.Create().
		SetUserID(rec.UserID).
		SetScenarioFamilyID(rec.ScenarioFamilyID).
		SetCategory(rec.Category).
		SetGrade(rec.Grade).
		SetCombination(rec.Combination).
		SetCombinationHash(rec.CombinationHash).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append context history: %w", err)
	}
	return nil
}

func (r *contextRepo) InsertFamily(ctx context.Context, rec ScenarioFamilyRecord) (int, error) {
	slots := make(map[string]schema.SlotSpec, len(rec.ContextSlots))
	for dim, spec := range rec.ContextSlots {
		slots[dim] = schema.SlotSpec{Required: spec.Required, Hint: spec.Hint}
	}
	created, err := r.client.ScenarioFamily.Create().
		SetName(rec.Name).
		SetCategory(rec.Category).
		SetGradeMin(rec.GradeMin).
		SetGradeMax(rec.GradeMax).
		SetBaseTemplate(rec.BaseTemplate).
		SetContextSlots(slots).
		SetDifficultyLevel(rec.DifficultyLevel).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("insert scenario family: %w", err)
	}
	return created.ID, nil
}

func (r *contextRepo) InsertVariant(ctx context.Context, rec ContextVariantRecord) (int, error) {
	create := r.client.ContextVariant.Create().
		SetScenarioFamilyID(rec.ScenarioFamilyID).
		SetDimensionType(rec.DimensionType).
		SetValue(rec.Value).
		SetUsageCount(rec.UsageCount).
		SetQualityScore(rec.QualityScore)
	if rec.SemanticCluster != "" {
		create = create.SetSemanticCluster(rec.SemanticCluster)
	}
	created, err := create.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("insert context variant: %w", err)
	}
	return created.ID, nil
}
