package store

import (
	"context"
	"fmt"
	"time"

	"github.com/lernzeit/lernzeit/ent"
	"github.com/lernzeit/lernzeit/ent/generationrun"
)

// generationRepo implements GenerationRepo backed by ent.
type generationRepo struct {
	client *ent.Client
}

func (r *generationRepo) StartRun(ctx context.Context, runID string, gapsTargeted int) (int, error) {
	created, err := r.client.GenerationRun.Create().
		SetRunID(runID).
		SetGapsTargeted(gapsTargeted).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("start generation run: %w", err)
	}
	return created.ID, nil
}

func (r *generationRepo) FinishRun(ctx context.Context, id int, generated, rejected, failed int) error {
	err := r.client.GenerationRun.UpdateOneID(id).
		SetGenerated(generated).
		SetRejected(rejected).
		SetFailed(failed).
		SetFinishedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("finish generation run %d: %w", id, err)
	}
	return nil
}

func (r *generationRepo) RecentRuns(ctx context.Context, limit int) ([]GenerationRunRecord, error) {
	rows, err := r.client.GenerationRun.Query().
		Order(ent.Desc(generationrun.FieldStartedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query generation runs: %w", err)
	}

	out := make([]GenerationRunRecord, 0, len(rows))
	for _, g := range rows {
		out = append(out, GenerationRunRecord{
			ID:           g.ID,
			RunID:        g.RunID,
			GapsTargeted: g.GapsTargeted,
			Generated:    g.Generated,
			Rejected:     g.Rejected,
			Failed:       g.Failed,
			StartedAt:    g.StartedAt,
			FinishedAt:   g.FinishedAt,
		})
	}
	return out, nil
}
