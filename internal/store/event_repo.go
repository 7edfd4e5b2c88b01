package store

import (
	"context"
	"fmt"

	"github.com/lernzeit/lernzeit/ent"
	"github.com/lernzeit/lernzeit/ent/llmrequestevent"
	"github.com/lernzeit/lernzeit/ent/rewardevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendReward(ctx context.Context, data RewardEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.RewardEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetSessionID(data.SessionID).
		SetMinutes(data.Minutes).
		SetReason(data.Reason).
		SetStreak(data.Streak).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save reward event: %w", err)
	}
	return nil
}

func (r *eventRepo) TotalRewardMinutes(ctx context.Context, userID string) (float64, error) {
	rows, err := r.client.RewardEvent.Query().
		Where(rewardevent.UserIDEQ(userID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query reward events: %w", err)
	}
	var total float64
	for _, e := range rows {
		total += e.Minutes
	}
	return total, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error) {
	rows, err := r.client.LLMRequestEvent.Query().
		Order(ent.Asc(llmrequestevent.FieldPurpose)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	byPurpose := make(map[string]*LLMUsageStats)
	var order []string
	for _, e := range rows {
		stats, ok := byPurpose[e.Purpose]
		if !ok {
			stats = &LLMUsageStats{Purpose: e.Purpose}
			byPurpose[e.Purpose] = stats
			order = append(order, e.Purpose)
		}
		stats.Requests++
		stats.InputTokens += e.InputTokens
		stats.OutputTokens += e.OutputTokens
		if !e.Success {
			stats.Failures++
		}
	}

	out := make([]LLMUsageStats, 0, len(order))
	for _, p := range order {
		out = append(out, *byPurpose[p])
	}
	return out, nil
}
