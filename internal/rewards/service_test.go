package rewards

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lernzeit/lernzeit/internal/store"
)

type mockEventRepo struct {
	rewards   []store.RewardEventData
	appendErr error
	total     float64
}

func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}

func (m *mockEventRepo) AppendReward(_ context.Context, data store.RewardEventData) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.rewards = append(m.rewards, data)
	return nil
}

func (m *mockEventRepo) TotalRewardMinutes(_ context.Context, _ string) (float64, error) {
	return m.total, nil
}

func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStats, error) {
	return nil, nil
}

func TestMinutesPerCorrectGrowsWithGrade(t *testing.T) {
	prev := 0.0
	for grade := 1; grade <= 10; grade++ {
		got := MinutesPerCorrect(grade)
		if got < prev {
			t.Errorf("rate dropped at grade %d: %v < %v", grade, got, prev)
		}
		prev = got
	}
	if MinutesPerCorrect(1) != 0.5 || MinutesPerCorrect(10) != 1.0 {
		t.Errorf("rate endpoints: %v / %v", MinutesPerCorrect(1), MinutesPerCorrect(10))
	}
}

func TestStreakThresholds(t *testing.T) {
	cases := []struct{ current, want int }{
		{0, 5}, {4, 5}, {5, 10}, {12, 15}, {20, 25}, {23, 25}, {25, 30},
	}
	for _, tc := range cases {
		if got := NextStreakThreshold(tc.current); got != tc.want {
			t.Errorf("NextStreakThreshold(%d) = %d, want %d", tc.current, got, tc.want)
		}
	}
}

func TestStreakBonus(t *testing.T) {
	if got := StreakBonus(3); got != 0 {
		t.Errorf("off-milestone bonus = %v, want 0", got)
	}
	if got := StreakBonus(5); got != 1 {
		t.Errorf("bonus at 5 = %v, want 1", got)
	}
	if got := StreakBonus(20); got != 4 {
		t.Errorf("bonus at 20 = %v, want 4", got)
	}
	if got := StreakBonus(50); got != 5 {
		t.Errorf("bonus at 50 = %v, want 5 (capped)", got)
	}
}

func TestAwardAnswerPersistsAndAccumulates(t *testing.T) {
	repo := &mockEventRepo{}
	s := NewService(repo)
	s.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	award := s.AwardAnswer(context.Background(), "u1", "session-1", 3, 2)
	if award.Minutes != 0.6 {
		t.Errorf("grade-3 answer minutes = %v, want 0.6", award.Minutes)
	}
	if len(repo.rewards) != 1 || repo.rewards[0].UserID != "u1" {
		t.Fatalf("reward not persisted: %+v", repo.rewards)
	}
	if s.SessionMinutes != 0.6 {
		t.Errorf("session accumulator = %v, want 0.6", s.SessionMinutes)
	}
}

func TestAwardAnswerStreakMilestone(t *testing.T) {
	s := NewService(&mockEventRepo{})

	award := s.AwardAnswer(context.Background(), "u1", "session-1", 3, 5)
	if award.Minutes != 0.6+1 {
		t.Errorf("milestone answer minutes = %v, want 1.6", award.Minutes)
	}
	if award.Streak != 5 {
		t.Errorf("streak = %d, want 5", award.Streak)
	}
}

func TestAwardSessionBands(t *testing.T) {
	s := NewService(&mockEventRepo{})

	if got := s.AwardSession(context.Background(), "u1", "s1", 0.95); got == nil || got.Minutes != 5 {
		t.Errorf("high accuracy bonus = %+v, want 5 minutes", got)
	}
	if got := s.AwardSession(context.Background(), "u1", "s1", 0.8); got == nil || got.Minutes != 3 {
		t.Errorf("mid accuracy bonus = %+v, want 3 minutes", got)
	}
	if got := s.AwardSession(context.Background(), "u1", "s1", 0.3); got != nil {
		t.Errorf("low accuracy bonus = %+v, want nil", got)
	}
}

func TestAwardSurvivesPersistFailure(t *testing.T) {
	repo := &mockEventRepo{appendErr: errors.New("db locked")}
	s := NewService(repo)

	award := s.AwardAnswer(context.Background(), "u1", "session-1", 3, 1)
	if award == nil || s.SessionMinutes != 0.6 {
		t.Errorf("award lost on persist failure: %+v / %v", award, s.SessionMinutes)
	}
}

func TestResetSession(t *testing.T) {
	s := NewService(&mockEventRepo{})
	s.AwardAnswer(context.Background(), "u1", "s1", 3, 1)
	s.ResetSession()
	if s.SessionMinutes != 0 {
		t.Errorf("accumulator = %v after reset, want 0", s.SessionMinutes)
	}
}
