package rewards

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lernzeit/lernzeit/internal/store"
)

// Award is one screen-time grant.
type Award struct {
	Minutes   float64
	Reason    string
	Streak    int
	AwardedAt time.Time
}

// Service converts learning progress into screen-time minutes and tracks
// what the current session has earned.
type Service struct {
	eventRepo store.EventRepo
	now       func() time.Time

	// SessionMinutes accumulates minutes awarded during the current
	// session.
	SessionMinutes float64
}

// NewService creates a reward Service.
func NewService(eventRepo store.EventRepo) *Service {
	return &Service{eventRepo: eventRepo, now: time.Now}
}

// AwardAnswer grants minutes for one correct answer, plus a streak bonus
// when the streak sits on a milestone.
func (s *Service) AwardAnswer(ctx context.Context, userID, sessionID string, grade, streak int) *Award {
	minutes := MinutesPerCorrect(grade)
	reason := "correct answer"

	if bonus := StreakBonus(streak); bonus > 0 {
		minutes += bonus
		reason = fmt.Sprintf("correct answer, %d in a row", streak)
	}

	award := &Award{
		Minutes:   minutes,
		Reason:    reason,
		Streak:    streak,
		AwardedAt: s.now(),
	}
	s.persist(ctx, userID, sessionID, award)
	s.SessionMinutes += minutes
	return award
}

// AwardSession grants the completion bonus for a finished session.
// Returns nil when the accuracy is too low to earn one.
func (s *Service) AwardSession(ctx context.Context, userID, sessionID string, accuracy float64) *Award {
	bonus := SessionBonus(accuracy)
	if bonus == 0 {
		return nil
	}

	award := &Award{
		Minutes:   bonus,
		Reason:    fmt.Sprintf("session complete (%.0f%% accuracy)", accuracy*100),
		AwardedAt: s.now(),
	}
	s.persist(ctx, userID, sessionID, award)
	s.SessionMinutes += bonus
	return award
}

// TotalMinutes returns the user's lifetime earned screen time.
func (s *Service) TotalMinutes(ctx context.Context, userID string) (float64, error) {
	return s.eventRepo.TotalRewardMinutes(ctx, userID)
}

// ResetSession clears the session accumulator. Called at session start.
func (s *Service) ResetSession() {
	s.SessionMinutes = 0
}

// persist records the award. Failures are logged, not propagated; a lost
// reward event must never break the learning flow.
func (s *Service) persist(ctx context.Context, userID, sessionID string, award *Award) {
	err := s.eventRepo.AppendReward(ctx, store.RewardEventData{
		UserID:    userID,
		SessionID: sessionID,
		Minutes:   award.Minutes,
		Reason:    award.Reason,
		Streak:    award.Streak,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record reward event: %v\n", err)
	}
}
