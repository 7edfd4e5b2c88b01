package store

import (
	"context"
	"time"
)

// TemplateRecord is the selector-facing view of a persisted question template.
type TemplateRecord struct {
	ID           int
	Grade        int
	GradeApp     int
	QuarterApp   string
	Domain       string
	Subcategory  string
	Difficulty   string
	QuestionType string
	Prompt       string
	Solution     string
	Distractors  []string
	QualityScore float64
	Plays        int
	Correct      int
	RatingSum    int
	RatingCount  int
	Status       string
	CreatedAt    time.Time
}

// TemplateQuery describes a filtered query for active templates.
// Zero values mean "no constraint" except Grade, which is always required.
type TemplateQuery struct {
	Grade           int
	Quarter         string // "" or "ANY" matches all quarters
	Domains         []string
	Difficulty      string
	QuestionTypes   []string
	MinQuality      float64
	ExcludeKeywords []string // case-insensitive substring match on prompt
	Limit           int
	OrderByPlaysAsc bool
}

// TemplateRepo provides access to the template bank.
type TemplateRepo interface {
	// QueryActive returns ACTIVE templates matching the query.
	QueryActive(ctx context.Context, q TemplateQuery) ([]TemplateRecord, error)

	// ListActive returns all ACTIVE templates. Used by coverage analysis.
	ListActive(ctx context.Context) ([]TemplateRecord, error)

	// SampleActive returns up to limit ACTIVE templates for a grade in
	// store order. Callers shuffle; used by the selection fallback path.
	SampleActive(ctx context.Context, grade, limit int) ([]TemplateRecord, error)

	// IncrementPlays atomically bumps the play counter.
	IncrementPlays(ctx context.Context, id int) error

	// RecordAnswer bumps the correct counter when the answer was right.
	RecordAnswer(ctx context.Context, id int, correct bool) error

	// AddRating adds a 1-5 star rating.
	AddRating(ctx context.Context, id int, rating int) error

	// Insert stores a new template and returns its ID.
	Insert(ctx context.Context, t TemplateRecord) (int, error)

	// SetStatus transitions a template between ACTIVE and ARCHIVED.
	SetStatus(ctx context.Context, id int, status string) error

	// SetQualityScore is called by the quality pipeline only.
	SetQualityScore(ctx context.Context, id int, score float64) error
}

// ScenarioFamilyRecord describes a narrative frame and its context slots.
type ScenarioFamilyRecord struct {
	ID              int
	Name            string
	Category        string
	GradeMin        int
	GradeMax        int
	BaseTemplate    string
	ContextSlots    map[string]SlotSpec
	DifficultyLevel int
}

// SlotSpec describes one context slot of a scenario family.
type SlotSpec struct {
	Required bool
	Hint     string
}

// ContextVariantRecord is one candidate value for a (family, dimension) slot.
type ContextVariantRecord struct {
	ID               int
	ScenarioFamilyID int
	DimensionType    string
	Value            string
	SemanticCluster  string
	UsageCount       int
	QualityScore     float64
}

// ContextHistoryRecord is one served context combination.
type ContextHistoryRecord struct {
	ID               int
	UserID           string
	ScenarioFamilyID int
	Category         string
	Grade            int
	Combination      map[string]string
	CombinationHash  string
	CreatedAt        time.Time
}

// ContextRepo provides access to scenario families, their variants and the
// per-user context usage history.
type ContextRepo interface {
	FamiliesFor(ctx context.Context, category string, grade int) ([]ScenarioFamilyRecord, error)
	VariantsFor(ctx context.Context, familyID int, dimension string) ([]ContextVariantRecord, error)
	IncrementVariantUsage(ctx context.Context, variantID int) error
	HistoryFor(ctx context.Context, userID, category string, grade int, since time.Time) ([]ContextHistoryRecord, error)
	AppendHistory(ctx context.Context, rec ContextHistoryRecord) error

	// Seeding helpers used by `lernzeit reset --seed`.
	InsertFamily(ctx context.Context, rec ScenarioFamilyRecord) (int, error)
	InsertVariant(ctx context.Context, rec ContextVariantRecord) (int, error)
}

// FeedbackRecord is a user's reaction to a served prompt.
type FeedbackRecord struct {
	ID           int
	UserID       string
	TemplateID   int
	Prompt       string
	FeedbackType string
	CreatedAt    time.Time
}

// FeedbackRepo provides access to template feedback.
type FeedbackRepo interface {
	// NegativePrompts returns the exact prompt texts the user flagged with
	// any of the given feedback types.
	NegativePrompts(ctx context.Context, userID string, types []string) ([]string, error)
	Append(ctx context.Context, rec FeedbackRecord) error
}

// SessionRecord is the aggregate row for one learning session.
type SessionRecord struct {
	ID           int
	SessionID    string
	UserID       string
	Category     string
	Grade        int
	Correct      int
	Total        int
	DurationSecs int
	TemplateIDs  []int
	CreatedAt    time.Time
}

// SessionRepo provides access to learning session records.
type SessionRepo interface {
	RecentSessions(ctx context.Context, userID string, since time.Time) ([]SessionRecord, error)
	Append(ctx context.Context, rec SessionRecord) error
	Complete(ctx context.Context, sessionID string, correct, total, durationSecs int) error
}

// RewardEventData captures one screen-time award.
type RewardEventData struct {
	UserID    string
	SessionID string
	Minutes   float64
	Reason    string
	Streak    int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMUsageStats aggregates LLM usage per purpose label.
type LLMUsageStats struct {
	Purpose      string
	Requests     int
	InputTokens  int
	OutputTokens int
	Failures     int
}

// EventRepo provides append access to the event tables.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	AppendReward(ctx context.Context, data RewardEventData) error
	TotalRewardMinutes(ctx context.Context, userID string) (float64, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)
}

// GenerationRunRecord summarizes one batch-generation pass.
type GenerationRunRecord struct {
	ID           int
	RunID        string
	GapsTargeted int
	Generated    int
	Rejected     int
	Failed       int
	StartedAt    time.Time
	FinishedAt   time.Time
}

// GenerationRepo tracks batch-generation runs.
type GenerationRepo interface {
	StartRun(ctx context.Context, runID string, gapsTargeted int) (int, error)
	FinishRun(ctx context.Context, id int, generated, rejected, failed int) error
	RecentRuns(ctx context.Context, limit int) ([]GenerationRunRecord, error)
}
