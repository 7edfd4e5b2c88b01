package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func testTemplate(grade int, domain, prompt string) TemplateRecord {
	return TemplateRecord{
		Grade:        grade,
		GradeApp:     grade,
		QuarterApp:   "Q1",
		Domain:       domain,
		Subcategory:  "Grundrechenarten",
		Difficulty:   "AFB I",
		QuestionType: "text-input",
		Prompt:       prompt,
		Solution:     "42",
		QualityScore: 0.9,
	}
}

func TestTemplateInsertAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.TemplateRepo()
	ctx := context.Background()

	id, err := repo.Insert(ctx, testTemplate(3, "Zahlen & Operationen", "Was ist 6 mal 7?"))
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero template ID")
	}
	if _, err := repo.Insert(ctx, testTemplate(4, "Zahlen & Operationen", "Was ist 8 mal 9?")); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := repo.QueryActive(ctx, TemplateQuery{Grade: 3})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 grade-3 template, got %d", len(got))
	}
	if got[0].Prompt != "Was ist 6 mal 7?" {
		t.Errorf("unexpected prompt %q", got[0].Prompt)
	}
	if got[0].Status != StatusActive {
		t.Errorf("expected default status ACTIVE, got %q", got[0].Status)
	}
}

func TestTemplateQueryFilters(t *testing.T) {
	s := openTestStore(t)
	repo := s.TemplateRepo()
	ctx := context.Background()

	a := testTemplate(3, "Zahlen & Operationen", "Was ist 6 mal 7?")
	b := testTemplate(3, "Raum & Form", "Zeichenaufgabe mit Zirkel und Lineal")
	b.QualityScore = 0.5
	b.Difficulty = "AFB II"
	for _, tmpl := range []TemplateRecord{a, b} {
		if _, err := repo.Insert(ctx, tmpl); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	tests := []struct {
		name  string
		query TemplateQuery
		want  int
	}{
		{"by domain", TemplateQuery{Grade: 3, Domains: []string{"Raum & Form"}}, 1},
		{"by difficulty", TemplateQuery{Grade: 3, Difficulty: "AFB I"}, 1},
		{"by min quality", TemplateQuery{Grade: 3, MinQuality: 0.8}, 1},
		{"by exclude keyword", TemplateQuery{Grade: 3, ExcludeKeywords: []string{"zirkel"}}, 1},
		{"quarter ANY", TemplateQuery{Grade: 3, Quarter: "ANY"}, 2},
		{"quarter mismatch", TemplateQuery{Grade: 3, Quarter: "Q3"}, 0},
		{"with limit", TemplateQuery{Grade: 3, Limit: 1}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.QueryActive(ctx, tt.query)
			if err != nil {
				t.Fatalf("query: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("got %d templates, want %d", len(got), tt.want)
			}
		})
	}
}

func TestTemplateCounters(t *testing.T) {
	s := openTestStore(t)
	repo := s.TemplateRepo()
	ctx := context.Background()

	id, err := repo.Insert(ctx, testTemplate(3, "Zahlen & Operationen", "Was ist 6 mal 7?"))
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := repo.IncrementPlays(ctx, id); err != nil {
		t.Fatalf("increment plays: %v", err)
	}
	if err := repo.IncrementPlays(ctx, id); err != nil {
		t.Fatalf("increment plays: %v", err)
	}
	if err := repo.RecordAnswer(ctx, id, true); err != nil {
		t.Fatalf("record answer: %v", err)
	}
	if err := repo.RecordAnswer(ctx, id, false); err != nil {
		t.Fatalf("record wrong answer: %v", err)
	}
	if err := repo.AddRating(ctx, id, 4); err != nil {
		t.Fatalf("add rating: %v", err)
	}
	if err := repo.AddRating(ctx, id, 0); err == nil {
		t.Error("expected error for out-of-range rating")
	}

	got, err := repo.QueryActive(ctx, TemplateQuery{Grade: 3})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 template, got %d", len(got))
	}
	tmpl := got[0]
	if tmpl.Plays != 2 {
		t.Errorf("plays = %d, want 2", tmpl.Plays)
	}
	if tmpl.Correct != 1 {
		t.Errorf("correct = %d, want 1", tmpl.Correct)
	}
	if tmpl.RatingSum != 4 || tmpl.RatingCount != 1 {
		t.Errorf("rating sum/count = %d/%d, want 4/1", tmpl.RatingSum, tmpl.RatingCount)
	}
}

func TestTemplateStatusLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.TemplateRepo()
	ctx := context.Background()

	id, err := repo.Insert(ctx, testTemplate(3, "Zahlen & Operationen", "Was ist 6 mal 7?"))
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := repo.SetStatus(ctx, id, "PENDING"); err == nil {
		t.Error("expected error for unknown status")
	}
	if err := repo.SetStatus(ctx, id, StatusArchived); err != nil {
		t.Fatalf("set status: %v", err)
	}

	got, err := repo.ListActive(ctx)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("archived template still listed as active")
	}
}

func TestContextFamiliesAndVariants(t *testing.T) {
	s := openTestStore(t)
	repo := s.ContextRepo()
	ctx := context.Background()

	familyID, err := repo.InsertFamily(ctx, ScenarioFamilyRecord{
		Name:         "Einkaufen",
		Category:     "Zahlen & Operationen",
		GradeMin:     1,
		GradeMax:     6,
		BaseTemplate: "{character} kauft im {location} ein.",
		ContextSlots: map[string]SlotSpec{
			"location":  {Required: true, Hint: "Ort"},
			"character": {Required: true, Hint: "Person"},
		},
		DifficultyLevel: 1,
	})
	if err != nil {
		t.Fatalf("insert family: %v", err)
	}

	variantID, err := repo.InsertVariant(ctx, ContextVariantRecord{
		ScenarioFamilyID: familyID,
		DimensionType:    "location",
		Value:            "Bäckerei",
		SemanticCluster:  "laden",
		QualityScore:     1,
	})
	if err != nil {
		t.Fatalf("insert variant: %v", err)
	}

	families, err := repo.FamiliesFor(ctx, "Zahlen & Operationen", 3)
	if err != nil {
		t.Fatalf("families for: %v", err)
	}
	if len(families) != 1 {
		t.Fatalf("expected 1 family, got %d", len(families))
	}
	if !families[0].ContextSlots["location"].Required {
		t.Error("location slot should be required")
	}

	// Grade outside the family's window.
	families, err = repo.FamiliesFor(ctx, "Zahlen & Operationen", 9)
	if err != nil {
		t.Fatalf("families for: %v", err)
	}
	if len(families) != 0 {
		t.Errorf("expected no families for grade 9, got %d", len(families))
	}

	if err := repo.IncrementVariantUsage(ctx, variantID); err != nil {
		t.Fatalf("increment usage: %v", err)
	}
	variants, err := repo.VariantsFor(ctx, familyID, "location")
	if err != nil {
		t.Fatalf("variants for: %v", err)
	}
	if len(variants) != 1 {
		t.Fatalf("expected 1 variant, got %d", len(variants))
	}
	if variants[0].UsageCount != 1 {
		t.Errorf("usage count = %d, want 1", variants[0].UsageCount)
	}
	if variants[0].SemanticCluster != "laden" {
		t.Errorf("cluster = %q, want %q", variants[0].SemanticCluster, "laden")
	}
}

func TestContextHistory(t *testing.T) {
	s := openTestStore(t)
	repo := s.ContextRepo()
	ctx := context.Background()

	familyID, err := repo.InsertFamily(ctx, ScenarioFamilyRecord{
		Name:     "Einkaufen",
		Category: "Zahlen & Operationen",
		GradeMin: 1,
		GradeMax: 6,
	})
	if err != nil {
		t.Fatalf("insert family: %v", err)
	}

	rec := ContextHistoryRecord{
		UserID:           "u1",
		ScenarioFamilyID: familyID,
		Category:         "Zahlen & Operationen",
		Grade:            3,
		Combination:      map[string]string{"location": "Bäckerei"},
		CombinationHash:  "abc123",
	}
	if err := repo.AppendHistory(ctx, rec); err != nil {
		t.Fatalf("append history: %v", err)
	}

	since := time.Now().Add(-time.Hour)
	got, err := repo.HistoryFor(ctx, "u1", "Zahlen & Operationen", 3, since)
	if err != nil {
		t.Fatalf("history for: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 history row, got %d", len(got))
	}
	if got[0].Combination["location"] != "Bäckerei" {
		t.Errorf("combination not persisted: %v", got[0].Combination)
	}

	// Other user sees nothing.
	got, err = repo.HistoryFor(ctx, "u2", "Zahlen & Operationen", 3, since)
	if err != nil {
		t.Fatalf("history for: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no history for other user, got %d", len(got))
	}

	// Window excludes older rows.
	got, err = repo.HistoryFor(ctx, "u1", "Zahlen & Operationen", 3, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("history for: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no history inside future window, got %d", len(got))
	}
}

func TestFeedbackNegativePrompts(t *testing.T) {
	s := openTestStore(t)
	repo := s.FeedbackRepo()
	ctx := context.Background()

	records := []FeedbackRecord{
		{UserID: "u1", Prompt: "Verwirrende Aufgabe", FeedbackType: FeedbackConfusing},
		{UserID: "u1", Prompt: "Zu leichte Aufgabe", FeedbackType: "too_easy"},
		{UserID: "u2", Prompt: "Unpassende Aufgabe", FeedbackType: FeedbackInappropriate},
	}
	for _, rec := range records {
		if err := repo.Append(ctx, rec); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.NegativePrompts(ctx, "u1", NegativeFeedbackTypes())
	if err != nil {
		t.Fatalf("negative prompts: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 negative prompt, got %d", len(got))
	}
	if got[0] != "Verwirrende Aufgabe" {
		t.Errorf("unexpected prompt %q", got[0])
	}
}

func TestSessionAppendAndComplete(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	rec := SessionRecord{
		SessionID:   "sess-1",
		UserID:      "u1",
		Category:    "Zahlen & Operationen",
		Grade:       3,
		TemplateIDs: []int{1, 2, 3},
	}
	if err := repo.Append(ctx, rec); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := repo.Complete(ctx, "sess-1", 4, 5, 300); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := repo.Complete(ctx, "missing", 1, 1, 1); err == nil {
		t.Error("expected error completing unknown session")
	}

	got, err := repo.RecentSessions(ctx, "u1", time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 session, got %d", len(got))
	}
	sess := got[0]
	if sess.Correct != 4 || sess.Total != 5 || sess.DurationSecs != 300 {
		t.Errorf("completion not persisted: %+v", sess)
	}
	if len(sess.TemplateIDs) != 3 {
		t.Errorf("template IDs not persisted: %v", sess.TemplateIDs)
	}
}

func TestGenerationRunLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.GenerationRepo()
	ctx := context.Background()

	id, err := repo.StartRun(ctx, "run-1", 10)
	if err != nil {
		t.Fatalf("start run: %v", err)
	}
	if err := repo.FinishRun(ctx, id, 7, 2, 1); err != nil {
		t.Fatalf("finish run: %v", err)
	}

	runs, err := repo.RecentRuns(ctx, 5)
	if err != nil {
		t.Fatalf("recent runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	run := runs[0]
	if run.RunID != "run-1" || run.GapsTargeted != 10 {
		t.Errorf("run metadata not persisted: %+v", run)
	}
	if run.Generated != 7 || run.Rejected != 2 || run.Failed != 1 {
		t.Errorf("run counters not persisted: %+v", run)
	}
	if run.FinishedAt.IsZero() {
		t.Error("finished_at not set")
	}
}

func TestEventSequenceAndAggregation(t *testing.T) {
	s := openTestStore(t)
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	ctx := context.Background()

	llmEvents := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "template-gen", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "template-gen", InputTokens: 200, OutputTokens: 80, Success: false, ErrorMessage: "rate limited"},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "validation", InputTokens: 30, OutputTokens: 10, Success: true},
	}
	for _, e := range llmEvents {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append LLM request: %v", err)
		}
	}

	rewards := []RewardEventData{
		{UserID: "u1", SessionID: "sess-1", Minutes: 0.6, Reason: "richtige Antwort"},
		{UserID: "u1", SessionID: "sess-1", Minutes: 3, Reason: "Serien-Bonus", Streak: 5},
		{UserID: "u2", SessionID: "sess-2", Minutes: 1},
	}
	for _, e := range rewards {
		if err := repo.AppendReward(ctx, e); err != nil {
			t.Fatalf("append reward: %v", err)
		}
	}

	total, err := repo.TotalRewardMinutes(ctx, "u1")
	if err != nil {
		t.Fatalf("total reward minutes: %v", err)
	}
	if total != 3.6 {
		t.Errorf("total minutes = %v, want 3.6", total)
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(usage))
	}
	byPurpose := make(map[string]LLMUsageStats)
	for _, u := range usage {
		byPurpose[u.Purpose] = u
	}
	gen := byPurpose["template-gen"]
	if gen.Requests != 2 || gen.InputTokens != 300 || gen.OutputTokens != 130 || gen.Failures != 1 {
		t.Errorf("template-gen stats wrong: %+v", gen)
	}
	val := byPurpose["validation"]
	if val.Requests != 1 || val.Failures != 0 {
		t.Errorf("validation stats wrong: %+v", val)
	}
}

func TestSequenceCounterMonotonic(t *testing.T) {
	s := openTestStore(t)
	seq, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}
	ctx := context.Background()

	prev, err := seq.Next(ctx)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	for i := 0; i < 5; i++ {
		n, err := seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if n != prev+1 {
			t.Fatalf("sequence jumped from %d to %d", prev, n)
		}
		prev = n
	}
}
