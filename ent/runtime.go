// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/lernzeit/lernzeit/ent/contexthistory"
	"github.com/lernzeit/lernzeit/ent/contextvariant"
	"github.com/lernzeit/lernzeit/ent/generationrun"
	"github.com/lernzeit/lernzeit/ent/learningsession"
	"github.com/lernzeit/lernzeit/ent/llmrequestevent"
	"github.com/lernzeit/lernzeit/ent/rewardevent"
	"github.com/lernzeit/lernzeit/ent/scenariofamily"
	"github.com/lernzeit/lernzeit/ent/schema"
	"github.com/lernzeit/lernzeit/ent/template"
	"github.com/lernzeit/lernzeit/ent/templatefeedback"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	contexthistoryFields := schema.ContextHistory{}.Fields()
	_ = contexthistoryFields
	// contexthistoryDescUserID is the schema descriptor for user_id field.
	contexthistoryDescUserID := contexthistoryFields[0].Descriptor()
	// contexthistory.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	contexthistory.UserIDValidator = contexthistoryDescUserID.Validators[0].(func(string) error)
	// contexthistoryDescCategory is the schema descriptor for category field.
	contexthistoryDescCategory := contexthistoryFields[2].Descriptor()
	// contexthistory.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	contexthistory.CategoryValidator = contexthistoryDescCategory.Validators[0].(func(string) error)
	// contexthistoryDescGrade is the schema descriptor for grade field.
	contexthistoryDescGrade := contexthistoryFields[3].Descriptor()
	// contexthistory.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	contexthistory.GradeValidator = contexthistoryDescGrade.Validators[0].(func(int) error)
	// contexthistoryDescCombinationHash is the schema descriptor for combination_hash field.
	contexthistoryDescCombinationHash := contexthistoryFields[5].Descriptor()
	// contexthistory.CombinationHashValidator is a validator for the "combination_hash" field. It is called by the builders before save.
	contexthistory.CombinationHashValidator = contexthistoryDescCombinationHash.Validators[0].(func(string) error)
	// contexthistoryDescCreatedAt is the schema descriptor for created_at field.
	contexthistoryDescCreatedAt := contexthistoryFields[6].Descriptor()
	// contexthistory.DefaultCreatedAt holds the default value on creation for the created_at field.
	contexthistory.DefaultCreatedAt = contexthistoryDescCreatedAt.Default.(func() time.Time)
	contextvariantFields := schema.ContextVariant{}.Fields()
	_ = contextvariantFields
	// contextvariantDescDimensionType is the schema descriptor for dimension_type field.
	contextvariantDescDimensionType := contextvariantFields[1].Descriptor()
	// contextvariant.DimensionTypeValidator is a validator for the "dimension_type" field. It is called by the builders before save.
	contextvariant.DimensionTypeValidator = contextvariantDescDimensionType.Validators[0].(func(string) error)
	// contextvariantDescValue is the schema descriptor for value field.
	contextvariantDescValue := contextvariantFields[2].Descriptor()
	// contextvariant.ValueValidator is a validator for the "value" field. It is called by the builders before save.
	contextvariant.ValueValidator = contextvariantDescValue.Validators[0].(func(string) error)
	// contextvariantDescUsageCount is the schema descriptor for usage_count field.
	contextvariantDescUsageCount := contextvariantFields[4].Descriptor()
	// contextvariant.DefaultUsageCount holds the default value on creation for the usage_count field.
	contextvariant.DefaultUsageCount = contextvariantDescUsageCount.Default.(int)
	// contextvariant.UsageCountValidator is a validator for the "usage_count" field. It is called by the builders before save.
	contextvariant.UsageCountValidator = contextvariantDescUsageCount.Validators[0].(func(int) error)
	// contextvariantDescQualityScore is the schema descriptor for quality_score field.
	contextvariantDescQualityScore := contextvariantFields[5].Descriptor()
	// contextvariant.DefaultQualityScore holds the default value on creation for the quality_score field.
	contextvariant.DefaultQualityScore = contextvariantDescQualityScore.Default.(float64)
	// contextvariant.QualityScoreValidator is a validator for the "quality_score" field. It is called by the builders before save.
	contextvariant.QualityScoreValidator = func() func(float64) error {
		validators := contextvariantDescQualityScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(quality_score float64) error {
			for _, fn := range fns {
				if err := fn(quality_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	generationrunFields := schema.GenerationRun{}.Fields()
	_ = generationrunFields
	// generationrunDescRunID is the schema descriptor for run_id field.
	generationrunDescRunID := generationrunFields[0].Descriptor()
	// generationrun.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	generationrun.RunIDValidator = generationrunDescRunID.Validators[0].(func(string) error)
	// generationrunDescGapsTargeted is the schema descriptor for gaps_targeted field.
	generationrunDescGapsTargeted := generationrunFields[1].Descriptor()
	// generationrun.DefaultGapsTargeted holds the default value on creation for the gaps_targeted field.
	generationrun.DefaultGapsTargeted = generationrunDescGapsTargeted.Default.(int)
	// generationrunDescGenerated is the schema descriptor for generated field.
	generationrunDescGenerated := generationrunFields[2].Descriptor()
	// generationrun.DefaultGenerated holds the default value on creation for the generated field.
	generationrun.DefaultGenerated = generationrunDescGenerated.Default.(int)
	// generationrunDescRejected is the schema descriptor for rejected field.
	generationrunDescRejected := generationrunFields[3].Descriptor()
	// generationrun.DefaultRejected holds the default value on creation for the rejected field.
	generationrun.DefaultRejected = generationrunDescRejected.Default.(int)
	// generationrunDescFailed is the schema descriptor for failed field.
	generationrunDescFailed := generationrunFields[4].Descriptor()
	// generationrun.DefaultFailed holds the default value on creation for the failed field.
	generationrun.DefaultFailed = generationrunDescFailed.Default.(int)
	// generationrunDescStartedAt is the schema descriptor for started_at field.
	generationrunDescStartedAt := generationrunFields[5].Descriptor()
	// generationrun.DefaultStartedAt holds the default value on creation for the started_at field.
	generationrun.DefaultStartedAt = generationrunDescStartedAt.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	learningsessionFields := schema.LearningSession{}.Fields()
	_ = learningsessionFields
	// learningsessionDescSessionID is the schema descriptor for session_id field.
	learningsessionDescSessionID := learningsessionFields[0].Descriptor()
	// learningsession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	learningsession.SessionIDValidator = learningsessionDescSessionID.Validators[0].(func(string) error)
	// learningsessionDescUserID is the schema descriptor for user_id field.
	learningsessionDescUserID := learningsessionFields[1].Descriptor()
	// learningsession.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	learningsession.UserIDValidator = learningsessionDescUserID.Validators[0].(func(string) error)
	// learningsessionDescCategory is the schema descriptor for category field.
	learningsessionDescCategory := learningsessionFields[2].Descriptor()
	// learningsession.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	learningsession.CategoryValidator = learningsessionDescCategory.Validators[0].(func(string) error)
	// learningsessionDescGrade is the schema descriptor for grade field.
	learningsessionDescGrade := learningsessionFields[3].Descriptor()
	// learningsession.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	learningsession.GradeValidator = learningsessionDescGrade.Validators[0].(func(int) error)
	// learningsessionDescCorrect is the schema descriptor for correct field.
	learningsessionDescCorrect := learningsessionFields[4].Descriptor()
	// learningsession.DefaultCorrect holds the default value on creation for the correct field.
	learningsession.DefaultCorrect = learningsessionDescCorrect.Default.(int)
	// learningsession.CorrectValidator is a validator for the "correct" field. It is called by the builders before save.
	learningsession.CorrectValidator = learningsessionDescCorrect.Validators[0].(func(int) error)
	// learningsessionDescTotal is the schema descriptor for total field.
	learningsessionDescTotal := learningsessionFields[5].Descriptor()
	// learningsession.DefaultTotal holds the default value on creation for the total field.
	learningsession.DefaultTotal = learningsessionDescTotal.Default.(int)
	// learningsession.TotalValidator is a validator for the "total" field. It is called by the builders before save.
	learningsession.TotalValidator = learningsessionDescTotal.Validators[0].(func(int) error)
	// learningsessionDescDurationSecs is the schema descriptor for duration_secs field.
	learningsessionDescDurationSecs := learningsessionFields[6].Descriptor()
	// learningsession.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	learningsession.DefaultDurationSecs = learningsessionDescDurationSecs.Default.(int)
	// learningsessionDescCreatedAt is the schema descriptor for created_at field.
	learningsessionDescCreatedAt := learningsessionFields[8].Descriptor()
	// learningsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	learningsession.DefaultCreatedAt = learningsessionDescCreatedAt.Default.(func() time.Time)
	rewardeventMixin := schema.RewardEvent{}.Mixin()
	rewardeventMixinFields0 := rewardeventMixin[0].Fields()
	_ = rewardeventMixinFields0
	rewardeventFields := schema.RewardEvent{}.Fields()
	_ = rewardeventFields
	// rewardeventDescTimestamp is the schema descriptor for timestamp field.
	rewardeventDescTimestamp := rewardeventMixinFields0[1].Descriptor()
	// rewardevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	rewardevent.DefaultTimestamp = rewardeventDescTimestamp.Default.(func() time.Time)
	// rewardeventDescUserID is the schema descriptor for user_id field.
	rewardeventDescUserID := rewardeventFields[0].Descriptor()
	// rewardevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	rewardevent.UserIDValidator = rewardeventDescUserID.Validators[0].(func(string) error)
	// rewardeventDescSessionID is the schema descriptor for session_id field.
	rewardeventDescSessionID := rewardeventFields[1].Descriptor()
	// rewardevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	rewardevent.SessionIDValidator = rewardeventDescSessionID.Validators[0].(func(string) error)
	// rewardeventDescMinutes is the schema descriptor for minutes field.
	rewardeventDescMinutes := rewardeventFields[2].Descriptor()
	// rewardevent.MinutesValidator is a validator for the "minutes" field. It is called by the builders before save.
	rewardevent.MinutesValidator = rewardeventDescMinutes.Validators[0].(func(float64) error)
	// rewardeventDescReason is the schema descriptor for reason field.
	rewardeventDescReason := rewardeventFields[3].Descriptor()
	// rewardevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	rewardevent.ReasonValidator = rewardeventDescReason.Validators[0].(func(string) error)
	// rewardeventDescStreak is the schema descriptor for streak field.
	rewardeventDescStreak := rewardeventFields[4].Descriptor()
	// rewardevent.DefaultStreak holds the default value on creation for the streak field.
	rewardevent.DefaultStreak = rewardeventDescStreak.Default.(int)
	scenariofamilyFields := schema.ScenarioFamily{}.Fields()
	_ = scenariofamilyFields
	// scenariofamilyDescName is the schema descriptor for name field.
	scenariofamilyDescName := scenariofamilyFields[0].Descriptor()
	// scenariofamily.NameValidator is a validator for the "name" field. It is called by the builders before save.
	scenariofamily.NameValidator = scenariofamilyDescName.Validators[0].(func(string) error)
	// scenariofamilyDescCategory is the schema descriptor for category field.
	scenariofamilyDescCategory := scenariofamilyFields[1].Descriptor()
	// scenariofamily.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	scenariofamily.CategoryValidator = scenariofamilyDescCategory.Validators[0].(func(string) error)
	// scenariofamilyDescGradeMin is the schema descriptor for grade_min field.
	scenariofamilyDescGradeMin := scenariofamilyFields[2].Descriptor()
	// scenariofamily.GradeMinValidator is a validator for the "grade_min" field. It is called by the builders before save.
	scenariofamily.GradeMinValidator = scenariofamilyDescGradeMin.Validators[0].(func(int) error)
	// scenariofamilyDescGradeMax is the schema descriptor for grade_max field.
	scenariofamilyDescGradeMax := scenariofamilyFields[3].Descriptor()
	// scenariofamily.GradeMaxValidator is a validator for the "grade_max" field. It is called by the builders before save.
	scenariofamily.GradeMaxValidator = scenariofamilyDescGradeMax.Validators[0].(func(int) error)
	// scenariofamilyDescBaseTemplate is the schema descriptor for base_template field.
	scenariofamilyDescBaseTemplate := scenariofamilyFields[4].Descriptor()
	// scenariofamily.BaseTemplateValidator is a validator for the "base_template" field. It is called by the builders before save.
	scenariofamily.BaseTemplateValidator = scenariofamilyDescBaseTemplate.Validators[0].(func(string) error)
	// scenariofamilyDescDifficultyLevel is the schema descriptor for difficulty_level field.
	scenariofamilyDescDifficultyLevel := scenariofamilyFields[6].Descriptor()
	// scenariofamily.DefaultDifficultyLevel holds the default value on creation for the difficulty_level field.
	scenariofamily.DefaultDifficultyLevel = scenariofamilyDescDifficultyLevel.Default.(int)
	// scenariofamily.DifficultyLevelValidator is a validator for the "difficulty_level" field. It is called by the builders before save.
	scenariofamily.DifficultyLevelValidator = scenariofamilyDescDifficultyLevel.Validators[0].(func(int) error)
	templateFields := schema.Template{}.Fields()
	_ = templateFields
	// templateDescGrade is the schema descriptor for grade field.
	templateDescGrade := templateFields[0].Descriptor()
	// template.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	template.GradeValidator = templateDescGrade.Validators[0].(func(int) error)
	// templateDescGradeApp is the schema descriptor for grade_app field.
	templateDescGradeApp := templateFields[1].Descriptor()
	// template.GradeAppValidator is a validator for the "grade_app" field. It is called by the builders before save.
	template.GradeAppValidator = templateDescGradeApp.Validators[0].(func(int) error)
	// templateDescQuarterApp is the schema descriptor for quarter_app field.
	templateDescQuarterApp := templateFields[2].Descriptor()
	// template.QuarterAppValidator is a validator for the "quarter_app" field. It is called by the builders before save.
	template.QuarterAppValidator = templateDescQuarterApp.Validators[0].(func(string) error)
	// templateDescDomain is the schema descriptor for domain field.
	templateDescDomain := templateFields[3].Descriptor()
	// template.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	template.DomainValidator = templateDescDomain.Validators[0].(func(string) error)
	// templateDescSubcategory is the schema descriptor for subcategory field.
	templateDescSubcategory := templateFields[4].Descriptor()
	// template.SubcategoryValidator is a validator for the "subcategory" field. It is called by the builders before save.
	template.SubcategoryValidator = templateDescSubcategory.Validators[0].(func(string) error)
	// templateDescDifficulty is the schema descriptor for difficulty field.
	templateDescDifficulty := templateFields[5].Descriptor()
	// template.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	template.DifficultyValidator = templateDescDifficulty.Validators[0].(func(string) error)
	// templateDescQuestionType is the schema descriptor for question_type field.
	templateDescQuestionType := templateFields[6].Descriptor()
	// template.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	template.QuestionTypeValidator = templateDescQuestionType.Validators[0].(func(string) error)
	// templateDescPrompt is the schema descriptor for prompt field.
	templateDescPrompt := templateFields[7].Descriptor()
	// template.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	template.PromptValidator = templateDescPrompt.Validators[0].(func(string) error)
	// templateDescSolution is the schema descriptor for solution field.
	templateDescSolution := templateFields[8].Descriptor()
	// template.SolutionValidator is a validator for the "solution" field. It is called by the builders before save.
	template.SolutionValidator = templateDescSolution.Validators[0].(func(string) error)
	// templateDescQualityScore is the schema descriptor for quality_score field.
	templateDescQualityScore := templateFields[10].Descriptor()
	// template.DefaultQualityScore holds the default value on creation for the quality_score field.
	template.DefaultQualityScore = templateDescQualityScore.Default.(float64)
	// template.QualityScoreValidator is a validator for the "quality_score" field. It is called by the builders before save.
	template.QualityScoreValidator = func() func(float64) error {
		validators := templateDescQualityScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(quality_score float64) error {
			for _, fn := range fns {
				if err := fn(quality_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// templateDescPlays is the schema descriptor for plays field.
	templateDescPlays := templateFields[11].Descriptor()
	// template.DefaultPlays holds the default value on creation for the plays field.
	template.DefaultPlays = templateDescPlays.Default.(int)
	// template.PlaysValidator is a validator for the "plays" field. It is called by the builders before save.
	template.PlaysValidator = templateDescPlays.Validators[0].(func(int) error)
	// templateDescCorrect is the schema descriptor for correct field.
	templateDescCorrect := templateFields[12].Descriptor()
	// template.DefaultCorrect holds the default value on creation for the correct field.
	template.DefaultCorrect = templateDescCorrect.Default.(int)
	// template.CorrectValidator is a validator for the "correct" field. It is called by the builders before save.
	template.CorrectValidator = templateDescCorrect.Validators[0].(func(int) error)
	// templateDescRatingSum is the schema descriptor for rating_sum field.
	templateDescRatingSum := templateFields[13].Descriptor()
	// template.DefaultRatingSum holds the default value on creation for the rating_sum field.
	template.DefaultRatingSum = templateDescRatingSum.Default.(int)
	// templateDescRatingCount is the schema descriptor for rating_count field.
	templateDescRatingCount := templateFields[14].Descriptor()
	// template.DefaultRatingCount holds the default value on creation for the rating_count field.
	template.DefaultRatingCount = templateDescRatingCount.Default.(int)
	// templateDescStatus is the schema descriptor for status field.
	templateDescStatus := templateFields[15].Descriptor()
	// template.DefaultStatus holds the default value on creation for the status field.
	template.DefaultStatus = templateDescStatus.Default.(string)
	// templateDescCreatedAt is the schema descriptor for created_at field.
	templateDescCreatedAt := templateFields[16].Descriptor()
	// template.DefaultCreatedAt holds the default value on creation for the created_at field.
	template.DefaultCreatedAt = templateDescCreatedAt.Default.(func() time.Time)
	templatefeedbackFields := schema.TemplateFeedback{}.Fields()
	_ = templatefeedbackFields
	// templatefeedbackDescUserID is the schema descriptor for user_id field.
	templatefeedbackDescUserID := templatefeedbackFields[0].Descriptor()
	// templatefeedback.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	templatefeedback.UserIDValidator = templatefeedbackDescUserID.Validators[0].(func(string) error)
	// templatefeedbackDescPrompt is the schema descriptor for prompt field.
	templatefeedbackDescPrompt := templatefeedbackFields[2].Descriptor()
	// templatefeedback.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	templatefeedback.PromptValidator = templatefeedbackDescPrompt.Validators[0].(func(string) error)
	// templatefeedbackDescFeedbackType is the schema descriptor for feedback_type field.
	templatefeedbackDescFeedbackType := templatefeedbackFields[3].Descriptor()
	// templatefeedback.FeedbackTypeValidator is a validator for the "feedback_type" field. It is called by the builders before save.
	templatefeedback.FeedbackTypeValidator = templatefeedbackDescFeedbackType.Validators[0].(func(string) error)
	// templatefeedbackDescCreatedAt is the schema descriptor for created_at field.
	templatefeedbackDescCreatedAt := templatefeedbackFields[4].Descriptor()
	// templatefeedback.DefaultCreatedAt holds the default value on creation for the created_at field.
	templatefeedback.DefaultCreatedAt = templatefeedbackDescCreatedAt.Default.(func() time.Time)
}
