// Code generated by ent, DO NOT EDIT.

package template

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/lernzeit/lernzeit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Template {
	return predicate.Template(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Template {
	return predicate.Template(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Template {
	return predicate.Template(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Template {
	return predicate.Template(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Template {
	return predicate.Template(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Template {
	return predicate.Template(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Template {
	return predicate.Template(sql.FieldLTE(FieldID, id))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v int) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldGrade, v))
}

// GradeApp applies equality check predicate on the "grade_app" field. It's identical to GradeAppEQ.
func GradeApp(v int) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldGradeApp, v))
}

// QuarterApp applies equality check predicate on the "quarter_app" field. It's identical to QuarterAppEQ.
func QuarterApp(v string) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldQuarterApp, v))
}

// Domain applies equality check predicate on the "domain" field. It's identical to DomainEQ.
func Domain(v string) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldDomain, v))
}

// Subcategory applies equality check predicate on the "subcategory" field. It's identical to SubcategoryEQ.
func Subcategory(v string) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldSubcategory, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldDifficulty, v))
}

// QuestionType applies equality check predicate on the "question_type" field. It's identical to QuestionTypeEQ.
func QuestionType(v string) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldQuestionType, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldPrompt, v))
}

// Solution applies equality check predicate on the "solution" field. It's identical to SolutionEQ.
func Solution(v string) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldSolution, v))
}

// QualityScore applies equality check predicate on the "quality_score" field. It's identical to QualityScoreEQ.
func QualityScore(v float64) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldQualityScore, v))
}

// Plays applies equality check predicate on the "plays" field. It's identical to PlaysEQ.
func Plays(v int) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldPlays, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v int) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldCorrect, v))
}

// RatingSum applies equality check predicate on the "rating_sum" field. It's identical to RatingSumEQ.
func RatingSum(v int) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldRatingSum, v))
}

// RatingCount applies equality check predicate on the "rating_count" field. It's identical to RatingCountEQ.
func RatingCount(v int) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldRatingCount, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldCreatedAt, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v int) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v int) predicate.Template {
	return predicate.Template(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...int) predicate.Template {
	return predicate.Template(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...int) predicate.Template {
	return predicate.Template(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v int) predicate.Template {
	return predicate.Template(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v int) predicate.Template {
	return predicate.Template(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v int) predicate.Template {
	return predicate.Template(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v int) predicate.Template {
	return predicate.Template(sql.FieldLTE(FieldGrade, v))
}

// GradeAppEQ applies the EQ predicate on the "grade_app" field.
func GradeAppEQ(v int) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldGradeApp, v))
}

// GradeAppNEQ applies the NEQ predicate on the "grade_app" field.
func GradeAppNEQ(v int) predicate.Template {
	return predicate.Template(sql.FieldNEQ(FieldGradeApp, v))
}

// GradeAppIn applies the In predicate on the "grade_app" field.
func GradeAppIn(vs ...int) predicate.Template {
	return predicate.Template(sql.FieldIn(FieldGradeApp, vs...))
}

// GradeAppNotIn applies the NotIn predicate on the "grade_app" field.
func GradeAppNotIn(vs ...int) predicate.Template {
	return predicate.Template(sql.FieldNotIn(FieldGradeApp, vs...))
}

// GradeAppGT applies the GT predicate on the "grade_app" field.
func GradeAppGT(v int) predicate.Template {
	return predicate.Template(sql.FieldGT(FieldGradeApp, v))
}

// GradeAppGTE applies the GTE predicate on the "grade_app" field.
func GradeAppGTE(v int) predicate.Template {
	return predicate.Template(sql.FieldGTE(FieldGradeApp, v))
}

// GradeAppLT applies the LT predicate on the "grade_app" field.
func GradeAppLT(v int) predicate.Template {
	return predicate.Template(sql.FieldLT(FieldGradeApp, v))
}

// GradeAppLTE applies the LTE predicate on the "grade_app" field.
func GradeAppLTE(v int) predicate.Template {
	return predicate.Template(sql.FieldLTE(FieldGradeApp, v))
}

// QuarterAppEQ applies the EQ predicate on the "quarter_app" field.
func QuarterAppEQ(v string) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldQuarterApp, v))
}

// QuarterAppNEQ applies the NEQ predicate on the "quarter_app" field.
func QuarterAppNEQ(v string) predicate.Template {
	return predicate.Template(sql.FieldNEQ(FieldQuarterApp, v))
}

// QuarterAppIn applies the In predicate on the "quarter_app" field.
func QuarterAppIn(vs ...string) predicate.Template {
	return predicate.Template(sql.FieldIn(FieldQuarterApp, vs...))
}

// QuarterAppNotIn applies the NotIn predicate on the "quarter_app" field.
func QuarterAppNotIn(vs ...string) predicate.Template {
	return predicate.Template(sql.FieldNotIn(FieldQuarterApp, vs...))
}

// QuarterAppGT applies the GT predicate on the "quarter_app" field.
func QuarterAppGT(v string) predicate.Template {
	return predicate.Template(sql.FieldGT(FieldQuarterApp, v))
}

// QuarterAppGTE applies the GTE predicate on the "quarter_app" field.
func QuarterAppGTE(v string) predicate.Template {
	return predicate.Template(sql.FieldGTE(FieldQuarterApp, v))
}

// QuarterAppLT applies the LT predicate on the "quarter_app" field.
func QuarterAppLT(v string) predicate.Template {
	return predicate.Template(sql.FieldLT(FieldQuarterApp, v))
}

// QuarterAppLTE applies the LTE predicate on the "quarter_app" field.
func QuarterAppLTE(v string) predicate.Template {
	return predicate.Template(sql.FieldLTE(FieldQuarterApp, v))
}

// QuarterAppContains applies the Contains predicate on the "quarter_app" field.
func QuarterAppContains(v string) predicate.Template {
	return predicate.Template(sql.FieldContains(FieldQuarterApp, v))
}

// QuarterAppHasPrefix applies the HasPrefix predicate on the "quarter_app" field.
func QuarterAppHasPrefix(v string) predicate.Template {
	return predicate.Template(sql.FieldHasPrefix(FieldQuarterApp, v))
}

// QuarterAppHasSuffix applies the HasSuffix predicate on the "quarter_app" field.
func QuarterAppHasSuffix(v string) predicate.Template {
	return predicate.Template(sql.FieldHasSuffix(FieldQuarterApp, v))
}

// QuarterAppEqualFold applies the EqualFold predicate on the "quarter_app" field.
func QuarterAppEqualFold(v string) predicate.Template {
	return predicate.Template(sql.FieldEqualFold(FieldQuarterApp, v))
}

// QuarterAppContainsFold applies the ContainsFold predicate on the "quarter_app" field.
func QuarterAppContainsFold(v string) predicate.Template {
	return predicate.Template(sql.FieldContainsFold(FieldQuarterApp, v))
}

// DomainEQ applies the EQ predicate on the "domain" field.
func DomainEQ(v string) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldDomain, v))
}

// DomainNEQ applies the NEQ predicate on the "domain" field.
func DomainNEQ(v string) predicate.Template {
	return predicate.Template(sql.FieldNEQ(FieldDomain, v))
}

// DomainIn applies the In predicate on the "domain" field.
func DomainIn(vs ...string) predicate.Template {
	return predicate.Template(sql.FieldIn(FieldDomain, vs...))
}

// DomainNotIn applies the NotIn predicate on the "domain" field.
func DomainNotIn(vs ...string) predicate.Template {
	return predicate.Template(sql.FieldNotIn(FieldDomain, vs...))
}

// DomainGT applies the GT predicate on the "domain" field.
func DomainGT(v string) predicate.Template {
	return predicate.Template(sql.FieldGT(FieldDomain, v))
}

// DomainGTE applies the GTE predicate on the "domain" field.
func DomainGTE(v string) predicate.Template {
	return predicate.Template(sql.FieldGTE(FieldDomain, v))
}

// DomainLT applies the LT predicate on the "domain" field.
func DomainLT(v string) predicate.Template {
	return predicate.Template(sql.FieldLT(FieldDomain, v))
}

// DomainLTE applies the LTE predicate on the "domain" field.
func DomainLTE(v string) predicate.Template {
	return predicate.Template(sql.FieldLTE(FieldDomain, v))
}

// DomainContains applies the Contains predicate on the "domain" field.
func DomainContains(v string) predicate.Template {
	return predicate.Template(sql.FieldContains(FieldDomain, v))
}

// DomainHasPrefix applies the HasPrefix predicate on the "domain" field.
func DomainHasPrefix(v string) predicate.Template {
	return predicate.Template(sql.FieldHasPrefix(FieldDomain, v))
}

// DomainHasSuffix applies the HasSuffix predicate on the "domain" field.
func DomainHasSuffix(v string) predicate.Template {
	return predicate.Template(sql.FieldHasSuffix(FieldDomain, v))
}

// DomainEqualFold applies the EqualFold predicate on the "domain" field.
func DomainEqualFold(v string) predicate.Template {
	return predicate.Template(sql.FieldEqualFold(FieldDomain, v))
}

// DomainContainsFold applies the ContainsFold predicate on the "domain" field.
func DomainContainsFold(v string) predicate.Template {
	return predicate.Template(sql.FieldContainsFold(FieldDomain, v))
}

// SubcategoryEQ applies the EQ predicate on the "subcategory" field.
func SubcategoryEQ(v string) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldSubcategory, v))
}

// SubcategoryNEQ applies the NEQ predicate on the "subcategory" field.
func SubcategoryNEQ(v string) predicate.Template {
	return predicate.Template(sql.FieldNEQ(FieldSubcategory, v))
}

// SubcategoryIn applies the In predicate on the "subcategory" field.
func SubcategoryIn(vs ...string) predicate.Template {
	return predicate.Template(sql.FieldIn(FieldSubcategory, vs...))
}

// SubcategoryNotIn applies the NotIn predicate on the "subcategory" field.
func SubcategoryNotIn(vs ...string) predicate.Template {
	return predicate.Template(sql.FieldNotIn(FieldSubcategory, vs...))
}

// SubcategoryGT applies the GT predicate on the "subcategory" field.
func SubcategoryGT(v string) predicate.Template {
	return predicate.Template(sql.FieldGT(FieldSubcategory, v))
}

// SubcategoryGTE applies the GTE predicate on the "subcategory" field.
func SubcategoryGTE(v string) predicate.Template {
	return predicate.Template(sql.FieldGTE(FieldSubcategory, v))
}

// SubcategoryLT applies the LT predicate on the "subcategory" field.
func SubcategoryLT(v string) predicate.Template {
	return predicate.Template(sql.FieldLT(FieldSubcategory, v))
}

// SubcategoryLTE applies the LTE predicate on the "subcategory" field.
func SubcategoryLTE(v string) predicate.Template {
	return predicate.Template(sql.FieldLTE(FieldSubcategory, v))
}

// SubcategoryContains applies the Contains predicate on the "subcategory" field.
func SubcategoryContains(v string) predicate.Template {
	return predicate.Template(sql.FieldContains(FieldSubcategory, v))
}

// SubcategoryHasPrefix applies the HasPrefix predicate on the "subcategory" field.
func SubcategoryHasPrefix(v string) predicate.Template {
	return predicate.Template(sql.FieldHasPrefix(FieldSubcategory, v))
}

// SubcategoryHasSuffix applies the HasSuffix predicate on the "subcategory" field.
func SubcategoryHasSuffix(v string) predicate.Template {
	return predicate.Template(sql.FieldHasSuffix(FieldSubcategory, v))
}

// SubcategoryEqualFold applies the EqualFold predicate on the "subcategory" field.
func SubcategoryEqualFold(v string) predicate.Template {
	return predicate.Template(sql.FieldEqualFold(FieldSubcategory, v))
}

// SubcategoryContainsFold applies the ContainsFold predicate on the "subcategory" field.
func SubcategoryContainsFold(v string) predicate.Template {
	return predicate.Template(sql.FieldContainsFold(FieldSubcategory, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.Template {
	return predicate.Template(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.Template {
	return predicate.Template(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.Template {
	return predicate.Template(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.Template {
	return predicate.Template(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.Template {
	return predicate.Template(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.Template {
	return predicate.Template(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.Template {
	return predicate.Template(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.Template {
	return predicate.Template(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.Template {
	return predicate.Template(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.Template {
	return predicate.Template(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.Template {
	return predicate.Template(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.Template {
	return predicate.Template(sql.FieldContainsFold(FieldDifficulty, v))
}

// QuestionTypeEQ applies the EQ predicate on the "question_type" field.
func QuestionTypeEQ(v string) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldQuestionType, v))
}

// QuestionTypeNEQ applies the NEQ predicate on the "question_type" field.
func QuestionTypeNEQ(v string) predicate.Template {
	return predicate.Template(sql.FieldNEQ(FieldQuestionType, v))
}

// QuestionTypeIn applies the In predicate on the "question_type" field.
func QuestionTypeIn(vs ...string) predicate.Template {
	return predicate.Template(sql.FieldIn(FieldQuestionType, vs...))
}

// QuestionTypeNotIn applies the NotIn predicate on the "question_type" field.
func QuestionTypeNotIn(vs ...string) predicate.Template {
	return predicate.Template(sql.FieldNotIn(FieldQuestionType, vs...))
}

// QuestionTypeGT applies the GT predicate on the "question_type" field.
func QuestionTypeGT(v string) predicate.Template {
	return predicate.Template(sql.FieldGT(FieldQuestionType, v))
}

// QuestionTypeGTE applies the GTE predicate on the "question_type" field.
func QuestionTypeGTE(v string) predicate.Template {
	return predicate.Template(sql.FieldGTE(FieldQuestionType, v))
}

// QuestionTypeLT applies the LT predicate on the "question_type" field.
func QuestionTypeLT(v string) predicate.Template {
	return predicate.Template(sql.FieldLT(FieldQuestionType, v))
}

// QuestionTypeLTE applies the LTE predicate on the "question_type" field.
func QuestionTypeLTE(v string) predicate.Template {
	return predicate.Template(sql.FieldLTE(FieldQuestionType, v))
}

// QuestionTypeContains applies the Contains predicate on the "question_type" field.
func QuestionTypeContains(v string) predicate.Template {
	return predicate.Template(sql.FieldContains(FieldQuestionType, v))
}

// QuestionTypeHasPrefix applies the HasPrefix predicate on the "question_type" field.
func QuestionTypeHasPrefix(v string) predicate.Template {
	return predicate.Template(sql.FieldHasPrefix(FieldQuestionType, v))
}

// QuestionTypeHasSuffix applies the HasSuffix predicate on the "question_type" field.
func QuestionTypeHasSuffix(v string) predicate.Template {
	return predicate.Template(sql.FieldHasSuffix(FieldQuestionType, v))
}

// QuestionTypeEqualFold applies the EqualFold predicate on the "question_type" field.
func QuestionTypeEqualFold(v string) predicate.Template {
	return predicate.Template(sql.FieldEqualFold(FieldQuestionType, v))
}

// QuestionTypeContainsFold applies the ContainsFold predicate on the "question_type" field.
func QuestionTypeContainsFold(v string) predicate.Template {
	return predicate.Template(sql.FieldContainsFold(FieldQuestionType, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.Template {
	return predicate.Template(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.Template {
	return predicate.Template(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.Template {
	return predicate.Template(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.Template {
	return predicate.Template(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.Template {
	return predicate.Template(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.Template {
	return predicate.Template(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.Template {
	return predicate.Template(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.Template {
	return predicate.Template(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.Template {
	return predicate.Template(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.Template {
	return predicate.Template(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.Template {
	return predicate.Template(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.Template {
	return predicate.Template(sql.FieldContainsFold(FieldPrompt, v))
}

// SolutionEQ applies the EQ predicate on the "solution" field.
func SolutionEQ(v string) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldSolution, v))
}

// SolutionNEQ applies the NEQ predicate on the "solution" field.
func SolutionNEQ(v string) predicate.Template {
	return predicate.Template(sql.FieldNEQ(FieldSolution, v))
}

// SolutionIn applies the In predicate on the "solution" field.
func SolutionIn(vs ...string) predicate.Template {
	return predicate.Template(sql.FieldIn(FieldSolution, vs...))
}

// SolutionNotIn applies the NotIn predicate on the "solution" field.
func SolutionNotIn(vs ...string) predicate.Template {
	return predicate.Template(sql.FieldNotIn(FieldSolution, vs...))
}

// SolutionGT applies the GT predicate on the "solution" field.
func SolutionGT(v string) predicate.Template {
	return predicate.Template(sql.FieldGT(FieldSolution, v))
}

// SolutionGTE applies the GTE predicate on the "solution" field.
func SolutionGTE(v string) predicate.Template {
	return predicate.Template(sql.FieldGTE(FieldSolution, v))
}

// SolutionLT applies the LT predicate on the "solution" field.
func SolutionLT(v string) predicate.Template {
	return predicate.Template(sql.FieldLT(FieldSolution, v))
}

// SolutionLTE applies the LTE predicate on the "solution" field.
func SolutionLTE(v string) predicate.Template {
	return predicate.Template(sql.FieldLTE(FieldSolution, v))
}

// SolutionContains applies the Contains predicate on the "solution" field.
func SolutionContains(v string) predicate.Template {
	return predicate.Template(sql.FieldContains(FieldSolution, v))
}

// SolutionHasPrefix applies the HasPrefix predicate on the "solution" field.
func SolutionHasPrefix(v string) predicate.Template {
	return predicate.Template(sql.FieldHasPrefix(FieldSolution, v))
}

// SolutionHasSuffix applies the HasSuffix predicate on the "solution" field.
func SolutionHasSuffix(v string) predicate.Template {
	return predicate.Template(sql.FieldHasSuffix(FieldSolution, v))
}

// SolutionEqualFold applies the EqualFold predicate on the "solution" field.
func SolutionEqualFold(v string) predicate.Template {
	return predicate.Template(sql.FieldEqualFold(FieldSolution, v))
}

// SolutionContainsFold applies the ContainsFold predicate on the "solution" field.
func SolutionContainsFold(v string) predicate.Template {
	return predicate.Template(sql.FieldContainsFold(FieldSolution, v))
}

// DistractorsIsNil applies the IsNil predicate on the "distractors" field.
func DistractorsIsNil() predicate.Template {
	return predicate.Template(sql.FieldIsNull(FieldDistractors))
}

// DistractorsNotNil applies the NotNil predicate on the "distractors" field.
func DistractorsNotNil() predicate.Template {
	return predicate.Template(sql.FieldNotNull(FieldDistractors))
}

// QualityScoreEQ applies the EQ predicate on the "quality_score" field.
func QualityScoreEQ(v float64) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldQualityScore, v))
}

// QualityScoreNEQ applies the NEQ predicate on the "quality_score" field.
func QualityScoreNEQ(v float64) predicate.Template {
	return predicate.Template(sql.FieldNEQ(FieldQualityScore, v))
}

// QualityScoreIn applies the In predicate on the "quality_score" field.
func QualityScoreIn(vs ...float64) predicate.Template {
	return predicate.Template(sql.FieldIn(FieldQualityScore, vs...))
}

// QualityScoreNotIn applies the NotIn predicate on the "quality_score" field.
func QualityScoreNotIn(vs ...float64) predicate.Template {
	return predicate.Template(sql.FieldNotIn(FieldQualityScore, vs...))
}

// QualityScoreGT applies the GT predicate on the "quality_score" field.
func QualityScoreGT(v float64) predicate.Template {
	return predicate.Template(sql.FieldGT(FieldQualityScore, v))
}

// QualityScoreGTE applies the GTE predicate on the "quality_score" field.
func QualityScoreGTE(v float64) predicate.Template {
	return predicate.Template(sql.FieldGTE(FieldQualityScore, v))
}

// QualityScoreLT applies the LT predicate on the "quality_score" field.
func QualityScoreLT(v float64) predicate.Template {
	return predicate.Template(sql.FieldLT(FieldQualityScore, v))
}

// QualityScoreLTE applies the LTE predicate on the "quality_score" field.
func QualityScoreLTE(v float64) predicate.Template {
	return predicate.Template(sql.FieldLTE(FieldQualityScore, v))
}

// PlaysEQ applies the EQ predicate on the "plays" field.
func PlaysEQ(v int) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldPlays, v))
}

// PlaysNEQ applies the NEQ predicate on the "plays" field.
func PlaysNEQ(v int) predicate.Template {
	return predicate.Template(sql.FieldNEQ(FieldPlays, v))
}

// PlaysIn applies the In predicate on the "plays" field.
func PlaysIn(vs ...int) predicate.Template {
	return predicate.Template(sql.FieldIn(FieldPlays, vs...))
}

// PlaysNotIn applies the NotIn predicate on the "plays" field.
func PlaysNotIn(vs ...int) predicate.Template {
	return predicate.Template(sql.FieldNotIn(FieldPlays, vs...))
}

// PlaysGT applies the GT predicate on the "plays" field.
func PlaysGT(v int) predicate.Template {
	return predicate.Template(sql.FieldGT(FieldPlays, v))
}

// PlaysGTE applies the GTE predicate on the "plays" field.
func PlaysGTE(v int) predicate.Template {
	return predicate.Template(sql.FieldGTE(FieldPlays, v))
}

// PlaysLT applies the LT predicate on the "plays" field.
func PlaysLT(v int) predicate.Template {
	return predicate.Template(sql.FieldLT(FieldPlays, v))
}

// PlaysLTE applies the LTE predicate on the "plays" field.
func PlaysLTE(v int) predicate.Template {
	return predicate.Template(sql.FieldLTE(FieldPlays, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v int) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v int) predicate.Template {
	return predicate.Template(sql.FieldNEQ(FieldCorrect, v))
}

// CorrectIn applies the In predicate on the "correct" field.
func CorrectIn(vs ...int) predicate.Template {
	return predicate.Template(sql.FieldIn(FieldCorrect, vs...))
}

// CorrectNotIn applies the NotIn predicate on the "correct" field.
func CorrectNotIn(vs ...int) predicate.Template {
	return predicate.Template(sql.FieldNotIn(FieldCorrect, vs...))
}

// CorrectGT applies the GT predicate on the "correct" field.
func CorrectGT(v int) predicate.Template {
	return predicate.Template(sql.FieldGT(FieldCorrect, v))
}

// CorrectGTE applies the GTE predicate on the "correct" field.
func CorrectGTE(v int) predicate.Template {
	return predicate.Template(sql.FieldGTE(FieldCorrect, v))
}

// CorrectLT applies the LT predicate on the "correct" field.
func CorrectLT(v int) predicate.Template {
	return predicate.Template(sql.FieldLT(FieldCorrect, v))
}

// CorrectLTE applies the LTE predicate on the "correct" field.
func CorrectLTE(v int) predicate.Template {
	return predicate.Template(sql.FieldLTE(FieldCorrect, v))
}

// RatingSumEQ applies the EQ predicate on the "rating_sum" field.
func RatingSumEQ(v int) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldRatingSum, v))
}

// RatingSumNEQ applies the NEQ predicate on the "rating_sum" field.
func RatingSumNEQ(v int) predicate.Template {
	return predicate.Template(sql.FieldNEQ(FieldRatingSum, v))
}

// RatingSumIn applies the In predicate on the "rating_sum" field.
func RatingSumIn(vs ...int) predicate.Template {
	return predicate.Template(sql.FieldIn(FieldRatingSum, vs...))
}

// RatingSumNotIn applies the NotIn predicate on the "rating_sum" field.
func RatingSumNotIn(vs ...int) predicate.Template {
	return predicate.Template(sql.FieldNotIn(FieldRatingSum, vs...))
}

// RatingSumGT applies the GT predicate on the "rating_sum" field.
func RatingSumGT(v int) predicate.Template {
	return predicate.Template(sql.FieldGT(FieldRatingSum, v))
}

// RatingSumGTE applies the GTE predicate on the "rating_sum" field.
func RatingSumGTE(v int) predicate.Template {
	return predicate.Template(sql.FieldGTE(FieldRatingSum, v))
}

// RatingSumLT applies the LT predicate on the "rating_sum" field.
func RatingSumLT(v int) predicate.Template {
	return predicate.Template(sql.FieldLT(FieldRatingSum, v))
}

// RatingSumLTE applies the LTE predicate on the "rating_sum" field.
func RatingSumLTE(v int) predicate.Template {
	return predicate.Template(sql.FieldLTE(FieldRatingSum, v))
}

// RatingCountEQ applies the EQ predicate on the "rating_count" field.
func RatingCountEQ(v int) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldRatingCount, v))
}

// RatingCountNEQ applies the NEQ predicate on the "rating_count" field.
func RatingCountNEQ(v int) predicate.Template {
	return predicate.Template(sql.FieldNEQ(FieldRatingCount, v))
}

// RatingCountIn applies the In predicate on the "rating_count" field.
func RatingCountIn(vs ...int) predicate.Template {
	return predicate.Template(sql.FieldIn(FieldRatingCount, vs...))
}

// RatingCountNotIn applies the NotIn predicate on the "rating_count" field.
func RatingCountNotIn(vs ...int) predicate.Template {
	return predicate.Template(sql.FieldNotIn(FieldRatingCount, vs...))
}

// RatingCountGT applies the GT predicate on the "rating_count" field.
func RatingCountGT(v int) predicate.Template {
	return predicate.Template(sql.FieldGT(FieldRatingCount, v))
}

// RatingCountGTE applies the GTE predicate on the "rating_count" field.
func RatingCountGTE(v int) predicate.Template {
	return predicate.Template(sql.FieldGTE(FieldRatingCount, v))
}

// RatingCountLT applies the LT predicate on the "rating_count" field.
func RatingCountLT(v int) predicate.Template {
	return predicate.Template(sql.FieldLT(FieldRatingCount, v))
}

// RatingCountLTE applies the LTE predicate on the "rating_count" field.
func RatingCountLTE(v int) predicate.Template {
	return predicate.Template(sql.FieldLTE(FieldRatingCount, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Template {
	return predicate.Template(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Template {
	return predicate.Template(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Template {
	return predicate.Template(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Template {
	return predicate.Template(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Template {
	return predicate.Template(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Template {
	return predicate.Template(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Template {
	return predicate.Template(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Template {
	return predicate.Template(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Template {
	return predicate.Template(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Template {
	return predicate.Template(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Template {
	return predicate.Template(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Template {
	return predicate.Template(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Template {
	return predicate.Template(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Template {
	return predicate.Template(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Template {
	return predicate.Template(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Template {
	return predicate.Template(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Template {
	return predicate.Template(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Template {
	return predicate.Template(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Template {
	return predicate.Template(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Template {
	return predicate.Template(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Template) predicate.Template {
	return predicate.Template(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Template) predicate.Template {
	return predicate.Template(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Template) predicate.Template {
	return predicate.Template(sql.NotPredicates(p))
}
