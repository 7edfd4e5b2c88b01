// Code generated by ent, DO NOT EDIT.

package template

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the template type in the database.
	Label = "template"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldGrade holds the string denoting the grade field in the database.
	FieldGrade = "grade"
	// FieldGradeApp holds the string denoting the grade_app field in the database.
	FieldGradeApp = "grade_app"
	// FieldQuarterApp holds the string denoting the quarter_app field in the database.
	FieldQuarterApp = "quarter_app"
	// FieldDomain holds the string denoting the domain field in the database.
	FieldDomain = "domain"
	// FieldSubcategory holds the string denoting the subcategory field in the database.
	FieldSubcategory = "subcategory"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldQuestionType holds the string denoting the question_type field in the database.
	FieldQuestionType = "question_type"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldSolution holds the string denoting the solution field in the database.
	FieldSolution = "solution"
	// FieldDistractors holds the string denoting the distractors field in the database.
	FieldDistractors = "distractors"
	// FieldQualityScore holds the string denoting the quality_score field in the database.
	FieldQualityScore = "quality_score"
	// FieldPlays holds the string denoting the plays field in the database.
	FieldPlays = "plays"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldRatingSum holds the string denoting the rating_sum field in the database.
	FieldRatingSum = "rating_sum"
	// FieldRatingCount holds the string denoting the rating_count field in the database.
	FieldRatingCount = "rating_count"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the template in the database.
	Table = "templates"
)

// Columns holds all SQL columns for template fields.
var Columns = []string{
	FieldID,
	FieldGrade,
	FieldGradeApp,
	FieldQuarterApp,
	FieldDomain,
	FieldSubcategory,
	FieldDifficulty,
	FieldQuestionType,
	FieldPrompt,
	FieldSolution,
	FieldDistractors,
	FieldQualityScore,
	FieldPlays,
	FieldCorrect,
	FieldRatingSum,
	FieldRatingCount,
	FieldStatus,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	GradeValidator func(int) error
	// GradeAppValidator is a validator for the "grade_app" field. It is called by the builders before save.
	GradeAppValidator func(int) error
	// QuarterAppValidator is a validator for the "quarter_app" field. It is called by the builders before save.
	QuarterAppValidator func(string) error
	// DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	DomainValidator func(string) error
	// SubcategoryValidator is a validator for the "subcategory" field. It is called by the builders before save.
	SubcategoryValidator func(string) error
	// DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	DifficultyValidator func(string) error
	// QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	QuestionTypeValidator func(string) error
	// PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	PromptValidator func(string) error
	// SolutionValidator is a validator for the "solution" field. It is called by the builders before save.
	SolutionValidator func(string) error
	// DefaultQualityScore holds the default value on creation for the "quality_score" field.
	DefaultQualityScore float64
	// QualityScoreValidator is a validator for the "quality_score" field. It is called by the builders before save.
	QualityScoreValidator func(float64) error
	// DefaultPlays holds the default value on creation for the "plays" field.
	DefaultPlays int
	// PlaysValidator is a validator for the "plays" field. It is called by the builders before save.
	PlaysValidator func(int) error
	// DefaultCorrect holds the default value on creation for the "correct" field.
	DefaultCorrect int
	// CorrectValidator is a validator for the "correct" field. It is called by the builders before save.
	CorrectValidator func(int) error
	// DefaultRatingSum holds the default value on creation for the "rating_sum" field.
	DefaultRatingSum int
	// DefaultRatingCount holds the default value on creation for the "rating_count" field.
	DefaultRatingCount int
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Template queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByGrade orders the results by the grade field.
func ByGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrade, opts...).ToFunc()
}

// ByGradeApp orders the results by the grade_app field.
func ByGradeApp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGradeApp, opts...).ToFunc()
}

// ByQuarterApp orders the results by the quarter_app field.
func ByQuarterApp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuarterApp, opts...).ToFunc()
}

// ByDomain orders the results by the domain field.
func ByDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomain, opts...).ToFunc()
}

// BySubcategory orders the results by the subcategory field.
func BySubcategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubcategory, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByQuestionType orders the results by the question_type field.
func ByQuestionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionType, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// BySolution orders the results by the solution field.
func BySolution(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSolution, opts...).ToFunc()
}

// ByQualityScore orders the results by the quality_score field.
func ByQualityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualityScore, opts...).ToFunc()
}

// ByPlays orders the results by the plays field.
func ByPlays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlays, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByRatingSum orders the results by the rating_sum field.
func ByRatingSum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRatingSum, opts...).ToFunc()
}

// ByRatingCount orders the results by the rating_count field.
func ByRatingCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRatingCount, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
