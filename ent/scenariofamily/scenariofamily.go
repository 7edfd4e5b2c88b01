// Code generated by ent, DO NOT EDIT.

package scenariofamily

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the scenariofamily type in the database.
	Label = "scenario_family"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldGradeMin holds the string denoting the grade_min field in the database.
	FieldGradeMin = "grade_min"
	// FieldGradeMax holds the string denoting the grade_max field in the database.
	FieldGradeMax = "grade_max"
	// FieldBaseTemplate holds the string denoting the base_template field in the database.
	FieldBaseTemplate = "base_template"
	// FieldContextSlots holds the string denoting the context_slots field in the database.
	FieldContextSlots = "context_slots"
	// FieldDifficultyLevel holds the string denoting the difficulty_level field in the database.
	FieldDifficultyLevel = "difficulty_level"
	// Table holds the table name of the scenariofamily in the database.
	Table = "scenario_families"
)

// Columns holds all SQL columns for scenariofamily fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldCategory,
	FieldGradeMin,
	FieldGradeMax,
	FieldBaseTemplate,
	FieldContextSlots,
	FieldDifficultyLevel,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// GradeMinValidator is a validator for the "grade_min" field. It is called by the builders before save.
	GradeMinValidator func(int) error
	// GradeMaxValidator is a validator for the "grade_max" field. It is called by the builders before save.
	GradeMaxValidator func(int) error
	// BaseTemplateValidator is a validator for the "base_template" field. It is called by the builders before save.
	BaseTemplateValidator func(string) error
	// DefaultDifficultyLevel holds the default value on creation for the "difficulty_level" field.
	DefaultDifficultyLevel int
	// DifficultyLevelValidator is a validator for the "difficulty_level" field. It is called by the builders before save.
	DifficultyLevelValidator func(int) error
)

// OrderOption defines the ordering options for the ScenarioFamily queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByGradeMin orders the results by the grade_min field.
func ByGradeMin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGradeMin, opts...).ToFunc()
}

// ByGradeMax orders the results by the grade_max field.
func ByGradeMax(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGradeMax, opts...).ToFunc()
}

// ByBaseTemplate orders the results by the base_template field.
func ByBaseTemplate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaseTemplate, opts...).ToFunc()
}

// ByDifficultyLevel orders the results by the difficulty_level field.
func ByDifficultyLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultyLevel, opts...).ToFunc()
}
