// Code generated by ent, DO NOT EDIT.

package contexthistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the contexthistory type in the database.
	Label = "context_history"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldScenarioFamilyID holds the string denoting the scenario_family_id field in the database.
	FieldScenarioFamilyID = "scenario_family_id"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldGrade holds the string denoting the grade field in the database.
	FieldGrade = "grade"
	// FieldCombination holds the string denoting the combination field in the database.
	FieldCombination = "combination"
	// FieldCombinationHash holds the string denoting the combination_hash field in the database.
	FieldCombinationHash = "combination_hash"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the contexthistory in the database.
	Table = "context_histories"
)

// Columns holds all SQL columns for contexthistory fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldScenarioFamilyID,
	FieldCategory,
	FieldGrade,
	FieldCombination,
	FieldCombinationHash,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	GradeValidator func(int) error
	// CombinationHashValidator is a validator for the "combination_hash" field. It is called by the builders before save.
	CombinationHashValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ContextHistory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByScenarioFamilyID orders the results by the scenario_family_id field.
func ByScenarioFamilyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScenarioFamilyID, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByGrade orders the results by the grade field.
func ByGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrade, opts...).ToFunc()
}

// ByCombinationHash orders the results by the combination_hash field.
func ByCombinationHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCombinationHash, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
