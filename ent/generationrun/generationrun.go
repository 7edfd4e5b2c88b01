// Code generated by ent, DO NOT EDIT.

package generationrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the generationrun type in the database.
	Label = "generation_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldGapsTargeted holds the string denoting the gaps_targeted field in the database.
	FieldGapsTargeted = "gaps_targeted"
	// FieldGenerated holds the string denoting the generated field in the database.
	FieldGenerated = "generated"
	// FieldRejected holds the string denoting the rejected field in the database.
	FieldRejected = "rejected"
	// FieldFailed holds the string denoting the failed field in the database.
	FieldFailed = "failed"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// Table holds the table name of the generationrun in the database.
	Table = "generation_runs"
)

// Columns holds all SQL columns for generationrun fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldGapsTargeted,
	FieldGenerated,
	FieldRejected,
	FieldFailed,
	FieldStartedAt,
	FieldFinishedAt,
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
	// RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	RunIDValidator func(string) error
	// DefaultGapsTargeted holds the default value on creation for the "gaps_targeted" field.
	DefaultGapsTargeted int
	// DefaultGenerated holds the default value on creation for the "generated" field.
	DefaultGenerated int
	// DefaultRejected holds the default value on creation for the "rejected" field.
	DefaultRejected int
	// DefaultFailed holds the default value on creation for the "failed" field.
	DefaultFailed int
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// OrderOption defines the ordering options for the GenerationRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByGapsTargeted orders the results by the gaps_targeted field.
func ByGapsTargeted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGapsTargeted, opts...).ToFunc()
}

// ByGenerated orders the results by the generated field.
func ByGenerated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenerated, opts...).ToFunc()
}

// ByRejected orders the results by the rejected field.
func ByRejected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRejected, opts...).ToFunc()
}

// ByFailed orders the results by the failed field.
func ByFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailed, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}
