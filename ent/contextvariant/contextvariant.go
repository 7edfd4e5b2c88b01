// Code generated by ent, DO NOT EDIT.

package contextvariant

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the contextvariant type in the database.
	Label = "context_variant"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldScenarioFamilyID holds the string denoting the scenario_family_id field in the database.
	FieldScenarioFamilyID = "scenario_family_id"
	// FieldDimensionType holds the string denoting the dimension_type field in the database.
	FieldDimensionType = "dimension_type"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// FieldSemanticCluster holds the string denoting the semantic_cluster field in the database.
	FieldSemanticCluster = "semantic_cluster"
	// FieldUsageCount holds the string denoting the usage_count field in the database.
	FieldUsageCount = "usage_count"
	// FieldQualityScore holds the string denoting the quality_score field in the database.
	FieldQualityScore = "quality_score"
	// Table holds the table name of the contextvariant in the database.
	Table = "context_variants"
)

// Columns holds all SQL columns for contextvariant fields.
var Columns = []string{
	FieldID,
	FieldScenarioFamilyID,
	FieldDimensionType,
	FieldValue,
	FieldSemanticCluster,
	FieldUsageCount,
	FieldQualityScore,
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
	// DimensionTypeValidator is a validator for the "dimension_type" field. It is called by the builders before save.
	DimensionTypeValidator func(string) error
	// ValueValidator is a validator for the "value" field. It is called by the builders before save.
	ValueValidator func(string) error
	// DefaultUsageCount holds the default value on creation for the "usage_count" field.
	DefaultUsageCount int
	// UsageCountValidator is a validator for the "usage_count" field. It is called by the builders before save.
	UsageCountValidator func(int) error
	// DefaultQualityScore holds the default value on creation for the "quality_score" field.
	DefaultQualityScore float64
	// QualityScoreValidator is a validator for the "quality_score" field. It is called by the builders before save.
	QualityScoreValidator func(float64) error
)

// OrderOption defines the ordering options for the ContextVariant queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByScenarioFamilyID orders the results by the scenario_family_id field.
func ByScenarioFamilyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScenarioFamilyID, opts...).ToFunc()
}

// ByDimensionType orders the results by the dimension_type field.
func ByDimensionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDimensionType, opts...).ToFunc()
}

// ByValue orders the results by the value field.
func ByValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValue, opts...).ToFunc()
}

// BySemanticCluster orders the results by the semantic_cluster field.
func BySemanticCluster(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSemanticCluster, opts...).ToFunc()
}

// ByUsageCount orders the results by the usage_count field.
func ByUsageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsageCount, opts...).ToFunc()
}

// ByQualityScore orders the results by the quality_score field.
func ByQualityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualityScore, opts...).ToFunc()
}
