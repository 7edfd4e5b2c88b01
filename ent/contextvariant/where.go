// Code generated by ent, DO NOT EDIT.

package contextvariant

import (
	"entgo.io/ent/dialect/sql"
	"github.com/lernzeit/lernzeit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldLTE(FieldID, id))
}

// ScenarioFamilyID applies equality check predicate on the "scenario_family_id" field. It's identical to ScenarioFamilyIDEQ.
func ScenarioFamilyID(v int) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldEQ(FieldScenarioFamilyID, v))
}

// DimensionType applies equality check predicate on the "dimension_type" field. It's identical to DimensionTypeEQ.
func DimensionType(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldEQ(FieldDimensionType, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldEQ(FieldValue, v))
}

// SemanticCluster applies equality check predicate on the "semantic_cluster" field. It's identical to SemanticClusterEQ.
func SemanticCluster(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldEQ(FieldSemanticCluster, v))
}

// UsageCount applies equality check predicate on the "usage_count" field. It's identical to UsageCountEQ.
func UsageCount(v int) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldEQ(FieldUsageCount, v))
}

// QualityScore applies equality check predicate on the "quality_score" field. It's identical to QualityScoreEQ.
func QualityScore(v float64) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldEQ(FieldQualityScore, v))
}

// ScenarioFamilyIDEQ applies the EQ predicate on the "scenario_family_id" field.
func ScenarioFamilyIDEQ(v int) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldEQ(FieldScenarioFamilyID, v))
}

// ScenarioFamilyIDNEQ applies the NEQ predicate on the "scenario_family_id" field.
func ScenarioFamilyIDNEQ(v int) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldNEQ(FieldScenarioFamilyID, v))
}

// ScenarioFamilyIDIn applies the In predicate on the "scenario_family_id" field.
func ScenarioFamilyIDIn(vs ...int) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldIn(FieldScenarioFamilyID, vs...))
}

// ScenarioFamilyIDNotIn applies the NotIn predicate on the "scenario_family_id" field.
func ScenarioFamilyIDNotIn(vs ...int) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldNotIn(FieldScenarioFamilyID, vs...))
}

// ScenarioFamilyIDGT applies the GT predicate on the "scenario_family_id" field.
func ScenarioFamilyIDGT(v int) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldGT(FieldScenarioFamilyID, v))
}

// ScenarioFamilyIDGTE applies the GTE predicate on the "scenario_family_id" field.
func ScenarioFamilyIDGTE(v int) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldGTE(FieldScenarioFamilyID, v))
}

// ScenarioFamilyIDLT applies the LT predicate on the "scenario_family_id" field.
func ScenarioFamilyIDLT(v int) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldLT(FieldScenarioFamilyID, v))
}

// ScenarioFamilyIDLTE applies the LTE predicate on the "scenario_family_id" field.
func ScenarioFamilyIDLTE(v int) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldLTE(FieldScenarioFamilyID, v))
}

// DimensionTypeEQ applies the EQ predicate on the "dimension_type" field.
func DimensionTypeEQ(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldEQ(FieldDimensionType, v))
}

// DimensionTypeNEQ applies the NEQ predicate on the "dimension_type" field.
func DimensionTypeNEQ(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldNEQ(FieldDimensionType, v))
}

// DimensionTypeIn applies the In predicate on the "dimension_type" field.
func DimensionTypeIn(vs ...string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldIn(FieldDimensionType, vs...))
}

// DimensionTypeNotIn applies the NotIn predicate on the "dimension_type" field.
func DimensionTypeNotIn(vs ...string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldNotIn(FieldDimensionType, vs...))
}

// DimensionTypeGT applies the GT predicate on the "dimension_type" field.
func DimensionTypeGT(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldGT(FieldDimensionType, v))
}

// DimensionTypeGTE applies the GTE predicate on the "dimension_type" field.
func DimensionTypeGTE(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldGTE(FieldDimensionType, v))
}

// DimensionTypeLT applies the LT predicate on the "dimension_type" field.
func DimensionTypeLT(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldLT(FieldDimensionType, v))
}

// DimensionTypeLTE applies the LTE predicate on the "dimension_type" field.
func DimensionTypeLTE(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldLTE(FieldDimensionType, v))
}

// DimensionTypeContains applies the Contains predicate on the "dimension_type" field.
func DimensionTypeContains(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldContains(FieldDimensionType, v))
}

// DimensionTypeHasPrefix applies the HasPrefix predicate on the "dimension_type" field.
func DimensionTypeHasPrefix(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldHasPrefix(FieldDimensionType, v))
}

// DimensionTypeHasSuffix applies the HasSuffix predicate on the "dimension_type" field.
func DimensionTypeHasSuffix(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldHasSuffix(FieldDimensionType, v))
}

// DimensionTypeEqualFold applies the EqualFold predicate on the "dimension_type" field.
func DimensionTypeEqualFold(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldEqualFold(FieldDimensionType, v))
}

// DimensionTypeContainsFold applies the ContainsFold predicate on the "dimension_type" field.
func DimensionTypeContainsFold(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldContainsFold(FieldDimensionType, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldLTE(FieldValue, v))
}

// ValueContains applies the Contains predicate on the "value" field.
func ValueContains(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldContains(FieldValue, v))
}

// ValueHasPrefix applies the HasPrefix predicate on the "value" field.
func ValueHasPrefix(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldHasPrefix(FieldValue, v))
}

// ValueHasSuffix applies the HasSuffix predicate on the "value" field.
func ValueHasSuffix(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldHasSuffix(FieldValue, v))
}

// ValueEqualFold applies the EqualFold predicate on the "value" field.
func ValueEqualFold(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldEqualFold(FieldValue, v))
}

// ValueContainsFold applies the ContainsFold predicate on the "value" field.
func ValueContainsFold(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldContainsFold(FieldValue, v))
}

// SemanticClusterEQ applies the EQ predicate on the "semantic_cluster" field.
func SemanticClusterEQ(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldEQ(FieldSemanticCluster, v))
}

// SemanticClusterNEQ applies the NEQ predicate on the "semantic_cluster" field.
func SemanticClusterNEQ(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldNEQ(FieldSemanticCluster, v))
}

// SemanticClusterIn applies the In predicate on the "semantic_cluster" field.
func SemanticClusterIn(vs ...string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldIn(FieldSemanticCluster, vs...))
}

// SemanticClusterNotIn applies the NotIn predicate on the "semantic_cluster" field.
func SemanticClusterNotIn(vs ...string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldNotIn(FieldSemanticCluster, vs...))
}

// SemanticClusterGT applies the GT predicate on the "semantic_cluster" field.
func SemanticClusterGT(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldGT(FieldSemanticCluster, v))
}

// SemanticClusterGTE applies the GTE predicate on the "semantic_cluster" field.
func SemanticClusterGTE(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldGTE(FieldSemanticCluster, v))
}

// SemanticClusterLT applies the LT predicate on the "semantic_cluster" field.
func SemanticClusterLT(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldLT(FieldSemanticCluster, v))
}

// SemanticClusterLTE applies the LTE predicate on the "semantic_cluster" field.
func SemanticClusterLTE(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldLTE(FieldSemanticCluster, v))
}

// SemanticClusterContains applies the Contains predicate on the "semantic_cluster" field.
func SemanticClusterContains(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldContains(FieldSemanticCluster, v))
}

// SemanticClusterHasPrefix applies the HasPrefix predicate on the "semantic_cluster" field.
func SemanticClusterHasPrefix(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldHasPrefix(FieldSemanticCluster, v))
}

// SemanticClusterHasSuffix applies the HasSuffix predicate on the "semantic_cluster" field.
func SemanticClusterHasSuffix(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldHasSuffix(FieldSemanticCluster, v))
}

// SemanticClusterIsNil applies the IsNil predicate on the "semantic_cluster" field.
func SemanticClusterIsNil() predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldIsNull(FieldSemanticCluster))
}

// SemanticClusterNotNil applies the NotNil predicate on the "semantic_cluster" field.
func SemanticClusterNotNil() predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldNotNull(FieldSemanticCluster))
}

// SemanticClusterEqualFold applies the EqualFold predicate on the "semantic_cluster" field.
func SemanticClusterEqualFold(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldEqualFold(FieldSemanticCluster, v))
}

// SemanticClusterContainsFold applies the ContainsFold predicate on the "semantic_cluster" field.
func SemanticClusterContainsFold(v string) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldContainsFold(FieldSemanticCluster, v))
}

// UsageCountEQ applies the EQ predicate on the "usage_count" field.
func UsageCountEQ(v int) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldEQ(FieldUsageCount, v))
}

// UsageCountNEQ applies the NEQ predicate on the "usage_count" field.
func UsageCountNEQ(v int) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldNEQ(FieldUsageCount, v))
}

// UsageCountIn applies the In predicate on the "usage_count" field.
func UsageCountIn(vs ...int) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldIn(FieldUsageCount, vs...))
}

// UsageCountNotIn applies the NotIn predicate on the "usage_count" field.
func UsageCountNotIn(vs ...int) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldNotIn(FieldUsageCount, vs...))
}

// UsageCountGT applies the GT predicate on the "usage_count" field.
func UsageCountGT(v int) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldGT(FieldUsageCount, v))
}

// UsageCountGTE applies the GTE predicate on the "usage_count" field.
func UsageCountGTE(v int) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldGTE(FieldUsageCount, v))
}

// UsageCountLT applies the LT predicate on the "usage_count" field.
func UsageCountLT(v int) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldLT(FieldUsageCount, v))
}

// UsageCountLTE applies the LTE predicate on the "usage_count" field.
func UsageCountLTE(v int) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldLTE(FieldUsageCount, v))
}

// QualityScoreEQ applies the EQ predicate on the "quality_score" field.
func QualityScoreEQ(v float64) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldEQ(FieldQualityScore, v))
}

// QualityScoreNEQ applies the NEQ predicate on the "quality_score" field.
func QualityScoreNEQ(v float64) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldNEQ(FieldQualityScore, v))
}

// QualityScoreIn applies the In predicate on the "quality_score" field.
func QualityScoreIn(vs ...float64) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldIn(FieldQualityScore, vs...))
}

// QualityScoreNotIn applies the NotIn predicate on the "quality_score" field.
func QualityScoreNotIn(vs ...float64) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldNotIn(FieldQualityScore, vs...))
}

// QualityScoreGT applies the GT predicate on the "quality_score" field.
func QualityScoreGT(v float64) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldGT(FieldQualityScore, v))
}

// QualityScoreGTE applies the GTE predicate on the "quality_score" field.
func QualityScoreGTE(v float64) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldGTE(FieldQualityScore, v))
}

// QualityScoreLT applies the LT predicate on the "quality_score" field.
func QualityScoreLT(v float64) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldLT(FieldQualityScore, v))
}

// QualityScoreLTE applies the LTE predicate on the "quality_score" field.
func QualityScoreLTE(v float64) predicate.ContextVariant {
	return predicate.ContextVariant(sql.FieldLTE(FieldQualityScore, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ContextVariant) predicate.ContextVariant {
	return predicate.ContextVariant(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ContextVariant) predicate.ContextVariant {
	return predicate.ContextVariant(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ContextVariant) predicate.ContextVariant {
	return predicate.ContextVariant(sql.NotPredicates(p))
}
