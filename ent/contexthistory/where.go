// Code generated by ent, DO NOT EDIT.

package contexthistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/lernzeit/lernzeit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldEQ(FieldUserID, v))
}

// ScenarioFamilyID applies equality check predicate on the "scenario_family_id" field. It's identical to ScenarioFamilyIDEQ.
func ScenarioFamilyID(v int) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldEQ(FieldScenarioFamilyID, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldEQ(FieldCategory, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v int) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldEQ(FieldGrade, v))
}

// CombinationHash applies equality check predicate on the "combination_hash" field. It's identical to CombinationHashEQ.
func CombinationHash(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldEQ(FieldCombinationHash, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldContainsFold(FieldUserID, v))
}

// ScenarioFamilyIDEQ applies the EQ predicate on the "scenario_family_id" field.
func ScenarioFamilyIDEQ(v int) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldEQ(FieldScenarioFamilyID, v))
}

// ScenarioFamilyIDNEQ applies the NEQ predicate on the "scenario_family_id" field.
func ScenarioFamilyIDNEQ(v int) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldNEQ(FieldScenarioFamilyID, v))
}

// ScenarioFamilyIDIn applies the In predicate on the "scenario_family_id" field.
func ScenarioFamilyIDIn(vs ...int) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldIn(FieldScenarioFamilyID, vs...))
}

// ScenarioFamilyIDNotIn applies the NotIn predicate on the "scenario_family_id" field.
func ScenarioFamilyIDNotIn(vs ...int) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldNotIn(FieldScenarioFamilyID, vs...))
}

// ScenarioFamilyIDGT applies the GT predicate on the "scenario_family_id" field.
func ScenarioFamilyIDGT(v int) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldGT(FieldScenarioFamilyID, v))
}

// ScenarioFamilyIDGTE applies the GTE predicate on the "scenario_family_id" field.
func ScenarioFamilyIDGTE(v int) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldGTE(FieldScenarioFamilyID, v))
}

// ScenarioFamilyIDLT applies the LT predicate on the "scenario_family_id" field.
func ScenarioFamilyIDLT(v int) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldLT(FieldScenarioFamilyID, v))
}

// ScenarioFamilyIDLTE applies the LTE predicate on the "scenario_family_id" field.
func ScenarioFamilyIDLTE(v int) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldLTE(FieldScenarioFamilyID, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldContainsFold(FieldCategory, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v int) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v int) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...int) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...int) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v int) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v int) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v int) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v int) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldLTE(FieldGrade, v))
}

// CombinationHashEQ applies the EQ predicate on the "combination_hash" field.
func CombinationHashEQ(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldEQ(FieldCombinationHash, v))
}

// CombinationHashNEQ applies the NEQ predicate on the "combination_hash" field.
func CombinationHashNEQ(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldNEQ(FieldCombinationHash, v))
}

// CombinationHashIn applies the In predicate on the "combination_hash" field.
func CombinationHashIn(vs ...string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldIn(FieldCombinationHash, vs...))
}

// CombinationHashNotIn applies the NotIn predicate on the "combination_hash" field.
func CombinationHashNotIn(vs ...string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldNotIn(FieldCombinationHash, vs...))
}

// CombinationHashGT applies the GT predicate on the "combination_hash" field.
func CombinationHashGT(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldGT(FieldCombinationHash, v))
}

// CombinationHashGTE applies the GTE predicate on the "combination_hash" field.
func CombinationHashGTE(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldGTE(FieldCombinationHash, v))
}

// CombinationHashLT applies the LT predicate on the "combination_hash" field.
func CombinationHashLT(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldLT(FieldCombinationHash, v))
}

// CombinationHashLTE applies the LTE predicate on the "combination_hash" field.
func CombinationHashLTE(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldLTE(FieldCombinationHash, v))
}

// CombinationHashContains applies the Contains predicate on the "combination_hash" field.
func CombinationHashContains(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldContains(FieldCombinationHash, v))
}

// CombinationHashHasPrefix applies the HasPrefix predicate on the "combination_hash" field.
func CombinationHashHasPrefix(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldHasPrefix(FieldCombinationHash, v))
}

// CombinationHashHasSuffix applies the HasSuffix predicate on the "combination_hash" field.
func CombinationHashHasSuffix(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldHasSuffix(FieldCombinationHash, v))
}

// CombinationHashEqualFold applies the EqualFold predicate on the "combination_hash" field.
func CombinationHashEqualFold(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldEqualFold(FieldCombinationHash, v))
}

// CombinationHashContainsFold applies the ContainsFold predicate on the "combination_hash" field.
func CombinationHashContainsFold(v string) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldContainsFold(FieldCombinationHash, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ContextHistory {
	return predicate.ContextHistory(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ContextHistory) predicate.ContextHistory {
	return predicate.ContextHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ContextHistory) predicate.ContextHistory {
	return predicate.ContextHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ContextHistory) predicate.ContextHistory {
	return predicate.ContextHistory(sql.NotPredicates(p))
}
