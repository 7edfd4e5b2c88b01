// Code generated by ent, DO NOT EDIT.

package scenariofamily

import (
	"entgo.io/ent/dialect/sql"
	"github.com/lernzeit/lernzeit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldEQ(FieldName, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldEQ(FieldCategory, v))
}

// GradeMin applies equality check predicate on the "grade_min" field. It's identical to GradeMinEQ.
func GradeMin(v int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldEQ(FieldGradeMin, v))
}

// GradeMax applies equality check predicate on the "grade_max" field. It's identical to GradeMaxEQ.
func GradeMax(v int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldEQ(FieldGradeMax, v))
}

// BaseTemplate applies equality check predicate on the "base_template" field. It's identical to BaseTemplateEQ.
func BaseTemplate(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldEQ(FieldBaseTemplate, v))
}

// DifficultyLevel applies equality check predicate on the "difficulty_level" field. It's identical to DifficultyLevelEQ.
func DifficultyLevel(v int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldEQ(FieldDifficultyLevel, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldContainsFold(FieldName, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldContainsFold(FieldCategory, v))
}

// GradeMinEQ applies the EQ predicate on the "grade_min" field.
func GradeMinEQ(v int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldEQ(FieldGradeMin, v))
}

// GradeMinNEQ applies the NEQ predicate on the "grade_min" field.
func GradeMinNEQ(v int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldNEQ(FieldGradeMin, v))
}

// GradeMinIn applies the In predicate on the "grade_min" field.
func GradeMinIn(vs ...int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldIn(FieldGradeMin, vs...))
}

// GradeMinNotIn applies the NotIn predicate on the "grade_min" field.
func GradeMinNotIn(vs ...int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldNotIn(FieldGradeMin, vs...))
}

// GradeMinGT applies the GT predicate on the "grade_min" field.
func GradeMinGT(v int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldGT(FieldGradeMin, v))
}

// GradeMinGTE applies the GTE predicate on the "grade_min" field.
func GradeMinGTE(v int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldGTE(FieldGradeMin, v))
}

// GradeMinLT applies the LT predicate on the "grade_min" field.
func GradeMinLT(v int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldLT(FieldGradeMin, v))
}

// GradeMinLTE applies the LTE predicate on the "grade_min" field.
func GradeMinLTE(v int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldLTE(FieldGradeMin, v))
}

// GradeMaxEQ applies the EQ predicate on the "grade_max" field.
func GradeMaxEQ(v int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldEQ(FieldGradeMax, v))
}

// GradeMaxNEQ applies the NEQ predicate on the "grade_max" field.
func GradeMaxNEQ(v int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldNEQ(FieldGradeMax, v))
}

// GradeMaxIn applies the In predicate on the "grade_max" field.
func GradeMaxIn(vs ...int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldIn(FieldGradeMax, vs...))
}

// GradeMaxNotIn applies the NotIn predicate on the "grade_max" field.
func GradeMaxNotIn(vs ...int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldNotIn(FieldGradeMax, vs...))
}

// GradeMaxGT applies the GT predicate on the "grade_max" field.
func GradeMaxGT(v int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldGT(FieldGradeMax, v))
}

// GradeMaxGTE applies the GTE predicate on the "grade_max" field.
func GradeMaxGTE(v int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldGTE(FieldGradeMax, v))
}

// GradeMaxLT applies the LT predicate on the "grade_max" field.
func GradeMaxLT(v int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldLT(FieldGradeMax, v))
}

// GradeMaxLTE applies the LTE predicate on the "grade_max" field.
func GradeMaxLTE(v int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldLTE(FieldGradeMax, v))
}

// BaseTemplateEQ applies the EQ predicate on the "base_template" field.
func BaseTemplateEQ(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldEQ(FieldBaseTemplate, v))
}

// BaseTemplateNEQ applies the NEQ predicate on the "base_template" field.
func BaseTemplateNEQ(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldNEQ(FieldBaseTemplate, v))
}

// BaseTemplateIn applies the In predicate on the "base_template" field.
func BaseTemplateIn(vs ...string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldIn(FieldBaseTemplate, vs...))
}

// BaseTemplateNotIn applies the NotIn predicate on the "base_template" field.
func BaseTemplateNotIn(vs ...string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldNotIn(FieldBaseTemplate, vs...))
}

// BaseTemplateGT applies the GT predicate on the "base_template" field.
func BaseTemplateGT(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldGT(FieldBaseTemplate, v))
}

// BaseTemplateGTE applies the GTE predicate on the "base_template" field.
func BaseTemplateGTE(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldGTE(FieldBaseTemplate, v))
}

// BaseTemplateLT applies the LT predicate on the "base_template" field.
func BaseTemplateLT(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldLT(FieldBaseTemplate, v))
}

// BaseTemplateLTE applies the LTE predicate on the "base_template" field.
func BaseTemplateLTE(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldLTE(FieldBaseTemplate, v))
}

// BaseTemplateContains applies the Contains predicate on the "base_template" field.
func BaseTemplateContains(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldContains(FieldBaseTemplate, v))
}

// BaseTemplateHasPrefix applies the HasPrefix predicate on the "base_template" field.
func BaseTemplateHasPrefix(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldHasPrefix(FieldBaseTemplate, v))
}

// BaseTemplateHasSuffix applies the HasSuffix predicate on the "base_template" field.
func BaseTemplateHasSuffix(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldHasSuffix(FieldBaseTemplate, v))
}

// BaseTemplateEqualFold applies the EqualFold predicate on the "base_template" field.
func BaseTemplateEqualFold(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldEqualFold(FieldBaseTemplate, v))
}

// BaseTemplateContainsFold applies the ContainsFold predicate on the "base_template" field.
func BaseTemplateContainsFold(v string) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldContainsFold(FieldBaseTemplate, v))
}

// DifficultyLevelEQ applies the EQ predicate on the "difficulty_level" field.
func DifficultyLevelEQ(v int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldEQ(FieldDifficultyLevel, v))
}

// DifficultyLevelNEQ applies the NEQ predicate on the "difficulty_level" field.
func DifficultyLevelNEQ(v int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldNEQ(FieldDifficultyLevel, v))
}

// DifficultyLevelIn applies the In predicate on the "difficulty_level" field.
func DifficultyLevelIn(vs ...int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldIn(FieldDifficultyLevel, vs...))
}

// DifficultyLevelNotIn applies the NotIn predicate on the "difficulty_level" field.
func DifficultyLevelNotIn(vs ...int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldNotIn(FieldDifficultyLevel, vs...))
}

// DifficultyLevelGT applies the GT predicate on the "difficulty_level" field.
func DifficultyLevelGT(v int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldGT(FieldDifficultyLevel, v))
}

// DifficultyLevelGTE applies the GTE predicate on the "difficulty_level" field.
func DifficultyLevelGTE(v int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldGTE(FieldDifficultyLevel, v))
}

// DifficultyLevelLT applies the LT predicate on the "difficulty_level" field.
func DifficultyLevelLT(v int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldLT(FieldDifficultyLevel, v))
}

// DifficultyLevelLTE applies the LTE predicate on the "difficulty_level" field.
func DifficultyLevelLTE(v int) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.FieldLTE(FieldDifficultyLevel, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScenarioFamily) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScenarioFamily) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScenarioFamily) predicate.ScenarioFamily {
	return predicate.ScenarioFamily(sql.NotPredicates(p))
}
