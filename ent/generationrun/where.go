// Code generated by ent, DO NOT EDIT.

package generationrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/lernzeit/lernzeit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldRunID, v))
}

// GapsTargeted applies equality check predicate on the "gaps_targeted" field. It's identical to GapsTargetedEQ.
func GapsTargeted(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldGapsTargeted, v))
}

// Generated applies equality check predicate on the "generated" field. It's identical to GeneratedEQ.
func Generated(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldGenerated, v))
}

// Rejected applies equality check predicate on the "rejected" field. It's identical to RejectedEQ.
func Rejected(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldRejected, v))
}

// Failed applies equality check predicate on the "failed" field. It's identical to FailedEQ.
func Failed(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldFailed, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldFinishedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldContainsFold(FieldRunID, v))
}

// GapsTargetedEQ applies the EQ predicate on the "gaps_targeted" field.
func GapsTargetedEQ(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldGapsTargeted, v))
}

// GapsTargetedNEQ applies the NEQ predicate on the "gaps_targeted" field.
func GapsTargetedNEQ(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNEQ(FieldGapsTargeted, v))
}

// GapsTargetedIn applies the In predicate on the "gaps_targeted" field.
func GapsTargetedIn(vs ...int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldIn(FieldGapsTargeted, vs...))
}

// GapsTargetedNotIn applies the NotIn predicate on the "gaps_targeted" field.
func GapsTargetedNotIn(vs ...int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNotIn(FieldGapsTargeted, vs...))
}

// GapsTargetedGT applies the GT predicate on the "gaps_targeted" field.
func GapsTargetedGT(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGT(FieldGapsTargeted, v))
}

// GapsTargetedGTE applies the GTE predicate on the "gaps_targeted" field.
func GapsTargetedGTE(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGTE(FieldGapsTargeted, v))
}

// GapsTargetedLT applies the LT predicate on the "gaps_targeted" field.
func GapsTargetedLT(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLT(FieldGapsTargeted, v))
}

// GapsTargetedLTE applies the LTE predicate on the "gaps_targeted" field.
func GapsTargetedLTE(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLTE(FieldGapsTargeted, v))
}

// GeneratedEQ applies the EQ predicate on the "generated" field.
func GeneratedEQ(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldGenerated, v))
}

// GeneratedNEQ applies the NEQ predicate on the "generated" field.
func GeneratedNEQ(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNEQ(FieldGenerated, v))
}

// GeneratedIn applies the In predicate on the "generated" field.
func GeneratedIn(vs ...int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldIn(FieldGenerated, vs...))
}

// GeneratedNotIn applies the NotIn predicate on the "generated" field.
func GeneratedNotIn(vs ...int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNotIn(FieldGenerated, vs...))
}

// GeneratedGT applies the GT predicate on the "generated" field.
func GeneratedGT(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGT(FieldGenerated, v))
}

// GeneratedGTE applies the GTE predicate on the "generated" field.
func GeneratedGTE(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGTE(FieldGenerated, v))
}

// GeneratedLT applies the LT predicate on the "generated" field.
func GeneratedLT(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLT(FieldGenerated, v))
}

// GeneratedLTE applies the LTE predicate on the "generated" field.
func GeneratedLTE(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLTE(FieldGenerated, v))
}

// RejectedEQ applies the EQ predicate on the "rejected" field.
func RejectedEQ(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldRejected, v))
}

// RejectedNEQ applies the NEQ predicate on the "rejected" field.
func RejectedNEQ(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNEQ(FieldRejected, v))
}

// RejectedIn applies the In predicate on the "rejected" field.
func RejectedIn(vs ...int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldIn(FieldRejected, vs...))
}

// RejectedNotIn applies the NotIn predicate on the "rejected" field.
func RejectedNotIn(vs ...int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNotIn(FieldRejected, vs...))
}

// RejectedGT applies the GT predicate on the "rejected" field.
func RejectedGT(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGT(FieldRejected, v))
}

// RejectedGTE applies the GTE predicate on the "rejected" field.
func RejectedGTE(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGTE(FieldRejected, v))
}

// RejectedLT applies the LT predicate on the "rejected" field.
func RejectedLT(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLT(FieldRejected, v))
}

// RejectedLTE applies the LTE predicate on the "rejected" field.
func RejectedLTE(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLTE(FieldRejected, v))
}

// FailedEQ applies the EQ predicate on the "failed" field.
func FailedEQ(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldFailed, v))
}

// FailedNEQ applies the NEQ predicate on the "failed" field.
func FailedNEQ(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNEQ(FieldFailed, v))
}

// FailedIn applies the In predicate on the "failed" field.
func FailedIn(vs ...int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldIn(FieldFailed, vs...))
}

// FailedNotIn applies the NotIn predicate on the "failed" field.
func FailedNotIn(vs ...int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNotIn(FieldFailed, vs...))
}

// FailedGT applies the GT predicate on the "failed" field.
func FailedGT(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGT(FieldFailed, v))
}

// FailedGTE applies the GTE predicate on the "failed" field.
func FailedGTE(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGTE(FieldFailed, v))
}

// FailedLT applies the LT predicate on the "failed" field.
func FailedLT(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLT(FieldFailed, v))
}

// FailedLTE applies the LTE predicate on the "failed" field.
func FailedLTE(v int) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLTE(FieldFailed, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.GenerationRun {
	return predicate.GenerationRun(sql.FieldNotNull(FieldFinishedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GenerationRun) predicate.GenerationRun {
	return predicate.GenerationRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GenerationRun) predicate.GenerationRun {
	return predicate.GenerationRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GenerationRun) predicate.GenerationRun {
	return predicate.GenerationRun(sql.NotPredicates(p))
}
