// Code generated by ent, DO NOT EDIT.

package templatefeedback

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/lernzeit/lernzeit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldEQ(FieldUserID, v))
}

// TemplateID applies equality check predicate on the "template_id" field. It's identical to TemplateIDEQ.
func TemplateID(v int) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldEQ(FieldTemplateID, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldEQ(FieldPrompt, v))
}

// FeedbackType applies equality check predicate on the "feedback_type" field. It's identical to FeedbackTypeEQ.
func FeedbackType(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldEQ(FieldFeedbackType, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldContainsFold(FieldUserID, v))
}

// TemplateIDEQ applies the EQ predicate on the "template_id" field.
func TemplateIDEQ(v int) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldEQ(FieldTemplateID, v))
}

// TemplateIDNEQ applies the NEQ predicate on the "template_id" field.
func TemplateIDNEQ(v int) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldNEQ(FieldTemplateID, v))
}

// TemplateIDIn applies the In predicate on the "template_id" field.
func TemplateIDIn(vs ...int) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldIn(FieldTemplateID, vs...))
}

// TemplateIDNotIn applies the NotIn predicate on the "template_id" field.
func TemplateIDNotIn(vs ...int) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldNotIn(FieldTemplateID, vs...))
}

// TemplateIDGT applies the GT predicate on the "template_id" field.
func TemplateIDGT(v int) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldGT(FieldTemplateID, v))
}

// TemplateIDGTE applies the GTE predicate on the "template_id" field.
func TemplateIDGTE(v int) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldGTE(FieldTemplateID, v))
}

// TemplateIDLT applies the LT predicate on the "template_id" field.
func TemplateIDLT(v int) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldLT(FieldTemplateID, v))
}

// TemplateIDLTE applies the LTE predicate on the "template_id" field.
func TemplateIDLTE(v int) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldLTE(FieldTemplateID, v))
}

// TemplateIDIsNil applies the IsNil predicate on the "template_id" field.
func TemplateIDIsNil() predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldIsNull(FieldTemplateID))
}

// TemplateIDNotNil applies the NotNil predicate on the "template_id" field.
func TemplateIDNotNil() predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldNotNull(FieldTemplateID))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldContainsFold(FieldPrompt, v))
}

// FeedbackTypeEQ applies the EQ predicate on the "feedback_type" field.
func FeedbackTypeEQ(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldEQ(FieldFeedbackType, v))
}

// FeedbackTypeNEQ applies the NEQ predicate on the "feedback_type" field.
func FeedbackTypeNEQ(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldNEQ(FieldFeedbackType, v))
}

// FeedbackTypeIn applies the In predicate on the "feedback_type" field.
func FeedbackTypeIn(vs ...string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldIn(FieldFeedbackType, vs...))
}

// FeedbackTypeNotIn applies the NotIn predicate on the "feedback_type" field.
func FeedbackTypeNotIn(vs ...string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldNotIn(FieldFeedbackType, vs...))
}

// FeedbackTypeGT applies the GT predicate on the "feedback_type" field.
func FeedbackTypeGT(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldGT(FieldFeedbackType, v))
}

// FeedbackTypeGTE applies the GTE predicate on the "feedback_type" field.
func FeedbackTypeGTE(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldGTE(FieldFeedbackType, v))
}

// FeedbackTypeLT applies the LT predicate on the "feedback_type" field.
func FeedbackTypeLT(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldLT(FieldFeedbackType, v))
}

// FeedbackTypeLTE applies the LTE predicate on the "feedback_type" field.
func FeedbackTypeLTE(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldLTE(FieldFeedbackType, v))
}

// FeedbackTypeContains applies the Contains predicate on the "feedback_type" field.
func FeedbackTypeContains(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldContains(FieldFeedbackType, v))
}

// FeedbackTypeHasPrefix applies the HasPrefix predicate on the "feedback_type" field.
func FeedbackTypeHasPrefix(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldHasPrefix(FieldFeedbackType, v))
}

// FeedbackTypeHasSuffix applies the HasSuffix predicate on the "feedback_type" field.
func FeedbackTypeHasSuffix(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldHasSuffix(FieldFeedbackType, v))
}

// FeedbackTypeEqualFold applies the EqualFold predicate on the "feedback_type" field.
func FeedbackTypeEqualFold(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldEqualFold(FieldFeedbackType, v))
}

// FeedbackTypeContainsFold applies the ContainsFold predicate on the "feedback_type" field.
func FeedbackTypeContainsFold(v string) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldContainsFold(FieldFeedbackType, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TemplateFeedback) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TemplateFeedback) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TemplateFeedback) predicate.TemplateFeedback {
	return predicate.TemplateFeedback(sql.NotPredicates(p))
}
