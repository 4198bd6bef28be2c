// Code generated by ent, DO NOT EDIT.

package workflowlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/nocforge/nocforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldContainsFold(FieldID, id))
}

// AlertID applies equality check predicate on the "alert_id" field. It's identical to AlertIDEQ.
func AlertID(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldAlertID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldStatus, v))
}

// Outcome applies equality check predicate on the "outcome" field. It's identical to OutcomeEQ.
func Outcome(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldOutcome, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldSummary, v))
}

// TotalInputTokens applies equality check predicate on the "total_input_tokens" field. It's identical to TotalInputTokensEQ.
func TotalInputTokens(v int) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldTotalInputTokens, v))
}

// TotalOutputTokens applies equality check predicate on the "total_output_tokens" field. It's identical to TotalOutputTokensEQ.
func TotalOutputTokens(v int) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldTotalOutputTokens, v))
}

// EstimatedCost applies equality check predicate on the "estimated_cost" field. It's identical to EstimatedCostEQ.
func EstimatedCost(v float64) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldEstimatedCost, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldCompletedAt, v))
}

// AlertIDEQ applies the EQ predicate on the "alert_id" field.
func AlertIDEQ(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldAlertID, v))
}

// AlertIDNEQ applies the NEQ predicate on the "alert_id" field.
func AlertIDNEQ(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNEQ(FieldAlertID, v))
}

// AlertIDIn applies the In predicate on the "alert_id" field.
func AlertIDIn(vs ...string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldIn(FieldAlertID, vs...))
}

// AlertIDNotIn applies the NotIn predicate on the "alert_id" field.
func AlertIDNotIn(vs ...string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNotIn(FieldAlertID, vs...))
}

// AlertIDGT applies the GT predicate on the "alert_id" field.
func AlertIDGT(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGT(FieldAlertID, v))
}

// AlertIDGTE applies the GTE predicate on the "alert_id" field.
func AlertIDGTE(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGTE(FieldAlertID, v))
}

// AlertIDLT applies the LT predicate on the "alert_id" field.
func AlertIDLT(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLT(FieldAlertID, v))
}

// AlertIDLTE applies the LTE predicate on the "alert_id" field.
func AlertIDLTE(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLTE(FieldAlertID, v))
}

// AlertIDContains applies the Contains predicate on the "alert_id" field.
func AlertIDContains(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldContains(FieldAlertID, v))
}

// AlertIDHasPrefix applies the HasPrefix predicate on the "alert_id" field.
func AlertIDHasPrefix(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldHasPrefix(FieldAlertID, v))
}

// AlertIDHasSuffix applies the HasSuffix predicate on the "alert_id" field.
func AlertIDHasSuffix(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldHasSuffix(FieldAlertID, v))
}

// AlertIDEqualFold applies the EqualFold predicate on the "alert_id" field.
func AlertIDEqualFold(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEqualFold(FieldAlertID, v))
}

// AlertIDContainsFold applies the ContainsFold predicate on the "alert_id" field.
func AlertIDContainsFold(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldContainsFold(FieldAlertID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldContainsFold(FieldStatus, v))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeGT applies the GT predicate on the "outcome" field.
func OutcomeGT(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGT(FieldOutcome, v))
}

// OutcomeGTE applies the GTE predicate on the "outcome" field.
func OutcomeGTE(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGTE(FieldOutcome, v))
}

// OutcomeLT applies the LT predicate on the "outcome" field.
func OutcomeLT(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLT(FieldOutcome, v))
}

// OutcomeLTE applies the LTE predicate on the "outcome" field.
func OutcomeLTE(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLTE(FieldOutcome, v))
}

// OutcomeContains applies the Contains predicate on the "outcome" field.
func OutcomeContains(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldContains(FieldOutcome, v))
}

// OutcomeHasPrefix applies the HasPrefix predicate on the "outcome" field.
func OutcomeHasPrefix(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldHasPrefix(FieldOutcome, v))
}

// OutcomeHasSuffix applies the HasSuffix predicate on the "outcome" field.
func OutcomeHasSuffix(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldHasSuffix(FieldOutcome, v))
}

// OutcomeIsNil applies the IsNil predicate on the "outcome" field.
func OutcomeIsNil() predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldIsNull(FieldOutcome))
}

// OutcomeNotNil applies the NotNil predicate on the "outcome" field.
func OutcomeNotNil() predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNotNull(FieldOutcome))
}

// OutcomeEqualFold applies the EqualFold predicate on the "outcome" field.
func OutcomeEqualFold(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEqualFold(FieldOutcome, v))
}

// OutcomeContainsFold applies the ContainsFold predicate on the "outcome" field.
func OutcomeContainsFold(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldContainsFold(FieldOutcome, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldContainsFold(FieldSummary, v))
}

// TotalInputTokensEQ applies the EQ predicate on the "total_input_tokens" field.
func TotalInputTokensEQ(v int) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldTotalInputTokens, v))
}

// TotalInputTokensNEQ applies the NEQ predicate on the "total_input_tokens" field.
func TotalInputTokensNEQ(v int) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNEQ(FieldTotalInputTokens, v))
}

// TotalInputTokensIn applies the In predicate on the "total_input_tokens" field.
func TotalInputTokensIn(vs ...int) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldIn(FieldTotalInputTokens, vs...))
}

// TotalInputTokensNotIn applies the NotIn predicate on the "total_input_tokens" field.
func TotalInputTokensNotIn(vs ...int) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNotIn(FieldTotalInputTokens, vs...))
}

// TotalInputTokensGT applies the GT predicate on the "total_input_tokens" field.
func TotalInputTokensGT(v int) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGT(FieldTotalInputTokens, v))
}

// TotalInputTokensGTE applies the GTE predicate on the "total_input_tokens" field.
func TotalInputTokensGTE(v int) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGTE(FieldTotalInputTokens, v))
}

// TotalInputTokensLT applies the LT predicate on the "total_input_tokens" field.
func TotalInputTokensLT(v int) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLT(FieldTotalInputTokens, v))
}

// TotalInputTokensLTE applies the LTE predicate on the "total_input_tokens" field.
func TotalInputTokensLTE(v int) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLTE(FieldTotalInputTokens, v))
}

// TotalOutputTokensEQ applies the EQ predicate on the "total_output_tokens" field.
func TotalOutputTokensEQ(v int) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldTotalOutputTokens, v))
}

// TotalOutputTokensNEQ applies the NEQ predicate on the "total_output_tokens" field.
func TotalOutputTokensNEQ(v int) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNEQ(FieldTotalOutputTokens, v))
}

// TotalOutputTokensIn applies the In predicate on the "total_output_tokens" field.
func TotalOutputTokensIn(vs ...int) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldIn(FieldTotalOutputTokens, vs...))
}

// TotalOutputTokensNotIn applies the NotIn predicate on the "total_output_tokens" field.
func TotalOutputTokensNotIn(vs ...int) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNotIn(FieldTotalOutputTokens, vs...))
}

// TotalOutputTokensGT applies the GT predicate on the "total_output_tokens" field.
func TotalOutputTokensGT(v int) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGT(FieldTotalOutputTokens, v))
}

// TotalOutputTokensGTE applies the GTE predicate on the "total_output_tokens" field.
func TotalOutputTokensGTE(v int) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGTE(FieldTotalOutputTokens, v))
}

// TotalOutputTokensLT applies the LT predicate on the "total_output_tokens" field.
func TotalOutputTokensLT(v int) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLT(FieldTotalOutputTokens, v))
}

// TotalOutputTokensLTE applies the LTE predicate on the "total_output_tokens" field.
func TotalOutputTokensLTE(v int) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLTE(FieldTotalOutputTokens, v))
}

// EstimatedCostEQ applies the EQ predicate on the "estimated_cost" field.
func EstimatedCostEQ(v float64) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldEstimatedCost, v))
}

// EstimatedCostNEQ applies the NEQ predicate on the "estimated_cost" field.
func EstimatedCostNEQ(v float64) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNEQ(FieldEstimatedCost, v))
}

// EstimatedCostIn applies the In predicate on the "estimated_cost" field.
func EstimatedCostIn(vs ...float64) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldIn(FieldEstimatedCost, vs...))
}

// EstimatedCostNotIn applies the NotIn predicate on the "estimated_cost" field.
func EstimatedCostNotIn(vs ...float64) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNotIn(FieldEstimatedCost, vs...))
}

// EstimatedCostGT applies the GT predicate on the "estimated_cost" field.
func EstimatedCostGT(v float64) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGT(FieldEstimatedCost, v))
}

// EstimatedCostGTE applies the GTE predicate on the "estimated_cost" field.
func EstimatedCostGTE(v float64) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGTE(FieldEstimatedCost, v))
}

// EstimatedCostLT applies the LT predicate on the "estimated_cost" field.
func EstimatedCostLT(v float64) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLT(FieldEstimatedCost, v))
}

// EstimatedCostLTE applies the LTE predicate on the "estimated_cost" field.
func EstimatedCostLTE(v float64) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLTE(FieldEstimatedCost, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.FieldNotNull(FieldCompletedAt))
}

// HasAlert applies the HasEdge predicate on the "alert" edge.
func HasAlert() predicate.WorkflowLog {
	return predicate.WorkflowLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AlertTable, AlertColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAlertWith applies the HasEdge predicate on the "alert" edge with a given conditions (other predicates).
func HasAlertWith(preds ...predicate.Alert) predicate.WorkflowLog {
	return predicate.WorkflowLog(func(s *sql.Selector) {
		step := newAlertStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSteps applies the HasEdge predicate on the "steps" edge.
func HasSteps() predicate.WorkflowLog {
	return predicate.WorkflowLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepsWith applies the HasEdge predicate on the "steps" edge with a given conditions (other predicates).
func HasStepsWith(preds ...predicate.WorkflowStep) predicate.WorkflowLog {
	return predicate.WorkflowLog(func(s *sql.Selector) {
		step := newStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkflowLog) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkflowLog) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkflowLog) predicate.WorkflowLog {
	return predicate.WorkflowLog(sql.NotPredicates(p))
}
