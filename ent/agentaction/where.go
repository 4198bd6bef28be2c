// Code generated by ent, DO NOT EDIT.

package agentaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/nocforge/nocforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldEQ(FieldSessionID, v))
}

// SequenceNumber applies equality check predicate on the "sequence_number" field. It's identical to SequenceNumberEQ.
func SequenceNumber(v int) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldEQ(FieldSequenceNumber, v))
}

// ToolCallID applies equality check predicate on the "tool_call_id" field. It's identical to ToolCallIDEQ.
func ToolCallID(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldEQ(FieldToolCallID, v))
}

// ToolName applies equality check predicate on the "tool_name" field. It's identical to ToolNameEQ.
func ToolName(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldEQ(FieldToolName, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldEQ(FieldSuccess, v))
}

// RiskLevel applies equality check predicate on the "risk_level" field. It's identical to RiskLevelEQ.
func RiskLevel(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldEQ(FieldRiskLevel, v))
}

// ApprovalID applies equality check predicate on the "approval_id" field. It's identical to ApprovalIDEQ.
func ApprovalID(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldEQ(FieldApprovalID, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldEQ(FieldDurationMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldContainsFold(FieldSessionID, v))
}

// SequenceNumberEQ applies the EQ predicate on the "sequence_number" field.
func SequenceNumberEQ(v int) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldEQ(FieldSequenceNumber, v))
}

// SequenceNumberNEQ applies the NEQ predicate on the "sequence_number" field.
func SequenceNumberNEQ(v int) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldNEQ(FieldSequenceNumber, v))
}

// SequenceNumberIn applies the In predicate on the "sequence_number" field.
func SequenceNumberIn(vs ...int) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldIn(FieldSequenceNumber, vs...))
}

// SequenceNumberNotIn applies the NotIn predicate on the "sequence_number" field.
func SequenceNumberNotIn(vs ...int) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldNotIn(FieldSequenceNumber, vs...))
}

// SequenceNumberGT applies the GT predicate on the "sequence_number" field.
func SequenceNumberGT(v int) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldGT(FieldSequenceNumber, v))
}

// SequenceNumberGTE applies the GTE predicate on the "sequence_number" field.
func SequenceNumberGTE(v int) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldGTE(FieldSequenceNumber, v))
}

// SequenceNumberLT applies the LT predicate on the "sequence_number" field.
func SequenceNumberLT(v int) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldLT(FieldSequenceNumber, v))
}

// SequenceNumberLTE applies the LTE predicate on the "sequence_number" field.
func SequenceNumberLTE(v int) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldLTE(FieldSequenceNumber, v))
}

// ToolCallIDEQ applies the EQ predicate on the "tool_call_id" field.
func ToolCallIDEQ(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldEQ(FieldToolCallID, v))
}

// ToolCallIDNEQ applies the NEQ predicate on the "tool_call_id" field.
func ToolCallIDNEQ(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldNEQ(FieldToolCallID, v))
}

// ToolCallIDIn applies the In predicate on the "tool_call_id" field.
func ToolCallIDIn(vs ...string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldIn(FieldToolCallID, vs...))
}

// ToolCallIDNotIn applies the NotIn predicate on the "tool_call_id" field.
func ToolCallIDNotIn(vs ...string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldNotIn(FieldToolCallID, vs...))
}

// ToolCallIDGT applies the GT predicate on the "tool_call_id" field.
func ToolCallIDGT(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldGT(FieldToolCallID, v))
}

// ToolCallIDGTE applies the GTE predicate on the "tool_call_id" field.
func ToolCallIDGTE(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldGTE(FieldToolCallID, v))
}

// ToolCallIDLT applies the LT predicate on the "tool_call_id" field.
func ToolCallIDLT(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldLT(FieldToolCallID, v))
}

// ToolCallIDLTE applies the LTE predicate on the "tool_call_id" field.
func ToolCallIDLTE(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldLTE(FieldToolCallID, v))
}

// ToolCallIDContains applies the Contains predicate on the "tool_call_id" field.
func ToolCallIDContains(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldContains(FieldToolCallID, v))
}

// ToolCallIDHasPrefix applies the HasPrefix predicate on the "tool_call_id" field.
func ToolCallIDHasPrefix(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldHasPrefix(FieldToolCallID, v))
}

// ToolCallIDHasSuffix applies the HasSuffix predicate on the "tool_call_id" field.
func ToolCallIDHasSuffix(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldHasSuffix(FieldToolCallID, v))
}

// ToolCallIDEqualFold applies the EqualFold predicate on the "tool_call_id" field.
func ToolCallIDEqualFold(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldEqualFold(FieldToolCallID, v))
}

// ToolCallIDContainsFold applies the ContainsFold predicate on the "tool_call_id" field.
func ToolCallIDContainsFold(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldContainsFold(FieldToolCallID, v))
}

// ToolNameEQ applies the EQ predicate on the "tool_name" field.
func ToolNameEQ(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldEQ(FieldToolName, v))
}

// ToolNameNEQ applies the NEQ predicate on the "tool_name" field.
func ToolNameNEQ(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldNEQ(FieldToolName, v))
}

// ToolNameIn applies the In predicate on the "tool_name" field.
func ToolNameIn(vs ...string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldIn(FieldToolName, vs...))
}

// ToolNameNotIn applies the NotIn predicate on the "tool_name" field.
func ToolNameNotIn(vs ...string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldNotIn(FieldToolName, vs...))
}

// ToolNameGT applies the GT predicate on the "tool_name" field.
func ToolNameGT(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldGT(FieldToolName, v))
}

// ToolNameGTE applies the GTE predicate on the "tool_name" field.
func ToolNameGTE(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldGTE(FieldToolName, v))
}

// ToolNameLT applies the LT predicate on the "tool_name" field.
func ToolNameLT(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldLT(FieldToolName, v))
}

// ToolNameLTE applies the LTE predicate on the "tool_name" field.
func ToolNameLTE(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldLTE(FieldToolName, v))
}

// ToolNameContains applies the Contains predicate on the "tool_name" field.
func ToolNameContains(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldContains(FieldToolName, v))
}

// ToolNameHasPrefix applies the HasPrefix predicate on the "tool_name" field.
func ToolNameHasPrefix(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldHasPrefix(FieldToolName, v))
}

// ToolNameHasSuffix applies the HasSuffix predicate on the "tool_name" field.
func ToolNameHasSuffix(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldHasSuffix(FieldToolName, v))
}

// ToolNameEqualFold applies the EqualFold predicate on the "tool_name" field.
func ToolNameEqualFold(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldEqualFold(FieldToolName, v))
}

// ToolNameContainsFold applies the ContainsFold predicate on the "tool_name" field.
func ToolNameContainsFold(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldContainsFold(FieldToolName, v))
}

// ToolArgsIsNil applies the IsNil predicate on the "tool_args" field.
func ToolArgsIsNil() predicate.AgentAction {
	return predicate.AgentAction(sql.FieldIsNull(FieldToolArgs))
}

// ToolArgsNotNil applies the NotNil predicate on the "tool_args" field.
func ToolArgsNotNil() predicate.AgentAction {
	return predicate.AgentAction(sql.FieldNotNull(FieldToolArgs))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.AgentAction {
	return predicate.AgentAction(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.AgentAction {
	return predicate.AgentAction(sql.FieldNotNull(FieldResult))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldNEQ(FieldSuccess, v))
}

// RiskLevelEQ applies the EQ predicate on the "risk_level" field.
func RiskLevelEQ(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskLevelNEQ applies the NEQ predicate on the "risk_level" field.
func RiskLevelNEQ(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldNEQ(FieldRiskLevel, v))
}

// RiskLevelIn applies the In predicate on the "risk_level" field.
func RiskLevelIn(vs ...string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldIn(FieldRiskLevel, vs...))
}

// RiskLevelNotIn applies the NotIn predicate on the "risk_level" field.
func RiskLevelNotIn(vs ...string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldNotIn(FieldRiskLevel, vs...))
}

// RiskLevelGT applies the GT predicate on the "risk_level" field.
func RiskLevelGT(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldGT(FieldRiskLevel, v))
}

// RiskLevelGTE applies the GTE predicate on the "risk_level" field.
func RiskLevelGTE(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldGTE(FieldRiskLevel, v))
}

// RiskLevelLT applies the LT predicate on the "risk_level" field.
func RiskLevelLT(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldLT(FieldRiskLevel, v))
}

// RiskLevelLTE applies the LTE predicate on the "risk_level" field.
func RiskLevelLTE(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldLTE(FieldRiskLevel, v))
}

// RiskLevelContains applies the Contains predicate on the "risk_level" field.
func RiskLevelContains(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldContains(FieldRiskLevel, v))
}

// RiskLevelHasPrefix applies the HasPrefix predicate on the "risk_level" field.
func RiskLevelHasPrefix(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldHasPrefix(FieldRiskLevel, v))
}

// RiskLevelHasSuffix applies the HasSuffix predicate on the "risk_level" field.
func RiskLevelHasSuffix(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldHasSuffix(FieldRiskLevel, v))
}

// RiskLevelEqualFold applies the EqualFold predicate on the "risk_level" field.
func RiskLevelEqualFold(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldEqualFold(FieldRiskLevel, v))
}

// RiskLevelContainsFold applies the ContainsFold predicate on the "risk_level" field.
func RiskLevelContainsFold(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldContainsFold(FieldRiskLevel, v))
}

// ApprovalIDEQ applies the EQ predicate on the "approval_id" field.
func ApprovalIDEQ(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldEQ(FieldApprovalID, v))
}

// ApprovalIDNEQ applies the NEQ predicate on the "approval_id" field.
func ApprovalIDNEQ(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldNEQ(FieldApprovalID, v))
}

// ApprovalIDIn applies the In predicate on the "approval_id" field.
func ApprovalIDIn(vs ...string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldIn(FieldApprovalID, vs...))
}

// ApprovalIDNotIn applies the NotIn predicate on the "approval_id" field.
func ApprovalIDNotIn(vs ...string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldNotIn(FieldApprovalID, vs...))
}

// ApprovalIDGT applies the GT predicate on the "approval_id" field.
func ApprovalIDGT(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldGT(FieldApprovalID, v))
}

// ApprovalIDGTE applies the GTE predicate on the "approval_id" field.
func ApprovalIDGTE(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldGTE(FieldApprovalID, v))
}

// ApprovalIDLT applies the LT predicate on the "approval_id" field.
func ApprovalIDLT(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldLT(FieldApprovalID, v))
}

// ApprovalIDLTE applies the LTE predicate on the "approval_id" field.
func ApprovalIDLTE(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldLTE(FieldApprovalID, v))
}

// ApprovalIDContains applies the Contains predicate on the "approval_id" field.
func ApprovalIDContains(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldContains(FieldApprovalID, v))
}

// ApprovalIDHasPrefix applies the HasPrefix predicate on the "approval_id" field.
func ApprovalIDHasPrefix(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldHasPrefix(FieldApprovalID, v))
}

// ApprovalIDHasSuffix applies the HasSuffix predicate on the "approval_id" field.
func ApprovalIDHasSuffix(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldHasSuffix(FieldApprovalID, v))
}

// ApprovalIDIsNil applies the IsNil predicate on the "approval_id" field.
func ApprovalIDIsNil() predicate.AgentAction {
	return predicate.AgentAction(sql.FieldIsNull(FieldApprovalID))
}

// ApprovalIDNotNil applies the NotNil predicate on the "approval_id" field.
func ApprovalIDNotNil() predicate.AgentAction {
	return predicate.AgentAction(sql.FieldNotNull(FieldApprovalID))
}

// ApprovalIDEqualFold applies the EqualFold predicate on the "approval_id" field.
func ApprovalIDEqualFold(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldEqualFold(FieldApprovalID, v))
}

// ApprovalIDContainsFold applies the ContainsFold predicate on the "approval_id" field.
func ApprovalIDContainsFold(v string) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldContainsFold(FieldApprovalID, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.AgentAction {
	return predicate.AgentAction(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.AgentAction {
	return predicate.AgentAction(sql.FieldNotNull(FieldDurationMs))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentAction {
	return predicate.AgentAction(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.AgentAction {
	return predicate.AgentAction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.AgentAction {
	return predicate.AgentAction(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentAction) predicate.AgentAction {
	return predicate.AgentAction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentAction) predicate.AgentAction {
	return predicate.AgentAction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentAction) predicate.AgentAction {
	return predicate.AgentAction(sql.NotPredicates(p))
}
