// Code generated by ent, DO NOT EDIT.

package pendingapproval

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/nocforge/nocforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldSessionID, v))
}

// ActionID applies equality check predicate on the "action_id" field. It's identical to ActionIDEQ.
func ActionID(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldActionID, v))
}

// ToolName applies equality check predicate on the "tool_name" field. It's identical to ToolNameEQ.
func ToolName(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldToolName, v))
}

// RiskLevel applies equality check predicate on the "risk_level" field. It's identical to RiskLevelEQ.
func RiskLevel(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldRiskLevel, v))
}

// RequestedAt applies equality check predicate on the "requested_at" field. It's identical to RequestedAtEQ.
func RequestedAt(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldRequestedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldExpiresAt, v))
}

// DecidedAt applies equality check predicate on the "decided_at" field. It's identical to DecidedAtEQ.
func DecidedAt(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldDecidedAt, v))
}

// DecidedBy applies equality check predicate on the "decided_by" field. It's identical to DecidedByEQ.
func DecidedBy(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldDecidedBy, v))
}

// DecisionReason applies equality check predicate on the "decision_reason" field. It's identical to DecisionReasonEQ.
func DecisionReason(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldDecisionReason, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContainsFold(FieldSessionID, v))
}

// ActionIDEQ applies the EQ predicate on the "action_id" field.
func ActionIDEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldActionID, v))
}

// ActionIDNEQ applies the NEQ predicate on the "action_id" field.
func ActionIDNEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldActionID, v))
}

// ActionIDIn applies the In predicate on the "action_id" field.
func ActionIDIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldActionID, vs...))
}

// ActionIDNotIn applies the NotIn predicate on the "action_id" field.
func ActionIDNotIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldActionID, vs...))
}

// ActionIDGT applies the GT predicate on the "action_id" field.
func ActionIDGT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldActionID, v))
}

// ActionIDGTE applies the GTE predicate on the "action_id" field.
func ActionIDGTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldActionID, v))
}

// ActionIDLT applies the LT predicate on the "action_id" field.
func ActionIDLT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldActionID, v))
}

// ActionIDLTE applies the LTE predicate on the "action_id" field.
func ActionIDLTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldActionID, v))
}

// ActionIDContains applies the Contains predicate on the "action_id" field.
func ActionIDContains(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContains(FieldActionID, v))
}

// ActionIDHasPrefix applies the HasPrefix predicate on the "action_id" field.
func ActionIDHasPrefix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasPrefix(FieldActionID, v))
}

// ActionIDHasSuffix applies the HasSuffix predicate on the "action_id" field.
func ActionIDHasSuffix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasSuffix(FieldActionID, v))
}

// ActionIDEqualFold applies the EqualFold predicate on the "action_id" field.
func ActionIDEqualFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEqualFold(FieldActionID, v))
}

// ActionIDContainsFold applies the ContainsFold predicate on the "action_id" field.
func ActionIDContainsFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContainsFold(FieldActionID, v))
}

// ToolNameEQ applies the EQ predicate on the "tool_name" field.
func ToolNameEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldToolName, v))
}

// ToolNameNEQ applies the NEQ predicate on the "tool_name" field.
func ToolNameNEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldToolName, v))
}

// ToolNameIn applies the In predicate on the "tool_name" field.
func ToolNameIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldToolName, vs...))
}

// ToolNameNotIn applies the NotIn predicate on the "tool_name" field.
func ToolNameNotIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldToolName, vs...))
}

// ToolNameGT applies the GT predicate on the "tool_name" field.
func ToolNameGT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldToolName, v))
}

// ToolNameGTE applies the GTE predicate on the "tool_name" field.
func ToolNameGTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldToolName, v))
}

// ToolNameLT applies the LT predicate on the "tool_name" field.
func ToolNameLT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldToolName, v))
}

// ToolNameLTE applies the LTE predicate on the "tool_name" field.
func ToolNameLTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldToolName, v))
}

// ToolNameContains applies the Contains predicate on the "tool_name" field.
func ToolNameContains(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContains(FieldToolName, v))
}

// ToolNameHasPrefix applies the HasPrefix predicate on the "tool_name" field.
func ToolNameHasPrefix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasPrefix(FieldToolName, v))
}

// ToolNameHasSuffix applies the HasSuffix predicate on the "tool_name" field.
func ToolNameHasSuffix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasSuffix(FieldToolName, v))
}

// ToolNameEqualFold applies the EqualFold predicate on the "tool_name" field.
func ToolNameEqualFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEqualFold(FieldToolName, v))
}

// ToolNameContainsFold applies the ContainsFold predicate on the "tool_name" field.
func ToolNameContainsFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContainsFold(FieldToolName, v))
}

// ToolArgsIsNil applies the IsNil predicate on the "tool_args" field.
func ToolArgsIsNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIsNull(FieldToolArgs))
}

// ToolArgsNotNil applies the NotNil predicate on the "tool_args" field.
func ToolArgsNotNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotNull(FieldToolArgs))
}

// RiskLevelEQ applies the EQ predicate on the "risk_level" field.
func RiskLevelEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskLevelNEQ applies the NEQ predicate on the "risk_level" field.
func RiskLevelNEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldRiskLevel, v))
}

// RiskLevelIn applies the In predicate on the "risk_level" field.
func RiskLevelIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldRiskLevel, vs...))
}

// RiskLevelNotIn applies the NotIn predicate on the "risk_level" field.
func RiskLevelNotIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldRiskLevel, vs...))
}

// RiskLevelGT applies the GT predicate on the "risk_level" field.
func RiskLevelGT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldRiskLevel, v))
}

// RiskLevelGTE applies the GTE predicate on the "risk_level" field.
func RiskLevelGTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldRiskLevel, v))
}

// RiskLevelLT applies the LT predicate on the "risk_level" field.
func RiskLevelLT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldRiskLevel, v))
}

// RiskLevelLTE applies the LTE predicate on the "risk_level" field.
func RiskLevelLTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldRiskLevel, v))
}

// RiskLevelContains applies the Contains predicate on the "risk_level" field.
func RiskLevelContains(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContains(FieldRiskLevel, v))
}

// RiskLevelHasPrefix applies the HasPrefix predicate on the "risk_level" field.
func RiskLevelHasPrefix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasPrefix(FieldRiskLevel, v))
}

// RiskLevelHasSuffix applies the HasSuffix predicate on the "risk_level" field.
func RiskLevelHasSuffix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasSuffix(FieldRiskLevel, v))
}

// RiskLevelEqualFold applies the EqualFold predicate on the "risk_level" field.
func RiskLevelEqualFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEqualFold(FieldRiskLevel, v))
}

// RiskLevelContainsFold applies the ContainsFold predicate on the "risk_level" field.
func RiskLevelContainsFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContainsFold(FieldRiskLevel, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldStatus, vs...))
}

// RequestedAtEQ applies the EQ predicate on the "requested_at" field.
func RequestedAtEQ(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldRequestedAt, v))
}

// RequestedAtNEQ applies the NEQ predicate on the "requested_at" field.
func RequestedAtNEQ(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldRequestedAt, v))
}

// RequestedAtIn applies the In predicate on the "requested_at" field.
func RequestedAtIn(vs ...time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldRequestedAt, vs...))
}

// RequestedAtNotIn applies the NotIn predicate on the "requested_at" field.
func RequestedAtNotIn(vs ...time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldRequestedAt, vs...))
}

// RequestedAtGT applies the GT predicate on the "requested_at" field.
func RequestedAtGT(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldRequestedAt, v))
}

// RequestedAtGTE applies the GTE predicate on the "requested_at" field.
func RequestedAtGTE(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldRequestedAt, v))
}

// RequestedAtLT applies the LT predicate on the "requested_at" field.
func RequestedAtLT(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldRequestedAt, v))
}

// RequestedAtLTE applies the LTE predicate on the "requested_at" field.
func RequestedAtLTE(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldRequestedAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldExpiresAt, v))
}

// DecidedAtEQ applies the EQ predicate on the "decided_at" field.
func DecidedAtEQ(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldDecidedAt, v))
}

// DecidedAtNEQ applies the NEQ predicate on the "decided_at" field.
func DecidedAtNEQ(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldDecidedAt, v))
}

// DecidedAtIn applies the In predicate on the "decided_at" field.
func DecidedAtIn(vs ...time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldDecidedAt, vs...))
}

// DecidedAtNotIn applies the NotIn predicate on the "decided_at" field.
func DecidedAtNotIn(vs ...time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldDecidedAt, vs...))
}

// DecidedAtGT applies the GT predicate on the "decided_at" field.
func DecidedAtGT(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldDecidedAt, v))
}

// DecidedAtGTE applies the GTE predicate on the "decided_at" field.
func DecidedAtGTE(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldDecidedAt, v))
}

// DecidedAtLT applies the LT predicate on the "decided_at" field.
func DecidedAtLT(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldDecidedAt, v))
}

// DecidedAtLTE applies the LTE predicate on the "decided_at" field.
func DecidedAtLTE(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldDecidedAt, v))
}

// DecidedAtIsNil applies the IsNil predicate on the "decided_at" field.
func DecidedAtIsNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIsNull(FieldDecidedAt))
}

// DecidedAtNotNil applies the NotNil predicate on the "decided_at" field.
func DecidedAtNotNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotNull(FieldDecidedAt))
}

// DecidedByEQ applies the EQ predicate on the "decided_by" field.
func DecidedByEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldDecidedBy, v))
}

// DecidedByNEQ applies the NEQ predicate on the "decided_by" field.
func DecidedByNEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldDecidedBy, v))
}

// DecidedByIn applies the In predicate on the "decided_by" field.
func DecidedByIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldDecidedBy, vs...))
}

// DecidedByNotIn applies the NotIn predicate on the "decided_by" field.
func DecidedByNotIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldDecidedBy, vs...))
}

// DecidedByGT applies the GT predicate on the "decided_by" field.
func DecidedByGT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldDecidedBy, v))
}

// DecidedByGTE applies the GTE predicate on the "decided_by" field.
func DecidedByGTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldDecidedBy, v))
}

// DecidedByLT applies the LT predicate on the "decided_by" field.
func DecidedByLT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldDecidedBy, v))
}

// DecidedByLTE applies the LTE predicate on the "decided_by" field.
func DecidedByLTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldDecidedBy, v))
}

// DecidedByContains applies the Contains predicate on the "decided_by" field.
func DecidedByContains(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContains(FieldDecidedBy, v))
}

// DecidedByHasPrefix applies the HasPrefix predicate on the "decided_by" field.
func DecidedByHasPrefix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasPrefix(FieldDecidedBy, v))
}

// DecidedByHasSuffix applies the HasSuffix predicate on the "decided_by" field.
func DecidedByHasSuffix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasSuffix(FieldDecidedBy, v))
}

// DecidedByIsNil applies the IsNil predicate on the "decided_by" field.
func DecidedByIsNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIsNull(FieldDecidedBy))
}

// DecidedByNotNil applies the NotNil predicate on the "decided_by" field.
func DecidedByNotNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotNull(FieldDecidedBy))
}

// DecidedByEqualFold applies the EqualFold predicate on the "decided_by" field.
func DecidedByEqualFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEqualFold(FieldDecidedBy, v))
}

// DecidedByContainsFold applies the ContainsFold predicate on the "decided_by" field.
func DecidedByContainsFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContainsFold(FieldDecidedBy, v))
}

// DecisionReasonEQ applies the EQ predicate on the "decision_reason" field.
func DecisionReasonEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldDecisionReason, v))
}

// DecisionReasonNEQ applies the NEQ predicate on the "decision_reason" field.
func DecisionReasonNEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldDecisionReason, v))
}

// DecisionReasonIn applies the In predicate on the "decision_reason" field.
func DecisionReasonIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldDecisionReason, vs...))
}

// DecisionReasonNotIn applies the NotIn predicate on the "decision_reason" field.
func DecisionReasonNotIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldDecisionReason, vs...))
}

// DecisionReasonGT applies the GT predicate on the "decision_reason" field.
func DecisionReasonGT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldDecisionReason, v))
}

// DecisionReasonGTE applies the GTE predicate on the "decision_reason" field.
func DecisionReasonGTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldDecisionReason, v))
}

// DecisionReasonLT applies the LT predicate on the "decision_reason" field.
func DecisionReasonLT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldDecisionReason, v))
}

// DecisionReasonLTE applies the LTE predicate on the "decision_reason" field.
func DecisionReasonLTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldDecisionReason, v))
}

// DecisionReasonContains applies the Contains predicate on the "decision_reason" field.
func DecisionReasonContains(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContains(FieldDecisionReason, v))
}

// DecisionReasonHasPrefix applies the HasPrefix predicate on the "decision_reason" field.
func DecisionReasonHasPrefix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasPrefix(FieldDecisionReason, v))
}

// DecisionReasonHasSuffix applies the HasSuffix predicate on the "decision_reason" field.
func DecisionReasonHasSuffix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasSuffix(FieldDecisionReason, v))
}

// DecisionReasonIsNil applies the IsNil predicate on the "decision_reason" field.
func DecisionReasonIsNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIsNull(FieldDecisionReason))
}

// DecisionReasonNotNil applies the NotNil predicate on the "decision_reason" field.
func DecisionReasonNotNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotNull(FieldDecisionReason))
}

// DecisionReasonEqualFold applies the EqualFold predicate on the "decision_reason" field.
func DecisionReasonEqualFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEqualFold(FieldDecisionReason, v))
}

// DecisionReasonContainsFold applies the ContainsFold predicate on the "decision_reason" field.
func DecisionReasonContainsFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContainsFold(FieldDecisionReason, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.PendingApproval {
	return predicate.PendingApproval(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.PendingApproval {
	return predicate.PendingApproval(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PendingApproval) predicate.PendingApproval {
	return predicate.PendingApproval(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PendingApproval) predicate.PendingApproval {
	return predicate.PendingApproval(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PendingApproval) predicate.PendingApproval {
	return predicate.PendingApproval(sql.NotPredicates(p))
}
