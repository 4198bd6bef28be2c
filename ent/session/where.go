// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/nocforge/nocforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldID, id))
}

// AgentType applies equality check predicate on the "agent_type" field. It's identical to AgentTypeEQ.
func AgentType(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldAgentType, v))
}

// TriggerType applies equality check predicate on the "trigger_type" field. It's identical to TriggerTypeEQ.
func TriggerType(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTriggerType, v))
}

// TriggerID applies equality check predicate on the "trigger_id" field. It's identical to TriggerIDEQ.
func TriggerID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTriggerID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEndedAt, v))
}

// EndReason applies equality check predicate on the "end_reason" field. It's identical to EndReasonEQ.
func EndReason(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEndReason, v))
}

// AgentTypeEQ applies the EQ predicate on the "agent_type" field.
func AgentTypeEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldAgentType, v))
}

// AgentTypeNEQ applies the NEQ predicate on the "agent_type" field.
func AgentTypeNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldAgentType, v))
}

// AgentTypeIn applies the In predicate on the "agent_type" field.
func AgentTypeIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldAgentType, vs...))
}

// AgentTypeNotIn applies the NotIn predicate on the "agent_type" field.
func AgentTypeNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldAgentType, vs...))
}

// AgentTypeGT applies the GT predicate on the "agent_type" field.
func AgentTypeGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldAgentType, v))
}

// AgentTypeGTE applies the GTE predicate on the "agent_type" field.
func AgentTypeGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldAgentType, v))
}

// AgentTypeLT applies the LT predicate on the "agent_type" field.
func AgentTypeLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldAgentType, v))
}

// AgentTypeLTE applies the LTE predicate on the "agent_type" field.
func AgentTypeLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldAgentType, v))
}

// AgentTypeContains applies the Contains predicate on the "agent_type" field.
func AgentTypeContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldAgentType, v))
}

// AgentTypeHasPrefix applies the HasPrefix predicate on the "agent_type" field.
func AgentTypeHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldAgentType, v))
}

// AgentTypeHasSuffix applies the HasSuffix predicate on the "agent_type" field.
func AgentTypeHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldAgentType, v))
}

// AgentTypeEqualFold applies the EqualFold predicate on the "agent_type" field.
func AgentTypeEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldAgentType, v))
}

// AgentTypeContainsFold applies the ContainsFold predicate on the "agent_type" field.
func AgentTypeContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldAgentType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStatus, vs...))
}

// TriggerTypeEQ applies the EQ predicate on the "trigger_type" field.
func TriggerTypeEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTriggerType, v))
}

// TriggerTypeNEQ applies the NEQ predicate on the "trigger_type" field.
func TriggerTypeNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTriggerType, v))
}

// TriggerTypeIn applies the In predicate on the "trigger_type" field.
func TriggerTypeIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTriggerType, vs...))
}

// TriggerTypeNotIn applies the NotIn predicate on the "trigger_type" field.
func TriggerTypeNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTriggerType, vs...))
}

// TriggerTypeGT applies the GT predicate on the "trigger_type" field.
func TriggerTypeGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTriggerType, v))
}

// TriggerTypeGTE applies the GTE predicate on the "trigger_type" field.
func TriggerTypeGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTriggerType, v))
}

// TriggerTypeLT applies the LT predicate on the "trigger_type" field.
func TriggerTypeLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTriggerType, v))
}

// TriggerTypeLTE applies the LTE predicate on the "trigger_type" field.
func TriggerTypeLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTriggerType, v))
}

// TriggerTypeContains applies the Contains predicate on the "trigger_type" field.
func TriggerTypeContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldTriggerType, v))
}

// TriggerTypeHasPrefix applies the HasPrefix predicate on the "trigger_type" field.
func TriggerTypeHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldTriggerType, v))
}

// TriggerTypeHasSuffix applies the HasSuffix predicate on the "trigger_type" field.
func TriggerTypeHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldTriggerType, v))
}

// TriggerTypeIsNil applies the IsNil predicate on the "trigger_type" field.
func TriggerTypeIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldTriggerType))
}

// TriggerTypeNotNil applies the NotNil predicate on the "trigger_type" field.
func TriggerTypeNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldTriggerType))
}

// TriggerTypeEqualFold applies the EqualFold predicate on the "trigger_type" field.
func TriggerTypeEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldTriggerType, v))
}

// TriggerTypeContainsFold applies the ContainsFold predicate on the "trigger_type" field.
func TriggerTypeContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldTriggerType, v))
}

// TriggerIDEQ applies the EQ predicate on the "trigger_id" field.
func TriggerIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTriggerID, v))
}

// TriggerIDNEQ applies the NEQ predicate on the "trigger_id" field.
func TriggerIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTriggerID, v))
}

// TriggerIDIn applies the In predicate on the "trigger_id" field.
func TriggerIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTriggerID, vs...))
}

// TriggerIDNotIn applies the NotIn predicate on the "trigger_id" field.
func TriggerIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTriggerID, vs...))
}

// TriggerIDGT applies the GT predicate on the "trigger_id" field.
func TriggerIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTriggerID, v))
}

// TriggerIDGTE applies the GTE predicate on the "trigger_id" field.
func TriggerIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTriggerID, v))
}

// TriggerIDLT applies the LT predicate on the "trigger_id" field.
func TriggerIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTriggerID, v))
}

// TriggerIDLTE applies the LTE predicate on the "trigger_id" field.
func TriggerIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTriggerID, v))
}

// TriggerIDContains applies the Contains predicate on the "trigger_id" field.
func TriggerIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldTriggerID, v))
}

// TriggerIDHasPrefix applies the HasPrefix predicate on the "trigger_id" field.
func TriggerIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldTriggerID, v))
}

// TriggerIDHasSuffix applies the HasSuffix predicate on the "trigger_id" field.
func TriggerIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldTriggerID, v))
}

// TriggerIDIsNil applies the IsNil predicate on the "trigger_id" field.
func TriggerIDIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldTriggerID))
}

// TriggerIDNotNil applies the NotNil predicate on the "trigger_id" field.
func TriggerIDNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldTriggerID))
}

// TriggerIDEqualFold applies the EqualFold predicate on the "trigger_id" field.
func TriggerIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldTriggerID, v))
}

// TriggerIDContainsFold applies the ContainsFold predicate on the "trigger_id" field.
func TriggerIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldTriggerID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCreatedAt, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldEndedAt))
}

// EndReasonEQ applies the EQ predicate on the "end_reason" field.
func EndReasonEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEndReason, v))
}

// EndReasonNEQ applies the NEQ predicate on the "end_reason" field.
func EndReasonNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldEndReason, v))
}

// EndReasonIn applies the In predicate on the "end_reason" field.
func EndReasonIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldEndReason, vs...))
}

// EndReasonNotIn applies the NotIn predicate on the "end_reason" field.
func EndReasonNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldEndReason, vs...))
}

// EndReasonGT applies the GT predicate on the "end_reason" field.
func EndReasonGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldEndReason, v))
}

// EndReasonGTE applies the GTE predicate on the "end_reason" field.
func EndReasonGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldEndReason, v))
}

// EndReasonLT applies the LT predicate on the "end_reason" field.
func EndReasonLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldEndReason, v))
}

// EndReasonLTE applies the LTE predicate on the "end_reason" field.
func EndReasonLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldEndReason, v))
}

// EndReasonContains applies the Contains predicate on the "end_reason" field.
func EndReasonContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldEndReason, v))
}

// EndReasonHasPrefix applies the HasPrefix predicate on the "end_reason" field.
func EndReasonHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldEndReason, v))
}

// EndReasonHasSuffix applies the HasSuffix predicate on the "end_reason" field.
func EndReasonHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldEndReason, v))
}

// EndReasonIsNil applies the IsNil predicate on the "end_reason" field.
func EndReasonIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldEndReason))
}

// EndReasonNotNil applies the NotNil predicate on the "end_reason" field.
func EndReasonNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldEndReason))
}

// EndReasonEqualFold applies the EqualFold predicate on the "end_reason" field.
func EndReasonEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldEndReason, v))
}

// EndReasonContainsFold applies the ContainsFold predicate on the "end_reason" field.
func EndReasonContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldEndReason, v))
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.Message) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasActions applies the HasEdge predicate on the "actions" edge.
func HasActions() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ActionsTable, ActionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasActionsWith applies the HasEdge predicate on the "actions" edge with a given conditions (other predicates).
func HasActionsWith(preds ...predicate.AgentAction) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newActionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasApprovals applies the HasEdge predicate on the "approvals" edge.
func HasApprovals() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ApprovalsTable, ApprovalsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasApprovalsWith applies the HasEdge predicate on the "approvals" edge with a given conditions (other predicates).
func HasApprovalsWith(preds ...predicate.PendingApproval) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newApprovalsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
