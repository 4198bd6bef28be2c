// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentAction is the predicate function for agentaction builders.
type AgentAction func(*sql.Selector)

// Alert is the predicate function for alert builders.
type Alert func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Incident is the predicate function for incident builders.
type Incident func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// PendingApproval is the predicate function for pendingapproval builders.
type PendingApproval func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// WorkflowLog is the predicate function for workflowlog builders.
type WorkflowLog func(*sql.Selector)

// WorkflowStep is the predicate function for workflowstep builders.
type WorkflowStep func(*sql.Selector)
