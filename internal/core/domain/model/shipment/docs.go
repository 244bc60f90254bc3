// Package shipment implements the shipment aggregate and its status workflow.
//
// The workflow is a simple (non-hierarchical) state machine over six statuses,
// driven by a static declarative transition table. Every status change records
// an entry in the shipment's text history log using the grammar in history.go.
// Transitions are always operator-initiated; there are no automatic
// transitions, timers, or retries.
package shipment
