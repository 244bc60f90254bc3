// Package event implements the client-event aggregate. Events carry a free
// status (pending, active, completed, cancelled) without a transition table;
// cancelling an event is the only status change treated specially, because it
// emits a warning notification through the notification policy.
package event
