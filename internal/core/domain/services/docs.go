// Package services provides domain services that implement business logic
// spanning multiple aggregates of the operations board. It hosts logic that
// doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - NotificationPolicy: A pure mapping from domain events to notification drafts
//
// Domain services coordinate between aggregates following Domain-Driven Design
// principles; they hold no state and perform no I/O.
package services
