// Package notification implements the notification entity. Notifications are
// born from domain events (via the notification policy) and live append-only:
// the only permitted mutation is marking them read, and removal happens only
// through explicit operator deletion or the retention sweep.
package notification

import (
	"errors"
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/errs"
)

var (
	// ErrNotificationIsNotConstructed is returned when a Notification was not
	// created through NewNotification or RestoreNotification.
	ErrNotificationIsNotConstructed = errors.New(
		"Notification must be created via NewNotification or RestoreNotification",
	)

	// ErrTitleIsRequired is returned when a notification is created without a title.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")

	// ErrMessageIsRequired is returned when a notification is created without a message.
	ErrMessageIsRequired = errs.NewValueIsRequiredError("message")
)

// Notification is one operator-facing message on the dashboard bell.
type Notification struct {
	id        kernel.UUID
	title     string
	message   string
	kind      Kind
	read      bool
	createdAt time.Time

	isConstructed bool
}

// NewNotification creates an unread Notification stamped with the given
// creation time.
func NewNotification(id kernel.UUID, title, message string, kind Kind, createdAt time.Time) (*Notification, error) {
	n := &Notification{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		n.setID(id),
		n.setTitle(title),
		n.setMessage(message),
		n.setKind(kind),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNotification reconstructs a Notification from persistence.
func RestoreNotification(
	id kernel.UUID,
	title, message string,
	kind Kind,
	read bool,
	createdAt time.Time,
) (*Notification, error) {
	n, err := NewNotification(id, title, message, kind, createdAt)
	if err != nil {
		return nil, err
	}
	n.read = read
	return n, nil
}

// Validate ensures the Notification was properly constructed.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// Title returns the notification title.
func (n *Notification) Title() string {
	return n.title
}

// Message returns the notification body.
func (n *Notification) Message() string {
	return n.message
}

// Kind returns the notification kind.
func (n *Notification) Kind() Kind {
	return n.kind
}

// IsRead reports whether the notification was marked read.
func (n *Notification) IsRead() bool {
	return n.read
}

// CreatedAt returns the creation timestamp.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// MarkRead marks the notification as read. Marking an already-read
// notification is a no-op.
func (n *Notification) MarkRead() {
	n.read = true
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}
	n.title = title
	return nil
}

func (n *Notification) setMessage(message string) error {
	if message == "" {
		return ErrMessageIsRequired
	}
	n.message = message
	return nil
}

func (n *Notification) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	n.kind = kind
	return nil
}
