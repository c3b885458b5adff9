package ports

import "context"

type NotificationKind string

const (
	NotificationWelcome       NotificationKind = "welcome"
	NotificationPasswordReset NotificationKind = "password_reset"
)

// Notification is an outbound message addressed to one recipient.
type Notification struct {
	Kind      NotificationKind
	Recipient string
	Subject   string
	Data      map[string]string
}

// Notifier delivers a single notification.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// NotificationQueue accepts notifications for asynchronous delivery.
type NotificationQueue interface {
	Enqueue(ctx context.Context, n Notification) error
}
