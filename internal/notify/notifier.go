// Package notify sends desktop notifications.
package notify

import (
	"github.com/gen2brain/beeep"
)

// Notifier delivers a user-facing notification. Delivery is best-effort;
// the core never depends on a return contract from the host.
type Notifier interface {
	Notify(title, message string) error
}

// Desktop sends native desktop notifications.
type Desktop struct{}

// NewDesktop creates a desktop notifier.
func NewDesktop() *Desktop {
	return &Desktop{}
}

// Notify sends a desktop notification.
func (d *Desktop) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}

// Nop discards notifications. Used in tests and when alerts are disabled.
type Nop struct{}

// Notify does nothing.
func (Nop) Notify(string, string) error { return nil }
