// Package pwa models the installable-web-app lifecycle: host events raised
// by the browser shell, the deferred install prompt, and installation status.
//
// Nothing in the search path depends on this package.
package pwa

import (
	"slices"
	"time"
)

// EventKind names a host event.
type EventKind string

const (
	KindInstallPromptAvailable EventKind = "install_prompt_available"
	KindInstallChoice          EventKind = "install_choice"
	KindAppInstalled           EventKind = "app_installed"
	KindUpdateAvailable        EventKind = "update_available"
	KindSWRegistered           EventKind = "sw_registered"
	KindSWRegistrationFailed   EventKind = "sw_registration_failed"
)

// EventKinds is the full set of accepted kinds.
var EventKinds = []EventKind{
	KindInstallPromptAvailable,
	KindInstallChoice,
	KindAppInstalled,
	KindUpdateAvailable,
	KindSWRegistered,
	KindSWRegistrationFailed,
}

// IsValidEventKind reports whether k is a known event kind.
func IsValidEventKind(k EventKind) bool {
	return slices.Contains(EventKinds, k)
}

// Event is one host event. Detail carries the install choice outcome or a
// registration error message; it is empty for other kinds.
type Event struct {
	Kind   EventKind
	Detail string
	At     time.Time
}
