// Package driver defines the narrow boundary to the external UI-automation
// driver. The rest of the system only ever talks to a window through these
// interfaces; the wire protocol lives in concrete implementations such as
// the winappdriver package.
package driver

import "github.com/winapp/winapp-cli/internal/model"

// Element is a borrowed reference to a UI element inside a session. The ID
// is opaque and owned by the driver; it is only valid for the session that
// produced it.
type Element struct {
	ID        string
	Role      string // raw control-type name, e.g. "Edit", "Button", "MenuItem"
	Name      string
	ClassName string
	Enabled   bool
}

// Query selects elements within a session's control tree. Empty fields
// match anything.
type Query struct {
	Role      string // control-type name
	Name      string // exact name match
	ClassName string
}

// Driver opens automation sessions against target windows.
type Driver interface {
	// OpenSession locates or launches the target identified by appIdentifier
	// (a window title or an executable path) and returns a session handle.
	OpenSession(appIdentifier string) (Handle, error)

	// ListWindows enumerates the top-level windows available for automation.
	ListWindows() ([]model.Window, error)
}

// Handle is an open automation session against one window. Handles are not
// safe for concurrent use; a session serializes access to its handle.
type Handle interface {
	// WindowMetadata reads a fresh static snapshot of the window's metadata.
	WindowMetadata() (model.WindowDescriptor, error)

	// FindElements returns the elements matching q, in tree order.
	FindElements(q Query) ([]Element, error)

	// ActiveElement returns the element that currently has keyboard focus.
	ActiveElement() (Element, error)

	// Invoke performs the element's default action (click/press).
	Invoke(el Element) error

	// SetValue replaces the element's value through its native value setter.
	SetValue(el Element, text string) error

	// SendKeys sends a raw keystroke sequence to the focused element.
	// Modifier semantics follow the WebDriver key encoding (see keys.go).
	SendKeys(keys string) error

	// Close releases the driver-side session. Safe to call more than once.
	Close() error
}
