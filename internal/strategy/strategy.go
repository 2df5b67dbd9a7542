// Package strategy contains the automation strategies and the registry
// that dispatches an application type to the strategy that can drive it.
package strategy

import (
	"fmt"
	"time"

	"github.com/winapp/winapp-cli/internal/driver"
	"github.com/winapp/winapp-cli/internal/model"
)

// DialogInfo is the result of one dialog classification. It is recomputed
// on every IdentifyDialog call; the element handles are borrowed from the
// driver and only valid while the dialog is up.
type DialogInfo struct {
	Kind    model.DialogKind
	Fields  []driver.Element
	Buttons []driver.Element
}

// Strategy is the technology-specific automation capability set. Exactly
// one strategy is bound to a session for its lifetime.
type Strategy interface {
	// NavigateMenu resolves each path segment top-down, opening submenus as
	// needed, and selects target at the terminal level. On failure it
	// returns a MenuItemNotFoundError naming the first segment it could not
	// locate.
	NavigateMenu(menuPath []string, target string) error

	// IdentifyDialog polls for a newly opened dialog for up to waitTimeout
	// and classifies it. A timeout is not an error: it yields kind "none".
	IdentifyDialog(waitTimeout time.Duration) (DialogInfo, error)

	// FillFormInputs assigns values[i] to the i-th input field of the most
	// recently identified dialog, in enumeration order. A count mismatch
	// fails with FieldCountMismatchError before any field is written.
	FillFormInputs(values []string) error
}

// Factory builds a strategy bound to an open driver handle.
type Factory func(h driver.Handle) Strategy

// Registry maps application types to strategy factories. The built-in set
// is closed; new pairs can be registered without touching existing ones.
type Registry struct {
	factories map[model.ApplicationType]Factory
}

// NewRegistry returns a registry with the built-in mappings. Win32 and
// Unknown both fall back to the keyboard-driven strategy because their
// control trees cannot be relied on for native introspection.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[model.ApplicationType]Factory)}
	r.Register(model.AppJava, NewKeyboard)
	r.Register(model.AppDotNetWPF, NewNativeTree)
	r.Register(model.AppDotNetWinForms, NewNativeTree)
	r.Register(model.AppUWP, NewNativeTree)
	r.Register(model.AppWin32, NewKeyboard)
	r.Register(model.AppUnknown, NewKeyboard)
	return r
}

// Register adds or replaces the factory for an application type.
func (r *Registry) Register(t model.ApplicationType, f Factory) {
	r.factories[t] = f
}

// Resolve binds a strategy for the given type to the handle. It fails only
// when a caller bypasses the classifier and supplies a tag outside the
// registered set.
func (r *Registry) Resolve(t model.ApplicationType, h driver.Handle) (Strategy, error) {
	f, ok := r.factories[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedApplicationType, t)
	}
	return f(h), nil
}
