// Package session is the connection façade: it opens an application
// window, classifies its technology, binds the matching automation
// strategy, and exposes the combined capability set for one window's
// lifetime.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/winapp/winapp-cli/internal/detect"
	"github.com/winapp/winapp-cli/internal/driver"
	"github.com/winapp/winapp-cli/internal/model"
	"github.com/winapp/winapp-cli/internal/navpath"
	"github.com/winapp/winapp-cli/internal/strategy"
)

// ErrClosed is returned by operations on a disconnected session.
var ErrClosed = errors.New("session is closed")

// stepDelay paces raw navigation path execution. Package variable so tests
// can zero it.
var stepDelay = 300 * time.Millisecond

// Session binds one open window to its detected type and strategy. It is
// not safe for concurrent use; callers serialize access per session.
type Session struct {
	handle driver.Handle
	window model.WindowDescriptor
	typ    model.ApplicationType
	strat  strategy.Strategy
	closed bool
}

// Connect opens the window named by appIdentifier, reads its metadata,
// classifies the application, and binds a strategy from the registry. The
// driver handle is released if any step after opening fails.
func Connect(d driver.Driver, reg *strategy.Registry, appIdentifier string) (*Session, error) {
	h, err := d.OpenSession(appIdentifier)
	if err != nil {
		return nil, err
	}
	window, err := h.WindowMetadata()
	if err != nil {
		_ = h.Close()
		return nil, fmt.Errorf("read window metadata: %w", err)
	}
	typ := detect.Classify(window)
	strat, err := reg.Resolve(typ, h)
	if err != nil {
		_ = h.Close()
		return nil, err
	}
	return &Session{handle: h, window: window, typ: typ, strat: strat}, nil
}

// Type returns the application type detected at connect time.
func (s *Session) Type() model.ApplicationType {
	return s.typ
}

// Window returns the descriptor read at connect time.
func (s *Session) Window() model.WindowDescriptor {
	return s.window
}

// NavigateMenu walks the menu path and selects target using the bound
// strategy.
func (s *Session) NavigateMenu(menuPath []string, target string) error {
	if s.closed {
		return ErrClosed
	}
	return s.strat.NavigateMenu(menuPath, target)
}

// IdentifyDialog waits up to waitTimeout for a dialog and classifies it.
func (s *Session) IdentifyDialog(waitTimeout time.Duration) (strategy.DialogInfo, error) {
	if s.closed {
		return strategy.DialogInfo{}, ErrClosed
	}
	return s.strat.IdentifyDialog(waitTimeout)
}

// FillFormInputs assigns values to the fields of the most recently
// identified dialog, in order.
func (s *Session) FillFormInputs(values []string) error {
	if s.closed {
		return ErrClosed
	}
	return s.strat.FillFormInputs(values)
}

// RunSteps executes a parsed navigation path against the window: keystroke
// steps are sent as chords, label steps scan the focused menu item and
// select it.
func (s *Session) RunSteps(steps []navpath.Step) error {
	if s.closed {
		return ErrClosed
	}
	for _, step := range steps {
		switch step.Kind {
		case navpath.StepKeys:
			for i := 0; i < step.Repeat; i++ {
				if err := s.handle.SendKeys(driver.Chord(step.Keys...)); err != nil {
					return fmt.Errorf("send %v: %w", step.Keys, err)
				}
			}
		case navpath.StepText:
			if err := strategy.ScanToMenuItem(s.handle, step.Text); err != nil {
				return err
			}
			if err := s.handle.SendKeys(driver.KeyEnter); err != nil {
				return fmt.Errorf("select %q: %w", step.Text, err)
			}
		}
		time.Sleep(stepDelay)
	}
	return nil
}

// Disconnect dismisses any open menus and releases the driver handle. It
// is idempotent; repeated calls return nil.
func (s *Session) Disconnect() error {
	if s.closed {
		return nil
	}
	s.closed = true
	// Best effort: leave the application without a dangling open menu.
	for i := 0; i < 3; i++ {
		_ = s.handle.SendKeys(driver.KeyEscape)
	}
	if err := s.handle.Close(); err != nil {
		return fmt.Errorf("close driver session: %w", err)
	}
	return nil
}
