package strategy

import (
	"fmt"
	"strings"
	"time"

	"github.com/winapp/winapp-cli/internal/driver"
	"github.com/winapp/winapp-cli/internal/model"
)

// Timing for keyboard-driven interaction. Package variables so tests can
// zero them.
var (
	menuOpenDelay = 800 * time.Millisecond
	menuScanDelay = 250 * time.Millisecond
	typeDelay     = 100 * time.Millisecond
	pollInterval  = 500 * time.Millisecond
)

// menuScanMaxItems bounds the focused-item walk down an open menu.
const menuScanMaxItems = 15

// dialogElementDelta is how many new elements must appear before the
// keyboard strategy considers a dialog to have opened. Small fluctuations
// (tooltips, focus rings) stay below it.
const dialogElementDelta = 3

// Keyboard drives applications whose control trees expose little to UI
// Automation (Java Swing, bare Win32, unknown toolkits). Menus are operated
// with accelerator keys and focus scanning instead of element invokes, and
// forms are filled in tab order.
type Keyboard struct {
	h          driver.Handle
	lastFields []driver.Element
}

// NewKeyboard binds a keyboard-driven strategy to an open handle.
func NewKeyboard(h driver.Handle) Strategy {
	return &Keyboard{h: h}
}

func (k *Keyboard) NavigateMenu(menuPath []string, target string) error {
	if len(menuPath) == 0 {
		return &MenuItemNotFoundError{Segment: ""}
	}

	// Open the top-level menu with its Alt accelerator.
	top := menuPath[0]
	accel := firstLetter(top)
	if accel == "" {
		return &MenuItemNotFoundError{Segment: top}
	}
	if err := k.h.SendKeys(driver.Chord("alt", accel)); err != nil {
		return fmt.Errorf("open menu %q: %w", top, err)
	}
	time.Sleep(menuOpenDelay)

	if active, err := k.h.ActiveElement(); err != nil || active.Name == "" {
		k.closeMenu()
		return &MenuItemNotFoundError{Segment: top}
	}

	// Walk intermediate segments by scanning the focused item downward.
	for _, seg := range menuPath[1:] {
		if err := ScanToMenuItem(k.h, seg); err != nil {
			k.closeMenu()
			return err
		}
		if err := k.h.SendKeys(driver.KeyEnter); err != nil {
			return fmt.Errorf("open submenu %q: %w", seg, err)
		}
		time.Sleep(menuScanDelay)
	}

	if err := ScanToMenuItem(k.h, target); err != nil {
		k.closeMenu()
		return err
	}
	if err := k.h.SendKeys(driver.KeyEnter); err != nil {
		return fmt.Errorf("select %q: %w", target, err)
	}
	return nil
}

// ScanToMenuItem walks an open menu with Down until the focused item's name
// contains label, case-insensitively, bounded by menuScanMaxItems. Raw
// navigation paths use it for their label steps as well.
func ScanToMenuItem(h driver.Handle, label string) error {
	want := strings.ToLower(label)
	for attempt := 0; attempt < menuScanMaxItems; attempt++ {
		active, err := h.ActiveElement()
		if err == nil && strings.Contains(strings.ToLower(active.Name), want) {
			return nil
		}
		if err := h.SendKeys(driver.KeyDown); err != nil {
			return fmt.Errorf("scan menu: %w", err)
		}
		time.Sleep(menuScanDelay)
	}
	return &MenuItemNotFoundError{Segment: label}
}

// closeMenu dismisses an open menu after a failed navigation.
func (k *Keyboard) closeMenu() {
	_ = k.h.SendKeys(driver.KeyEscape)
}

// IdentifyDialog watches the element count: introspection-poor trees don't
// expose dialogs as addressable windows, but an opened dialog still adds a
// burst of elements to the tree.
func (k *Keyboard) IdentifyDialog(waitTimeout time.Duration) (DialogInfo, error) {
	baselineEls, err := k.h.FindElements(driver.Query{})
	if err != nil {
		return DialogInfo{}, fmt.Errorf("read baseline elements: %w", err)
	}
	baseline := len(baselineEls)

	deadline := time.Now().Add(waitTimeout)
	for {
		els, err := k.h.FindElements(driver.Query{})
		if err != nil {
			return DialogInfo{}, fmt.Errorf("poll elements: %w", err)
		}
		if len(els) > baseline+dialogElementDelta {
			return k.analyzeDialog()
		}
		if !time.Now().Before(deadline) {
			k.lastFields = nil
			return DialogInfo{Kind: model.DialogNone}, nil
		}
		time.Sleep(pollInterval)
	}
}

func (k *Keyboard) analyzeDialog() (DialogInfo, error) {
	fields, err := k.enumerateFields()
	if err != nil {
		return DialogInfo{}, err
	}
	buttons, err := k.h.FindElements(driver.Query{Role: "Button"})
	if err != nil {
		return DialogInfo{}, fmt.Errorf("enumerate buttons: %w", err)
	}

	k.lastFields = fields
	return DialogInfo{
		Kind:    classifyDialog(fields, buttons),
		Fields:  fields,
		Buttons: buttons,
	}, nil
}

func (k *Keyboard) enumerateFields() ([]driver.Element, error) {
	var fields []driver.Element
	for _, role := range model.InputRoleOrder {
		els, err := k.h.FindElements(driver.Query{Role: role})
		if err != nil {
			return nil, fmt.Errorf("enumerate %s fields: %w", role, err)
		}
		fields = append(fields, els...)
	}
	return fields, nil
}

// FillFormInputs types each value in tab order, starting from the field the
// dialog focused on open. The value count is validated against the last
// identified dialog before any keystroke is sent.
func (k *Keyboard) FillFormInputs(values []string) error {
	fields := k.lastFields
	if fields == nil {
		var err error
		if fields, err = k.enumerateFields(); err != nil {
			return err
		}
		k.lastFields = fields
	}
	if len(values) != len(fields) {
		return &FieldCountMismatchError{Expected: len(fields), Got: len(values)}
	}

	for i, value := range values {
		if i > 0 {
			if err := k.h.SendKeys(driver.KeyTab); err != nil {
				return fmt.Errorf("advance to field %d: %w", i+1, err)
			}
		}
		// Replace existing content rather than appending to it.
		if err := k.h.SendKeys(driver.Chord("ctrl", "a")); err != nil {
			return fmt.Errorf("select field %d content: %w", i+1, err)
		}
		if err := k.h.SendKeys(value); err != nil {
			return fmt.Errorf("type into field %d: %w", i+1, err)
		}
		time.Sleep(typeDelay)
	}
	return nil
}

// firstLetter returns the accelerator letter for a menu label.
func firstLetter(label string) string {
	for _, r := range label {
		if r != ' ' {
			return strings.ToLower(string(r))
		}
	}
	return ""
}
