package strategy

import (
	"fmt"
	"strings"
	"time"

	"github.com/winapp/winapp-cli/internal/driver"
	"github.com/winapp/winapp-cli/internal/model"
)

// dialogWindowClass is the Win32 dialog window class. Framework dialogs
// that don't use it are caught by the "Dialog" name heuristic instead.
const dialogWindowClass = "#32770"

// NativeTree drives applications with fully introspectable control trees
// (WPF, WinForms, UWP). Menu items are located by name and invoked
// directly, and form fields are written through the value pattern.
type NativeTree struct {
	h          driver.Handle
	lastFields []driver.Element
}

// NewNativeTree binds a native-tree strategy to an open handle.
func NewNativeTree(h driver.Handle) Strategy {
	return &NativeTree{h: h}
}

func (n *NativeTree) NavigateMenu(menuPath []string, target string) error {
	segments := append(append([]string{}, menuPath...), target)
	for _, seg := range segments {
		el, err := n.findMenuItem(seg)
		if err != nil {
			return err
		}
		if err := n.h.Invoke(el); err != nil {
			return fmt.Errorf("invoke menu item %q: %w", seg, err)
		}
		time.Sleep(menuScanDelay)
	}
	return nil
}

// findMenuItem locates a menu entry by exact name, falling back to the
// Menu role for toolkits that report top-level menus that way.
func (n *NativeTree) findMenuItem(name string) (driver.Element, error) {
	for _, role := range []string{"MenuItem", "Menu"} {
		els, err := n.h.FindElements(driver.Query{Role: role, Name: name})
		if err != nil {
			return driver.Element{}, fmt.Errorf("find menu item %q: %w", name, err)
		}
		if len(els) > 0 {
			return els[0], nil
		}
	}
	return driver.Element{}, &MenuItemNotFoundError{Segment: name}
}

// IdentifyDialog polls for a dialog window in the control tree and
// classifies its contents.
func (n *NativeTree) IdentifyDialog(waitTimeout time.Duration) (DialogInfo, error) {
	deadline := time.Now().Add(waitTimeout)
	for {
		found, err := n.dialogPresent()
		if err != nil {
			return DialogInfo{}, err
		}
		if found {
			return n.analyzeDialog()
		}
		if !time.Now().Before(deadline) {
			n.lastFields = nil
			return DialogInfo{Kind: model.DialogNone}, nil
		}
		time.Sleep(pollInterval)
	}
}

func (n *NativeTree) dialogPresent() (bool, error) {
	windows, err := n.h.FindElements(driver.Query{Role: "Window"})
	if err != nil {
		return false, fmt.Errorf("poll for dialog: %w", err)
	}
	for _, w := range windows {
		if w.ClassName == dialogWindowClass || strings.Contains(w.Name, "Dialog") {
			return true, nil
		}
	}
	return false, nil
}

func (n *NativeTree) analyzeDialog() (DialogInfo, error) {
	var fields []driver.Element
	for _, role := range model.InputRoleOrder {
		els, err := n.h.FindElements(driver.Query{Role: role})
		if err != nil {
			return DialogInfo{}, fmt.Errorf("enumerate %s fields: %w", role, err)
		}
		fields = append(fields, els...)
	}
	buttons, err := n.h.FindElements(driver.Query{Role: "Button"})
	if err != nil {
		return DialogInfo{}, fmt.Errorf("enumerate buttons: %w", err)
	}

	n.lastFields = fields
	return DialogInfo{
		Kind:    classifyDialog(fields, buttons),
		Fields:  fields,
		Buttons: buttons,
	}, nil
}

// FillFormInputs writes values[i] into the i-th field of the most recently
// identified dialog. The count is validated before any field is touched.
func (n *NativeTree) FillFormInputs(values []string) error {
	fields := n.lastFields
	if fields == nil {
		info, err := n.analyzeDialog()
		if err != nil {
			return err
		}
		fields = info.Fields
	}
	if len(values) != len(fields) {
		return &FieldCountMismatchError{Expected: len(fields), Got: len(values)}
	}

	for i, value := range values {
		if err := n.h.SetValue(fields[i], value); err != nil {
			return fmt.Errorf("set field %d: %w", i+1, err)
		}
	}
	return nil
}
