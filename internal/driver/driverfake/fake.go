// Package driverfake provides an in-memory driver implementation for
// tests. Strategy, session, and server tests share it instead of each
// spinning up their own stubs.
package driverfake

import (
	"fmt"
	"strings"

	"github.com/winapp/winapp-cli/internal/driver"
	"github.com/winapp/winapp-cli/internal/model"
)

// Driver is a scriptable driver.Driver.
type Driver struct {
	handles map[string]*Handle
	OpenErr error
	Opened  []string
}

func New() *Driver {
	return &Driver{handles: make(map[string]*Handle)}
}

// Register makes h the handle returned for appIdentifier.
func (d *Driver) Register(appIdentifier string, h *Handle) {
	d.handles[appIdentifier] = h
}

func (d *Driver) OpenSession(appIdentifier string) (driver.Handle, error) {
	d.Opened = append(d.Opened, appIdentifier)
	if d.OpenErr != nil {
		return nil, &driver.ConnectionError{Target: appIdentifier, Err: d.OpenErr}
	}
	h, ok := d.handles[appIdentifier]
	if !ok {
		return nil, &driver.ConnectionError{Target: appIdentifier, Err: fmt.Errorf("no such window")}
	}
	return h, nil
}

func (d *Driver) ListWindows() ([]model.Window, error) {
	var windows []model.Window
	for _, h := range d.handles {
		windows = append(windows, model.Window{
			Title:     h.Descriptor.Title,
			ClassName: h.Descriptor.ClassName,
		})
	}
	return windows, nil
}

// Handle is a scriptable driver.Handle backed by a flat element list.
type Handle struct {
	Descriptor  model.WindowDescriptor
	MetadataErr error

	// Elements is the current control tree, in tree order. Tests mutate it
	// (directly or via the hooks below) to simulate UI changes.
	Elements []driver.Element

	// ActiveNames is the sequence of focused-element names returned by
	// successive ActiveElement calls; the last entry is sticky. Used to
	// script keyboard menu scans.
	ActiveNames []string
	activeCalls int

	// OnSendKeys, OnInvoke, and OnFindElements let tests mutate the tree in
	// response to activity, e.g. a menu invoke that makes a dialog appear.
	OnSendKeys     func(h *Handle, keys string)
	OnInvoke       func(h *Handle, el driver.Element)
	OnFindElements func(h *Handle)

	Keystrokes  []string
	Invoked     []string
	Values      map[string]string
	SetValueErr map[string]error

	CloseCount int
	CloseErr   error
}

func (h *Handle) WindowMetadata() (model.WindowDescriptor, error) {
	if h.MetadataErr != nil {
		return model.WindowDescriptor{}, h.MetadataErr
	}
	return h.Descriptor, nil
}

func (h *Handle) FindElements(q driver.Query) ([]driver.Element, error) {
	if h.OnFindElements != nil {
		h.OnFindElements(h)
	}
	var result []driver.Element
	for _, el := range h.Elements {
		if q.Role != "" && el.Role != q.Role {
			continue
		}
		if q.Name != "" && el.Name != q.Name {
			continue
		}
		if q.ClassName != "" && el.ClassName != q.ClassName {
			continue
		}
		result = append(result, el)
	}
	return result, nil
}

func (h *Handle) ActiveElement() (driver.Element, error) {
	if len(h.ActiveNames) == 0 {
		return driver.Element{}, nil
	}
	i := h.activeCalls
	if i >= len(h.ActiveNames) {
		i = len(h.ActiveNames) - 1
	}
	h.activeCalls++
	return driver.Element{Name: h.ActiveNames[i], Enabled: true}, nil
}

func (h *Handle) Invoke(el driver.Element) error {
	h.Invoked = append(h.Invoked, el.Name)
	if h.OnInvoke != nil {
		h.OnInvoke(h, el)
	}
	return nil
}

func (h *Handle) SetValue(el driver.Element, text string) error {
	if err := h.SetValueErr[el.ID]; err != nil {
		return err
	}
	if h.Values == nil {
		h.Values = make(map[string]string)
	}
	h.Values[el.ID] = text
	return nil
}

func (h *Handle) SendKeys(keys string) error {
	h.Keystrokes = append(h.Keystrokes, keys)
	if h.OnSendKeys != nil {
		h.OnSendKeys(h, keys)
	}
	return nil
}

func (h *Handle) Close() error {
	h.CloseCount++
	return h.CloseErr
}

// SentKeys reports whether any recorded keystroke sequence contains the
// given encoded key.
func (h *Handle) SentKeys(key string) bool {
	for _, k := range h.Keystrokes {
		if strings.Contains(k, key) {
			return true
		}
	}
	return false
}
