package winappdriver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/winapp/winapp-cli/internal/driver"
	"github.com/winapp/winapp-cli/internal/model"
)

// session implements driver.Handle for one WinAppDriver session.
type session struct {
	client *Client
	id     string
	closed bool
}

// wireElement is how the JSON wire protocol references an element.
type wireElement struct {
	ID string `json:"ELEMENT"`
}

func (s *session) path(suffix string) string {
	return "/session/" + s.id + suffix
}

// WindowMetadata reads a fresh snapshot of the session's top-level window.
func (s *session) WindowMetadata() (model.WindowDescriptor, error) {
	var desc model.WindowDescriptor

	wire, err := s.client.do(http.MethodPost, s.path("/elements"), map[string]string{
		"using": "xpath",
		"value": "//Window",
	})
	if err != nil {
		return desc, fmt.Errorf("locate window element: %w", err)
	}
	var els []wireElement
	if err := json.Unmarshal(wire.Value, &els); err != nil {
		return desc, fmt.Errorf("decode window elements: %w", err)
	}
	if len(els) == 0 {
		return desc, fmt.Errorf("session has no window element")
	}

	root := els[0].ID
	desc.ClassName, _ = s.attribute(root, "ClassName")
	desc.FrameworkID, _ = s.attribute(root, "FrameworkId")
	desc.Title, _ = s.attribute(root, "Name")

	if desc.Title == "" {
		if wire, err := s.client.do(http.MethodGet, s.path("/title"), nil); err == nil {
			_ = json.Unmarshal(wire.Value, &desc.Title)
		}
	}
	return desc, nil
}

// FindElements locates elements matching q via an XPath query.
func (s *session) FindElements(q driver.Query) ([]driver.Element, error) {
	wire, err := s.client.do(http.MethodPost, s.path("/elements"), map[string]string{
		"using": "xpath",
		"value": queryToXPath(q),
	})
	if err != nil {
		return nil, fmt.Errorf("find elements: %w", err)
	}

	var els []wireElement
	if err := json.Unmarshal(wire.Value, &els); err != nil {
		return nil, fmt.Errorf("decode elements: %w", err)
	}

	result := make([]driver.Element, 0, len(els))
	for _, el := range els {
		e := driver.Element{ID: el.ID, Role: q.Role, Enabled: true}
		e.Name, _ = s.attribute(el.ID, "Name")
		if enabled, err := s.attribute(el.ID, "IsEnabled"); err == nil {
			e.Enabled = enabled != "false"
		}
		if q.Role == "" {
			e.Role, _ = s.attribute(el.ID, "ControlType")
		}
		result = append(result, e)
	}
	return result, nil
}

// ActiveElement returns the element that currently has keyboard focus.
func (s *session) ActiveElement() (driver.Element, error) {
	wire, err := s.client.do(http.MethodPost, s.path("/element/active"), nil)
	if err != nil {
		return driver.Element{}, fmt.Errorf("read active element: %w", err)
	}
	var el wireElement
	if err := json.Unmarshal(wire.Value, &el); err != nil {
		return driver.Element{}, fmt.Errorf("decode active element: %w", err)
	}
	e := driver.Element{ID: el.ID, Enabled: true}
	e.Name, _ = s.attribute(el.ID, "Name")
	return e, nil
}

// Invoke performs the element's default action.
func (s *session) Invoke(el driver.Element) error {
	if _, err := s.client.do(http.MethodPost, s.path("/element/"+el.ID+"/click"), struct{}{}); err != nil {
		return fmt.Errorf("invoke %q: %w", el.Name, err)
	}
	return nil
}

// SetValue clears the element and writes text through its value pattern.
func (s *session) SetValue(el driver.Element, text string) error {
	if _, err := s.client.do(http.MethodPost, s.path("/element/"+el.ID+"/clear"), struct{}{}); err != nil {
		return fmt.Errorf("clear %q: %w", el.Name, err)
	}
	if _, err := s.client.do(http.MethodPost, s.path("/element/"+el.ID+"/value"), map[string]interface{}{
		"value": []string{text},
	}); err != nil {
		return fmt.Errorf("set value on %q: %w", el.Name, err)
	}
	return nil
}

// SendKeys sends a raw keystroke sequence to the focused element.
func (s *session) SendKeys(keys string) error {
	if _, err := s.client.do(http.MethodPost, s.path("/keys"), map[string]interface{}{
		"value": []string{keys},
	}); err != nil {
		return fmt.Errorf("send keys: %w", err)
	}
	return nil
}

// Close deletes the driver-side session. Calling it again is a no-op.
func (s *session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if _, err := s.client.do(http.MethodDelete, "/session/"+s.id, nil); err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	return nil
}

// attribute reads a single element attribute as a string.
func (s *session) attribute(elementID, name string) (string, error) {
	wire, err := s.client.do(http.MethodGet, s.path("/element/"+elementID+"/attribute/"+name), nil)
	if err != nil {
		return "", err
	}
	var v string
	if err := json.Unmarshal(wire.Value, &v); err != nil {
		// Some attributes come back as non-string JSON values.
		return strings.Trim(string(wire.Value), `"`), nil
	}
	return v, nil
}

// queryToXPath converts a Query to the XPath dialect WinAppDriver accepts.
func queryToXPath(q driver.Query) string {
	var b strings.Builder
	b.WriteString("//")
	if q.Role != "" {
		b.WriteString(q.Role)
	} else {
		b.WriteString("*")
	}
	if q.Name != "" {
		fmt.Fprintf(&b, "[@Name=%s]", xpathLiteral(q.Name))
	}
	if q.ClassName != "" {
		fmt.Fprintf(&b, "[@ClassName=%s]", xpathLiteral(q.ClassName))
	}
	return b.String()
}

// xpathLiteral quotes a string for use in an XPath 1.0 expression, which
// has no escape sequences inside string literals.
func xpathLiteral(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	parts := strings.Split(s, "'")
	quoted := make([]string, len(parts))
	for i, p := range parts {
		quoted[i] = "'" + p + "'"
	}
	return "concat(" + strings.Join(quoted, `, "'", `) + ")"
}
