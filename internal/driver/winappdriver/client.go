// Package winappdriver is a minimal WebDriver JSON-wire client for the
// Windows Application Driver. It implements the driver boundary; nothing
// outside this package knows about HTTP or the wire format.
package winappdriver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/winapp/winapp-cli/internal/driver"
	"github.com/winapp/winapp-cli/internal/model"
)

// DefaultServerURL is where WinAppDriver listens when started by hand.
const DefaultServerURL = "http://127.0.0.1:4723"

// Client talks to a running WinAppDriver instance.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the WinAppDriver endpoint at serverURL.
func New(serverURL string) *Client {
	if serverURL == "" {
		serverURL = DefaultServerURL
	}
	return &Client{
		baseURL: strings.TrimRight(serverURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// wireResponse is the JSON-wire envelope WinAppDriver wraps every reply in.
type wireResponse struct {
	SessionID string          `json:"sessionId"`
	Status    int             `json:"status"`
	Value     json.RawMessage `json:"value"`
}

type wireError struct {
	Message string `json:"message"`
}

func (c *Client) do(method, path string, body interface{}) (*wireResponse, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("winappdriver request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read winappdriver response: %w", err)
	}

	var wire wireResponse
	if len(data) > 0 {
		if err := json.Unmarshal(data, &wire); err != nil {
			return nil, fmt.Errorf("decode winappdriver response: %w", err)
		}
	}

	if resp.StatusCode >= 400 || wire.Status != 0 {
		var we wireError
		_ = json.Unmarshal(wire.Value, &we)
		if we.Message == "" {
			we.Message = fmt.Sprintf("http %d", resp.StatusCode)
		}
		return &wire, fmt.Errorf("winappdriver: %s", we.Message)
	}
	return &wire, nil
}

// newSession creates a driver session with the given capabilities.
func (c *Client) newSession(caps map[string]interface{}) (*session, error) {
	wire, err := c.do(http.MethodPost, "/session", map[string]interface{}{
		"desiredCapabilities": caps,
	})
	if err != nil {
		return nil, err
	}
	if wire.SessionID == "" {
		return nil, fmt.Errorf("winappdriver returned no session id")
	}
	return &session{client: c, id: wire.SessionID}, nil
}

// OpenSession attaches to the target window. An identifier that looks like
// an executable path launches the application; anything else is treated as
// a window title and attached to via its native window handle, the same way
// the desktop root session does it.
func (c *Client) OpenSession(appIdentifier string) (driver.Handle, error) {
	caps := map[string]interface{}{
		"platformName": "Windows",
		"deviceName":   "WindowsPC",
	}

	if looksLikeExecutable(appIdentifier) {
		caps["app"] = appIdentifier
		caps["ms:waitForAppLaunch"] = "1"
		s, err := c.newSession(caps)
		if err != nil {
			return nil, &driver.ConnectionError{Target: appIdentifier, Err: err}
		}
		return s, nil
	}

	hwnd, err := c.findWindowHandle(appIdentifier)
	if err != nil {
		return nil, &driver.ConnectionError{Target: appIdentifier, Err: err}
	}
	caps["appTopLevelWindow"] = hwnd
	s, err := c.newSession(caps)
	if err != nil {
		return nil, &driver.ConnectionError{Target: appIdentifier, Err: err}
	}
	return s, nil
}

// findWindowHandle resolves a window title substring to a native window
// handle via a temporary desktop root session.
func (c *Client) findWindowHandle(title string) (string, error) {
	root, err := c.newSession(map[string]interface{}{
		"platformName": "Windows",
		"deviceName":   "WindowsPC",
		"app":          "Root",
	})
	if err != nil {
		return "", fmt.Errorf("open desktop root session: %w", err)
	}
	defer root.Close()

	windows, err := root.FindElements(driver.Query{Role: "Window"})
	if err != nil {
		return "", fmt.Errorf("enumerate desktop windows: %w", err)
	}
	for _, w := range windows {
		if !strings.Contains(strings.ToLower(w.Name), strings.ToLower(title)) {
			continue
		}
		raw, err := root.attribute(w.ID, "NativeWindowHandle")
		if err != nil || raw == "" {
			continue
		}
		// WinAppDriver reports the handle in decimal but expects hex back.
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			continue
		}
		return fmt.Sprintf("0x%X", n), nil
	}
	return "", fmt.Errorf("no visible window matches title %q", title)
}

// ListWindows enumerates the desktop's top-level windows.
func (c *Client) ListWindows() ([]model.Window, error) {
	root, err := c.newSession(map[string]interface{}{
		"platformName": "Windows",
		"deviceName":   "WindowsPC",
		"app":          "Root",
	})
	if err != nil {
		return nil, fmt.Errorf("open desktop root session: %w", err)
	}
	defer root.Close()

	elements, err := root.FindElements(driver.Query{Role: "Window"})
	if err != nil {
		return nil, fmt.Errorf("enumerate desktop windows: %w", err)
	}

	var windows []model.Window
	for _, el := range elements {
		if strings.TrimSpace(el.Name) == "" {
			continue
		}
		w := model.Window{Title: el.Name}
		if class, err := root.attribute(el.ID, "ClassName"); err == nil {
			w.ClassName = class
		}
		if hwnd, err := root.attribute(el.ID, "NativeWindowHandle"); err == nil {
			w.Handle = hwnd
		}
		windows = append(windows, w)
	}
	return windows, nil
}

// looksLikeExecutable reports whether the identifier is an application path
// rather than a window title.
func looksLikeExecutable(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasSuffix(lower, ".exe") ||
		strings.ContainsAny(s, `\/`) ||
		strings.HasPrefix(lower, "microsoft.") // UWP app IDs like Microsoft.WindowsCalculator_...!App
}
