// Package detect maps window metadata to an application technology tag.
package detect

import (
	"strings"

	"github.com/winapp/winapp-cli/internal/model"
)

// Framework identifiers exposed by the UI Automation layer.
const (
	frameworkWPF      = "WPF"
	frameworkWinForms = "WinForm"
	frameworkXAML     = "XAML"
)

// javaClassMarkers appear in the window class of Java AWT/Swing frames.
var javaClassMarkers = []string{"SunAwtFrame", "SunAwt", "Java"}

// win32ClassMarkers are classic Win32 window classes: the common dialog
// class plus stock control and application classes.
var win32ClassMarkers = []string{"#32770", "Notepad", "CalcFrame", "Edit", "Button", "Static"}

// rule is one detection step; rules are evaluated in order and the first
// match wins, so overlapping markers resolve deterministically.
type rule struct {
	appType model.ApplicationType
	matches func(d model.WindowDescriptor) bool
}

var rules = []rule{
	{model.AppJava, func(d model.WindowDescriptor) bool {
		return containsAny(d.ClassName, javaClassMarkers)
	}},
	{model.AppDotNetWPF, func(d model.WindowDescriptor) bool {
		return d.FrameworkID == frameworkWPF
	}},
	{model.AppDotNetWinForms, func(d model.WindowDescriptor) bool {
		return d.FrameworkID == frameworkWinForms
	}},
	{model.AppUWP, func(d model.WindowDescriptor) bool {
		return d.FrameworkID == frameworkXAML
	}},
	{model.AppWin32, func(d model.WindowDescriptor) bool {
		return containsAny(d.ClassName, win32ClassMarkers)
	}},
}

// Classify derives the application type from a window descriptor. It is
// pure and total: any descriptor maps to exactly one type, falling back to
// AppUnknown rather than failing.
func Classify(d model.WindowDescriptor) model.ApplicationType {
	for _, r := range rules {
		if r.matches(d) {
			return r.appType
		}
	}
	return model.AppUnknown
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
