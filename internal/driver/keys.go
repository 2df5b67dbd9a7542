package driver

import "strings"

// WebDriver key encoding. Modifier keys toggle until KeyNull resets the
// keyboard state, so a chord like Alt+F is "KeyAlt + f + KeyNull".
const (
	KeyNull   = "\uE000"
	KeyTab    = "\uE004"
	KeyEnter  = "\uE007"
	KeyShift  = "\uE008"
	KeyCtrl   = "\uE009"
	KeyAlt    = "\uE00A"
	KeyEscape = "\uE00C"
	KeyUp     = "\uE013"
	KeyDown   = "\uE015"
	KeyF1     = "\uE031"
)

// namedKeys maps lower-case key names from navigation paths to their
// WebDriver encodings.
var namedKeys = map[string]string{
	"alt":    KeyAlt,
	"ctrl":   KeyCtrl,
	"shift":  KeyShift,
	"enter":  KeyEnter,
	"return": KeyEnter,
	"tab":    KeyTab,
	"escape": KeyEscape,
	"esc":    KeyEscape,
	"up":     KeyUp,
	"down":   KeyDown,
	"f1":     KeyF1,
}

// EncodeKey converts a key name to its WebDriver encoding. Single
// characters pass through unchanged; unknown multi-character names return
// false.
func EncodeKey(name string) (string, bool) {
	lower := strings.ToLower(name)
	if k, ok := namedKeys[lower]; ok {
		return k, true
	}
	if len([]rune(name)) == 1 {
		return lower, true
	}
	return "", false
}

// Chord encodes a modifier combination such as ["alt","f"] as a single
// keystroke sequence, releasing all modifiers at the end.
func Chord(keys ...string) string {
	var b strings.Builder
	for _, k := range keys {
		enc, ok := EncodeKey(k)
		if !ok {
			continue
		}
		b.WriteString(enc)
	}
	b.WriteString(KeyNull)
	return b.String()
}
