// Package navpath parses navigation path notation like
// "{Alt+F} -> Create Project -> {Down 2} -> {Enter}". Brace steps are
// keystrokes; bare steps are menu item labels matched by focus scanning.
package navpath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/winapp/winapp-cli/internal/driver"
)

// StepKind distinguishes keystroke steps from label steps.
type StepKind int

const (
	// StepKeys presses a key or chord, possibly repeated.
	StepKeys StepKind = iota
	// StepText scans the focused menu item until it matches a label.
	StepText
)

// Step is one segment of a parsed navigation path.
type Step struct {
	Kind   StepKind
	Text   string   // label for StepText
	Keys   []string // key names for StepKeys, chord order
	Repeat int      // press count for StepKeys, at least 1
}

// Parse splits a path on "->" and parses each segment. Brace segments
// accept "{Key}", "{Mod+Key}", and "{Key N}" forms; key names must be
// known to the keyboard encoding.
func Parse(path string) ([]Step, error) {
	var steps []Step
	for _, raw := range strings.Split(path, "->") {
		seg := strings.TrimSpace(raw)
		if seg == "" {
			return nil, fmt.Errorf("empty path segment in %q", path)
		}
		step, err := parseSegment(seg)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func parseSegment(seg string) (Step, error) {
	if !strings.HasPrefix(seg, "{") {
		if strings.ContainsAny(seg, "{}") {
			return Step{}, fmt.Errorf("malformed segment %q: stray brace", seg)
		}
		return Step{Kind: StepText, Text: seg}, nil
	}
	if !strings.HasSuffix(seg, "}") {
		return Step{}, fmt.Errorf("malformed segment %q: unclosed brace", seg)
	}
	inner := strings.TrimSpace(seg[1 : len(seg)-1])
	if inner == "" {
		return Step{}, fmt.Errorf("malformed segment %q: empty braces", seg)
	}
	if strings.ContainsAny(inner, "{}") {
		return Step{}, fmt.Errorf("malformed segment %q: nested brace", seg)
	}

	step := Step{Kind: StepKeys, Repeat: 1}

	// "{Down 3}" repeats a single key.
	if name, count, ok := strings.Cut(inner, " "); ok {
		n, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil || n < 1 {
			return Step{}, fmt.Errorf("malformed segment %q: bad repeat count", seg)
		}
		step.Keys = []string{strings.TrimSpace(name)}
		step.Repeat = n
	} else {
		step.Keys = strings.Split(inner, "+")
		for i := range step.Keys {
			step.Keys[i] = strings.TrimSpace(step.Keys[i])
		}
	}

	for _, k := range step.Keys {
		if _, ok := driver.EncodeKey(k); !ok {
			return Step{}, fmt.Errorf("unknown key %q in segment %q", k, seg)
		}
	}
	return step, nil
}
