package strategy

import (
	"github.com/winapp/winapp-cli/internal/driver"
	"github.com/winapp/winapp-cli/internal/model"
)

// dialogRule is one classification step. Rules are checked in priority
// order and the first match wins; adding a new dialog kind means appending
// a rule, not touching the existing ones.
type dialogRule struct {
	kind    model.DialogKind
	matches func(inputs, buttons int) bool
}

var dialogRules = []dialogRule{
	{model.DialogMultiInputForm, func(inputs, _ int) bool { return inputs >= 2 }},
	{model.DialogSingleInputForm, func(inputs, _ int) bool { return inputs == 1 }},
	{model.DialogButtonDialog, func(inputs, buttons int) bool { return inputs == 0 && buttons >= 1 }},
}

// classifyDialog assigns a kind from the enumerated fields and buttons of a
// detected dialog. DialogUnknown is the exhaustive fallback for dialogs
// whose enumeration yields nothing recognizable; DialogNone is only
// produced by the polling layer when no dialog appears at all.
func classifyDialog(fields, buttons []driver.Element) model.DialogKind {
	for _, r := range dialogRules {
		if r.matches(len(fields), len(buttons)) {
			return r.kind
		}
	}
	return model.DialogUnknown
}
