package model

// DialogKind classifies a transient top-level window by what it asks of the
// user.
type DialogKind string

const (
	DialogMultiInputForm  DialogKind = "multi_input_form"
	DialogSingleInputForm DialogKind = "single_input_form"
	DialogButtonDialog    DialogKind = "button_dialog"
	DialogNone            DialogKind = "none"
	DialogUnknown         DialogKind = "unknown"
)
