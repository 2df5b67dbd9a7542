package strategy

import (
	"errors"
	"testing"
	"time"

	"github.com/winapp/winapp-cli/internal/driver"
	"github.com/winapp/winapp-cli/internal/driver/driverfake"
	"github.com/winapp/winapp-cli/internal/model"
)

func TestNativeTree_NavigateMenu(t *testing.T) {
	h := &driverfake.Handle{
		Elements: []driver.Element{
			{ID: "m1", Role: "MenuItem", Name: "File"},
			{ID: "m2", Role: "MenuItem", Name: "New Project"},
			{ID: "m3", Role: "MenuItem", Name: "Exit"},
		},
	}
	n := NewNativeTree(h)

	if err := n.NavigateMenu([]string{"File"}, "New Project"); err != nil {
		t.Fatalf("NavigateMenu failed: %v", err)
	}
	want := []string{"File", "New Project"}
	if len(h.Invoked) != len(want) {
		t.Fatalf("invoked %v, want %v", h.Invoked, want)
	}
	for i, name := range want {
		if h.Invoked[i] != name {
			t.Errorf("invoked[%d] = %q, want %q", i, h.Invoked[i], name)
		}
	}
}

func TestNativeTree_NavigateMenuFallsBackToMenuRole(t *testing.T) {
	h := &driverfake.Handle{
		Elements: []driver.Element{
			{ID: "m1", Role: "Menu", Name: "File"},
			{ID: "m2", Role: "MenuItem", Name: "Exit"},
		},
	}
	n := NewNativeTree(h)

	if err := n.NavigateMenu([]string{"File"}, "Exit"); err != nil {
		t.Fatalf("NavigateMenu failed: %v", err)
	}
	if len(h.Invoked) != 2 || h.Invoked[0] != "File" {
		t.Errorf("invoked %v, want [File Exit]", h.Invoked)
	}
}

func TestNativeTree_NavigateMenuSegmentNotFound(t *testing.T) {
	h := &driverfake.Handle{
		Elements: []driver.Element{
			{ID: "m1", Role: "MenuItem", Name: "File"},
		},
	}
	n := NewNativeTree(h)

	err := n.NavigateMenu([]string{"File", "Recent"}, "Old Project")
	var notFound *MenuItemNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want MenuItemNotFoundError", err)
	}
	if notFound.Segment != "Recent" {
		t.Errorf("Segment = %q, want %q", notFound.Segment, "Recent")
	}
	if len(h.Invoked) != 1 {
		t.Errorf("invoked %v, want only the segments before the failure", h.Invoked)
	}
}

func TestNativeTree_IdentifyDialogZeroTimeout(t *testing.T) {
	h := &driverfake.Handle{
		Elements: []driver.Element{{Role: "Window", Name: "Main", ClassName: "Window"}},
	}
	n := NewNativeTree(h)

	info, err := n.IdentifyDialog(0)
	if err != nil {
		t.Fatal(err)
	}
	if info.Kind != model.DialogNone {
		t.Errorf("Kind = %q, want %q", info.Kind, model.DialogNone)
	}
}

func TestNativeTree_IdentifyDialogByWindowClass(t *testing.T) {
	h := &driverfake.Handle{
		Elements: []driver.Element{
			{Role: "Window", Name: "Main", ClassName: "Window"},
			{Role: "Window", Name: "Save As", ClassName: "#32770"},
			{ID: "f1", Role: "Edit", Name: "File name"},
			{ID: "b1", Role: "Button", Name: "Save"},
			{ID: "b2", Role: "Button", Name: "Cancel"},
		},
	}
	n := NewNativeTree(h)

	info, err := n.IdentifyDialog(time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if info.Kind != model.DialogSingleInputForm {
		t.Errorf("Kind = %q, want %q", info.Kind, model.DialogSingleInputForm)
	}
	if len(info.Fields) != 1 || len(info.Buttons) != 2 {
		t.Errorf("fields/buttons = %d/%d, want 1/2", len(info.Fields), len(info.Buttons))
	}
}

func TestNativeTree_IdentifyDialogByName(t *testing.T) {
	h := &driverfake.Handle{
		Elements: []driver.Element{
			{Role: "Window", Name: "Confirm Dialog", ClassName: "XamlWindow"},
			{ID: "b1", Role: "Button", Name: "Yes"},
			{ID: "b2", Role: "Button", Name: "No"},
		},
	}
	n := NewNativeTree(h)

	info, err := n.IdentifyDialog(time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if info.Kind != model.DialogButtonDialog {
		t.Errorf("Kind = %q, want %q", info.Kind, model.DialogButtonDialog)
	}
}

func TestNativeTree_FillFormInputs(t *testing.T) {
	h := &driverfake.Handle{
		Elements: []driver.Element{
			{Role: "Window", Name: "New Project", ClassName: "#32770"},
			{ID: "f1", Role: "Edit", Name: "Name"},
			{ID: "f2", Role: "ComboBox", Name: "Template"},
			{ID: "b1", Role: "Button", Name: "Create"},
		},
	}
	n := NewNativeTree(h)

	if _, err := n.IdentifyDialog(time.Second); err != nil {
		t.Fatal(err)
	}
	if err := n.FillFormInputs([]string{"demo", "Console App"}); err != nil {
		t.Fatalf("FillFormInputs failed: %v", err)
	}
	if h.Values["f1"] != "demo" {
		t.Errorf("Values[f1] = %q, want %q", h.Values["f1"], "demo")
	}
	if h.Values["f2"] != "Console App" {
		t.Errorf("Values[f2] = %q, want %q", h.Values["f2"], "Console App")
	}
}

func TestNativeTree_FillFormInputsCountMismatch(t *testing.T) {
	h := &driverfake.Handle{
		Elements: []driver.Element{
			{ID: "f1", Role: "Edit"},
			{ID: "f2", Role: "Edit"},
		},
	}
	n := NewNativeTree(h)

	err := n.FillFormInputs([]string{"a", "b", "c"})
	var mismatch *FieldCountMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("err = %v, want FieldCountMismatchError", err)
	}
	if mismatch.Expected != 2 || mismatch.Got != 3 {
		t.Errorf("mismatch = {%d, %d}, want {2, 3}", mismatch.Expected, mismatch.Got)
	}
	if len(h.Values) != 0 {
		t.Errorf("values written despite count mismatch: %v", h.Values)
	}
}
