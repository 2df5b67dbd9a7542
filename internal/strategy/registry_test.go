package strategy

import (
	"errors"
	"testing"

	"github.com/winapp/winapp-cli/internal/driver/driverfake"
	"github.com/winapp/winapp-cli/internal/model"
)

func TestRegistry_ResolveCoversAllBuiltInTypes(t *testing.T) {
	r := NewRegistry()
	h := &driverfake.Handle{}

	all := []model.ApplicationType{
		model.AppUnknown,
		model.AppJava,
		model.AppDotNetWPF,
		model.AppDotNetWinForms,
		model.AppUWP,
		model.AppWin32,
	}
	for _, typ := range all {
		s, err := r.Resolve(typ, h)
		if err != nil {
			t.Errorf("Resolve(%s) failed: %v", typ, err)
		}
		if s == nil {
			t.Errorf("Resolve(%s) returned nil strategy", typ)
		}
	}
}

func TestRegistry_ResolveUnknownTag(t *testing.T) {
	r := NewRegistry()
	_, err := r.Resolve(model.ApplicationType(99), &driverfake.Handle{})
	if !errors.Is(err, ErrUnsupportedApplicationType) {
		t.Fatalf("err = %v, want ErrUnsupportedApplicationType", err)
	}
}

func TestRegistry_StrategySelection(t *testing.T) {
	r := NewRegistry()
	h := &driverfake.Handle{}

	tests := []struct {
		typ          model.ApplicationType
		wantKeyboard bool
	}{
		{model.AppJava, true},
		{model.AppWin32, true},
		{model.AppUnknown, true},
		{model.AppDotNetWPF, false},
		{model.AppDotNetWinForms, false},
		{model.AppUWP, false},
	}
	for _, tt := range tests {
		s, err := r.Resolve(tt.typ, h)
		if err != nil {
			t.Fatalf("Resolve(%s): %v", tt.typ, err)
		}
		_, isKeyboard := s.(*Keyboard)
		if isKeyboard != tt.wantKeyboard {
			t.Errorf("Resolve(%s): keyboard = %v, want %v", tt.typ, isKeyboard, tt.wantKeyboard)
		}
	}
}

func TestRegistry_RegisterOverride(t *testing.T) {
	r := NewRegistry()
	r.Register(model.AppJava, NewNativeTree)

	s, err := r.Resolve(model.AppJava, &driverfake.Handle{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*NativeTree); !ok {
		t.Errorf("override not applied, got %T", s)
	}
}
