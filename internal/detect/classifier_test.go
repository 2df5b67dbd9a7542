package detect

import (
	"testing"

	"github.com/winapp/winapp-cli/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		desc model.WindowDescriptor
		want model.ApplicationType
	}{
		{"java awt frame", model.WindowDescriptor{ClassName: "SunAwtFrame"}, model.AppJava},
		{"java marker embedded", model.WindowDescriptor{ClassName: "MyJavaWindow"}, model.AppJava},
		{"wpf", model.WindowDescriptor{ClassName: "HwndWrapper[App.exe;;]", FrameworkID: "WPF"}, model.AppDotNetWPF},
		{"winforms", model.WindowDescriptor{ClassName: "WindowsForms10.Window", FrameworkID: "WinForm"}, model.AppDotNetWinForms},
		{"uwp", model.WindowDescriptor{ClassName: "ApplicationFrameWindow", FrameworkID: "XAML"}, model.AppUWP},
		{"win32 dialog class", model.WindowDescriptor{ClassName: "#32770"}, model.AppWin32},
		{"win32 notepad", model.WindowDescriptor{ClassName: "Notepad", FrameworkID: "Win32"}, model.AppWin32},
		{"empty descriptor", model.WindowDescriptor{}, model.AppUnknown},
		{"unrecognized", model.WindowDescriptor{ClassName: "Chrome_WidgetWin_1"}, model.AppUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.desc); got != tt.want {
				t.Errorf("Classify(%+v) = %v, want %v", tt.desc, got, tt.want)
			}
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	d := model.WindowDescriptor{ClassName: "#32770", FrameworkID: "WPF"}
	first := Classify(d)
	for i := 0; i < 10; i++ {
		if got := Classify(d); got != first {
			t.Fatalf("Classify not deterministic: %v then %v", first, got)
		}
	}
}

// A window matching both the Java class marker and a WPF framework ID must
// resolve to Java, because that rule is evaluated first.
func TestClassify_JavaBeatsWPF(t *testing.T) {
	d := model.WindowDescriptor{ClassName: "SunAwtFrame", FrameworkID: "WPF"}
	if got := Classify(d); got != model.AppJava {
		t.Errorf("adversarial descriptor = %v, want AppJava", got)
	}
}

// Win32 class names lose to any recognized framework ID.
func TestClassify_FrameworkIDBeatsWin32Class(t *testing.T) {
	d := model.WindowDescriptor{ClassName: "Edit", FrameworkID: "WPF"}
	if got := Classify(d); got != model.AppDotNetWPF {
		t.Errorf("descriptor with WPF framework = %v, want AppDotNetWPF", got)
	}
}
