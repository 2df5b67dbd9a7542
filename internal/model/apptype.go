package model

// ApplicationType identifies the GUI technology behind a connected window.
// It is derived once from a WindowDescriptor and never changes for the
// lifetime of a session.
type ApplicationType int

const (
	AppUnknown ApplicationType = iota
	AppJava
	AppDotNetWPF
	AppDotNetWinForms
	AppUWP
	AppWin32
)

func (t ApplicationType) String() string {
	switch t {
	case AppJava:
		return "java"
	case AppDotNetWPF:
		return "dotnet_wpf"
	case AppDotNetWinForms:
		return "dotnet_winforms"
	case AppUWP:
		return "uwp"
	case AppWin32:
		return "win32"
	default:
		return "unknown"
	}
}
