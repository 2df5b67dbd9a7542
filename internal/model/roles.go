package model

// RoleMap maps UI Automation control-type names to compact role codes.
var RoleMap = map[string]string{
	"Edit":     "input",
	"Document": "input",
	"ComboBox": "input",
	"Button":   "btn",
	"Text":     "txt",
	"MenuBar":  "menu",
	"Menu":     "menu",
	"MenuItem": "menuitem",
	"Window":   "window",
	"Pane":     "group",
	"Group":    "group",
	"List":     "list",
	"ListItem": "row",
	"Tree":     "list",
	"TreeItem": "row",
	"CheckBox": "chk",
	"TabItem":  "tab",
}

// InputRoles are the control types counted as form input fields during
// dialog classification.
var InputRoles = map[string]bool{
	"Edit":     true,
	"ComboBox": true,
	"Document": true,
}

// InputRoleOrder fixes the enumeration order of input roles so a form
// field keeps the same position across repeated enumerations.
var InputRoleOrder = []string{"Edit", "ComboBox", "Document"}

// MapRole converts a raw control-type name to a compact code.
func MapRole(controlType string) string {
	if short, ok := RoleMap[controlType]; ok {
		return short
	}
	return "other"
}
