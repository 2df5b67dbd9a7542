package navpath

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []Step
	}{
		{
			name: "chord then label",
			path: "{Alt+F} -> Create Project",
			want: []Step{
				{Kind: StepKeys, Keys: []string{"Alt", "F"}, Repeat: 1},
				{Kind: StepText, Text: "Create Project"},
			},
		},
		{
			name: "plain menu path",
			path: "File -> New -> Project",
			want: []Step{
				{Kind: StepText, Text: "File"},
				{Kind: StepText, Text: "New"},
				{Kind: StepText, Text: "Project"},
			},
		},
		{
			name: "repeated key",
			path: "{Down 3} -> {Enter}",
			want: []Step{
				{Kind: StepKeys, Keys: []string{"Down"}, Repeat: 3},
				{Kind: StepKeys, Keys: []string{"Enter"}, Repeat: 1},
			},
		},
		{
			name: "single step",
			path: "{Escape}",
			want: []Step{
				{Kind: StepKeys, Keys: []string{"Escape"}, Repeat: 1},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.path)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.path, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tt.path, got, tt.want)
			}
			for i, step := range got {
				w := tt.want[i]
				if step.Kind != w.Kind || step.Text != w.Text || step.Repeat != w.Repeat {
					t.Errorf("step %d = %+v, want %+v", i, step, w)
				}
				if len(step.Keys) != len(w.Keys) {
					t.Errorf("step %d keys = %v, want %v", i, step.Keys, w.Keys)
					continue
				}
				for j := range step.Keys {
					if step.Keys[j] != w.Keys[j] {
						t.Errorf("step %d keys = %v, want %v", i, step.Keys, w.Keys)
						break
					}
				}
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"unclosed brace", "{Alt+F -> New"},
		{"stray closing brace", "Alt+F} -> New"},
		{"empty braces", "{}"},
		{"empty segment", "File -> -> New"},
		{"unknown key", "{Hyper+F}"},
		{"bad repeat count", "{Down x}"},
		{"zero repeat", "{Down 0}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.path); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tt.path)
			}
		})
	}
}
