package model

// WindowDescriptor is a static snapshot of a connected window's metadata.
// It is read fresh from the driver on demand and never cached across calls,
// because the underlying UI can change between reads.
type WindowDescriptor struct {
	ClassName   string `yaml:"class_name"             json:"class_name"`
	FrameworkID string `yaml:"framework_id,omitempty" json:"framework_id,omitempty"`
	Title       string `yaml:"title,omitempty"        json:"title,omitempty"`
}

// Window describes a top-level window available for automation.
type Window struct {
	Title     string `yaml:"title"                json:"title"`
	ClassName string `yaml:"class_name,omitempty" json:"class_name,omitempty"`
	Handle    string `yaml:"handle,omitempty"     json:"handle,omitempty"`
}
