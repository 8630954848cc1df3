package tools

// Status captures the resolved state for a tool.
type Status struct {
	Tool      string `json:"tool"`
	Version   string `json:"version,omitempty"`
	Minimum   string `json:"minimum,omitempty"`
	Path      string `json:"path,omitempty"`
	Available bool   `json:"available"`
	Satisfied bool   `json:"satisfied"`
	Error     string `json:"error,omitempty"`
}

// ToolDefinition contains what is needed to probe a tool.
type ToolDefinition struct {
	Name           string
	MinimumVersion string
	VersionSwitch  string
}
