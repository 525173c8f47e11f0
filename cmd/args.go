package cmd

// CommandArgs contains the parsed invocation of a command.
type CommandArgs struct {
	// Positional arguments (command-specific)
	Args []string

	// Parsed flag values keyed by flag name
	Flags map[string]any

	// Raw unparsed arguments (for custom parsing)
	Raw []string
}

// String returns the value of a string flag, or fallback when unset.
func (ca *CommandArgs) String(name, fallback string) string {
	if value, ok := ca.Flags[name].(string); ok {
		return value
	}

	return fallback
}

// Int returns the value of an int flag, or fallback when unset.
func (ca *CommandArgs) Int(name string, fallback int64) int64 {
	if value, ok := ca.Flags[name].(int64); ok {
		return value
	}

	return fallback
}

// Bool returns the value of a bool flag, or false when unset.
func (ca *CommandArgs) Bool(name string) bool {
	value, ok := ca.Flags[name].(bool)
	return ok && value
}

// CommandFlagSet defines the expected flags for a command.
type CommandFlagSet struct {
	Flags map[string]*CommandFlag
}

// CommandFlag represents a single command-line flag.
type CommandFlag struct {
	Name        string `json:"name"`              // e.g., "version"
	Short       string `json:"short"`             // Single-char shorthand (e.g., "v")
	Type        string `json:"type"`              // "string", "bool", "int"
	Default     any    `json:"default,omitempty"` // Default value
	Required    bool   `json:"required"`          // Must be provided
	Description string `json:"description"`       // Help text
}
