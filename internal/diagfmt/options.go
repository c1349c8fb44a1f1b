package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto chooses relative or absolute path automatically.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures pretty-printing of issues.
type PrettyOpts struct {
	Color       bool
	PathMode    PathMode
	ShowSource  bool // print the offending line with a caret underline
	ShowContext bool // print the flattened context snippet
	ShowNotes   bool
}

// JSONOpts configures JSON output of issues.
type JSONOpts struct {
	IncludePositions bool // add line/col alongside byte offsets
	PathMode         PathMode
	Max              int // output truncation only, the Bag is untouched
	IncludeNotes     bool
	IncludeContext   bool
}

// SarifRunMeta provides metadata for SARIF output.
type SarifRunMeta struct {
	ToolName       string
	ToolVersion    string
	InvocationArgs []string
}
