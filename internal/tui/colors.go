package tui

// Color constants for the servicenote TUI theme
const (
	// Base Colors
	ColorCardBackground = "#10231F" // Deep teal
	ColorBorder         = "#2F4A45" // Grey-green

	// Text Colors
	ColorPrimaryText   = "#E8F1EF" // Labels, user input, titles
	ColorSecondaryText = "#A9BDB8" // Secondary text
	ColorDisabledText  = "#66797A" // Muted text
	ColorPlaceholder   = "#A9BDB8"
	ColorHelpText      = "240" // Dark grey for help text

	// Accent Colors
	ColorAccentMain   = "#0F9D8A" // Headings, active borders
	ColorAccentBright = "#5EEAD4" // Selection, current field

	// State Colors
	ColorError   = "#EF4444"
	ColorSuccess = "#22C55E"
	ColorWarning = "#F59E0B"
)
