package log

// ANSI escape sequences used to colorize console output.
const (
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
	colorReset  = "\033[0m"
)

// ErrorColorFormat wraps a message in bold red for fatal diagnostics.
const ErrorColorFormat = "\033[1;31m%s\033[0m"

// Yellow colorizes s for terminal output.
func Yellow(s string) string {
	return colorYellow + s + colorReset
}
