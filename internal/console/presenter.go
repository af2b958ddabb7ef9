// Package console holds everything that touches the terminal: the Presenter
// used to render prompts and diagnostics, and the line source prompts read from.
package console

// Presenter renders user-facing output. Callers pass plain text; styling is the
// implementation's business.
type Presenter interface {
	// Prompt writes text without a trailing newline, ready for input.
	Prompt(text string)
	// Header announces a new section, e.g. "User KYC".
	Header(title string)
	Info(msg string)
	Success(msg string)
	Error(msg string)
}
