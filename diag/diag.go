// Package diag implements the compiler's diagnostic reporting policy:
// every error is fatal. There is no multi-error accumulation and no
// recovery — the first diagnostic reported terminates the process, matching
// the terminate-on-first-error discipline of the system this front end was
// modeled on.
package diag

import (
	"fmt"
	"os"
)

// Kind classifies where in the pipeline a diagnostic originated.
type Kind int

const (
	Syntax Kind = iota
	Semantic
	Codegen
	Internal
)

func (k Kind) String() string {
	switch k {
	case Syntax:
		return "syntax error"
	case Semantic:
		return "semantic error"
	case Codegen:
		return "codegen error"
	case Internal:
		return "internal error"
	default:
		return "error"
	}
}

// Location pinpoints where a diagnostic occurred. Any field may be the
// zero value when not applicable (e.g. File is empty for an error raised
// before a source file is known).
type Location struct {
	File      string
	Class     string
	Row, Col  int
	TokenText string
}

// Error is a structured, fatal compiler diagnostic.
type Error struct {
	Kind     Kind
	Message  string
	Location *Location
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.Location == nil {
		return msg
	}
	loc := e.Location
	if loc.File != "" {
		msg += fmt.Sprintf(" (%s", loc.File)
		if loc.Class != "" {
			msg += fmt.Sprintf(", class %s", loc.Class)
		}
		if loc.Row != 0 {
			msg += fmt.Sprintf(", line %d, col %d", loc.Row, loc.Col)
		}
		if loc.TokenText != "" {
			msg += fmt.Sprintf(", near %q", loc.TokenText)
		}
		msg += ")"
	}
	return msg
}

// Report prints a formatted diagnostic to stderr and terminates the process
// with a non-zero exit status. It never returns.
func Report(kind Kind, message string, loc *Location) {
	err := &Error{Kind: kind, Message: message, Location: loc}
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}

// Fatalf is a convenience wrapper around Report for diagnostics with no
// known source location (used by the lexer, which has no parser-level
// context to attach).
func Fatalf(kind Kind, format string, args ...any) {
	Report(kind, fmt.Sprintf(format, args...), nil)
}
