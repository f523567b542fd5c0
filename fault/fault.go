package fault

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for external reporting.
type Kind string

const (
	UnknownTool         Kind = "unknown_tool"
	InvalidArguments    Kind = "invalid_arguments"
	InputNotFound       Kind = "input_not_found"
	UnreadableInput     Kind = "unreadable_input"
	CorruptDocument     Kind = "corrupt_document"
	UnsupportedDocument Kind = "unsupported_document"
	UnsupportedLanguage Kind = "unsupported_language"
	EngineFailure       Kind = "engine_failure"
	InternalError       Kind = "internal_error"
)

// NoPage marks a failure that is not scoped to a single page.
const NoPage = -1

// Failure is the error shape that crosses component boundaries. It carries
// enough detail to report externally but never engine-internal state.
type Failure struct {
	Kind    Kind
	Message string
	// Page is the zero-based index of the page the failure is scoped to,
	// or NoPage.
	Page int
}

func (f *Failure) Error() string {
	if f.Page >= 0 {
		return fmt.Sprintf("%s (page %d): %s", f.Kind, f.Page, f.Message)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// New constructs a failure without a page scope.
func New(kind Kind, message string) *Failure {
	return &Failure{Kind: kind, Message: message, Page: NoPage}
}

// Errorf constructs a failure with a formatted message.
func Errorf(kind Kind, format string, args ...any) *Failure {
	return &Failure{Kind: kind, Message: fmt.Sprintf(format, args...), Page: NoPage}
}

// OnPage returns a copy of the failure scoped to the given page index.
func (f *Failure) OnPage(page int) *Failure {
	c := *f
	c.Page = page
	return &c
}

// From recovers the Failure carried by err, walking wrapped errors. An error
// with no Failure in its chain is reported as InternalError.
func From(err error) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return New(InternalError, err.Error())
}

// IsKind reports whether err carries a Failure of the given kind.
func IsKind(err error, kind Kind) bool {
	var f *Failure
	return errors.As(err, &f) && f.Kind == kind
}
