package name

import "fmt"

// Record is the transient definition input a Name is built from. Pointer
// fields distinguish an absent field from an explicitly empty one, mirroring
// the JSON documents produced by the definitions parser:
//
//	{"singular": "wolf"}
//	{"singular": "goose", "plural": "geese"}
type Record struct {
	Singular *string `json:"singular"`
	Plural   *string `json:"plural"`
}

// MissingFieldError reports a required field absent from a Record.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// New creates a Name from a singular form, deriving the plural with
// DefaultPlural. It succeeds for any input; callers are expected to supply
// non-empty singulars.
func New(singular string) Name {
	return Name{singular: singular, plural: DefaultPlural(singular)}
}

// NewWithPlural creates a Name from explicit singular and plural forms.
// Both are taken verbatim; no inference or redundancy check happens here.
func NewWithPlural(singular, plural string) Name {
	return Name{singular: singular, plural: plural}
}

// FromRecord builds a Name from a definition record.
//
// The singular field is required; when absent, FromRecord fails with a
// *MissingFieldError. When the plural field is absent the default
// pluralization applies. When the plural field is present it is used
// verbatim, and if it merely restates the mechanical default a single
// warning is emitted through the reporter so the redundant field can be
// removed from the source document. A nil reporter suppresses diagnostics.
func FromRecord(rec Record, reporter Reporter) (Name, error) {
	if rec.Singular == nil {
		return Name{}, &MissingFieldError{Field: "singular"}
	}
	if rec.Plural == nil {
		return New(*rec.Singular), nil
	}

	singular, plural := *rec.Singular, *rec.Plural
	if IsRedundant(singular, plural) && reporter != nil {
		reporter.Warn(fmt.Sprintf("Unnecessary plural: %s can be rendered from %s.", plural, singular))
	}
	return NewWithPlural(singular, plural), nil
}
