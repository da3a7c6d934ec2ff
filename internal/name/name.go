// Package name builds canonical Name values, the singular/plural word pairs
// used to label content entities. Names come from a bare singular form or
// from a definition record that may override the default pluralization.
package name

// Name is an immutable pair of singular and plural word forms.
// The zero value is usable but empty; Names are normally created through
// New, NewWithPlural, or FromRecord.
type Name struct {
	singular string
	plural   string
}

// Singular returns the count-one form.
func (n Name) Singular() string {
	return n.singular
}

// Plural returns the count-many form.
func (n Name) Plural() string {
	return n.plural
}

// Equal reports whether both forms match exactly. No case folding or
// whitespace normalization is applied.
func (n Name) Equal(other Name) bool {
	return n.singular == other.singular && n.plural == other.plural
}

func (n Name) String() string {
	return n.singular
}
