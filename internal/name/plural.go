package name

// DefaultPlural returns the mechanical plural of a singular form: the
// singular with "s" appended. This is deliberately not a dictionary
// inflector; definition records override it when the mechanical form is
// wrong ("goose" -> "geese").
func DefaultPlural(singular string) string {
	return singular + "s"
}

// IsRedundant reports whether an explicit plural carries no information
// because it equals the mechanical default for the singular.
func IsRedundant(singular, plural string) bool {
	return plural == DefaultPlural(singular)
}
