package name

// WithSuffix builds a secondary Name by appending a suffix to the base
// singular, separated by a space. The plural is re-derived with
// DefaultPlural: a custom plural on the base does not carry over, so
// WithSuffix(NewWithPlural("Wolf", "Wolves"), "Corpse") pluralizes as
// "Wolf Corpses", not "Wolves Corpses".
func WithSuffix(base Name, suffix string) Name {
	return New(base.singular + " " + suffix)
}

// CorpseOf returns the Name for the corpse item left behind by a creature.
func CorpseOf(creature Name) Name {
	return WithSuffix(creature, "Corpse")
}
