package filter

// FilterByName filters records by name against the given search terms.
//
// Terms follow the usual rules: the first "or"/"and" term (case-insensitive)
// selects the logic mode, all other non-blank terms are keywords, and at
// least one keyword is required. The returned slice preserves the relative
// input order of the matching records; records without a usable name are
// skipped silently.
func FilterByName[T Named](terms []string, in []T) ([]T, error) {
	cfg, err := ParseTerms(terms)
	if err != nil {
		return nil, err
	}

	var out []T
	for _, r := range in {
		if cfg.Match(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Fob is the short alias for FilterByName, with identical behavior.
func Fob[T Named](terms []string, in []T) ([]T, error) {
	return FilterByName(terms, in)
}
