package filter

import "strings"

// KeywordFilter matches records whose name contains a keyword as a
// case-insensitive substring. Equivalent to a *keyword* wildcard with no
// metacharacter interpretation.
type KeywordFilter struct {
	keyword string
	lowered string
}

// NewKeywordFilter creates a filter that matches records whose name contains
// the keyword, ignoring case.
func NewKeywordFilter(keyword string) *KeywordFilter {
	return &KeywordFilter{
		keyword: keyword,
		lowered: strings.ToLower(keyword),
	}
}

// Match returns true if the record's name contains the keyword.
// Records without a usable name never match.
func (f *KeywordFilter) Match(r Named) bool {
	name, ok := nameText(r)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(name), f.lowered)
}

// Name returns the filter description.
func (f *KeywordFilter) Name() string {
	return "keyword:" + f.keyword
}

// nameText extracts the usable name text from a record.
// Nil records, absent attributes, and names that are empty after trimming
// all report not-usable.
func nameText(r Named) (string, bool) {
	if r == nil {
		return "", false
	}
	name, ok := r.NameValue()
	if !ok {
		return "", false
	}
	if strings.TrimSpace(name) == "" {
		return "", false
	}
	return name, true
}
