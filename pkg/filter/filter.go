// Package filter implements keyword filtering of named records with AND/OR logic.
package filter

// Named is the capability a record must offer to be filterable: optional
// read access to a name-like attribute. The second result reports whether
// a usable name is present on this record.
type Named interface {
	NameValue() (string, bool)
}

// Filter determines whether a named record matches a filtering criterion.
type Filter interface {
	// Match returns true if the record passes this filter.
	Match(r Named) bool

	// Name returns a human-readable description of this filter.
	Name() string
}

// MatchMode controls how multiple filters are combined.
type MatchMode int

const (
	// MatchAny passes if ANY filter matches (OR logic).
	MatchAny MatchMode = iota
	// MatchAll passes only if ALL filters match (AND logic).
	MatchAll
)

// String returns the operator spelling of the mode.
func (m MatchMode) String() string {
	if m == MatchAll {
		return "and"
	}
	return "or"
}

// Chain combines multiple filters with a configurable match mode.
type Chain struct {
	filters []Filter
	mode    MatchMode
}

// NewChain creates a filter chain with the given mode.
func NewChain(mode MatchMode, filters ...Filter) *Chain {
	return &Chain{
		filters: filters,
		mode:    mode,
	}
}

// Add appends a filter to the chain.
func (c *Chain) Add(f Filter) {
	c.filters = append(c.filters, f)
}

// Match evaluates the chain against a record.
// Returns true if no filters are configured (pass-through).
func (c *Chain) Match(r Named) bool {
	if len(c.filters) == 0 {
		return true
	}

	switch c.mode {
	case MatchAll:
		for _, f := range c.filters {
			if !f.Match(r) {
				return false
			}
		}
		return true
	default: // MatchAny
		for _, f := range c.filters {
			if f.Match(r) {
				return true
			}
		}
		return false
	}
}

// Name returns a description of the chain.
func (c *Chain) Name() string {
	if c.mode == MatchAll {
		return "FilterChain(AND)"
	}
	return "FilterChain(OR)"
}

// Len returns the number of filters in the chain.
func (c *Chain) Len() int {
	return len(c.filters)
}
