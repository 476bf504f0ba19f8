package filter

import (
	"errors"
	"fmt"
	"strings"
)

// Operator token literals recognized among search terms.
const (
	tokenOr  = "or"
	tokenAnd = "and"
)

// ErrNoKeywords reports that no usable keyword remained after removing
// operator tokens and blank terms. This is a configuration error raised
// before any record is processed; it is never a per-record condition.
var ErrNoKeywords = errors.New("no search keywords supplied")

// Config is the parsed result of a term list: the keywords to match and the
// logic mode combining them. A Config is immutable after ParseTerms and is
// scoped to a single filtering run — build a fresh one per invocation rather
// than sharing it across runs with different terms.
type Config struct {
	Keywords []string
	Mode     MatchMode

	chain *Chain // built once by ParseTerms
}

// ParseTerms classifies an ordered term list into keywords and a logic mode.
//
// The first term that case-insensitively equals "or" or "and" selects the
// mode and is consumed; any later operator-shaped term is kept as a literal
// keyword. Blank terms are discarded. The mode defaults to OR.
//
// Returns ErrNoKeywords (wrapped) when no keywords remain.
func ParseTerms(terms []string) (*Config, error) {
	cfg := &Config{Mode: MatchAny}
	modeSet := false

	for _, term := range terms {
		if !modeSet {
			switch strings.ToLower(term) {
			case tokenOr:
				cfg.Mode = MatchAny
				modeSet = true
				continue
			case tokenAnd:
				cfg.Mode = MatchAll
				modeSet = true
				continue
			}
		}
		if strings.TrimSpace(term) == "" {
			continue
		}
		cfg.Keywords = append(cfg.Keywords, term)
	}

	if len(cfg.Keywords) == 0 {
		return nil, fmt.Errorf("parse terms %q: %w", terms, ErrNoKeywords)
	}

	cfg.chain = cfg.buildChain()

	return cfg, nil
}

// Filter returns the keyword chain for this config.
func (c *Config) Filter() *Chain {
	if c.chain != nil {
		return c.chain
	}
	return c.buildChain()
}

func (c *Config) buildChain() *Chain {
	chain := NewChain(c.Mode)
	for _, kw := range c.Keywords {
		chain.Add(NewKeywordFilter(kw))
	}
	return chain
}

// Match reports whether the record passes the configured keyword logic.
// Nil records and records without a usable name never match. An empty
// keyword set matches nothing under either mode; ParseTerms rejects that
// case up front, so the check here is defensive.
func (c *Config) Match(r Named) bool {
	if len(c.Keywords) == 0 {
		return false
	}
	if _, ok := nameText(r); !ok {
		return false
	}
	return c.Filter().Match(r)
}

// Describe returns a short human-readable summary of the parsed config,
// used for verbose diagnostics.
func (c *Config) Describe() string {
	return fmt.Sprintf("%s(%s)", c.Mode, strings.Join(c.Keywords, ", "))
}
