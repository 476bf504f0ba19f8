// Package parser provides pattern-based attribute extraction from text lines.
package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// builtinTokens provides the named token classes usable in extract patterns.
var builtinTokens = map[string]string{
	"WORD":       `\w+`,
	"INT":        `[+-]?\d+`,
	"NUMBER":     `[+-]?(?:\d+\.?\d*|\.\d+)`,
	"NOTSPACE":   `\S+`,
	"DATA":       `.*?`,
	"GREEDYDATA": `.*`,
	"PATH":       `(?:/[\w.-]+)+`,
	"IP":         `(?:\d{1,3}\.){3}\d{1,3}`,
	"UUID":       `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`,
	"TIMESTAMP":  `\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}:?\d{2})?`,
	"QS":         `"[^"]*"`,
}

// Extractor turns plain text lines into record attributes using token
// patterns of the form %{TOKEN:Attr}.
// Example: "%{INT:Pid} %{NOTSPACE:Tty} %{NOTSPACE:Time} %{GREEDYDATA:Name}"
// gives `ps` output a proper Name attribute.
//
// Extraction is a record-acquisition concern only; match logic never sees
// the pattern, it only ever does substring containment on the name.
type Extractor struct {
	pattern   string
	regex     *regexp.Regexp
	attrNames []string
}

// New compiles an extract pattern. Returns an error for unknown tokens or a
// pattern that compiles to an invalid regex.
func New(pattern string) (*Extractor, error) {
	regexStr, attrNames, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}

	re, err := regexp.Compile(regexStr)
	if err != nil {
		return nil, fmt.Errorf("compiled extract regex invalid: %w (regex: %s)", err, regexStr)
	}

	return &Extractor{
		pattern:   pattern,
		regex:     re,
		attrNames: attrNames,
	}, nil
}

// Extract pulls attributes out of a line.
// Returns false if the pattern did not match.
func (x *Extractor) Extract(line string) (map[string]any, bool) {
	matches := x.regex.FindStringSubmatch(line)
	if matches == nil {
		return nil, false
	}

	attrs := make(map[string]any, len(x.attrNames))
	for i, name := range x.attrNames {
		if i+1 < len(matches) && name != "" {
			attrs[name] = matches[i+1]
		}
	}

	return attrs, true
}

// Pattern returns the original pattern string.
func (x *Extractor) Pattern() string {
	return x.pattern
}

// compilePattern converts an extract pattern to a Go regex with one capture
// group per named token.
// %{TOKEN:Attr} → (regex_for_TOKEN), %{TOKEN} → (?:regex_for_TOKEN)
func compilePattern(pattern string) (string, []string, error) {
	var attrNames []string
	result := pattern

	tokenRe := regexp.MustCompile(`%\{(\w+)(?::(\w+))?\}`)
	matches := tokenRe.FindAllStringSubmatch(pattern, -1)

	for _, m := range matches {
		fullMatch := m[0]
		tokenName := m[1]
		attrName := ""
		if len(m) > 2 {
			attrName = m[2]
		}

		tokenRegex, ok := builtinTokens[tokenName]
		if !ok {
			return "", nil, fmt.Errorf("unknown extract token: %s", tokenName)
		}

		var replacement string
		if attrName != "" {
			replacement = fmt.Sprintf("(%s)", tokenRegex)
			attrNames = append(attrNames, attrName)
		} else {
			replacement = fmt.Sprintf("(?:%s)", tokenRegex)
			attrNames = append(attrNames, "")
		}

		result = strings.Replace(result, fullMatch, replacement, 1)
	}

	return result, attrNames, nil
}
