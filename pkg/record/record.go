// Package record defines the attribute-bag Record type passed through the fob pipeline.
package record

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Record is a loosely-typed attributed value flowing through the pipeline.
// Attributes may live in the Attrs map, in the Raw JSON bytes, or both;
// the map takes precedence. Records are borrowed by consumers, never mutated.
type Record struct {
	Attrs  map[string]any
	Raw    []byte // original JSON bytes, if the record was sourced from JSON
	Source string // source identifier (filename, directory, command, etc.)
	Seq    uint64 // monotonic sequence number within a source
}

// New creates a record from an attribute map.
func New(attrs map[string]any) *Record {
	return &Record{Attrs: attrs}
}

// FromJSON creates a record backed by raw JSON bytes.
// The bytes are retained as-is; attributes are resolved lazily via gjson.
func FromJSON(raw []byte) *Record {
	return &Record{Raw: raw}
}

// FromLine creates a record from a plain text line. The whole line becomes
// the Name attribute, which is the useful default for `ls | fob ...` style
// pipelines.
func FromLine(line string) *Record {
	return &Record{Attrs: map[string]any{"Name": line}}
}

// rawNamePaths are the gjson paths probed for a name on JSON-backed records.
var rawNamePaths = []string{"Name", "name"}

// NameValue returns the record's name attribute and whether it is usable.
// A record without a Name attribute, with a nil value, or with a value that
// does not stringify to text reports (_, false) — never an error.
func (r *Record) NameValue() (string, bool) {
	if r == nil {
		return "", false
	}
	if v, ok := r.Attr("Name"); ok {
		return stringify(v)
	}
	if len(r.Raw) > 0 {
		for _, path := range rawNamePaths {
			if res := gjson.GetBytes(r.Raw, path); res.Exists() {
				return stringifyResult(res)
			}
		}
	}
	return "", false
}

// Attr looks up an attribute by key. Map keys are compared
// case-insensitively; JSON-backed records fall back to a gjson probe of the
// key as given and lower-cased.
func (r *Record) Attr(key string) (any, bool) {
	if r == nil {
		return nil, false
	}
	if v, ok := r.Attrs[key]; ok {
		return v, true
	}
	for k, v := range r.Attrs {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	if len(r.Raw) > 0 {
		for _, path := range []string{key, strings.ToLower(key)} {
			if res := gjson.GetBytes(r.Raw, path); res.Exists() {
				return res.Value(), true
			}
		}
	}
	return nil, false
}

// stringify converts a scalar-like attribute value to text.
// Composite values (maps, slices) and nil report not-usable rather than
// producing a synthetic representation.
func stringify(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case fmt.Stringer:
		return val.String(), true
	case bool:
		return strconv.FormatBool(val), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case uint64:
		return strconv.FormatUint(val, 10), true
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32), true
	default:
		return "", false
	}
}

// stringifyResult converts a gjson value to text under the same rules as
// stringify: scalars only, null and composites are not usable.
func stringifyResult(res gjson.Result) (string, bool) {
	switch res.Type {
	case gjson.String, gjson.Number, gjson.True, gjson.False:
		return res.String(), true
	default:
		return "", false
	}
}
