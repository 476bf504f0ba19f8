package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// obj is a minimal Named implementation for tests.
type obj struct {
	name    string
	present bool
}

func named(name string) *obj {
	return &obj{name: name, present: true}
}

func (o *obj) NameValue() (string, bool) {
	if o == nil {
		return "", false
	}
	return o.name, o.present
}

func names(objs []*obj) []string {
	out := make([]string, 0, len(objs))
	for _, o := range objs {
		out = append(out, o.name)
	}
	return out
}

func TestKeywordFilter_CaseInsensitiveSubstring(t *testing.T) {
	f := NewKeywordFilter("Test")

	assert.True(t, f.Match(named("testObject")))
	assert.True(t, f.Match(named("myTESTobject")))
	assert.True(t, f.Match(named("test")))
	assert.False(t, f.Match(named("tes")))
	assert.False(t, f.Match(named("other")))
}

func TestKeywordFilter_NoMetacharacters(t *testing.T) {
	f := NewKeywordFilter("a.b")

	// The dot is a literal, not "any character".
	assert.True(t, f.Match(named("xa.by")))
	assert.False(t, f.Match(named("xaxby")))
}

func TestKeywordFilter_UnusableName(t *testing.T) {
	f := NewKeywordFilter("x")

	assert.False(t, f.Match(nil))
	assert.False(t, f.Match((*obj)(nil)))
	assert.False(t, f.Match(&obj{present: false}))
	assert.False(t, f.Match(named("")))
	assert.False(t, f.Match(named("   ")))
}

func TestChain_Modes(t *testing.T) {
	applePie := named("apple pie")

	or := NewChain(MatchAny, NewKeywordFilter("apple"), NewKeywordFilter("cherry"))
	assert.True(t, or.Match(applePie))
	assert.False(t, or.Match(named("banana")))

	and := NewChain(MatchAll, NewKeywordFilter("apple"), NewKeywordFilter("pie"))
	assert.True(t, and.Match(applePie))
	assert.False(t, and.Match(named("apple tart")))
}

func TestChain_EmptyPassesThrough(t *testing.T) {
	c := NewChain(MatchAny)
	assert.True(t, c.Match(named("anything")))
	assert.Equal(t, 0, c.Len())
}

func TestConfig_Match_EmptyKeywordsNeverMatch(t *testing.T) {
	// ParseTerms rejects empty keyword sets; a hand-built empty config must
	// still match nothing under either mode.
	for _, mode := range []MatchMode{MatchAny, MatchAll} {
		cfg := &Config{Mode: mode}
		assert.False(t, cfg.Match(named("anything")), "mode=%s", mode)
	}
}

func TestConfig_Match_SingleKeywordModeIndependent(t *testing.T) {
	for _, mode := range []MatchMode{MatchAny, MatchAll} {
		cfg := &Config{Keywords: []string{"test"}, Mode: mode}
		assert.True(t, cfg.Match(named("testObject")), "mode=%s", mode)
		assert.False(t, cfg.Match(named("other")), "mode=%s", mode)
	}
}

func TestFilterByName_SingleKeyword(t *testing.T) {
	out, err := FilterByName([]string{"test"}, []*obj{named("testObject")})
	require.NoError(t, err)
	assert.Equal(t, []string{"testObject"}, names(out))
}

func TestFilterByName_OrDefault(t *testing.T) {
	in := []*obj{named("apple"), named("banana"), named("cherry")}

	out, err := FilterByName([]string{"apple", "cherry"}, in)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "cherry"}, names(out))
}

func TestFilterByName_AndOperator(t *testing.T) {
	in := []*obj{named("apple pie"), named("apple tart"), named("cherry pie")}

	out, err := FilterByName([]string{"apple", "and", "pie"}, in)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple pie"}, names(out))
}

func TestFilterByName_OrOperator(t *testing.T) {
	in := []*obj{named("apple pie"), named("apple tart"), named("cherry pie")}

	out, err := FilterByName([]string{"apple", "or", "cherry"}, in)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple pie", "apple tart", "cherry pie"}, names(out))
}

func TestFilterByName_NilRecordSkipped(t *testing.T) {
	out, err := FilterByName([]string{"x"}, []*obj{nil})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFilterByName_UnusableNamesSkipped(t *testing.T) {
	in := []*obj{
		named("x-1"),
		{present: false},
		named(""),
		named("   "),
		named("x-2"),
	}

	out, err := FilterByName([]string{"x"}, in)
	require.NoError(t, err)
	assert.Equal(t, []string{"x-1", "x-2"}, names(out))
}

func TestFilterByName_OrderPreserved(t *testing.T) {
	in := []*obj{
		named("svc-b"), named("other"), named("svc-a"),
		named("nope"), named("svc-c"),
	}

	out, err := FilterByName([]string{"svc"}, in)
	require.NoError(t, err)
	assert.Equal(t, []string{"svc-b", "svc-a", "svc-c"}, names(out))
}

func TestFilterByName_EmptyInput(t *testing.T) {
	out, err := FilterByName([]string{"x"}, []*obj{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFilterByName_ConfigurationError(t *testing.T) {
	out, err := FilterByName([]string{"or", " "}, []*obj{named("anything")})
	assert.ErrorIs(t, err, ErrNoKeywords)
	assert.Nil(t, out)
}

func TestFob_AliasBehavesIdentically(t *testing.T) {
	in := []*obj{named("apple"), named("banana")}

	full, err := FilterByName([]string{"app"}, in)
	require.NoError(t, err)
	short, err := Fob([]string{"app"}, in)
	require.NoError(t, err)
	assert.Equal(t, full, short)
}
