package furigana

import (
	"testing"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := New(ipa.Dict())
	require.NoError(t, err)
	return g
}

func TestAnnotateSimpleFragment(t *testing.T) {
	g := newGenerator(t)
	out, err := g.Annotate("<p>食べる</p>", nil)
	require.NoError(t, err)
	assert.Equal(t, "<p><ruby>食<rt>タ</rt></ruby>べる</p>", out)
}

func TestAnnotateSentence(t *testing.T) {
	g := newGenerator(t)
	out, err := g.Annotate("猫を食べる", nil)
	require.NoError(t, err)
	assert.Equal(t, "<ruby>猫<rt>ネコ</rt></ruby>を<ruby>食<rt>タ</rt></ruby>べる", out)
}

func TestAnnotateIdempotent(t *testing.T) {
	g := newGenerator(t)
	fragments := []string{
		"<p>食べる</p>",
		"猫を食べる。",
		"水位が<b>高まっ</b>ている",
	}
	for _, f := range fragments {
		once, err := g.Annotate(f, nil)
		require.NoError(t, err)
		twice, err := g.Annotate(once, nil)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "fragment %q", f)
	}
}

func TestAnnotateSkipsExistingRuby(t *testing.T) {
	g := newGenerator(t)
	in := "<ruby>食<rt>タ</rt></ruby>べる"
	out, err := g.Annotate(in, nil)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestAnnotateLeavesASCIIAlone(t *testing.T) {
	g := newGenerator(t)
	in := `<div class="x">hello <b>world 42</b></div>`
	out, err := g.Annotate(in, nil)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestAnnotateKnownCharacters(t *testing.T) {
	g := newGenerator(t)
	known := map[rune]bool{'食': true}
	out, err := g.Annotate("食べる", known)
	require.NoError(t, err)
	assert.Equal(t, "食べる", out)
}

func TestAnnotateGlossPolicy(t *testing.T) {
	g := newGenerator(t)

	out, err := g.Annotate("食べる", nil, WithGlossPolicy(func(string) bool { return false }))
	require.NoError(t, err)
	assert.Equal(t, "食べる", out)

	out, err = g.Annotate("食べる", nil, WithGlossPolicy(func(string) bool { return true }))
	require.NoError(t, err)
	assert.Equal(t, "<ruby>食<rt>タ</rt></ruby>べる", out)
}
