package tokenize

import (
	"strings"
	"testing"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIPA(t *testing.T) *Tokenizer {
	t.Helper()
	tk, err := New(ipa.Dict())
	require.NoError(t, err)
	return tk
}

func TestTokenizeEmpty(t *testing.T) {
	tk := newIPA(t)
	assert.Empty(t, tk.Tokenize(""))
}

func TestTokenizeSimpleWord(t *testing.T) {
	tk := newIPA(t)
	toks := tk.Tokenize("猫")
	require.Len(t, toks, 1)
	assert.Equal(t, "猫", toks[0].Surface)
	assert.Equal(t, "ネコ", toks[0].Reading)
}

func TestTokenizeCoversSentence(t *testing.T) {
	tk := newIPA(t)
	sentences := []string{
		"食べている",
		"市内を流れる入見内川の水位が高まっている。",
		"へぇー、物の怪ですか。",
		"ABC123と猫",
	}
	for _, s := range sentences {
		toks := tk.Tokenize(s)
		require.NotEmpty(t, toks, "sentence %q", s)

		var b strings.Builder
		for _, tok := range toks {
			b.WriteString(tok.Surface)
		}
		assert.Equal(t, s, b.String(), "surfaces must reproduce the sentence")
	}
}

func TestTokenizeReadingIsKatakanaOrEmpty(t *testing.T) {
	tk := newIPA(t)
	toks := tk.Tokenize("食べている。")
	require.NotEmpty(t, toks)
	for _, tok := range toks {
		for _, r := range tok.Reading {
			inKatakana := r >= 0x30A1 && r <= 0x30FC
			assert.True(t, inKatakana || r == '。', "reading rune %c of %q", r, tok.Surface)
		}
	}
}
