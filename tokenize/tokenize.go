// Package tokenize wraps the kagome morphological analyzer behind the
// small surface the furigana engine needs: ordered (surface, reading)
// tokens covering a sentence without gaps or overlaps.
package tokenize

import (
	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"github.com/pkg/errors"
)

// Token is one morpheme of a sentence. Surface is the exact input slice;
// Reading is its katakana transcription from the analyzer's dictionary,
// empty when the dictionary provides no reading feature (unknown words,
// some punctuation).
type Token struct {
	Surface string
	Reading string
}

// Tokenizer segments sentences using an injected kagome dictionary.
//
// A Tokenizer is not safe for concurrent use of a single instance; give
// each goroutine its own, or serialize access.
type Tokenizer struct {
	kg *tokenizer.Tokenizer
}

// New builds a Tokenizer on the given dictionary. A nil or unreadable
// dictionary is a fatal construction error: no tokenization can be
// attempted on the returned value.
func New(d *dict.Dict) (*Tokenizer, error) {
	kg, err := tokenizer.New(d, tokenizer.OmitBosEos())
	if err != nil {
		return nil, errors.Wrap(err, "initializing kagome tokenizer")
	}
	return &Tokenizer{kg: kg}, nil
}

// Tokenize segments sentence into tokens. Concatenating the surfaces of
// the result reproduces sentence exactly. An empty sentence yields no
// tokens.
func (t *Tokenizer) Tokenize(sentence string) []Token {
	if sentence == "" {
		return nil
	}

	ktoks := t.kg.Tokenize(sentence)
	out := make([]Token, 0, len(ktoks))
	for _, kt := range ktoks {
		reading, ok := kt.Reading()
		if !ok {
			reading = ""
		}
		out = append(out, Token{
			Surface: kt.Surface,
			Reading: reading,
		})
	}
	return out
}
