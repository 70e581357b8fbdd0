package furigana

import (
	"strings"

	"github.com/ikawaha/kagome-dict/dict"

	"github.com/cessen/furiganagen/tokenize"
)

// Generator annotates markup fragments with ruby glosses. It owns one
// tokenizer session and is therefore not safe for concurrent use of a
// single instance; construct one per goroutine.
type Generator struct {
	tok *tokenize.Tokenizer
}

// New builds a Generator on the given analyzer dictionary. An
// unreadable dictionary fails construction; the Generator is unusable
// and must not be retried.
func New(d *dict.Dict) (*Generator, error) {
	tok, err := tokenize.New(d)
	if err != nil {
		return nil, err
	}
	return &Generator{tok: tok}, nil
}

// GlossPolicy decides, per word surface, whether this occurrence still
// needs a gloss. It is an optional caller-supplied capability; the
// Generator never constructs one itself.
type GlossPolicy func(word string) bool

// Option configures a single Annotate call.
type Option func(*annotateOptions)

type annotateOptions struct {
	policy GlossPolicy
}

// WithGlossPolicy gates glossing through policy: tokens for which it
// returns false are emitted without a gloss. Alignment short-circuits
// (kana-only words, known characters) still apply on top.
func WithGlossPolicy(policy GlossPolicy) Option {
	return func(o *annotateOptions) {
		o.policy = policy
	}
}

// Annotate adds ruby glosses to the text nodes of a markup fragment.
// known characters never receive a gloss. Text already inside <ruby>
// is left untouched, which makes Annotate idempotent on its own
// output. The error is only non-nil for malformed markup; no partial
// result is returned in that case.
func (g *Generator) Annotate(fragment string, known map[rune]bool, opts ...Option) (string, error) {
	var o annotateOptions
	for _, opt := range opts {
		opt(&o)
	}

	return Walk(fragment, func(text string) string {
		return g.annotateText(text, known, &o)
	})
}

func (g *Generator) annotateText(text string, known map[rune]bool, o *annotateOptions) string {
	var b strings.Builder
	b.Grow(len(text) + len(text)/2)

	for _, tok := range g.tok.Tokenize(text) {
		if o.policy != nil && !o.policy(tok.Surface) {
			b.WriteString(tok.Surface)
			continue
		}
		for _, seg := range Align(tok.Surface, tok.Reading, known) {
			if seg.Reading == "" {
				b.WriteString(seg.Surface)
				continue
			}
			b.WriteString("<ruby>")
			b.WriteString(seg.Surface)
			b.WriteString("<rt>")
			b.WriteString(seg.Reading)
			b.WriteString("</rt></ruby>")
		}
	}
	return b.String()
}
