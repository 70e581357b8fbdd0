package furigana

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// rubyTag marks spans that already carry a gloss; text inside one is
// never transformed again.
const rubyTag = "ruby"

// Walk streams a markup fragment and applies transform to every text
// node that is not inside an existing <ruby> element. All tags,
// comments, and other structural events are re-emitted verbatim from
// the tokenizer's raw bytes, so the markup itself survives byte for
// byte. A tokenization failure is fatal for the whole fragment: no
// partial output is returned.
func Walk(fragment string, transform func(string) string) (string, error) {
	z := html.NewTokenizer(strings.NewReader(fragment))

	var b strings.Builder
	b.Grow(len(fragment) + len(fragment)/2)

	rubyDepth := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return "", errors.Wrap(err, "tokenizing markup fragment")
			}
			return b.String(), nil

		case html.TextToken:
			raw := string(z.Raw())
			if rubyDepth == 0 {
				raw = transform(raw)
			}
			b.WriteString(raw)

		case html.StartTagToken:
			if name, _ := z.TagName(); string(name) == rubyTag {
				rubyDepth++
			}
			b.Write(z.Raw())

		case html.EndTagToken:
			if name, _ := z.TagName(); string(name) == rubyTag && rubyDepth > 0 {
				rubyDepth--
			}
			b.Write(z.Raw())

		default:
			// Self-closing tags, comments, doctypes: pass through.
			b.Write(z.Raw())
		}
	}
}
