package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"

	"github.com/cessen/furiganagen/furigana"
	"github.com/cessen/furiganagen/learner"
)

var annotateCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Annotate a fragment from stdin, writing the result to stdout",
	Long: `Read a text or HTML fragment from stdin, add ruby glosses to the
kanji spans that need them, and write the annotated fragment to stdout.
Markdown input is rendered to HTML first with --format markdown.`,
	Args: cobra.NoArgs,
	RunE: runAnnotate,
}

var (
	dictName      string
	format        string
	knownChars    string
	adaptive      bool
	seenThreshold int
)

func init() {
	annotateCmd.Flags().StringVar(&dictName, "dict", "ipa", "analyzer dictionary: ipa, uni")
	annotateCmd.Flags().StringVar(&format, "format", "html", "input format: html, markdown")
	annotateCmd.Flags().StringVar(&knownChars, "known", "", "characters the reader already knows (never glossed)")
	annotateCmd.Flags().BoolVar(&adaptive, "adaptive", false, "stop glossing words once they have been seen often enough")
	annotateCmd.Flags().IntVar(&seenThreshold, "seen-threshold", 3, "sightings before a word counts as learned (with --adaptive)")

	rootCmd.AddCommand(annotateCmd)
}

func analyzerDict(name string) (*dict.Dict, error) {
	switch name {
	case "ipa":
		return ipa.Dict(), nil
	case "uni":
		return uni.Dict(), nil
	default:
		return nil, fmt.Errorf("unknown dictionary %q (want ipa or uni)", name)
	}
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	if format == "markdown" {
		var buf bytes.Buffer
		if err := goldmark.Convert(input, &buf); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		input = buf.Bytes()
	} else if format != "html" {
		return fmt.Errorf("unknown format %q (want html or markdown)", format)
	}

	d, err := analyzerDict(dictName)
	if err != nil {
		return err
	}
	gen, err := furigana.New(d)
	if err != nil {
		return err
	}
	slog.Debug("generator ready", "dict", dictName, "bytes", len(input))

	known := make(map[rune]bool, len(knownChars))
	for _, r := range knownChars {
		known[r] = true
	}

	var opts []furigana.Option
	if adaptive {
		l := learner.New(seenThreshold)
		opts = append(opts, furigana.WithGlossPolicy(func(word string) bool {
			needed := l.NeedsHelp(word)
			l.Record(word)
			return needed
		}))
	}

	out, err := gen.Annotate(string(input), known, opts...)
	if err != nil {
		return fmt.Errorf("annotate fragment: %w", err)
	}

	if _, err := io.WriteString(os.Stdout, out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
