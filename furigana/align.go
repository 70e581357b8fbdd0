// Package furigana annotates Japanese text with phonetic ruby glosses.
//
// The package has three layers: Align pairs one token's surface with the
// minimal spans of its reading that actually need a gloss, Walk streams a
// markup fragment so that only text nodes outside existing ruby are
// touched, and Generator ties both to a morphological tokenizer.
package furigana

import (
	"unicode"

	"github.com/cessen/furiganagen/kana"
)

// Segment is a span of a token's surface paired with the slice of the
// reading that glosses it. An empty Reading means the span needs no
// gloss. Concatenating the Surface fields of an Align result reproduces
// the input surface exactly.
type Segment struct {
	Surface string
	Reading string
}

// Align splits a token's surface into glossed and unglossed segments.
//
// known holds characters the reader is assumed to recognize already; a
// surface made up entirely of kana, ASCII, digits, and known characters
// gets no gloss at all. Full alignment between a kanji-bearing surface
// and its kana reading is an ambiguous inverse problem, so Align only
// commits to a fine-grained split where a kana character in the surface
// matches exactly one position in the reading; anything else falls back
// to glossing the remaining span as a whole.
func Align(surface, reading string, known map[rune]bool) []Segment {
	if surface == "" {
		return nil
	}
	if reading == "" || !needsGloss(surface, known) {
		return []Segment{{Surface: surface}}
	}

	sr := []rune(surface)
	rr := []rune(reading)

	// Trim the longest matching prefix and suffix: conjugation endings
	// and okurigana that are already readable as-is. Exact equality is
	// accepted alongside kana equivalence so that punctuation whose
	// "reading" is itself (。, 、) falls through unglossed.
	start := 0
	for start < len(sr) && start < len(rr) && matches(sr[start], rr[start]) {
		start++
	}
	end := 0
	for end < len(sr)-start && end < len(rr)-start &&
		matches(sr[len(sr)-1-end], rr[len(rr)-1-end]) {
		end++
	}

	// Trims meeting (or crossing) means surface and reading are kana
	// equivalents of each other, e.g. へぇー vs ヘー.
	if start+end >= len(sr) || start+end >= len(rr) {
		return []Segment{{Surface: surface}}
	}

	var segs []Segment
	if start > 0 {
		segs = append(segs, Segment{Surface: string(sr[:start])})
	}
	segs = append(segs, alignMiddle(sr[start:len(sr)-end], rr[start:len(rr)-end])...)
	if end > 0 {
		segs = append(segs, Segment{Surface: string(sr[len(sr)-end:])})
	}
	return segs
}

// alignMiddle resolves the span between the trimmed ends. Each kana
// character in the surface that matches exactly one position of the
// reading is a reliable anchor to split at; the first ambiguous anchor
// aborts the loop and the remainder becomes one coarse segment.
func alignMiddle(sr, rr []rune) []Segment {
	var segs []Segment
	for len(sr) > 0 {
		i := indexKana(sr)
		if i < 0 {
			break
		}

		j, unique := uniqueEquivalent(sr[i], rr)
		if !unique {
			break
		}

		if i > 0 {
			segs = append(segs, Segment{Surface: string(sr[:i]), Reading: string(rr[:j])})
		}
		segs = append(segs, Segment{Surface: string(sr[i])})
		sr = sr[i+1:]
		rr = rr[j+1:]
	}

	if len(sr) > 0 {
		segs = append(segs, Segment{Surface: string(sr), Reading: string(rr)})
	}
	return segs
}

func matches(a, b rune) bool {
	return a == b || kana.IsEquivalent(a, b)
}

// indexKana returns the index of the first kana rune, or -1.
func indexKana(rs []rune) int {
	for i, r := range rs {
		if kana.IsKana(r) {
			return i
		}
	}
	return -1
}

// uniqueEquivalent reports the position of the single rune of rs
// equivalent to anchor. unique is false when there are zero or several.
func uniqueEquivalent(anchor rune, rs []rune) (pos int, unique bool) {
	pos = -1
	for i, r := range rs {
		if kana.IsEquivalent(anchor, r) {
			if pos >= 0 {
				return -1, false
			}
			pos = i
		}
	}
	return pos, pos >= 0
}

// needsGloss reports whether any character of surface is outside the
// set a reader is assumed to handle without help.
func needsGloss(surface string, known map[rune]bool) bool {
	for _, r := range surface {
		if r < 0x80 || unicode.IsDigit(r) || kana.IsKana(r) || known[r] {
			continue
		}
		return true
	}
	return false
}
