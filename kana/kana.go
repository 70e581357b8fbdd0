// Package kana provides character-level predicates for Japanese kana:
// block membership, katakana↔hiragana conversion, and a deliberately
// liberal notion of "equivalent" kana used during furigana alignment.
//
// All functions are pure and operate on single runes.
package kana

const (
	hiraganaStart = 0x3041 // ぁ
	katakanaStart = 0x30A1 // ァ

	// Width of each kana block considered here (ぁ..ゖ and ァ..ヶ).
	kanaCount = 0x3097 - hiraganaStart

	// ProlongedSoundMark is the long-vowel mark ー, shared by both scripts.
	ProlongedSoundMark = 'ー'
)

// IsKana reports whether r is in the hiragana block, the katakana block,
// or is the long-vowel mark.
func IsKana(r rune) bool {
	if r == ProlongedSoundMark {
		return true
	}
	if r >= hiraganaStart && r < hiraganaStart+kanaCount {
		return true
	}
	if r >= katakanaStart && r < katakanaStart+kanaCount {
		return true
	}
	return false
}

// HiraganaToKatakana returns the katakana counterpart of a hiragana rune.
// The second result is false when r is not hiragana.
func HiraganaToKatakana(r rune) (rune, bool) {
	if r >= hiraganaStart && r < hiraganaStart+kanaCount {
		return r + (katakanaStart - hiraganaStart), true
	}
	return 0, false
}

// KatakanaToHiragana returns the hiragana counterpart of a katakana rune.
// The second result is false when r is not katakana.
func KatakanaToHiragana(r rune) (rune, bool) {
	if r >= katakanaStart && r < katakanaStart+kanaCount {
		return r - (katakanaStart - hiraganaStart), true
	}
	return 0, false
}

// Normalize maps kana to a canonical hiragana form: katakana becomes its
// hiragana counterpart, hiragana and the long-vowel mark pass through.
// The second result is false when r is not kana at all.
func Normalize(r rune) (rune, bool) {
	if !IsKana(r) {
		return 0, false
	}
	if h, ok := KatakanaToHiragana(r); ok {
		return h, true
	}
	return r, true
}

// Historically confusable spellings that read the same in practice.
var equivalentPairs = [...][2]rune{
	{'は', 'わ'},
	{'を', 'お'},
	{'づ', 'ず'},
	{'へ', 'え'},
}

// Vowel-family kana the long-vowel mark may stand in for.
var vowels = [...]rune{'あ', 'い', 'う', 'え', 'お', 'ぁ', 'ぃ', 'ぅ', 'ぇ', 'ぉ'}

// IsEquivalent reports whether a and b read as the same sound for
// alignment purposes. It is intentionally liberal rather than
// linguistically exact: the cost of a false mismatch during alignment
// (a spurious gloss over kana) is higher than that of a false match.
func IsEquivalent(a, b rune) bool {
	na, okA := Normalize(a)
	nb, okB := Normalize(b)
	if !okA || !okB {
		return false
	}

	if na == nb {
		return true
	}

	if na == ProlongedSoundMark && isVowel(nb) {
		return true
	}
	if nb == ProlongedSoundMark && isVowel(na) {
		return true
	}

	for _, p := range equivalentPairs {
		if (na == p[0] && nb == p[1]) || (na == p[1] && nb == p[0]) {
			return true
		}
	}

	return false
}

func isVowel(r rune) bool {
	for _, v := range vowels {
		if r == v {
			return true
		}
	}
	return false
}
