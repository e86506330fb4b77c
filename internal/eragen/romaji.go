package eragen

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var kana = map[string]string{
	"あ": "a", "い": "i", "う": "u", "え": "e", "お": "o",
	"か": "ka", "き": "ki", "く": "ku", "け": "ke", "こ": "ko",
	"さ": "sa", "し": "shi", "す": "su", "せ": "se", "そ": "so",
	"た": "ta", "ち": "chi", "つ": "tsu", "て": "te", "と": "to",
	"な": "na", "に": "ni", "ぬ": "nu", "ね": "ne", "の": "no",
	"は": "ha", "ひ": "hi", "ふ": "fu", "へ": "he", "ほ": "ho",
	"ま": "ma", "み": "mi", "む": "mu", "め": "me", "も": "mo",
	"や": "ya", "ゆ": "yu", "よ": "yo",
	"ら": "ra", "り": "ri", "る": "ru", "れ": "re", "ろ": "ro",
	"わ": "wa", "を": "wo",
	"が": "ga", "ぎ": "gi", "ぐ": "gu", "げ": "ge", "ご": "go",
	"ざ": "za", "じ": "ji", "ず": "zu", "ぜ": "ze", "ぞ": "zo",
	"だ": "da", "ぢ": "ji", "づ": "zu", "で": "de", "ど": "do",
	"ば": "ba", "び": "bi", "ぶ": "bu", "べ": "be", "ぼ": "bo",
	"ぱ": "pa", "ぴ": "pi", "ぷ": "pu", "ぺ": "pe", "ぽ": "po",
	"きゃ": "kya", "きゅ": "kyu", "きょ": "kyo",
	"しゃ": "sha", "しゅ": "shu", "しょ": "sho",
	"ちゃ": "cha", "ちゅ": "chu", "ちょ": "cho",
	"にゃ": "nya", "にゅ": "nyu", "にょ": "nyo",
	"ひゃ": "hya", "ひゅ": "hyu", "ひょ": "hyo",
	"みゃ": "mya", "みゅ": "myu", "みょ": "myo",
	"りゃ": "rya", "りゅ": "ryu", "りょ": "ryo",
	"ぎゃ": "gya", "ぎゅ": "gyu", "ぎょ": "gyo",
	"じゃ": "ja", "じゅ": "ju", "じょ": "jo",
	"びゃ": "bya", "びゅ": "byu", "びょ": "byo",
	"ぴゃ": "pya", "ぴゅ": "pyu", "ぴょ": "pyo",
}

const syllabicN = 'ん'

// Romanize converts a hiragana reading to Hepburn-style romaji with macrons,
// e.g. しょうわ to Shōwa. Characters without a mapping are kept as-is.
func Romanize(hiragana string) string {
	rs := []rune(hiragana)
	parts := make([]string, 0, len(rs))
	for i := 0; i < len(rs); {
		if i+1 < len(rs) {
			if r, ok := kana[string(rs[i:i+2])]; ok {
				parts = append(parts, r)
				i += 2
				continue
			}
		}
		if rs[i] == syllabicN {
			parts = append(parts, string(syllabicN))
		} else if r, ok := kana[string(rs[i])]; ok {
			parts = append(parts, r)
		} else {
			parts = append(parts, string(rs[i]))
		}
		i++
	}

	// ん is n, written n' before a vowel or y
	for i, p := range parts {
		if p != string(syllabicN) {
			continue
		}
		if i+1 == len(parts) || strings.ContainsAny(parts[i+1][:1], "bcdfghjkmnprstwz") {
			parts[i] = "n"
		} else {
			parts[i] = "n'"
		}
	}

	out := strings.Join(parts, "")
	out = strings.ReplaceAll(out, "ou", "ō")
	out = strings.ReplaceAll(out, "uu", "ū")
	if out == "" {
		return out
	}

	first := []rune(out)
	first[0] = unicode.ToUpper(first[0])
	return string(first)
}

// StripMacrons removes combining marks, turning Shōwa into Showa.
func StripMacrons(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
