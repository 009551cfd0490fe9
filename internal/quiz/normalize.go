package quiz

import "strings"

// Guess is a canonicalized answer. DeclaredUnknown is set when the user
// explicitly gave up instead of answering.
type Guess struct {
	Text            string
	DeclaredUnknown bool
}

var articles = []string{"to ", "a ", "an "}

var unknownPhrases = map[string]bool{
	"i don't know":  true,
	"i do not know": true,
	"no idea":       true,
}

// Normalize casefolds and trims a raw guess and strips a single leading
// article. Absent input normalizes to the empty string, which compares
// unequal to any real word.
func Normalize(raw string) Guess {
	s := strings.ToLower(strings.TrimSpace(raw))
	for _, a := range articles {
		if strings.HasPrefix(s, a) {
			s = strings.TrimLeft(s[len(a):], " \t")
			break
		}
	}
	return Guess{Text: s, DeclaredUnknown: unknownPhrases[s]}
}
