package dns

import "strings"

// Tokenize splits presentation text into tokens. Comments starting with ';'
// run to the end of their line, and the "(" ")" continuation markers are
// dropped, so a record spread over several lines yields the same tokens as its
// single-line form. Quoted strings are not recognised.
func Tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, line := range strings.Split(text, "\n") {
		if i := strings.IndexByte(line, ';'); i >= 0 {
			line = line[:i]
		}
		b.WriteString(line)
		b.WriteByte(' ')
	}
	return strings.Fields(strings.NewReplacer("(", " ", ")", " ").Replace(b.String()))
}
