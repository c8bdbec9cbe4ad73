package value

import "strings"

// String is both a regular string literal and, when it begins with
// keywordPrefix, a keyword. Keywords share String's representation instead
// of getting their own variant because every operation that makes sense on
// one makes sense on the other (equality, use as a hash key); only printing
// and construction need to tell them apart.
type String string

func (String) value() {}

// keywordPrefix is a byte that can never appear in source text (lexing never
// produces it literally), reserved to flag a String as a keyword. :foo reads
// as keywordPrefix+"foo".
const keywordPrefix = "\x00"

// NewKeyword returns the String encoding of the keyword named name (without
// its leading colon).
func NewKeyword(name string) String {
	return String(keywordPrefix + name)
}

// IsKeyword reports whether s was constructed with NewKeyword.
func IsKeyword(s String) bool {
	return strings.HasPrefix(string(s), keywordPrefix)
}

// KeywordName returns the keyword's name without its reserved prefix byte or
// leading colon. Calling it on a non-keyword String returns the string
// unchanged.
func KeywordName(s String) string {
	return strings.TrimPrefix(string(s), keywordPrefix)
}
