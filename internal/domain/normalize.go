package domain

import "strings"

// NormalizeText folds a catalog word for duplicate detection. Case is
// dropped and whitespace runs become one space. Diacritics, hyphens and
// apostrophes count, so "resume" and "résumé" stay distinct words.
func NormalizeText(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

// WordKey identifies a source/target pair within one imported group.
func WordKey(source, target string) string {
	return NormalizeText(source) + "\x00" + NormalizeText(target)
}

// CountWords is the word count writing bounds are checked against: every
// whitespace-separated token is a word, punctuation included.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
