package services

import "strings"

// enumLabel turns a snake_case enum value into a display label, so
// "race_preview" becomes "Race Preview".
func enumLabel(value string) string {
	words := strings.Split(value, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
