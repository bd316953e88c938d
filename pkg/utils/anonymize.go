package utils

import "strings"

// AnonymizeToken - masks token so it can be logged
// First and last clearLen characters are kept, the rest is replaced by asterisks.
// With clearLen 0 (or a token too short to keep anything) the whole token is masked.
func AnonymizeToken(token string, clearLen int) string {
	if clearLen > 0 && len(token) > clearLen*2 {
		return token[:clearLen] + strings.Repeat("*", len(token)-clearLen*2) + token[len(token)-clearLen:]
	}

	return strings.Repeat("*", len(token))
}
