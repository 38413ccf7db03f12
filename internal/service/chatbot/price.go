package chatbot

import (
	"regexp"
	"strconv"
)

// Patterns are tried in this order and the first hit wins; an utterance like
// "under $300 or less" must resolve through the "under" form.
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)under\s*[₹$]?\s*(\d+)`),
	regexp.MustCompile(`(?i)below\s*[₹$]?\s*(\d+)`),
	regexp.MustCompile(`(?i)less than\s*[₹$]?\s*(\d+)`),
	regexp.MustCompile(`(?i)[₹$]\s*(\d+)\s*(?:or less|and below)`),
}

// ExtractPriceLimit scans the utterance for a price ceiling. ok=false means
// no constraint, which downstream filters must not confuse with a limit of
// zero.
func ExtractPriceLimit(utterance string) (limit int, ok bool) {
	for _, pattern := range pricePatterns {
		match := pattern.FindStringSubmatch(utterance)
		if match == nil {
			continue
		}
		parsed, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		return parsed, true
	}
	return 0, false
}
