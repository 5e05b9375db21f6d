// README: Mention extractor; recovers catalog items referenced in generated free text.
package assistant

import (
	"strings"
	"unicode/utf8"

	"menuboard/internal/catalog"
)

// ExtractMentions scans generated text for catalog references: an available
// item is mentioned when the lower-cased text contains its full lower-cased
// name, or any single word of the name longer than three characters. The
// first maxCandidates matches in catalog iteration order are returned; there
// is no ranking beyond that order.
func ExtractMentions(text string, snap *catalog.Snapshot) []catalog.Item {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	lower := strings.ToLower(text)

	var out []catalog.Item
	for _, it := range snap.AvailableItems() {
		if mentioned(lower, strings.ToLower(it.Name)) {
			out = append(out, it)
			if len(out) == maxCandidates {
				break
			}
		}
	}
	return out
}

func mentioned(text, name string) bool {
	if strings.Contains(text, name) {
		return true
	}
	for _, word := range strings.Fields(name) {
		if utf8.RuneCountInString(word) > 3 && strings.Contains(text, word) {
			return true
		}
	}
	return false
}
