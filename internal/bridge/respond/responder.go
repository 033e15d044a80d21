// Package respond implements the deterministic mock responder. It is pure:
// no I/O, no external calls, no mutable state after package initialisation,
// so it is safe to call from any number of goroutines.
package respond

import (
	"hash/fnv"
	"strings"
)

// PlaceholderName substitutes for blank display names.
const PlaceholderName = "friend"

const closingLine = "Remember, {name}: you don't have to figure this out alone. I'm here whenever you want to talk."

// Respond builds the canned reply for one request. Unknown categories degrade
// to the general templates; the result always contains the display name and
// is never empty.
func Respond(category, message, userName string) string {
	name := strings.TrimSpace(userName)
	if name == "" {
		name = PlaceholderName
	}

	templates, ok := templateSet[category]
	if !ok {
		templates = templateSet[CategoryGeneral]
	}
	tpl := templates[pickIndex(message, len(templates))]

	var b strings.Builder
	b.WriteString(strings.ReplaceAll(tpl, nameToken, name))

	crisisAppended := false
	lower := strings.ToLower(message)
	for _, rule := range keywordRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(lower, trigger) {
				b.WriteString("\n\n")
				b.WriteString(rule.block)
				if rule.block == crisisResourcesBlock {
					crisisAppended = true
				}
				break
			}
		}
	}

	// Safety override: crisis replies carry the resources block even when no
	// keyword matched. Appended at most once.
	if category == CategoryCrisis && !crisisAppended {
		b.WriteString("\n\n")
		b.WriteString(crisisResourcesBlock)
	}

	b.WriteString("\n\n")
	b.WriteString(strings.ReplaceAll(closingLine, nameToken, name))

	return b.String()
}

// pickIndex maps the message text to a stable template index. Identical
// inputs always produce identical replies.
func pickIndex(message string, n int) int {
	if n <= 1 {
		return 0
	}
	h := fnv.New32a()
	h.Write([]byte(message))
	return int(h.Sum32() % uint32(n))
}
