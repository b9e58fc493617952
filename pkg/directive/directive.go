// Package directive extracts and repairs the [MOSTRAR_IMAGEN: ...] markers
// the model is instructed to embed whenever it mentions a catalog design.
// Generation is not fully compliant, so Repair guarantees the marker is
// present whenever a design is named. All functions are pure.
package directive

import (
	"regexp"
	"strings"

	"github.com/Joako199002/proyecto-alzarea/pkg/catalog"
)

// markerRe matches one marker occurrence, case-insensitive and tolerant of
// whitespace around the keyword and names.
var markerRe = regexp.MustCompile(`(?i)\[\s*MOSTRAR_IMAGEN\s*:([^\]]*)\]`)

// Extract finds every marker in text, collects the comma-separated design
// names across all occurrences in order of appearance, and returns the text
// with all markers removed and surrounding whitespace trimmed.
// Empty or malformed markers are stripped but contribute no names.
func Extract(text string) (clean string, names []string) {
	for _, m := range markerRe.FindAllStringSubmatch(text, -1) {
		for _, raw := range strings.Split(m[1], ",") {
			if name := strings.TrimSpace(raw); name != "" {
				names = append(names, name)
			}
		}
	}
	clean = markerRe.ReplaceAllString(text, "")
	clean = strings.TrimSpace(clean)
	return clean, names
}

// Repair appends a single marker to text when it carries no marker but
// mentions one or more known designs (case-insensitive substring match).
// Matched names are listed in catalog order, deduplicated, with bundle
// partners forced in even if only one of the pair is mentioned.
// Text already carrying a marker is returned unchanged.
func Repair(text string) string {
	if markerRe.MatchString(text) {
		return text
	}

	upper := strings.ToUpper(text)
	mentioned := make(map[string]bool)
	for _, name := range catalog.Names() {
		if strings.Contains(upper, name) {
			mentioned[name] = true
			for _, partner := range catalog.BundlePartners(name) {
				mentioned[partner] = true
			}
		}
	}
	if len(mentioned) == 0 {
		return text
	}

	// catalog order keeps the output deterministic
	listed := make([]string, 0, len(mentioned))
	for _, name := range catalog.Names() {
		if mentioned[name] {
			listed = append(listed, name)
		}
	}
	return text + " [MOSTRAR_IMAGEN: " + strings.Join(listed, ", ") + "]"
}
