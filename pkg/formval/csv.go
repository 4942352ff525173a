package formval

import "strings"

// SplitCSV turns a comma-joined form value into a trimmed list, dropping
// empty segments. Empty input yields an empty list, never nil.
func SplitCSV(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
