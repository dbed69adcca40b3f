package core

import (
	"fmt"
)

func safeString(s string) string {
	return fmt.Sprintf("%s\x00", s)
}

func safeStrings(sgs []string) []string {
	safe := make([]string, len(sgs))
	for i, s := range sgs {
		safe[i] = safeString(s)
	}
	return safe
}

// missingNames returns the entries of required that do not appear in
// available, preserving the order of required.
func missingNames(required, available []string) []string {
	have := make(map[string]struct{}, len(available))
	for _, name := range available {
		have[name] = struct{}{}
	}

	var missing []string
	for _, name := range required {
		if _, ok := have[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
