package intake

import "strings"

// IsHoneypotTripped reports whether the hidden hp_name field was filled in.
func IsHoneypotTripped(sub Submission) bool {
	return strings.TrimSpace(sub.HPName) != ""
}
