package device

import (
	"regexp"
	"strings"
)

// udidPattern extracts the trailing bracketed identifier from an inventory
// descriptor such as "iPhone 6 (9.0 Simulator) [ABCD-1234]".
var udidPattern = regexp.MustCompile(`\[([^\]]+)\]$`)

// Match scans the inventory for target as a substring and returns the winning
// descriptor along with its bracketed identifier. The whole inventory is
// scanned and the last containing entry wins; later entries overwrite earlier
// matches. No match is a normal outcome, reported through ok, not an error.
//
// The identifier can be empty even when ok is true, if the winning descriptor
// carries no trailing bracketed token.
func Match(target string, inventory []string) (descriptor, udid string, ok bool) {
	if target == "" {
		return "", "", false
	}

	for _, entry := range inventory {
		if !strings.Contains(entry, target) {
			continue
		}
		descriptor = entry
		ok = true
		udid = ""
		if m := udidPattern.FindStringSubmatch(entry); m != nil {
			udid = m[1]
		}
	}
	return descriptor, udid, ok
}
