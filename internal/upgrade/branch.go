package upgrade

import (
	"fmt"
	"strings"
	"time"
)

// BranchName derives the upgrade branch name from the module, target
// version and a timestamp. Letters, digits and periods survive; every
// other character becomes an underscore. The timestamp keeps reruns
// from colliding down to one-second granularity.
func BranchName(module, version string, ts time.Time) string {
	name := fmt.Sprintf("upgrade_%s_to_%s_%d", module, version, ts.Unix())
	return sanitize(name)
}

func sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
