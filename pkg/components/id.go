package components

import (
	"encoding/hex"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// componentNamespace scopes generated component IDs.
var componentNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("styled.components"))

var componentCounter atomic.Uint64

// generateComponentID returns "<name>-<8 hex>". The hex suffix is taken from a
// name-based UUID over the name and a process-wide counter, so two components
// with the same display name get different IDs.
func generateComponentID(name string) string {
	seq := componentCounter.Add(1)
	id := uuid.NewSHA1(componentNamespace, []byte(name+"/"+strconv.FormatUint(seq, 10)))
	return escapeName(name) + "-" + hex.EncodeToString(id[:4])
}

// escapeName keeps letters, digits, '-' and '_' and replaces anything else with
// '-', collapsing runs.
func escapeName(name string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "sc"
	}
	return out
}
