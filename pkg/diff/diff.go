// Package diff compares rendered component previews line by line.
package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 2000
	truncateMessage = "... (diff truncated, exceeds 2,000 lines) ..."
)

// Status classifies a component across two renders.
type Status string

const (
	StatusUnchanged Status = "unchanged"
	StatusChanged   Status = "changed"
	StatusAdded     Status = "added"
	StatusRemoved   Status = "removed"
)

// Change is the comparison of one component's output.
type Change struct {
	Name   string
	Status Status
	Diff   string
}

// Unified returns a unified-style line diff of before and after, or "" when
// they are identical.
func Unified(before, after, beforeLabel, afterLabel string) string {
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(withNewline(before), withNewline(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var buf strings.Builder
	buf.WriteString("--- " + beforeLabel + "\n")
	buf.WriteString("+++ " + afterLabel + "\n")
	written := 2

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			if written >= maxDiffLines {
				buf.WriteString(truncateMessage + "\n")
				return buf.String()
			}
			buf.WriteString(prefix + line)
			written++
		}
	}

	return buf.String()
}

// Compare diffs two sets of named renders. Names keep the order of before,
// followed by names only present in after.
func Compare(beforeNames []string, before map[string]string, afterNames []string, after map[string]string) []Change {
	changes := make([]Change, 0, len(beforeNames)+len(afterNames))
	seen := make(map[string]struct{}, len(beforeNames))

	for _, name := range beforeNames {
		seen[name] = struct{}{}
		old := before[name]
		current, ok := after[name]
		switch {
		case !ok:
			changes = append(changes, Change{Name: name, Status: StatusRemoved, Diff: Unified(old, "", name, "/dev/null")})
		case old == current:
			changes = append(changes, Change{Name: name, Status: StatusUnchanged})
		default:
			changes = append(changes, Change{Name: name, Status: StatusChanged, Diff: Unified(old, current, name, name)})
		}
	}

	for _, name := range afterNames {
		if _, ok := seen[name]; ok {
			continue
		}
		changes = append(changes, Change{Name: name, Status: StatusAdded, Diff: Unified("", after[name], "/dev/null", name)})
	}

	return changes
}

// HasChanges reports whether any change is not StatusUnchanged.
func HasChanges(changes []Change) bool {
	for _, change := range changes {
		if change.Status != StatusUnchanged {
			return true
		}
	}
	return false
}

func withNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
