// Package images holds the pure image-list mutation rules: removal, append
// and make-primary over a record's ordered reference list. It never touches
// the filesystem; file side effects belong to the uploads manager.
package images

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Resolve finds the index of the reference matched by an identifier: an
// exact match on the stored reference, or a suffix match so callers may pass
// a bare filename. First match wins, in list order. Returns -1 when nothing
// matches.
func Resolve(refs []string, identifier string) int {
	if identifier == "" {
		return -1
	}
	for i, ref := range refs {
		if ref == identifier || strings.HasSuffix(ref, identifier) {
			return i
		}
	}
	return -1
}

// Remove drops the first reference matched by each identifier, preserving
// the relative order of the rest. It returns the kept and removed
// references; identifiers that match nothing are ignored.
func Remove(refs []string, identifiers []string) (kept []string, removed []string) {
	kept = make([]string, len(refs))
	copy(kept, refs)
	removed = make([]string, 0)

	for _, id := range identifiers {
		i := Resolve(kept, id)
		if i < 0 {
			continue
		}
		removed = append(removed, kept[i])
		kept = append(kept[:i], kept[i+1:]...)
	}
	return kept, removed
}

// MakePrimary moves one existing reference to the front of the list. The
// target is either a numeric index or an identifier (full reference or
// filename suffix). Unresolved targets and index 0 are no-ops.
func MakePrimary(refs []string, target string) []string {
	target = strings.TrimSpace(target)
	if target == "" {
		return refs
	}

	i := -1
	if n, err := strconv.Atoi(target); err == nil {
		i = n
	} else {
		i = Resolve(refs, target)
	}

	if i <= 0 || i >= len(refs) {
		return refs
	}

	out := make([]string, 0, len(refs))
	out = append(out, refs[i])
	out = append(out, refs[:i]...)
	out = append(out, refs[i+1:]...)
	return out
}

// ParseRemoveList normalizes the free-form removeImages payload into an
// ordered identifier list. It accepts a JSON-encoded string array or a
// comma-separated string; anything else yields an empty list.
func ParseRemoveList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if strings.HasPrefix(raw, "[") {
		var ids []string
		if err := json.Unmarshal([]byte(raw), &ids); err == nil {
			return ids
		}
		return nil
	}

	ids := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			ids = append(ids, part)
		}
	}
	return ids
}
