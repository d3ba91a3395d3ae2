package lists

import (
	"fmt"
	"strconv"
	"strings"
)

// resolveRef turns a list number (1-based, as printed) or an ID prefix
// into a record ID.
func resolveRef(ids []string, ref string) (string, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(ids) {
			return "", fmt.Errorf("no item number %d (have %d)", n, len(ids))
		}
		return ids[n-1], nil
	}

	var match string
	for _, id := range ids {
		if id == ref {
			return id, nil
		}
		if strings.HasPrefix(id, ref) {
			if match != "" {
				return "", fmt.Errorf("%q matches more than one item", ref)
			}
			match = id
		}
	}
	if match == "" {
		return "", fmt.Errorf("no item matches %q", ref)
	}
	return match, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
