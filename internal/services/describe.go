package services

import (
	"fmt"
	"strings"
)

// DescribeRoute builds a human-readable route summary from the major
// road numbers reported by the routing backend, capped at three roads.
// Without road data it degrades to "origin → destination".
func DescribeRoute(origin, destination string, roadNumbers []string) string {
	seen := make(map[string]struct{}, len(roadNumbers))
	roads := make([]string, 0, 3)
	for _, r := range roadNumbers {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		roads = append(roads, r)
		if len(roads) == 3 {
			break
		}
	}

	if len(roads) == 0 {
		return fmt.Sprintf("%s → %s", origin, destination)
	}
	return fmt.Sprintf("%s → %s → %s", origin, strings.Join(roads, " → "), destination)
}
