package assert

import (
	"sort"

	"github.com/Zcytxcbyz/projectile/internal/domain"
)

func sortedKeys(in map[string]domain.JSONPathExpectation) []string {
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
