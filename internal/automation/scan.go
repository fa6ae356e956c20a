package automation

import (
	"sort"
	"strings"
)

// FindAssetURL walks an arbitrary decoded JSON document depth-first and
// returns the first HTTP(S) URL string that does not contain the excluded
// substring. Map keys are visited in sorted order so discovery is
// deterministic across runs.
func FindAssetURL(doc any, exclude string) (string, bool) {
	switch value := doc.(type) {
	case string:
		if isCandidateURL(value, exclude) {
			return value, true
		}
	case map[string]any:
		keys := make([]string, 0, len(value))
		for key := range value {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if url, ok := FindAssetURL(value[key], exclude); ok {
				return url, true
			}
		}
	case []any:
		for _, item := range value {
			if url, ok := FindAssetURL(item, exclude); ok {
				return url, true
			}
		}
	}
	return "", false
}

func isCandidateURL(s, exclude string) bool {
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return false
	}
	if exclude != "" && strings.Contains(s, exclude) {
		return false
	}
	return true
}
