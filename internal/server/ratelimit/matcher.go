package ratelimit

import (
	"strings"
)

// MatchEndpoint returns the first configuration whose method and path pattern
// match the request, or nil. Patterns use the ServeMux wildcard syntax: a
// "{name}" segment matches any one non-empty segment and a final "{name...}"
// segment matches the rest of the path.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	for i := range configs {
		config := &configs[i]
		if config.Method == method && matchPattern(config.Path, path) {
			return config
		}
	}
	return nil
}

func matchPattern(pattern, path string) bool {
	patternSegs := splitPath(pattern)
	pathSegs := splitPath(path)

	for i, seg := range patternSegs {
		if isWildcard(seg) && strings.HasSuffix(seg, "...}") {
			return i == len(patternSegs)-1 && len(pathSegs) >= i
		}
		if i >= len(pathSegs) {
			return false
		}
		if isWildcard(seg) {
			if pathSegs[i] == "" {
				return false
			}
			continue
		}
		if seg != pathSegs[i] {
			return false
		}
	}
	return len(patternSegs) == len(pathSegs)
}

func splitPath(p string) []string {
	return strings.Split(strings.Trim(p, "/"), "/")
}

func isWildcard(seg string) bool {
	return strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}")
}
