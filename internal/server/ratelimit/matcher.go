package ratelimit

import (
	"strings"
)

// MatchEndpoint matches a request path and method to an endpoint configuration.
// Returns the matching EndpointConfig or nil if no match is found.
// Path matching supports prefix matching (e.g., "/users/" matches "/users/{id}/closet").
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// Health and metrics probes are unlimited
	if method == "GET" && (path == "/health" || path == "/metrics") {
		return &EndpointConfig{Limit: 0}
	}

	// Exact match first
	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	// Prefix match for paths ending with "/"
	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") {
			if strings.HasPrefix(path, config.Path) {
				return config
			}
		}
	}

	return nil
}
