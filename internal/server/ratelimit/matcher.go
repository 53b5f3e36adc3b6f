package ratelimit

import "strings"

// MatchEndpoint resolves the policy for a request path and method.
// Exact matches win over prefix matches; paths ending in "/" match as
// prefixes so "/analyses/" covers "/analyses/{id}". Health checks are
// always unlimited.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		cfg := &configs[i]
		if cfg.Path == path && cfg.Method == method {
			return cfg
		}
	}

	for i := range configs {
		cfg := &configs[i]
		if cfg.Method == method && strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) {
			return cfg
		}
	}

	return nil
}
