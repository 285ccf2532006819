package config

// DefaultConfig returns configuration with sensible defaults, matching
// the defaults named in this kernel's external interface (damping=0.85,
// max_iterations=100, tolerance=1e-6, hub threshold=3).
func DefaultConfig() *Config {
	return &Config{
		PageRank: PageRankSettings{
			Damping:       0.85,
			MaxIterations: 100,
			Tolerance:     1e-6,
		},
		Hub: HubSettings{
			DefaultThreshold: 3,
		},
		Resolver: ResolverSettings{
			Extensions: []string{".py", ".js", ".ts", ".tsx", ".jsx", ".go", ".rs"},
		},
	}
}

// Merge merges loaded config with defaults. Values from loaded config
// take precedence over defaults. Returns a new Config with merged values.
func Merge(loaded, defaults *Config) *Config {
	return &Config{
		PageRank: mergePageRankSettings(loaded.PageRank, defaults.PageRank),
		Hub:      mergeHubSettings(loaded.Hub, defaults.Hub),
		Resolver: mergeResolverSettings(loaded.Resolver, defaults.Resolver),
	}
}

func mergePageRankSettings(loaded, defaults PageRankSettings) PageRankSettings {
	result := PageRankSettings{}

	if loaded.Damping != 0 {
		result.Damping = loaded.Damping
	} else {
		result.Damping = defaults.Damping
	}

	if loaded.MaxIterations != 0 {
		result.MaxIterations = loaded.MaxIterations
	} else {
		result.MaxIterations = defaults.MaxIterations
	}

	if loaded.Tolerance != 0 {
		result.Tolerance = loaded.Tolerance
	} else {
		result.Tolerance = defaults.Tolerance
	}

	return result
}

func mergeHubSettings(loaded, defaults HubSettings) HubSettings {
	if loaded.DefaultThreshold != 0 {
		return HubSettings{DefaultThreshold: loaded.DefaultThreshold}
	}
	return HubSettings{DefaultThreshold: defaults.DefaultThreshold}
}

func mergeResolverSettings(loaded, defaults ResolverSettings) ResolverSettings {
	if len(loaded.Extensions) > 0 {
		return ResolverSettings{Extensions: loaded.Extensions}
	}
	return ResolverSettings{Extensions: defaults.Extensions}
}
