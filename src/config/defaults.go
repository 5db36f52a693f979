package config

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Agent: AgentConfig{
			Name:        "codecritic",
			Version:     "1.0.0",
			Description: "Heuristic source code quality analyzer",
		},
		Checkers: CheckersConfig{
			Syntax:   true,
			Runtime:  true,
			Logical:  true,
			Security: true,
		},
		Metrics: MetricsConfig{
			Complexity: ComplexityConfig{
				MediumThreshold: 10,
				HighThreshold:   20,
			},
			Maintainability: MaintainabilityConfig{
				LongLineLength:      80,
				LowAvgLineLength:    100,
				LowLongLineRatio:    0.2,
				MediumAvgLineLength: 80,
				MediumLongLineRatio: 0.1,
			},
			Readability: ReadabilityConfig{
				MinDescriptiveLength:   3,
				LowDescriptiveRatio:    0.7,
				MediumDescriptiveRatio: 0.9,
			},
			Efficiency: EfficiencyConfig{
				LoopDensityThreshold: 0.2,
			},
		},
		Concurrency: ConcurrencyConfig{
			MaxParallelAnalyses: 4,
		},
		Output: OutputConfig{
			Formats:              []string{"json"},
			OutputDir:            ".",
			IncludeSuggestions:   true,
			IncludeBestPractices: true,
			IncludeMetrics:       true,
			Color:                true,
		},
		Logging: LoggingConfig{
			Level:            "info",
			IncludeTimestamp: true,
			Color:            false,
		},
	}
}
