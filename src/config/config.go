package config

// Config is the root configuration structure
type Config struct {
	Agent       AgentConfig       `yaml:"agent"`
	Checkers    CheckersConfig    `yaml:"checkers"`
	Metrics     MetricsConfig     `yaml:"metrics"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// AgentConfig contains agent metadata
type AgentConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// CheckersConfig toggles individual bug checkers
type CheckersConfig struct {
	Syntax   bool `yaml:"syntax"`
	Runtime  bool `yaml:"runtime"`
	Logical  bool `yaml:"logical"`
	Security bool `yaml:"security"`
}

// MetricsConfig contains thresholds for the four quality scores
type MetricsConfig struct {
	Complexity      ComplexityConfig      `yaml:"complexity"`
	Maintainability MaintainabilityConfig `yaml:"maintainability"`
	Readability     ReadabilityConfig     `yaml:"readability"`
	Efficiency      EfficiencyConfig      `yaml:"efficiency"`
}

// ComplexityConfig contains complexity score thresholds.
// The score counts control keywords, opening braces and parenthesized groups.
type ComplexityConfig struct {
	MediumThreshold int `yaml:"medium_threshold"`
	HighThreshold   int `yaml:"high_threshold"`
}

// MaintainabilityConfig contains line-length based maintainability thresholds
type MaintainabilityConfig struct {
	LongLineLength      int     `yaml:"long_line_length"`
	LowAvgLineLength    float64 `yaml:"low_avg_line_length"`
	LowLongLineRatio    float64 `yaml:"low_long_line_ratio"`
	MediumAvgLineLength float64 `yaml:"medium_avg_line_length"`
	MediumLongLineRatio float64 `yaml:"medium_long_line_ratio"`
}

// ReadabilityConfig contains naming and indentation readability thresholds
type ReadabilityConfig struct {
	MinDescriptiveLength   int     `yaml:"min_descriptive_length"`
	LowDescriptiveRatio    float64 `yaml:"low_descriptive_ratio"`
	MediumDescriptiveRatio float64 `yaml:"medium_descriptive_ratio"`
}

// EfficiencyConfig contains loop-density efficiency thresholds
type EfficiencyConfig struct {
	LoopDensityThreshold float64 `yaml:"loop_density_threshold"`
}

// ConcurrencyConfig contains batch analysis settings
type ConcurrencyConfig struct {
	MaxParallelAnalyses int `yaml:"max_parallel_analyses"`
}

// OutputConfig contains report output settings
type OutputConfig struct {
	Formats              []string `yaml:"formats"`
	OutputDir            string   `yaml:"output_dir"`
	IncludeSuggestions   bool     `yaml:"include_suggestions"`
	IncludeBestPractices bool     `yaml:"include_best_practices"`
	IncludeMetrics       bool     `yaml:"include_metrics"`
	Color                bool     `yaml:"color"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level            string `yaml:"level"`
	File             string `yaml:"file"`
	IncludeTimestamp bool   `yaml:"include_timestamp"`
	Color            bool   `yaml:"color"`
}
