package model

type Flags struct {
	// AWS-specific flags
	Region  string `mapstructure:"region" validate:"required"`
	Profile string `mapstructure:"profile"`

	// Report flags
	View          string `mapstructure:"view" validate:"required,oneof=instance normalized"`
	Output        string `mapstructure:"output" validate:"required,oneof=tui table json"`
	SkipMalformed bool   `mapstructure:"skip-malformed"`
	CostExplorer  bool   `mapstructure:"cost-explorer"`

	// Logging flags
	LogLevel string `mapstructure:"log-level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
	LogFile  string `mapstructure:"log-file"`

	Config string `mapstructure:"config"`
}
