package flag

import (
	"fmt"
	"strings"

	"github.com/elC0mpa/aws-ri-doctor/model"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "RI_DOCTOR"

func NewService() *service {
	return &service{
		v:        viper.New(),
		validate: validator.New(),
	}
}

type service struct {
	v        *viper.Viper
	validate *validator.Validate
}

// RegisterFlags declares the command line flags on fs and binds them.
func (s *service) RegisterFlags(fs *pflag.FlagSet) error {
	fs.String("region", "us-east-1", "AWS region")
	fs.String("profile", "", "AWS profile configuration")
	fs.String("view", "instance", "Initial view: instance or normalized")
	fs.String("output", "tui", "Output mode: tui, table or json")
	fs.Bool("skip-malformed", true, "Skip records with a malformed instance type instead of aborting")
	fs.Bool("cost-explorer", false, "Also fetch the reservation coverage reported by Cost Explorer")
	fs.String("log-level", "warn", "Log level")
	fs.String("log-file", "", "Write logs to this file instead of stderr")
	fs.String("config", "", "Optional YAML config file")

	if err := s.v.BindPFlags(fs); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	s.v.SetEnvPrefix(envPrefix)
	s.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	s.v.AutomaticEnv()

	// The SDK's own variables win over the prefixed ones.
	if err := s.v.BindEnv("region", "AWS_REGION", envPrefix+"_REGION"); err != nil {
		return err
	}
	return s.v.BindEnv("profile", "AWS_PROFILE", envPrefix+"_PROFILE")
}

// GetParsedFlags resolves flags, environment and the optional config file,
// in that order of precedence, and validates the result.
func (s *service) GetParsedFlags() (model.Flags, error) {
	if path := s.v.GetString("config"); path != "" {
		s.v.SetConfigFile(path)
		s.v.SetConfigType("yaml")
		if err := s.v.ReadInConfig(); err != nil {
			return model.Flags{}, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
	}

	var flags model.Flags
	if err := s.v.Unmarshal(&flags); err != nil {
		return model.Flags{}, fmt.Errorf("failed to unmarshal flags: %w", err)
	}

	if err := s.validate.Struct(&flags); err != nil {
		var problems []string
		if ve, ok := err.(validator.ValidationErrors); ok {
			for _, e := range ve {
				problems = append(problems, formatValidationError(e))
			}
		}
		return model.Flags{}, fmt.Errorf("invalid flags: %s", strings.Join(problems, ", "))
	}

	return flags, nil
}

func formatValidationError(e validator.FieldError) string {
	field := strings.ToLower(e.Field())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s (required)", field)
	case "oneof":
		return fmt.Sprintf("%s=%v (oneof=%s)", field, e.Value(), e.Param())
	default:
		return fmt.Sprintf("%s (%s)", field, e.Tag())
	}
}
