package main

import (
	"os"

	"github.com/elC0mpa/aws-ri-doctor/cmd/mcp/tools"
)

// LoadConfig reads configuration from environment variables
func LoadConfig() tools.Config {
	return tools.Config{
		AWSRegion:  getEnvOrDefault("AWS_REGION", "us-east-1"),
		AWSProfile: os.Getenv("AWS_PROFILE"),
		LogLevel:   getEnvOrDefault("RI_DOCTOR_LOG_LEVEL", "warn"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
