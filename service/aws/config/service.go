package awsconfig

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/rs/zerolog"
)

func NewService() *service {
	return &service{}
}

// GetAWSCfg loads the default credential chain. An empty profile keeps the
// SDK's own profile resolution (AWS_PROFILE, then "default").
func (s *service) GetAWSCfg(ctx context.Context, region, profile string) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	zerolog.Ctx(ctx).Debug().Str("region", region).Str("profile", profile).Msg("loading aws config")
	return config.LoadDefaultConfig(ctx, opts...)
}
