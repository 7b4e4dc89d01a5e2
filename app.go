package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/elC0mpa/aws-ri-doctor/model"
	awsconfig "github.com/elC0mpa/aws-ri-doctor/service/aws/config"
	awscostexplorer "github.com/elC0mpa/aws-ri-doctor/service/aws/costexplorer"
	awsec2 "github.com/elC0mpa/aws-ri-doctor/service/aws/ec2"
	awssts "github.com/elC0mpa/aws-ri-doctor/service/aws/sts"
	"github.com/elC0mpa/aws-ri-doctor/service/flag"
	"github.com/elC0mpa/aws-ri-doctor/service/logger"
	"github.com/elC0mpa/aws-ri-doctor/service/orchestrator"
	"github.com/elC0mpa/aws-ri-doctor/utils"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		utils.StopSpinner()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flagService := flag.NewService()

	cmd := &cobra.Command{
		Use:           "aws-ri-doctor",
		Short:         "Compare running EC2 instances with reserved instance coverage",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags, err := flagService.GetParsedFlags()
			if err != nil {
				return err
			}
			return run(cmd.Context(), flags)
		},
	}

	if err := flagService.RegisterFlags(cmd.Flags()); err != nil {
		panic(err)
	}
	return cmd
}

func run(parent context.Context, flags model.Flags) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()

	var logOut io.Writer = os.Stderr
	if flags.LogFile != "" {
		f, err := os.OpenFile(flags.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	log, err := logger.New(flags.LogLevel, logOut)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	ctx = logger.WithContext(ctx, log)

	if flags.Output != "json" {
		utils.DrawBanner()
		utils.StartSpinner()
	}

	cfgService := awsconfig.NewService()
	awsCfg, err := cfgService.GetAWSCfg(ctx, flags.Region, flags.Profile)
	if err != nil {
		return fmt.Errorf("loading aws config: %w", err)
	}

	stsService := awssts.NewService(awsCfg)
	ec2Service := awsec2.NewService(awsCfg)
	costService := awscostexplorer.NewService(awsCfg)

	orchestratorService := orchestrator.NewService(stsService, ec2Service, costService, os.Stdout)
	return orchestratorService.Orchestrate(ctx, flags)
}
