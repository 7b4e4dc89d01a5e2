package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/elC0mpa/aws-ri-doctor/model"
	awsconfig "github.com/elC0mpa/aws-ri-doctor/service/aws/config"
	awscostexplorer "github.com/elC0mpa/aws-ri-doctor/service/aws/costexplorer"
	awsec2 "github.com/elC0mpa/aws-ri-doctor/service/aws/ec2"
	awssts "github.com/elC0mpa/aws-ri-doctor/service/aws/sts"
	"github.com/elC0mpa/aws-ri-doctor/service/logger"
	"github.com/elC0mpa/aws-ri-doctor/service/orchestrator"
	"github.com/elC0mpa/aws-ri-doctor/service/report"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Config holds environment-based configuration for the MCP server
type Config struct {
	AWSRegion  string
	AWSProfile string
	LogLevel   string
}

// collectFunc fetches and aggregates a coverage report for a region.
type collectFunc func(ctx context.Context, flags model.Flags) (*orchestrator.Report, error)

// RegisterEC2Tools registers the reserved instance coverage tools
func RegisterEC2Tools(s *server.MCPServer, cfg Config, log logger.Logger) {
	collect := awsCollector(cfg.AWSProfile)

	s.AddTool(
		mcp.NewTool("aws_get_ri_instance_view",
			mcp.WithDescription("Count running EC2 instances and active/retired reserved instances per platform and instance type"),
			mcp.WithString("region", mcp.Description("AWS region, defaults to the server region")),
		),
		makeInstanceViewHandler(cfg, log, collect),
	)

	s.AddTool(
		mcp.NewTool("aws_get_ri_normalized_view",
			mcp.WithDescription("Compare running and reserved EC2 capacity per platform and instance family in normalized units, with coverage percentage"),
			mcp.WithString("region", mcp.Description("AWS region, defaults to the server region")),
			mcp.WithBoolean("cost_explorer", mcp.Description("Also include the coverage reported by Cost Explorer for the last 30 days")),
		),
		makeNormalizedViewHandler(cfg, log, collect),
	)
}

func awsCollector(profile string) collectFunc {
	return func(ctx context.Context, flags model.Flags) (*orchestrator.Report, error) {
		configSvc := awsconfig.NewService()
		awsCfg, err := configSvc.GetAWSCfg(ctx, flags.Region, profile)
		if err != nil {
			return nil, fmt.Errorf("loading aws config: %w", err)
		}

		orchestratorSvc := orchestrator.NewService(
			awssts.NewService(awsCfg),
			awsec2.NewService(awsCfg),
			awscostexplorer.NewService(awsCfg),
			io.Discard,
		)
		return orchestratorSvc.Collect(ctx, flags)
	}
}

func requestFlags(cfg Config, request mcp.CallToolRequest) model.Flags {
	return model.Flags{
		Region:        request.GetString("region", cfg.AWSRegion),
		Profile:       cfg.AWSProfile,
		SkipMalformed: true,
		CostExplorer:  request.GetBool("cost_explorer", false),
	}
}

func makeInstanceViewHandler(cfg Config, log logger.Logger, collect collectFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx = logger.WithContext(ctx, log)

		r, err := collect(ctx, requestFlags(cfg, request))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to collect coverage: %v", err)), nil
		}

		resp := struct {
			Account        *report.AccountInfo  `json:"account"`
			Region         string               `json:"region"`
			Instances      []report.InstanceRow `json:"instances"`
			SkippedRecords int                  `json:"skipped_records"`
		}{
			Account:        report.ConvertAccountInfo(r.Account),
			Region:         r.Region,
			Instances:      report.ConvertInstanceRows(r.Table.Snapshot()),
			SkippedRecords: r.Skipped,
		}
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeNormalizedViewHandler(cfg Config, log logger.Logger, collect collectFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx = logger.WithContext(ctx, log)

		r, err := collect(ctx, requestFlags(cfg, request))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to collect coverage: %v", err)), nil
		}

		counters, err := r.Table.Normalized()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to normalize coverage: %v", err)), nil
		}

		resp := struct {
			Account      *report.AccountInfo          `json:"account"`
			Region       string                       `json:"region"`
			Families     []report.FamilyRow           `json:"families"`
			CostExplorer *report.CostExplorerCoverage `json:"cost_explorer,omitempty"`
		}{
			Account:      report.ConvertAccountInfo(r.Account),
			Region:       r.Region,
			Families:     report.ConvertFamilyRows(counters),
			CostExplorer: report.ConvertCoverageSummary(r.Summary),
		}
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}
