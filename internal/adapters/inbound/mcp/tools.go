package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	configAdapter "github.com/remedykit/remedy/internal/adapters/outbound/config"
	"github.com/remedykit/remedy/internal/adapters/outbound/detector"
	"github.com/remedykit/remedy/internal/adapters/outbound/gitinfo"
	learningAdapter "github.com/remedykit/remedy/internal/adapters/outbound/learning"
	"github.com/remedykit/remedy/internal/application"
	"github.com/remedykit/remedy/internal/domain/learn"
	"github.com/remedykit/remedy/internal/domain/strategy"
)

// registerTools registers all Remedy MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. remedy_scan_file
	s.AddTool(
		mcplib.NewTool("remedy_scan_file",
			mcplib.WithDescription("Detect issues in a file without fixing anything"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path of the file to scan, relative to the project"),
			),
		),
		handleScanFile(projectPath),
	)

	// 2. remedy_fix_file
	s.AddTool(
		mcplib.NewTool("remedy_fix_file",
			mcplib.WithDescription("Run a remediation session over a file and return the session result (the file itself is not rewritten)"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path of the file to fix, relative to the project"),
			),
			mcplib.WithBoolean("unsafe",
				mcplib.Description("Apply risky fixes as well as safe ones"),
			),
		),
		handleFixFile(projectPath),
	)

	// 3. remedy_strategies
	s.AddTool(
		mcplib.NewTool("remedy_strategies",
			mcplib.WithDescription("Return the registered fix strategy catalog as JSON"),
		),
		handleStrategies(),
	)

	// 4. remedy_learning
	s.AddTool(
		mcplib.NewTool("remedy_learning",
			mcplib.WithDescription("Return the persisted learning statistics per (strategy, rule) pair"),
		),
		handleLearning(projectPath),
	)
}

func resolveFile(projectPath, file string) (string, string, error) {
	absPath := file
	if !filepath.IsAbs(absPath) {
		absPath = filepath.Join(projectPath, file)
	}
	content, err := os.ReadFile(absPath)
	if err != nil {
		return "", "", err
	}
	return absPath, string(content), nil
}

func handleScanFile(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		absPath, content, err := resolveFile(projectPath, file)
		if err != nil {
			return errorResult(fmt.Sprintf("reading file: %v", err)), nil
		}

		detection, err := detector.New().DetectIssues(ctx, absPath, content)
		if err != nil {
			return errorResult(fmt.Sprintf("scan failed: %v", err)), nil
		}
		return jsonResult(detection)
	}
}

func handleFixFile(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		absPath, content, err := resolveFile(projectPath, file)
		if err != nil {
			return errorResult(fmt.Sprintf("reading file: %v", err)), nil
		}

		cfg, err := configAdapter.New().Load(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}
		if request.GetBool("unsafe", false) {
			cfg.SafetyMode = false
		}

		store := learn.NewStore()
		persist := learningAdapter.New()
		entries, loadErr := persist.Load(projectPath)
		store.Restore(entries)

		svc := application.NewFixService(detector.New(), strategy.NewRegistry(), store, gitinfo.New(), cfg, nil)
		result, err := svc.RunSession(ctx, absPath, content)
		if err != nil {
			return errorResult(fmt.Sprintf("fix failed: %v", err)), nil
		}

		if loadErr != nil {
			result.Recommendations = append(result.Recommendations,
				fmt.Sprintf("learning stats could not be loaded and were reset: %v", loadErr))
		}
		if err := persist.Save(projectPath, store.Snapshot()); err != nil {
			result.Recommendations = append(result.Recommendations,
				fmt.Sprintf("learning stats could not be saved: %v", err))
		}
		return jsonResult(result)
	}
}

func handleStrategies() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(strategy.NewRegistry().All())
	}
}

func handleLearning(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		entries, err := learningAdapter.New().Load(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading learning stats: %v", err)), nil
		}
		return jsonResult(entries)
	}
}

// jsonResult marshals v and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns an error content result.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
