package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	configAdapter "github.com/remedykit/remedy/internal/adapters/outbound/config"
	"github.com/remedykit/remedy/internal/adapters/outbound/detector"
	"github.com/remedykit/remedy/internal/adapters/outbound/gitinfo"
	learningAdapter "github.com/remedykit/remedy/internal/adapters/outbound/learning"
	"github.com/remedykit/remedy/internal/adapters/outbound/tui"
	"github.com/remedykit/remedy/internal/application"
	"github.com/remedykit/remedy/internal/domain/learn"
	"github.com/remedykit/remedy/internal/domain/strategy"
)

func newFixCmd() *cobra.Command {
	var (
		unsafeMode bool
		jsonOut    bool
		write      bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "fix <file>",
		Short: "Detect issues in a file and apply automatic fixes",
		Long:  "Detect issues, apply safe fixes in priority order, verify the result against a fresh detection pass, and report what was changed and what needs human attention.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			info, err := os.Stat(absPath)
			if err != nil {
				return fmt.Errorf("reading file: %w", err)
			}
			content, err := os.ReadFile(absPath)
			if err != nil {
				return fmt.Errorf("reading file: %w", err)
			}

			projectDir := filepath.Dir(absPath)

			cfg, err := configAdapter.New().Load(projectDir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if unsafeMode {
				cfg.SafetyMode = false
			}

			logger := zap.NewNop()
			if verbose {
				if logger, err = zap.NewDevelopment(); err != nil {
					return fmt.Errorf("building logger: %w", err)
				}
			}

			store := learn.NewStore()
			persist := learningAdapter.New()
			entries, loadErr := persist.Load(projectDir)
			if loadErr != nil {
				logger.Warn("loading learning stats failed; starting fresh", zap.Error(loadErr))
			}
			store.Restore(entries)

			svc := application.NewFixService(
				detector.New(),
				strategy.NewRegistry(),
				store,
				gitinfo.New(),
				cfg,
				logger,
			)

			result, err := svc.RunSession(cmd.Context(), absPath, string(content))
			if err != nil {
				return fmt.Errorf("fix failed: %w", err)
			}

			if err := persist.Save(projectDir, store.Snapshot()); err != nil {
				logger.Warn("saving learning stats failed", zap.Error(err))
			}

			if write && result.FixedText != result.OriginalText {
				if err := os.WriteFile(absPath, []byte(result.FixedText), info.Mode()); err != nil {
					return fmt.Errorf("writing fixed file: %w", err)
				}
			}

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderSession(result))
			return nil
		},
	}

	cmd.Flags().BoolVar(&unsafeMode, "unsafe", false, "Apply risky fixes as well as safe ones")
	cmd.Flags().BoolVar(&write, "write", false, "Write the fixed text back to the file")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output the session result as JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log session progress")

	return cmd
}
