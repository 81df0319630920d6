package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/remedykit/remedy/internal/adapters/outbound/detector"
	"github.com/remedykit/remedy/internal/adapters/outbound/tui"
)

func newScanCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "scan <file>",
		Short: "Detect issues in a file without fixing anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			content, err := os.ReadFile(absPath)
			if err != nil {
				return fmt.Errorf("reading file: %w", err)
			}

			detection, err := detector.New().DetectIssues(cmd.Context(), absPath, string(content))
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(detection)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderScan(absPath, detection))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output the detection result as JSON")

	return cmd
}
