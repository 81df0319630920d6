package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/remedykit/remedy/internal/domain/strategy"
)

func newStrategiesCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "strategies",
		Short: "List the registered fix strategies",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := strategy.NewRegistry()

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(reg.All())
			}

			for _, s := range reg.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-26s %.0f%%  %-7s  %s\n",
					s.ID, s.Confidence*100, s.Complexity, strings.Join(s.AppliesTo, ", "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output the catalog as JSON")

	return cmd
}
