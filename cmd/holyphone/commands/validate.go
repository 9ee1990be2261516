package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type validation struct {
	Input string `json:"input" yaml:"input"`
	Local string `json:"local" yaml:"local"`
	Valid bool   `json:"valid" yaml:"valid"`
}

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [number...]",
		Short: "Check numbers against the numbering plan; exits non-zero if any is invalid",
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := numbersFrom(cmd, args)
			if err != nil {
				return err
			}
			resp, err := svc.ClassifyBatch(cmd.Context(), numbers, clean)
			if err != nil {
				return err
			}

			results := make([]validation, 0, len(resp.Results))
			for _, r := range resp.Results {
				results = append(results, validation{Input: r.Input, Local: r.Local, Valid: r.Valid})
			}

			if err := render(cmd.OutOrStdout(), results, func(tw *tabwriter.Writer) {
				for _, r := range results {
					row(tw, r.Input, yesNo(r.Valid))
				}
			}); err != nil {
				return err
			}

			if invalid := resp.Count - resp.Valid; invalid > 0 {
				return fmt.Errorf("%d of %d numbers are invalid", invalid, resp.Count)
			}
			return nil
		},
	}
	return cmd
}
