package commands

import (
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [number...]",
		Short: "Print the numbering-plan classification of each number",
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := numbersFrom(cmd, args)
			if err != nil {
				return err
			}
			resp, err := svc.ClassifyBatch(cmd.Context(), numbers, clean)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), resp.Results, func(tw *tabwriter.Writer) {
				row(tw, "INPUT", "LOCAL", "INTERNATIONAL", "CATEGORY", "VALID", "ISRAELI", "PALESTINIAN", "KOSHER")
				for _, r := range resp.Results {
					row(tw, r.Input, r.Local, r.International, r.Category,
						yesNo(r.Valid), yesNo(r.Israeli), yesNo(r.Palestinian), yesNo(r.Kosher))
				}
			})
		},
	}
	return cmd
}
