package commands

import (
	"text/tabwriter"

	"github.com/spf13/cobra"

	"holyland_phone/internal/classifier"
)

func internationalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "international [number...]",
		Aliases: []string{"intl"},
		Short:   "Convert numbers from local (0...) to international (972...) form",
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := numbersFrom(cmd, args)
			if err != nil {
				return err
			}

			conversions := make([]classifier.Conversion, 0, len(numbers))
			for _, n := range numbers {
				conversions = append(conversions, svc.International(n, clean))
			}

			return render(cmd.OutOrStdout(), conversions, func(tw *tabwriter.Writer) {
				for _, c := range conversions {
					row(tw, c.Input, c.International)
				}
			})
		},
	}
	return cmd
}
