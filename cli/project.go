package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"growth-projector/domain"
	"growth-projector/service"
)

func newProjectCommand(a *app) *cobra.Command {
	var (
		input  domain.GrowthInput
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Print the year-by-year projection between two values",
		Example: `  growth project --start-value 265 --end-value 1870 --start-year 2021 --end-year 2030
  growth project --start-value 1000 --end-value 500 --start-year 2020 --end-year 2025 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defaults := a.cfg.Defaults.Input()
			flags := cmd.Flags()
			if !flags.Changed("start-value") {
				input.StartValue = defaults.StartValue
			}
			if !flags.Changed("end-value") {
				input.EndValue = defaults.EndValue
			}
			if !flags.Changed("start-year") {
				input.StartYear = defaults.StartYear
			}
			if !flags.Changed("end-year") {
				input.EndYear = defaults.EndYear
			}

			svc := service.NewGrowthService(nil, service.WithLogger(a.logger))
			result, err := svc.Project(cmd.Context(), input)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			return printTable(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().Float64Var(&input.StartValue, "start-value", 0, "value in the start year (default from config)")
	cmd.Flags().Float64Var(&input.EndValue, "end-value", 0, "value in the end year (default from config)")
	cmd.Flags().IntVar(&input.StartYear, "start-year", 0, "first year of the series (default from config)")
	cmd.Flags().IntVar(&input.EndYear, "end-year", 0, "last year of the series (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the projection as JSON")
	return cmd
}

func printTable(w io.Writer, p domain.Projection) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Year\tValue\t")
	for _, pt := range p.Series {
		fmt.Fprintf(tw, "%d\t%g\t\n", pt.Year, service.CeilToOneDecimal(pt.Value))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nCAGR: %.2f%%\n%s\n", service.RoundTo2Decimals(p.Rate*100), p.Summary)
	return err
}
