package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"growth-projector/service"
)

func newClockCommand(_ *app) *cobra.Command {
	var tz string

	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Show the current time period in a time zone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reading, err := service.NewClockService().Read(tz)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s (next: %s)  color %s\n",
				reading.TimeZone,
				reading.LocalTime.Format("15:04:05"),
				reading.Period,
				reading.NextPeriod,
				reading.Color,
			)
			return err
		},
	}
	cmd.Flags().StringVar(&tz, "tz", "UTC", "IANA time zone name, e.g. Asia/Tokyo")
	return cmd
}
