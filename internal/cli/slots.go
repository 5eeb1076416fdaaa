package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ramsha-Haris/table/internal/booking"
	"github.com/Ramsha-Haris/table/internal/config"
)

var slotsJSON bool

func init() {
	slotsCmd.Flags().BoolVar(&slotsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(slotsCmd)
}

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "Print the bookable time slots",
	Long: `Print the time slots offered by the booking form. The range and step come
from the slots.start, slots.end and slots.interval settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		s := config.Current()
		slots, err := booking.TimeSlots(s.SlotStart, s.SlotEnd, s.SlotInterval)
		if err != nil {
			return err
		}
		if slotsJSON {
			return printJSON(cmd, slots)
		}
		for _, slot := range slots {
			fmt.Fprintln(cmd.OutOrStdout(), slot)
		}
		return nil
	},
}
