package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Ramsha-Haris/table/internal/booking"
	"github.com/Ramsha-Haris/table/internal/export"
	"github.com/Ramsha-Haris/table/internal/listing"
	"github.com/Ramsha-Haris/table/internal/model"
)

var (
	listSort   []string
	listSearch string
	listFrom   string
	listTo     string
	listStatus string
	listToday  bool
	listJSON   bool
	listYAML   bool

	exportFormat string
	exportOutput string
)

func init() {
	for _, c := range []*cobra.Command{bookingsListCmd, bookingsExportCmd} {
		c.Flags().StringArrayVar(&listSort, "sort", nil, "Sort by firstName, date or timeSlot; repeat a key to reverse")
		c.Flags().StringVarP(&listSearch, "search", "s", "", "Match guest first name or table code")
		c.Flags().StringVar(&listFrom, "from", "", "Earliest date (YYYY-MM-DD)")
		c.Flags().StringVar(&listTo, "to", "", "Latest date (YYYY-MM-DD)")
		c.Flags().StringVar(&listStatus, "status", listing.TabAll, "Status tab to show")
		c.Flags().BoolVar(&listToday, "today", false, "Only bookings for today")
	}
	bookingsListCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	bookingsListCmd.Flags().BoolVar(&listYAML, "yaml", false, "Output in YAML format")

	bookingsExportCmd.Flags().StringVar(&exportFormat, "format", string(export.CSV), "Export format (csv or xlsx)")
	bookingsExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file, - for stdout (default: generated name)")

	bookingsCmd.AddCommand(bookingsListCmd, bookingsDeleteCmd, bookingsEditCmd, bookingsExportCmd)
	rootCmd.AddCommand(bookingsCmd)
}

var bookingsCmd = &cobra.Command{
	Use:     "bookings",
	Aliases: []string{"b"},
	Short:   "List and manage reservations",
}

// bookingRow is the machine-readable shape of a listed booking.
type bookingRow struct {
	ID       string   `json:"id" yaml:"id"`
	Number   string   `json:"bookingNumber,omitempty" yaml:"bookingNumber,omitempty"`
	Name     string   `json:"name" yaml:"name"`
	Guests   int      `json:"guests" yaml:"guests"`
	Date     string   `json:"date" yaml:"date"`
	TimeSlot string   `json:"timeSlot" yaml:"timeSlot"`
	Tables   []string `json:"tables" yaml:"tables"`
	Type     string   `json:"type,omitempty" yaml:"type,omitempty"`
	Tags     []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Status   string   `json:"status" yaml:"status"`
}

func rowOf(b model.Booking) bookingRow {
	return bookingRow{
		ID:       b.ID,
		Number:   b.BookingNumber,
		Name:     strings.TrimSpace(b.FirstName + " " + b.LastName),
		Guests:   b.Guests.Int(),
		Date:     b.DateOnly(),
		TimeSlot: b.TimeSlot,
		Tables:   []string(b.Tables),
		Type:     b.Type,
		Tags:     b.Tags,
		Status:   b.StatusLabel(),
	}
}

// dateFlag checks that a --from or --to value is a calendar date.
func dateFlag(name, v string) error {
	if v == "" {
		return nil
	}
	if _, err := time.Parse(time.DateOnly, v); err != nil {
		return fmt.Errorf("invalid --%s %q: want YYYY-MM-DD", name, v)
	}
	return nil
}

// loadView builds the list view from the shared filter flags and loads it.
func loadView(cmd *cobra.Command) (*listing.View, error) {
	if err := dateFlag("from", listFrom); err != nil {
		return nil, err
	}
	if err := dateFlag("to", listTo); err != nil {
		return nil, err
	}
	v := listing.NewView(current.client, current.notifier, current.log, current.clock)
	for _, s := range listSort {
		key, err := listing.ParseSortKey(s)
		if err != nil {
			return nil, err
		}
		v.RequestSort(key)
	}
	v.SetSearch(listSearch)
	v.SetDateRange(listFrom, listTo)
	v.SetTab(listStatus)
	v.SetTodayOnly(listToday)

	v.Load(cmd.Context())
	if v.State() != listing.Loaded {
		return nil, fmt.Errorf("loading bookings failed")
	}
	return v, nil
}

var bookingsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List bookings with sorting and filters",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := current.requireLogin(); err != nil {
			return err
		}
		v, err := loadView(cmd)
		if err != nil {
			return err
		}
		rows := v.Rows()

		if listJSON || listYAML {
			out := make([]bookingRow, 0, len(rows))
			for _, b := range rows {
				out = append(out, rowOf(b))
			}
			if listJSON {
				return printJSON(cmd, out)
			}
			return printYAML(cmd, out)
		}

		w := cmd.OutOrStdout()
		labels := make([]string, 0)
		for _, t := range v.Tabs() {
			l := t.Label()
			if strings.EqualFold(t.Status, v.Criteria().Tab) {
				l = "[" + l + "]"
			}
			labels = append(labels, l)
		}
		fmt.Fprintln(w, strings.Join(labels, "  "))
		fmt.Fprintln(w)

		if len(rows) == 0 {
			fmt.Fprintln(w, "No bookings found.")
			return nil
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tGUESTS\tDATE\tTIME\tTABLES\tSTATUS")
		fmt.Fprintln(tw, "--\t----\t------\t----\t----\t------\t------")
		for _, b := range rows {
			r := rowOf(b)
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
				r.ID, r.Name, r.Guests, r.Date, booking.FormatTime(r.TimeSlot),
				strings.Join(r.Tables, ", "), r.Status)
		}
		return tw.Flush()
	},
}

var bookingsDeleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Mark bookings as deleted",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := current.requireLogin(); err != nil {
			return err
		}
		v := listing.NewView(current.client, current.notifier, current.log, current.clock)
		failed := 0
		for _, id := range args {
			if !v.Delete(cmd.Context(), id) {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d deletions failed", failed, len(args))
		}
		return nil
	},
}

var bookingsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing booking",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := current.requireLogin(); err != nil {
			return err
		}
		existing, err := current.client.GetBooking(cmd.Context(), args[0])
		if err != nil {
			current.notifier.Error("Failed to load booking")
			return fmt.Errorf("fetching booking %s: %w", args[0], err)
		}
		return runForm(cmd, existing)
	},
}

var bookingsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered bookings to CSV or XLSX",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := current.requireLogin(); err != nil {
			return err
		}
		format, err := export.ParseFormat(exportFormat)
		if err != nil {
			return err
		}
		v, err := loadView(cmd)
		if err != nil {
			return err
		}
		rows := v.Rows()

		if exportOutput == "-" {
			return export.Write(cmd.OutOrStdout(), format, rows)
		}
		path := exportOutput
		if path == "" {
			path = export.FileName(format, current.clock.Now())
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		if err := export.Write(f, format, rows); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d bookings to %s\n", len(rows), path)
		return nil
	},
}
