package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ramsha-Haris/table/internal/booking"
	"github.com/Ramsha-Haris/table/internal/model"
)

var (
	formFirst    string
	formLast     string
	formContact  string
	formGuests   int
	formDate     string
	formSlot     string
	formDuration int
	formTables   []string
	formType     string
	formTags     []string
	formNotes    string
	formStatus   string
	formNoInput  bool
)

func init() {
	for _, c := range []*cobra.Command{bookCmd, bookingsEditCmd} {
		f := c.Flags()
		f.StringVar(&formFirst, "first", "", "Guest first name")
		f.StringVar(&formLast, "last", "", "Guest last name")
		f.StringVar(&formContact, "contact", "", "Guest contact details")
		f.IntVar(&formGuests, "guests", 0, "Number of guests")
		f.StringVar(&formDate, "date", "", "Reservation date (YYYY-MM-DD)")
		f.StringVar(&formSlot, "slot", "", "Time slot, e.g. \"7:30 PM\" or 19:30")
		f.IntVar(&formDuration, "duration", 0, "Duration in hours")
		f.StringSliceVar(&formTables, "tables", nil, "Table codes to reserve")
		f.StringVar(&formType, "type", "", "Booking type ("+strings.Join(model.BookingTypes, ", ")+")")
		f.StringSliceVar(&formTags, "tag", nil, "Reservation tags ("+strings.Join(model.Tags, ", ")+")")
		f.StringVar(&formNotes, "notes", "", "Booking notes")
		f.StringVar(&formStatus, "status", "", "Booking status ("+strings.Join(model.Statuses, ", ")+")")
		f.BoolVar(&formNoInput, "no-input", false, "Do not prompt; use flags only")
	}
	rootCmd.AddCommand(bookCmd)
}

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Reserve one or more tables",
	Long: `Reserve tables for a party. Values not given as flags are prompted for.
Typing a first name looks up previous guests; picking one fills the last
name and contact details. Tables booked for the chosen slot cannot be
selected.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := current.requireLogin(); err != nil {
			return err
		}
		return runForm(cmd, nil)
	},
}

// runForm drives the booking form for a new booking or, with existing, an
// edit.
func runForm(cmd *cobra.Command, existing *model.Booking) error {
	ctx := cmd.Context()
	s := current.settings
	form, err := booking.NewForm(booking.Deps{
		Service:       current.client,
		Notifier:      current.notifier,
		Log:           current.log,
		Clock:         current.clock,
		User:          current.session.User(),
		Debounce:      s.Debounce,
		RedirectDelay: s.RedirectDelay,
	}, existing)
	if err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	fmt.Fprintf(errOut, "%s\n", form.Title())
	if form.Editing() {
		fmt.Fprintf(errOut, "Created by: %s\n", form.CreatedBy())
	}

	if !form.LoadTables(ctx) {
		return errors.New("could not load tables")
	}
	if err := applyFormFlags(cmd, form); err != nil {
		return err
	}

	p := newPrompter(cmd)
	if !formNoInput {
		if err := promptForm(cmd, p, form); err != nil {
			return err
		}
	}

	fmt.Fprintf(errOut, "\nTables: %s\n%s\n", form.SelectedText(), form.Summary())
	if !formNoInput && !p.confirm(form.SubmitLabel()+"?") {
		fmt.Fprintln(errOut, "Cancelled.")
		return nil
	}

	res := form.Submit(ctx)
	if !res.OK {
		for _, issue := range res.Issues {
			fmt.Fprintf(errOut, "  - %s\n", issue)
		}
		return errors.New("booking was not saved")
	}
	return follow(cmd, res.Redirect)
}

// applyFormFlags copies explicitly set flags onto the form. Date and slot go
// first so table availability is known before tables are toggled.
func applyFormFlags(cmd *cobra.Command, form *booking.Form) error {
	ctx := cmd.Context()
	set := cmd.Flags().Changed

	if set("date") {
		if err := form.SetDate(ctx, formDate); err != nil {
			return err
		}
	}
	if set("slot") {
		form.SetTimeSlot(ctx, formSlot)
	}
	if set("first") {
		form.SetFirstName(formFirst)
	}
	if set("last") {
		form.SetLastName(formLast)
	}
	if set("contact") {
		form.SetContact(formContact)
	}
	if set("guests") {
		form.SetGuests(formGuests)
	}
	if set("duration") {
		form.SetDuration(formDuration)
	}
	if set("notes") {
		form.SetNotes(formNotes)
	}
	if set("type") {
		if err := form.SetType(formType); err != nil {
			return err
		}
	}
	if set("status") {
		if err := form.SetStatus(formStatus); err != nil {
			return err
		}
	}
	if set("tag") {
		if err := setTags(form, formTags); err != nil {
			return err
		}
	}
	if set("tables") {
		if err := setTables(form, formTables); err != nil {
			return err
		}
	}
	return nil
}

// setTags toggles tags until the form holds exactly want.
func setTags(form *booking.Form, want []string) error {
	for _, t := range form.Fields().Tags {
		if !slices.Contains(want, t) {
			if err := form.ToggleTag(t); err != nil {
				return err
			}
		}
	}
	have := form.Fields().Tags
	for _, t := range want {
		t = strings.TrimSpace(t)
		if t == "" || slices.Contains(have, t) {
			continue
		}
		if err := form.ToggleTag(t); err != nil {
			return err
		}
		have = append(have, t)
	}
	return nil
}

// setTables toggles tables until the selection is exactly want.
func setTables(form *booking.Form, want []string) error {
	for _, c := range form.Fields().Tables {
		if !slices.Contains(want, c) {
			if err := form.ToggleTable(c); err != nil {
				return err
			}
		}
	}
	for _, c := range want {
		c = strings.TrimSpace(c)
		if c == "" || form.Fields().Tables.Contains(c) {
			continue
		}
		if err := form.ToggleTable(c); err != nil {
			return err
		}
	}
	return nil
}

func promptForm(cmd *cobra.Command, p *prompter, form *booking.Form) error {
	ctx := cmd.Context()
	set := cmd.Flags().Changed
	f := form.Fields()

	if !set("first") {
		name, err := p.ask("First name", f.FirstName)
		if err != nil {
			return err
		}
		if name != f.FirstName {
			if err := lookupGuest(cmd, p, form, name); err != nil {
				return err
			}
		}
		f = form.Fields()
	}
	if !set("last") {
		v, err := p.ask("Last name", f.LastName)
		if err != nil {
			return err
		}
		form.SetLastName(v)
	}
	if !set("contact") {
		v, err := p.ask("Contact details", f.Contact)
		if err != nil {
			return err
		}
		form.SetContact(v)
	}
	if !set("guests") {
		n, err := p.askInt("Number of guests", f.Guests.Int())
		if err != nil {
			return err
		}
		form.SetGuests(n)
	}
	if !set("date") {
		for {
			d, err := p.ask("Date (YYYY-MM-DD)", f.Date)
			if err != nil {
				return err
			}
			if d == "" || d == f.Date {
				break
			}
			if err := form.SetDate(ctx, d); err != nil {
				fmt.Fprintf(p.w, "  %v\n", err)
				continue
			}
			break
		}
	}
	if !set("slot") {
		if err := promptSlot(cmd, p, form); err != nil {
			return err
		}
	}
	if !set("duration") {
		n, err := p.askInt("Duration (hours)", f.Duration.Int())
		if err != nil {
			return err
		}
		form.SetDuration(n)
	}
	if !set("tables") {
		if err := pickTables(p, form); err != nil {
			return err
		}
	}
	if !set("type") {
		i, err := p.choose("Booking type (empty keeps "+orNone(f.Type)+"):", model.BookingTypes, true)
		if err != nil {
			return err
		}
		if i >= 0 {
			if err := form.SetType(model.BookingTypes[i]); err != nil {
				return err
			}
		}
	}
	if !set("tag") {
		for {
			v, err := p.ask("Tags, comma separated ("+strings.Join(model.Tags, ", ")+")", strings.Join(form.Fields().Tags, ","))
			if err != nil {
				return err
			}
			if err := setTags(form, splitList(v)); err != nil {
				fmt.Fprintf(p.w, "  %v\n", err)
				continue
			}
			break
		}
	}
	if !set("notes") {
		v, err := p.ask("Notes", f.Notes)
		if err != nil {
			return err
		}
		form.SetNotes(v)
	}
	if !set("status") {
		i, err := p.choose("Status (empty keeps "+form.Fields().Status+"):", model.Statuses, true)
		if err != nil {
			return err
		}
		if i >= 0 {
			if err := form.SetStatus(model.Statuses[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

// lookupGuest feeds the name to the typeahead, waits for the lookup to
// settle and offers the matches.
func lookupGuest(cmd *cobra.Command, p *prompter, form *booking.Form, name string) error {
	settled := make(chan bool, 1)
	form.Names().OnSettle(func(q string, applied bool) {
		if q == name {
			select {
			case settled <- applied:
			default:
			}
		}
	})
	defer form.Names().OnSettle(nil)

	form.NameInput(cmd.Context(), name)
	if strings.TrimSpace(name) == "" {
		return nil
	}

	select {
	case <-settled:
	case <-cmd.Context().Done():
		return cmd.Context().Err()
	case <-current.clock.After(current.settings.Debounce + current.settings.Timeout):
		form.Names().Close()
		return nil
	}

	matches := form.Names().Suggestions()
	if len(matches) == 0 {
		return nil
	}
	labels := make([]string, len(matches))
	for i, m := range matches {
		labels[i] = m.Label()
	}
	i, err := p.choose("Previous guests (empty for a new guest):", labels, true)
	if err != nil {
		return err
	}
	if i < 0 {
		form.Names().Close()
		return nil
	}
	form.SelectSuggestion(i)
	return nil
}

func promptSlot(cmd *cobra.Command, p *prompter, form *booking.Form) error {
	s := current.settings
	slots, err := booking.TimeSlots(s.SlotStart, s.SlotEnd, s.SlotInterval)
	if err != nil {
		return err
	}
	i, err := p.choose("Time slot (empty keeps "+orNone(form.Fields().TimeSlot)+"):", slots, true)
	if err != nil {
		return err
	}
	if i >= 0 {
		form.SetTimeSlot(cmd.Context(), slots[i])
	}
	return nil
}

// pickTables toggles tables by code until an empty answer.
func pickTables(p *prompter, form *booking.Form) error {
	for {
		selected := form.Fields().Tables
		fmt.Fprintln(p.w, "\nTables:")
		for _, t := range form.Tables() {
			mark := "[ ]"
			switch {
			case selected.Contains(t.CodeString()):
				mark = "[x]"
			case !t.Available:
				mark = " - "
			}
			fmt.Fprintf(p.w, "  %s %-4d seats %-3d %s, %s\n", mark, t.Code, t.Capacity, t.Location, t.Branch)
		}
		fmt.Fprintln(p.w, form.Summary())

		code, err := p.ask("Toggle table (empty when done)", "")
		if err != nil {
			return err
		}
		if code == "" {
			return nil
		}
		if err := form.ToggleTable(code); err != nil {
			fmt.Fprintf(p.w, "  %v\n", err)
		}
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
