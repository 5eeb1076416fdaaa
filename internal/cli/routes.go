package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ramsha-Haris/table/internal/branding"
	"github.com/Ramsha-Haris/table/internal/nav"
)

// commandFor maps a screen route to the command that shows it.
func commandFor(route string) string {
	name := branding.CLIName()
	switch {
	case route == nav.Login || route == "/":
		return name + " login"
	case route == nav.Signup:
		return name + " signup"
	case route == nav.Bookings:
		return name + " bookings list"
	case route == nav.NewBooking:
		return name + " book"
	case strings.HasPrefix(route, nav.EditPrefix):
		id, _, _ := strings.Cut(strings.TrimPrefix(route, nav.EditPrefix), "?")
		return name + " bookings edit " + id
	case route == nav.HostTables:
		return name + " tables list"
	case route == nav.AddTable:
		return name + " tables add"
	default:
		return name + " --help"
	}
}

// follow waits out a redirect delay and tells the user where to go next.
func follow(cmd *cobra.Command, r *nav.Redirect) error {
	if r == nil {
		return nil
	}
	if err := r.Wait(cmd.Context(), clock); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Next: %s\n", commandFor(r.To))
	return nil
}
