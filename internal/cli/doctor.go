package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ramsha-Haris/table/internal/booking"
	"github.com/Ramsha-Haris/table/internal/config"
	"github.com/Ramsha-Haris/table/internal/platform"
)

var (
	checkConfig  bool
	checkSession bool
	checkBackend bool
	checkBooking string
	doctorFix    bool
)

func init() {
	doctorCmd.Flags().BoolVar(&checkConfig, "check-config", false, "Verify the config file and slot settings")
	doctorCmd.Flags().BoolVar(&checkSession, "check-session", false, "Verify session files and permissions for this tab")
	doctorCmd.Flags().BoolVar(&checkBackend, "check-backend", false, "Verify the backend is reachable")
	doctorCmd.Flags().StringVar(&checkBooking, "check-booking", "", "Validate a booking JSON file at the given path")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Tighten session file permissions")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the client setup",
	Long:  `Run diagnostic checks on configuration, the session for this tab, and the backend.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		anyFlag := checkConfig || checkSession || checkBackend || checkBooking != "" || doctorFix

		// If no specific flag, run all checks.
		if !anyFlag {
			runConfigCheck(w)
			runSessionCheck(w, false)
			runBackendCheck(cmd.Context(), w)
			return nil
		}

		if checkConfig {
			runConfigCheck(w)
		}
		if checkSession || doctorFix {
			runSessionCheck(w, doctorFix)
		}
		if checkBackend {
			runBackendCheck(cmd.Context(), w)
		}
		if checkBooking != "" {
			return runBookingCheck(w, checkBooking)
		}
		return nil
	},
}

func runConfigCheck(w io.Writer) {
	fmt.Fprintln(w, "Config check:")
	path := config.FilePath()
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(w, "  [INFO] %s not found, using defaults\n", path)
	} else {
		fmt.Fprintf(w, "  [ OK ] %s\n", path)
	}
	fmt.Fprintf(w, "  [ OK ] api_url = %s\n", current.settings.APIURL)

	s := current.settings
	slots, err := booking.TimeSlots(s.SlotStart, s.SlotEnd, s.SlotInterval)
	switch {
	case err != nil:
		fmt.Fprintf(w, "  [FAIL] time slots: %v\n", err)
	case len(slots) == 0:
		fmt.Fprintf(w, "  [WARN] time slots: %s to %s yields no slots\n", s.SlotStart, s.SlotEnd)
	default:
		fmt.Fprintf(w, "  [ OK ] %d time slots from %s to %s\n", len(slots), slots[0], slots[len(slots)-1])
	}
}

func runSessionCheck(w io.Writer, fix bool) {
	fmt.Fprintf(w, "Session check (tab %q):\n", current.settings.Tab)
	checkPerm(w, current.tabDir, platform.DirPermSecure, fix)
	checkPerm(w, current.storage.Path(), platform.FilePermSecure, fix)

	if u := current.session.User(); u != nil {
		fmt.Fprintf(w, "  [ OK ] logged in as %s (%s)\n", u.Email, u.Role)
	} else {
		fmt.Fprintln(w, "  [INFO] not logged in")
	}
}

func checkPerm(w io.Writer, path string, want os.FileMode, fix bool) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [INFO] %s does not exist yet\n", path)
		return
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return
	}
	got := info.Mode().Perm()
	if got&^want == 0 {
		fmt.Fprintf(w, "  [ OK ] %s (%04o)\n", path, got)
		return
	}
	if !fix {
		fmt.Fprintf(w, "  [WARN] %s is %04o, want %04o (run with --fix)\n", path, got, want)
		return
	}
	if err := platform.Chmod(path, want); err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return
	}
	fmt.Fprintf(w, "  [FIXED] %s set to %04o\n", path, want)
}

func runBackendCheck(ctx context.Context, w io.Writer) {
	fmt.Fprintln(w, "Backend check:")
	status, err := current.client.Ping(ctx)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s answered %d\n", current.client.BaseURL(), status)
}

func runBookingCheck(w io.Writer, path string) error {
	fmt.Fprintf(w, "Booking validation: %s\n", path)

	issues, err := booking.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return fmt.Errorf("booking validation failed: %w", err)
	}
	if len(issues) == 0 {
		fmt.Fprintln(w, "  [ OK ] Valid booking")
		return nil
	}

	fmt.Fprintf(w, "  [FAIL] %d validation issue(s):\n", len(issues))
	for _, issue := range issues {
		fmt.Fprintf(w, "    - %s\n", issue)
	}
	return fmt.Errorf("booking %s has %d validation issue(s)", path, len(issues))
}
