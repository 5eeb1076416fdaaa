package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Ramsha-Haris/table/internal/inventory"
	"github.com/Ramsha-Haris/table/internal/model"
)

var (
	tableCode     string
	tableCapacity string
	tableLocation string
	tableBranch   string
	tableNoInput  bool
	tableYes      bool
	tablesJSON    bool
)

func init() {
	for _, c := range []*cobra.Command{tablesAddCmd, tablesEditCmd} {
		c.Flags().StringVar(&tableCode, "code", "", "Table code")
		c.Flags().StringVar(&tableCapacity, "capacity", "", "Seats at the table")
		c.Flags().StringVar(&tableLocation, "location", "", "Where the table is, e.g. Terrace")
		c.Flags().StringVar(&tableBranch, "branch", "", "Restaurant branch")
		c.Flags().BoolVar(&tableNoInput, "no-input", false, "Do not prompt; use flags only")
	}
	tablesDeleteCmd.Flags().BoolVarP(&tableYes, "yes", "y", false, "Delete without confirmation")
	tablesListCmd.Flags().BoolVar(&tablesJSON, "json", false, "Output in JSON format")

	tablesCmd.AddCommand(tablesListCmd, tablesAddCmd, tablesEditCmd, tablesDeleteCmd)
	rootCmd.AddCommand(tablesCmd)
}

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Manage the restaurant's tables (hosts only)",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := rootCmd.PersistentPreRunE(cmd, args); err != nil {
			return err
		}
		return current.requireHost()
	},
}

// loadInventory fetches the host's tables.
func loadInventory(cmd *cobra.Command) (*inventory.Inventory, error) {
	inv := inventory.New(current.client, current.notifier, current.log)
	if !inv.Load(cmd.Context()) {
		return nil, errors.New("loading tables failed")
	}
	return inv, nil
}

var tablesListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, err := loadInventory(cmd)
		if err != nil {
			return err
		}
		tables := inv.Tables()
		if tablesJSON {
			return printJSON(cmd, tables)
		}
		if len(tables) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No tables yet. Add one with 'tables add'.")
			return nil
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tCODE\tCAPACITY\tLOCATION\tBRANCH")
		fmt.Fprintln(tw, "--\t----\t--------\t--------\t------")
		for _, t := range tables {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\n", t.ID, t.Code, t.Capacity, t.Location, t.Branch)
		}
		return tw.Flush()
	},
}

var tablesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a table",
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, err := loadInventory(cmd)
		if err != nil {
			return err
		}
		return runEditor(cmd, inv, inv.OpenAdd())
	},
}

var tablesEditCmd = &cobra.Command{
	Use:   "edit <id|code>",
	Short: "Edit a table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, err := loadInventory(cmd)
		if err != nil {
			return err
		}
		ed, err := inv.OpenEdit(args[0])
		if err != nil {
			return err
		}
		return runEditor(cmd, inv, ed)
	},
}

var tablesDeleteCmd = &cobra.Command{
	Use:   "delete <id|code>",
	Short: "Delete a table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, err := loadInventory(cmd)
		if err != nil {
			return err
		}
		t, ok := inv.Find(args[0])
		if !ok {
			return fmt.Errorf("no table %q", args[0])
		}

		p := newPrompter(cmd)
		confirmed := false
		confirm := inventory.ConfirmFunc(func(q string) bool {
			confirmed = tableYes || p.confirm(q)
			return confirmed
		})
		if !inv.Delete(cmd.Context(), t.ID, confirm) && confirmed {
			return errors.New("table was not deleted")
		}
		return nil
	},
}

// runEditor fills the editor from flags and prompts, then saves. A failed
// save re-prompts unless input is disabled.
func runEditor(cmd *cobra.Command, inv *inventory.Inventory, ed *inventory.Editor) error {
	set := cmd.Flags().Changed
	if set("code") {
		ed.Draft.Code = tableCode
	}
	if set("capacity") {
		ed.Draft.Capacity = tableCapacity
	}
	if set("location") {
		ed.Draft.Location = tableLocation
	}
	if set("branch") {
		ed.Draft.Branch = tableBranch
	}

	p := newPrompter(cmd)
	fmt.Fprintln(p.w, ed.Title())
	for {
		if !tableNoInput {
			if err := promptDraft(p, &ed.Draft); err != nil {
				return err
			}
		}
		if inv.Save(cmd.Context()) {
			return nil
		}
		if tableNoInput || inv.Editor() == nil {
			return errors.New("table was not saved")
		}
		if !p.confirm("Try again?") {
			inv.Close()
			return errors.New("table was not saved")
		}
	}
}

func promptDraft(p *prompter, d *inventory.Draft) error {
	var err error
	if d.Code, err = p.ask("Table code", d.Code); err != nil {
		return err
	}
	if d.Capacity, err = p.ask("Capacity", d.Capacity); err != nil {
		return err
	}
	if d.Location, err = p.ask("Location", d.Location); err != nil {
		return err
	}
	branches := make([]string, len(model.Branches))
	for i, b := range model.Branches {
		branches[i] = string(b)
	}
	i, err := p.choose("Branch (empty keeps "+orNone(d.Branch)+"):", branches, true)
	if err != nil {
		return err
	}
	if i >= 0 {
		d.Branch = branches[i]
	}
	return nil
}
