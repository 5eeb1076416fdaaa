package model

import "strconv"

// Branch is a physical restaurant location.
type Branch string

// Known branches.
const (
	BranchLahore    Branch = "Lahore"
	BranchIslamabad Branch = "Islamabad"
)

// Branches lists the selectable branches in display order.
var Branches = []Branch{BranchLahore, BranchIslamabad}

// Table is a bookable table. Available is computed by the booking form from
// the per-slot availability check; the backend may also send it.
type Table struct {
	ID        string `json:"_id,omitempty"`
	Code      int    `json:"tableCode"`
	Capacity  int    `json:"tableCapacity"`
	Location  string `json:"location"`
	Branch    Branch `json:"branch"`
	Available bool   `json:"isAvailable,omitempty"`
}

// CodeString returns the table code in the form used by booking table lists.
func (t Table) CodeString() string {
	return strconv.Itoa(t.Code)
}

// TableInput is the body of add-table and update-table requests.
type TableInput struct {
	ID       string `json:"_id,omitempty"`
	Code     int    `json:"tableCode"`
	Capacity int    `json:"tableCapacity"`
	Location string `json:"location"`
	Branch   Branch `json:"branch"`
}

// Table converts the input into a table record with the given ID.
func (in TableInput) Table(id string) Table {
	return Table{
		ID:       id,
		Code:     in.Code,
		Capacity: in.Capacity,
		Location: in.Location,
		Branch:   in.Branch,
	}
}
