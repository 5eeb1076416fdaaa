package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Ramsha-Haris/table/internal/model"
	"github.com/Ramsha-Haris/table/internal/notify"
)

// DeletePrompt is the confirmation shown before deleting a table.
const DeletePrompt = "Are you sure you want to delete this table?"

// Service is the subset of the API the inventory uses.
type Service interface {
	HostTables(ctx context.Context) ([]model.Table, error)
	AddTable(ctx context.Context, in model.TableInput) ([]model.Table, error)
	UpdateTable(ctx context.Context, id string, in model.TableInput) error
	DeleteTable(ctx context.Context, id string) error
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Editor is the add/edit dialog. IsNew selects the add endpoint.
type Editor struct {
	IsNew  bool
	Draft  Draft
	Saving bool
}

// Title is the dialog heading.
func (e *Editor) Title() string {
	if e.IsNew {
		return "Add Table"
	}
	return "Edit Table"
}

// ButtonLabel is the submit button text.
func (e *Editor) ButtonLabel() string {
	switch {
	case e.Saving:
		return "Saving..."
	case e.IsNew:
		return "Add Table"
	default:
		return "Save Changes"
	}
}

// Inventory is the host table management screen.
type Inventory struct {
	mu       sync.Mutex
	svc      Service
	notifier notify.Notifier
	log      logrus.FieldLogger

	loading bool
	tables  []model.Table
	editor  *Editor
}

// New returns an empty inventory.
func New(svc Service, n notify.Notifier, log logrus.FieldLogger) *Inventory {
	return &Inventory{svc: svc, notifier: n, log: log, loading: true}
}

// Load fetches the host's tables.
func (inv *Inventory) Load(ctx context.Context) bool {
	inv.mu.Lock()
	inv.loading = true
	inv.mu.Unlock()

	tables, err := inv.svc.HostTables(ctx)

	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.loading = false
	if err != nil {
		inv.log.WithError(err).Error("fetching host tables")
		inv.notifier.Error("Failed to fetch tables")
		return false
	}
	inv.tables = tables
	return true
}

// Loading reports whether a fetch is in progress.
func (inv *Inventory) Loading() bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.loading
}

// Tables returns a copy of the current tables.
func (inv *Inventory) Tables() []model.Table {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return append([]model.Table(nil), inv.tables...)
}

// Find returns the table whose ID or code matches ref.
func (inv *Inventory) Find(ref string) (model.Table, bool) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	for _, t := range inv.tables {
		if t.ID == ref {
			return t, true
		}
	}
	for _, t := range inv.tables {
		if t.CodeString() == ref {
			return t, true
		}
	}
	return model.Table{}, false
}

// OpenAdd opens the editor with blank fields.
func (inv *Inventory) OpenAdd() *Editor {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.editor = &Editor{IsNew: true}
	return inv.editor
}

// OpenEdit opens the editor on the table with the given ID or code.
func (inv *Inventory) OpenEdit(ref string) (*Editor, error) {
	t, ok := inv.Find(ref)
	if !ok {
		return nil, fmt.Errorf("no table %q", ref)
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.editor = &Editor{Draft: DraftFrom(t)}
	return inv.editor, nil
}

// Editor returns the open editor, or nil.
func (inv *Inventory) Editor() *Editor {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.editor
}

// Close dismisses the editor.
func (inv *Inventory) Close() {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.editor = nil
}

// Save submits the open editor. Missing or malformed fields are reported
// without a request. The editor closes on success and stays open on
// failure.
func (inv *Inventory) Save(ctx context.Context) bool {
	inv.mu.Lock()
	ed := inv.editor
	inv.mu.Unlock()
	if ed == nil {
		return false
	}

	draft := ed.Draft.trimmed()
	if draft.missing() {
		inv.notifier.Warn("All fields are required")
		return false
	}
	if err := model.Validator().Struct(draft); err != nil {
		inv.notifier.Warn(joinMessages(model.FieldMessages(err)))
		return false
	}
	in, err := draft.Input()
	if err != nil {
		inv.notifier.Warn(err.Error())
		return false
	}

	inv.mu.Lock()
	ed.Saving = true
	inv.mu.Unlock()
	defer func() {
		inv.mu.Lock()
		ed.Saving = false
		inv.mu.Unlock()
	}()

	if ed.IsNew {
		return inv.create(ctx, in)
	}
	return inv.update(ctx, draft.ID, in)
}

func (inv *Inventory) create(ctx context.Context, in model.TableInput) bool {
	tables, err := inv.svc.AddTable(ctx, in)
	if err != nil {
		inv.log.WithError(err).WithField("code", in.Code).Error("adding table")
		inv.notifier.Error("Failed to add table")
		return false
	}

	inv.mu.Lock()
	inv.tables = tables
	inv.editor = nil
	inv.mu.Unlock()
	inv.notifier.Success("New table added successfully")
	return true
}

func (inv *Inventory) update(ctx context.Context, id string, in model.TableInput) bool {
	if err := inv.svc.UpdateTable(ctx, id, in); err != nil {
		inv.log.WithError(err).WithField("table", id).Error("updating table")
		inv.notifier.Error("Failed to update table")
		return false
	}

	inv.mu.Lock()
	for i := range inv.tables {
		if inv.tables[i].ID == id {
			inv.tables[i] = in.Table(id)
		}
	}
	inv.editor = nil
	inv.mu.Unlock()
	inv.notifier.Success("Table updated successfully")
	return true
}

// Delete removes a table after confirmation. A declined prompt does
// nothing; a failed request keeps the table.
func (inv *Inventory) Delete(ctx context.Context, id string, c Confirmer) bool {
	if !c.Confirm(DeletePrompt) {
		return false
	}
	if err := inv.svc.DeleteTable(ctx, id); err != nil {
		inv.log.WithError(err).WithField("table", id).Error("deleting table")
		inv.notifier.Error("Failed to delete table")
		return false
	}

	inv.mu.Lock()
	kept := inv.tables[:0:0]
	for _, t := range inv.tables {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	inv.tables = kept
	inv.mu.Unlock()
	inv.notifier.Success("Table deleted successfully")
	return true
}

func joinMessages(m map[string]string) string {
	msgs := make([]string, 0, len(m))
	for _, v := range m {
		msgs = append(msgs, v)
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}
