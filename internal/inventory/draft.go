package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Ramsha-Haris/table/internal/model"
)

// Draft is the editor's field values as typed.
type Draft struct {
	ID       string
	Code     string `validate:"required,numeric"`
	Capacity string `validate:"required,numeric"`
	Location string `validate:"required"`
	Branch   string `validate:"required,branch"`
}

// DraftFrom fills a draft from an existing table.
func DraftFrom(t model.Table) Draft {
	return Draft{
		ID:       t.ID,
		Code:     strconv.Itoa(t.Code),
		Capacity: strconv.Itoa(t.Capacity),
		Location: t.Location,
		Branch:   string(t.Branch),
	}
}

func (d Draft) trimmed() Draft {
	return Draft{
		ID:       d.ID,
		Code:     strings.TrimSpace(d.Code),
		Capacity: strings.TrimSpace(d.Capacity),
		Location: strings.TrimSpace(d.Location),
		Branch:   strings.TrimSpace(d.Branch),
	}
}

func (d Draft) missing() bool {
	return d.Code == "" || d.Capacity == "" || d.Location == "" || d.Branch == ""
}

// Input coerces the draft into a request body.
func (d Draft) Input() (model.TableInput, error) {
	d = d.trimmed()
	code, err := strconv.Atoi(d.Code)
	if err != nil {
		return model.TableInput{}, fmt.Errorf("table code %q is not a number", d.Code)
	}
	capacity, err := strconv.Atoi(d.Capacity)
	if err != nil {
		return model.TableInput{}, fmt.Errorf("capacity %q is not a number", d.Capacity)
	}
	return model.TableInput{
		ID:       d.ID,
		Code:     code,
		Capacity: capacity,
		Location: d.Location,
		Branch:   model.Branch(d.Branch),
	}, nil
}
