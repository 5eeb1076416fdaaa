package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Ramsha-Haris/table/internal/model"
)

type tablesResponse struct {
	Tables []model.Table `json:"tables"`
}

// HostTables lists the host's registered tables.
func (c *Client) HostTables(ctx context.Context) ([]model.Table, error) {
	var out tablesResponse
	if _, err := c.do(ctx, http.MethodGet, "/api/host/host-table-list", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Tables, nil
}

// AddTable registers a table and returns the full, updated list.
func (c *Client) AddTable(ctx context.Context, in model.TableInput) ([]model.Table, error) {
	var out tablesResponse
	if _, err := c.do(ctx, http.MethodPost, "/api/host/add-table", nil, in, &out); err != nil {
		return nil, err
	}
	return out.Tables, nil
}

// UpdateTable replaces a table's fields.
func (c *Client) UpdateTable(ctx context.Context, id string, in model.TableInput) error {
	_, err := c.do(ctx, http.MethodPut, "/api/host/update-table/"+url.PathEscape(id), nil, in, nil)
	return err
}

// DeleteTable removes a table.
func (c *Client) DeleteTable(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/host/delete-table/"+url.PathEscape(id), nil, nil, nil)
	return err
}

// BookTableData lists the tables offered by the booking form.
func (c *Client) BookTableData(ctx context.Context) ([]model.Table, error) {
	var out tablesResponse
	if _, err := c.do(ctx, http.MethodGet, "/api/host/book-table-data", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Tables, nil
}
