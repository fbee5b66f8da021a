package dune

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// CreateTableRequest is the payload for the table create endpoint.
type CreateTableRequest struct {
	Namespace   string         `json:"namespace"`
	TableName   string         `json:"table_name"`
	Description string         `json:"description"`
	IsPrivate   bool           `json:"is_private"`
	Schema      []ColumnSchema `json:"schema"`
}

// CreateTableResponse is returned when a table is newly created.
type CreateTableResponse struct {
	Namespace    string `json:"namespace"`
	TableName    string `json:"table_name"`
	FullName     string `json:"full_name"`
	ExampleQuery string `json:"example_query"`
}

// InsertResult reports what an insert wrote.
type InsertResult struct {
	RowsWritten  int `json:"rows_written"`
	BytesWritten int `json:"bytes_written"`
}

// EnsureTable creates the table if it does not already exist. A
// conflict response means a previous run created it, which counts as
// success; created reports whether this call made the table.
func (c *Client) EnsureTable(ctx context.Context, req CreateTableRequest) (created bool, err error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return false, fmt.Errorf("marshal create table request: %w", err)
	}

	body, err := c.doWithRetry(ctx, "/table/create", contentTypeJSON, payload)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict {
			c.logger.Debug("table already exists",
				"namespace", req.Namespace,
				"table", req.TableName,
			)
			return false, nil
		}
		return false, err
	}

	var result CreateTableResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return false, fmt.Errorf("unmarshal response: %w", err)
	}

	c.logger.Info("created table", "full_name", result.FullName)
	return true, nil
}

// ClearTable removes every row from the table. The table itself and
// its schema stay in place.
func (c *Client) ClearTable(ctx context.Context, namespace, table string) error {
	path := tablePath(namespace, table, "clear")
	if _, err := c.doWithRetry(ctx, path, contentTypeJSON, []byte("{}")); err != nil {
		return err
	}

	c.logger.Info("cleared table", "namespace", namespace, "table", table)
	return nil
}

// InsertCSV appends the CSV payload to the table. The first line must
// be a header naming columns of the table schema.
func (c *Client) InsertCSV(ctx context.Context, namespace, table string, data []byte) (*InsertResult, error) {
	path := tablePath(namespace, table, "insert")
	body, err := c.doWithRetry(ctx, path, contentTypeCSV, data)
	if err != nil {
		return nil, err
	}

	var result InsertResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return &result, nil
}

func tablePath(namespace, table, action string) string {
	return "/table/" + url.PathEscape(namespace) + "/" + url.PathEscape(table) + "/" + action
}
