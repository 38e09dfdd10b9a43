// Package sheets loads the historical-sales and live-listings pools from
// Google Sheets, validates rows, and serves TTL-cached snapshots.
package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Client wraps the Sheets API with read-only access.
type Client struct {
	svc *sheetsapi.Service
}

// NewClient creates a Sheets client from a service-account credentials file.
func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheetsapi.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// ReadRange fetches the raw cell values of one A1 range.
func (c *Client) ReadRange(ctx context.Context, spreadsheetID, rangeA1 string) ([][]interface{}, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, rangeA1).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read range %s: %w", rangeA1, err)
	}
	return resp.Values, nil
}

// RangeReader is the slice of the Sheets client the loaders need; tests
// substitute a fake.
type RangeReader interface {
	ReadRange(ctx context.Context, spreadsheetID, rangeA1 string) ([][]interface{}, error)
}
