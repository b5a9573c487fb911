// Package rowstore provides append/scan access to the spreadsheet-shaped
// tables PalettePlay persists into. The backing store only supports two
// operations: read every row in a range, and append one row at the end.
// There is no indexed lookup and no conditional write.
package rowstore

import "context"

// RowStore is the minimal surface the store adapter needs. Ranges use the
// spreadsheet form "Sheet!A:E".
type RowStore interface {
	// Read returns every populated row in the range, in sheet order.
	Read(ctx context.Context, readRange string) ([][]string, error)

	// Append adds one row after the last populated row in the range.
	Append(ctx context.Context, appendRange string, row []string) error
}
