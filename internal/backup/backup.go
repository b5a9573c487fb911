// Package backup exports the row-store tables to local JSON snapshots. The
// spreadsheet is the only copy of user data, so a periodic dump is the
// recovery story if the sheet is edited or deleted by hand.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/paletteplay/paletteplay/internal/rowstore"
)

// exported table ranges, mirroring the store adapter's layouts
var tableRanges = map[string]string{
	"users":    "Users!A:E",
	"palettes": "Palettes!A:E",
}

// Snapshot is the on-disk backup format.
type Snapshot struct {
	Timestamp time.Time             `json:"timestamp"`
	Tables    map[string][][]string `json:"tables"`
}

// Exporter writes snapshots of a row store into a directory.
type Exporter struct {
	rows rowstore.RowStore
	dir  string
}

// NewExporter creates an exporter writing into dir.
func NewExporter(rows rowstore.RowStore, dir string) *Exporter {
	return &Exporter{rows: rows, dir: dir}
}

// Export reads every table and writes one timestamped JSON file. It returns
// the path of the written snapshot.
func (e *Exporter) Export(ctx context.Context) (string, error) {
	snapshot := Snapshot{
		Timestamp: time.Now().UTC(),
		Tables:    make(map[string][][]string, len(tableRanges)),
	}

	for name, rng := range tableRanges {
		rows, err := e.rows.Read(ctx, rng)
		if err != nil {
			return "", fmt.Errorf("failed to read %s table: %w", name, err)
		}
		snapshot.Tables[name] = rows
	}

	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	filename := fmt.Sprintf("paletteplay-%s.json", snapshot.Timestamp.Format("20060102-150405"))
	path := filepath.Join(e.dir, filename)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}

	return path, nil
}
