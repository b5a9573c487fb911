package rowstore

import (
	"context"
	"strings"
	"sync"
)

// MemoryStore is an in-process RowStore keyed by sheet name. It backs the
// dev-mode server (sheets.backend: memory) and the test suites. Data is lost
// on restart.
type MemoryStore struct {
	mu     sync.Mutex
	sheets map[string][][]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sheets: make(map[string][][]string)}
}

// sheetName strips the cell range from "Users!A:E" style ranges so reads and
// appends against the same sheet share a table regardless of the columns
// requested.
func sheetName(rng string) string {
	if i := strings.Index(rng, "!"); i >= 0 {
		return rng[:i]
	}
	return rng
}

// Read returns a copy of every row in the sheet.
func (m *MemoryStore) Read(ctx context.Context, readRange string) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	rows := m.sheets[sheetName(readRange)]
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

// Append adds one row to the end of the sheet.
func (m *MemoryStore) Append(ctx context.Context, appendRange string, row []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	name := sheetName(appendRange)
	m.sheets[name] = append(m.sheets[name], append([]string(nil), row...))
	return nil
}
