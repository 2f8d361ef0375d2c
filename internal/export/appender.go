package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"sync"

	"labelcheck/internal/domain"
)

// Appender maintains a flat-file CSV log alongside the database, one row
// appended per saved check. The header is written when the file is created.
type Appender struct {
	mu   sync.Mutex
	path string
}

// NewAppender creates an Appender writing to the CSV file at path.
func NewAppender(path string) *Appender {
	return &Appender{path: path}
}

// Append writes one record to the log file, creating it with a header first
// if needed.
func (a *Appender) Append(record *domain.CheckRecord) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	info, err := os.Stat(a.path)
	writeHeader := os.IsNotExist(err) || (err == nil && info.Size() == 0)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("checking records log: %w", err)
	}

	f, err := os.OpenFile(a.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening records log: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if writeHeader {
		if _, err := f.Write(BOM); err != nil {
			return fmt.Errorf("writing records log BOM: %w", err)
		}
		if err := w.Write(columns); err != nil {
			return fmt.Errorf("writing records log header: %w", err)
		}
	}
	if err := w.Write(recordToRow(record)); err != nil {
		return fmt.Errorf("writing records log row: %w", err)
	}
	w.Flush()
	return w.Error()
}
