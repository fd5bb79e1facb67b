package store

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// DefaultExportFile is the default export path.
const DefaultExportFile = "tasks.json"

// Export serializes the full list to path as a pretty-printed JSON array
// of {description, status} objects. The file is overwritten on every call
// and never read back.
func Export(path string, tasks List) error {
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	return nil
}
