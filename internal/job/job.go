// Package job records completed flatten runs on disk so `attrify jobs`
// can show what was processed, when, and with which options.
package job

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/DataMends/attrify/internal/utils"
	"github.com/google/uuid"
)

// Record describes one completed flatten run.
type Record struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	Output     string    `json:"output"`
	Format     string    `json:"format"`
	SubLines   string    `json:"sub_lines"`
	Rows       int       `json:"rows"`
	Attributes int       `json:"attributes"`
	CreatedAt  time.Time `json:"created_at"`
}

// New builds an in-memory record with a fresh ID. Call Save to persist.
func New(source, output, format, subLines string, rows, attributes int) *Record {
	return &Record{
		ID:         uuid.NewString(),
		Source:     source,
		Output:     output,
		Format:     format,
		SubLines:   subLines,
		Rows:       rows,
		Attributes: attributes,
		CreatedAt:  time.Now(),
	}
}

// Save writes the record as <id>.json under dir using an atomic write.
func Save(dir string, r *Record) error {
	if err := utils.EnsureDir(dir); err != nil {
		return fmt.Errorf("ensure jobs dir: %w", err)
	}
	data, err := utils.PrettyJSON(r)
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(filepath.Join(dir, r.ID+".json"), data)
}

// List loads every job record in dir, newest first. A missing dir is
// an empty history, not an error; unreadable entries are skipped.
func List(dir string) ([]*Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read jobs dir: %w", err)
	}
	var out []*Record
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		b, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		var r Record
		if err := json.Unmarshal(b, &r); err != nil {
			continue
		}
		out = append(out, &r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
