package harvest

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/openmetadata"
)

const maxLogLine = 4 * 1024 * 1024

// LogReader reads the newline-delimited JSON profile logs written by survey
// action services
type LogReader struct {
	dir string
}

// NewLogReader returns a reader for logs under dir
func NewLogReader(dir string) *LogReader {
	return &LogReader{dir: dir}
}

// Dir returns the directory log names are resolved against
func (r *LogReader) Dir() string {
	return r.dir
}

// Path resolves a log file name. Names never escape the log directory:
// absolute names and parent references are reduced to a relative path.
func (r *LogReader) Path(name string) (string, error) {
	if r.dir == "" {
		return "", fmt.Errorf("no survey log directory configured for %s", name)
	}
	rel := filepath.Clean("/" + filepath.ToSlash(name))
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" || rel == "." {
		return "", fmt.Errorf("invalid log file name %q", name)
	}
	return filepath.Join(r.dir, filepath.FromSlash(rel)), nil
}

// Read returns every JSON object in the named log. Blank lines are skipped.
func (r *LogReader) Read(name string) ([]openmetadata.Properties, error) {
	path, err := r.Path(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening profile log: %w", err)
	}
	defer f.Close()

	var records []openmetadata.Properties
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLogLine)
	line := 0
	for scanner.Scan() {
		line++
		data := bytes.TrimSpace(scanner.Bytes())
		if len(data) == 0 {
			continue
		}
		var record map[string]any
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, line, err)
		}
		records = append(records, openmetadata.Properties(record))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return records, nil
}
