package partlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// This file contains code to persist the catalog in a way that is still
// human-readable and git-friendly: a JSONL stream, one part per line, with a
// stable field order.

// EncodeCatalog writes all parts to 'w' in the catalog JSONL format.
func EncodeCatalog(w io.Writer, parts []Part) error {
	for _, p := range parts {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("cannot marshal part %q: %w", p.Name, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write part %q: %w", p.Name, err)
		}
	}
	return nil
}

// DecodeCatalog reads a catalog from its JSONL format. Blank lines are
// skipped; a malformed line aborts the decode and is quoted in the error.
func DecodeCatalog(r io.Reader) ([]Part, error) {
	var parts []Part
	seen := make(map[string]bool)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var p Part
		if err := json.Unmarshal(line, &p); err != nil {
			return nil, fmt.Errorf("format error on line %q: %w", string(line), err)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("format error: part id %q is already defined", p.ID)
		}
		seen[p.ID] = true
		parts = append(parts, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read catalog: %w", err)
	}
	return parts, nil
}
