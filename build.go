package partlog

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hgrv/partlog/date"
)

// SavedBuild is a named, dated snapshot of the entire part catalog.
// Once created it is immutable: loading it replaces the live catalog, it
// never merges.
type SavedBuild struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	On    date.Date `json:"on"`
	Parts []Part    `json:"parts"`
}

// NewSavedBuild snapshots the given parts under a trimmed, non-empty name.
// The part list is deep-copied so later catalog mutations cannot leak into
// the snapshot.
func NewSavedBuild(name string, on date.Date, parts []Part) (SavedBuild, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return SavedBuild{}, fmt.Errorf("build name is required")
	}
	return SavedBuild{
		ID:    uuid.New().String(),
		Name:  name,
		On:    on,
		Parts: CloneParts(parts),
	}, nil
}
