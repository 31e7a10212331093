package view

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/fundboard/fundboard/internal/model"
	"github.com/fundboard/fundboard/internal/model1"
	"github.com/wI2L/jsondiff"
)

// selectionLogger logs every selection change as a JSON patch.
type selectionLogger struct {
	view string
	log  *slog.Logger
}

func newSelectionLogger(view string, log *slog.Logger) *selectionLogger {
	return &selectionLogger{view: view, log: log}
}

// SelectionChanged implements model.SelectionListener.
func (s *selectionLogger) SelectionChanged(c model.SelectionChange) {
	patch, err := SelectionPatch(c.Prev, c.Next)
	if err != nil {
		s.log.Warn("selection diff failed", "view", s.view, "error", err)
		return
	}
	s.log.Debug("selection changed",
		"view", s.view,
		"origin", c.Origin.String(),
		"selected", c.Next.Len(),
		"patch", patch,
	)
}

// SelectionPatch returns the RFC 6902 patch turning prev into next, empty when
// they hold the same rows.
func SelectionPatch(prev, next model1.RowSelection) (string, error) {
	patch, err := jsondiff.Compare(selectionDoc(prev), selectionDoc(next))
	if err != nil {
		return "", fmt.Errorf("failed to diff selection: %w", err)
	}
	if len(patch) == 0 {
		return "", nil
	}

	raw, err := json.Marshal(patch)
	if err != nil {
		return "", fmt.Errorf("failed to marshal patch: %w", err)
	}

	return string(raw), nil
}

func selectionDoc(sel model1.RowSelection) map[string]bool {
	doc := make(map[string]bool, sel.Len())
	for _, id := range sel.Keys() {
		doc[id] = true
	}

	return doc
}
