package game

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lox/colorbet/internal/fileutil"
)

// HistoryWriter stores the text history of a finished game
type HistoryWriter interface {
	WriteHistory(gameID string, content string) error
}

// FileHistoryWriter writes one history file per game into a directory
type FileHistoryWriter struct {
	directory string
}

// NewFileHistoryWriter creates a new file-based history writer
func NewFileHistoryWriter(directory string) *FileHistoryWriter {
	return &FileHistoryWriter{directory: directory}
}

// Path returns the file a game's history is written to
func (w *FileHistoryWriter) Path(gameID string) string {
	return filepath.Join(w.directory, fmt.Sprintf("game_%s.txt", gameID))
}

// WriteHistory writes the history atomically
func (w *FileHistoryWriter) WriteHistory(gameID string, content string) error {
	if err := os.MkdirAll(w.directory, 0o755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}
	return fileutil.WriteAtomic(w.Path(gameID), 0o644, func(out io.Writer) error {
		_, err := io.WriteString(out, content)
		return err
	})
}

// HistoryRecorder subscribes to a game and writes its history when it ends
type HistoryRecorder struct {
	writer    HistoryWriter
	formatter *EventFormatter
	lines     []string
	err       error
}

// NewHistoryRecorder creates a recorder that hands the finished history to writer
func NewHistoryRecorder(writer HistoryWriter) *HistoryRecorder {
	return &HistoryRecorder{
		writer:    writer,
		formatter: NewEventFormatter(FormattingOptions{ShowPhases: true, ShowTimestamps: true}),
	}
}

// OnEvent implements EventSubscriber
func (h *HistoryRecorder) OnEvent(event GameEvent) {
	if start, ok := event.(RoundStartEvent); ok && len(h.lines) == 0 {
		h.lines = append(h.lines, fmt.Sprintf("Colour bet game %s", start.GameID))
	}
	h.lines = append(h.lines, h.formatter.Format(event)...)

	if end, ok := event.(GameEndEvent); ok {
		h.err = h.writer.WriteHistory(end.Result.GameID, h.String())
	}
}

// String returns the history so far
func (h *HistoryRecorder) String() string {
	return strings.Join(h.lines, "\n") + "\n"
}

// Err returns the error from writing the history, if any
func (h *HistoryRecorder) Err() error {
	return h.err
}
