package progrock

import (
	"strings"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/newsskill/internal/core/ports"
)

var _ progrock.Writer = (*Journal)(nil)

// Journal is a progrock.Writer that keeps each vertex's log until the vertex
// completes. When a vertex fails, its log is replayed through the logger so
// the steps that ran before the failure are visible next to the error.
type Journal struct {
	logger ports.Logger

	mu   sync.Mutex
	logs map[string][]string
}

// NewJournal creates a Journal replaying failed vertices into logger.
func NewJournal(logger ports.Logger) *Journal {
	return &Journal{
		logger: logger,
		logs:   map[string][]string{},
	}
}

// WriteStatus buffers log lines and settles completed vertices.
func (j *Journal) WriteStatus(update *progrock.StatusUpdate) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	for _, entry := range update.GetLogs() {
		text := strings.TrimRight(string(entry.GetData()), "\n")
		if text == "" {
			continue
		}
		id := entry.GetVertex()
		j.logs[id] = append(j.logs[id], strings.Split(text, "\n")...)
	}

	for _, vertex := range update.GetVertexes() {
		if vertex.GetCompleted() == nil {
			continue
		}
		lines := j.logs[vertex.GetId()]
		delete(j.logs, vertex.GetId())

		if vertex.GetError() == "" {
			continue
		}
		j.logger.Warn(vertex.GetName() + " failed: " + vertex.GetError())
		for _, line := range lines {
			j.logger.Info(vertex.GetName() + ": " + line)
		}
	}
	return nil
}

// Close drops anything still buffered.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	clear(j.logs)
	return nil
}
