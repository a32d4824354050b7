// Package sink stores rendered artifacts. A sink receives complete byte
// payloads, so an artifact is either fully stored or not stored at all.
package sink

import (
	"context"
	"sort"
	"sync"
)

// Sink stores named artifacts
type Sink interface {
	// Put stores data under name and returns where it ended up
	Put(ctx context.Context, name string, data []byte, contentType string) (string, error)

	// Describe names the destination for progress output
	Describe() string
}

// Memory keeps artifacts in memory. It backs dry runs and tests.
type Memory struct {
	mu    sync.Mutex
	files map[string][]byte
	types map[string]string
}

// NewMemory creates an empty in-memory sink
func NewMemory() *Memory {
	return &Memory{
		files: make(map[string][]byte),
		types: make(map[string]string),
	}
}

// Put implements Sink
func (m *Memory) Put(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	buf := make([]byte, len(data))
	copy(buf, data)
	m.files[name] = buf
	m.types[name] = contentType
	return "memory://" + name, nil
}

// Describe implements Sink
func (m *Memory) Describe() string {
	return "memory"
}

// Get returns a stored artifact
func (m *Memory) Get(name string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[name]
	return data, ok
}

// ContentType returns the content type an artifact was stored with
func (m *Memory) ContentType(name string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.types[name]
}

// Names returns the stored artifact names, sorted
func (m *Memory) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.files))
	for name := range m.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
