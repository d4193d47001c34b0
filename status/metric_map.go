package status

import (
	"slices"
	"sync"
)

// MetricMap is a keyed set of metric cells of type T
// Systems resolve a key once at construction and keep the pointer; scrapes walk keys in sorted order
type MetricMap[T any] struct {
	mu    sync.RWMutex
	cells map[string]*T
	keys  []string // sorted, grows on first Get of a key
}

// NewMetricMap creates an empty map
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{cells: make(map[string]*T)}
}

// Get returns the cell for key, allocating a zero cell on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	cell, ok := m.cells[key]
	m.mu.RUnlock()
	if ok {
		return cell
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if cell, ok := m.cells[key]; ok {
		return cell
	}
	cell = new(T)
	m.cells[key] = cell
	i, _ := slices.BinarySearch(m.keys, key)
	m.keys = slices.Insert(m.keys, i, key)
	return cell
}

// Range calls fn for every cell in key order
// fn runs without the lock held and may call Get
func (m *MetricMap[T]) Range(fn func(key string, cell *T)) {
	m.mu.RLock()
	keys := slices.Clone(m.keys)
	cells := make([]*T, len(keys))
	for i, k := range keys {
		cells[i] = m.cells[k]
	}
	m.mu.RUnlock()

	for i, k := range keys {
		fn(k, cells[i])
	}
}

// Keys returns the registered keys in sorted order
func (m *MetricMap[T]) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.keys)
}

// Count returns the number of registered cells
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.keys)
}
