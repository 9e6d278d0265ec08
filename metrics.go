package containers

import "unsafe"

// VectorMetrics contains statistical information about a vector's storage.
type VectorMetrics struct {
	Size          int     // Live elements
	Capacity      int     // Allocated slots
	Reallocations int     // Allocations replaced since creation (or the last Move)
	ElemSize      int     // Bytes per element
	BytesInUse    int     // Size * ElemSize
	BytesReserved int     // Capacity * ElemSize
	Utilization   float64 // Ratio of live elements to capacity (0.0-1.0)
}

// ListMetrics contains statistical information about a list's node chain.
type ListMetrics struct {
	Size        int     // Live elements
	NumNodes    int     // Allocated nodes
	NodeSize    int     // Slots per node
	Capacity    int     // NumNodes * NodeSize
	Utilization float64 // Ratio of live elements to capacity (0.0-1.0)
}

// Reallocations returns how many times the vector replaced its allocation.
func (v *Vector[T]) Reallocations() int {
	return v.reallocs
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.Cap()
	if capacity == 0 {
		return 0
	}
	return float64(v.end) / float64(capacity)
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	var zero T
	size := int(unsafe.Sizeof(zero))
	return VectorMetrics{
		Size:          v.Len(),
		Capacity:      v.Cap(),
		Reallocations: v.reallocs,
		ElemSize:      size,
		BytesInUse:    v.Len() * size,
		BytesReserved: v.Cap() * size,
		Utilization:   v.Utilization(),
	}
}

// Capacity returns the total number of slots across all nodes.
func (l *List[T]) Capacity() int {
	return len(l.nodes) * l.NodeSize()
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the list has no nodes.
func (l *List[T]) Utilization() float64 {
	capacity := l.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(l.size) / float64(capacity)
}

// Metrics returns a snapshot of list statistics.
func (l *List[T]) Metrics() ListMetrics {
	return ListMetrics{
		Size:        l.Len(),
		NumNodes:    l.NumNodes(),
		NodeSize:    l.NodeSize(),
		Capacity:    l.Capacity(),
		Utilization: l.Utilization(),
	}
}
