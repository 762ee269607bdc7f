/*
Package priorityqueue provides a generic, thread-safe binary min-heap(default) implementation in Go.

A BinaryHeap is a priority queue where the element with the highest priority
is always at the root. With the default comparator the smallest element wins,
which is what the segmentation search needs: its frontier is a min-heap of
character positions, and only the leftmost unexplored position is ever
inspected before each pop.

The type parameter of the default constructor must satisfy constraints.Ordered
(supports <, > operators); a custom comparator lifts that restriction.

Concurrency:
  - All operations are protected by a read-write mutex and safe for concurrent access.

Key Features:
  - Add: Insert a new element while maintaining the heap property (O(log n)).
  - Peek: Retrieve the highest-priority element without removing it (O(1)).
  - Poll: Remove and return the highest-priority element, re-heapifying the structure (O(log n)).
  - IsEmpty: Check if the heap is empty (O(1)).
  - Size: Return the number of elements in the heap (O(1)).
  - Clear: Remove all elements from the heap (O(1)).

Algorithm Notes:
  - Binary Heap is stored in a slice.
  - Parent and child relationships:
    parent index = (k-1)/2
    left child = 2*k + 1, right child = 2*k + 2
  - Swim operation: Moves a newly added element up until the heap property is restored.
  - Sink operation: Replaces the removed root with the last element, then moves it down.
*/
package priorityqueue

import (
	"errors"
	"sync"

	"golang.org/x/exp/constraints"
)

// BinaryHeap is a generic, thread-safe binary heap implementation.
//
// It supports both min-heap and max-heap behavior depending on the comparator
// function provided during construction.
//
// Internally, the heap is stored as a slice representing a complete binary tree.
//
// Array-based heap indexing rules:
//   - Root element: index 0
//   - For a node at index i:
//     Left child: 2*i + 1
//     Right child: 2*i + 2
//     Parent: (i - 1) / 2
//
// Fields:
//   - data: slice of elements stored in heap order
//   - cmp: comparator function used to maintain heap property
//     (should return true if the first element has higher priority than the second)
//   - mutex: RWMutex to ensure safe concurrent access
type BinaryHeap[T any] struct {
	data  []T               // slice storing heap elements
	cmp   func(a, b T) bool // comparator defining heap ordering
	mutex sync.RWMutex      // protects heap for concurrent access
}

// NewBinaryHeap creates a new BinaryHeap instance using the natural ordering of T.
//
// This creates a `min-heap`, where the element with the smallest value is at
// the root. It uses the built-in comparison operators of T (constraints.Ordered).
//
// Example usage:
//
//	// Min-heap of character positions
//	h := NewBinaryHeap[int]()
//	h.Add(5)
//	h.Add(10)
//	h.Add(3)
//
//	// Polling repeatedly will give: 3, 5, 10
func NewBinaryHeap[T constraints.Ordered]() *BinaryHeap[T] {
	return &BinaryHeap[T]{
		data: make([]T, 0),
		cmp: func(a, b T) bool {
			return a < b
		},
	}
}

// NewBinaryHeapWithComparator creates and returns a new empty BinaryHeap
// with a custom comparator function.
//
// Parameters:
//
//	cmp: A function of type `func(a, b T) bool` that defines the heap ordering.
//	     - Should return `true` if element `a` has higher priority than `b`.
//	     - This allows min-heaps, max-heaps, or custom ordering based on any
//	       field or combination of fields in T.
//
// Returns:
//
//	A pointer to an empty BinaryHeap[T] that uses the provided comparator.
func NewBinaryHeapWithComparator[T any](cmp func(a, b T) bool) *BinaryHeap[T] {
	return &BinaryHeap[T]{
		data: make([]T, 0),
		cmp:  cmp,
	}
}

// IsEmpty checks whether the heap contains any elements.
//
// Returns:
//   - true if the heap is empty, false otherwise.
//
// Complexity: O(1)
func (bh *BinaryHeap[T]) IsEmpty() bool {
	bh.mutex.RLock()
	defer bh.mutex.RUnlock()
	return len(bh.data) == 0
}

// Clear removes all elements from the heap.
//
// After calling Clear, the heap will be empty.
//
// Complexity: O(1)
func (bh *BinaryHeap[T]) Clear() {
	bh.mutex.Lock()
	defer bh.mutex.Unlock()
	bh.data = nil
}

// Size returns the number of elements currently stored in the heap.
//
// Complexity: O(1)
func (bh *BinaryHeap[T]) Size() int {
	bh.mutex.RLock()
	defer bh.mutex.RUnlock()
	return len(bh.data)
}

// Peek returns the root element of the heap without removing it.
// The root is either the minimum or maximum element based on the comparator.
//
// Returns:
//   - the root element
//   - error if the heap is empty
//
// Complexity: O(1)
func (bh *BinaryHeap[T]) Peek() (T, error) {
	var zero T
	bh.mutex.RLock()
	defer bh.mutex.RUnlock()
	if len(bh.data) == 0 {
		return zero, errors.New("heap empty")
	}
	return bh.data[0], nil
}

// Poll removes and returns the root element of the heap.
// The root is either the minimum or maximum element based on the comparator.
//
// Returns:
//   - the root element
//   - error if the heap is empty
//
// Complexity: O(log n) due to re-heapification
func (bh *BinaryHeap[T]) Poll() (T, error) {
	var zero T
	bh.mutex.Lock()
	defer bh.mutex.Unlock()
	if len(bh.data) == 0 {
		return zero, errors.New("heap empty")
	}
	return bh.removeAt(0), nil // we can only remove the root
}

// removeAt removes the element at index k from the heap and returns it.
//
// Steps:
//  1. Replace the element at index k with the last element in the heap.
//  2. Remove the last element from the slice.
//  3. Re-heapify by comparing the new root with its children using the comparator:
//     - Select the higher-priority child.
//     - Swap with the parent if the child violates the heap property.
//  4. Continue until the heap property is restored.
//
// Note: This is an internal helper method, primarily used by Poll; the
// caller holds the write lock.
//
// Complexity: O(log n)
func (bh *BinaryHeap[T]) removeAt(k int) T {
	size := len(bh.data)
	removed := bh.data[k]
	last := bh.data[size-1]
	bh.data[k] = last
	bh.data = bh.data[:size-1]

	parent := k
	child := 2*parent + 1
	for child < len(bh.data) {
		// pick the child with higher priority according to comparator
		if child+1 < len(bh.data) && bh.cmp(bh.data[child+1], bh.data[child]) {
			child = child + 1
		}
		// if child has higher priority than parent, swap
		if bh.cmp(bh.data[child], bh.data[parent]) {
			bh.swap(child, parent)
			parent = child
			child = 2*parent + 1
		} else {
			break
		}
	}

	return removed
}

// Add inserts a new element into the heap and restores the heap property.
//
// Parameters:
//   - val: the value to be added to the heap
//
// Complexity: O(log n)
func (bh *BinaryHeap[T]) Add(val T) {
	bh.mutex.Lock()
	defer bh.mutex.Unlock()
	bh.data = append(bh.data, val)
	idxOfLastElem := len(bh.data) - 1
	bh.swim(idxOfLastElem)
}

// swap exchanges the elements at indexes i and j.
//
// Complexity: O(1)
func (bh *BinaryHeap[T]) swap(i, j int) {
	bh.data[i], bh.data[j] = bh.data[j], bh.data[i]
}

// swim moves the element at index k up the heap until the heap property is satisfied.
//
// This is used after adding a new element to restore heap order.
//
// Complexity: O(log n)
func (bh *BinaryHeap[T]) swim(k int) {
	for k > 0 {
		parent := (k - 1) / 2
		if bh.cmp(bh.data[k], bh.data[parent]) {
			bh.swap(k, parent)
			k = parent
		} else {
			break
		}
	}
}
