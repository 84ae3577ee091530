package sparse

import (
	"cmp"
	"iter"
	"slices"

	"github.com/YuminosukeSato/sparsego/pkg/errors"
)

// Entry is a single stored (row, value) pair of a sparse vector.
type Entry[T Scalar] struct {
	Row   int
	Value T
}

// Vector is one sparse column: the stored entries plus the nominal length of
// the dimension they index into.
//
// Entries are kept in insertion order unless Sort is called. The vector
// remembers whether its entries are known to be ascending by row and uses a
// binary search for lookups in that case. Row validity (0 <= row < Len) is a
// logical invariant that Set does not check; Validate reports violations.
//
// A Vector is not safe for concurrent mutation.
type Vector[T Scalar] struct {
	entries []Entry[T]
	length  int
	sorted  bool
}

// NewVector returns an empty vector of the given nominal length with room for
// capacity entries.
func NewVector[T Scalar](length, capacity int) *Vector[T] {
	if length < 0 {
		panic("sparse: negative vector length")
	}
	return &Vector[T]{
		entries: make([]Entry[T], 0, capacity),
		length:  length,
		sorted:  true,
	}
}

// NewVectorFromEntries returns a vector that takes ownership of entries.
// Duplicated rows are kept as given; lookups return the first one.
func NewVectorFromEntries[T Scalar](length int, entries []Entry[T]) *Vector[T] {
	if length < 0 {
		panic("sparse: negative vector length")
	}
	return &Vector[T]{
		entries: entries,
		length:  length,
		sorted:  slices.IsSortedFunc(entries, compareRows[T]),
	}
}

func compareRows[T Scalar](a, b Entry[T]) int {
	return cmp.Compare(a.Row, b.Row)
}

// Len returns the nominal length of the vector.
func (v *Vector[T]) Len() int { return v.length }

// NNZ returns the number of stored entries, explicit zeros included.
func (v *Vector[T]) NNZ() int { return len(v.entries) }

// IsSorted reports whether the entries are known to be ascending by row.
func (v *Vector[T]) IsSorted() bool { return v.sorted }

// Entries returns a copy of the stored entries in stored order.
func (v *Vector[T]) Entries() []Entry[T] {
	return slices.Clone(v.entries)
}

// All iterates over the stored entries in stored order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for _, e := range v.entries {
			if !yield(e.Row, e.Value) {
				return
			}
		}
	}
}

// find returns the position of the first entry for row, or -1.
func (v *Vector[T]) find(row int) int {
	if v.sorted {
		i, ok := slices.BinarySearchFunc(v.entries, row, func(e Entry[T], r int) int {
			return cmp.Compare(e.Row, r)
		})
		if ok {
			return i
		}
		return -1
	}
	for i := range v.entries {
		if v.entries[i].Row == row {
			return i
		}
	}
	return -1
}

// At returns the value stored for row, or zero when there is none.
// A row outside [0, Len) is a structural zero, not an error.
func (v *Vector[T]) At(row int) T {
	if i := v.find(row); i >= 0 {
		return v.entries[i].Value
	}
	var zero T
	return zero
}

// Set overwrites the value stored for row, or appends a new entry.
// It does not re-sort; appending a row smaller than the last one clears the
// sorted flag.
func (v *Vector[T]) Set(row int, value T) {
	if i := v.find(row); i >= 0 {
		v.entries[i].Value = value
		return
	}
	if n := len(v.entries); n > 0 && row < v.entries[n-1].Row {
		v.sorted = false
	}
	v.entries = append(v.entries, Entry[T]{Row: row, Value: value})
}

// Sort orders the entries ascending by row. The sort is stable, so duplicated
// rows keep their relative order.
func (v *Vector[T]) Sort() {
	if !v.sorted {
		slices.SortStableFunc(v.entries, compareRows[T])
		v.sorted = true
	}
}

// NumDimensions returns the largest stored row plus one.
func (v *Vector[T]) NumDimensions() int {
	dims := 0
	for _, e := range v.entries {
		if e.Row+1 > dims {
			dims = e.Row + 1
		}
	}
	return dims
}

// Dot returns the dot product with a dense vector. Entries whose row falls
// outside x do not contribute.
func (v *Vector[T]) Dot(x []T) T {
	var sum T
	for _, e := range v.entries {
		if e.Row >= 0 && e.Row < len(x) {
			sum += e.Value * x[e.Row]
		}
	}
	return sum
}

// ToDense returns the vector as a dense slice of length Len.
func (v *Vector[T]) ToDense() []T {
	out := make([]T, v.length)
	for _, e := range v.entries {
		if e.Row >= 0 && e.Row < v.length {
			out[e.Row] = e.Value
		}
	}
	return out
}

// Clone returns a deep copy of v.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{
		entries: slices.Clone(v.entries),
		length:  v.length,
		sorted:  v.sorted,
	}
}

// Equal reports whether v and o have the same length and the same value at
// every row. Stored zeros compare equal to absent entries.
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if v.length != o.length {
		return false
	}
	for _, e := range v.entries {
		if o.At(e.Row) != v.At(e.Row) {
			return false
		}
	}
	for _, e := range o.entries {
		if v.At(e.Row) != o.At(e.Row) {
			return false
		}
	}
	return true
}

// SparseDot returns the dot product of two sorted vectors by merging their
// entries.
func SparseDot[T Scalar](a, b *Vector[T]) (T, error) {
	var sum T
	if !a.sorted || !b.sorted {
		return sum, errors.NewValueError("SparseDot", "both vectors must be sorted by row index")
	}
	i, j := 0, 0
	for i < len(a.entries) && j < len(b.entries) {
		switch ra, rb := a.entries[i].Row, b.entries[j].Row; {
		case ra < rb:
			i++
		case ra > rb:
			j++
		default:
			sum += a.entries[i].Value * b.entries[j].Value
			i++
			j++
		}
	}
	return sum, nil
}
