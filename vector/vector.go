// Package vector provides Vector, a growable array that manages its
// own storage through an Allocator, and hands out iterators from
// package iterator.
package vector

import (
	"fmt"

	"go.lepak.sg/containers/iterator"
	"go.lepak.sg/containers/traits"
)

// Vector is a dynamically growing array. It is not safe for
// concurrent use.
//
// The zero Vector may be used immediately and holds no storage.
// Capacity doubles whenever an append finds the storage full,
// and is never given back except by Release or by Swap with an
// empty Vector.
//
// Any operation that reallocates the storage or shifts elements
// (Reserve past capacity, growth during PushBack or the inserts,
// the erases, Clear) invalidates every iterator obtained before it.
// Using such an iterator panics with iterator.ErrInvalidated.
// PushBack and PopBack without reallocation keep iterators to the
// remaining elements valid, but not the meaning of an earlier End:
// it still passes Valid while pointing at whatever now sits at its
// position.
//
// Invariants:
//   - 0 <= size <= len(buf), and len(buf) is the capacity
//   - buf[:size] holds live elements, buf[size:] holds destroyed slots
type Vector[T any] struct {
	buf   []T
	size  int
	alloc Allocator[T]

	// gen belongs to buf and follows it through Swap.
	gen *uint64
}

// Option configures a new Vector.
type Option[T any] func(*Vector[T])

// UseAllocator makes the Vector take its storage from a.
func UseAllocator[T any](a Allocator[T]) Option[T] {
	return func(v *Vector[T]) {
		v.alloc = a
	}
}

// New returns an empty Vector with no storage.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewFilled returns a Vector of count copies of value, with
// capacity count. A negative count is ErrOutOfRange.
func NewFilled[T any, N traits.Integral](count N, value T, opts ...Option[T]) (*Vector[T], error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrOutOfRange, count)
	}

	n := int(count)
	v := New(opts...)
	if n < 0 || N(n) != count || n > v.MaxSize() {
		return nil, fmt.Errorf("%w: count %d exceeds max size %d", ErrLength, count, v.MaxSize())
	}

	if err := v.Assign(n, value); err != nil {
		return nil, err
	}
	return v, nil
}

// NewRange returns a Vector holding a copy of [first, last).
// If last precedes first the result is ErrLength.
func NewRange[T any, I traits.InputIterator[I, T]](first, last I, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if err := AssignRange(v, first, last); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Vector[T]) allocator() Allocator[T] {
	if v.alloc == nil {
		v.alloc = StdAllocator[T]{}
	}
	return v.alloc
}

func (v *Vector[T]) generation() *uint64 {
	if v.gen == nil {
		v.gen = new(uint64)
	}
	return v.gen
}

func (v *Vector[T]) invalidate() {
	*v.generation()++
}

// Allocator returns the allocator backing v.
func (v *Vector[T]) Allocator() Allocator[T] {
	return v.allocator()
}

// Clone returns a deep copy of v with the same capacity.
// Elements are copied by assignment, so pointers inside them
// are shared.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{alloc: v.alloc}
	c.copyStorage(v)
	return c
}

// CopyFrom replaces the contents of v with a copy of o.
// v ends up with the capacity of o and keeps its own allocator.
func (v *Vector[T]) CopyFrom(o *Vector[T]) {
	if v == o {
		return
	}

	v.Release()
	v.copyStorage(o)
}

func (v *Vector[T]) copyStorage(o *Vector[T]) {
	if o.buf == nil {
		return
	}

	a := v.allocator()
	v.buf = a.Allocate(len(o.buf))
	for i := 0; i < o.size; i++ {
		a.Construct(&v.buf[i], o.buf[i])
	}
	v.size = o.size
	v.invalidate()
}

// Release destroys all elements and hands the storage back to the
// allocator, leaving v empty with zero capacity.
func (v *Vector[T]) Release() {
	v.Clear()
	if v.buf != nil {
		v.allocator().Deallocate(v.buf)
		v.buf = nil
	}
}

// Assign replaces the contents of v with count copies of value.
func (v *Vector[T]) Assign(count int, value T) error {
	if count < 0 {
		return fmt.Errorf("%w: negative count %d", ErrOutOfRange, count)
	}
	if count > v.MaxSize() {
		return fmt.Errorf("%w: count %d exceeds max size %d", ErrLength, count, v.MaxSize())
	}

	v.Clear()
	v.reserve(count)

	a := v.allocator()
	for i := 0; i < count; i++ {
		a.Construct(&v.buf[i], value)
	}
	v.size = count
	return nil
}

// AssignRange replaces the contents of v with a copy of [first, last).
// The range may come from v itself.
func AssignRange[T any, I traits.InputIterator[I, T]](v *Vector[T], first, last I) error {
	n := traits.Distance[T](first, last)
	if n < 0 {
		return fmt.Errorf("%w: range of %d elements", ErrLength, n)
	}
	if n > v.MaxSize() {
		return fmt.Errorf("%w: range of %d elements exceeds max size %d", ErrLength, n, v.MaxSize())
	}

	a := v.allocator()
	staged := stage(a, first, n)
	defer unstage(a, staged)

	v.Clear()
	v.reserve(n)

	for i := range staged {
		a.Construct(&v.buf[i], staged[i])
	}
	v.size = n
	return nil
}

// stage copies n elements starting at first into scratch storage
// taken from a, so that a range read from the destination itself
// survives the destination being cleared or shifted. If reading
// the range panics, the destination has not been touched yet.
func stage[T any, I traits.InputIterator[I, T]](a Allocator[T], first I, n int) []T {
	staged := a.Allocate(n)
	for i := 0; i < n; i, first = i+1, first.Next() {
		a.Construct(&staged[i], first.Get())
	}
	return staged
}

func unstage[T any](a Allocator[T], staged []T) {
	for i := range staged {
		a.Destroy(&staged[i])
	}
	a.Deallocate(staged)
}

// Reserve makes room for at least n elements. It never shrinks.
func (v *Vector[T]) Reserve(n int) error {
	if n > v.MaxSize() {
		return fmt.Errorf("%w: reserve %d exceeds max size %d", ErrLength, n, v.MaxSize())
	}
	v.reserve(n)
	return nil
}

func (v *Vector[T]) reserve(n int) {
	if n <= len(v.buf) {
		return
	}

	a := v.allocator()
	buf := a.Allocate(n)
	for i := 0; i < v.size; i++ {
		a.Construct(&buf[i], v.buf[i])
		a.Destroy(&v.buf[i])
	}
	if v.buf != nil {
		a.Deallocate(v.buf)
	}

	v.buf = buf
	v.invalidate()
}

// grow doubles the capacity, starting from 1, until need fits.
func (v *Vector[T]) grow(need int) {
	if need <= len(v.buf) {
		return
	}

	max := v.MaxSize()
	if need > max {
		panic("vector would exceed MaxSize")
	}

	c := len(v.buf)
	if c == 0 {
		c = 1
	}
	for c < need {
		if c > max/2 {
			c = max
			break
		}
		c *= 2
	}

	v.reserve(c)
}

func (v *Vector[T]) Size() int {
	return v.size
}

// Cap returns the number of elements v can hold without reallocating.
func (v *Vector[T]) Cap() int {
	return len(v.buf)
}

// MaxSize returns the largest size v could theoretically reach.
// Sizes and iterator distances are ints, so this is the allocator's
// limit, which never exceeds math.MaxInt.
func (v *Vector[T]) MaxSize() int {
	return v.allocator().MaxSize()
}

func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Clear destroys all elements. The capacity is kept.
func (v *Vector[T]) Clear() {
	a := v.allocator()
	for i := 0; i < v.size; i++ {
		a.Destroy(&v.buf[i])
	}
	v.size = 0
	v.invalidate()
}

// At returns the element at index i, or ErrOutOfRange
// if there is no such element.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, v.size)
	}
	return v.buf[i], nil
}

// Index returns a pointer to the element at index i.
// i is not checked against the size.
func (v *Vector[T]) Index(i int) *T {
	return &v.buf[i]
}

// Front returns a pointer to the first element. v must not be empty.
func (v *Vector[T]) Front() *T {
	return &v.buf[0]
}

// Back returns a pointer to the last element. v must not be empty.
func (v *Vector[T]) Back() *T {
	return &v.buf[v.size-1]
}

// Data returns the live elements. The slice aliases the storage
// of v until the next reallocation; appending to it never writes
// into v.
func (v *Vector[T]) Data() []T {
	return v.buf[:v.size:v.size]
}

func (v *Vector[T]) iter(i int) iterator.Wrap[T] {
	return iterator.NewTracked(v.buf, i, v.generation())
}

func (v *Vector[T]) Begin() iterator.Wrap[T] {
	return v.iter(0)
}

func (v *Vector[T]) End() iterator.Wrap[T] {
	return v.iter(v.size)
}

func (v *Vector[T]) RBegin() iterator.Reverse[iterator.Wrap[T], T] {
	return iterator.NewReverse[T](v.End())
}

func (v *Vector[T]) REnd() iterator.Reverse[iterator.Wrap[T], T] {
	return iterator.NewReverse[T](v.Begin())
}

func (v *Vector[T]) CBegin() iterator.ReadOnly[T] {
	return v.Begin().ReadOnly()
}

func (v *Vector[T]) CEnd() iterator.ReadOnly[T] {
	return v.End().ReadOnly()
}

func (v *Vector[T]) CRBegin() iterator.Reverse[iterator.ReadOnly[T], T] {
	return iterator.NewReverse[T](v.CEnd())
}

func (v *Vector[T]) CREnd() iterator.Reverse[iterator.ReadOnly[T], T] {
	return iterator.NewReverse[T](v.CBegin())
}

// index validates pos as an insertion point of v.
func (v *Vector[T]) index(pos iterator.Wrap[T]) int {
	if !pos.Valid() {
		panic(iterator.ErrInvalidated)
	}
	i := pos.Pos()
	if i < 0 || i > v.size {
		panic(fmt.Sprintf("iterator position %d outside [0, %d]", i, v.size))
	}
	return i
}

// PushBack appends x, doubling the capacity if v is full.
func (v *Vector[T]) PushBack(x T) {
	if v.size == len(v.buf) {
		v.grow(v.size + 1)
	}
	v.allocator().Construct(&v.buf[v.size], x)
	v.size++
}

// PopBack destroys the last element. v must not be empty.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("PopBack on empty Vector")
	}
	v.size--
	v.allocator().Destroy(&v.buf[v.size])
}

// openGap shifts buf[i:size] right by n, growing first if needed.
// The n slots of the gap are left destroyed, ready for Construct.
func (v *Vector[T]) openGap(i, n int) {
	v.grow(v.size + n)

	a := v.allocator()
	old := v.size
	for j := old - 1; j >= i; j-- {
		if j+n < old {
			a.Destroy(&v.buf[j+n])
		}
		a.Construct(&v.buf[j+n], v.buf[j])
	}
	for j := i; j < i+n && j < old; j++ {
		a.Destroy(&v.buf[j])
	}

	v.size += n
	v.invalidate()
}

// InsertN inserts count copies of value before pos.
func (v *Vector[T]) InsertN(pos iterator.Wrap[T], count int, value T) error {
	i := v.index(pos)
	if count < 0 {
		return fmt.Errorf("%w: negative count %d", ErrOutOfRange, count)
	}
	if count > v.MaxSize()-v.size {
		return fmt.Errorf("%w: inserting %d into %d exceeds max size %d", ErrLength, count, v.size, v.MaxSize())
	}
	if count == 0 {
		return nil
	}

	v.openGap(i, count)

	a := v.allocator()
	for j := i; j < i+count; j++ {
		a.Construct(&v.buf[j], value)
	}
	return nil
}

// Insert inserts value before pos and returns an iterator to it.
func (v *Vector[T]) Insert(pos iterator.Wrap[T], value T) iterator.Wrap[T] {
	i := v.index(pos)
	if err := v.InsertN(pos, 1, value); err != nil {
		panic(err)
	}
	return v.iter(i)
}

// InsertRange inserts a copy of [first, last) before pos.
// The range may come from v itself.
func InsertRange[T any, I traits.InputIterator[I, T]](v *Vector[T], pos iterator.Wrap[T], first, last I) error {
	i := v.index(pos)
	n := traits.Distance[T](first, last)
	if n < 0 {
		return fmt.Errorf("%w: range of %d elements", ErrLength, n)
	}
	if n > v.MaxSize()-v.size {
		return fmt.Errorf("%w: inserting %d into %d exceeds max size %d", ErrLength, n, v.size, v.MaxSize())
	}
	if n == 0 {
		return nil
	}

	a := v.allocator()
	staged := stage(a, first, n)
	defer unstage(a, staged)

	v.openGap(i, n)

	for j := range staged {
		a.Construct(&v.buf[i+j], staged[j])
	}
	return nil
}

// Erase removes the element at pos and returns an iterator
// to the element that took its place.
func (v *Vector[T]) Erase(pos iterator.Wrap[T]) iterator.Wrap[T] {
	if i := v.index(pos); i == v.size {
		panic("Erase at end of Vector")
	}
	return v.EraseRange(pos, pos.Next())
}

// EraseRange removes [first, last) and returns an iterator
// to the element that now sits at first.
func (v *Vector[T]) EraseRange(first, last iterator.Wrap[T]) iterator.Wrap[T] {
	i, j := v.index(first), v.index(last)
	if j < i {
		panic("EraseRange with last before first")
	}
	if i == j {
		return v.iter(i)
	}

	n := j - i
	a := v.allocator()
	for k := i; k < j; k++ {
		a.Destroy(&v.buf[k])
	}
	for k := j; k < v.size; k++ {
		a.Construct(&v.buf[k-n], v.buf[k])
		a.Destroy(&v.buf[k])
	}
	v.size -= n
	v.invalidate()

	return v.iter(i)
}

// Resize truncates v to count elements, or pads it with copies
// of value. When the shortfall is larger than the current capacity,
// exactly count slots are reserved up front.
func (v *Vector[T]) Resize(count int, value T) error {
	if count < 0 {
		return fmt.Errorf("%w: negative count %d", ErrOutOfRange, count)
	}
	if count > v.MaxSize() {
		return fmt.Errorf("%w: count %d exceeds max size %d", ErrLength, count, v.MaxSize())
	}

	for v.size > count {
		v.PopBack()
	}

	if count-v.size > len(v.buf) {
		v.reserve(count)
	}
	for v.size < count {
		v.PushBack(value)
	}
	return nil
}

// Swap exchanges the contents of v and o without copying elements.
// Iterators keep pointing into the same storage, which now
// belongs to the other Vector.
func (v *Vector[T]) Swap(o *Vector[T]) {
	v.buf, o.buf = o.buf, v.buf
	v.size, o.size = o.size, v.size
	v.alloc, o.alloc = o.alloc, v.alloc
	v.gen, o.gen = o.gen, v.gen
}

func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Data())
}
