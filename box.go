// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

// Coord is the constraint satisfied by every coordinate type a Box can
// be parameterized with. Coordinate arithmetic only needs ordering,
// addition, subtraction, and halving, so any built-in numeric type
// qualifies.
//
// Unsigned coordinate types are allowed but interact with aggregate
// bounds maintenance: a union that underflows below zero cannot be
// represented, which is why QuadTree re-validates every extension of
// its cached aggregate and falls back to the static partition bounds
// when the union is degenerate.
type Coord interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// A Box is an axis-aligned bounding box in the 2D plane, described by
// its four edges. Top and Bottom follow screen convention: Top < Bottom
// for a valid Box.
type Box[T Coord] struct {
	Left   T
	Top    T
	Right  T
	Bottom T
}

// NewBox constructs a Box from its four edges.
func NewBox[T Coord](left, top, right, bottom T) Box[T] {
	return Box[T]{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Valid reports whether the Box has strictly positive area. Degenerate
// boxes, including zero-area ones, are invalid.
func (b Box[T]) Valid() bool {
	return b.Left < b.Right && b.Top < b.Bottom
}

// Width returns the horizontal extent of the Box.
func (b Box[T]) Width() T {
	return b.Right - b.Left
}

// Height returns the vertical extent of the Box.
func (b Box[T]) Height() T {
	return b.Bottom - b.Top
}

// CenterX returns the X-coordinate of the Box's center point.
func (b Box[T]) CenterX() T {
	return (b.Left + b.Right) / 2
}

// CenterY returns the Y-coordinate of the Box's center point.
func (b Box[T]) CenterY() T {
	return (b.Top + b.Bottom) / 2
}

// Intersects reports whether b and o overlap. All four comparisons are
// strict, so boxes that merely touch along an edge or at a corner do
// not intersect.
func (b Box[T]) Intersects(o Box[T]) bool {
	return b.Left < o.Right &&
		b.Right > o.Left &&
		b.Top < o.Bottom &&
		b.Bottom > o.Top
}

// Contains reports whether the point (x, y) lies strictly inside the
// Box. Points on the boundary are not contained.
func (b Box[T]) Contains(x, y T) bool {
	return x > b.Left && x < b.Right && y > b.Top && y < b.Bottom
}

// expand returns the smallest Box covering both b and o.
func (b Box[T]) expand(o Box[T]) Box[T] {
	return Box[T]{
		Left:   min(b.Left, o.Left),
		Top:    min(b.Top, o.Top),
		Right:  max(b.Right, o.Right),
		Bottom: max(b.Bottom, o.Bottom),
	}
}
