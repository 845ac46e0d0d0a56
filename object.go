// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

// An Object is a single item stored in, or queried from, a QuadTree.
// Each Object consists of the bounding Box used to place it in the
// index, an opaque payload which the index never inspects, and a
// caller-assigned identifier.
type Object[T Coord, P any] struct {
	// Bounds is the object's bounding box. It must be valid when the
	// object is inserted.
	Bounds Box[T]

	// Data is the caller's payload. The index carries it through
	// searches untouched; its lifetime is the caller's concern.
	Data P

	// ID identifies the object for removal. It must be unique across
	// all live objects in the tree.
	ID uint64
}

// A slot is one entry of a node's fixed-capacity object array. A slot
// whose live flag is false is a tombstone: its contents are dead and
// the slot is immediately reusable by a later insertion into the same
// node.
type slot[T Coord, P any] struct {
	Object[T, P]
	live bool
}
