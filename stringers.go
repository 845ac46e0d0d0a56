// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import "fmt"

// String returns a compact edge-list representation of the Box.
func (b Box[T]) String() string {
	return fmt.Sprintf("[%v,%v,%v,%v]", b.Left, b.Top, b.Right, b.Bottom)
}

// String returns a summary description of the Object. The payload is
// omitted: it is opaque to the index.
func (o Object[T, P]) String() string {
	return fmt.Sprintf("Object{%s,ID:%d}", o.Bounds, o.ID)
}

// String returns a summary description of the subtree rooted at q.
func (q *QuadTree[T, P]) String() string {
	return fmt.Sprintf("QuadTree{Bounds:%s,Capacity:%d,Objects:%d}", q.bounds, len(q.slots), q.TotalObjects())
}
