// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

// numChildren is the number of quadrants a node subdivides into. The
// child order is fixed: top-left, top-right, bottom-right, bottom-left.
const numChildren = 4

// A QuadTree is a region quadtree node. The root node is the tree:
// there is no separate handle type, and every child quadrant is itself
// a QuadTree rooted at its own partition of the plane.
//
// Each node holds up to its capacity of objects directly in a
// fixed-size slot array. The first insertion that would overflow a
// full node subdivides it into four quadrants and pushes the new
// object down; the node's own slots remain occupied, and tombstoned
// slots freed by removal are reused by later insertions into the same
// node. An object therefore lives in exactly one node, but that node
// may be an ancestor of quadrants holding later arrivals.
//
// A QuadTree is not safe for concurrent use.
type QuadTree[T Coord, P any] struct {
	// bounds is the node's static quadrant partition. It is fixed at
	// creation and never mutated afterward, except on the root via
	// SetBounds.
	bounds Box[T]
	// maxBounds is the cached aggregate covering bounds, the bounds of
	// every live object in this node's subtree, and every child's own
	// maxBounds. It is recomputed bottom-up after every structural
	// change and is the pruning key for searches.
	maxBounds Box[T]
	// slots is the node's fixed-capacity object array. len(slots) is
	// the per-node capacity for the whole tree.
	slots []slot[T, P]
	// liveCount is the number of slots whose live flag is set.
	liveCount int
	// children is nil for a leaf, or exactly numChildren quadrants.
	children []*QuadTree[T, P]
	// parent is nil at the root. The link is only followed to
	// propagate aggregate bounds upward; ownership runs strictly
	// parent to child.
	parent *QuadTree[T, P]
	// depth is 0 at the root and parent.depth+1 below it.
	depth int
}

// New creates an empty QuadTree indexing the universe described by
// bounds, holding up to capacity objects per node before a node
// subdivides. Panics if capacity is less than 1 or bounds is invalid.
//
// Both the coordinate type T and the capacity are fixed for the
// lifetime of the tree.
func New[T Coord, P any](bounds Box[T], capacity int) *QuadTree[T, P] {
	if capacity < 1 {
		fmtPanic("capacity must be at least 1 (got %d)", capacity)
	}
	if !bounds.Valid() {
		textPanic("invalid universe bounds")
	}
	return &QuadTree[T, P]{
		bounds:    bounds,
		maxBounds: bounds,
		slots:     make([]slot[T, P], capacity),
	}
}

// Bounds returns the node's static partition bounds.
func (q *QuadTree[T, P]) Bounds() Box[T] {
	return q.bounds
}

// MaxBounds returns the node's cached aggregate bounds: the smallest
// maintained Box covering the node's partition and every live object
// stored in its subtree. Searches prune on this aggregate rather than
// on the static partition, because an object may spill past the
// boundary of the quadrant holding it.
func (q *QuadTree[T, P]) MaxBounds() Box[T] {
	return q.maxBounds
}

// SetBounds replaces the node's partition bounds and refreshes its
// cached aggregate. Panics if bounds is invalid. Keeping the new
// universe consistent with content already stored in the subtree is
// the caller's responsibility.
func (q *QuadTree[T, P]) SetBounds(bounds Box[T]) {
	if !bounds.Valid() {
		textPanic("invalid universe bounds")
	}
	q.bounds = bounds
	q.resolveMaxBounds()
}

// Capacity returns the number of objects a node can hold directly
// before subdividing.
func (q *QuadTree[T, P]) Capacity() int {
	return len(q.slots)
}

// Depth returns the node's distance from the root, which is at
// depth 0.
func (q *QuadTree[T, P]) Depth() int {
	return q.depth
}

// HasChildren reports whether the node has been subdivided.
func (q *QuadTree[T, P]) HasChildren() bool {
	return q.children != nil
}

// Children returns the node's four child quadrants in top-left,
// top-right, bottom-right, bottom-left order, or nil for a leaf. The
// returned slice is the tree's own child list and must not be
// modified.
func (q *QuadTree[T, P]) Children() []*QuadTree[T, P] {
	return q.children
}

// TotalObjects returns the number of live objects stored in the node's
// subtree, including the node's own slots.
func (q *QuadTree[T, P]) TotalObjects() int {
	n := q.liveCount
	for _, c := range q.children {
		n += c.TotalObjects()
	}
	return n
}

// Insert stores o in the subtree rooted at q. It returns true when the
// object found a slot, and false with a nil error when o.Bounds does
// not intersect the node's partition, meaning this subtree cannot hold
// it.
//
// Two error conditions exist. ErrInvalidBounds reports a degenerate
// o.Bounds before anything is stored. ErrOutOfRange reports the fatal
// case in which a full node intersects the object but all four of its
// quadrants reject it, reachable when the universe has been replaced
// over existing quadrants or at numeric precision edges; the object is
// not stored and retrying cannot succeed.
func (q *QuadTree[T, P]) Insert(o Object[T, P]) (bool, error) {
	if !o.Bounds.Valid() {
		return false, ErrInvalidBounds
	}
	return q.insert(o)
}

func (q *QuadTree[T, P]) insert(o Object[T, P]) (bool, error) {
	if !q.bounds.Intersects(o.Bounds) {
		return false, nil
	}
	if q.liveCount >= len(q.slots) {
		q.split()
		for _, c := range q.children {
			ok, err := c.insert(o)
			if ok || err != nil {
				return ok, err
			}
		}
		return false, ErrOutOfRange
	}
	for i := range q.slots {
		if !q.slots[i].live {
			q.slots[i] = slot[T, P]{Object: o, live: true}
			q.liveCount++
			q.resolveMaxBounds()
			return true, nil
		}
	}
	textPanic("live count disagrees with slot array")
	return false, nil
}

// Remove deletes the live object whose ID matches o.ID from the
// subtree rooted at q, returning true if one was found. o.Bounds is
// used only to locate candidate nodes: subtrees whose partitions do
// not intersect it cannot hold the id and are skipped, so the bounds
// passed here must intersect wherever the object was stored, normally
// by passing the same bounds it was inserted with.
//
// A false return is the expected outcome for an id that is not (or is
// no longer) in the tree; it is not a fault.
func (q *QuadTree[T, P]) Remove(o Object[T, P]) bool {
	if !q.bounds.Intersects(o.Bounds) {
		return false
	}
	if q.liveCount > 0 {
		for i := range q.slots {
			if q.slots[i].live && q.slots[i].ID == o.ID {
				q.slots[i] = slot[T, P]{}
				q.liveCount--
				q.removeEmptyNodes()
				q.resolveMaxBounds()
				return true
			}
		}
	}
	for _, c := range q.children {
		if c.Remove(o) {
			// The child pruned its own subtree before returning; this
			// node merges too once nothing below it is live, so a
			// fully drained tree always collapses back to one leaf.
			if q.TotalObjects() == 0 {
				q.merge()
			}
			return true
		}
	}
	return false
}

// split subdivides the node into four child quadrants partitioning its
// bounds at the center point. It is a no-op on an already subdivided
// node, and never touches the node's own slot contents: overflowing
// objects reach the children through insertion, not through splitting.
func (q *QuadTree[T, P]) split() {
	if q.children != nil {
		return
	}
	cx, cy := q.bounds.CenterX(), q.bounds.CenterY()
	quads := [numChildren]Box[T]{
		{Left: q.bounds.Left, Top: q.bounds.Top, Right: cx, Bottom: cy},     // top-left
		{Left: cx, Top: q.bounds.Top, Right: q.bounds.Right, Bottom: cy},    // top-right
		{Left: cx, Top: cy, Right: q.bounds.Right, Bottom: q.bounds.Bottom}, // bottom-right
		{Left: q.bounds.Left, Top: cy, Right: cx, Bottom: q.bounds.Bottom},  // bottom-left
	}
	q.children = make([]*QuadTree[T, P], numChildren)
	for i, b := range quads {
		q.children[i] = &QuadTree[T, P]{
			bounds:    b,
			maxBounds: b,
			slots:     make([]slot[T, P], len(q.slots)),
			parent:    q,
			depth:     q.depth + 1,
		}
	}
}

// merge discards the node's children, deepest first, reverting it to a
// leaf. Callers must already have established that the subtree holds
// no live objects.
func (q *QuadTree[T, P]) merge() {
	for _, c := range q.children {
		c.merge()
	}
	q.children = nil
}

// removeEmptyNodes prunes empty subtrees below q after a removal.
// Children are visited post-order so the deepest empty subtrees
// collapse first, then the node merges back into a leaf if its whole
// subtree holds no live objects. A node whose own slots are empty but
// whose descendants still hold objects is left subdivided.
func (q *QuadTree[T, P]) removeEmptyNodes() {
	if q.children == nil {
		return
	}
	for _, c := range q.children {
		c.removeEmptyNodes()
	}
	if q.TotalObjects() == 0 {
		q.merge()
	}
}

// resolveMaxBounds recomputes the cached aggregate bounds at q and at
// every ancestor up to the root. Each node reads its children's cached
// aggregates rather than recomputing them, so one structural change
// costs O(depth) upward work with an O(capacity) slot scan per level.
func (q *QuadTree[T, P]) resolveMaxBounds() {
	for n := q; n != nil; n = n.parent {
		n.maxBounds = n.aggregateBounds()
	}
}

// aggregateBounds computes the node's aggregate from its static
// bounds, its live slots, and its children's cached aggregates. Every
// extension is re-validated: with unsigned coordinate types a union
// can wrap instead of going below zero, in which case the extension is
// discarded in favor of the static bounds.
func (q *QuadTree[T, P]) aggregateBounds() Box[T] {
	mb := q.bounds
	for i := range q.slots {
		if q.slots[i].live {
			mb = mb.expand(q.slots[i].Bounds)
			if !mb.Valid() {
				mb = q.bounds
			}
		}
	}
	for _, c := range q.children {
		mb = mb.expand(c.maxBounds)
		if !mb.Valid() {
			mb = q.bounds
		}
	}
	return mb
}
