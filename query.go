// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

// Search returns every live object in the subtree rooted at q whose
// bounds intersect the query region. The order of the results is not
// defined.
//
// To reuse an existing result slice, or to disable aggregate-bounds
// pruning, use AppendSearch. To search into a fixed-size buffer, use
// SearchBuf.
func (q *QuadTree[T, P]) Search(region Box[T]) []Object[T, P] {
	return q.AppendSearch(nil, region, true)
}

// AppendSearch appends every live object in the subtree rooted at q
// whose bounds intersect the query region to dst, and returns the
// extended slice.
//
// With boundChecks true, subtrees whose cached aggregate bounds do not
// intersect the region are skipped entirely. The aggregate, not the
// static partition, is the pruning key: an object may spill past the
// boundary of the quadrant holding it, and pruning on the partition
// would lose it. With boundChecks false every node is visited; the
// per-object intersection filter still applies.
func (q *QuadTree[T, P]) AppendSearch(dst []Object[T, P], region Box[T], boundChecks bool) []Object[T, P] {
	if boundChecks && !q.maxBounds.Intersects(region) {
		return dst
	}
	for _, c := range q.children {
		dst = c.AppendSearch(dst, region, boundChecks)
	}
	if q.liveCount < 1 {
		return dst
	}
	for i := range q.slots {
		if q.slots[i].live && q.slots[i].Bounds.Intersects(region) {
			dst = append(dst, q.slots[i].Object)
		}
	}
	return dst
}

// SearchBuf fills buf with the live objects in the subtree rooted at q
// whose bounds intersect the query region, returning the number of
// objects written. The traversal and pruning policy are those of
// AppendSearch.
//
// If buf fills before the search completes, SearchBuf stops and
// returns len(buf) together with ErrBufferFull; the buffer contents up
// to that count are valid results.
func (q *QuadTree[T, P]) SearchBuf(buf []Object[T, P], region Box[T], boundChecks bool) (int, error) {
	var n int
	err := q.searchBuf(buf, &n, region, boundChecks)
	return n, err
}

func (q *QuadTree[T, P]) searchBuf(buf []Object[T, P], n *int, region Box[T], boundChecks bool) error {
	if boundChecks && !q.maxBounds.Intersects(region) {
		return nil
	}
	for _, c := range q.children {
		if err := c.searchBuf(buf, n, region, boundChecks); err != nil {
			return err
		}
	}
	if q.liveCount < 1 {
		return nil
	}
	for i := range q.slots {
		if q.slots[i].live && q.slots[i].Bounds.Intersects(region) {
			if *n == len(buf) {
				return ErrBufferFull
			}
			buf[*n] = q.slots[i].Object
			*n++
		}
	}
	return nil
}
