// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package quadtree provides a region quadtree spatial index over
// axis-aligned bounding boxes in the 2D plane.
//
// A QuadTree stores opaque user payloads keyed by a bounding Box and a
// caller-assigned unique identifier, and answers "which stored objects
// intersect this region" faster than a linear scan by recursively
// subdividing its universe into quadrants. Coordinates are generic over
// any built-in numeric type, and payloads are generic over any type.
//
// The index is not safe for concurrent use. Callers mixing inserts,
// removals and searches from multiple goroutines must provide their own
// mutual exclusion.
package quadtree
