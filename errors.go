// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBounds is returned by Insert when the object's
	// bounding box is degenerate (zero or negative area).
	ErrInvalidBounds = textErr("invalid bounds")
	// ErrOutOfRange is returned by Insert when a full node's bounds
	// intersect the object but every quadrant rejects it after
	// subdivision. This indicates a caller or precision bug, for
	// example a SetBounds universe that no longer agrees with
	// quadrants created under the old one, and is never a transient
	// condition.
	ErrOutOfRange = textErr("object outside indexable range")
	// ErrBufferFull is returned by SearchBuf when the caller's buffer
	// fills before the search completes.
	ErrBufferFull = textErr("search buffer full")
)

const packageName = "quadtree: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func textPanic(text string) {
	panic(packageName + text)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
