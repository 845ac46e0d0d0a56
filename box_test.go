// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBox(t *testing.T) {
	b := NewBox(1.0, 2.0, 3.0, 4.0)

	assert.Equal(t, Box[float64]{Left: 1, Top: 2, Right: 3, Bottom: 4}, b)
}

func TestBox_String(t *testing.T) {
	testCases := []struct {
		name     string
		input    Box[float64]
		expected string
	}{
		{"Zero", Box[float64]{}, "[0,0,0,0]"},
		{"Integers", Box[float64]{-1, 2, -3, 4}, "[-1,2,-3,4]"},
		{"Fractions", Box[float64]{-100.5, -200.25, 1234.125, 5678.0625}, "[-100.5,-200.25,1234.125,5678.0625]"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := testCase.input.String()

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestBox_Valid(t *testing.T) {
	testCases := []struct {
		name     string
		input    Box[float64]
		expected bool
	}{
		{"Zero", Box[float64]{}, false},
		{"Point", Box[float64]{5, 5, 5, 5}, false},
		{"ZeroWidth", Box[float64]{5, 0, 5, 10}, false},
		{"ZeroHeight", Box[float64]{0, 5, 10, 5}, false},
		{"Inverted", Box[float64]{10, 10, 0, 0}, false},
		{"Unit", Box[float64]{0, 0, 1, 1}, true},
		{"Negative", Box[float64]{-10, -10, -5, -5}, true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := testCase.input.Valid()

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestBox_Dimensions(t *testing.T) {
	b := Box[float64]{Left: -2, Top: 1, Right: 4, Bottom: 9}

	assert.Equal(t, 6.0, b.Width())
	assert.Equal(t, 8.0, b.Height())
	assert.Equal(t, 1.0, b.CenterX())
	assert.Equal(t, 5.0, b.CenterY())
}

func TestBox_Intersects(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     Box[float64]
		expected bool
	}{
		{"Disjoint", Box[float64]{0, 0, 1, 1}, Box[float64]{5, 5, 6, 6}, false},
		{"Identical", Box[float64]{0, 0, 1, 1}, Box[float64]{0, 0, 1, 1}, true},
		{"Overlap", Box[float64]{0, 0, 2, 2}, Box[float64]{1, 1, 3, 3}, true},
		{"Contained", Box[float64]{0, 0, 10, 10}, Box[float64]{4, 4, 6, 6}, true},
		{"EdgeTouch", Box[float64]{0, 0, 1, 1}, Box[float64]{1, 0, 2, 1}, false},
		{"CornerTouch", Box[float64]{0, 0, 1, 1}, Box[float64]{1, 1, 2, 2}, false},
		{"EdgeTouchVertical", Box[float64]{0, 0, 1, 1}, Box[float64]{0, 1, 1, 2}, false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := testCase.a.Intersects(testCase.b)

			assert.Equal(t, testCase.expected, actual)
			assert.Equal(t, testCase.expected, testCase.b.Intersects(testCase.a), "intersection must be symmetric")
		})
	}
}

func TestBox_Contains(t *testing.T) {
	b := Box[float64]{Left: 0, Top: 0, Right: 10, Bottom: 10}

	testCases := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"Interior", 5, 5, true},
		{"Outside", 15, 5, false},
		{"LeftEdge", 0, 5, false},
		{"TopEdge", 5, 0, false},
		{"RightEdge", 10, 5, false},
		{"BottomEdge", 5, 10, false},
		{"Corner", 0, 0, false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := b.Contains(testCase.x, testCase.y)

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestBox_expand(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     Box[float64]
		expected Box[float64]
	}{
		{"Self", Box[float64]{0, 0, 1, 1}, Box[float64]{0, 0, 1, 1}, Box[float64]{0, 0, 1, 1}},
		{"Contained", Box[float64]{0, 0, 10, 10}, Box[float64]{4, 4, 6, 6}, Box[float64]{0, 0, 10, 10}},
		{"Disjoint", Box[float64]{0, 0, 1, 1}, Box[float64]{5, 5, 6, 6}, Box[float64]{0, 0, 6, 6}},
		{"Spill", Box[float64]{0, 0, 50, 50}, Box[float64]{40, 40, 60, 60}, Box[float64]{0, 0, 60, 60}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := testCase.a.expand(testCase.b)

			assert.Equal(t, testCase.expected, actual)
			assert.Equal(t, testCase.expected, testCase.b.expand(testCase.a), "union must be symmetric")
		})
	}
}

func TestBox_IntegerCenter(t *testing.T) {
	// Integer coordinates truncate the center toward zero, which is
	// what makes degenerate quadrants possible on one-unit universes.
	b := Box[int]{Left: 0, Top: 0, Right: 1, Bottom: 1}

	assert.Equal(t, 0, b.CenterX())
	assert.Equal(t, 0, b.CenterY())
}
