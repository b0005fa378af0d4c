// Package core provides fundamental types and utilities for the petri
// simulation. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "math"

// Vec2 is a point or displacement in world-space.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Circle is a positioned circle, the shared shape of everything that lives
// in the arena.
type Circle struct {
	Pos Vec2
	R   float64
}

// ContainsPoint reports whether p lies strictly inside the circle.
func (c Circle) ContainsPoint(p Vec2) bool {
	return c.Pos.Dist(p) < c.R
}

// Bounds is a rectangular world area centered at the origin.
type Bounds struct {
	HalfW, HalfH float64
}

// NewBounds creates bounds for a world of the given total width and height.
func NewBounds(width, height float64) Bounds {
	return Bounds{HalfW: width / 2, HalfH: height / 2}
}

// Width returns the total world width.
func (b Bounds) Width() float64 {
	return b.HalfW * 2
}

// Height returns the total world height.
func (b Bounds) Height() float64 {
	return b.HalfH * 2
}

// ClampCircle returns p adjusted so a circle of the given radius centered
// there stays fully inside the bounds.
func (b Bounds) ClampCircle(p Vec2, r float64) Vec2 {
	return Vec2{
		X: ClampF(p.X, -b.HalfW+r, b.HalfW-r),
		Y: ClampF(p.Y, -b.HalfH+r, b.HalfH-r),
	}
}

// Contains reports whether p lies inside the bounds.
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= -b.HalfW && p.X <= b.HalfW && p.Y >= -b.HalfH && p.Y <= b.HalfH
}

// Rect represents an axis-aligned screen-space rectangle used for HUD layout.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
