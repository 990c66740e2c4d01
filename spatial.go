package main

import (
	"fmt"
	"math"
)

// Cell addresses one bucket of the grid in cell coordinates.
type Cell struct {
	X, Y int32
}

// SpatialGrid is a sparse uniform grid for broad-phase enemy queries. It is
// cleared and rebuilt from live enemy positions every tick, so it never holds
// stale handles within a tick.
type SpatialGrid struct {
	cellSize float64
	cells    map[Cell][]EnemyHandle
}

// NewSpatialGrid panics if cellSize is not positive; a zero cell size would
// collapse every position into a division blowup rather than a usable bucket.
func NewSpatialGrid(cellSize float64) *SpatialGrid {
	if cellSize <= 0 {
		panic(fmt.Sprintf("spatial grid cell size must be positive, got %v", cellSize))
	}
	return &SpatialGrid{
		cellSize: cellSize,
		cells:    make(map[Cell][]EnemyHandle),
	}
}

func (g *SpatialGrid) CellSize() float64 {
	return g.cellSize
}

// cellAt maps a world position to its cell. Floor division, so negative
// coordinates land in negative cells instead of folding onto cell zero.
func (g *SpatialGrid) cellAt(x, y float64) Cell {
	return Cell{
		X: int32(math.Floor(x / g.cellSize)),
		Y: int32(math.Floor(y / g.cellSize)),
	}
}

// Clear empties all cells (keeps allocated capacity)
func (g *SpatialGrid) Clear() {
	for c := range g.cells {
		g.cells[c] = g.cells[c][:0]
	}
}

// Insert adds an enemy handle at the given position.
func (g *SpatialGrid) Insert(x, y float64, h EnemyHandle) {
	c := g.cellAt(x, y)
	g.cells[c] = append(g.cells[c], h)
}

// GetNearby returns handles from all cells overlapping the query circle's
// bounding box. Candidates may be outside the radius; callers do the exact
// distance check. Handles within range are never missed.
func (g *SpatialGrid) GetNearby(x, y, radius float64) []EnemyHandle {
	return g.GetNearbyBuf(x, y, radius, nil)
}

// GetNearbyBuf appends results to buf and returns the extended slice,
// avoiding per-call allocation on hot paths.
func (g *SpatialGrid) GetNearbyBuf(x, y, radius float64, buf []EnemyHandle) []EnemyHandle {
	min := g.cellAt(x-radius, y-radius)
	max := g.cellAt(x+radius, y+radius)
	for cy := min.Y; cy <= max.Y; cy++ {
		for cx := min.X; cx <= max.X; cx++ {
			if bucket, ok := g.cells[Cell{X: cx, Y: cy}]; ok {
				buf = append(buf, bucket...)
			}
		}
	}
	return buf
}
