package geometry

import (
	"math"
	"sort"

	"github.com/akmonengine/geometry/shape"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Bounded is anything that can be indexed by its axis aligned bounds.
type Bounded interface {
	BoundingBox() shape.AABox
}

// CellKey is the integer coordinate of a grid cell.
type CellKey struct {
	X, Y, Z int
}

// Cell holds the indices of the boxes overlapping every cell hashed to it.
type Cell struct {
	indices []int
}

// Pair is a candidate pair of overlapping boxes, A < B.
type Pair struct {
	A, B int
}

// Grid is a uniform spatial grid used as a broad phase. Cells are hashed
// into a fixed power-of-two table, so distant cells may share a bucket:
// every candidate is confirmed against the stored boxes. Boxes covering
// more cells than the table holds, unbounded ones included, are kept
// aside in a single list tested against everything.
//
// A Grid is built by a single goroutine; once built, FindPairs,
// FindPairsParallel, QueryBox and Raycast only read it.
type Grid struct {
	cellSize float32
	cells    []Cell
	large    Cell
	cellMask int
	workers  int

	boxes   []shape.AABox
	present []bool
	bounds  shape.AABox
}

func NewGrid(config GridConfig) *Grid {
	config = config.withDefaults()
	numCells := nextPowerOfTwo(config.Cells)

	cells := make([]Cell, numCells)
	for i := range cells {
		cells[i].indices = make([]int, 0, 8)
	}

	return &Grid{
		cellSize: config.CellSize,
		cells:    cells,
		cellMask: numCells - 1,
		workers:  config.Workers,
		bounds:   shape.EmptyAABox(),
	}
}

func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// Insert registers box under index in every cell it overlaps. Empty boxes
// are ignored. Inserting the same index twice replaces the stored box but
// keeps the old cell entries: Clear the grid before moving boxes.
func (g *Grid) Insert(index int, box shape.AABox) {
	if index < 0 || box.IsEmpty() {
		return
	}

	if index >= len(g.boxes) {
		g.boxes = append(g.boxes, make([]shape.AABox, index+1-len(g.boxes))...)
		g.present = append(g.present, make([]bool, index+1-len(g.present))...)
	}
	g.boxes[index] = box
	g.present[index] = true
	g.bounds = g.bounds.Merge(box)

	if g.isLarge(box) {
		g.large.indices = append(g.large.indices, index)
		return
	}
	g.forEachCell(box, func(cellIdx int) {
		g.cells[cellIdx].indices = append(g.cells[cellIdx].indices, index)
	})
}

func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].indices = g.cells[i].indices[:0]
	}
	g.large.indices = g.large.indices[:0]
	g.boxes = g.boxes[:0]
	g.present = g.present[:0]
	g.bounds = shape.EmptyAABox()
}

func (g *Grid) SortCells() {
	for i := range g.cells {
		if len(g.cells[i].indices) > 1 {
			sort.Ints(g.cells[i].indices)
		}
	}
	sort.Ints(g.large.indices)
}

// Build clears the grid and indexes items by their position in the slice.
func (g *Grid) Build(items []Bounded) {
	g.Clear()
	for i, item := range items {
		g.Insert(i, item.BoundingBox())
	}
	g.SortCells()

	used := 0
	for i := range g.cells {
		if len(g.cells[i].indices) > 0 {
			used++
		}
	}
	Logger().Debug("grid built",
		zap.Int("items", len(items)),
		zap.Int("cells", used),
		zap.Int("large", len(g.large.indices)),
	)
}

// Len returns the number of index slots, including the ones never filled.
func (g *Grid) Len() int {
	return len(g.boxes)
}

// Box returns the box stored under index.
func (g *Grid) Box(index int) (shape.AABox, bool) {
	if index < 0 || index >= len(g.boxes) || !g.present[index] {
		return shape.AABox{}, false
	}
	return g.boxes[index], true
}

// FindPairs returns every pair of overlapping boxes, sorted by A then B.
func (g *Grid) FindPairs() []Pair {
	pairs := make([]Pair, 0, len(g.boxes)/2)
	seen := make([]bool, len(g.boxes))

	g.pairsOf(span{start: 0, end: len(g.boxes)}, seen, func(p Pair) {
		pairs = append(pairs, p)
	})

	sortPairs(pairs)
	return pairs
}

// FindPairsParallel streams the overlapping pairs found by workers
// goroutines. The channel is closed once every pair has been sent; the
// order is unspecified. A non positive workers count uses the configured
// one.
func (g *Grid) FindPairsParallel(workers int) <-chan Pair {
	if workers <= 0 {
		workers = g.workers
	}
	pairsChan := make(chan Pair, workers*10)
	spans := chunks(len(g.boxes), workers)

	go func() {
		defer close(pairsChan)

		_ = task(workers, spans, func(s span) error {
			seen := make([]bool, len(g.boxes))
			g.pairsOf(s, seen, func(p Pair) {
				pairsChan <- p
			})
			return nil
		})
	}()

	return pairsChan
}

// pairsOf emits the pairs whose lower index lies in s. seen must be a
// cleared slice of len(g.boxes) and is cleared again on return.
func (g *Grid) pairsOf(s span, seen []bool, emit func(Pair)) {
	touched := make([]int, 0, 16)

	for indexA := s.start; indexA < s.end; indexA++ {
		if !g.present[indexA] {
			continue
		}
		boxA := g.boxes[indexA]

		test := func(indexB int) {
			if indexB <= indexA || seen[indexB] {
				return
			}
			seen[indexB] = true
			touched = append(touched, indexB)

			if boxA.Overlaps(g.boxes[indexB]) {
				emit(Pair{A: indexA, B: indexB})
			}
		}

		if g.isLarge(boxA) {
			for indexB := indexA + 1; indexB < len(g.boxes); indexB++ {
				if g.present[indexB] {
					test(indexB)
				}
			}
		} else {
			g.forEachCell(boxA, func(cellIdx int) {
				for _, indexB := range g.cells[cellIdx].indices {
					test(indexB)
				}
			})
			for _, indexB := range g.large.indices {
				test(indexB)
			}
		}

		for _, i := range touched {
			seen[i] = false
		}
		touched = touched[:0]
	}
}

func (g *Grid) isLarge(box shape.AABox) bool {
	return g.cellCount(box) > len(g.cells)
}

// QueryBox returns the sorted indices of the stored boxes overlapping box.
func (g *Grid) QueryBox(box shape.AABox) []int {
	box = box.Intersection(g.bounds)
	if box.IsEmpty() {
		return nil
	}

	if g.isLarge(box) {
		return g.scan(box)
	}

	seen := make(map[int]struct{})
	var result []int
	test := func(index int) {
		if _, ok := seen[index]; ok {
			return
		}
		seen[index] = struct{}{}

		if box.Overlaps(g.boxes[index]) {
			result = append(result, index)
		}
	}

	g.forEachCell(box, func(cellIdx int) {
		for _, index := range g.cells[cellIdx].indices {
			test(index)
		}
	})
	for _, index := range g.large.indices {
		test(index)
	}

	sort.Ints(result)
	return result
}

// scan tests box against every stored box, for queries covering more cells
// than the table holds.
func (g *Grid) scan(box shape.AABox) []int {
	var result []int
	for index, other := range g.boxes {
		if g.present[index] && box.Overlaps(other) {
			result = append(result, index)
		}
	}
	return result
}

// Raycast returns the index of the first box hit by ray at a parameter in
// [0, maxT], along with that parameter. maxT may be +Inf. Ties go to the
// lowest index.
func (g *Grid) Raycast(ray shape.Ray, maxT float32) (int, float32, bool) {
	if maxT < 0 || math.IsNaN(float64(maxT)) {
		return -1, 0, false
	}

	bestIndex, bestT := -1, float32(0)
	for _, index := range g.QueryBox(segmentBounds(ray, maxT)) {
		t, ok := ray.IntersectsBox(g.boxes[index])
		if !ok || t > maxT {
			continue
		}
		if bestIndex < 0 || t < bestT {
			bestIndex, bestT = index, t
		}
	}

	return bestIndex, bestT, bestIndex >= 0
}

// segmentBounds returns the box swept by ray over [0, maxT]. Axes the ray
// does not move along stay flat, even when maxT is infinite.
func segmentBounds(ray shape.Ray, maxT float32) shape.AABox {
	var box shape.AABox
	for axis := 0; axis < 3; axis++ {
		start := ray.Position[axis]
		end := start
		if dir := ray.Direction[axis]; dir != 0 {
			end = start + dir*maxT
		}
		box.Min[axis] = min(start, end)
		box.Max[axis] = max(start, end)
	}
	return box
}

// cellCount returns how many cells box covers, saturating at MaxInt32 for
// huge or non finite boxes.
func (g *Grid) cellCount(box shape.AABox) int {
	count := 1.0
	for axis := 0; axis < 3; axis++ {
		lo := math.Floor(float64(box.Min[axis] / g.cellSize))
		hi := math.Floor(float64(box.Max[axis] / g.cellSize))
		count *= hi - lo + 1
	}
	if !(count <= math.MaxInt32) {
		return math.MaxInt32
	}
	return int(count)
}

func (g *Grid) forEachCell(box shape.AABox, fn func(cellIdx int)) {
	minCell := g.worldToCell(box.Min)
	maxCell := g.worldToCell(box.Max)

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				fn(g.hashCell(CellKey{x, y, z}))
			}
		}
	}
}

func (g *Grid) worldToCell(pos mgl32.Vec3) CellKey {
	return CellKey{
		X: int(math.Floor(float64(pos.X() / g.cellSize))),
		Y: int(math.Floor(float64(pos.Y() / g.cellSize))),
		Z: int(math.Floor(float64(pos.Z() / g.cellSize))),
	}
}

func (g *Grid) hashCell(key CellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663) ^ (key.Z * 83492791)
	return h & g.cellMask
}

func sortPairs(pairs []Pair) {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
}
