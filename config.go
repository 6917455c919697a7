package geometry

const (
	DEFAULT_WORKERS = 1

	DefaultCellSize float32 = 1
	DefaultCells            = 1024
)

// GridConfig sizes a Grid. Zero or negative fields fall back to the
// package defaults.
type GridConfig struct {
	// CellSize is the edge length of a cubic cell, in world units.
	CellSize float32
	// Cells is the size of the hash table, rounded up to a power of two.
	Cells int
	// Workers is the default fan-out of FindPairsParallel.
	Workers int
}

func DefaultGridConfig() GridConfig {
	return GridConfig{
		CellSize: DefaultCellSize,
		Cells:    DefaultCells,
		Workers:  DEFAULT_WORKERS,
	}
}

func (c GridConfig) withDefaults() GridConfig {
	if c.CellSize <= 0 {
		c.CellSize = DefaultCellSize
	}
	if c.Cells <= 0 {
		c.Cells = DefaultCells
	}
	if c.Workers <= 0 {
		c.Workers = DEFAULT_WORKERS
	}
	return c
}
