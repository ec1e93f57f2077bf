// Package life implements Conway's Game of Life on a toroidal grid.
package life

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// World holds the cell grid and computes generations. Cells live in a
// row-major buffer; Step writes the next generation into a back buffer and
// swaps, so readers only ever see complete generations.
type World struct {
	w, h     int
	density  float64
	parallel bool
	cur      []uint8
	nxt      []uint8
}

// New constructs a World and randomizes it per the configuration.
func New(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cells := make([]uint8, cfg.Width*cfg.Height)
	w := &World{
		w:        cfg.Width,
		h:        cfg.Height,
		density:  cfg.Density,
		parallel: cfg.Parallel,
		cur:      cells,
		nxt:      make([]uint8, len(cells)),
	}
	w.Reset(cfg.Seed)
	return w, nil
}

// Width returns the grid width in cells.
func (w *World) Width() int { return w.w }

// Height returns the grid height in cells.
func (w *World) Height() int { return w.h }

// Cells exposes the current generation's buffer for rendering.
func (w *World) Cells() []uint8 { return w.cur }

// Alive reports the state of the cell at (x, y).
func (w *World) Alive(x, y int) bool { return w.cur[y*w.w+x] == 1 }

// Set forces the cell at (x, y) to the given state.
func (w *World) Set(x, y int, alive bool) {
	w.cur[y*w.w+x] = 0
	if alive {
		w.cur[y*w.w+x] = 1
	}
}

// Population returns the number of live cells.
func (w *World) Population() int {
	n := 0
	for _, c := range w.cur {
		n += int(c)
	}
	return n
}

// Reset re-randomizes the board with the configured density.
func (w *World) Reset(seed int64) {
	FillDensity(NewRNG(seed), w.cur, w.density)
}

// Neighbors counts live cells in the Moore neighborhood of (x, y).
// Coordinates wrap modulo the grid dimensions, so edge cells see
// neighbors on the opposite edge.
func (w *World) Neighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + w.w) % w.w
			ny := (y + dy + w.h) % w.h
			n += int(w.cur[ny*w.w+nx])
		}
	}
	return n
}

// Step advances the world by one generation. Every cell's next state is
// computed from the pre-step buffer, then the buffers swap.
func (w *World) Step() {
	if w.parallel {
		w.stepRowsParallel()
	} else {
		w.stepRows(0, w.h)
	}
	w.cur, w.nxt = w.nxt, w.cur
}

func (w *World) stepRows(y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := 0; x < w.w; x++ {
			idx := y*w.w + x
			neighbors := w.Neighbors(x, y)
			alive := w.cur[idx] == 1
			w.nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				w.nxt[idx] = 1
			}
		}
	}
}

// stepRowsParallel bands rows across workers. Workers read the current
// buffer and write disjoint rows of the back buffer, so no cell's update
// can observe another cell's new state.
func (w *World) stepRowsParallel() {
	var (
		eg      errgroup.Group
		workers = runtime.NumCPU()
		band    = (w.h + workers - 1) / workers
	)
	for i := 0; i < workers; i++ {
		y0 := i * band
		if y0 >= w.h {
			break
		}
		y1 := min(y0+band, w.h)
		eg.Go(func() error {
			w.stepRows(y0, y1)
			return nil
		})
	}
	// Workers never return errors; Wait only fences completion before the swap.
	_ = eg.Wait()
}
