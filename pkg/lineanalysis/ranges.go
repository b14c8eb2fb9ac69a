// Package lineanalysis implements per-line solving: extracting gaps and
// blocks from a line, and computing the leftmost/rightmost feasible
// placement of every run against its instructions.
package lineanalysis

import "github.com/eng618/nonosolve/pkg/model"

// Interval is a half-open range [Start, Stop) over line indices.
type Interval struct {
	Start, Stop int
}

// Len returns Stop - Start.
func (iv Interval) Len() int {
	return iv.Stop - iv.Start
}

// Contains reports whether index lies in [Start, Stop).
func (iv Interval) Contains(index int) bool {
	return index >= iv.Start && index < iv.Stop
}

// Intersect returns the intersection of two intervals; the result may have
// Stop <= Start if they don't overlap.
func (iv Interval) Intersect(other Interval) Interval {
	start := iv.Start
	if other.Start > start {
		start = other.Start
	}
	stop := iv.Stop
	if other.Stop < stop {
		stop = other.Stop
	}
	return Interval{Start: start, Stop: stop}
}

// Gap is a maximal contiguous interval of cells that are not Empty. Runs
// can only be placed within a single gap of length >= the run's size.
type Gap struct {
	Interval
}

// Block is a maximal contiguous interval of currently-Fill cells,
// identified by its (start, stop) and the gap that contains it.
type Block struct {
	Interval
	ContainingGap Gap
}

// Extract walks line left to right once, producing the ordered list of
// gaps (intervals of not-Empty cells) and the ordered list of blocks
// (intervals of Fill cells), each block tagged with its enclosing gap. A
// length-0 line yields no gaps and no blocks.
func Extract(line model.Line) (gaps []Gap, blocks []Block) {
	length := line.Len()
	gapStart := 0
	blockStart := -1
	// pendingBlocks accumulates blocks discovered while scanning the gap
	// currently being built, so they can be tagged once the gap closes.
	var pendingBlocks []Interval

	closeGap := func(stop int) {
		if gapStart == stop {
			pendingBlocks = nil
			return
		}
		gap := Gap{Interval{Start: gapStart, Stop: stop}}
		for _, b := range pendingBlocks {
			blocks = append(blocks, Block{Interval: b, ContainingGap: gap})
		}
		gaps = append(gaps, gap)
		pendingBlocks = nil
	}

	for i := 0; i < length; i++ {
		switch line.At(i) {
		case model.Fill:
			if blockStart == -1 {
				blockStart = i
			}
		case model.Empty:
			if blockStart > -1 {
				pendingBlocks = append(pendingBlocks, Interval{Start: blockStart, Stop: i})
				blockStart = -1
			}
			closeGap(i)
			gapStart = i + 1
		default: // Unset
			if blockStart > -1 {
				pendingBlocks = append(pendingBlocks, Interval{Start: blockStart, Stop: i})
				blockStart = -1
			}
		}
	}
	if blockStart > -1 {
		pendingBlocks = append(pendingBlocks, Interval{Start: blockStart, Stop: length})
	}
	if gapStart < length {
		closeGap(length)
	}
	return gaps, blocks
}
