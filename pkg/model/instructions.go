package model

// RunInstructions is the ordered list of run lengths for one line: "n runs
// of filled cells of lengths k1..kn in this order, separated by at least
// one empty cell".
type RunInstructions struct {
	runs []int
}

// NewRunInstructions builds a RunInstructions from a list of positive run
// lengths, in order. An empty list is a legal instruction meaning "no runs".
func NewRunInstructions(runs ...int) RunInstructions {
	cp := make([]int, len(runs))
	copy(cp, runs)
	return RunInstructions{runs: cp}
}

// RunInstructionsFromLine derives the run instructions that describe a
// fully-set line, by run-length encoding its Fill cells. Used by the
// monochrome image loader, the generator, the fixtures package, and the
// board's solved checks.
func RunInstructionsFromLine(line Line) RunInstructions {
	var runs []int
	count := 0
	for i := 0; i < line.Len(); i++ {
		if line.At(i) == Fill {
			count++
			continue
		}
		if count > 0 {
			runs = append(runs, count)
			count = 0
		}
	}
	if count > 0 {
		runs = append(runs, count)
	}
	return RunInstructions{runs: runs}
}

// Len returns the number of runs.
func (r RunInstructions) Len() int {
	return len(r.runs)
}

// At returns the length of run i.
func (r RunInstructions) At(i int) int {
	return r.runs[i]
}

// Runs returns the underlying run lengths. Callers must not mutate it.
func (r RunInstructions) Runs() []int {
	return r.runs
}

// MinLength is sum(k_i) + (n-1), the minimum line length this instruction
// list can fit in; 0 when there are no runs.
func (r RunInstructions) MinLength() int {
	if len(r.runs) == 0 {
		return 0
	}
	total := len(r.runs) - 1
	for _, k := range r.runs {
		total += k
	}
	return total
}

// Reverse returns the instructions in reverse run order.
func (r RunInstructions) Reverse() RunInstructions {
	n := len(r.runs)
	reversed := make([]int, n)
	for i, k := range r.runs {
		reversed[n-1-i] = k
	}
	return RunInstructions{runs: reversed}
}

// Equal compares two instruction lists run-by-run.
func (r RunInstructions) Equal(other RunInstructions) bool {
	if len(r.runs) != len(other.runs) {
		return false
	}
	for i, k := range r.runs {
		if k != other.runs[i] {
			return false
		}
	}
	return true
}
