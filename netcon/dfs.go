// Package netcon — depth-first constructive search (exact, with pruning).
//
// depthFirst enumerates pairwise contraction orders via a recursive
// branch-and-bound search with deterministic branching, incumbent
// pruning, an optional pairwise memo cache, and a soft time budget.
//
// Rationale (succinct):
//  1. Strict input shape is enforced by the dispatcher; here we keep
//     only hot-path state in a dedicated engine struct (no anonymous
//     closures) so dependencies stay explicit and testing stays simple.
//  2. The working tensor list grows: positions 0..n−1 are the inputs,
//     every chosen partial contraction is appended behind them. The
//     pair sequence records *absolute* positions into this growing
//     list, which is exactly what the tree assembler consumes.
//  3. Pruning: a branch dies the moment runningCost + pairCost reaches
//     the incumbent (≥, strict-better-wins). Among equal-cost optima
//     the first-explored order is returned, deterministically.
//  4. Branching order: ordered pairs (i < j) over the remaining list,
//     ascending. Fully deterministic; no heuristic reordering.
//  5. Memo cache: keyed by the exact byte encoding of the two operand
//     label vectors, no canonicalization — symmetric pairs cache
//     separately. It skips kernel evaluations only; branch order and
//     results are identical with and without it.
//  6. Soft time limit: rare deadline checks (every 4096 node events)
//     keep overhead negligible.
//
// Complexity:
//   - Worst case (2N−3)!! orders (exact search); practical speed comes
//     from pruning. Per node: O(n²) pair scan with O(|A|+|B|) kernels.
//   - Memory: O(n²) labels on the current path + the memo cache.
package netcon

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/katalvlaran/tnet/core"
)

// memoEntry is one cached pairwise contraction: the result label vector
// and the kernel cost for a specific ordered operand pair.
type memoEntry struct {
	res  []int
	cost int64
}

// dfsEngine holds all search data and policies for one invocation.
type dfsEngine struct {
	n    int     // number of input tensors
	dims []int64 // label -> dimension

	// Growing working state along the current path.
	tensors [][]int  // inputs 0..n−1, then chosen partials
	avail   []int    // positions still available for contraction
	seq     [][2]int // pair sequence on the current path
	running int64    // running cost on the current path

	// Incumbent.
	bestCost int64
	bestSeq  [][2]int

	// Optional pairwise memo cache (nil when disabled).
	memo map[string]memoEntry

	// Soft time budget.
	useDeadline bool
	deadline    time.Time
	steps       int // sparse deadline check counter

	// Failure latches; checked by the driver after the search unwinds.
	failure error // ErrCostOverflow / ErrTimeLimit / ErrInternalInvariant

	// kernelCalls counts contractVec evaluations (memo hits excluded);
	// exercised by tests to pin the caching contract.
	kernelCalls int
}

// deadlineCheck performs a rare deadline test (every 4096 node events).
//
// Complexity: O(1) amortized.
func (e *dfsEngine) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || (e.steps&4095) != 0 {
		return false
	}

	return time.Now().After(e.deadline)
}

// pairContract returns the result labels and kernel cost of contracting
// working positions a and b, through the memo cache when enabled.
//
// Complexity: O(|A|+|B|) on a miss, O(key) on a hit.
func (e *dfsEngine) pairContract(a, b int) ([]int, int64, error) {
	la, lb := e.tensors[a], e.tensors[b]
	if e.memo == nil {
		e.kernelCalls++

		return contractVec(la, lb, e.dims)
	}

	key := memoKey(la, lb)
	if ent, ok := e.memo[key]; ok {
		return ent.res, ent.cost, nil
	}
	e.kernelCalls++
	res, c, err := contractVec(la, lb, e.dims)
	if err != nil {
		return nil, 0, err
	}
	e.memo[key] = memoEntry{res: res, cost: c}

	return res, c, nil
}

// memoKey encodes the ordered operand pair (a, b) unambiguously:
// length-prefixed varint streams. No canonicalization — (a, b) and
// (b, a) key separately.
//
// Complexity: O(|a|+|b|).
func memoKey(a, b []int) string {
	buf := make([]byte, 0, 2*(len(a)+len(b))+4)
	buf = binary.AppendUvarint(buf, uint64(len(a)))
	var l int
	for _, l = range a {
		buf = binary.AppendUvarint(buf, uint64(l))
	}
	buf = binary.AppendUvarint(buf, uint64(len(b)))
	for _, l = range b {
		buf = binary.AppendUvarint(buf, uint64(l))
	}

	return string(buf)
}

// search is the core recursion. It returns false to abandon the whole
// call (failure latched in e.failure); true means keep exploring.
func (e *dfsEngine) search() bool {
	if e.deadlineCheck() {
		e.failure = ErrTimeLimit

		return false
	}

	// Terminal frame: a single tensor remains. The pruning rule
	// guarantees this path strictly improves on the incumbent.
	if len(e.avail) == 1 {
		if e.running >= e.bestCost {
			e.failure = ErrInternalInvariant

			return false
		}
		e.bestCost = e.running
		e.bestSeq = append(e.bestSeq[:0], e.seq...)

		return true
	}

	var (
		i, j   int
		a, b   int
		res    []int
		c      int64
		newRun int64
		ok     bool
		err    error
	)
	for i = 0; i < len(e.avail)-1; i++ {
		for j = i + 1; j < len(e.avail); j++ {
			a, b = e.avail[i], e.avail[j]

			res, c, err = e.pairContract(a, b)
			if err != nil {
				e.failure = err

				return false
			}
			if newRun, ok = addChecked(e.running, c); !ok {
				e.failure = ErrCostOverflow

				return false
			}
			// Prune: meeting the incumbent is already too expensive.
			if newRun >= e.bestCost {
				continue
			}

			// Extend the path: record absolute positions, grow the
			// working list, rebuild the remaining list without i, j.
			e.seq = append(e.seq, [2]int{a, b})
			e.tensors = append(e.tensors, res)
			savedAvail := e.avail
			next := make([]int, 0, len(savedAvail)-1)
			next = append(next, savedAvail[:i]...)
			next = append(next, savedAvail[i+1:j]...)
			next = append(next, savedAvail[j+1:]...)
			next = append(next, len(e.tensors)-1)
			e.avail = next
			savedRun := e.running
			e.running = newRun

			proceed := e.search()

			// Unwind the frame.
			e.running = savedRun
			e.avail = savedAvail
			e.tensors = e.tensors[:len(e.tensors)-1]
			e.seq = e.seq[:len(e.seq)-1]

			if !proceed {
				return false
			}
		}
	}

	return true
}

// newDFSEngine prepares the search state for one invocation. Split from
// run so tests can inspect engine counters after a search.
//
// Complexity: O(n).
func newDFSEngine(enc *core.Encoding, enableMemo bool, timeLimit time.Duration) *dfsEngine {
	n := enc.N()

	e := &dfsEngine{
		n:        n,
		dims:     enc.Dims,
		tensors:  make([][]int, n, 2*n-1),
		avail:    make([]int, n),
		seq:      make([][2]int, 0, n-1),
		bestCost: math.MaxInt64,
	}
	copy(e.tensors, enc.Labels)
	var i int
	for i = 0; i < n; i++ {
		e.avail[i] = i
	}
	if enableMemo {
		e.memo = make(map[string]memoEntry)
	}
	if timeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(timeLimit)
	}

	return e
}

// run executes the search and assembles the winning sequence.
//
// Errors: ErrCostOverflow, ErrTimeLimit, ErrInternalInvariant.
//
// Complexity: see package notes; memory O(n²) plus the memo cache.
func (e *dfsEngine) run() (Result, error) {
	if !e.search() {
		return Result{}, e.failure
	}
	if e.bestSeq == nil {
		// Every full order was pruned against the initial +∞ incumbent —
		// impossible; the first complete path always commits.
		return Result{}, ErrInternalInvariant
	}

	tree, err := buildTree(e.n, e.bestSeq)
	if err != nil {
		return Result{}, err
	}

	return Result{Tree: tree, Cost: e.bestCost}, nil
}

// depthFirst is the driver for the branch-and-bound search. The
// dispatcher guarantees n >= 4.
func depthFirst(enc *core.Encoding, enableMemo bool, timeLimit time.Duration) (Result, error) {
	return newDFSEngine(enc, enableMemo, timeLimit).run()
}
