package pose

import (
	"github.com/ironsheep/silhouette-pose-mcp/internal/monitoring"
)

// Estimate runs the coarse-to-fine projection search.
//
// # Algorithm
//
//  1. The first window is [0, 180+overscan), where overscan is OverscanSteps times the
//     initial step 180/Samples. Angles past 180 repeat the axes just after 0 and catch a
//     best angle that sits on the wrap.
//  2. Each round samples [start, end) every max(1, (end-start)/Samples) degrees, filling
//     both caches.
//  3. The candidate is the cached angle inside the search range with the largest
//     projection peak. Cached angles are scanned in ascending order and the first maximum
//     wins. The EdgeExclusion lowest and highest angles are skipped.
//  4. The next window is [candidate-step, candidate+step], clamped to the search range.
//
// After the last round the candidate goes through direction resolution.
//
// The wrap at 0/180 is only mitigated by the overscan: an axis that the coarse samples
// see on both sides of the wrap can still be narrowed onto the weaker side.
func (e *Estimator) Estimate() (Result, error) {
	samples := e.opts.Samples
	initialStep := max(1, 180/samples)
	limit := min(360, 180+e.opts.OverscanSteps*initialStep)

	start, end := 0, limit
	candidate := 0
	for i := 0; i < e.opts.Iterations; i++ {
		step := max(1, (end-start)/samples)
		for a := start; a < end; a += step {
			if _, err := e.projs.Get(a); err != nil {
				return Result{}, err
			}
		}

		best, bestPeak, err := e.bestCached(limit)
		if err != nil {
			return Result{}, err
		}
		monitoring.Logf("pose: round %d window [%d,%d) step %d -> %d (peak %.0f)",
			i+1, start, end, step, best, bestPeak)

		candidate = best
		start = max(0, candidate-step)
		end = min(limit, candidate+step)
	}

	return e.resolve(candidate, MethodFull)
}

// bestCached picks the cached angle below limit whose projection has the largest peak.
func (e *Estimator) bestCached(limit int) (int, float64, error) {
	var inRange []int
	for _, a := range e.projs.Angles() {
		if a < limit {
			inRange = append(inRange, a)
		}
	}

	selectable := inRange
	if n := e.opts.EdgeExclusion; n > 0 && len(inRange) > 2*n {
		selectable = inRange[n : len(inRange)-n]
	}

	best, bestPeak := 0, -1.0
	for _, a := range selectable {
		p, err := e.projs.Peak(a)
		if err != nil {
			return 0, 0, err
		}
		if p > bestPeak {
			best, bestPeak = a, p
		}
	}
	return best, bestPeak, nil
}

// EstimateFast estimates the axis from second-order moments and refines it by testing
// four rotations 90 degrees apart, offset by the negated closed-form angle. The rotation
// with the largest projection peak wins, the first one on ties.
//
// Returns ErrUndefinedOrientation when the moments are degenerate (no foreground, or a
// cross moment of exactly zero, as for an axis-aligned rectangle). Use MethodAuto to fall
// back to Estimate in that case.
func (e *Estimator) EstimateFast() (Result, error) {
	m := ComputeMoments(e.rots.Source())
	offset, err := m.Orientation()
	if err != nil {
		return Result{}, err
	}

	candidates := fastCandidates(offset)
	best, bestPeak := candidates[0], -1.0
	for _, a := range candidates {
		p, err := e.projs.Peak(a)
		if err != nil {
			return Result{}, err
		}
		if p > bestPeak {
			best, bestPeak = a, p
		}
	}
	monitoring.Logf("pose: moment offset %.2f, candidates %v -> %d (peak %.0f)",
		offset, candidates, best, bestPeak)

	return e.resolve(best, MethodFast)
}
