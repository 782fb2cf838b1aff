package bptree

import "math"

// predictor is a leaf's linear position model: p(x) = clamp(round(a*x+b), 0, cap-1).
// It is advisory only — every correctness property of the leaf must hold
// with trained == false, where callers fall back to binary search.
type predictor[K Numeric] struct {
	a, b    float64
	trained bool
}

// predict returns a hint slot index for key x, or -1 if the model has not
// been trained yet.
func (p *predictor[K]) predict(x K, cap int) int {
	if !p.trained {
		return -1
	}
	raw := p.a*float64(x) + p.b
	pos := int(math.Round(raw))
	if pos < 0 {
		pos = 0
	}
	if pos > cap-1 {
		pos = cap - 1
	}
	return pos
}

// fit performs ordinary least squares over the samples (keys[i], positions[i]),
// the current physical slot index of each live key. A single sample
// degenerates to the flat model b = its position; samples with zero key
// variance degenerate to the flat model b = their mean position.
func (p *predictor[K]) fit(keys []K, positions []int) {
	n := len(keys)
	if n == 0 {
		return
	}
	if n == 1 {
		p.a = 0
		p.b = float64(positions[0])
		p.trained = true
		return
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += float64(keys[i])
		sumY += float64(positions[i])
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var varX, covXY float64
	for i := 0; i < n; i++ {
		dx := float64(keys[i]) - meanX
		dy := float64(positions[i]) - meanY
		varX += dx * dx
		covXY += dx * dy
	}

	if varX == 0 {
		p.a = 0
		p.b = meanY
		p.trained = true
		return
	}

	p.a = covXY / varX
	p.b = meanY - p.a*meanX
	p.trained = true
}
