// SPDX-License-Identifier: MIT

package csa

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Polynomial sizes for the degree fallback chain.
const (
	cubicTerms  = 10
	quadTerms   = 6
	linearTerms = 3
)

// Approximator fits scattered (x, y, z) samples with local weighted cubic
// least squares. Build with New; safe for concurrent Approximate calls,
// not for concurrent SetZ.
type Approximator struct {
	x, y, z []float64
	sigma   []float64

	npmin, npmax int
	nppc         int
	k            float64

	// Uniform cell index over the input bounding box.
	x0, y0   float64
	cell     float64
	cnx, cny int
	buckets  [][]int
}

// New validates the sample set and builds the cell index. All slices are
// copied; the caller keeps ownership of its own.
func New(xin, yin, zin []float64, opts ...Option) (*Approximator, error) {
	n := len(xin)
	if n == 0 || len(yin) != n || len(zin) != n {
		return nil, fmt.Errorf("%w: x=%d y=%d z=%d", ErrLengthMismatch, len(xin), len(yin), len(zin))
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.npmin < 1 {
		return nil, fmt.Errorf("%w: npmin=%d", ErrInvalidParam, cfg.npmin)
	}
	if cfg.npmax < cfg.npmin {
		return nil, fmt.Errorf("%w: npmax=%d < npmin=%d", ErrInvalidParam, cfg.npmax, cfg.npmin)
	}
	if cfg.k <= 0 {
		return nil, fmt.Errorf("%w: k=%g", ErrInvalidParam, cfg.k)
	}
	if cfg.nppc < 1 {
		return nil, fmt.Errorf("%w: nppc=%d", ErrInvalidParam, cfg.nppc)
	}
	if cfg.sigma != nil {
		if len(cfg.sigma) != n {
			return nil, fmt.Errorf("%w: sigma=%d points=%d", ErrLengthMismatch, len(cfg.sigma), n)
		}
		for i, s := range cfg.sigma {
			if s <= 0 {
				return nil, fmt.Errorf("%w: sigma[%d]=%g", ErrInvalidParam, i, s)
			}
		}
	}

	a := &Approximator{
		x:     append([]float64(nil), xin...),
		y:     append([]float64(nil), yin...),
		z:     append([]float64(nil), zin...),
		npmin: cfg.npmin,
		npmax: cfg.npmax,
		nppc:  cfg.nppc,
		k:     cfg.k,
	}
	if cfg.sigma != nil {
		a.sigma = append([]float64(nil), cfg.sigma...)
	}
	a.buildIndex()

	return a, nil
}

// SetZ swaps the sample values, keeping coordinates and index untouched.
// Typical use: several fields sounded at the same stations.
func (a *Approximator) SetZ(zin []float64) error {
	if len(zin) != len(a.z) {
		return fmt.Errorf("%w: z=%d points=%d", ErrLengthMismatch, len(zin), len(a.z))
	}
	copy(a.z, zin)

	return nil
}

// Approximate evaluates the field at every query point. Entries whose
// neighborhood stays below the NPMin floor are NaN (see IsMasked).
func (a *Approximator) Approximate(xout, yout []float64) ([]float64, error) {
	if len(xout) != len(yout) {
		return nil, fmt.Errorf("%w: xout=%d yout=%d", ErrLengthMismatch, len(xout), len(yout))
	}

	out := make([]float64, len(xout))
	for q := range xout {
		out[q] = a.at(xout[q], yout[q])
	}

	return out, nil
}

// IsMasked reports whether an approximated value marks a failed query.
func IsMasked(v float64) bool { return math.IsNaN(v) }

// buildIndex lays a uniform cell grid over the bounding box, sized for
// roughly nppc points per cell, and buckets the point indices.
func (a *Approximator) buildIndex() {
	minX, maxX := a.x[0], a.x[0]
	minY, maxY := a.y[0], a.y[0]
	for i := range a.x {
		minX = math.Min(minX, a.x[i])
		maxX = math.Max(maxX, a.x[i])
		minY = math.Min(minY, a.y[i])
		maxY = math.Max(maxY, a.y[i])
	}
	w, h := maxX-minX, maxY-minY
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}

	target := len(a.x) / a.nppc
	if target < 1 {
		target = 1
	}
	a.cell = math.Sqrt(w * h / float64(target))
	a.cnx = int(math.Ceil(w / a.cell))
	a.cny = int(math.Ceil(h / a.cell))
	a.x0, a.y0 = minX, minY

	a.buckets = make([][]int, a.cnx*a.cny)
	for i := range a.x {
		ci := a.clampCol(a.x[i])
		cj := a.clampRow(a.y[i])
		a.buckets[cj*a.cnx+ci] = append(a.buckets[cj*a.cnx+ci], i)
	}
}

func (a *Approximator) clampCol(x float64) int {
	c := int((x - a.x0) / a.cell)
	if c < 0 {
		return 0
	}
	if c >= a.cnx {
		return a.cnx - 1
	}

	return c
}

func (a *Approximator) clampRow(y float64) int {
	r := int((y - a.y0) / a.cell)
	if r < 0 {
		return 0
	}
	if r >= a.cny {
		return a.cny - 1
	}

	return r
}

// at answers one query: gather, weight, fit, evaluate.
func (a *Approximator) at(qx, qy float64) float64 {
	cand := a.gather(qx, qy)
	if len(cand) < a.npmin {
		return math.NaN()
	}

	// Nearest first; index tie-break keeps the order deterministic.
	d2 := func(p int) float64 {
		dx, dy := a.x[p]-qx, a.y[p]-qy
		return dx*dx + dy*dy
	}
	sort.Slice(cand, func(i, j int) bool {
		di, dj := d2(cand[i]), d2(cand[j])
		if di != dj {
			return di < dj
		}
		return cand[i] < cand[j]
	})
	if len(cand) > a.npmax {
		cand = cand[:a.npmax]
	}

	return a.fit(qx, qy, cand)
}

// gather collects candidate point indices from cells in expanding rings
// around the query cell. It walks one ring past the first ring that
// satisfies the floor, so near-boundary neighbors are not missed.
func (a *Approximator) gather(qx, qy float64) []int {
	ci := a.clampCol(qx)
	cj := a.clampRow(qy)

	var cand []int
	enoughAt := -1
	maxR := a.cnx + a.cny
	for r := 0; r <= maxR; r++ {
		for dj := -r; dj <= r; dj++ {
			for di := -r; di <= r; di++ {
				if maxInt(absInt(di), absInt(dj)) != r {
					continue
				}
				x, y := ci+di, cj+dj
				if x < 0 || x >= a.cnx || y < 0 || y >= a.cny {
					continue
				}
				cand = append(cand, a.buckets[y*a.cnx+x]...)
			}
		}
		if enoughAt < 0 && len(cand) >= a.npmin {
			enoughAt = r
		}
		if enoughAt >= 0 && r > enoughAt {
			break
		}
	}

	return cand
}

// fit runs the weighted least-squares chain at one query point: cubic when
// the neighborhood supports it, then quadratic, linear, and finally the
// weighted mean. The basis is centered on the query, so the fitted value is
// the constant coefficient.
func (a *Approximator) fit(qx, qy float64, cand []int) float64 {
	last := cand[len(cand)-1]
	dMax := math.Hypot(a.x[last]-qx, a.y[last]-qy)

	w := make([]float64, len(cand))
	for i, p := range cand {
		w[i] = 1.0
		if dMax > 0 {
			d := math.Hypot(a.x[p]-qx, a.y[p]-qy) / dMax
			w[i] = math.Exp(-(a.k / DefaultK) * d * d)
		}
		if a.sigma != nil {
			w[i] /= a.sigma[p] * a.sigma[p]
		}
	}

	for _, terms := range []int{cubicTerms, quadTerms, linearTerms} {
		if len(cand) < terms {
			continue
		}
		if v, ok := a.solveLS(qx, qy, cand, w, terms); ok {
			return v
		}
	}

	// Weighted mean fallback.
	var num, den float64
	for i, p := range cand {
		num += w[i] * a.z[p]
		den += w[i]
	}
	if den == 0 {
		return math.NaN()
	}

	return num / den
}

// solveLS fits one polynomial by QR on the weighted design matrix.
func (a *Approximator) solveLS(qx, qy float64, cand []int, w []float64, terms int) (float64, bool) {
	m := len(cand)
	design := mat.NewDense(m, terms, nil)
	rhs := mat.NewVecDense(m, nil)
	row := make([]float64, cubicTerms)
	for i, p := range cand {
		u, v := a.x[p]-qx, a.y[p]-qy
		basis(row, u, v)
		sw := math.Sqrt(w[i])
		for t := 0; t < terms; t++ {
			design.Set(i, t, sw*row[t])
		}
		rhs.SetVec(i, sw*a.z[p])
	}

	var qr mat.QR
	qr.Factorize(design)
	var coef mat.VecDense
	if err := qr.SolveVecTo(&coef, false, rhs); err != nil {
		return 0, false
	}

	return coef.AtVec(0), true
}

// basis fills the centered monomial row 1, u, v, u², uv, v², u³, u²v, uv², v³.
func basis(row []float64, u, v float64) {
	row[0] = 1
	row[1] = u
	row[2] = v
	row[3] = u * u
	row[4] = u * v
	row[5] = v * v
	row[6] = u * u * u
	row[7] = u * u * v
	row[8] = u * v * v
	row[9] = v * v * v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
