package samples

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/ejhigson/perfectns/problem"
)

// Matrix is the dynamic driver's mutable intermediate representation:
// columns (logl, r, logx, thread_label, dNLive, theta...), grown by append
// as threads are inserted and re-sorted by logl after every batch.
//
// Unlike Run, Matrix keeps Theta as a slice of row slices rather than a
// *mat.Dense: Dense has no efficient row-append, and this matrix grows by
// len(thread) rows per batch, so callers pre-reserve capacity with Reserve
// instead of paying for incremental reallocation. Matrix.ToRun copies the
// accumulated rows into a *mat.Dense once, when the run is finalized and
// immutable.
type Matrix struct {
	LogL        []float64
	R           []float64
	LogX        []float64
	ThreadLabel []int
	DNLive      []int
	Theta       [][]float64
}

// NewMatrix returns an empty Matrix.
func NewMatrix() *Matrix {
	return &Matrix{}
}

// Reserve pre-sizes the backing slices to n rows, avoiding amortized
// reallocation while the dynamic driver appends batches.
func (m *Matrix) Reserve(n int) {
	if cap(m.LogL) >= n {
		return
	}

	newLogL := make([]float64, len(m.LogL), n)
	copy(newLogL, m.LogL)
	m.LogL = newLogL

	newR := make([]float64, len(m.R), n)
	copy(newR, m.R)
	m.R = newR

	newLogX := make([]float64, len(m.LogX), n)
	copy(newLogX, m.LogX)
	m.LogX = newLogX

	newLabel := make([]int, len(m.ThreadLabel), n)
	copy(newLabel, m.ThreadLabel)
	m.ThreadLabel = newLabel

	newDNLive := make([]int, len(m.DNLive), n)
	copy(newDNLive, m.DNLive)
	m.DNLive = newDNLive

	newTheta := make([][]float64, len(m.Theta), n)
	copy(newTheta, m.Theta)
	m.Theta = newTheta
}

// Len returns the current number of rows.
func (m *Matrix) Len() int { return len(m.LogL) }

// Append adds one row to the matrix.
func (m *Matrix) Append(logl, r, logx float64, threadLabel, dNLive int, theta []float64) {
	m.LogL = append(m.LogL, logl)
	m.R = append(m.R, r)
	m.LogX = append(m.LogX, logx)
	m.ThreadLabel = append(m.ThreadLabel, threadLabel)
	m.DNLive = append(m.DNLive, dNLive)
	m.Theta = append(m.Theta, theta)
}

// AddDNLive increments the dNLive column at row i, used to record a new
// thread's birth at an existing row without re-searching the matrix by logl
// value — the caller already knows which row it means.
func (m *Matrix) AddDNLive(i, delta int) {
	m.DNLive[i] += delta
}

// SortByLogL stably sorts every column by LogL ascending. Stability
// preserves within-thread tie order.
func (m *Matrix) SortByLogL() {
	idx := make([]int, m.Len())
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return m.LogL[idx[a]] < m.LogL[idx[b]]
	})

	permuteFloat(idx, m.LogL)
	permuteFloat(idx, m.R)
	permuteFloat(idx, m.LogX)
	permuteInt(idx, m.ThreadLabel)
	permuteInt(idx, m.DNLive)
	permuteTheta(idx, m.Theta)
}

func permuteFloat(idx []int, s []float64) {
	out := make([]float64, len(s))
	for i, j := range idx {
		out[i] = s[j]
	}
	copy(s, out)
}

func permuteInt(idx []int, s []int) {
	out := make([]int, len(s))
	for i, j := range idx {
		out[i] = s[j]
	}
	copy(s, out)
}

func permuteTheta(idx []int, s [][]float64) {
	out := make([][]float64, len(s))
	for i, j := range idx {
		out[i] = s[j]
	}
	copy(s, out)
}

// ToRun finalizes the matrix into an immutable Run, copying Theta rows into
// a *mat.Dense and reconstructing NLiveArray from DNLive and the recorded
// thread starts (NLiveArray[0] = count of NaN-start threads in
// threadMinMax).
func (m *Matrix) ToRun(threadMinMax [][2]float64, settings problem.Settings) (*Run, error) {
	initialLive := 0
	for _, mm := range threadMinMax {
		if math.IsNaN(mm[0]) {
			initialLive++
		}
	}
	nliveArray := ReconstructNLive(initialLive, m.DNLive)

	n := m.Len()
	dims := settings.DimsToSample
	theta := mat.NewDense(n, dims, nil)
	for i, row := range m.Theta {
		theta.SetRow(i, row)
	}

	return NewRun(m.LogL, m.R, m.LogX, m.ThreadLabel, theta, nliveArray, threadMinMax, settings)
}
