package estimators

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// rawCDF sorts values ascending alongside their weights and returns the
// sorted values with a weighted CDF, offset by half the first weight so the
// curve is centred on sample mass rather than left edges. Both
// credible-interval estimators share it. Only the offset CDF is returned;
// the uncorrected cumulative sum is not.
func rawCDF(values, w []float64) (sortedValues, cdf []float64) {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return values[idx[a]] < values[idx[b]]
	})

	sortedValues = make([]float64, len(values))
	sortedW := make([]float64, len(values))
	for i, j := range idx {
		sortedValues[i] = values[j]
		sortedW[i] = w[j]
	}

	cumsum := make([]float64, len(sortedW))
	floats.CumSum(cumsum, sortedW)
	total := floats.Sum(sortedW)

	cdf = make([]float64, len(cumsum))
	for i, c := range cumsum {
		cdf[i] = (c - sortedW[0]/2) / total
	}
	return sortedValues, cdf
}

// interpolateAtP linearly interpolates sortedValues at cdf == p, clamping
// to the endpoints outside [cdf[0], cdf[len-1]].
func interpolateAtP(sortedValues, cdf []float64, p float64) float64 {
	n := len(sortedValues)
	if p <= cdf[0] {
		return sortedValues[0]
	}
	if p >= cdf[n-1] {
		return sortedValues[n-1]
	}
	for i := 1; i < n; i++ {
		if cdf[i] >= p {
			frac := (p - cdf[i-1]) / (cdf[i] - cdf[i-1])
			return sortedValues[i-1] + frac*(sortedValues[i]-sortedValues[i-1])
		}
	}
	return sortedValues[n-1]
}
