package lib

import "math"
import "strconv"

// HistogramInt64 statistical histogram. Sample values below `from` fall
// into the underflow bucket, values from `till` onwards fall into the
// overflow bucket, everything in between lands in a bucket of size
// `width`.
type HistogramInt64 struct {
	// stats
	n         int64
	minval    int64
	maxval    int64
	sum       int64
	sumsq     float64
	histogram []int64
	// setup
	init  bool
	from  int64
	till  int64
	width int64
}

// NewhistorgramInt64 return a new histogram object.
func NewhistorgramInt64(from, till, width int64) *HistogramInt64 {
	from = (from / width) * width
	till = (till / width) * width
	h := &HistogramInt64{from: from, till: till, width: width}
	h.histogram = make([]int64, 1+((till-from)/width)+1)
	return h
}

// Add a sample to this histogram.
func (h *HistogramInt64) Add(sample int64) {
	h.n++
	h.sum += sample
	f := float64(sample)
	h.sumsq += f * f
	if h.init == false || sample < h.minval {
		h.minval = sample
		h.init = true
	}
	if h.maxval < sample {
		h.maxval = sample
	}

	if sample < h.from {
		h.histogram[0]++
	} else if sample >= h.till {
		h.histogram[len(h.histogram)-1]++
	} else {
		h.histogram[((sample-h.from)/h.width)+1]++
	}
}

// Min return minimum value from sample.
func (h *HistogramInt64) Min() int64 {
	return h.minval
}

// Max return maximum value from sample.
func (h *HistogramInt64) Max() int64 {
	return h.maxval
}

// Samples return total number of samples in the set.
func (h *HistogramInt64) Samples() int64 {
	return h.n
}

// Sum return the sum of all sample values.
func (h *HistogramInt64) Sum() int64 {
	return h.sum
}

// Mean return the average value of all samples.
func (h *HistogramInt64) Mean() int64 {
	if h.n == 0 {
		return 0
	}
	return int64(float64(h.sum) / float64(h.n))
}

// Variance return the squared deviation of a random sample from
// its mean.
func (h *HistogramInt64) Variance() int64 {
	if h.n == 0 {
		return 0
	}
	nF, meanF := float64(h.n), float64(h.Mean())
	return int64((h.sumsq / nF) - (meanF * meanF))
}

// SD return by how much the samples differ from the mean value of
// sample set.
func (h *HistogramInt64) SD() int64 {
	if h.n == 0 {
		return 0
	}
	return int64(math.Sqrt(float64(h.Variance())))
}

// Percentile return the smallest sample value under which `frac`
// fraction of all samples fall, where 0 < frac < 1. Resolution is
// limited by the bucket width, samples in the overflow bucket
// resolve to the maximum sample value.
func (h *HistogramInt64) Percentile(frac float64) int64 {
	if h.n == 0 {
		return 0
	}
	// counts are integral, half-a-sample of slack absorbs the
	// rounding error in frac.
	threshold, acc := float64(h.n)*frac-0.5, float64(0)
	for j, count := range h.histogram {
		acc += float64(count)
		if acc >= threshold {
			switch j {
			case 0: // underflow bucket
				return h.minval
			case len(h.histogram) - 1: // overflow bucket
				return h.maxval
			}
			return h.from + (int64(j)-1)*h.width
		}
	}
	return h.maxval
}

// Clone copies the entire instance.
func (h *HistogramInt64) Clone() *HistogramInt64 {
	newh := *h
	newh.histogram = make([]int64, len(h.histogram))
	copy(newh.histogram, h.histogram)
	return &newh
}

// Fullstats return a map of all statistics including percentiles.
func (h *HistogramInt64) Fullstats() map[string]interface{} {
	percentiles := make(map[string]int64)
	for _, frac := range []float64{.8, .9, .95, .96, .97, .98, .99} {
		key := "p" + strconv.Itoa(int(math.Round(frac*100)))
		percentiles[key] = h.Percentile(frac)
	}
	return map[string]interface{}{
		"samples":     h.Samples(),
		"min":         h.Min(),
		"max":         h.Max(),
		"mean":        h.Mean(),
		"variance":    h.Variance(),
		"stddeviance": h.SD(),
		"percentiles": percentiles,
	}
}
