// Package tally keeps a log-linear histogram of unsigned integer samples.
package tally

import "math/bits"

const ( // entriesBits of 6 keeps ~1.5% error.
	entriesBits = 6
	numBuckets  = 64 - entriesBits
	numEntries  = 1 << entriesBits // 64
)

// bucket is the type of a histogram bucket.
type bucket [numEntries]uint64

// lowerValue returns the smallest value that can be stored at the entry.
func lowerValue(b, e uint64) uint64 {
	return (1<<b-1)<<entriesBits + e<<b
}

// upperValue returns the largest value that can be stored at the entry (inclusive).
func upperValue(b, e uint64) uint64 {
	return (1<<b-1)<<entriesBits + e<<b + (1<<b - 1)
}

// middleValue returns the center of the values stored at the entry.
func middleValue(b, e uint64) float64 {
	return float64(lowerValue(b, e)) + float64(uint64(1)<<b-1)/2
}

// maxValue is the largest value the histogram can hold.
const maxValue = 1<<64 - 1 - numEntries

// bucketEntry returns the bucket and entry that should contain the value v.
func bucketEntry(v uint64) (b, e uint64) {
	uv := v + numEntries
	b = uint64(bits.Len64(uv)) - entriesBits - 1
	return b, uv>>b - numEntries
}

// Histogram keeps track of an exponentially increasing range of buckets so
// that there is a consistent relative error per bucket. It is not safe for
// concurrent use. The zero value is ready to use.
type Histogram struct {
	total   uint64
	dropped uint64
	buckets [numBuckets]*bucket
}

// Observe records the value in the histogram. Values larger than the
// histogram can represent are counted as dropped.
func (h *Histogram) Observe(v uint64) {
	if v > maxValue {
		h.dropped++
		return
	}

	b, e := bucketEntry(v)
	if h.buckets[b] == nil {
		h.buckets[b] = new(bucket)
	}
	h.buckets[b][e]++
	h.total++
}

// Total returns the number of observed values.
func (h *Histogram) Total() uint64 { return h.total }

// Dropped returns the number of values that were too large to observe.
func (h *Histogram) Dropped() uint64 { return h.dropped }

// Quantile returns an estimation of the qth quantile in [0, 1].
func (h *Histogram) Quantile(q float64) uint64 {
	target, acc := uint64(q*float64(h.total)+0.5), uint64(0)

	for b, bu := range h.buckets {
		if bu == nil {
			continue
		}
		for e, count := range bu {
			acc += count
			if acc >= target {
				return lowerValue(uint64(b), uint64(e))
			}
		}
	}

	return upperValue(numBuckets-1, numEntries-1)
}

// Average returns an estimation of the average.
func (h *Histogram) Average() float64 {
	if h.total == 0 {
		return 0
	}

	acc := 0.0
	h.walk(func(mid float64, count uint64) { acc += mid * float64(count) })
	return acc / float64(h.total)
}

// Variance returns an estimation of the average and population variance.
func (h *Histogram) Variance() (float64, float64) {
	if h.total == 0 {
		return 0, 0
	}

	avg, acc := h.Average(), 0.0
	h.walk(func(mid float64, count uint64) {
		dev := mid - avg
		acc += dev * dev * float64(count)
	})
	return avg, acc / float64(h.total)
}

// walk calls fn with the middle value and count of every non-empty entry.
func (h *Histogram) walk(fn func(mid float64, count uint64)) {
	for b, bu := range h.buckets {
		if bu == nil {
			continue
		}
		for e, count := range bu {
			if count > 0 {
				fn(middleValue(uint64(b), uint64(e)), count)
			}
		}
	}
}
