package domain

import (
	"fmt"
	"sort"
)

// InterestRateMap holds annual rates (decimals) keyed by duration in
// months, e.g. a treasury yield curve snapshot.
type InterestRateMap struct {
	Rates map[int]float64
}

// GetRate returns the rate for the given duration. Durations between
// two known tenors are linearly interpolated; durations outside the
// curve clamp to the nearest endpoint.
func (im InterestRateMap) GetRate(months int) (float64, error) {
	if v, ok := im.Rates[months]; ok {
		return v, nil
	}

	if len(im.Rates) == 0 {
		return 0, fmt.Errorf("no rates in given map")
	}

	keys := make([]int, 0, len(im.Rates))
	for k := range im.Rates {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	if months < keys[0] {
		return im.Rates[keys[0]], nil
	}
	if months > keys[len(keys)-1] {
		return im.Rates[keys[len(keys)-1]], nil
	}

	for i := 0; i < len(keys)-1; i++ {
		lo := keys[i]
		hi := keys[i+1]
		if months > lo && months < hi {
			weight := float64(months-lo) / float64(hi-lo)
			return im.Rates[lo] + weight*(im.Rates[hi]-im.Rates[lo]), nil
		}
	}

	return 0, fmt.Errorf("unable to compute rate for %d months", months)
}
