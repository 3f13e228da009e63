// Package experiment implements functionality for running agents on
// environments and aggregating the results
package experiment

import (
	"github.com/samuelfneumann/rlagents/experiment/trackers"
	ts "github.com/samuelfneumann/rlagents/timestep"
)

// runningAverage returns the running-average-of-averages at index i
// given the sum of all previous averages, and adds the new average to
// that sum. This is not a cumulative mean: each entry averages the new
// value together with all previous averages.
func runningAverage(sum *float64, x float64, i int) float64 {
	avg := (*sum + x) / float64(i+1)
	*sum += avg
	return avg
}

// track sends a TimeStep to each Tracker
func track(t []trackers.Tracker, step ts.TimeStep) {
	for _, tracker := range t {
		tracker.Track(step)
	}
}

// Save saves the data cached by each Tracker to disk
func Save(t ...trackers.Tracker) {
	for _, tracker := range t {
		tracker.Save()
	}
}
