//    CrisisCompass
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"crisiscompass/internal/str"
	"crisiscompass/internal/vv"
)

//
// FILTERING
//

// the filters are pure reads; an empty result is a valid result, never an error

// FilterByTopic - the events whose probability mass on the given topic exceeds the threshold,
// original order preserved; dists must be aligned with events
func FilterByTopic(events []str.Event, dists [][]float64, topic int) []str.Event {
	out := make([]str.Event, 0)
	for i := range events {
		if i >= len(dists) || topic < 0 || topic >= len(dists[i]) {
			continue
		}
		if dists[i][topic] > vv.TOPICTHRESHOLD {
			out = append(out, events[i])
		}
	}
	return out
}

// FilterByCountry - exact-match country filter, original order preserved
func FilterByCountry(events []str.Event, country string) []str.Event {
	out := make([]str.Event, 0)
	for i := range events {
		if events[i].Country == country {
			out = append(out, events[i])
		}
	}
	return out
}
