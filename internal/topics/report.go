//    CrisisCompass
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"sort"
)

//
// MODEL REPORTING
//

// DominantCounts - how many documents have topic N as their dominant topic
func DominantCounts(dists [][]float64, k int) []int {
	counter := make([]int, k)
	for doc := 0; doc < len(dists); doc++ {
		max := float64(0)
		winner := 0
		for topic := 0; topic < len(dists[doc]) && topic < k; topic++ {
			// any given document will look like
			// Topic #0=0.006009, Topic #1=0.006915, Topic #2=0.000688, Topic #3=0.449514, Topic #4=0.536875
			if dists[doc][topic] > max {
				winner = topic
				max = dists[doc][topic]
			}
		}
		counter[winner] += 1
	}
	return counter
}

// ScaledWeights - total accumulated weight of each topic scaled against the heaviest topic
func ScaledWeights(dists [][]float64, k int) []float64 {
	counter := make([]float64, k)
	for doc := 0; doc < len(dists); doc++ {
		for topic := 0; topic < len(dists[doc]) && topic < k; topic++ {
			counter[topic] += dists[doc][topic]
		}
	}

	high := float64(0)
	for i := 0; i < k; i++ {
		if counter[i] > high {
			high = counter[i]
		}
	}

	scaled := make([]float64, k)
	if high == 0 {
		return scaled
	}
	for i := 0; i < k; i++ {
		scaled[i] = counter[i] / high
	}
	return scaled
}

type termsorter struct {
	W string
	V float64
}

// TopTerms - the n highest-weighted vocabulary terms for each topic of the fitted model
func (m *Modeler) TopTerms(n int) [][]string {
	tow := m.Components()
	tr, tc := tow.Dims()

	vocab := make([]string, len(m.Vectoriser.Vocabulary))
	for k, v := range m.Vectoriser.Vocabulary {
		vocab[v] = k
	}

	top := n
	if top > tc {
		top = tc
	}

	tops := make([][]string, tr)
	for topic := 0; topic < tr; topic++ {
		tss := make([]termsorter, tc)
		for word := 0; word < tc; word++ {
			tss[word] = termsorter{
				W: vocab[word],
				V: tow.At(topic, word),
			}
		}
		sort.Slice(tss, func(i, j int) bool {
			return tss[i].V > tss[j].V
		})

		ww := make([]string, top)
		for i := 0; i < top; i++ {
			ww[i] = tss[i].W
		}
		tops[topic] = ww
	}
	return tops
}
