package collection

import (
	"sort"
	"strings"
)

// TierStats summarizes the actual word counts of one tier's paragraphs.
type TierStats struct {
	Tier        Tier    `json:"tier"`
	TargetWords int     `json:"target_words"`
	Paragraphs  int     `json:"paragraphs"`
	MinWords    int     `json:"min_words"`
	MaxWords    int     `json:"max_words"`
	MeanWords   float64 `json:"mean_words"`
	P50Words    float64 `json:"p50_words"`
	P95Words    float64 `json:"p95_words"`
}

// WordCount counts whitespace-separated words.
func WordCount(paragraph string) int {
	return len(strings.Fields(paragraph))
}

// Stats returns one entry per tier, in tier order.
func (c *Collection) Stats() []TierStats {
	out := make([]TierStats, 0, len(Tiers))
	for _, t := range Tiers {
		out = append(out, tierStats(t, c.paragraphs[t]))
	}
	return out
}

func tierStats(t Tier, paragraphs []string) TierStats {
	st := TierStats{Tier: t, TargetWords: t.Target(), Paragraphs: len(paragraphs)}
	if len(paragraphs) == 0 {
		return st
	}

	counts := make([]int, 0, len(paragraphs))
	sum := 0
	for _, p := range paragraphs {
		n := WordCount(p)
		counts = append(counts, n)
		sum += n
	}
	sort.Ints(counts)

	st.MinWords = counts[0]
	st.MaxWords = counts[len(counts)-1]
	st.MeanWords = float64(sum) / float64(len(counts))
	st.P50Words = percentile(counts, 50)
	st.P95Words = percentile(counts, 95)
	return st
}

// percentile interpolates linearly between the two closest ranks.
func percentile(sortedValues []int, pct float64) float64 {
	if len(sortedValues) == 0 {
		return 0
	}
	if pct <= 0 {
		return float64(sortedValues[0])
	}
	if pct >= 100 {
		return float64(sortedValues[len(sortedValues)-1])
	}

	index := (float64(len(sortedValues)-1) * pct) / 100.0
	lower := int(index)
	upper := lower + 1
	if upper >= len(sortedValues) {
		return float64(sortedValues[lower])
	}
	weight := index - float64(lower)
	lo := float64(sortedValues[lower])
	hi := float64(sortedValues[upper])
	return lo + ((hi - lo) * weight)
}
