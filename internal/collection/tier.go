package collection

import (
	"errors"
	"fmt"
)

// ErrUnknownTier is returned when a string names none of the fixed tiers.
var ErrUnknownTier = errors.New("collection: unknown tier")

// Tier is one of the fixed word-count buckets a section can belong to.
type Tier string

const (
	Tier20   Tier = "20_words"
	Tier50   Tier = "50_words"
	Tier100  Tier = "100_words"
	Tier200  Tier = "200_words"
	Tier500  Tier = "500_words"
	Tier1000 Tier = "1000_words"
)

// Tiers lists every tier in output order.
var Tiers = []Tier{Tier20, Tier50, Tier100, Tier200, Tier500, Tier1000}

type tierInfo struct {
	tier   Tier
	header string
	target int
}

// Checked in this order; no header is a prefix of another.
var tierTable = []tierInfo{
	{Tier20, "20 words:", 20},
	{Tier50, "50 words:", 50},
	{Tier100, "100 words:", 100},
	{Tier200, "200 words:", 200},
	{Tier500, "500 words:", 500},
	{Tier1000, "1000 words:", 1000},
}

func (t Tier) info() (tierInfo, bool) {
	for _, ti := range tierTable {
		if ti.tier == t {
			return ti, true
		}
	}
	return tierInfo{}, false
}

// Header returns the section header line that introduces t, e.g. "50 words:".
func (t Tier) Header() string {
	ti, _ := t.info()
	return ti.header
}

// Target returns the nominal word count of t. It is 0 for an unknown tier.
func (t Tier) Target() int {
	ti, _ := t.info()
	return ti.target
}

// Valid reports whether t is one of the fixed tiers.
func (t Tier) Valid() bool {
	_, ok := t.info()
	return ok
}

// ParseTier accepts either a tier label ("50_words") or a section header
// ("50 words:").
func ParseTier(s string) (Tier, error) {
	for _, ti := range tierTable {
		if s == string(ti.tier) || s == ti.header {
			return ti.tier, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTier, s)
}
