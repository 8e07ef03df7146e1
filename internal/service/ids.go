package service

import (
	"fmt"
	"strconv"
	"strings"
)

// Id prefixes, one letter per entity type. Payments keep the legacy
// "f" (fee) prefix from the old books.
const (
	PrefixStudent      = "s"
	PrefixClass        = "c"
	PrefixExtraSession = "e"
	PrefixHoliday      = "h"
	PrefixPromotion    = "p"
	PrefixPayment      = "f"
)

// idSeqWidth is the zero-padding width. Sequences past 99999 simply
// grow wider; padding only matters for the human-readable sort.
const idSeqWidth = 5

// FormatID renders "prefix + zero-padded sequence", e.g. s00042.
func FormatID(prefix string, seq int64) string {
	return fmt.Sprintf("%s%0*d", prefix, idSeqWidth, seq)
}

// ParseIDSeq extracts the numeric suffix of an id with the given
// prefix. Returns false for a foreign prefix or a non-numeric suffix.
func ParseIDSeq(id, prefix string) (int64, bool) {
	if !strings.HasPrefix(id, prefix) {
		return 0, false
	}
	seq, err := strconv.ParseInt(id[len(prefix):], 10, 64)
	if err != nil || seq < 0 {
		return 0, false
	}
	return seq, true
}

// MaxIDSeq scans existing ids for the highest sequence number under a
// prefix. Used to seed the sequence counters from imported data.
func MaxIDSeq(ids []string, prefix string) int64 {
	var max int64
	for _, id := range ids {
		if seq, ok := ParseIDSeq(id, prefix); ok && seq > max {
			max = seq
		}
	}
	return max
}
