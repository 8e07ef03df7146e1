package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatID(t *testing.T) {
	assert.Equal(t, "s00001", FormatID(PrefixStudent, 1))
	assert.Equal(t, "c00042", FormatID(PrefixClass, 42))
	assert.Equal(t, "f99999", FormatID(PrefixPayment, 99999))
	// Past the padding width the id just grows.
	assert.Equal(t, "s100000", FormatID(PrefixStudent, 100000))
}

func TestParseIDSeq(t *testing.T) {
	seq, ok := ParseIDSeq("s00042", PrefixStudent)
	assert.True(t, ok)
	assert.Equal(t, int64(42), seq)

	// Foreign prefix and junk suffixes are rejected.
	_, ok = ParseIDSeq("c00042", PrefixStudent)
	assert.False(t, ok)
	_, ok = ParseIDSeq("sabc", PrefixStudent)
	assert.False(t, ok)
	_, ok = ParseIDSeq("s", PrefixStudent)
	assert.False(t, ok)
}

func TestMaxIDSeq(t *testing.T) {
	ids := []string{"s00001", "s00007", "s00003", "c00099", "imported-x"}

	assert.Equal(t, int64(7), MaxIDSeq(ids, PrefixStudent))
	assert.Equal(t, int64(99), MaxIDSeq(ids, PrefixClass))
	assert.Equal(t, int64(0), MaxIDSeq(ids, PrefixPayment))
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, seq := range []int64{1, 9, 10, 99999, 123456} {
		seqBack, ok := ParseIDSeq(FormatID(PrefixHoliday, seq), PrefixHoliday)
		assert.True(t, ok)
		assert.Equal(t, seq, seqBack)
	}
}
