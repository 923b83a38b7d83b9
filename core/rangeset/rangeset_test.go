package rangeset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAlignment(t *testing.T) {
	cases := []struct {
		length int32
		want   int32
	}{
		{1, 1},
		{5, 1},
		{9, 1},
		{10, 10},
		{37, 10},
		{99, 10},
		{100, 100},
		{240, 100},
		{999, 100},
		{1000, 1000},
		{0, 1},
		{-3, 1},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Alignment(c.length), "length %d", c.length)
	}
}

func TestRoundUp(t *testing.T) {
	assert.Equal(t, int32(10), RoundUp(1, 10))
	assert.Equal(t, int32(10), RoundUp(10, 10))
	assert.Equal(t, int32(20), RoundUp(11, 10))
	assert.Equal(t, int32(7), RoundUp(7, 1))
	assert.Equal(t, int32(200), RoundUp(101, 100))
	assert.Equal(t, int32(0), RoundUp(0, 10))
}

func TestMergeCoalescesConsecutiveIDs(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	ids := map[int32]time.Time{
		100: base,
		101: base,
		102: base,
		110: base,
		111: base,
		200: base,
	}

	runs := Merge(ids)

	assert.Len(t, runs, 3)
	assert.Equal(t, Run{Start: 100, Length: 3, Time: base}, runs[0])
	assert.Equal(t, Run{Start: 110, Length: 2, Time: base}, runs[1])
	assert.Equal(t, Run{Start: 200, Length: 1, Time: base}, runs[2])
}

func TestMergeKeepsNewestTimestampPerRun(t *testing.T) {
	old := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := old.Add(48 * time.Hour)

	ids := map[int32]time.Time{
		50: old,
		51: newer,
		52: old,
		60: old,
	}

	runs := Merge(ids)

	assert.Len(t, runs, 2)
	// The merged run is only as young as its newest constituent ID.
	assert.Equal(t, newer, runs[0].Time)
	assert.Equal(t, old, runs[1].Time)
}

func TestMergeEmpty(t *testing.T) {
	assert.Nil(t, Merge(nil))
	assert.Nil(t, Merge(map[int32]time.Time{}))
}

func TestMergeAt(t *testing.T) {
	at := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	runs := MergeAt([]int32{7, 5, 6, 9}, at)

	assert.Len(t, runs, 2)
	assert.Equal(t, Run{Start: 5, Length: 3, Time: at}, runs[0])
	assert.Equal(t, Run{Start: 9, Length: 1, Time: at}, runs[1])
}

func TestRunContains(t *testing.T) {
	r := Run{Start: 10, Length: 5}

	assert.True(t, r.Contains(10))
	assert.True(t, r.Contains(14))
	assert.False(t, r.Contains(15))
	assert.False(t, r.Contains(9))
	assert.Equal(t, int32(15), r.End())
}
