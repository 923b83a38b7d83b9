package rangeset

import (
	"sort"
	"time"
)

// Run is a maximal span of consecutive content IDs [Start, Start+Length).
// Time carries the newest timestamp of any ID inside the run.
type Run struct {
	Start  int32
	Length int32
	Time   time.Time
}

// End returns the first ID past the run.
func (r Run) End() int32 {
	return r.Start + r.Length
}

// Contains reports whether id falls inside the run.
func (r Run) Contains(id int32) bool {
	return id >= r.Start && id < r.End()
}

// Alignment returns the power-of-ten boundary a range of the given length
// must start on: 10^floor(log10(length)), clamped to a minimum of 1.
func Alignment(length int32) int32 {
	if length < 1 {
		return 1
	}
	align := int32(1)
	for length >= 10 {
		length /= 10
		align *= 10
	}
	return align
}

// RoundUp returns the smallest multiple of align that is >= v.
// align must be positive.
func RoundUp(v, align int32) int32 {
	if v <= 0 {
		return 0
	}
	rem := v % align
	if rem == 0 {
		return v
	}
	return v + align - rem
}

// Merge coalesces the given IDs into minimal contiguous runs. Each run keeps
// the maximum timestamp of its constituent IDs: a run is only as young as its
// newest ID, so a merge never makes a reservation look older than it is.
// The returned runs are sorted by Start.
func Merge(ids map[int32]time.Time) []Run {
	if len(ids) == 0 {
		return nil
	}

	sorted := make([]int32, 0, len(ids))
	for id := range ids {
		sorted = append(sorted, id)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var runs []Run
	for _, id := range sorted {
		t := ids[id]
		if n := len(runs); n > 0 && runs[n-1].End() == id {
			runs[n-1].Length++
			if t.After(runs[n-1].Time) {
				runs[n-1].Time = t
			}
			continue
		}
		runs = append(runs, Run{Start: id, Length: 1, Time: t})
	}
	return runs
}

// MergeAt coalesces a plain sorted-or-unsorted ID set into runs, stamping
// every run with the same timestamp. Used when granting brand-new IDs.
func MergeAt(ids []int32, at time.Time) []Run {
	m := make(map[int32]time.Time, len(ids))
	for _, id := range ids {
		m[id] = at
	}
	return Merge(m)
}
