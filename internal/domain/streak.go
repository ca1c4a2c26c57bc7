package domain

// Streak is a maximal run of consecutive card values, stored as the lowest
// value plus the run length. It stands for the integer set [Min, Min+Size).
type Streak struct {
	Min  int
	Size int
}

func (s Streak) end() int { return s.Min + s.Size }

// StreakArray is an immutable run-length view of one physical pile. Streaks
// appear in the order their cards occur in the pile, which is not necessarily
// sorted by value. No two adjacent entries are ever mergeable: construction
// and concatenation collapse touching runs before appending, so the stored
// entry count is always minimal for the given order.
type StreakArray struct {
	streaks []Streak
}

// FromValues run-length encodes values in the given order: a value extends
// the current streak when it continues the run, otherwise it opens a new one.
func FromValues(values []int) StreakArray {
	if len(values) == 0 {
		return StreakArray{}
	}

	streaks := make([]Streak, 0, len(values))
	current := Streak{Min: values[0], Size: 1}
	for _, value := range values[1:] {
		if value == current.end() {
			current.Size++
			continue
		}
		streaks = append(streaks, current)
		current = Streak{Min: value, Size: 1}
	}
	streaks = append(streaks, current)

	return StreakArray{streaks: streaks}
}

// NewStreakArray builds an array from raw entries, collapsing any mergeable
// boundaries so the compression invariant holds regardless of the input.
func NewStreakArray(streaks []Streak) StreakArray {
	result := StreakArray{}
	for _, s := range streaks {
		result = result.join(StreakArray{streaks: []Streak{s}})
	}
	return result
}

// Concat folds arrays left to right. Whenever the left operand's last streak
// runs straight into the right operand's first, the boundary pair merges into
// one streak; an empty operand is a no-op. The result is a fresh owned value.
func Concat(arrays ...StreakArray) StreakArray {
	result := StreakArray{}
	for _, a := range arrays {
		result = result.join(a)
	}
	return result
}

func (a StreakArray) join(b StreakArray) StreakArray {
	if b.Len() == 0 {
		return a
	}
	if a.Len() == 0 {
		return b
	}

	streaks := make([]Streak, 0, a.Len()+b.Len())
	streaks = append(streaks, a.streaks...)

	rest := b.streaks
	if streaks[len(streaks)-1].end() == rest[0].Min {
		streaks[len(streaks)-1].Size += rest[0].Size
		rest = rest[1:]
	}
	streaks = append(streaks, rest...)

	return StreakArray{streaks: streaks}
}

// Slice returns the raw entry subsequence in [begin, end). It never splits a
// streak.
func (a StreakArray) Slice(begin, end int) StreakArray {
	return StreakArray{streaks: a.streaks[begin:end:end]}
}

// Get is raw indexed access into the entry sequence.
func (a StreakArray) Get(i int) Streak { return a.streaks[i] }

// Len is the number of stored entries. A pile is fully sorted exactly when
// Len returns 1.
func (a StreakArray) Len() int { return len(a.streaks) }

// Min is the smallest card value in the pile. Undefined on an empty array;
// the partition session only queries piles it knows to be non-empty.
func (a StreakArray) Min() int {
	lowest := a.streaks[0].Min
	for _, s := range a.streaks[1:] {
		if s.Min < lowest {
			lowest = s.Min
		}
	}
	return lowest
}

// Size is the total card count across all streaks.
func (a StreakArray) Size() int {
	total := 0
	for _, s := range a.streaks {
		total += s.Size
	}
	return total
}

// Median is Min + Size/2 as a rational value. It is only ever compared
// against, never displayed.
func (a StreakArray) Median() float64 {
	return float64(a.Min()) + float64(a.Size())/2
}

// Streaks returns a copy of the stored entries.
func (a StreakArray) Streaks() []Streak {
	out := make([]Streak, len(a.streaks))
	copy(out, a.streaks)
	return out
}

// Flatten expands every streak back into its card values in pile order.
func (a StreakArray) Flatten() []int {
	values := make([]int, 0, a.Size())
	for _, s := range a.streaks {
		for v := s.Min; v < s.end(); v++ {
			values = append(values, v)
		}
	}
	return values
}
