package domain

import "time"

// Target names one of the two destination piles of a split.
type Target string

const (
	TargetA Target = "A"
	TargetB Target = "B"
)

// targetFor sends a streak to B when its upper distance from the median does
// not exceed its lower distance. Ties go to B; the sorting outcome depends on
// that exact rule, so it must not be tightened to a strict comparison.
func targetFor(s Streak, median float64) Target {
	if float64(s.end())-median <= median-float64(s.Min) {
		return TargetB
	}
	return TargetA
}

// Transfer is one instructed movement of a contiguous card group, possibly
// spanning several streaks bound for the same pile, from the hand to a
// destination pile.
type Transfer struct {
	Cards  int
	Target Target
}

// Step is the outcome of one confirmation event.
type Step struct {
	// Sorted holds the sizes of piles reported fully sorted while dequeuing,
	// in the order they were pulled.
	Sorted []int
	// Queue is the queued pile size snapshot taken when a new hand was
	// pulled, hand first, then the rest of the stack top-down. Nil when the
	// step stayed on the same hand.
	Queue []int
	// Transfer is the single instruction emitted, nil on a terminal step.
	Transfer *Transfer
	// Done reports that both the hand and the work list are exhausted.
	Done bool
}

// Session is the driver for one card-sorting run: the hand currently being
// split, its two accumulating destination piles, and the stack of piles still
// waiting for a split. It advances exactly one instruction per external
// confirmation event and holds all state between events; nothing blocks
// internally.
type Session struct {
	hand   StreakArray
	median float64
	destA  StreakArray
	destB  StreakArray
	// pending is a stack; the entry at the end is split next. Children are
	// pushed B then A so pile A and its descendants drain first.
	pending []StreakArray
	sorted  []int
	total   int
}

// NewSession starts a run over the given deck.
func NewSession(deck StreakArray) *Session {
	s := &Session{total: deck.Size()}
	if deck.Len() > 0 {
		s.pending = append(s.pending, deck)
	}
	return s
}

// Advance performs one step: it pulls the next splittable pile if the hand is
// drained (reporting any already-sorted piles it discards on the way), then
// emits at most one transfer instruction. A Done step means there is nothing
// left to split.
func (s *Session) Advance() Step {
	step := Step{}

	if s.hand.Len() == 0 && !s.takeNextHand(&step) {
		step.Done = true
		return step
	}

	target := targetFor(s.hand.Get(0), s.median)
	end := 1
	for end < s.hand.Len() && targetFor(s.hand.Get(end), s.median) == target {
		end++
	}

	prefix := s.hand.Slice(0, end)
	s.hand = s.hand.Slice(end, s.hand.Len())

	// Appending keeps the group adjacent to the cards previously sent to the
	// same pile, so boundary merges across steps keep working.
	if target == TargetA {
		s.destA = Concat(s.destA, prefix)
	} else {
		s.destB = Concat(s.destB, prefix)
	}
	step.Transfer = &Transfer{Cards: prefix.Size(), Target: target}

	if s.hand.Len() == 0 {
		s.pending = append(s.pending, s.destB, s.destA)
		s.destA, s.destB = StreakArray{}, StreakArray{}
	}

	return step
}

func (s *Session) takeNextHand(step *Step) bool {
	for len(s.pending) > 0 {
		pile := s.pending[len(s.pending)-1]
		s.pending = s.pending[:len(s.pending)-1]

		if pile.Len() == 1 {
			step.Sorted = append(step.Sorted, pile.Size())
			s.sorted = append(s.sorted, pile.Size())
			continue
		}

		queue := make([]int, 0, len(s.pending)+1)
		queue = append(queue, pile.Size())
		for i := len(s.pending) - 1; i >= 0; i-- {
			queue = append(queue, s.pending[i].Size())
		}
		step.Queue = queue

		s.hand = pile
		s.median = pile.Median()
		s.destA, s.destB = StreakArray{}, StreakArray{}
		return true
	}
	return false
}

// Done reports whether the work list and hand are both exhausted.
func (s *Session) Done() bool {
	return s.hand.Len() == 0 && len(s.pending) == 0
}

// Total is the card count of the initial deck.
func (s *Session) Total() int { return s.total }

// SortedSizes lists the sizes of piles already reported fully sorted.
func (s *Session) SortedSizes() []int {
	out := make([]int, len(s.sorted))
	copy(out, s.sorted)
	return out
}

// SessionSnapshot is the persistable by-value view of a Session. The median
// is carried explicitly: it belongs to the pile the hand was taken from, and
// cannot be recomputed once the hand has partially drained.
type SessionSnapshot struct {
	Hand    []Streak
	Median  float64
	DestA   []Streak
	DestB   []Streak
	Pending [][]Streak
	Sorted  []int
	Total   int
	SavedAt time.Time
}

// Snapshot captures the session state for persistence.
func (s *Session) Snapshot() SessionSnapshot {
	pending := make([][]Streak, len(s.pending))
	for i, pile := range s.pending {
		pending[i] = pile.Streaks()
	}

	return SessionSnapshot{
		Hand:    s.hand.Streaks(),
		Median:  s.median,
		DestA:   s.destA.Streaks(),
		DestB:   s.destB.Streaks(),
		Pending: pending,
		Sorted:  s.SortedSizes(),
		Total:   s.total,
	}
}

// RestoreSession rebuilds a session from a snapshot. The restored session
// continues exactly where the captured one left off.
func RestoreSession(snapshot SessionSnapshot) *Session {
	pending := make([]StreakArray, len(snapshot.Pending))
	for i, pile := range snapshot.Pending {
		pending[i] = NewStreakArray(pile)
	}

	sorted := make([]int, len(snapshot.Sorted))
	copy(sorted, snapshot.Sorted)

	return &Session{
		hand:    NewStreakArray(snapshot.Hand),
		median:  snapshot.Median,
		destA:   NewStreakArray(snapshot.DestA),
		destB:   NewStreakArray(snapshot.DestB),
		pending: pending,
		sorted:  sorted,
		total:   snapshot.Total,
	}
}
