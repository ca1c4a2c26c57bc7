package application

import (
	"time"

	"github.com/bnema/cardsort-cli/internal/domain"
)

// Overview is the read-model of a persisted session.
type Overview struct {
	TotalCards  int
	SortedCards int
	SortedPiles []int
	HandCards   int
	DestACards  int
	DestBCards  int
	QueuedSizes []int
	Done        bool
	SavedAt     time.Time
}

func overviewFromSnapshot(snapshot domain.SessionSnapshot) Overview {
	overview := Overview{
		TotalCards:  snapshot.Total,
		SortedPiles: snapshot.Sorted,
		HandCards:   streakTotal(snapshot.Hand),
		DestACards:  streakTotal(snapshot.DestA),
		DestBCards:  streakTotal(snapshot.DestB),
		SavedAt:     snapshot.SavedAt,
	}

	for _, size := range snapshot.Sorted {
		overview.SortedCards += size
	}

	// Queue snapshot mirrors the split order: the pile at the top of the
	// pending stack is listed first.
	for i := len(snapshot.Pending) - 1; i >= 0; i-- {
		overview.QueuedSizes = append(overview.QueuedSizes, streakTotal(snapshot.Pending[i]))
	}

	overview.Done = overview.HandCards == 0 && len(overview.QueuedSizes) == 0

	return overview
}

func streakTotal(streaks []domain.Streak) int {
	total := 0
	for _, s := range streaks {
		total += s.Size
	}
	return total
}
