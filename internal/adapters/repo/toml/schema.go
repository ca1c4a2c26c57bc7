package toml

import (
	"fmt"
	"time"

	"github.com/bnema/cardsort-cli/internal/domain"
)

const schemaVersion = 1

type fileSchema struct {
	Version int            `toml:"version"`
	Session *sessionSchema `toml:"session"`
}

type sessionSchema struct {
	SavedAt string         `toml:"saved_at"`
	Total   int            `toml:"total"`
	Median  float64        `toml:"median"`
	Sorted  []int          `toml:"sorted"`
	Hand    []streakSchema `toml:"hand"`
	DestA   []streakSchema `toml:"dest_a"`
	DestB   []streakSchema `toml:"dest_b"`
	Pending []pileSchema   `toml:"pending"`
}

type pileSchema struct {
	Streaks []streakSchema `toml:"streaks"`
}

type streakSchema struct {
	Min  int `toml:"min"`
	Size int `toml:"size"`
}

func (f fileSchema) validateVersion() error {
	if f.Version != schemaVersion {
		return fmt.Errorf("unsupported session file version %d", f.Version)
	}
	return nil
}

func toSchema(snapshot domain.SessionSnapshot) fileSchema {
	pending := make([]pileSchema, 0, len(snapshot.Pending))
	for _, pile := range snapshot.Pending {
		pending = append(pending, pileSchema{Streaks: toStreakSchemas(pile)})
	}

	return fileSchema{
		Version: schemaVersion,
		Session: &sessionSchema{
			SavedAt: formatTime(snapshot.SavedAt),
			Total:   snapshot.Total,
			Median:  snapshot.Median,
			Sorted:  snapshot.Sorted,
			Hand:    toStreakSchemas(snapshot.Hand),
			DestA:   toStreakSchemas(snapshot.DestA),
			DestB:   toStreakSchemas(snapshot.DestB),
			Pending: pending,
		},
	}
}

func fromSchema(session sessionSchema) domain.SessionSnapshot {
	pending := make([][]domain.Streak, 0, len(session.Pending))
	for _, pile := range session.Pending {
		pending = append(pending, fromStreakSchemas(pile.Streaks))
	}

	return domain.SessionSnapshot{
		SavedAt: parseTime(session.SavedAt),
		Total:   session.Total,
		Median:  session.Median,
		Sorted:  session.Sorted,
		Hand:    fromStreakSchemas(session.Hand),
		DestA:   fromStreakSchemas(session.DestA),
		DestB:   fromStreakSchemas(session.DestB),
		Pending: pending,
	}
}

func toStreakSchemas(streaks []domain.Streak) []streakSchema {
	out := make([]streakSchema, 0, len(streaks))
	for _, s := range streaks {
		out = append(out, streakSchema{Min: s.Min, Size: s.Size})
	}
	return out
}

func fromStreakSchemas(streaks []streakSchema) []domain.Streak {
	out := make([]domain.Streak, 0, len(streaks))
	for _, s := range streaks {
		out = append(out, domain.Streak{Min: s.Min, Size: s.Size})
	}
	return out
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}
