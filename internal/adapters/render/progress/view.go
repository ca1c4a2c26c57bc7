package progress

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/cardsort-cli/internal/application"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now time.Time
}

func renderView(overview application.Overview, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Card Sorting Session"),
		s.header.Render(fmt.Sprintf("cards: %d", overview.TotalCards)),
	}

	if overview.TotalCards == 0 {
		lines = append(lines, s.empty.Render("No cards in this session."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, progressLine(overview, s))

	if overview.Done {
		lines = append(lines, s.done.Render("All piles sorted."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	if overview.HandCards > 0 {
		lines = append(lines, s.detail.Render(fmt.Sprintf(
			"hand: %d cards (A: %d, B: %d)",
			overview.HandCards, overview.DestACards, overview.DestBCards,
		)))
	}

	lines = append(lines, queuedLine(overview, s))

	if !overview.SavedAt.IsZero() {
		lines = append(lines, s.meta.Render("saved "+formatSavedRelative(overview.SavedAt, opts.Now)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func progressLine(overview application.Overview, s styles) string {
	percent := 100 * float64(overview.SortedCards) / float64(overview.TotalCards)
	bar := renderProgressBar(percent, 24, s)
	meta := s.detail.Render(fmt.Sprintf("%d/%d sorted", overview.SortedCards, overview.TotalCards))

	return lipgloss.JoinHorizontal(lipgloss.Top, s.pile.Render("progress:"), " ", bar, " ", meta)
}

func queuedLine(overview application.Overview, s styles) string {
	if len(overview.QueuedSizes) == 0 {
		return s.empty.Render("queued: none")
	}

	sizes := make([]string, len(overview.QueuedSizes))
	for i, size := range overview.QueuedSizes {
		sizes[i] = strconv.Itoa(size)
	}

	return s.detail.Render(fmt.Sprintf("queued: (%s)", strings.Join(sizes, " ")))
}

func renderProgressBar(percent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(percent) / 100.0))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	empty := width - filled
	fillSegment := s.barFill.Render(strings.Repeat("=", filled))
	emptySegment := s.barEmpty.Render(strings.Repeat("-", empty))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		fillSegment,
		emptySegment,
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func formatSavedRelative(savedAt, now time.Time) string {
	if now.IsZero() || savedAt.After(now) {
		return savedAt.Format(time.RFC3339)
	}

	elapsed := now.Sub(savedAt)
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm ago", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(elapsed.Hours()))
	default:
		return savedAt.Format("15:04 on 02 Jan")
	}
}
