package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/kiosk/internal/catalog"
	"github.com/mmcdole/kiosk/internal/domain"
	"github.com/mmcdole/kiosk/internal/search"
	"golang.org/x/term"
)

const defaultWidth = 100

// terminalWidth returns the width of w when it is a terminal
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// truncate shortens s to at most width cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// badges returns the user-state and derived markers of an item
func badges(item domain.Item) string {
	var parts []string
	switch v := item.(type) {
	case domain.Movie:
		if v.UserRating != nil {
			parts = append(parts, AccentStyle.Render(StarChar+strconv.Itoa(*v.UserRating)))
		}
		if v.Watchlist {
			parts = append(parts, WatchlistBadge)
		}
		if v.Watched {
			parts = append(parts, WatchedBadge)
		}
	case domain.Product:
		if v.Favorite {
			parts = append(parts, FavoriteBadge)
		}
		if v.OnSale() {
			parts = append(parts, SaleStyle.Render(fmt.Sprintf("-%d%%", v.DiscountPercent())))
		}
		if !v.InStock() {
			parts = append(parts, OutOfStock)
		}
	}
	return strings.Join(parts, " ")
}

// renderItems writes one line per item: id, title, description and badges
func renderItems(w io.Writer, items []domain.Item, width int) {
	idWidth := 0
	for _, item := range items {
		idWidth = max(idWidth, len(item.GetID()))
	}

	for _, item := range items {
		id := DimStyle.Render(fmt.Sprintf("%-*s", idWidth, item.GetID()))
		desc := item.GetDescription()
		marks := badges(item)

		// id, two separators, description and badges share the line with the title
		room := width - idWidth - 2 - lipgloss.Width(desc) - 3 - lipgloss.Width(marks) - 1
		title := TitleStyle.Render(truncate(item.GetTitle(), max(room, 12)))

		line := id + "  " + title + DimStyle.Render(" · "+desc)
		if marks != "" {
			line += " " + marks
		}
		fmt.Fprintln(w, line)
	}
}

func renderSummary(w io.Writer, shown, total int, cfg catalog.Config) {
	summary := fmt.Sprintf("%d of %d", shown, total)
	if n := cfg.ActiveCount(); n > 0 {
		summary += fmt.Sprintf(" · %d active filter", n)
		if n > 1 {
			summary += "s"
		}
	}
	if cfg.Sort.Key != "" {
		summary += " · sorted by " + cfg.Sort.String()
	}
	fmt.Fprintln(w, HeaderStyle.Render(summary))
}

// highlight renders the characters of title at the matched byte offsets in the accent style
func highlight(s search.Suggestion) string {
	matched := make(map[int]bool, len(s.MatchedIndexes))
	for _, i := range s.MatchedIndexes {
		matched[i] = true
	}
	var b strings.Builder
	for i, r := range s.Title {
		if matched[i] {
			b.WriteString(AccentStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

type valueCount struct {
	Value string
	Count int
}

// topValues returns facet values by descending count, ties by value
func topValues(counts map[string]int, limit int) []valueCount {
	out := make([]valueCount, 0, len(counts))
	for v, n := range counts {
		out = append(out, valueCount{v, n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
