package telegram

import (
	"fmt"
	"html"
	"strings"
	"time"
	"unicode/utf8"

	"dotask-bot/internal/model"
	"dotask-bot/internal/task"
	"dotask-bot/internal/task/callback"
)

// renderListing builds the HTML text of one listing page.
func renderListing(lx *lexicon, out task.ListOutput, c callback.Cursor, now time.Time, loc *time.Location) string {
	var b strings.Builder

	title := lx.titleOpen
	if c.Status.Done() {
		title = lx.titleDone
	}
	fmt.Fprintf(&b, lx.totalFmt+"\n", title, out.Total)
	fmt.Fprintf(&b, lx.filtersFmt+"\n", lx.priorityFilters[c.Priority], lx.dateFilters[c.Date])
	fmt.Fprintf(&b, lx.pageFmt, out.Page, out.TotalPages)

	if len(out.Tasks) == 0 {
		b.WriteString("\n\n")
		b.WriteString(lx.emptyList)
		return b.String()
	}

	offset := task.Offset(out.Page, out.PageSize)
	for i, t := range out.Tasks {
		b.WriteString("\n\n")
		b.WriteString(renderTask(lx, offset+i+1, t, now, loc))
	}
	return b.String()
}

func renderTask(lx *lexicon, index int, t model.Task, now time.Time, loc *time.Location) string {
	state := lx.statePending
	if t.IsDone {
		state = lx.stateDone
	}
	return fmt.Sprintf("%d. %s <b>%s</b>\n    %s · ⏰ %s",
		index,
		priorityGlyph(t.Priority),
		html.EscapeString(truncateRunes(t.Content, contentPreviewRunes)),
		state,
		humanizeDue(lx, t.DueDate, now, loc),
	)
}

func priorityGlyph(p model.Priority) string {
	if g, ok := priorityGlyphs[p]; ok {
		return g
	}
	return "⚪️"
}

// truncateRunes shortens s to at most n runes, marking the cut with an ellipsis.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}

// humanizeDue describes due relative to now, both read in loc.
func humanizeDue(lx *lexicon, due *time.Time, now time.Time, loc *time.Location) string {
	if due == nil {
		return lx.noDate
	}

	d := due.In(loc)
	n := now.In(loc)
	y1, m1, d1 := d.Date()
	y2, m2, d2 := n.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return fmt.Sprintf(lx.todayFmt, d.Format("15:04"))
	}

	diff := d.Sub(n)
	if diff < 0 {
		hours := int(-diff / time.Hour)
		if hours >= 24 {
			return fmt.Sprintf(lx.daysOverdueFmt, hours/24)
		}
		return fmt.Sprintf(lx.hoursOverdueFmt, hours)
	}

	hours := int(diff / time.Hour)
	if hours >= 24 {
		return fmt.Sprintf(lx.inDaysFmt, hours/24)
	}
	return fmt.Sprintf(lx.inHoursFmt, hours)
}

// renderTaskLine is the short form used in confirmations.
func renderTaskLine(lx *lexicon, t model.Task, now time.Time, loc *time.Location) string {
	return fmt.Sprintf("%s <b>%s</b>\n⏰ %s",
		priorityGlyph(t.Priority),
		html.EscapeString(truncateRunes(t.Content, contentPreviewRunes)),
		humanizeDue(lx, t.DueDate, now, loc),
	)
}
