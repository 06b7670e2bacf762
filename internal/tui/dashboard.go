package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmdelaney/dayglow/internal/models"
	"github.com/jmdelaney/dayglow/internal/points"
)

// Dashboard renders the day's scoreboard as a static block. It is a plain
// string render rather than a tea.Model because nothing on it is interactive;
// one-shot commands print it and exit.
func Dashboard(doc models.Document, day string, now time.Time, syncLine string) string {
	rec := doc.Record(day)
	b := points.BreakdownForDay(rec)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Today") + "  " + stepCountStyle.Render(day) + "\n\n")
	sb.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("Points:"),
		pointsStyle.Render(fmt.Sprintf("%d", b.Total()))))

	if prev := points.PreviousHighScore(doc, day); prev > 0 {
		delta := b.Total() - prev
		switch {
		case delta > 0:
			sb.WriteString(fmt.Sprintf("%s %s\n",
				labelStyle.Render("High score:"),
				syncedStyle.Render(fmt.Sprintf("beat by %d (was %d)", delta, prev))))
		default:
			sb.WriteString(fmt.Sprintf("%s %d away (best %d)\n",
				labelStyle.Render("High score:"), -delta, prev))
		}
	}

	streak := points.CurrentStreak(doc, now)
	longest := points.LongestStreak(doc)
	sb.WriteString(fmt.Sprintf("%s %s",
		labelStyle.Render("Streak:"),
		streakStyle.Render(fmt.Sprintf("%d day(s)", streak))))
	if longest > streak {
		sb.WriteString(stepCountStyle.Render(fmt.Sprintf("  (best %d)", longest)))
	}
	sb.WriteString("\n\n")

	for _, row := range []struct {
		label string
		val   int
	}{
		{"Morning check-in", b.MorningCheckin},
		{"Evening review", b.EveningReview},
		{"Priority task", b.PriorityTask},
		{"Tasks", b.Tasks},
		{"Connections", b.Connections},
		{"Habits", b.Habits},
		{"Basics", b.Basics},
		{"Worry work", b.Dread},
		{"Focus sessions", b.Pomodoro},
	} {
		if row.val == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %-18s %s\n", row.label,
			pointsStyle.Render(fmt.Sprintf("+%d", row.val))))
	}

	sb.WriteString("\n" + fmt.Sprintf("%s %d\n",
		labelStyle.Render("All time:"), points.AllTime(doc)))
	if syncLine != "" {
		sb.WriteString(stepCountStyle.Render(syncLine) + "\n")
	}

	return docStyle.Render(sb.String())
}
