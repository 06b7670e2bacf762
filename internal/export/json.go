package export

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/jmdelaney/dayglow/internal/models"
	"github.com/jmdelaney/dayglow/internal/points"
)

// DayExport is one day's record plus its derived totals, flattened for
// external tooling.
type DayExport struct {
	Day       string             `json:"day"`
	Points    int                `json:"points"`
	Breakdown points.Breakdown   `json:"breakdown"`
	Record    models.DailyRecord `json:"record"`
}

// JSON writes every day's record with its derived totals, oldest first.
func JSON(w io.Writer, doc models.Document) error {
	days := sortedDays(doc)

	out := make([]DayExport, 0, len(days))
	for _, day := range days {
		rec := doc.DailyData[day]
		out = append(out, DayExport{
			Day:       day,
			Points:    points.ForDay(rec),
			Breakdown: points.BreakdownForDay(rec),
			Record:    rec,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func sortedDays(doc models.Document) []string {
	days := make([]string, 0, len(doc.DailyData))
	for day := range doc.DailyData {
		days = append(days, day)
	}
	// Canonical day keys sort chronologically as strings.
	sort.Strings(days)
	return days
}
