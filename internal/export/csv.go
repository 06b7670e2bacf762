package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/jmdelaney/dayglow/internal/models"
	"github.com/jmdelaney/dayglow/internal/points"
)

// CSV writes a per-day summary table, oldest first.
func CSV(w io.Writer, doc models.Document) error {
	cw := csv.NewWriter(w)

	header := []string{
		"day", "points", "morning_complete", "evening_complete",
		"main_task_done", "tasks_done", "connections_done",
		"habits_done", "basics_done", "water_glasses", "worries", "side_points",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, day := range sortedDays(doc) {
		rec := doc.DailyData[day]

		tasksDone := 0
		for _, t := range rec.Tasks {
			if t.Done {
				tasksDone++
			}
		}
		connectionsDone := 0
		for _, c := range rec.Connections {
			if c.Done {
				connectionsDone++
			}
		}

		row := []string{
			day,
			strconv.Itoa(points.ForDay(rec)),
			strconv.FormatBool(rec.MorningComplete()),
			strconv.FormatBool(rec.EveningComplete()),
			strconv.FormatBool(rec.CompletedMainTask),
			strconv.Itoa(tasksDone),
			strconv.Itoa(connectionsDone),
			strconv.Itoa(len(rec.CompletedHabits)),
			strconv.Itoa(rec.Basics.Count()),
			strconv.Itoa(rec.WaterGlasses),
			strconv.Itoa(len(rec.Worries)),
			strconv.Itoa(rec.Points),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
