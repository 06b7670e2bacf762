package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/jmdelaney/dayglow/internal/flow"
	"github.com/jmdelaney/dayglow/internal/models"
	"github.com/jmdelaney/dayglow/internal/utils"
)

// morningBuffers holds the free-text staging for list-valued steps. Lists are
// entered one item per line and flushed into the draft when the step's form
// completes.
type morningBuffers struct {
	tasks    string
	people   string
	meetings string
}

func seedMorningBuffers(rec *models.DailyRecord) *morningBuffers {
	buf := &morningBuffers{}
	var tasks []string
	for _, t := range rec.Tasks {
		tasks = append(tasks, t.Text)
	}
	buf.tasks = strings.Join(tasks, "\n")

	var people []string
	for _, c := range rec.Connections {
		people = append(people, c.Name)
	}
	buf.people = strings.Join(people, "\n")

	var meetings []string
	for _, m := range rec.Meetings {
		meetings = append(meetings, fmt.Sprintf("%s-%s %s", m.Start, m.End, m.Title))
	}
	buf.meetings = strings.Join(meetings, "\n")
	return buf
}

// NewMorningWizard wires the morning machine to its step forms. habits is the
// document's habit catalog, offered as the multi-select for today.
func NewMorningWizard(machine *flow.Machine[*models.DailyRecord], habits []string) *Wizard[*models.DailyRecord] {
	buf := seedMorningBuffers(machine.Draft)

	build := func(step flow.Step[*models.DailyRecord], rec *models.DailyRecord) *huh.Form {
		switch step.Key {
		case flow.StepSleepQuality:
			return oneField(huh.NewSelect[int]().
				Title(step.Title).
				Options(
					huh.NewOption("1 · terrible", 1),
					huh.NewOption("2 · poor", 2),
					huh.NewOption("3 · okay", 3),
					huh.NewOption("4 · good", 4),
					huh.NewOption("5 · great", 5),
				).
				Value(&rec.SleepQuality))
		case flow.StepBedTime:
			return oneField(timeInput(step.Title, &rec.BedTime))
		case flow.StepWakeTime:
			return oneField(timeInput(step.Title, &rec.WakeTime))
		case flow.StepMorningMood:
			return oneField(moodInput(step.Title, &rec.MorningMood))
		case flow.StepReflection:
			return oneField(huh.NewText().
				Title(step.Title).
				Value(&rec.Reflection).
				Validate(nonEmpty("a few words")))
		case flow.StepMainPriority:
			return oneField(requiredInput(step.Title, "The one thing that matters most", &rec.MainPriority))
		case flow.StepFirstStep:
			return oneField(requiredInput(step.Title, "Smallest concrete action", &rec.FirstStep))
		case flow.StepTasks:
			return oneField(huh.NewText().
				Title(step.Title).
				Description("One task per line, leave empty to skip").
				Value(&buf.tasks))
		case flow.StepConnections:
			return oneField(huh.NewText().
				Title(step.Title).
				Description("One person per line, leave empty to skip").
				Value(&buf.people))
		case flow.StepHabits:
			if len(habits) == 0 {
				return oneField(huh.NewNote().
					Title(step.Title).
					Description("No habits defined yet — add some with 'dayglow habit add'."))
			}
			return oneField(huh.NewMultiSelect[string]().
				Title(step.Title).
				Options(huh.NewOptions(habits...)...).
				Value(&rec.ChosenHabits))
		case flow.StepGoodDayVision:
			return oneField(requiredInput(step.Title, "Tonight, what made today good?", &rec.GoodDayVision))
		case flow.StepMeetings:
			return oneField(huh.NewText().
				Title(step.Title).
				Description("One per line as HH:MM-HH:MM Title, leave empty to skip").
				Value(&buf.meetings))
		case flow.StepMorningReview:
			return oneField(huh.NewNote().
				Title(step.Title).
				Description(morningSummary(rec)))
		default: // welcome
			return oneField(huh.NewNote().
				Title(step.Title).
				Description("A few questions to set up your day."))
		}
	}

	onStep := func(key string, rec *models.DailyRecord) {
		switch key {
		case flow.StepTasks:
			rec.Tasks = mergeTasks(rec.Tasks, splitLines(buf.tasks))
		case flow.StepConnections:
			rec.Connections = mergeConnections(rec.Connections, splitLines(buf.people))
		case flow.StepMeetings:
			rec.Meetings = parseMeetings(splitLines(buf.meetings))
		}
	}

	return NewWizard("Morning check-in", machine, build, onStep)
}

func oneField(f huh.Field) *huh.Form {
	return huh.NewForm(huh.NewGroup(f))
}

func nonEmpty(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}

func requiredInput(title, placeholder string, value *string) huh.Field {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(nonEmpty("an answer"))
}

func timeInput(title string, value *string) huh.Field {
	return huh.NewInput().
		Title(title).
		Placeholder("HH:MM").
		Value(value).
		Validate(func(s string) error {
			if !utils.ValidateTimeFormat(s) {
				return fmt.Errorf("invalid time format, use HH:MM")
			}
			return nil
		})
}

func moodInput(title string, value *string) huh.Field {
	return huh.NewInput().
		Title(title).
		Placeholder("calm, tired, excited…").
		Suggestions(models.MoodTags()).
		Value(value).
		Validate(nonEmpty("a mood"))
}

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// mergeTasks rebuilds the task list from the edited lines, keeping the done
// flag of any task whose text survived the edit.
func mergeTasks(old []models.TaskItem, lines []string) []models.TaskItem {
	done := make(map[string]bool, len(old))
	for _, t := range old {
		if t.Done {
			done[t.Text] = true
		}
	}
	var out []models.TaskItem
	for _, line := range lines {
		out = append(out, models.TaskItem{Text: line, Done: done[line]})
	}
	return out
}

func mergeConnections(old []models.Connection, lines []string) []models.Connection {
	done := make(map[string]bool, len(old))
	for _, c := range old {
		if c.Done {
			done[c.Name] = true
		}
	}
	var out []models.Connection
	for _, line := range lines {
		out = append(out, models.Connection{Name: line, Done: done[line]})
	}
	return out
}

// parseMeetings parses "HH:MM-HH:MM Title" lines. Malformed lines are kept as
// title-only rows; the flow's meeting-to-block conversion drops them later,
// which matches how incomplete rows are treated everywhere else.
func parseMeetings(lines []string) []models.Meeting {
	var out []models.Meeting
	for _, line := range lines {
		span, title, found := strings.Cut(line, " ")
		if found {
			start, end, ok := strings.Cut(span, "-")
			if ok && utils.ValidateTimeFormat(start) && utils.ValidateTimeFormat(end) {
				out = append(out, models.Meeting{Title: strings.TrimSpace(title), Start: start, End: end})
				continue
			}
		}
		out = append(out, models.Meeting{Title: strings.TrimSpace(line)})
	}
	return out
}

func morningSummary(rec *models.DailyRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Priority: %s\n", rec.MainPriority)
	fmt.Fprintf(&b, "First step: %s\n", rec.FirstStep)
	if n := len(rec.Tasks); n > 0 {
		fmt.Fprintf(&b, "Extra tasks: %d\n", n)
	}
	if n := len(rec.Connections); n > 0 {
		fmt.Fprintf(&b, "People to reach: %d\n", n)
	}
	if n := len(rec.ChosenHabits); n > 0 {
		fmt.Fprintf(&b, "Habits: %s\n", strings.Join(rec.ChosenHabits, ", "))
	}
	b.WriteString("\nPress enter to start your day.")
	return b.String()
}
