package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jmdelaney/dayglow/internal/models"
)

type NoteCmd struct {
	Add    NoteAddCmd    `cmd:"" help:"Add a sticky note."`
	Edit   NoteEditCmd   `cmd:"" help:"Edit a note's text."`
	Delete NoteDeleteCmd `cmd:"" help:"Delete a note."`
	List   NoteListCmd   `cmd:"" default:"1" help:"List notes."`
}

type NoteAddCmd struct {
	Text  []string `arg:"" help:"Note text."`
	Color string   `help:"Note color (yellow, green, blue, pink, purple)." default:"yellow"`
}

func (c *NoteAddCmd) Run(ctx *Context) error {
	text := strings.TrimSpace(strings.Join(c.Text, " "))
	if text == "" {
		return fmt.Errorf("note text cannot be empty")
	}

	color := models.NoteColor(strings.ToLower(c.Color))
	if !models.ValidNoteColor(color) {
		return fmt.Errorf("invalid color %q", c.Color)
	}

	note := models.Note{
		ID:        uuid.New().String(),
		Text:      text,
		Color:     color,
		CreatedAt: Timestamp(),
	}
	// Most recent first.
	ctx.Doc.Notes = append([]models.Note{note}, ctx.Doc.Notes...)
	ctx.Persist()

	fmt.Printf("Added note %s.\n", shortID(note.ID))
	ctx.Flush()
	return nil
}

type NoteEditCmd struct {
	ID   string   `arg:"" help:"Note ID (prefix is enough)."`
	Text []string `arg:"" help:"New note text."`
}

func (c *NoteEditCmd) Run(ctx *Context) error {
	text := strings.TrimSpace(strings.Join(c.Text, " "))
	if text == "" {
		return fmt.Errorf("note text cannot be empty")
	}

	i, err := findNote(ctx.Doc.Notes, c.ID)
	if err != nil {
		return err
	}

	now := Timestamp()
	ctx.Doc.Notes[i].Text = text
	ctx.Doc.Notes[i].UpdatedAt = &now
	ctx.Persist()

	fmt.Printf("Updated note %s.\n", shortID(ctx.Doc.Notes[i].ID))
	ctx.Flush()
	return nil
}

type NoteDeleteCmd struct {
	ID string `arg:"" help:"Note ID (prefix is enough)."`
}

func (c *NoteDeleteCmd) Run(ctx *Context) error {
	i, err := findNote(ctx.Doc.Notes, c.ID)
	if err != nil {
		return err
	}

	id := ctx.Doc.Notes[i].ID
	ctx.Doc.Notes = append(ctx.Doc.Notes[:i], ctx.Doc.Notes[i+1:]...)
	ctx.Persist()

	fmt.Printf("Deleted note %s.\n", shortID(id))
	ctx.Flush()
	return nil
}

type NoteListCmd struct{}

func (c *NoteListCmd) Run(ctx *Context) error {
	if len(ctx.Doc.Notes) == 0 {
		fmt.Println("No notes.")
		return nil
	}

	for _, n := range ctx.Doc.Notes {
		fmt.Printf("%s [%s] %s\n", shortID(n.ID), n.Color, n.Text)
	}
	return nil
}

func findNote(notes []models.Note, idPrefix string) (int, error) {
	matches := -1
	count := 0
	for i, n := range notes {
		if strings.HasPrefix(n.ID, idPrefix) {
			matches = i
			count++
		}
	}
	switch count {
	case 0:
		return 0, fmt.Errorf("no note found matching %q", idPrefix)
	case 1:
		return matches, nil
	default:
		return 0, fmt.Errorf("note ID %q is ambiguous (%d matches)", idPrefix, count)
	}
}
