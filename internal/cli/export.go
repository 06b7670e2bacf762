package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/jmdelaney/dayglow/internal/export"
)

type ExportCmd struct {
	Format string `help:"Export format: json or csv." enum:"json,csv" default:"json"`
	Out    string `help:"Output file (default: stdout)." default:""`
}

func (c *ExportCmd) Run(ctx *Context) error {
	var w io.Writer = os.Stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		defer f.Close()
		w = f
	}

	var err error
	switch c.Format {
	case "csv":
		err = export.CSV(w, ctx.Doc)
	default:
		err = export.JSON(w, ctx.Doc)
	}
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if c.Out != "" {
		fmt.Printf("Exported %d day(s) to %s\n", len(ctx.Doc.DailyData), c.Out)
	}
	return nil
}
