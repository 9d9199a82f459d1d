package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/dayplan/pkg/glyph"
	"tableflip.dev/dayplan/pkg/task"
)

// Queue prints one task queue as a positioned table, highest priority
// first.
func (pp *PrettyPrint) Queue(kind task.ListKind, scope task.Scope, tasks []task.Task) {
	pp.Title(fmt.Sprintf("%s (%s)", kind, scope))

	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for i, t := range tasks {
		b := glyph.Task
		text := t.Text
		if t.Completed {
			b = glyph.Completed
			text = glyph.Strike(text)
		}
		due := ""
		if !t.DueDate.IsZero() {
			due = "due " + t.DueDate.String()
		}
		if pp.ShowID {
			tbl.AddRow(i, b.String(), text, due, t.ID)
		} else {
			tbl.AddRow(i, b.String(), text, due)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}
