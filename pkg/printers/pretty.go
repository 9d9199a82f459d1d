package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/dayplan/pkg/entry"
	"tableflip.dev/dayplan/pkg/glyph"
	"tableflip.dev/dayplan/pkg/resolve"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca-0000-1234567890ab  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// Day prints a resolved day view, slots first in canonical order,
// then ranges.
func (pp *PrettyPrint) Day(doc *resolve.Document) {
	if doc == nil || (len(doc.Slots) == 0 && len(doc.Ranges) == 0) {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	h := color.New(color.FgCyan)

	for _, s := range doc.Slots {
		_, _ = h.Printf("%4s ", s.Hour)
		_, _ = t.Printf("%s %s\n", bulletFor(s), text(s))
	}
	for _, r := range doc.Ranges {
		_, _ = h.Printf("%4s-%s ", r.Start, r.End)
		_, _ = t.Printf("%s %s %s\n", glyph.Range, bulletFor(r.Slot), text(r.Slot))
	}
	_, _ = t.Println("")
}

func bulletFor(s resolve.Slot) glyph.Bullet {
	if s.Kind != entry.TaskRef {
		return glyph.Note
	}
	switch {
	case s.Text == resolve.MissingTaskText:
		return glyph.Missing
	case s.Completed:
		return glyph.Completed
	default:
		return glyph.Task
	}
}

func text(s resolve.Slot) string {
	if s.Kind == entry.TaskRef && s.Completed {
		return glyph.Strike(s.Text)
	}
	// Multi-line text keeps its indent under the hour column.
	return strings.ReplaceAll(s.Text, "\n", "\n       ")
}
