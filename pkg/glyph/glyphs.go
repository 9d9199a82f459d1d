package glyph

import "fmt"

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 6)

	g = append(g, Glyph{
		Key:     "-",
		Symbol:  "⁃",
		Meaning: "note",
	}, Glyph{
		Key:     "+",
		Symbol:  "●",
		Meaning: "task",
	}, Glyph{
		Key:     "x",
		Symbol:  "✘",
		Meaning: "task completed",
	}, Glyph{
		Key:     "~",
		Symbol:  "⦵",
		Meaning: "task missing",
	}, Glyph{
		Key:     "=",
		Symbol:  "║",
		Meaning: "range",
	}, Glyph{
		Key:     "",
		Symbol:  " ",
		Meaning: "none",
	})

	return g
}

func (g Glyph) String() string {
	return g.Symbol
}

type Bullet int

const (
	Note Bullet = iota
	Task
	Completed
	Missing
	Range
	None
)

func (b Bullet) Glyph() Glyph {
	return DefaultGlyphs()[b]
}

func (b Bullet) String() string {
	return b.Glyph().String()
}
