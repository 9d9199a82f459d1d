// Package slot defines the fixed hour-slot cycle a day is divided
// into. The day starts at 7am and runs through 6am the next morning;
// ordering and comparison always follow that cycle, not clock order.
package slot

import (
	"fmt"
	"strings"
)

// Hour is an index into the canonical 7am-start ordering.
type Hour int

// Count is the number of slots in a day.
const Count = 24

var names = []string{
	"7am", "8am", "9am", "10am", "11am", "12pm",
	"1pm", "2pm", "3pm", "4pm", "5pm", "6pm",
	"7pm", "8pm", "9pm", "10pm", "11pm", "12am",
	"1am", "2am", "3am", "4am", "5am", "6am",
}

// Names returns the slot names in canonical order.
func Names() []string {
	out := make([]string, Count)
	copy(out, names)
	return out
}

// All returns every hour in canonical order.
func All() []Hour {
	out := make([]Hour, Count)
	for i := range out {
		out[i] = Hour(i)
	}
	return out
}

// Parse maps a slot name like "8am" onto its Hour. Unknown names are a
// caller error.
func Parse(raw string) (Hour, error) {
	n := strings.ToLower(strings.TrimSpace(raw))
	for i, name := range names {
		if name == n {
			return Hour(i), nil
		}
	}
	return 0, fmt.Errorf("slot: unknown hour-slot %q", raw)
}

// Valid reports whether h is one of the 24 slots.
func (h Hour) Valid() bool {
	return h >= 0 && h < Count
}

func (h Hour) String() string {
	if !h.Valid() {
		return fmt.Sprintf("slot(%d)", int(h))
	}
	return names[h]
}

// Compare orders two hours in the canonical cycle: negative when a
// precedes b, zero when equal.
func Compare(a, b Hour) int {
	return int(a) - int(b)
}

// Span lists the hours covered by [start, end], inclusive on both
// sides for display purposes. Start must not follow end.
func Span(start, end Hour) []Hour {
	if start > end {
		return nil
	}
	out := make([]Hour, 0, end-start+1)
	for h := start; h <= end; h++ {
		out = append(out, h)
	}
	return out
}
