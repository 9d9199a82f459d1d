package entry

import (
	"errors"
	"fmt"

	"tableflip.dev/dayplan/pkg/slot"
)

// ErrInvalidRange reports bounds that are misordered in the canonical
// 7am-start cycle.
var ErrInvalidRange = errors.New("entry: range start must precede end")

// Range spans a contiguous run of hour-slots. Start must precede End
// in the canonical ordering; the span is inclusive of End for display.
type Range struct {
	Start   slot.Hour `json:"start"`
	End     slot.Hour `json:"end"`
	Payload Entry     `json:"entry"`
}

// NewRange validates the bounds and wraps the payload.
func NewRange(start, end slot.Hour, payload Entry) (Range, error) {
	r := Range{Start: start, End: end, Payload: payload}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

// Validate checks the bounds against the canonical ordering.
func (r Range) Validate() error {
	if !r.Start.Valid() || !r.End.Valid() {
		return fmt.Errorf("entry: range bounds %q-%q out of the slot table", r.Start, r.End)
	}
	if slot.Compare(r.Start, r.End) >= 0 {
		return fmt.Errorf("%w: %s does not precede %s", ErrInvalidRange, r.Start, r.End)
	}
	return nil
}

// Matches reports whether the other range has exactly the same
// bounds. Ranges are addressed by their (start, end) pair.
func (r Range) Matches(start, end slot.Hour) bool {
	return r.Start == start && r.End == end
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}
