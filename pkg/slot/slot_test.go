package slot

import (
	"encoding/json"
	"testing"
)

func TestCycleStartsAtSevenAM(t *testing.T) {
	names := Names()
	if len(names) != Count {
		t.Fatalf("expected %d slots, got %d", Count, len(names))
	}
	if names[0] != "7am" || names[Count-1] != "6am" {
		t.Fatalf("cycle is %s..%s, want 7am..6am", names[0], names[Count-1])
	}
}

func TestParse(t *testing.T) {
	h, err := Parse("8am")
	if err != nil {
		t.Fatal(err)
	}
	if h.String() != "8am" {
		t.Fatalf("round trip gave %q", h)
	}
	if _, err := Parse("13pm"); err == nil {
		t.Fatal("expected an error for an unknown slot")
	}
	if _, err := Parse(" 8AM "); err != nil {
		t.Fatalf("parse should be case and space insensitive: %v", err)
	}
}

func TestCompareFollowsCycleNotClock(t *testing.T) {
	nineAM, _ := Parse("9am")
	eightAM, _ := Parse("8am")
	midnight, _ := Parse("12am")
	elevenPM, _ := Parse("11pm")

	if Compare(eightAM, nineAM) >= 0 {
		t.Fatal("8am should precede 9am")
	}
	// Midnight belongs to the tail of the day, after 11pm.
	if Compare(elevenPM, midnight) >= 0 {
		t.Fatal("11pm should precede 12am in the 7am-start cycle")
	}
}

func TestSpanInclusive(t *testing.T) {
	start, _ := Parse("9am")
	end, _ := Parse("11am")
	got := Span(start, end)
	if len(got) != 3 {
		t.Fatalf("span 9am-11am should cover 3 slots, got %d", len(got))
	}
	if got[0].String() != "9am" || got[2].String() != "11am" {
		t.Fatalf("span bounds wrong: %v", got)
	}
}

func TestHourJSONByName(t *testing.T) {
	h, _ := Parse("10pm")
	data, err := json.Marshal(h)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"10pm"` {
		t.Fatalf("hour marshalled to %s", data)
	}
	var back Hour
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != h {
		t.Fatalf("round trip gave %v", back)
	}
	if err := json.Unmarshal([]byte(`"25pm"`), &back); err == nil {
		t.Fatal("expected an error for an unknown name")
	}
}
