package slot

import "encoding/json"

// Hours persist by name, never by index, so reordering the table would
// not corrupt stored documents.

func (h Hour) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h *Hour) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	parsed, err := Parse(name)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
