package geodesic

import (
	"encoding/json"
	"fmt"
)

// GeometryError reports a point pair whose distance could not be computed.
// The pair is skipped; the rest of the analysis continues.
type GeometryError struct {
	Segment int
	From    int
	To      int
	Err     error
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("failed to calculate distance between point %d and %d (segment %d): %v",
		e.From, e.To, e.Segment, e.Err)
}

func (e *GeometryError) Unwrap() error {
	return e.Err
}

// MarshalJSON reports the pair as {"segment", "from", "to", "error"}.
func (e *GeometryError) MarshalJSON() ([]byte, error) {
	msg := ""
	if e.Err != nil {
		msg = e.Err.Error()
	}
	return json.Marshal(struct {
		Segment int    `json:"segment"`
		From    int    `json:"from"`
		To      int    `json:"to"`
		Error   string `json:"error"`
	}{e.Segment, e.From, e.To, msg})
}
