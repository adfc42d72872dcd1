package cart

import (
	"encoding/json"

	"levelup-cart/internal/pkg/errs"
)

// Persisted partition format: a JSON array of items with the product embedded
// in full, so a stored cart renders without a live catalog lookup.

func Encode(s Snapshot) (string, error) {
	if s == nil {
		s = Snapshot{}
	}
	data, err := json.Marshal(s)
	if err != nil {
		return "", errs.Wrap(err, "encode cart snapshot")
	}
	return string(data), nil
}

func Decode(raw string) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, errs.Wrap(err, "decode cart snapshot")
	}
	if s == nil {
		s = Snapshot{}
	}
	return s, nil
}
