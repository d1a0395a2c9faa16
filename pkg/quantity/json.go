package quantity

import (
	qerrors "github.com/quanta-dev/quanta/pkg/errors"
	qjson "github.com/quanta-dev/quanta/pkg/json"
	"github.com/quanta-dev/quanta/pkg/registry"
)

// quantityJSON is the structured wire form {"value": n, "unit": "m/s2"}.
type quantityJSON struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// MarshalJSON encodes the quantity in the structured wire form, with
// the unit rendered against the default registry.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return qjson.Marshal(quantityJSON{
		Value: q.Value,
		Unit:  Render(registry.Default(), q.Unit),
	})
}

// FromJSON decodes a quantity from the structured wire form. The unit
// field may be any unit expression; the value is normalized to its
// storage scale.
func FromJSON(reg *registry.Registry, data []byte) (Quantity, error) {
	var raw quantityJSON
	if err := qjson.Unmarshal(data, &raw); err != nil {
		return Quantity{}, qerrors.Wrap(err, qerrors.ErrorTypeInvalidFormat,
			"bad quantity JSON")
	}
	if raw.Unit == "" {
		return Quantity{}, qerrors.New(qerrors.ErrorTypeInvalidFormat,
			"quantity JSON has no unit field")
	}
	return New(reg, raw.Value, raw.Unit)
}

// FromJSONInto decodes a quantity and validates it against a target
// unit expression, returning it at the target's storage scale.
func FromJSONInto(reg *registry.Registry, data []byte, target string) (Quantity, error) {
	q, err := FromJSON(reg, data)
	if err != nil {
		return Quantity{}, err
	}
	return q.In(reg, target)
}
