package opt

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Wire forms. An option is {"present":true,"value":v} or
// {"present":false} with no value key at all. A result is
// {"ok":true,"value":v} or {"ok":false,"value":"message"} where the
// failure side stores the error's message; errors round-trip by message
// only, rebuilt with errors.New.

type optionJSON struct {
	Present bool            `json:"present"`
	Value   json.RawMessage `json:"value,omitempty"`
}

type resultJSON struct {
	OK    bool            `json:"ok"`
	Value json.RawMessage `json:"value"`
}

func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.some {
		return json.Marshal(optionJSON{Present: false})
	}
	v, err := json.Marshal(o.value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(optionJSON{Present: true, Value: v})
}

func (o *Option[T]) UnmarshalJSON(data []byte) error {
	var raw optionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if !raw.Present {
		*o = Option[T]{}
		return nil
	}
	if len(raw.Value) == 0 {
		return errors.New("option marked present without a value")
	}
	var v T
	if err := json.Unmarshal(raw.Value, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.err != nil {
		msg, err := json.Marshal(r.err.Error())
		if err != nil {
			return nil, err
		}
		return json.Marshal(resultJSON{OK: false, Value: msg})
	}
	v, err := json.Marshal(r.value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(resultJSON{OK: true, Value: v})
}

func (r *Result[T]) UnmarshalJSON(data []byte) error {
	var raw resultJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Value) == 0 {
		return errors.New("result without a value")
	}
	if !raw.OK {
		var msg string
		if err := json.Unmarshal(raw.Value, &msg); err != nil {
			return fmt.Errorf("result error side is not a string: %w", err)
		}
		*r = Err[T](errors.New(msg))
		return nil
	}
	var v T
	if err := json.Unmarshal(raw.Value, &v); err != nil {
		return err
	}
	*r = Ok(v)
	return nil
}

// OptionFromJSON decodes a single option document.
func OptionFromJSON[T any](data []byte) (Option[T], error) {
	var o Option[T]
	if err := json.Unmarshal(data, &o); err != nil {
		return Option[T]{}, err
	}
	return o, nil
}

// ResultFromJSON decodes a single result document.
func ResultFromJSON[T any](data []byte) (Result[T], error) {
	var r Result[T]
	if err := json.Unmarshal(data, &r); err != nil {
		return Result[T]{}, err
	}
	return r, nil
}
