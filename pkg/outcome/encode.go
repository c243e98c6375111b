package outcome

import (
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
)

const (
	statusSuccess = "success"
	statusFailure = "failure"
)

type envelope struct {
	Status string          `json:"status"`
	Value  json.RawMessage `json:"value,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// MarshalJSON encodes the outcome as an envelope with an explicit status
// tag, so a serialized failure can never be read back as a success of a
// union-compatible shape. Identity metadata is not part of the wire form.
func (o Outcome[T]) MarshalJSON() ([]byte, error) {
	if o.err != nil {
		return json.Marshal(envelope{Status: statusFailure, Error: o.err.Error()})
	}
	if !o.isSuccess {
		return nil, errors.New("outcome: cannot marshal a zero-value outcome")
	}
	raw, err := json.Marshal(o.value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{Status: statusSuccess, Value: raw})
}

// UnmarshalJSON decodes the tagged envelope. A failure's error is
// re-materialized from its message, and fresh identity metadata is minted
// for the decoded outcome.
func (o *Outcome[T]) UnmarshalJSON(data []byte) error {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	switch env.Status {
	case statusSuccess:
		var v T
		if len(env.Value) > 0 {
			if err := json.Unmarshal(env.Value, &v); err != nil {
				return err
			}
		}
		*o = Success(v)
		return nil
	case statusFailure:
		if env.Error == "" {
			return errors.New("outcome: failure envelope without an error")
		}
		*o = Fail[T](errors.New(env.Error))
		return nil
	default:
		return fmt.Errorf("outcome: unknown envelope status %q", env.Status)
	}
}

// Hash returns a 64-bit FNV-1a hash over the variant tag and payload.
// Outcomes that compare Equal hash identically.
func (o Outcome[T]) Hash() uint64 {
	h := fnv.New64a()
	if o.err != nil {
		h.Write([]byte{'f'})
		h.Write([]byte(o.err.Error()))
		return h.Sum64()
	}
	h.Write([]byte{'s'})
	if raw, err := json.Marshal(o.value); err == nil {
		h.Write(raw)
	} else {
		fmt.Fprintf(h, "%v", o.value)
	}
	return h.Sum64()
}

// String renders a short debug form, Success(v) or Failure(err).
func (o Outcome[T]) String() string {
	if o.err != nil {
		return fmt.Sprintf("Failure(%v)", o.err)
	}
	if o.isSuccess {
		return fmt.Sprintf("Success(%v)", o.value)
	}
	return "Outcome(empty)"
}
