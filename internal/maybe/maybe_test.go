package maybe

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaybe(t *testing.T) {
	s := Some(3)
	assert.True(t, s.IsValid())
	assert.Equal(t, 3, s.Value())
	assert.Equal(t, 3, s.ValueOrDefault(7))

	n := None[int]()
	assert.False(t, n.IsValid())
	assert.Equal(t, 7, n.ValueOrDefault(7))

	var zero Maybe[float64]
	assert.False(t, zero.IsValid())
}

func TestMaybeJSON(t *testing.T) {
	type payload struct {
		IRR     Maybe[float64] `json:"irr"`
		Payback Maybe[int]     `json:"payback"`
	}

	raw, err := json.Marshal(payload{IRR: Some(0.125), Payback: None[int]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"irr":0.125,"payback":null}`, string(raw))

	var back payload
	require.NoError(t, json.Unmarshal([]byte(`{"irr":null,"payback":4}`), &back))
	assert.False(t, back.IRR.IsValid())
	assert.Equal(t, 4, back.Payback.ValueOrDefault(-1))
}
