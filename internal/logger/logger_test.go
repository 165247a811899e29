package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponent_TagsEntries(t *testing.T) {
	var buf bytes.Buffer
	log := Component(NewWithWriter(&buf, false), "dispute")

	log.Info().Str("dispute_id", "DSP-1A2B3C4D").Msg("dispute opened")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "dispute", entry["component"])
	assert.Equal(t, "DSP-1A2B3C4D", entry["dispute_id"])
	assert.Equal(t, "dispute opened", entry["message"])
}
