package assistant

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goorum04/Nlvip-sub000/pkg/errors"
)

func TestArgumentPayload(t *testing.T) {
	t.Run("object form", func(t *testing.T) {
		var args ArgumentPayload
		require.NoError(t, json.Unmarshal([]byte(`{"search":"Carlos"}`), &args))

		parsed, err := args.Map()
		require.NoError(t, err)
		assert.Equal(t, "Carlos", parsed["search"])
	})

	t.Run("string-encoded form", func(t *testing.T) {
		var args ArgumentPayload
		require.NoError(t, json.Unmarshal([]byte(`"{\"search\":\"Carlos\"}"`), &args))

		parsed, err := args.Map()
		require.NoError(t, err)
		assert.Equal(t, "Carlos", parsed["search"])
	})

	t.Run("malformed content surfaces at parse time", func(t *testing.T) {
		// A string that is not valid JSON decodes fine but fails on Map
		var args ArgumentPayload
		require.NoError(t, json.Unmarshal([]byte(`"not json"`), &args))

		_, err := args.Map()
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrMalformedArguments))
	})

	t.Run("empty payload is an empty map", func(t *testing.T) {
		var args ArgumentPayload

		parsed, err := args.Map()
		require.NoError(t, err)
		assert.Empty(t, parsed)

		data, err := json.Marshal(args)
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(data))
	})

	t.Run("null payload is an empty map", func(t *testing.T) {
		args := NewArguments("null")

		parsed, err := args.Map()
		require.NoError(t, err)
		assert.Empty(t, parsed)
	})

	t.Run("round trip keeps raw text", func(t *testing.T) {
		args := NewArguments(`{"goal":"fat_loss","weight_kg":80}`)

		data, err := json.Marshal(args)
		require.NoError(t, err)
		assert.JSONEq(t, `{"goal":"fat_loss","weight_kg":80}`, string(data))
	})
}

func TestToolCall_UnmarshalJSON(t *testing.T) {
	t.Run("flat arguments form", func(t *testing.T) {
		var call ToolCall
		require.NoError(t, json.Unmarshal(
			[]byte(`{"id":"call_1","name":"find_member","arguments":{"search":"Ana"}}`), &call))

		assert.Equal(t, "call_1", call.ID)
		assert.Equal(t, "find_member", call.Name)

		args, err := call.Arguments.Map()
		require.NoError(t, err)
		assert.Equal(t, "Ana", args["search"])
	})

	t.Run("args form with string payload", func(t *testing.T) {
		var call ToolCall
		require.NoError(t, json.Unmarshal(
			[]byte(`{"id":"call_2","name":"hide_post","args":"{\"post_id\":\"p1\"}"}`), &call))

		args, err := call.Arguments.Map()
		require.NoError(t, err)
		assert.Equal(t, "p1", args["post_id"])
	})

	t.Run("nested function form", func(t *testing.T) {
		var call ToolCall
		require.NoError(t, json.Unmarshal(
			[]byte(`{"id":"call_3","function":{"name":"create_notice","arguments":"{\"title\":\"Cierre\"}"}}`), &call))

		assert.Equal(t, "create_notice", call.Name)

		args, err := call.Arguments.Map()
		require.NoError(t, err)
		assert.Equal(t, "Cierre", args["title"])
	})

	t.Run("invalid JSON", func(t *testing.T) {
		var call ToolCall
		err := json.Unmarshal([]byte(`[1,2]`), &call)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidInput))
	})
}
