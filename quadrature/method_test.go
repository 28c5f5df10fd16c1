package quadrature

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	t.Parallel()

	ids := make([]string, 0, 5)
	for _, k := range Kinds() {
		require.True(t, k.Valid())
		assert.NotEmpty(t, k.Name())
		ids = append(ids, k.ID())
	}
	assert.Equal(t, []string{"trapezoidal", "boole", "simpson13", "simpson38", "simpsonAbierto"}, ids)
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{input: "trapezoidal", want: Trapezoidal},
		{input: "boole", want: Boole},
		{input: "simpson13", want: Simpson13},
		{input: "simpson38", want: Simpson38},
		{input: "simpsonAbierto", want: OpenSimpson},
		{input: " SIMPSONABIERTO ", want: OpenSimpson},
		{input: "romberg", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKindText(t *testing.T) {
	t.Parallel()

	t.Run("json round trip", func(t *testing.T) {
		data, err := json.Marshal(struct{ Method Kind }{Method: Simpson38})
		require.NoError(t, err)
		assert.JSONEq(t, `{"Method":"simpson38"}`, string(data))

		var decoded struct{ Method Kind }
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, Simpson38, decoded.Method)
	})

	t.Run("invalid kind", func(t *testing.T) {
		var k Kind
		assert.False(t, k.Valid())
		assert.Equal(t, "Kind(0)", k.String())
		_, err := k.MarshalText()
		require.ErrorIs(t, err, ErrUnknownKind)
		require.Error(t, k.UnmarshalText([]byte("nope")))
	})
}
