package pugrest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifierConstructors(t *testing.T) {
	ids, err := ID(2244)
	require.NoError(t, err)
	assert.True(t, ids.Numeric())
	assert.Equal(t, "2244", ids.Value())

	_, err = ID(0)
	assert.Error(t, err)

	_, err = IDs()
	assert.Error(t, err)

	_, err = IDs(1, 0, 3)
	assert.Error(t, err)

	_, err = Query("   ")
	assert.Error(t, err)
}

func TestIdentifiersPreserveOrderAndDuplicates(t *testing.T) {
	ids, err := IDs(962, 2244, 962)
	require.NoError(t, err)
	assert.Equal(t, "962,2244,962", ids.Value())
}

func TestIdentifiersFrom(t *testing.T) {
	tests := []struct {
		name  string
		in    any
		want  string
		valid bool
	}{
		{"uint32", uint32(7), "7", true},
		{"int", 42, "42", true},
		{"negative int", -1, "", false},
		{"uint32 slice", []uint32{1, 2, 3}, "1,2,3", true},
		{"int slice", []int{5, 6}, "5,6", true},
		{"int slice with zero", []int{5, 0}, "", false},
		{"string", "aspirin", "aspirin", true},
		{"unsupported", 3.14, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, err := From(tt.in)
			if !tt.valid {
				require.Error(t, err)
				var inv *InvalidInputError
				assert.ErrorAs(t, err, &inv)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids.Value())
		})
	}
}

func TestIdentifiersZeroValueIsEmpty(t *testing.T) {
	var ids Identifiers
	assert.True(t, ids.Empty())
	assert.False(t, ids.Numeric())
	assert.Equal(t, "<empty>", ids.String())
}
