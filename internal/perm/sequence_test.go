package perm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceString(t *testing.T) {
	assert.Equal(t, "[1, 2, 3, 4]", Sequence{1, 2, 3, 4}.String())
	assert.Equal(t, "[0]", Sequence{0}.String())
	assert.Equal(t, "[]", Sequence{}.String())
}

func TestSequenceCloneIsIndependent(t *testing.T) {
	s := Sequence{1, 2, 3}
	c := s.Clone()
	c[0] = 99
	assert.Equal(t, uint64(1), s[0])
}

func TestSequenceEqual(t *testing.T) {
	assert.True(t, Sequence{1, 2}.Equal(Sequence{1, 2}))
	assert.False(t, Sequence{1, 2}.Equal(Sequence{2, 1}))
	assert.False(t, Sequence{1, 2}.Equal(Sequence{1, 2, 3}))
	assert.True(t, Sequence{}.Equal(nil))
}

func TestSequenceHash(t *testing.T) {
	s := Sequence{1, 2, 3, 4}
	assert.Equal(t, s.Hash(), s.Clone().Hash())
	assert.NotEqual(t, s.Hash(), Sequence{4, 3, 2, 1}.Hash())
}

func TestSequenceValidate(t *testing.T) {
	require.NoError(t, Sequence{3, 1, 2}.Validate())
	require.NoError(t, seq(MaxLength).Validate())

	err := Sequence{}.Validate()
	assert.ErrorIs(t, err, ErrInvalidArgument)

	err = seq(MaxLength + 1).Validate()
	assert.ErrorIs(t, err, ErrInvalidArgument)

	err = Sequence{4, 5, 6, 5}.Validate()
	assert.ErrorIs(t, err, ErrDuplicateElement)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "element 5 at positions 1 and 3")
}

func TestParseSequence(t *testing.T) {
	tests := []struct {
		in      string
		want    Sequence
		wantErr bool
	}{
		{"1,2,3,4", Sequence{1, 2, 3, 4}, false},
		{"[1, 2, 3, 4]", Sequence{1, 2, 3, 4}, false},
		{" 0 , 9 ", Sequence{0, 9}, false},
		{"18446744073709551615", Sequence{18446744073709551615}, false},
		{"", nil, true},
		{"[]", nil, true},
		{"1,,2", nil, true},
		{"1,-2", nil, true},
		{"a,b", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSequence(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSequenceSet(t *testing.T) {
	var s Sequence
	require.NoError(t, s.Set("3,1,2"))
	assert.Equal(t, Sequence{3, 1, 2}, s)
	assert.Equal(t, "sequence", s.Type())

	assert.Error(t, s.Set("4,5"), "setting twice should fail")
}
