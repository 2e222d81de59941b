package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRank(t *testing.T) {
	testCases := []struct {
		description string
		input       []WordFrequency
		k           int
		expected    []WordFrequency
	}{
		{
			"frequency descending",
			[]WordFrequency{{"car", 3}, {"cart", 9}, {"cat", 5}},
			3,
			[]WordFrequency{{"cart", 9}, {"cat", 5}, {"car", 3}},
		},
		{
			"ties broken alphabetically",
			[]WordFrequency{{"bat", 4}, {"bag", 4}, {"bad", 4}, {"ban", 4}},
			3,
			[]WordFrequency{{"bad", 4}, {"bag", 4}, {"ban", 4}},
		},
		{
			"fewer than k",
			[]WordFrequency{{"a", 1}},
			3,
			[]WordFrequency{{"a", 1}},
		},
		{
			"k zero keeps all",
			[]WordFrequency{{"b", 1}, {"a", 1}},
			0,
			[]WordFrequency{{"a", 1}, {"b", 1}},
		},
		{
			"nil input",
			nil,
			3,
			[]WordFrequency{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, Rank(tc.input, tc.k))
		})
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, WordFrequency{"cat", 0}.Validate())
	assert.ErrorIs(t, WordFrequency{"", 1}.Validate(), ErrInvalidWord)
	assert.ErrorIs(t, WordFrequency{"cat", -1}.Validate(), ErrInvalidFrequency)
	assert.ErrorIs(t, WordFrequency{"\xff", 1}.Validate(), ErrInvalidWord)
	assert.ErrorIs(t, ValidateWord("caf\xc3"), ErrInvalidWord)
	assert.NoError(t, ValidateWord("café"))

	err := ValidateEntries([]WordFrequency{{"cat", 1}, {"dog", -4}})
	assert.ErrorIs(t, err, ErrInvalidFrequency)
	assert.Contains(t, err.Error(), "entry 1")

	assert.NoError(t, ValidateEntries(nil))
}

func TestValidPrefix(t *testing.T) {
	assert.True(t, ValidPrefix(""))
	assert.True(t, ValidPrefix("caf"))
	assert.True(t, ValidPrefix("café"))
	assert.False(t, ValidPrefix("caf\xc3"))
	assert.False(t, ValidPrefix("\xfe"))
}

func TestString(t *testing.T) {
	assert.Equal(t, "cart(9)", WordFrequency{"cart", 9}.String())
}
