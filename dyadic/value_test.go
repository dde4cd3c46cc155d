package dyadic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dyadtree/dyadic"
)

// mustValue builds num/den or fails the test.
func mustValue(t *testing.T, num, den int64) dyadic.Value {
	t.Helper()
	v, err := dyadic.New(num, den)
	require.NoError(t, err)

	return v
}

func TestNew_ZeroDenominator(t *testing.T) {
	_, err := dyadic.New(1, 0)
	assert.ErrorIs(t, err, dyadic.ErrZeroDenominator)
}

func TestNew_ReducesToLowestTerms(t *testing.T) {
	v := mustValue(t, 2, 8)
	assert.Equal(t, "1/4", v.String())
	assert.Equal(t, int64(1), v.Num().Int64())
	assert.Equal(t, int64(4), v.Den().Int64())
	assert.True(t, v.Equal(mustValue(t, 1, 4)))
}

func TestValue_NumDenAreCopies(t *testing.T) {
	v := mustValue(t, 3, 8)
	v.Num().SetInt64(99)
	v.Den().SetInt64(99)
	assert.Equal(t, "3/8", v.String(), "mutating the returned ints must not change the value")
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"5/8", "5/8"},
		{" 6/16 ", "3/8"},
		{"0.625", "5/8"},
		{"1/2", "1/2"},
	}
	for _, tc := range cases {
		v, err := dyadic.Parse(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, v.String(), "input %q", tc.in)
	}

	for _, bad := range []string{"", "abc", "1/0", "1//2"} {
		_, err := dyadic.Parse(bad)
		assert.ErrorIs(t, err, dyadic.ErrInvalidValue, "input %q", bad)
	}
}

func TestValue_ZeroValue(t *testing.T) {
	var v dyadic.Value
	assert.Equal(t, "0", v.String())
	assert.False(t, v.InUnitInterval())
	assert.True(t, v.Equal(mustValue(t, 0, 5)))
	// (1+0)/2 and (1-0)/2 are both 1/2
	assert.True(t, v.Left().Equal(dyadic.Half()))
	assert.True(t, v.Right().Equal(dyadic.Half()))
}

func TestValue_AffineMaps(t *testing.T) {
	h := dyadic.Half()
	assert.Equal(t, "3/4", h.Left().String())
	assert.Equal(t, "1/4", h.Right().String())
	assert.Equal(t, "5/8", h.Right().Left().String())
	assert.Equal(t, "1/8", h.Left().Right().String())
	// the receiver is untouched
	assert.Equal(t, "1/2", h.String())

	c, err := h.Child(dyadic.Q)
	require.NoError(t, err)
	assert.True(t, c.Equal(h.Right()))

	_, err = h.Child(dyadic.Symbol('x'))
	assert.ErrorIs(t, err, dyadic.ErrInvalidSymbol)
}

func TestValue_IsDyadicAndDepth(t *testing.T) {
	cases := []struct {
		num, den int64
		dyadic   bool
		depth    int
	}{
		{1, 2, true, 0},
		{1, 4, true, 1},
		{3, 4, true, 1},
		{5, 8, true, 2},
		{11, 16, true, 3},
		{2, 8, true, 1},
		{1, 3, false, 0},
		{1, 6, false, 0},
		{5, 12, false, 0},
	}
	for _, tc := range cases {
		v := mustValue(t, tc.num, tc.den)
		assert.Equal(t, tc.dyadic, v.IsDyadic(), "%d/%d", tc.num, tc.den)
		d, err := v.Depth()
		if !tc.dyadic {
			assert.ErrorIs(t, err, dyadic.ErrNotDyadic, "%d/%d", tc.num, tc.den)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.depth, d, "%d/%d", tc.num, tc.den)
	}
}

func TestValue_DepthOutOfRange(t *testing.T) {
	for _, v := range []dyadic.Value{mustValue(t, 0, 1), mustValue(t, 1, 1), mustValue(t, 3, 2), mustValue(t, -1, 4)} {
		_, err := v.Depth()
		assert.ErrorIs(t, err, dyadic.ErrOutOfRange, "value %s", v)
	}
}

func TestValue_InUnitInterval(t *testing.T) {
	assert.True(t, mustValue(t, 1, 1024).InUnitInterval())
	assert.True(t, mustValue(t, 1023, 1024).InUnitInterval())
	assert.False(t, mustValue(t, 0, 1).InUnitInterval())
	assert.False(t, mustValue(t, 1, 1).InUnitInterval())
	assert.False(t, mustValue(t, -1, 2).InUnitInterval())
	assert.False(t, mustValue(t, 3, 2).InUnitInterval())
}
