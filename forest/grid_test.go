package forest

import (
	"errors"
	"testing"

	"github.com/forestview/aoc"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `30373
25512
65332
33549
35390
`

func mustParse(t *testing.T, s string) *Grid {
	t.Helper()
	g, err := Parse(s)
	require.NoError(t, err)
	return g
}

func TestParse(t *testing.T) {
	g := mustParse(t, sample)
	assert.Equal(t, 5, g.Rows())
	assert.Equal(t, 5, g.Cols())
	assert.Equal(t, 3, g.At(aoc.Pt{X: 0, Y: 0}))
	assert.Equal(t, 9, g.At(aoc.Pt{X: 4, Y: 3}))
	assert.Equal(t, 5, g.At(aoc.Pt{X: 2, Y: 3}))
	assert.Equal(t, sample, g.String())
}

func TestParseLineEndings(t *testing.T) {
	for _, in := range []string{
		"123\n456",
		"123\n456\n",
		"123\r\n456\r\n",
		"123\n456\n\n\n",
	} {
		g, err := Parse(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, "123\n456\n", g.String(), "input %q", in)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr error
		want    *MalformedInputError
	}{
		{
			name:    "empty",
			in:      "",
			wantErr: ErrEmptyGrid,
		},
		{
			name:    "only newlines",
			in:      "\n\n",
			wantErr: ErrEmptyGrid,
		},
		{
			name:    "longer row",
			in:      "123\n4567\n",
			wantErr: ErrMalformedInput,
			want:    &MalformedInputError{Line: 2, Reason: "row has 4 cells; want 3"},
		},
		{
			name:    "shorter row",
			in:      "123\n45\n678",
			wantErr: ErrMalformedInput,
			want:    &MalformedInputError{Line: 2, Reason: "row has 2 cells; want 3"},
		},
		{
			name:    "blank line inside",
			in:      "12\n\n34",
			wantErr: ErrMalformedInput,
			want:    &MalformedInputError{Line: 2, Reason: "row has 0 cells; want 2"},
		},
		{
			name:    "letter",
			in:      "123\n4x6\n",
			wantErr: ErrMalformedInput,
			want:    &MalformedInputError{Line: 2, Col: 2, Reason: `'x' is not a digit`},
		},
		{
			name:    "separator",
			in:      "1 2\n",
			wantErr: ErrMalformedInput,
			want:    &MalformedInputError{Line: 1, Col: 2, Reason: `' ' is not a digit`},
		},
		{
			name:    "negative",
			in:      "-1\n",
			wantErr: ErrMalformedInput,
			want:    &MalformedInputError{Line: 1, Col: 1, Reason: `'-' is not a digit`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Parse(tt.in)
			require.Error(t, err)
			require.Nil(t, g)
			require.ErrorIs(t, err, tt.wantErr)
			if tt.want == nil {
				return
			}
			var me *MalformedInputError
			require.True(t, errors.As(err, &me))
			if diff := cmp.Diff(tt.want, me); diff != "" {
				t.Errorf("MalformedInputError mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMalformedInputErrorMessage(t *testing.T) {
	_, err := Parse("12\n345")
	require.EqualError(t, err, "forest: malformed input at line 2: row has 3 cells; want 2")
	_, err = Parse("1a")
	require.EqualError(t, err, `forest: malformed input at line 1, col 2: 'a' is not a digit`)
}

func TestAtOutOfBounds(t *testing.T) {
	g := mustParse(t, "12\n34")
	assert.False(t, g.InBounds(aoc.Pt{X: 2, Y: 0}))
	assert.False(t, g.InBounds(aoc.Pt{X: 0, Y: -1}))
	assert.Panics(t, func() { g.At(aoc.Pt{X: 2, Y: 0}) })
}

func TestIsBorder(t *testing.T) {
	g := mustParse(t, sample)
	var border []aoc.Pt
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			if p := (aoc.Pt{X: x, Y: y}); g.IsBorder(p) {
				border = append(border, p)
			}
		}
	}
	assert.Len(t, border, 16)
	assert.False(t, g.IsBorder(aoc.Pt{X: 1, Y: 1}))
	assert.True(t, g.IsBorder(aoc.Pt{X: 4, Y: 2}))
}

func TestTranspose(t *testing.T) {
	g := mustParse(t, "123\n456\n")
	tr := g.Transpose()
	assert.Equal(t, "14\n25\n36\n", tr.String())
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			p := aoc.Pt{X: x, Y: y}
			assert.Equal(t, g.At(p), tr.At(p.Transpose()))
		}
	}
	if diff := cmp.Diff(g.String(), tr.Transpose().String()); diff != "" {
		t.Errorf("double transpose (-want +got):\n%s", diff)
	}
}
