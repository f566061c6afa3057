package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiledwater/internal/sims/water"
)

const basin = `
width: 8
height: 6
steps: 40
rocks: [[3, 1], [3, 2]]
water: [[1, 4], [3, 2]]
pour: {x: 6, y: 4, every: 5}
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(basin))
	require.NoError(t, err)
	assert.Equal(t, 8, s.Width)
	assert.Equal(t, 40, s.Steps)
	assert.Equal(t, []Point{{3, 1}, {3, 2}}, s.Rocks)
	require.NotNil(t, s.Pour)
	assert.Equal(t, Pour{X: 6, Y: 4, Every: 5}, *s.Pour)
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":      "width: 4\nheight: 4\nfoo: 1\n",
		"negative steps":   "width: 4\nheight: 4\nsteps: -1\n",
		"negative width":   "width: -4\nheight: 4\n",
		"zero pour period": "width: 4\nheight: 4\npour: {x: 1, y: 1, every: 0}\n",
		"short point":      "width: 4\nheight: 4\nrocks: [[1]]\n",
	}
	for name, doc := range cases {
		_, err := Parse([]byte(doc))
		assert.Error(t, err, name)
	}
}

func TestApplyAndPour(t *testing.T) {
	s, err := Parse([]byte(basin))
	require.NoError(t, err)
	w := water.New(s.Width, s.Height, 8)
	s.Apply(w)

	assert.Equal(t, water.KindRock, w.At(3, 1).Kind)
	assert.Equal(t, water.KindFull, w.At(3, 2).Kind, "water is applied after rock")
	assert.Equal(t, water.KindFull, w.At(1, 4).Kind)

	s.BeforeTick(w, 1)
	assert.Equal(t, water.KindEmpty, w.At(6, 4).Kind)
	s.BeforeTick(w, 5)
	assert.Equal(t, water.KindFull, w.At(6, 4).Kind)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "basin.yaml")
	require.NoError(t, os.WriteFile(path, []byte(basin), 0o600))
	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, s.Height)

	_, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDefaultSize(t *testing.T) {
	s, err := Parse([]byte("steps: 10\nwater: [[2, 2]]\n"))
	require.NoError(t, err)
	s.DefaultSize(30, 12)
	assert.Equal(t, 30, s.Width)
	assert.Equal(t, 12, s.Height)

	s, err = Parse([]byte(basin))
	require.NoError(t, err)
	s.DefaultSize(30, 12)
	assert.Equal(t, 8, s.Width, "explicit dimensions are kept")
	assert.Equal(t, 6, s.Height)

	s, err = Parse([]byte("width: 9\n"))
	require.NoError(t, err)
	s.DefaultSize(30, 12)
	assert.Equal(t, 9, s.Width)
	assert.Equal(t, 12, s.Height)
}
