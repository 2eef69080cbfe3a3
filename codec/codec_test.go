package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRun struct {
	K         int          `json:"k"`
	Points    [][2]float64 `json:"points"`
	Tolerance float64      `json:"tolerance"`
}

func TestCodecs(t *testing.T) {
	in := testRun{K: 2, Points: [][2]float64{{1, 1}, {4.5, 3.5}}, Tolerance: 0.001}

	for _, name := range Names {
		t.Run(name, func(t *testing.T) {
			c, ok := ByName(name)
			require.True(t, ok)
			assert.Equal(t, name, c.Name())

			data, err := c.Marshal(in)
			require.NoError(t, err)
			assert.JSONEq(t, `{"k":2,"points":[[1,1],[4.5,3.5]],"tolerance":0.001}`, string(data))

			indented, err := c.MarshalIndent(in, "", "  ")
			require.NoError(t, err)
			assert.Contains(t, string(indented), "\n  \"k\": 2")
			assert.JSONEq(t, string(data), string(indented))

			var out testRun
			require.NoError(t, c.Unmarshal(indented, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestByName(t *testing.T) {
	c, ok := ByName("")
	require.True(t, ok)
	assert.Equal(t, Default.Name(), c.Name())

	_, ok = ByName("msgpack")
	assert.False(t, ok)
}

func TestMarshalUnsupported(t *testing.T) {
	for _, c := range []Codec{JSON{}, GoJSON{}} {
		_, err := c.Marshal(make(chan int))
		assert.Error(t, err, c.Name())
	}
}
