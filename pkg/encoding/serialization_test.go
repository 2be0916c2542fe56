package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type frame struct {
	Tick  uint64    `msgpack:"tick"`
	Names []string  `msgpack:"names"`
	Pos   []float64 `msgpack:"pos"`
}

func TestMsgpack_RoundTrip(t *testing.T) {
	var codec Codec[frame] = Msgpack[frame]{}
	in := frame{Tick: 42, Names: []string{"ball", "peg"}, Pos: []float64{1.5, -2.25}}

	first, err := codec.Encode(in)
	require.NoError(t, err)
	second, err := codec.Encode(frame{Tick: 1})
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "encoded frames must not share pooled memory")

	var out frame
	require.NoError(t, codec.Decode(first, &out))
	assert.Equal(t, in, out)
}

func TestMsgpack_DecodeGarbage(t *testing.T) {
	var out frame
	assert.Error(t, Msgpack[frame]{}.Decode([]byte{0xc1}, &out))
}
