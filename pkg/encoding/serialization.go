package encoding

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/zeusync/impulse/pkg/generic"
)

// Codec turns values into wire frames and back.
type Codec[T any] interface {
	Encode(value T) ([]byte, error)
	Decode(data []byte, value *T) error
}

var _ Codec[struct{}] = Msgpack[struct{}]{}

var buffers = generic.NewPool(func() *bytes.Buffer { return new(bytes.Buffer) }, (*bytes.Buffer).Reset)

// Msgpack encodes with struct msgpack tags. Encode reuses pooled buffers and
// returns a fresh copy of the bytes.
type Msgpack[T any] struct{}

func (Msgpack[T]) Encode(value T) ([]byte, error) {
	buf := buffers.Get()
	defer buffers.Put(buf)

	enc := msgpack.GetEncoder()
	defer msgpack.PutEncoder(enc)
	enc.Reset(buf)
	enc.UseCompactInts(true)
	if err := enc.Encode(value); err != nil {
		return nil, fmt.Errorf("msgpack encode %T: %w", value, err)
	}
	return bytes.Clone(buf.Bytes()), nil
}

func (Msgpack[T]) Decode(data []byte, value *T) error {
	if err := msgpack.Unmarshal(data, value); err != nil {
		return fmt.Errorf("msgpack decode %T: %w", value, err)
	}
	return nil
}
