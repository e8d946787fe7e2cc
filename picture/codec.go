package picture

import (
	"encoding/base64"
	"fmt"
	"math/big"
)

func upperNibble(b byte) byte {
	return b & 0xf0
}

func lowerNibble(b byte) byte {
	return b & 0x0f
}

func (m *Image) pack(b []byte) {
	for i := range b {
		b[i] = m.pix[i<<1]&0x0f<<4 | m.pix[i<<1+1]&0x0f
	}
}

func (m *Image) unpack(b []byte) {
	for i, v := range b {
		m.pix[i<<1] = upperNibble(v) >> 4
		m.pix[i<<1+1] = lowerNibble(v)
	}
}

// Bytes returns the 128 byte binary form of the picture
func (m *Image) Bytes() []byte {
	b := make([]byte, Size)
	m.pack(b)
	return b
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (m *Image) MarshalBinary() ([]byte, error) {
	return m.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface. b
// must be exactly 128 bytes long.
func (m *Image) UnmarshalBinary(b []byte) error {
	if len(b) != Size {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrFormat, len(b), Size)
	}
	m.unpack(b)
	return nil
}

// FromBytes returns the picture held in the binary form b
func FromBytes(b []byte) (*Image, error) {
	m := new(Image)
	if err := m.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return m, nil
}

// Base64 returns the binary form of the picture as standard padded base64
func (m *Image) Base64() string {
	return base64.StdEncoding.EncodeToString(m.Bytes())
}

// FromBase64 returns the picture held in the base64 string s
func FromBase64(s string) (*Image, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return FromBytes(b)
}

// MarshalText implements the encoding.TextMarshaler interface using the
// base64 form
func (m *Image) MarshalText() ([]byte, error) {
	b := make([]byte, EncodedLen)
	base64.StdEncoding.Encode(b, m.Bytes())
	return b, nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (m *Image) UnmarshalText(text []byte) error {
	dup, err := FromBase64(string(text))
	if err != nil {
		return err
	}
	*m = *dup
	return nil
}

// Int returns the binary form of the picture as an unsigned big-endian
// integer
func (m *Image) Int() *big.Int {
	return new(big.Int).SetBytes(m.Bytes())
}

// FromInt returns the picture held in n. Leading zero bytes are implied so
// small values are valid pictures; negative values or those wider than 1024
// bits are not.
func FromInt(n *big.Int) (*Image, error) {
	switch {
	case n == nil:
		return nil, fmt.Errorf("%w: nil integer", ErrFormat)
	case n.Sign() < 0:
		return nil, fmt.Errorf("%w: negative integer", ErrFormat)
	case n.BitLen() > Bits:
		return nil, fmt.Errorf("%w: integer is %d bits, at most %d allowed", ErrFormat, n.BitLen(), Bits)
	}
	return FromBytes(n.FillBytes(make([]byte, Size)))
}
