package poolprobe

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Serialization constants and errors.
const (
	// serializeVersion is the current serialization format version.
	serializeVersion byte = 1

	// headerSize is the size of the serialization header in bytes.
	// Version (1) + Min (8) + Max (8) + Count (8) = 25 bytes
	headerSize = 25

	// valueSize is the encoded size of one pool value.
	valueSize = 8
)

var (
	// ErrInvalidData is returned when the serialized data is invalid or corrupted.
	ErrInvalidData = errors.New("poolprobe: invalid serialized data")

	// ErrUnsupportedVersion is returned when the serialization version is not supported.
	ErrUnsupportedVersion = errors.New("poolprobe: unsupported serialization version")
)

// MarshalBinary serializes the pool to a byte slice.
// The serialized format is:
//   - Version (1 byte): serialization format version
//   - Min (8 bytes): lower bound (little-endian int64)
//   - Max (8 bytes): upper bound, inclusive (little-endian int64)
//   - Count (8 bytes): number of values (little-endian uint64)
//   - Values (count * 8 bytes): the values in order (little-endian int64s)
func (p *Pool) MarshalBinary() ([]byte, error) {
	return p.encode(), nil
}

// encode writes the binary form of the pool. A nil pool encodes as empty.
func (p *Pool) encode() []byte {
	var values []int
	var lo, hi int
	if p != nil {
		values, lo, hi = p.values, p.min, p.max
	}

	buf := make([]byte, headerSize+len(values)*valueSize)

	buf[0] = serializeVersion
	binary.LittleEndian.PutUint64(buf[1:9], uint64(int64(lo)))
	binary.LittleEndian.PutUint64(buf[9:17], uint64(int64(hi)))
	binary.LittleEndian.PutUint64(buf[17:25], uint64(len(values)))

	offset := headerSize
	for _, v := range values {
		binary.LittleEndian.PutUint64(buf[offset:offset+valueSize], uint64(int64(v)))
		offset += valueSize
	}

	return buf
}

// UnmarshalBinary deserializes a pool from a byte slice.
// Returns an error if the data is invalid or corrupted.
func UnmarshalBinary(data []byte) (*Pool, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: data too short (got %d bytes, need at least %d)", ErrInvalidData, len(data), headerSize)
	}

	version := data[0]
	if version != serializeVersion {
		return nil, fmt.Errorf("%w: got version %d, expected %d", ErrUnsupportedVersion, version, serializeVersion)
	}

	lo := int(int64(binary.LittleEndian.Uint64(data[1:9])))
	hi := int(int64(binary.LittleEndian.Uint64(data[9:17])))
	count := binary.LittleEndian.Uint64(data[17:25])

	if lo > hi {
		return nil, fmt.Errorf("%w: min %d is greater than max %d", ErrInvalidData, lo, hi)
	}

	// Bound count before multiplying so the length check cannot overflow.
	body := uint64(len(data) - headerSize)
	if count > body/valueSize || count*valueSize != body {
		return nil, fmt.Errorf("%w: data length mismatch (got %d bytes, expected %d values)", ErrInvalidData, len(data), count)
	}

	values := make([]int, count)
	offset := headerSize
	for i := range values {
		v := int(int64(binary.LittleEndian.Uint64(data[offset : offset+valueSize])))
		if v < lo || v > hi {
			return nil, fmt.Errorf("%w: value %d at index %d outside [%d, %d]", ErrInvalidData, v, i, lo, hi)
		}
		values[i] = v
		offset += valueSize
	}

	return &Pool{values: values, min: lo, max: hi}, nil
}
