package nbt

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrTooDeep is returned when nesting exceeds the reader's depth limit.
var ErrTooDeep = errors.New("nbt: nesting too deep")

const maxDepth = 64

// Compound is a decoded compound tag.
type Compound map[string]any

// Read decodes one named root tag from r. The root must be a compound.
// Values decode as int8, int16, int32, int64, float32, float64, []byte,
// string, []any, Compound and []int32.
func Read(r io.Reader) (string, Compound, error) {
	var typ [1]byte
	if _, err := io.ReadFull(r, typ[:]); err != nil {
		return "", nil, fmt.Errorf("read root tag type: %w", err)
	}
	if typ[0] != TagCompound {
		return "", nil, fmt.Errorf("root tag is type %d, want compound", typ[0])
	}
	name, err := readString(r)
	if err != nil {
		return "", nil, fmt.Errorf("read root name: %w", err)
	}
	v, err := readPayload(r, TagCompound, 0)
	if err != nil {
		return "", nil, err
	}
	return name, v.(Compound), nil
}

func readString(r io.Reader) (string, error) {
	var n uint16
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func readLength(r io.Reader) (int, error) {
	var n int32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative length %d", n)
	}
	return int(n), nil
}

func readPayload(r io.Reader, typ byte, depth int) (any, error) {
	if depth > maxDepth {
		return nil, ErrTooDeep
	}
	switch typ {
	case TagByte:
		var v int8
		err := binary.Read(r, binary.BigEndian, &v)
		return v, err
	case TagShort:
		var v int16
		err := binary.Read(r, binary.BigEndian, &v)
		return v, err
	case TagInt:
		var v int32
		err := binary.Read(r, binary.BigEndian, &v)
		return v, err
	case TagLong:
		var v int64
		err := binary.Read(r, binary.BigEndian, &v)
		return v, err
	case TagFloat:
		var v uint32
		err := binary.Read(r, binary.BigEndian, &v)
		return math.Float32frombits(v), err
	case TagDouble:
		var v uint64
		err := binary.Read(r, binary.BigEndian, &v)
		return math.Float64frombits(v), err
	case TagByteArray:
		n, err := readLength(r)
		if err != nil {
			return nil, err
		}
		buf := make([]byte, n)
		_, err = io.ReadFull(r, buf)
		return buf, err
	case TagString:
		return readString(r)
	case TagList:
		var elem [1]byte
		if _, err := io.ReadFull(r, elem[:]); err != nil {
			return nil, err
		}
		n, err := readLength(r)
		if err != nil {
			return nil, err
		}
		list := make([]any, 0, n)
		for i := 0; i < n; i++ {
			v, err := readPayload(r, elem[0], depth+1)
			if err != nil {
				return nil, fmt.Errorf("list element %d: %w", i, err)
			}
			list = append(list, v)
		}
		return list, nil
	case TagCompound:
		c := Compound{}
		for {
			var t [1]byte
			if _, err := io.ReadFull(r, t[:]); err != nil {
				return nil, err
			}
			if t[0] == TagEnd {
				return c, nil
			}
			name, err := readString(r)
			if err != nil {
				return nil, err
			}
			v, err := readPayload(r, t[0], depth+1)
			if err != nil {
				return nil, fmt.Errorf("tag %q: %w", name, err)
			}
			c[name] = v
		}
	case TagIntArray:
		n, err := readLength(r)
		if err != nil {
			return nil, err
		}
		arr := make([]int32, n)
		err = binary.Read(r, binary.BigEndian, arr)
		return arr, err
	default:
		return nil, fmt.Errorf("unknown tag type %d", typ)
	}
}
