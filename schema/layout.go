package schema

import (
	"math"
	"reflect"

	"github.com/wippyai/choice/errors"
)

// Layout describes the storage footprint a built schema requires: the
// discriminant width, the payload arena sized for the largest variant, and
// the sentinel bit patterns reserved in the discriminant's range.
type Layout struct {
	DiscSize      uint32 // discriminant width in bytes
	DiscAlign     uint32
	UnionSize     uint32 // payload arena: max payload size, min 1
	UnionAlign    uint32
	PayloadOffset uint32
	Size          uint32 // whole instance footprint

	// Sentinel discriminant values of the chosen width. Never is the
	// all-ones pattern and marks an instance that was never constructed;
	// Moved is all-ones minus one and marks a moved-from donor.
	Never uint32
	Moved uint32
}

// discriminantSize is the smallest width representing the given number of
// states: 1 byte up to 256, 2 bytes up to 65536, else 4.
func discriminantSize(states int) uint32 {
	if states <= 256 {
		return 1
	} else if states <= 65536 {
		return 2
	}
	return 4
}

func alignTo(offset, align uint32) uint32 {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// maxVariants is the largest variant count a 4-byte discriminant can carry
// alongside the two sentinel states.
const maxVariants = math.MaxUint32 - 1

// resolveLayout computes the layout for the declared payload types, nil
// entries standing for payload-less variants. Go's reflect always knows a
// type's size, so the arena is exact: the maximum payload size with a one
// byte floor.
func resolveLayout(path []string, payloads []reflect.Type) (Layout, error) {
	n := len(payloads)
	if n == 0 {
		return Layout{}, errors.EmptySchema(path)
	}
	if uint64(n) > maxVariants {
		return Layout{}, errors.TooManyVariants(path, n, maxVariants)
	}

	discSize := discriminantSize(n + 2)

	maxAlign := discSize
	maxSize := uint32(0)
	for _, t := range payloads {
		if t == nil {
			continue
		}
		if a := uint32(t.Align()); a > maxAlign {
			maxAlign = a
		}
		if s := uint32(t.Size()); s > maxSize {
			maxSize = s
		}
	}

	unionSize := maxSize
	if unionSize == 0 {
		unionSize = 1
	}
	unionAlign := maxAlign
	if unionAlign < 1 {
		unionAlign = 1
	}

	payloadOffset := alignTo(discSize, maxAlign)
	totalSize := alignTo(payloadOffset+maxSize, maxAlign)

	var never uint32
	switch discSize {
	case 1:
		never = math.MaxUint8
	case 2:
		never = math.MaxUint16
	default:
		never = math.MaxUint32
	}

	return Layout{
		DiscSize:      discSize,
		DiscAlign:     discSize,
		UnionSize:     unionSize,
		UnionAlign:    unionAlign,
		PayloadOffset: payloadOffset,
		Size:          totalSize,
		Never:         never,
		Moved:         never - 1,
	}, nil
}
