// option.go defines the construction options of the stores.

package mediatype

import (
	"github.com/xaionaro-go/vcusettings/driver"
	"github.com/xaionaro-go/vcusettings/types"
)

type OptionCommons struct{}

func (OptionCommons) mediatypeOption() {}

// Option is a construction-time parameter of a store.
type Option interface {
	mediatypeOption()
}

type Options []Option

func OptionLatest[T Option](s Options) (ret T, ok bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if v, ok := s[i].(T); ok {
			return v, true
		}
	}
	return
}

// OptionStrideAlignment overrides the stride (horizontal, bytes) and
// slice height (vertical, rows) alignments of the store.
type OptionStrideAlignment struct {
	OptionCommons
	Alignment types.Stride
}

type OptionBufferHandles struct {
	OptionCommons
	BufferHandles types.BufferHandles
}

type OptionBufferContiguities struct {
	OptionCommons
	BufferContiguities types.BufferContiguities
}

type OptionBufferBytesAlignments struct {
	OptionCommons
	BufferBytesAlignments types.BufferBytesAlignments
}

// OptionFBStorageMode selects the frame buffer layout the hardware uses.
type OptionFBStorageMode struct {
	OptionCommons
	FBStorageMode driver.FBStorageMode
}

// construction holds what Options resolve to; it is fixed for the life of a store.
type construction struct {
	Alignment       types.Stride
	Handles         types.BufferHandles
	Contiguities    types.BufferContiguities
	BytesAlignments types.BufferBytesAlignments
	FBStorageMode   driver.FBStorageMode
}

func (opts Options) construction(defaultAlignment types.Stride) construction {
	c := construction{
		Alignment: defaultAlignment,
		Handles: types.BufferHandles{
			Input:  types.BufferHandleTypeCharPtr,
			Output: types.BufferHandleTypeCharPtr,
		},
		FBStorageMode: driver.FBStorageModeRaster,
	}
	if opt, ok := OptionLatest[OptionStrideAlignment](opts); ok {
		c.Alignment = opt.Alignment
	}
	if opt, ok := OptionLatest[OptionBufferHandles](opts); ok {
		c.Handles = opt.BufferHandles
	}
	if opt, ok := OptionLatest[OptionBufferContiguities](opts); ok {
		c.Contiguities = opt.BufferContiguities
	}
	if opt, ok := OptionLatest[OptionBufferBytesAlignments](opts); ok {
		c.BytesAlignments = opt.BufferBytesAlignments
	}
	if opt, ok := OptionLatest[OptionFBStorageMode](opts); ok {
		c.FBStorageMode = opt.FBStorageMode
	}
	return c
}

// get answers the indices every store serves from its construction parameters.
func (c *construction) get(p types.Param) bool {
	switch p := p.(type) {
	case *types.BufferHandles:
		*p = c.Handles
	case *types.BufferContiguities:
		*p = c.Contiguities
	case *types.BufferBytesAlignments:
		*p = c.BytesAlignments
	default:
		return false
	}
	return true
}
