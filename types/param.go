// param.go defines the Param sum type and its constructor.

package types

import (
	"fmt"
	"reflect"
)

// Param is a typed payload of one field group. Get fills it in, Set reads it.
//
// Only pointers to the payload types of this package implement Param.
type Param interface {
	fmt.Stringer
	Index() Index
	settingsParam()
}

// IsNil reports whether p carries no payload (nil interface or typed nil pointer).
func IsNil(p Param) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// NewParam allocates an empty payload for the given index.
func NewParam(idx Index) (Param, error) {
	switch idx {
	case IndexMimes:
		return &Mimes{}, nil
	case IndexClock:
		return &Clock{}, nil
	case IndexInternalEntropyBuffer:
		return ptr(InternalEntropyBuffer(0)), nil
	case IndexLatency:
		return ptr(Latency(0)), nil
	case IndexVideoMode:
		return ptr(VideoModeUndefined), nil
	case IndexVideoModesSupported:
		return &VideoModesSupported{}, nil
	case IndexBufferCounts:
		return &BufferCounts{}, nil
	case IndexProfileLevel:
		return &ProfileLevel{}, nil
	case IndexProfileLevelsSupported:
		return &ProfileLevelsSupported{}, nil
	case IndexFormat:
		return &Format{}, nil
	case IndexFormatsSupported:
		return &FormatsSupported{}, nil
	case IndexResolution:
		return &Resolution{}, nil
	case IndexBufferHandles:
		return &BufferHandles{}, nil
	case IndexBufferSizes:
		return &BufferSizes{}, nil
	case IndexBufferBytesAlignments:
		return &BufferBytesAlignments{}, nil
	case IndexBufferContiguities:
		return &BufferContiguities{}, nil
	case IndexDecodedPictureBuffer:
		return ptr(DecodedPictureBufferUndefined), nil
	case IndexSubFrame:
		return ptr(SubFrame(false)), nil
	case IndexSequencePictureMode:
		return ptr(SequencePictureModeUndefined), nil
	case IndexSequencePictureModesSupported:
		return &SequencePictureModesSupported{}, nil
	case IndexGop:
		return &Gop{}, nil
	case IndexEntropyCoding:
		return ptr(EntropyCodingUndefined), nil
	case IndexConstrainedIntraPrediction:
		return ptr(ConstrainedIntraPrediction(false)), nil
	case IndexLoopFilter:
		return ptr(LoopFilterUndefined), nil
	case IndexBitrate:
		return &Bitrate{}, nil
	case IndexBufferMode:
		return ptr(BufferModeUndefined), nil
	}
	return nil, ErrBadIndex{Index: idx}
}

func ptr[T any](in T) *T {
	return &in
}

func (*Mimes) Index() Index { return IndexMimes }
func (*Clock) Index() Index { return IndexClock }
func (*InternalEntropyBuffer) Index() Index { return IndexInternalEntropyBuffer }
func (*Latency) Index() Index { return IndexLatency }
func (*VideoMode) Index() Index { return IndexVideoMode }
func (*VideoModesSupported) Index() Index { return IndexVideoModesSupported }
func (*BufferCounts) Index() Index { return IndexBufferCounts }
func (*ProfileLevel) Index() Index { return IndexProfileLevel }
func (*ProfileLevelsSupported) Index() Index { return IndexProfileLevelsSupported }
func (*Format) Index() Index { return IndexFormat }
func (*FormatsSupported) Index() Index { return IndexFormatsSupported }
func (*Resolution) Index() Index { return IndexResolution }
func (*BufferHandles) Index() Index { return IndexBufferHandles }
func (*BufferSizes) Index() Index { return IndexBufferSizes }
func (*BufferBytesAlignments) Index() Index { return IndexBufferBytesAlignments }
func (*BufferContiguities) Index() Index { return IndexBufferContiguities }
func (*DecodedPictureBuffer) Index() Index { return IndexDecodedPictureBuffer }
func (*SubFrame) Index() Index { return IndexSubFrame }
func (*SequencePictureMode) Index() Index { return IndexSequencePictureMode }
func (*SequencePictureModesSupported) Index() Index { return IndexSequencePictureModesSupported }
func (*Gop) Index() Index { return IndexGop }
func (*EntropyCoding) Index() Index { return IndexEntropyCoding }
func (*ConstrainedIntraPrediction) Index() Index { return IndexConstrainedIntraPrediction }
func (*LoopFilter) Index() Index { return IndexLoopFilter }
func (*Bitrate) Index() Index { return IndexBitrate }
func (*BufferMode) Index() Index { return IndexBufferMode }

func (*Mimes) settingsParam() {}
func (*Clock) settingsParam() {}
func (*InternalEntropyBuffer) settingsParam() {}
func (*Latency) settingsParam() {}
func (*VideoMode) settingsParam() {}
func (*VideoModesSupported) settingsParam() {}
func (*BufferCounts) settingsParam() {}
func (*ProfileLevel) settingsParam() {}
func (*ProfileLevelsSupported) settingsParam() {}
func (*Format) settingsParam() {}
func (*FormatsSupported) settingsParam() {}
func (*Resolution) settingsParam() {}
func (*BufferHandles) settingsParam() {}
func (*BufferSizes) settingsParam() {}
func (*BufferBytesAlignments) settingsParam() {}
func (*BufferContiguities) settingsParam() {}
func (*DecodedPictureBuffer) settingsParam() {}
func (*SubFrame) settingsParam() {}
func (*SequencePictureMode) settingsParam() {}
func (*SequencePictureModesSupported) settingsParam() {}
func (*Gop) settingsParam() {}
func (*EntropyCoding) settingsParam() {}
func (*ConstrainedIntraPrediction) settingsParam() {}
func (*LoopFilter) settingsParam() {}
func (*Bitrate) settingsParam() {}
func (*BufferMode) settingsParam() {}
