// index.go defines the stable names of the settings field groups.

// Package types provides the module-level vocabulary of vcusettings: the field groups
// a settings store understands, their payloads and the errors the stores return.
package types

import (
	"fmt"
)

// Index identifies a logical field group of a settings store.
//
// The names returned by String are part of the contract with the component layer
// and must stay stable.
type Index int

const (
	IndexUndefined = Index(iota)
	IndexMimes
	IndexClock
	IndexInternalEntropyBuffer
	IndexLatency
	IndexVideoMode
	IndexVideoModesSupported
	IndexBufferCounts
	IndexProfileLevel
	IndexProfileLevelsSupported
	IndexFormat
	IndexFormatsSupported
	IndexResolution
	IndexBufferHandles
	IndexBufferSizes
	IndexBufferBytesAlignments
	IndexBufferContiguities
	IndexDecodedPictureBuffer
	IndexSubFrame
	IndexSequencePictureMode
	IndexSequencePictureModesSupported
	IndexGop
	IndexEntropyCoding
	IndexConstrainedIntraPrediction
	IndexLoopFilter
	IndexBitrate
	IndexBufferMode
	endOfIndex
)

var indexNames = [...]string{
	IndexUndefined:                     "SETTINGS_INDEX_UNDEFINED",
	IndexMimes:                         "SETTINGS_INDEX_MIMES",
	IndexClock:                         "SETTINGS_INDEX_CLOCK",
	IndexInternalEntropyBuffer:         "SETTINGS_INDEX_INTERNAL_ENTROPY_BUFFER",
	IndexLatency:                       "SETTINGS_INDEX_LATENCY",
	IndexVideoMode:                     "SETTINGS_INDEX_VIDEO_MODE",
	IndexVideoModesSupported:           "SETTINGS_INDEX_VIDEO_MODES_SUPPORTED",
	IndexBufferCounts:                  "SETTINGS_INDEX_BUFFER_COUNTS",
	IndexProfileLevel:                  "SETTINGS_INDEX_PROFILE_LEVEL",
	IndexProfileLevelsSupported:        "SETTINGS_INDEX_PROFILES_LEVELS_SUPPORTED",
	IndexFormat:                        "SETTINGS_INDEX_FORMAT",
	IndexFormatsSupported:              "SETTINGS_INDEX_FORMATS_SUPPORTED",
	IndexResolution:                    "SETTINGS_INDEX_RESOLUTION",
	IndexBufferHandles:                 "SETTINGS_INDEX_BUFFER_HANDLES",
	IndexBufferSizes:                   "SETTINGS_INDEX_BUFFER_SIZES",
	IndexBufferBytesAlignments:         "SETTINGS_INDEX_BUFFER_BYTES_ALIGNMENTS",
	IndexBufferContiguities:            "SETTINGS_INDEX_BUFFER_CONTIGUITIES",
	IndexDecodedPictureBuffer:          "SETTINGS_INDEX_DECODED_PICTURE_BUFFER",
	IndexSubFrame:                      "SETTINGS_INDEX_SUBFRAME",
	IndexSequencePictureMode:           "SETTINGS_INDEX_SEQUENCE_PICTURE_MODE",
	IndexSequencePictureModesSupported: "SETTINGS_INDEX_SEQUENCE_PICTURE_MODES_SUPPORTED",
	IndexGop:                           "SETTINGS_INDEX_GOP",
	IndexEntropyCoding:                 "SETTINGS_INDEX_ENTROPY_CODING",
	IndexConstrainedIntraPrediction:    "SETTINGS_INDEX_CONSTRAINED_INTRA_PREDICTION",
	IndexLoopFilter:                    "SETTINGS_INDEX_LOOP_FILTER",
	IndexBitrate:                       "SETTINGS_INDEX_BITRATE",
	IndexBufferMode:                    "SETTINGS_INDEX_BUFFER_MODE",
}

func (idx Index) String() string {
	if idx < 0 || idx >= endOfIndex {
		return fmt.Sprintf("SETTINGS_INDEX_UNKNOWN_%d", int(idx))
	}
	return indexNames[idx]
}

// Indexes returns every defined index except IndexUndefined.
func Indexes() []Index {
	result := make([]Index, 0, int(endOfIndex)-1)
	for idx := IndexUndefined + 1; idx < endOfIndex; idx++ {
		result = append(result, idx)
	}
	return result
}
