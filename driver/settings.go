// settings.go defines the decoder and encoder settings records.

package driver

type Dimension struct {
	Width  int
	Height int
}

// StreamSettings describes the stream a decoder channel expects.
type StreamSettings struct {
	Dim          Dimension
	Chroma       ChromaMode
	BitDepth     int
	Level        int
	ProfileIdc   Profile
	SequenceMode SequenceMode
}

// DecSettings is the decoder channel settings record.
type DecSettings struct {
	Stream StreamSettings

	// StackSize is the number of pictures the entropy decoder may run ahead.
	StackSize int

	// FrameRate/ClkRatio is the frame rate in frames per second.
	FrameRate      int
	ClkRatio       int
	ForceFrameRate bool

	DDRWidth      int
	DecUnit       DecUnit
	DPBMode       DPBMode
	LowLatency    bool
	FBStorageMode FBStorageMode
	Codec         Codec
}

type GopParam struct {
	Mode   GopMode
	Length int
	NumB   int
}

// RCParam is the encoder rate control; bitrates are in bit/s and
// FrameRate/ClkRatio is the frame rate in frames per second.
type RCParam struct {
	Mode          RCMode
	TargetBitRate int
	MaxBitRate    int
	FrameRate     int
	ClkRatio      int
}

// ChannelParam describes one encoder channel.
type ChannelParam struct {
	Width                int
	Height               int
	Chroma               ChromaMode
	BitDepth             int
	Profile              Profile
	Level                int
	HighTier             bool
	EntropyMode          EntropyMode
	FilterOptions        FilterOptions
	ConstrainedIntraPred bool
	Gop                  GopParam
	RC                   RCParam
}

// EncSettings is the encoder channel settings record.
type EncSettings struct {
	Channel       ChannelParam
	FBStorageMode FBStorageMode
	Codec         Codec
}
