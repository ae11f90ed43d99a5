// params.go defines the OMX parameter blocks.

package omx

// ProfileLevelParams is OMX_VIDEO_PARAM_PROFILELEVELTYPE. Profile and Level
// hold an AVCProfile/AVCLevel or an HEVCProfile/HEVCLevel depending on the
// port. ProfileIndex selects the entry when enumerating the supported ones.
type ProfileLevelParams struct {
	PortIndex    uint32
	Profile      uint32
	Level        uint32
	ProfileIndex uint32
}

// AVCParams is OMX_VIDEO_PARAM_AVCTYPE.
type AVCParams struct {
	PortIndex                uint32
	SliceHeaderSpacing       uint32
	PFrames                  uint32
	BFrames                  uint32
	UseHadamard              Bool
	RefFrames                uint32
	RefIdx10ActiveMinus1     uint32
	RefIdx11ActiveMinus1     uint32
	EnableUEP                Bool
	EnableFMO                Bool
	EnableASO                Bool
	EnableRS                 Bool
	Profile                  AVCProfile
	Level                    AVCLevel
	AllowedPictureTypes      PictureType
	FrameMBsOnly             Bool
	MBAFF                    Bool
	EntropyCodingCABAC       Bool
	WeightedPPrediction      Bool
	WeightedBipredictionMode uint32
	ConstIpred               Bool
	Direct8x8Inference       Bool
	DirectSpatialTemporal    Bool
	CabacInitIdc             uint32
	LoopFilterMode           AVCLoopFilter
}

// HEVCParams is the HEVC parameter block of the video extensions.
type HEVCParams struct {
	PortIndex      uint32
	PFrames        uint32
	BFrames        uint32
	Profile        HEVCProfile
	Level          HEVCLevel
	ConstIpred     Bool
	LoopFilterMode HEVCLoopFilter
}
