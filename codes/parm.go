package codes

import "github.com/GeoffIX/PoserLib/host"

// Parameter type codes.
const (
	ParmXRot               = 1
	ParmYRot               = 2
	ParmZRot               = 3
	ParmXTran              = 4
	ParmYTran              = 5
	ParmZTran              = 6
	ParmXScale             = 7
	ParmYScale             = 8
	ParmZScale             = 9
	ParmAScale             = 10
	ParmFocal              = 12
	ParmHither             = 14
	ParmYon                = 15
	ParmKdRed              = 23
	ParmKdGreen            = 24
	ParmKdBlue             = 25
	ParmTaperX             = 26
	ParmTaperY             = 27
	ParmTaperZ             = 28
	ParmKdIntensity        = 29
	ParmDepthMapSize       = 40
	ParmDepthMapStrength   = 41
	ParmTarget             = 42
	ParmGeomChan           = 43
	ParmCenter             = 44
	ParmCurve              = 45
	ParmGrasp              = 46
	ParmTGrasp             = 47
	ParmSpread             = 48
	ParmDeformerProp       = 49
	ParmWaveAmplitude      = 50
	ParmWaveFrequency      = 51
	ParmWaveLength         = 52
	ParmWaveStretch        = 53
	ParmWaveSinusoidal     = 54
	ParmWaveSquare         = 55
	ParmWaveTriangular     = 56
	ParmWaveTurbulence     = 57
	ParmLiteFalloffStart   = 59
	ParmLiteFalloffEnd     = 60
	ParmLiteAttenStart     = 61
	ParmWavePhase          = 62
	ParmWaveAmplitudeNoise = 63
	ParmWaveOffset         = 64
	ParmValue              = 65
	ParmPointAt            = 66
	ParmLiteAttenEnd       = 67
	ParmClothDynamics      = 68
	ParmHairDynamics       = 69
	ParmDynamicParent      = 70
	ParmSimpleFloat        = 103
	ParmFocusDistance      = 104
	ParmFStop              = 105
	ParmShutterOpen        = 106
	ParmShutterClose       = 107
	ParmSoftDynamics       = 112
)

// ParmCodeName maps a parameter type code to its scene-file keyword.
var ParmCodeName = map[int]string{
	ParmXRot:               "rotateX",
	ParmYRot:               "rotateY",
	ParmZRot:               "rotateZ",
	ParmXTran:              "translateX",
	ParmYTran:              "translateY",
	ParmZTran:              "translateZ",
	ParmXScale:             "scaleX",
	ParmYScale:             "scaleY",
	ParmZScale:             "scaleZ",
	ParmAScale:             "scale",
	11:                     "aspect",
	ParmFocal:              "focal",
	13:                     "aperture",
	ParmHither:             "hither",
	ParmYon:                "yon",
	17:                     "xOffsetA",
	18:                     "xOffsetB",
	19:                     "yOffsetA",
	20:                     "yOffsetB",
	21:                     "zOffsetA",
	22:                     "zOffsetB",
	ParmKdRed:              "kdRed",
	ParmKdGreen:            "kdGreen",
	ParmKdBlue:             "kdBlue",
	ParmTaperX:             "taperX",
	ParmTaperY:             "taperY",
	ParmTaperZ:             "taperZ",
	ParmKdIntensity:        "kdIntensity",
	30:                     "jointX",
	31:                     "jointY",
	32:                     "jointZ",
	33:                     "twistX",
	34:                     "twistY",
	35:                     "twistZ",
	36:                     "smoothScale",
	37:                     "camAutoCenterX",
	38:                     "camAutoCenterY",
	39:                     "camAutoScale",
	ParmDepthMapSize:       "depthMapSize",
	ParmDepthMapStrength:   "depthMapStrength",
	ParmTarget:             "targetGeom",
	ParmGeomChan:           "geomChan",
	ParmCenter:             "kParmCodeCENTER",
	ParmCurve:              "curve",
	ParmGrasp:              "handGrasp",
	ParmTGrasp:             "thumbGrasp",
	ParmSpread:             "handSpread",
	ParmDeformerProp:       "deformerPropChan",
	ParmWaveAmplitude:      "waveAmplitude",
	ParmWaveFrequency:      "waveFrequency",
	ParmWaveLength:         "waveLength",
	ParmWaveStretch:        "waveStretch",
	ParmWaveSinusoidal:     "waveSinusoidal",
	ParmWaveSquare:         "waveRectangular",
	ParmWaveTriangular:     "waveTriangular",
	ParmWaveTurbulence:     "waveTurbulence",
	58:                     "camAutoFocal",
	ParmLiteFalloffStart:   "liteFalloffStart",
	ParmLiteFalloffEnd:     "liteFalloffEnd",
	ParmLiteAttenStart:     "liteAttenStart",
	ParmWavePhase:          "wavePhase",
	ParmWaveAmplitudeNoise: "waveAmplitudeNoise",
	ParmWaveOffset:         "waveOffset",
	ParmValue:              "valueParm",
	ParmPointAt:            "pointAtParm",
	ParmLiteAttenEnd:       "liteAttenEnd",
	ParmClothDynamics:      "clothDynamicsParm",
	ParmHairDynamics:       "hairDynamicsParm",
	ParmDynamicParent:      "kParmCodeDYNAMICPARENT",
	93:                     "perspective",
	94:                     "forceAmplitude",
	102:                    "shaderNodeParm",
	ParmSimpleFloat:        "simpleFloat",
	ParmFocusDistance:      "focusDistance",
	ParmFStop:              "fStop",
	ParmShutterOpen:        "shutterOpen",
	ParmShutterClose:       "shutterClose",
	109:                    "visibility",
	111:                    "constraintParm",
	ParmSoftDynamics:       "kParmCodeSOFTDYNAMICS",
	118:                    "orientationX",
	119:                    "orientationY",
	120:                    "orientationZ",
	122:                    "apertureRatio",
	123:                    "apertureBlades",
	124:                    "apertureBladesRotation",
}

// ParmName returns the keyword for code, or "" when unknown.
func ParmName(code int) string { return ParmCodeName[code] }

// FloatSubTypeName names the subtypes of simpleFloat parameters.
var FloatSubTypeName = map[int]string{
	0: "SpreadAngle",
	1: "DistRange",
	2: "TurbulenceStrength",
}

// Node input codes.
const (
	NodeInputNone    = -1
	NodeInputFloat   = 0
	NodeInputColor   = 1
	NodeInputVector  = 2
	NodeInputString  = 3
	NodeInputBoolean = 4
	NodeInputInteger = 5
	NodeInputMenu    = 6
)

// NodeInputCodeName maps a material node input code to its display name.
var NodeInputCodeName = map[int]string{
	NodeInputNone:    "None",
	NodeInputFloat:   "Float",
	NodeInputColor:   "Color",
	NodeInputVector:  "Vector",
	NodeInputString:  "String",
	NodeInputBoolean: "Boolean",
	NodeInputInteger: "Integer",
	NodeInputMenu:    "Menu",
}

// Axis maps for the transform parameter codes.
var (
	ScaleAxis = map[int]string{ParmXScale: "X", ParmYScale: "Y", ParmZScale: "Z"}
	RotAxis   = map[int]string{ParmXRot: "X", ParmYRot: "Y", ParmZRot: "Z"}
	TransAxis = map[int]string{ParmXTran: "X", ParmYTran: "Y", ParmZTran: "Z"}
)

// ScaleParmCodes lists the scale codes, uniform scale last.
var ScaleParmCodes = []int{ParmXScale, ParmYScale, ParmZScale, ParmAScale}

// CameraParmCodes lists the parameters that aim a camera.
var CameraParmCodes = []int{
	ParmFocal, ParmXRot, ParmYRot, ParmZRot,
	ParmXTran, ParmYTran, ParmZTran, ParmFocusDistance,
}

// SimpleValueOps lists the operation types configured by type and source
// alone.
var SimpleValueOps = []host.ValueOpType{
	host.ValueOpPlus,
	host.ValueOpMinus,
	host.ValueOpTimes,
	host.ValueOpDivideBy,
	host.ValueOpDivideInto,
}
