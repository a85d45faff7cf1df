package codes

import (
	"strings"

	"github.com/GeoffIX/PoserLib/host"
)

// Camera parameter names; these parameters have no distinguishing type code.
const (
	CameraPerspectiveParm = "Perspective"
	CameraUnitScaleParm   = "UnitScaleFactor"
	CameraHyperFocusParm  = "HyperFocus"
	CameraFarFocusParm    = "FarFocus"
	CameraDepthOfField    = "DepthOfField"
)

// CameraNames lists the internal names of the host's standard cameras.
var CameraNames = []string{
	"MAIN_CAMERA", "AUX_CAMERA", "POSE_CAMERA", "STD_CAMERA", "SIDE_CAMERA",
	"RIGHT_CAMERA", "TOP_CAMERA", "BOTTOM_CAMERA", "FRONT_CAMERA", "BACK_CAMERA",
	"FACE_CAMERA", "LHAND_CAMERA", "RHAND_CAMERA",
}

// controlPropPrefixes identify control props by internal name on hosts that
// cannot answer IsControlProp.
var controlPropPrefixes = []string{"FocusDistanceControl", "CenterOfMass", "GoalCenterOfMass"}

// ActorTypeName returns the keyword that precedes the actor in scene files:
// actor, camera, light, baseProp, magnetDeformerProp, hairProp,
// sphereZoneProp, controlProp, groupingObject or prop.
// Actors that do not expose host.ActorKind report "actor".
func ActorTypeName(a host.Actor) string {
	k, ok := a.(host.ActorKind)
	if !ok {
		return "actor"
	}

	switch {
	case k.IsBodyPart():
		return "actor"
	case k.IsCamera():
		return "camera"
	case k.IsLight():
		return "light"
	case !k.IsProp():
		return "actor"
	case k.IsBase():
		return "baseProp"
	case k.IsDeformer():
		return "magnetDeformerProp"
	case k.IsHairProp():
		return "hairProp"
	case k.IsZone():
		return "sphereZoneProp"
	}

	if isControlProp(a) {
		return "controlProp"
	}
	if isGrouping(k.GeomFileName()) {
		return "groupingObject"
	}

	return "prop"
}

func isControlProp(a host.Actor) bool {
	if c, ok := a.(host.ControlPropChecker); ok {
		if v, err := c.IsControlProp(); err == nil {
			return v
		}
	}
	prefix, _, _ := strings.Cut(a.InternalName(), ":")
	for _, p := range controlPropPrefixes {
		if prefix == p {
			return true
		}
	}

	return false
}

// isGrouping reports whether a geometry path names the grouping object
// geometry. Both path separators are accepted.
func isGrouping(path string) bool {
	if path == "" {
		return false
	}
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		path = path[i+1:]
	}
	if i := strings.LastIndexByte(path, '.'); i > 0 {
		path = path[:i]
	}

	return path == "grouping"
}

// CameraModel is the projection model of a camera.
type CameraModel int

// Camera models. Ortho is a variant of the orbiting Poser model.
const (
	NotCamera   CameraModel = -1
	CameraPoser CameraModel = 0
	CameraReal  CameraModel = 1
	CameraDepth CameraModel = 2
	CameraOrtho CameraModel = 3
)

// String returns the model keyword; NotCamera yields "".
func (m CameraModel) String() string {
	switch m {
	case CameraPoser:
		return "poser"
	case CameraReal:
		return "real"
	case CameraDepth:
		return "depth"
	case CameraOrtho:
		return "ortho"
	default:
		return ""
	}
}

// Camera infers the camera model from the camera's parameters:
// depth cameras have no rotation, ortho cameras have zero focal length and a
// hidden z translation, real (dolly) cameras hide their perspective
// parameter.
func Camera(a host.Actor) CameraModel {
	k, ok := a.(host.ActorKind)
	if !ok || !k.IsCamera() {
		return NotCamera
	}
	if _, err := a.ParameterByCode(ParmXRot); err != nil {
		return CameraDepth
	}
	if focal, err := a.ParameterByCode(ParmFocal); err == nil && focal.Value() == 0 {
		if z, err := a.ParameterByCode(ParmZTran); err == nil && z.Hidden() {
			return CameraOrtho
		}
	}
	if p, err := a.Parameter(CameraPerspectiveParm); err == nil && p.Hidden() {
		return CameraReal
	}

	return CameraPoser
}

// UserCreated reports whether a is a non-depth camera whose internal name is
// not one of the standard cameras.
func UserCreated(a host.Actor) bool {
	model := Camera(a)
	if model == NotCamera || model == CameraDepth {
		return false
	}
	for _, n := range CameraNames {
		if a.InternalName() == n {
			return false
		}
	}

	return true
}
