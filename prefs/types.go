package prefs

import (
	"errors"
	"strconv"
)

// Version of the preference file layout written by Save.
const Version = "1.4"

// Well-known keys.
const (
	KeyPrefsVersion     = "POSERPREFS_VERSION"
	KeyHostVersion      = "POSER_VERSION"
	KeyLastOpenSavePath = "LAST_OPEN_SAVE_PATH"
	KeyUseCompression   = "USE_COMPRESSION"
	KeyUnitScaleFactor  = "UNIT_SCALE_FACTOR"
	KeyUnitScaleType    = "UNIT_SCALE_TYPE"
)

// HostPrefsName is the host's own preference file.
const HostPrefsName = "Poser Prefs"

// Sentinel errors.
var (
	// ErrSaveDisabled indicates Save on preferences created without a name.
	ErrSaveDisabled = errors.New("prefs: save disabled for unnamed preferences")

	// ErrNoSuchKey indicates a lookup of a key that was never set or loaded.
	ErrNoSuchKey = errors.New("prefs: no such key")

	// ErrNotPath indicates UseDefaultLibrary on a non-string value.
	ErrNotPath = errors.New("prefs: value is not a path")
)

// FormatVersion renders a host version number the way it is stored.
func FormatVersion(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
