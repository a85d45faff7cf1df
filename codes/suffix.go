package codes

import "strings"

// Library file kinds, indexing Compressed and Uncompressed.
const (
	CameraSuffix = iota
	FaceSuffix
	FigureSuffix
	HairSuffix
	HandSuffix
	LightSuffix
	PoseSuffix
	PropSuffix
	SceneSuffix
)

// Library file suffixes by kind.
var (
	Compressed   = []string{".cmz", ".fcz", ".crz", ".hrz", ".hdz", ".ltz", ".p2z", ".ppz", ".pzz"}
	Uncompressed = []string{".cm2", ".fc2", ".cr2", ".hr2", ".hd2", ".lt2", ".pz2", ".pp2", ".pz3"}
)

var sameSuffix = map[string]string{
	".cm2": ".cm2", ".cmz": ".cm2",
	".cr2": ".cr2", ".crz": ".cr2",
	".fc2": ".fc2", ".fcz": ".fc2",
	".hd2": ".hd2", ".hdz": ".hd2",
	".hr2": ".hr2", ".hrz": ".hr2",
	".lt2": ".lt2", ".ltz": ".lt2",
	".mc6": ".mc6", ".mcz": ".mc6",
	".mt5": ".mt5", ".mz5": ".mt5",
	".obj": ".obj", ".obz": ".obj",
	".pz2": ".pz2", ".p2z": ".pz2",
	".pz3": ".pz3", ".pzz": ".pz3",
}

var otherSuffix = map[string]string{
	".cm2": ".cmz", ".cmz": ".cm2",
	".cr2": ".crz", ".crz": ".cr2",
	".fc2": ".fcz", ".fcz": ".fc2",
	".hd2": ".hdz", ".hdz": ".hd2",
	".hr2": ".hrz", ".hrz": ".hr2",
	".lt2": ".ltz", ".ltz": ".lt2",
	".mc6": ".mcz", ".mcz": ".mc6",
	".mt5": ".mz5", ".mz5": ".mt5",
	".obj": ".obz", ".obz": ".obj",
	".pz2": ".p2z", ".p2z": ".pz2",
	".pz3": ".pzz", ".pzz": ".pz3",
}

// SameSuffix maps any library suffix to its uncompressed form.
// Matching is case-insensitive; unknown suffixes return "", false.
func SameSuffix(suffix string) (string, bool) {
	s, ok := sameSuffix[strings.ToLower(suffix)]
	return s, ok
}

// OtherSuffix maps a library suffix to its opposite compression form.
func OtherSuffix(suffix string) (string, bool) {
	s, ok := otherSuffix[strings.ToLower(suffix)]
	return s, ok
}

// Suffix returns the library suffix for kind, compressed or not.
func Suffix(kind int, compressed bool) (string, bool) {
	if kind < 0 || kind >= len(Uncompressed) {
		return "", false
	}
	if compressed {
		return Compressed[kind], true
	}

	return Uncompressed[kind], true
}
