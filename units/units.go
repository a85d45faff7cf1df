package units

import (
	"errors"
	"fmt"

	"github.com/GeoffIX/PoserLib/prefs"
)

// MillimetresPerPNU is the length of one Poser native unit.
const MillimetresPerPNU = 2621.28

// CircleOfConfusion is the default circle of confusion in millimetres.
const CircleOfConfusion = 0.03

// Type is a user interface length unit.
type Type int

// Unit types, in host preference order.
const (
	PNU Type = iota
	Inches
	Feet
	Millimetres
	Centimetres
	Metres
)

var (
	typeNames = []string{"Poser native units", "Inches", "Feet", "Millimetres", "Centimetres", "Metres"}
	typeAbbr  = []string{"PNU", `"`, "'", "mm", "cm", "m"}
)

// ErrUnknownType indicates a unit type outside PNU..Metres.
var ErrUnknownType = errors.New("units: unknown unit type")

// Valid reports whether t is a known unit type.
func (t Type) Valid() bool { return t >= PNU && t <= Metres }

// String returns the unit's display name.
func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}

	return typeNames[t]
}

// Abbreviation returns the unit's short symbol.
func (t Type) Abbreviation() string {
	if !t.Valid() {
		return ""
	}

	return typeAbbr[t]
}

// Settings is the UI unit configuration.
type Settings struct {
	// ScaleFactor is UI units per PNU.
	ScaleFactor float64
	Type        Type
	// UseCompression mirrors the host's compressed-save preference.
	UseCompression bool
}

// DefaultSettings returns PNU with a scale of one and compression off.
func DefaultSettings() Settings {
	return Settings{ScaleFactor: 1, Type: PNU}
}

// PNUToUnits converts a length in PNU to UI units.
func (s Settings) PNUToUnits(pnu float64) float64 { return pnu * s.ScaleFactor }

// UnitsToPNU converts a length in UI units to PNU.
func (s Settings) UnitsToPNU(u float64) float64 { return u / s.ScaleFactor }

// MillimetresToPNU converts millimetres to PNU.
func MillimetresToPNU(mm float64) float64 { return mm / MillimetresPerPNU }

// PNUToMillimetres converts PNU to millimetres.
func PNUToMillimetres(pnu float64) float64 { return pnu * MillimetresPerPNU }

// LoadSettings reads the unit keys from p, keeping defaults for keys that
// are absent.
func LoadSettings(p *prefs.Preferences) (Settings, error) {
	s := DefaultSettings()
	if _, ok := p.Get(prefs.KeyUnitScaleFactor); ok {
		f, err := p.Float(prefs.KeyUnitScaleFactor)
		if err != nil {
			return s, fmt.Errorf("units: LoadSettings: %w", err)
		}
		if f == 0 {
			return s, fmt.Errorf("units: LoadSettings: zero %s", prefs.KeyUnitScaleFactor)
		}
		s.ScaleFactor = f
	}
	if _, ok := p.Get(prefs.KeyUnitScaleType); ok {
		n, err := p.Int(prefs.KeyUnitScaleType)
		if err != nil {
			return s, fmt.Errorf("units: LoadSettings: %w", err)
		}
		if !Type(n).Valid() {
			return s, fmt.Errorf("units: LoadSettings: %d: %w", n, ErrUnknownType)
		}
		s.Type = Type(n)
	}
	if _, ok := p.Get(prefs.KeyUseCompression); ok {
		n, err := p.Int(prefs.KeyUseCompression)
		if err != nil {
			return s, fmt.Errorf("units: LoadSettings: %w", err)
		}
		s.UseCompression = n != 0
	}

	return s, nil
}

// Register seeds p with the unit keys at their default values so Load reads
// them from the host file.
func Register(p *prefs.Preferences) {
	d := DefaultSettings()
	p.Set(prefs.KeyUnitScaleFactor, d.ScaleFactor)
	p.Set(prefs.KeyUnitScaleType, int(d.Type))
	p.Set(prefs.KeyUseCompression, 0)
}
