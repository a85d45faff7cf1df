// Package units converts lengths between Poser native units (PNU),
// millimetres and the user interface unit chosen in the host preferences,
// and evaluates the thin-lens depth of field formulas used for camera
// focus parameters.
//
// One PNU is 100 inches, 2621.28 mm. The UI scale factor and unit type are
// read from the host preference file through LoadSettings; a zero Settings
// value is not usable, start from DefaultSettings.
//
// Optics (all lengths in millimetres, N is the f-stop, c the circle of
// confusion):
//
//	HyperFocal(f, N, c)    = f + f²/(N·c)
//	FStop(f, s, c)         = f²/((s − f)·c)
//	NearFocus(f, N, c, s)  = s(H − f)/(H + s − 2f)
//	FarFocus(f, N, c, s)   = s(H − f)/(H − s)
package units
