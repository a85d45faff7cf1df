// Package prefs reads and writes script preference files in the host's
// preference format: one "KEY value" pair per line, string values double
// quoted.
//
// A Preferences value knows the preference directory and its own file name.
// Load looks for that file first and falls back to the host's own
// "Poser Prefs" file, so a script can pick up LAST_OPEN_SAVE_PATH and the
// unit settings before it has ever saved. Only keys registered before Load
// are read unless loadExtra is set. Save never touches the host's file: a
// Preferences created without a name refuses to save.
//
// Keys are kept in insertion order and written back in that order.
package prefs
