// File: prefs.go
// Role: Preferences load/save and value access.
// Policy:
//   - Values loaded from a file are strings; typed values set by callers
//     keep their type and are written bare.
//   - Save writes the whole file in one os.WriteFile call.

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Preferences is an ordered set of preference values bound to a file.
type Preferences struct {
	// Dir is the preference directory.
	Dir string
	// Name is the preference file name; empty means the host's own file,
	// read-only.
	Name string
	// Library is the folder under Runtime/Libraries used by
	// UseDefaultLibrary.
	Library string

	keys   []string
	values map[string]any
}

// New returns preferences seeded with the prefs and host version keys.
func New(dir, name, library string, hostVersion float64) *Preferences {
	p := &Preferences{Dir: dir, Name: name, Library: library, values: map[string]any{}}
	p.Set(KeyPrefsVersion, Version)
	p.Set(KeyHostVersion, FormatVersion(hostVersion))

	return p
}

// Path returns the file Save writes to, or the host file for unnamed
// preferences.
func (p *Preferences) Path() string {
	if p.Name == "" {
		return filepath.Join(p.Dir, HostPrefsName)
	}

	return filepath.Join(p.Dir, p.Name)
}

// Set stores v under key, appending key if it is new.
func (p *Preferences) Set(key string, v any) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = v
}

// Get returns the value of key.
func (p *Preferences) Get(key string) (any, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Keys returns the keys in order.
func (p *Preferences) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)

	return out
}

// String returns the value of key formatted as text.
func (p *Preferences) String(key string) (string, error) {
	v, ok := p.values[key]
	if !ok {
		return "", fmt.Errorf("prefs: %s: %w", key, ErrNoSuchKey)
	}
	if s, ok := v.(string); ok {
		return s, nil
	}

	return fmt.Sprint(v), nil
}

// Float parses the value of key as a float.
func (p *Preferences) Float(key string) (float64, error) {
	s, err := p.String(key)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("prefs: %s: %w", key, err)
	}

	return f, nil
}

// Int parses the value of key as an integer. Values written as floats
// ("1.0") are accepted when integral.
func (p *Preferences) Int(key string) (int, error) {
	f, err := p.Float(key)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, fmt.Errorf("prefs: %s: %v is not an integer", key, f)
	}

	return int(f), nil
}

// Load reads the named file, or the host's file when the named one does not
// exist, and returns the path actually read. Neither file existing is not an
// error; the returned path is then empty.
func (p *Preferences) Load(loadExtra bool) (string, error) {
	candidates := []string{p.Path()}
	if p.Name != "" {
		candidates = append(candidates, filepath.Join(p.Dir, HostPrefsName))
	}

	for _, path := range candidates {
		f, err := os.Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("prefs: Load: %w", err)
		}
		err = p.read(f, loadExtra)
		_ = f.Close()
		if err != nil {
			return "", fmt.Errorf("prefs: Load %s: %w", path, err)
		}
		return path, nil
	}

	return "", nil
}

// read parses "KEY value..." lines. Quotes are stripped from the value and
// runs of blanks collapse to one space.
func (p *Preferences) read(r io.Reader, loadExtra bool) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		parts := strings.Fields(sc.Text())
		if len(parts) == 0 {
			continue
		}
		key := parts[0]
		if _, known := p.values[key]; !known && !loadExtra {
			continue
		}
		p.Set(key, strings.ReplaceAll(strings.Join(parts[1:], " "), `"`, ""))
	}

	return sc.Err()
}

// Save writes every preference in order. Strings are double quoted.
func (p *Preferences) Save() error {
	if p.Name == "" {
		return ErrSaveDisabled
	}

	var b strings.Builder
	for _, key := range p.keys {
		switch v := p.values[key].(type) {
		case string:
			fmt.Fprintf(&b, "%s \"%s\"\n", key, v)
		case float64:
			fmt.Fprintf(&b, "%s %s\n", key, strconv.FormatFloat(v, 'f', -1, 64))
		default:
			fmt.Fprintf(&b, "%s %v\n", key, v)
		}
	}
	if err := os.WriteFile(p.Path(), []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("prefs: Save: %w", err)
	}

	return nil
}

// SetVersions overwrites the version keys with the running versions, and
// sets the caller's own version key. Call before Save so an old file's
// versions are not written back.
func (p *Preferences) SetVersions(key string, value any, hostVersion float64) {
	p.Set(KeyHostVersion, FormatVersion(hostVersion))
	p.Set(KeyPrefsVersion, Version)
	p.Set(key, value)
}

// UseDefaultLibrary replaces the path stored under key with
// <contentRoot>/Runtime/Libraries/<Library> unless it already lies inside a
// Runtime/Libraries tree.
func (p *Preferences) UseDefaultLibrary(key, contentRoot string) error {
	v, ok := p.values[key]
	if !ok {
		return fmt.Errorf("prefs: %s: %w", key, ErrNoSuchKey)
	}
	path, ok := v.(string)
	if !ok {
		return fmt.Errorf("prefs: %s: %w", key, ErrNotPath)
	}
	lower := strings.ToLower(path)
	if strings.Contains(lower, "runtime") && strings.Contains(lower, "libraries") {
		return nil
	}

	elems := []string{contentRoot, "Runtime", "Libraries"}
	if p.Library != "" {
		elems = append(elems, p.Library)
	}
	p.Set(key, filepath.Join(elems...))

	return nil
}
