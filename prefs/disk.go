// This file is part of Mockingboard.
//
// Mockingboard is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mockingboard is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mockingboard.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/mockingboard/curated"
)

// WarningBoilerPlate is written to the head of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand while the emulator is running ***"

// DefaultPrefsFile is the name of the preferences file in the resource path.
const DefaultPrefsFile = "preferences"

// the separator between key and value in the preferences file
const keySep = " :: "

// Sentinel error patterns.
const (
	NoPrefsFile = "prefs: no prefs file (%s)"
	PrefsError  = "prefs: %v"
)

// Disk represents preference values as stored on disk. Preferences are added
// to the Disk with the Add() function. A preference file can be shared by
// many Disk instances and each instance will preserve the entries it knows
// nothing about.
type Disk struct {
	path    string
	entries map[string]pref

	// values supplied on the command line. these take priority over values
	// found in the preferences file
	overrides map[string]Value
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(PrefsError, "no path for preferences file")
	}

	return &Disk{
		path:      path,
		entries:   make(map[string]pref),
		overrides: make(map[string]Value),
	}, nil
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to list of values to store on disk. If a value for the
// key has been pushed onto the command line stack then that value is applied
// immediately.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, keySep) || strings.TrimSpace(key) != key || key == "" {
		return curated.Errorf(PrefsError, fmt.Sprintf("illegal key (%s)", key))
	}

	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf(PrefsError, err)
		}
		dsk.overrides[key] = v
	}

	return nil
}

// read the preferences file into a map of raw strings. the returned map is
// empty if the file does not exist
func (dsk *Disk) read() (map[string]string, error) {
	raw := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return raw, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return raw, curated.Errorf(PrefsError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// first line must be the boilerplate
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return raw, curated.Errorf(PrefsError, fmt.Sprintf("not a valid prefs file (%s)", dsk.path))
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), keySep)
		if !ok || isDefunct(k) {
			continue
		}
		raw[k] = v
	}

	if err := scanner.Err(); err != nil {
		return raw, curated.Errorf(PrefsError, err)
	}

	return raw, nil
}

// Save current preference values to disk. Entries in the existing file that
// are not known to this Disk instance are preserved.
func (dsk *Disk) Save() (rerr error) {
	raw, err := dsk.read()
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	for k, p := range dsk.entries {
		raw[k] = p.String()
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(PrefsError, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(PrefsError, err)
		}
	}()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, keySep, raw[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf(PrefsError, err)
	}

	return nil
}

// Load preference values from disk. If the file does not exist and saveOnFail
// is true, then the current values are saved to create a new file.
func (dsk *Disk) Load(saveOnFail bool) error {
	raw, err := dsk.read()
	if err != nil {
		if curated.Is(err, NoPrefsFile) && saveOnFail {
			return dsk.Save()
		}
		return err
	}

	for k, p := range dsk.entries {
		if v, ok := dsk.overrides[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(PrefsError, err)
			}
			continue
		}
		if v, ok := raw[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(PrefsError, err)
			}
		}
	}

	return nil
}

// Reset all preferences in the Disk instance to their reset values. The disk
// file is not changed until Save() is called.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf(PrefsError, err)
		}
	}
	return nil
}
