// This file is part of glfbo.
//
// glfbo is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// glfbo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with glfbo.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/glfbo/curated"
	"github.com/jetsetilly/glfbo/logger"
)

// WarningBoilerPlate is the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// separates key from value in the prefs file
const keySep = " :: "

// Sentinal error patterns.
const (
	DuplicateKey = "prefs: duplicate key (%s)"
	InvalidFile  = "prefs: not a valid prefs file (%s)"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref

	// entries in the prefs file that have no matching key. these are kept so
	// that saving the file does not lose them
	unrecognised map[string]string
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:         path,
		entries:      make(map[string]pref),
		unrecognised: make(map[string]string),
	}, nil
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k].String()))
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

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the value in the prefs file.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all added values to their zero value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return err
		}
	}
	return nil
}

// Save current preference values to disk.
func (dsk *Disk) Save() error {
	values := make(map[string]string, len(dsk.entries)+len(dsk.unrecognised))
	for k, v := range dsk.unrecognised {
		values[k] = v
	}
	for k, p := range dsk.entries {
		values[k] = p.String()
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	w := bufio.NewWriter(f)
	_, _ = w.WriteString(WarningBoilerPlate)
	_, _ = w.WriteString("\n")
	for _, k := range keys {
		_, _ = w.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, values[k]))
	}

	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("prefs: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. A missing prefs file is not an error.
// Values found in the command line stack override the values in the file.
func (dsk *Disk) Load() error {
	err := dsk.loadFile()
	if err != nil {
		return err
	}

	for _, k := range dsk.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	return nil
}

func (dsk *Disk) loadFile() error {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Logf(logger.Allow, "prefs", "no prefs file (%s)", dsk.path)
			return nil
		}
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return curated.Errorf(InvalidFile, dsk.path)
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), keySep, 2)
		if len(kv) != 2 {
			continue
		}

		k := strings.TrimSpace(kv[0])
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(kv[1]); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		} else {
			dsk.unrecognised[k] = kv[1]
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}
