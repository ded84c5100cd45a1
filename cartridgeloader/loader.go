// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader

import (
	"io/ioutil"
	"strings"

	"github.com/jetsetilly/gopherboy/curated"
)

// Loader is used to specify the cartridge to be attached to the machine.
type Loader struct {
	Filename string

	// the bank controller the cartridge requires. the cartridge header is
	// not parsed; the mapping must be given explicitly. empty string means
	// no bank controller
	Mapping string

	// data is empty until Load() is called
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The mapping argument is normalised but not validated here. Validation
// happens when the cartridge is created.
func NewLoader(filename string, mapping string) Loader {
	mapping = strings.TrimSpace(strings.ToUpper(mapping))
	if mapping == "" {
		mapping = "NONE"
	}

	return Loader{
		Filename: filename,
		Mapping:  mapping,
	}
}

// ShortName returns a shortened version of the CartridgeLoader filename.
func (cl Loader) ShortName() string {
	shortCartName := strings.Split(cl.Filename, "/")
	return shortCartName[len(shortCartName)-1]
}

// Load the cartridge image, filling the Data field. Loading is idempotent;
// a Loader with a non-empty Data field returns that data without touching
// the filesystem again.
func (cl *Loader) Load() ([]byte, error) {
	if len(cl.Data) > 0 {
		return cl.Data, nil
	}

	data, err := ioutil.ReadFile(cl.Filename)
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}
	cl.Data = data

	return cl.Data, nil
}
