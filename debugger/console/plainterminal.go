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

package console

import (
	"fmt"
	"io"
	"os"
)

// PlainTerminal is the default, most basic terminal interface. It is good
// for dumb terminals and for when input is being piped from another
// process.
type PlainTerminal struct {
	input  io.Reader
	output io.Writer
}

// Initialise perfoms any setting up required for the terminal.
func (pt *PlainTerminal) Initialise() error {
	pt.input = os.Stdin
	pt.output = os.Stdout
	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (pt *PlainTerminal) CleanUp() {
}

// UserPrint is the plain terminal print routine.
func (pt PlainTerminal) UserPrint(sty Style, s string, a ...interface{}) {
	switch sty {
	case StyleError:
		s = fmt.Sprintf("* %s", s)
	case StyleHelp:
		s = fmt.Sprintf("  %s", s)
	}

	s = fmt.Sprintf(s, a...)
	pt.output.Write([]byte(s))

	if sty != StylePrompt {
		pt.output.Write([]byte("\n"))
	}
}

// UserRead is the plain terminal read routine.
func (pt PlainTerminal) UserRead(input []byte, prompt string) (int, error) {
	pt.UserPrint(StylePrompt, prompt)

	n, err := pt.input.Read(input)
	if err != nil {
		return n, err
	}
	return n, nil
}

// IsInteractive satisfies the console.UserInput interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return true
}
