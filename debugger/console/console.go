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

// Package console defines the operations required of a terminal for the
// debugger's command line interface. Two implementations exist: the
// PlainTerminal in this package and the ANSI terminal in the colorterm
// package.
package console

// UserInput defines the operations required by an interface that allows
// input.
type UserInput interface {
	// UserRead returns the number of characters inserted into the buffer,
	// or an error, when completed.
	UserRead(buffer []byte, prompt string) (int, error)

	// IsInteractive should return true for implementations that expect user
	// intervention.
	IsInteractive() bool
}

// UserOutput defines the operations required by an interface that allows
// output.
type UserOutput interface {
	UserPrint(Style, string, ...interface{})
}

// UserInterface defines the user interface operations required by the
// debugger.
type UserInterface interface {
	Initialise() error
	CleanUp()
	UserInput
	UserOutput
}

// UserInterrupt is returned by UserRead() when the user has signalled an
// interrupt (with CTRL-C for example).
type UserInterrupt struct {
	Message string
}

func (e UserInterrupt) Error() string {
	return e.Message
}
