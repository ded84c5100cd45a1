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

// Style identifies the category of text being printed to the terminal.
// Terminal implementations may decorate each style differently.
type Style int

// List of Style values.
const (
	StylePrompt Style = iota
	StyleInput
	StyleFeedback
	StyleMachineInfo
	StyleHelp
	StyleError
)
