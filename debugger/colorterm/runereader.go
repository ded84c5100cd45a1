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

package colorterm

import (
	"bufio"
	"io"
)

// runeReader decodes input one rune at a time. a bufio.Reader does the
// heavy lifting; the type exists so that the reader can be swapped out for
// testing.
type runeReader interface {
	ReadRune() (rune, int, error)
}

func initRuneReader(input io.Reader) runeReader {
	return bufio.NewReader(input)
}
