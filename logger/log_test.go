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

package logger

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherboy/test"
)

func TestLogger(t *testing.T) {
	l := newLogger(10)

	b := &strings.Builder{}
	l.write(b)
	test.Equate(t, b.String(), "")

	l.log("test", "this is a test")
	b.Reset()
	l.write(b)
	test.Equate(t, b.String(), "test: this is a test\n")

	l.logf("test", "this is %s", "another test")
	b.Reset()
	l.write(b)
	test.Equate(t, b.String(), "test: this is a test\ntest: this is another test\n")
}

func TestRepeatFolding(t *testing.T) {
	l := newLogger(10)

	l.log("test", "repeated detail")
	l.log("test", "repeated detail")
	l.log("test", "repeated detail")

	b := &strings.Builder{}
	l.write(b)
	test.Equate(t, b.String(), "test: repeated detail (repeat x3)\n")

	// a different tag breaks the fold
	l.log("other", "repeated detail")
	b.Reset()
	l.write(b)
	test.Equate(t, b.String(), "test: repeated detail (repeat x3)\nother: repeated detail\n")
}

func TestTail(t *testing.T) {
	l := newLogger(10)

	l.log("test", "one")
	l.log("test", "two")
	l.log("test", "three")

	b := &strings.Builder{}
	l.tail(b, 2)
	test.Equate(t, b.String(), "test: two\ntest: three\n")

	// tail longer than the number of entries returns every entry
	b.Reset()
	l.tail(b, 100)
	test.Equate(t, b.String(), "test: one\ntest: two\ntest: three\n")
}

func TestMaxEntries(t *testing.T) {
	l := newLogger(2)

	l.log("test", "one")
	l.log("test", "two")
	l.log("test", "three")

	b := &strings.Builder{}
	l.write(b)
	test.Equate(t, b.String(), "test: two\ntest: three\n")
}
