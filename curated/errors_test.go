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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/test"
)

const testPattern = "test error: %s"
const noisePattern = "noise: %v"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")

	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedSuccess(t, curated.Is(e, testPattern))
	test.ExpectedFailure(t, curated.Is(e, noisePattern))

	// plain errors are never curated
	p := errors.New("plain")
	test.ExpectedFailure(t, curated.IsAny(p))
	test.ExpectedFailure(t, curated.Is(p, testPattern))

	// nil is not an error at all
	test.ExpectedFailure(t, curated.IsAny(nil))
	test.ExpectedFailure(t, curated.Is(nil, testPattern))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	w := curated.Errorf(noisePattern, e)

	// Is() only looks at the outermost error, Has() walks the chain
	test.ExpectedFailure(t, curated.Is(w, testPattern))
	test.ExpectedSuccess(t, curated.Has(w, testPattern))
	test.ExpectedSuccess(t, curated.Has(w, noisePattern))
	test.ExpectedFailure(t, curated.Has(nil, testPattern))
}

func TestNormalisation(t *testing.T) {
	// duplicate adjacent message parts are removed when the error message is
	// formatted
	e := curated.Errorf("error: %v", curated.Errorf("error: %v", "inner"))
	test.Equate(t, e.Error(), "error: inner")

	// non-adjacent duplicates are preserved
	f := curated.Errorf("error: %v", curated.Errorf("other: %v", curated.Errorf("error: %v", "inner")))
	test.Equate(t, f.Error(), "error: other: error: inner")
}
