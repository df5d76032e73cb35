// This file is part of Chroma2600.
//
// Chroma2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chroma2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chroma2600.  If not, see <https://www.gnu.org/licenses/>.

package curated_test

import (
	"errors"
	"testing"

	"github.com/factor64/chroma2600/curated"
	"github.com/factor64/chroma2600/test"
)

func TestComparison(t *testing.T) {
	e := curated.Errorf("test: %s", "foo")
	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedSuccess(t, curated.Is(e, "test: %s"))
	test.ExpectedFailure(t, curated.Is(e, "test: %d"))

	// uncurated errors match nothing
	f := errors.New("test: foo")
	test.ExpectedFailure(t, curated.IsAny(f))
	test.ExpectedFailure(t, curated.Is(f, "test: %s"))
	test.ExpectedFailure(t, curated.Has(f, "test: %s"))

	// nil is not an error of any kind
	test.ExpectedFailure(t, curated.IsAny(nil))
	test.ExpectedFailure(t, curated.Is(nil, "test: %s"))
}

func TestChaining(t *testing.T) {
	e := curated.Errorf("inner: %s", "foo")
	f := curated.Errorf("outer: %v", e)

	// Is() only matches the head of the chain
	test.ExpectedSuccess(t, curated.Is(f, "outer: %v"))
	test.ExpectedFailure(t, curated.Is(f, "inner: %s"))

	// Has() matches anywhere in the chain
	test.ExpectedSuccess(t, curated.Has(f, "outer: %v"))
	test.ExpectedSuccess(t, curated.Has(f, "inner: %s"))
}

func TestDeduplication(t *testing.T) {
	e := curated.Errorf("error: %s", "foo")
	f := curated.Errorf("error: %v", e)

	// adjacent duplicate parts are removed
	test.Equate(t, f.Error(), "error: foo")

	// a wrap whose head differs from the next part is left as it is
	g := curated.Errorf("fatal: %v", f)
	test.Equate(t, g.Error(), "fatal: error: foo")
}
