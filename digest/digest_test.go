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

package digest_test

import (
	"testing"

	"github.com/factor64/chroma2600/digest"
	"github.com/factor64/chroma2600/hardware"
	"github.com/factor64/chroma2600/hardware/memory/addresses"
	"github.com/factor64/chroma2600/hardware/television"
	"github.com/factor64/chroma2600/test"
)

func runFrame(t *testing.T, writes func(con *hardware.Console)) (string, string) {
	t.Helper()

	tv, err := television.NewTelevision("NTSC")
	test.ExpectedSuccess(t, err)

	vid := digest.NewVideo(tv)
	aud := digest.NewAudio(tv)

	con := hardware.NewConsole(tv, nil)
	con.Power()
	writes(con)

	test.ExpectedSuccess(t, con.RunFrame())

	return vid.Hash(), aud.Hash()
}

func TestDeterminism(t *testing.T) {
	writes := func(con *hardware.Console) {
		con.TIA.Write(addresses.COLUBK, 0x40)
		con.TIA.Write(addresses.AUDC0, 0x04)
		con.TIA.Write(addresses.AUDV0, 0x0f)
	}

	v1, a1 := runFrame(t, writes)
	v2, a2 := runFrame(t, writes)

	// identical runs produce identical fingerprints
	test.Equate(t, v1, v2)
	test.Equate(t, a1, a2)
}

func TestSensitivity(t *testing.T) {
	v1, a1 := runFrame(t, func(con *hardware.Console) {
		con.TIA.Write(addresses.COLUBK, 0x40)
	})
	v2, a2 := runFrame(t, func(con *hardware.Console) {
		con.TIA.Write(addresses.COLUBK, 0x42)
		con.TIA.Write(addresses.AUDC0, 0x04)
		con.TIA.Write(addresses.AUDV0, 0x0f)
	})

	// different register programs produce different fingerprints
	test.ExpectedSuccess(t, v1 != v2)
	test.ExpectedSuccess(t, a1 != a2)
}

func TestResetDigest(t *testing.T) {
	tv, err := television.NewTelevision("NTSC")
	test.ExpectedSuccess(t, err)

	vid := digest.NewVideo(tv)
	initial := vid.Hash()

	con := hardware.NewConsole(tv, nil)
	con.Power()
	con.TIA.Write(addresses.COLUBK, 0x40)
	test.ExpectedSuccess(t, con.RunFrame())

	test.ExpectedSuccess(t, vid.Hash() != initial)

	vid.ResetDigest()
	test.Equate(t, vid.Hash(), initial)
}
