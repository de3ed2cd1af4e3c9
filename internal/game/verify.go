package game

import (
	"fmt"
	"math"

	"github.com/lowlifescumm/doublecheck/internal/fair"
)

// strictEpsilon is ten times the machine epsilon of float64. Strict
// comparison tolerates only binary representation noise, never a genuine
// value difference.
var strictEpsilon = 10 * (math.Nextafter(1, 2) - 1)

// centGuard absorbs representation noise at the one-cent boundary in
// tolerant mode: 42.38-42.37 evaluates to 0.010000000000005 in binary
// floating point and must still count as within one cent.
const centGuard = 1e-9

// Compare reports whether computed and expected agree. In strict mode they
// must be the same float64 up to representation noise. In tolerant mode
// (the default) values within one cent of each other agree, accommodating
// client-side rounding of the expected value. Symmetric in its arguments.
func Compare(computed, expected float64, strict bool) bool {
	diff := math.Abs(computed - expected)
	if strict {
		return diff < strictEpsilon
	}
	return diff < 0.01+centGuard
}

// Verify dispatches to the derivation for req.Game and, when the request
// carries a claimed server-seed hash, checks the commitment. It is a pure
// function of the request: identical inputs always produce an identical
// Verification.
func Verify(req Request) (Verification, error) {
	var res Result

	switch req.Game {
	case TypeDice:
		res = DeriveDice(req.ServerSeed, req.ClientSeed, req.Nonce)
	case TypeCrash:
		res = DeriveCrash(req.ServerSeed, req.ClientSeed, req.Nonce, req.MaxMultiplier)
	default:
		return Verification{}, fmt.Errorf("%w: %q", ErrUnknownGame, req.Game)
	}

	v := Verification{Result: res}
	if req.ServerSeedHash != "" {
		v.HashVerified = fair.VerifySeedHash(req.ServerSeed, req.ServerSeedHash)
		v.HashMismatch = !v.HashVerified
	}
	return v, nil
}

// Verdict applies the pass/fail rule to a verification: a hash mismatch or a
// failed expected-result comparison each independently force FAIL. Both are
// normal outcomes, not errors.
func (v Verification) Verdict(req Request) string {
	if v.HashMismatch {
		return VerdictFail
	}
	if req.Expected != nil && !Compare(v.Result.Outcome, *req.Expected, req.Strict) {
		return VerdictFail
	}
	return VerdictPass
}
