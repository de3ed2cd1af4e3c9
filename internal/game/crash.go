package game

import (
	"math"
	"strconv"

	"github.com/lowlifescumm/doublecheck/internal/fair"
)

// crashEpsilon keeps the uniform fraction strictly below 1 so the inverse
// transform never divides by zero. The exact value is part of the protocol:
// changing it changes outcomes for digests near the top of the range.
const crashEpsilon = 1e-12

// DeriveCrash computes the crash multiplier for (serverSeed, clientSeed,
// nonce). The first 13 hex chars (52 bits) of the digest become a uniform
// fraction r = x/2^52, and the multiplier is floor(1/(1-r) * 100)/100. The
// two-decimal floor (not round) carries the house edge of the reference
// game. The result is capped at maxMultiplier and always >= 1.00.
func DeriveCrash(serverSeed, clientSeed string, nonce int64, maxMultiplier float64) Result {
	if maxMultiplier <= 0 {
		maxMultiplier = DefaultMaxMultiplier
	}

	digest := digestFor(serverSeed, clientSeed, nonce)

	x, _ := strconv.ParseUint(digest[:13], 16, 64)
	r := float64(x) / (1 << 52)
	if r > 1-crashEpsilon {
		r = 1 - crashEpsilon
	}

	mult := math.Floor((1/(1-r))*100) / 100
	if mult > maxMultiplier {
		mult = maxMultiplier
	}

	return Result{
		Outcome:        round2(mult),
		Digest:         digest,
		ServerSeedHash: fair.HashHex([]byte(serverSeed)),
	}
}
