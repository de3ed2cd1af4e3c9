package game

import (
	"math"
	"strconv"

	"github.com/lowlifescumm/doublecheck/internal/fair"
)

// digestFor builds the exact preimage used by the game servers,
// server_seed + ":" + client_seed + ":" + nonce (decimal), and hashes it.
// Any deviation in separator or nonce formatting breaks compatibility, so
// this is the single place the preimage is assembled.
func digestFor(serverSeed, clientSeed string, nonce int64) string {
	input := serverSeed + ":" + clientSeed + ":" + strconv.FormatInt(nonce, 10)
	return fair.HashHex([]byte(input))
}

// round2 normalizes a value already at two-decimal granularity, stripping
// binary representation noise (2.4999999999997 -> 2.50).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DeriveDice computes the dice roll for (serverSeed, clientSeed, nonce).
// The first 8 hex chars of the digest are read as a 32-bit integer x and the
// roll is (x mod 10000)/100, giving [0.00, 99.99]. Total over all inputs.
func DeriveDice(serverSeed, clientSeed string, nonce int64) Result {
	digest := digestFor(serverSeed, clientSeed, nonce)

	x, _ := strconv.ParseUint(digest[:8], 16, 64)
	outcome := round2(float64(x%10000) / 100)

	return Result{
		Outcome:        outcome,
		Digest:         digest,
		ServerSeedHash: fair.HashHex([]byte(serverSeed)),
	}
}
