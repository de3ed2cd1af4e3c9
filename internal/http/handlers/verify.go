package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/lowlifescumm/doublecheck/internal/game"
	"github.com/lowlifescumm/doublecheck/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// VerifyRequest is the wire form of one verification call. Seeds are capped
// at 1000 characters and the nonce must be a positive integer; everything
// past validation is total, so this handler has no 500 path.
type VerifyRequest struct {
	Game           string   `json:"game" binding:"required,oneof=dice crash"`
	ServerSeed     string   `json:"server_seed" binding:"required,max=1000"`
	ServerSeedHash string   `json:"server_seed_hash" binding:"omitempty,max=128"`
	ClientSeed     string   `json:"client_seed" binding:"max=1000"`
	Nonce          int64    `json:"nonce" binding:"required,min=1"`
	MaxMultiplier  float64  `json:"max_multiplier" binding:"omitempty,gte=1"`
	ExpectedResult *float64 `json:"expected_result" binding:"omitempty,gte=0"`
	Strict         bool     `json:"strict"`
}

// VerifyDetails echoes the inputs alongside the computation evidence.
type VerifyDetails struct {
	ClientSeed     string `json:"client_seed"`
	Nonce          int64  `json:"nonce"`
	ServerSeedHash string `json:"server_seed_hash"`
	Digest         string `json:"digest"`
	Notes          string `json:"notes"`
}

type VerifyResponse struct {
	OK             bool          `json:"ok"`
	Game           string        `json:"game"`
	ComputedResult float64       `json:"computed_result"`
	Verdict        string        `json:"verdict"`
	Details        VerifyDetails `json:"details"`
}

// Verify handles POST /api/v1/verify.
func (h *Handler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	maxMult := req.MaxMultiplier
	if maxMult == 0 {
		maxMult = h.Cfg.MaxMultiplier
	}

	engineReq := game.Request{
		Game:           game.GameType(req.Game),
		ServerSeed:     req.ServerSeed,
		ServerSeedHash: req.ServerSeedHash,
		ClientSeed:     req.ClientSeed,
		Nonce:          req.Nonce,
		MaxMultiplier:  maxMult,
		Expected:       req.ExpectedResult,
		Strict:         req.Strict,
	}

	v, err := game.Verify(engineReq)
	if err != nil {
		// unreachable while the oneof binding holds, kept as a guard
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	verdict := v.Verdict(engineReq)
	middleware.Verifications.WithLabelValues(req.Game, verdict).Inc()

	c.JSON(http.StatusOK, VerifyResponse{
		OK:             true,
		Game:           req.Game,
		ComputedResult: v.Result.Outcome,
		Verdict:        verdict,
		Details: VerifyDetails{
			ClientSeed:     req.ClientSeed,
			Nonce:          req.Nonce,
			ServerSeedHash: v.Result.ServerSeedHash,
			Digest:         v.Result.Digest,
			Notes:          buildNotes(engineReq, v),
		},
	})
}

// buildNotes summarizes which checks ran and how they came out, for display
// next to the verdict.
func buildNotes(req game.Request, v game.Verification) string {
	parts := []string{
		fmt.Sprintf("computed %s outcome %.2f from server seed, client seed and nonce %d",
			req.Game, v.Result.Outcome, req.Nonce),
	}

	switch {
	case req.ServerSeedHash == "":
		parts = append(parts, "no server seed hash supplied, commitment not checked")
	case v.HashVerified:
		parts = append(parts, "server seed matches the published commitment hash")
	default:
		parts = append(parts, "server seed does NOT match the published commitment hash")
	}

	if req.Expected != nil {
		mode := "tolerant"
		if req.Strict {
			mode = "strict"
		}
		if game.Compare(v.Result.Outcome, *req.Expected, req.Strict) {
			parts = append(parts, fmt.Sprintf("expected result %.2f matches (%s comparison)", *req.Expected, mode))
		} else {
			parts = append(parts, fmt.Sprintf("expected result %.2f differs from computed outcome (%s comparison)", *req.Expected, mode))
		}
	}

	return strings.Join(parts, "; ")
}
