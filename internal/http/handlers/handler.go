package handlers

// HandlerConfig holds the per-deployment knobs the verify endpoint needs.
type HandlerConfig struct {
	// MaxMultiplier is the platform payout cap applied to crash derivations
	// when the request does not supply its own.
	MaxMultiplier float64
}

type Handler struct {
	Cfg HandlerConfig
}

func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{Cfg: cfg}
}
