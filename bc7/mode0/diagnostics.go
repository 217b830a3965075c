package mode0

import (
	"log"

	"github.com/google/uuid"
)

// Diagnostics carries an optional per-image correlation id and logger
// used to trace a tile's shape search. A nil
// *Diagnostics (the default, via EncodeBlock) disables all logging with
// zero overhead on the hot path.
type Diagnostics struct {
	Logger    *log.Logger
	SessionID uuid.UUID
}

// NewDiagnostics creates a Diagnostics with a fresh session id, for
// correlating every tile logged during one image's worth of encoding
// (one id per image, not per tile: the whole point is being able to
// grep one image's tiles out of an interleaved, possibly parallel log
// stream).
func NewDiagnostics(logger *log.Logger) *Diagnostics {
	return &Diagnostics{Logger: logger, SessionID: uuid.New()}
}

func (d *Diagnostics) logShape(tileIndex, shape int, roughErr, finalErr float64) {
	if d == nil || d.Logger == nil {
		return
	}
	d.Logger.Printf("bc7 mode0 session=%s tile=%d shape=%d rough_err=%.3f final_err=%.3f",
		d.SessionID, tileIndex, shape, roughErr, finalErr)
}
