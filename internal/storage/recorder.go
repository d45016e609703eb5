package storage

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Recorder writes each finished run to the history exactly once. Platforms
// feed it the state reported after every tick.
type Recorder struct {
	store  *Store
	gameID string
	player string
	logger *log.Logger
	saved  bool
}

// NewRecorder returns a recorder for one game. A nil store records nothing.
func NewRecorder(store *Store, gameID, player string, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{store: store, gameID: gameID, player: player, logger: logger}
}

// Observe saves the run the first time st reports game over and re-arms once
// a new run is under way. Runs scoring zero are skipped. It reports whether a
// row was written.
func (r *Recorder) Observe(st core.GameState) bool {
	if !st.GameOver {
		r.saved = false
		return false
	}
	if r.saved {
		return false
	}
	r.saved = true
	if r.store == nil || st.Score == 0 {
		return false
	}
	if _, err := r.store.SaveScore(r.gameID, r.player, st.Score, st.Level); err != nil {
		r.logger.Warn("cannot save run to history", "game", r.gameID, "err", err)
		return false
	}
	r.logger.Debug("run saved to history", "game", r.gameID, "score", st.Score, "level", st.Level)
	return true
}
