package rotation

import (
	"errors"
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_picker.go github.com/princengoc/unspoken-sub000/internal/rotation Picker

// ErrRoundComplete is returned when no candidate remains to speak
var ErrRoundComplete = errors.New("every player has spoken this round")

// Picker selects the next speaker among the remaining candidates
type Picker interface {
	Pick(candidateIDs []string) (string, error)
}

// RandomPicker selects uniformly at random. There is no guaranteed speaking
// order, only the guarantee that every player speaks exactly once per round.
type RandomPicker struct {
	random *rand.Rand
}

// Config for the random picker
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new random picker
func New(cfg *Config) *RandomPicker {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &RandomPicker{
		random: rand.New(source),
	}
}

// Pick returns one of the candidate ids, or ErrRoundComplete when the
// candidate set is empty.
func (p *RandomPicker) Pick(candidateIDs []string) (string, error) {
	if len(candidateIDs) == 0 {
		return "", ErrRoundComplete
	}
	return candidateIDs[p.random.Intn(len(candidateIDs))], nil
}
