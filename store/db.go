package store

import (
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/slime-arena/core"
)

// ErrEpisodeNotFound is returned by lookups for an unknown episode id
var ErrEpisodeNotFound = errors.New("episode not found")

// DB persists finished episodes and their event streams
type DB interface {
	Close() error
	Migrate() error
	SaveEpisode(ep *Episode) error
	SaveEvents(episodeID string, events []core.Event) error
	GetEpisode(id string) (*Episode, error)
	GetEvents(episodeID string, limit, offset int) ([]core.Event, error)
	ListEpisodes(limit, offset int) ([]Episode, error)
	Stats() (*Stats, error)
}

// Episode is the summary row of one simulated rally
type Episode struct {
	ID          string    `json:"id" db:"id"`
	Seed        int64     `json:"seed" db:"seed"`
	Difficulty  int       `json:"difficulty" db:"difficulty"`
	Steps       int       `json:"steps" db:"steps"`
	Ticks       int       `json:"ticks" db:"ticks"`
	ScoringSide core.Side `json:"scoring_side" db:"scoring_side"`
	Terminated  bool      `json:"terminated" db:"terminated"`
	Truncated   bool      `json:"truncated" db:"truncated"`
	Touches     int       `json:"touches" db:"touches"`
	NetHits     int       `json:"net_hits" db:"net_hits"`
	RewardRight float64   `json:"reward_right" db:"reward_right"`
	RewardLeft  float64   `json:"reward_left" db:"reward_left"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Stats aggregates all stored episodes
type Stats struct {
	Episodes    int     `json:"episodes"`
	RightPoints int     `json:"right_points"`
	LeftPoints  int     `json:"left_points"`
	Truncated   int     `json:"truncated"`
	AvgTicks    float64 `json:"avg_ticks"`
	AvgTouches  float64 `json:"avg_touches"`
}
