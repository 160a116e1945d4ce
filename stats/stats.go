// Package stats persists usage counters in a local JSON file.
package stats

import (
	"encoding/json"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/go-kit/log"
)

const dayFormat = "2006-01-02"

// state is the on-disk shape of the counters
type state struct {
	TotalRequests int                  `json:"total_requests"`
	DailyRequests map[string]int       `json:"daily_requests"`
	Users         map[string]time.Time `json:"users"`
}

// Summary is an aggregated view over the counters
type Summary struct {
	// DAU users active within the last 24 hours
	DAU int
	// MAU users active within the last 30 days
	MAU int
	// Today requests made today (UTC)
	Today int
	// Total requests ever made
	Total int
}

// Store keeps usage counters and writes them through to a JSON file on
// every update. Safe for concurrent use.
type Store struct {
	path   string
	logger log.Logger

	lock  sync.Mutex
	state state
}

// Open loads counters from path. A missing or corrupt file starts the
// store from an empty state rather than failing.
func Open(path string, logger log.Logger) *Store {
	s := &Store{
		path:   path,
		logger: logger,
		state: state{
			DailyRequests: map[string]int{},
			Users:         map[string]time.Time{},
		},
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Log("msg", "reading stats file", "path", path, "err", err)
		}
		return s
	}
	var loaded state
	if err := json.Unmarshal(bytes, &loaded); err != nil {
		logger.Log("msg", "stats file corrupt, starting fresh", "path", path, "err", err)
		return s
	}
	if loaded.DailyRequests == nil {
		loaded.DailyRequests = map[string]int{}
	}
	if loaded.Users == nil {
		loaded.Users = map[string]time.Time{}
	}
	s.state = loaded
	return s
}

// Record counts one request by userID and saves the file.
func (s *Store) Record(userID int64, now time.Time) {
	now = now.UTC()

	s.lock.Lock()
	defer s.lock.Unlock()

	s.state.TotalRequests++
	s.state.DailyRequests[now.Format(dayFormat)]++
	s.state.Users[strconv.FormatInt(userID, 10)] = now

	if err := s.save(); err != nil {
		s.logger.Log("msg", "saving stats file", "path", s.path, "err", err)
	}
}

// Summary reports activity relative to now.
func (s *Store) Summary(now time.Time) Summary {
	now = now.UTC()

	s.lock.Lock()
	defer s.lock.Unlock()

	summary := Summary{
		Total: s.state.TotalRequests,
		Today: s.state.DailyRequests[now.Format(dayFormat)],
	}
	for _, lastSeen := range s.state.Users {
		if now.Sub(lastSeen) <= 24*time.Hour {
			summary.DAU++
		}
		if now.Sub(lastSeen) <= 30*24*time.Hour {
			summary.MAU++
		}
	}
	return summary
}

// save writes the state out. Callers must hold the lock.
func (s *Store) save() error {
	bytes, err := json.MarshalIndent(&s.state, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, bytes, 0o644)
}
