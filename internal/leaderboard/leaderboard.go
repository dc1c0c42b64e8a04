// Package leaderboard keeps the top ten scores in a key-value store.
//
// The list is stored as a JSON array under a single key. Persistence is best
// effort: read and write failures are logged and the in-memory list carries
// on, so callers never see an error.
package leaderboard

import (
	"encoding/json"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-eater/internal/core"
)

const (
	// StorageKey is the key the list is stored under.
	StorageKey = "snakeEaterScores"
	// MaxEntries is how many scores are kept.
	MaxEntries = 10
	// MaxNameLength is the longest stored player name, in characters.
	MaxNameLength = 15
	// DefaultName replaces names that are empty after trimming.
	DefaultName = "Player"
)

// dateLayout is ISO-8601 in UTC with milliseconds.
const dateLayout = "2006-01-02T15:04:05.000Z"

// Entry is one leaderboard row.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Date  string `json:"date"`
	ID    int64  `json:"id"`
}

// Store is the key-value persistence behind a Leaderboard.
// *storage.Store satisfies it.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Leaderboard is the in-memory list mirrored to a Store.
type Leaderboard struct {
	store  Store
	clock  core.Clock
	logger *log.Logger

	entries   []Entry
	lastAdded int64
}

// New creates a leaderboard and loads the stored list.
// A nil logger discards log output.
func New(store Store, clock core.Clock, logger *log.Logger) *Leaderboard {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	l := &Leaderboard{
		store:  store,
		clock:  clock,
		logger: logger,
	}
	l.entries = l.load()
	return l
}

// load reads the stored list. Missing, unreadable or corrupt data yields an
// empty list.
func (l *Leaderboard) load() []Entry {
	raw, ok, err := l.store.Get(StorageKey)
	if err != nil {
		l.logger.Error("loading scores", "err", err)
		return []Entry{}
	}
	if !ok {
		return []Entry{}
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		l.logger.Error("loading scores", "err", err)
		return []Entry{}
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries
}

func (l *Leaderboard) save() {
	data, err := json.Marshal(l.entries)
	if err != nil {
		l.logger.Error("encoding scores", "err", err)
		return
	}
	if err := l.store.Set(StorageKey, string(data)); err != nil {
		l.logger.Error("saving scores", "err", err)
	}
}

// Reload replaces the in-memory list with the stored one.
func (l *Leaderboard) Reload() {
	l.entries = l.load()
}

// Entries returns a copy of the list, highest score first.
func (l *Leaderboard) Entries() []Entry {
	return slices.Clone(l.entries)
}

// Add inserts a score, keeps the top MaxEntries and persists the list.
// It returns the new entry, which may already have been cut from the list
// if the score was too low.
func (l *Leaderboard) Add(name string, score int) Entry {
	now := l.clock.Now()
	e := Entry{
		Name:  SanitizeName(name),
		Score: score,
		Date:  now.UTC().Format(dateLayout),
		ID:    l.nextID(now),
	}

	l.entries = append(l.entries, e)
	// Stable, so equal scores keep insertion order.
	slices.SortStableFunc(l.entries, func(a, b Entry) int {
		return b.Score - a.Score
	})
	if len(l.entries) > MaxEntries {
		l.entries = l.entries[:MaxEntries]
	}

	l.save()
	l.lastAdded = e.ID
	l.logger.Debug("score added", "name", e.Name, "score", e.Score, "id", e.ID)
	return e
}

// nextID returns the current Unix millisecond, bumped past every existing
// id so ids stay unique when two scores land in the same millisecond.
func (l *Leaderboard) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	for _, e := range l.entries {
		if e.ID >= id {
			id = e.ID + 1
		}
	}
	if l.lastAdded >= id {
		id = l.lastAdded + 1
	}
	return id
}

// LastAddedID returns the id of the most recent Add, 0 if none.
func (l *Leaderboard) LastAddedID() int64 {
	return l.lastAdded
}

// Rank returns the 1-based position of the entry with id, 0 if absent.
func (l *Leaderboard) Rank(id int64) int {
	for i, e := range l.entries {
		if e.ID == id {
			return i + 1
		}
	}
	return 0
}

// Qualifies reports whether score would make the list.
func (l *Leaderboard) Qualifies(score int) bool {
	if len(l.entries) < MaxEntries {
		return true
	}
	return score > l.entries[len(l.entries)-1].Score
}

// Clear empties the list and persists the empty list.
func (l *Leaderboard) Clear() {
	l.entries = []Entry{}
	l.lastAdded = 0
	l.save()
}

// SanitizeName cuts name to MaxNameLength characters, trims surrounding
// whitespace and falls back to DefaultName when nothing is left.
func SanitizeName(name string) string {
	if r := []rune(name); len(r) > MaxNameLength {
		name = string(r[:MaxNameLength])
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultName
	}
	return name
}

// MemoryStore is a Store that lives only as long as the process.
type MemoryStore struct {
	data map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string]string{}}
}

// Get returns the value stored under key.
func (m *MemoryStore) Get(key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *MemoryStore) Set(key, value string) error {
	m.data[key] = value
	return nil
}
