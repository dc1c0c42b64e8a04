package snake

// EventKind identifies a game notification.
type EventKind int

const (
	EventScore EventKind = iota
	EventGameOver
	EventBackground
	EventSpeed
)

func (k EventKind) String() string {
	switch k {
	case EventScore:
		return "score"
	case EventGameOver:
		return "game-over"
	case EventBackground:
		return "background"
	case EventSpeed:
		return "speed"
	default:
		return "unknown"
	}
}

// Event is a notification produced by Update. Only the field matching Kind
// is meaningful, except Score which always carries the current score.
type Event struct {
	Kind       EventKind
	Score      int
	Theme      Theme
	IntervalMs int
}

// Listeners are optional handlers invoked synchronously from Update.
// Nil handlers are skipped.
type Listeners struct {
	Score      func(score int)
	GameOver   func()
	Background func(theme Theme)
	Speed      func(intervalMs int)
}

func (l Listeners) dispatch(e Event) {
	switch e.Kind {
	case EventScore:
		if l.Score != nil {
			l.Score(e.Score)
		}
	case EventGameOver:
		if l.GameOver != nil {
			l.GameOver()
		}
	case EventBackground:
		if l.Background != nil {
			l.Background(e.Theme)
		}
	case EventSpeed:
		if l.Speed != nil {
			l.Speed(e.IntervalMs)
		}
	}
}
