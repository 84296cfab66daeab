package storage

// DateFormat is the canonical column-date layout. Lexicographic order on
// formatted dates matches chronological order, which the date index relies on.
const DateFormat = "2006-01-02"

// Cell status values.
const (
	ValueExcused = -2
	ValueFailed  = -1
	ValueNeutral = 0
	ValueDone    = 1
	ValueDoneAlt = 2
)

type Habit struct {
	ID          int64
	Name        string
	Position    int
	Periodicity string // raw live frequency string, e.g. "3/w"; empty means default
}

type Cell struct {
	HabitID int64
	Date    string // YYYY-MM-DD
	Value   int
	Note    string
}

type Snapshot struct {
	ID            int64
	HabitID       int64
	EffectiveDate string // YYYY-MM-DD
	Periodicity   string // raw string as recorded; may be empty
}
