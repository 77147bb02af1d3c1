package models

// StatsRecord is the persisted performance aggregate for one category.
// Created lazily on the first completed session; only the scoring step
// mutates it. The json field names match the on-disk stats format, where
// "passed" is the historical name for the pass counter.
type StatsRecord struct {
	Attempts    int `json:"attempts"`
	HighScore   int `json:"highScore"`
	LastScore   int `json:"lastScore"`
	TimesPassed int `json:"passed"`
}

// Apply folds one completed attempt into the record: the high score only
// ever rises, and only on a strictly better result.
func (r *StatsRecord) Apply(percentage int, passed bool) {
	r.Attempts++
	r.LastScore = percentage
	if percentage > r.HighScore {
		r.HighScore = percentage
	}
	if passed {
		r.TimesPassed++
	}
}
