package models

// Report holds the CLI report result tables and the parameters behind them.
type Report struct {
	Limit      int
	Genre      string
	MinRating  float64
	MinVotes   int64
	GenreLimit int

	TopRated         *Table
	HighRatedPopular *Table
	PerGenre         *Table
	GenreTop         *Table
}
