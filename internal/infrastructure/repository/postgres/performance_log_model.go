package postgres

import "time"

type performanceLogTableModel struct {
	ID             int64     `db:"id"`
	Date           time.Time `db:"date"`
	GameID         string    `db:"game_id"`
	PickType       string    `db:"pick_type"`
	EdgePoints     float64   `db:"edge_points"`
	ModelLine      float64   `db:"model_line"`
	MarketLine     float64   `db:"market_line"`
	ResultCorrect  bool      `db:"result_correct"`
	ConfidenceBand string    `db:"confidence_band"`
	VarianceFlag   string    `db:"variance_flag"`
	InjuryFlag     string    `db:"injury_flag"`
	Notes          string    `db:"notes"`
	CreatedAt      time.Time `db:"created_at"`
}

type performanceLogInsertModel struct {
	Date           time.Time `db:"date"`
	GameID         string    `db:"game_id"`
	PickType       string    `db:"pick_type"`
	EdgePoints     float64   `db:"edge_points"`
	ModelLine      float64   `db:"model_line"`
	MarketLine     float64   `db:"market_line"`
	ResultCorrect  bool      `db:"result_correct"`
	ConfidenceBand string    `db:"confidence_band"`
	VarianceFlag   string    `db:"variance_flag"`
	InjuryFlag     string    `db:"injury_flag"`
	Notes          string    `db:"notes"`
}

type performanceLogKeyModel struct {
	Date     time.Time `db:"date"`
	GameID   string    `db:"game_id"`
	PickType string    `db:"pick_type"`
}
