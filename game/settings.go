package game

type Settings struct {
	Variant     string     `json:"variant"`
	FirstPlayer int        `json:"first_player"`
	Player0Type PlayerType `json:"-"`
	Player1Type PlayerType `json:"-"`
	Difficulty  Difficulty `json:"-"`
}

func DefaultSettings() Settings {
	return Settings{
		Variant:     VariantTicTacToe,
		FirstPlayer: 0,
		Player0Type: PlayerHuman,
		Player1Type: PlayerCPU,
		Difficulty:  DifficultyMedium,
	}
}
