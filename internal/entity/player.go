package entity

type Player struct {
	Name string `json:"name"`
	Mark Mark   `json:"mark"`
	Bot  bool   `json:"bot,omitempty"`
}

func NewPlayer(name string, mark Mark) *Player {
	return &Player{
		Name: name,
		Mark: mark,
	}
}

func NewBotPlayer(name string, mark Mark) *Player {
	return &Player{
		Name: name,
		Mark: mark,
		Bot:  true,
	}
}

func (that *Player) IsBot() bool {
	return that.Bot
}
