package game

import "github.com/benbeisheim/chessrules-backend/internal/model"

type ClientPlayer struct {
	ID    string      `json:"name"`
	Color model.Color `json:"color"`
}

type Players struct {
	White ClientPlayer `json:"white"`
	Black ClientPlayer `json:"black"`
}

func (p *Players) seat(c model.Color) *ClientPlayer {
	if c == model.White {
		return &p.White
	}
	return &p.Black
}

// colorOf returns the side playerID sits on.
func (p *Players) colorOf(playerID string) (model.Color, bool) {
	switch {
	case playerID == "":
		return "", false
	case p.White.ID == playerID:
		return model.White, true
	case p.Black.ID == playerID:
		return model.Black, true
	}
	return "", false
}

func (p *Players) full() bool {
	return p.White.ID != "" && p.Black.ID != ""
}
