package setup

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/benbeisheim/chessrules-backend/internal/model"
)

// Document is the YAML form of a placement:
//
//	toMove: white
//	pieces:
//	  - {square: e1, type: king, color: white}
//	  - {square: e8, type: king, color: black, moved: true}
type Document struct {
	ToMove model.Color `yaml:"toMove,omitempty"`
	Pieces []Entry     `yaml:"pieces"`
}

type Entry struct {
	Square string          `yaml:"square"`
	Type   model.PieceType `yaml:"type"`
	Color  model.Color     `yaml:"color"`
	Moved  bool            `yaml:"moved,omitempty"`
}

// Parse decodes a YAML placement document. A missing toMove means white.
func Parse(data []byte) (model.Placement, model.Color, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	return doc.Placement()
}

// LoadFile reads and parses the YAML placement document at path.
func LoadFile(path string) (model.Placement, model.Color, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("'%s': %w", path, err)
	}
	p, toMove, err := Parse(b)
	if err != nil {
		return nil, "", fmt.Errorf("'%s': %w", path, err)
	}
	return p, toMove, nil
}

// Placement converts the document, checking square names and the side to move.
// Piece types, colours and king counts are left to model.NewBoard.
func (d Document) Placement() (model.Placement, model.Color, error) {
	toMove := d.ToMove
	if toMove == "" {
		toMove = model.White
	}
	if !toMove.Valid() {
		return nil, "", fmt.Errorf("%w: toMove %q", ErrBadDocument, toMove)
	}
	if len(d.Pieces) == 0 {
		return nil, "", fmt.Errorf("%w: no pieces", ErrBadDocument)
	}

	p := make(model.Placement, 0, len(d.Pieces))
	for i, e := range d.Pieces {
		at, err := ParseSquare(e.Square)
		if err != nil {
			return nil, "", fmt.Errorf("%w: piece %d: %w", ErrBadDocument, i, err)
		}
		p = append(p, model.PlacedPiece{At: at, Type: e.Type, Color: e.Color, HasMoved: e.Moved})
	}
	return p, toMove, nil
}

// Encode writes a placement back out as a YAML document.
func Encode(p model.Placement, toMove model.Color) ([]byte, error) {
	doc := Document{ToMove: toMove, Pieces: make([]Entry, 0, len(p))}
	for _, pp := range p {
		doc.Pieces = append(doc.Pieces, Entry{
			Square: pp.At.String(),
			Type:   pp.Type,
			Color:  pp.Color,
			Moved:  pp.HasMoved,
		})
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
