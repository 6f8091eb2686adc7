package setup

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/benbeisheim/chessrules-backend/internal/model"
)

const backRankMate = `
toMove: white
pieces:
  - {square: g1, type: king, color: white, moved: true}
  - {square: f2, type: pawn, color: white}
  - {square: g2, type: pawn, color: white}
  - {square: h2, type: pawn, color: white}
  - {square: a1, type: rook, color: black, moved: true}
  - {square: h8, type: king, color: black, moved: true}
`

func TestParseDocument(t *testing.T) {
	p, toMove, err := Parse([]byte(backRankMate))
	if err != nil {
		t.Fatal(err)
	}
	if toMove != model.White || len(p) != 6 {
		t.Fatalf("got %d pieces, %s to move", len(p), toMove)
	}
	if p[0].At != model.Sq(0, 6) || p[0].Type != model.King || !p[0].HasMoved {
		t.Fatalf("first entry = %+v", p[0])
	}

	b, err := model.NewBoard(p)
	if err != nil {
		t.Fatal(err)
	}
	if !b.IsCheckmated(model.White) {
		t.Fatal("document describes a back-rank mate")
	}
}

func TestParseDocumentDefaultsToWhite(t *testing.T) {
	_, toMove, err := Parse([]byte("pieces:\n  - {square: e1, type: king, color: white}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if toMove != model.White {
		t.Fatalf("toMove = %s", toMove)
	}
}

func TestParseDocumentErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", "pieces: [unterminated"},
		{"no pieces", "toMove: black\n"},
		{"bad side", "toMove: green\npieces:\n  - {square: e1, type: king, color: white}\n"},
		{"bad square", "pieces:\n  - {square: z9, type: king, color: white}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Parse([]byte(tt.doc)); !errors.Is(err, ErrBadDocument) {
				t.Fatalf("err = %v, want ErrBadDocument", err)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	in := Standard()
	data, err := Encode(in, model.Black)
	if err != nil {
		t.Fatal(err)
	}
	out, toMove, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Encode()): %v\n%s", err, data)
	}
	if toMove != model.Black || len(out) != len(in) {
		t.Fatalf("got %d pieces, %s to move", len(out), toMove)
	}
	for i := range in {
		if in[i] != out[i] {
			t.Fatalf("entry %d: %+v != %+v", i, out[i], in[i])
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mate.yaml")
	if err := os.WriteFile(path, []byte(backRankMate), 0o600); err != nil {
		t.Fatal(err)
	}
	p, _, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(p) != 6 {
		t.Fatalf("loaded %d pieces", len(p))
	}

	if _, _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err = %v", err)
	}
}
