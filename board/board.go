// Package board adapts github.com/notnil/chess to the mutable
// apply/undo position the search engine works on. A Board keeps a stack of
// immutable library positions; applying a move pushes, undoing pops. It
// also tracks what the library does not: a repetition table for the
// positions on the stack, the halfmove clock and per-color insufficient
// material.
package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/notnil/chess"
	"github.com/samber/lo"
)

const (
	StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	// SeventyFiveMoveClock is the halfmove clock at which the game is
	// drawn without a claim.
	SeventyFiveMoveClock = 150
	// FivefoldRepetition ends the game without a claim.
	FivefoldRepetition = 5
)

var ErrIllegalMove = errors.New("illegal move")

// Termination is the reason a game ended.
type Termination uint8

const (
	NotOver Termination = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	SeventyFiveMoves
	FivefoldRepetitionDraw
)

func (t Termination) String() string {
	switch t {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case InsufficientMaterial:
		return "insufficient material"
	case SeventyFiveMoves:
		return "seventy-five moves"
	case FivefoldRepetitionDraw:
		return "fivefold repetition"
	}
	return "not over"
}

type state struct {
	pos      *chess.Position
	move     Move
	key      uint64
	halfmove int
}

// Board is a game position plus the history that led to it. It is not safe
// for concurrent use; give each goroutine its own Copy.
type Board struct {
	stack []state
	seen  map[uint64]int
}

// NewBoard returns a board set up at the standard starting position.
func NewBoard() *Board {
	b, err := FromFEN(StartingFEN)
	if err != nil {
		panic(err)
	}
	return b
}

// FromFEN sets up a board from a FEN string.
func FromFEN(fen string) (*Board, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("bad fen %q: %w", fen, err)
	}
	pos := chess.NewGame(opt).Position()

	halfmove := 0
	fields := strings.Fields(fen)
	if len(fields) > 4 {
		halfmove, err = strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("bad halfmove clock in fen %q: %w", fen, err)
		}
	}
	b := &Board{seen: make(map[uint64]int)}
	b.push(state{pos: pos, move: NoMove, key: positionKey(pos), halfmove: halfmove})
	return b, nil
}

// positionKey hashes the parts of the FEN that identify a position for
// repetition purposes: placement, side to move, castling and en passant.
func positionKey(pos *chess.Position) uint64 {
	fields := strings.Fields(pos.String())
	if len(fields) > 4 {
		fields = fields[:4]
	}
	return xxhash.Sum64String(strings.Join(fields, " "))
}

func (b *Board) push(s state) {
	b.stack = append(b.stack, s)
	b.seen[s.key]++
}

func (b *Board) current() *state {
	return &b.stack[len(b.stack)-1]
}

// Copy returns an independent board with the same position and history.
func (b *Board) Copy() *Board {
	c := &Board{
		stack: make([]state, len(b.stack)),
		seen:  make(map[uint64]int, len(b.seen)),
	}
	// Library positions are immutable once built, so sharing them is fine.
	copy(c.stack, b.stack)
	for k, v := range b.seen {
		c.seen[k] = v
	}
	return c
}

func (b *Board) findMove(m Move) *chess.Move {
	for _, cm := range b.current().pos.ValidMoves() {
		if fromChessMove(cm) == m {
			return cm
		}
	}
	return nil
}

// LegalMoves returns the legal moves in the library's generation order.
func (b *Board) LegalMoves() []Move {
	return lo.Map(b.current().pos.ValidMoves(), func(cm *chess.Move, _ int) Move {
		return fromChessMove(cm)
	})
}

// IsLegal returns true if m can be applied to the current position.
func (b *Board) IsLegal(m Move) bool {
	return !m.IsNone() && b.findMove(m) != nil
}

// Apply plays m on the board. Applying an illegal move is a programming
// error and panics.
func (b *Board) Apply(m Move) {
	cur := b.current()
	cm := b.findMove(m)
	if cm == nil {
		panic(fmt.Sprintf("apply: %v is not legal in %v", m, cur.pos))
	}
	halfmove := cur.halfmove + 1
	if cm.HasTag(chess.Capture) || cur.pos.Board().Piece(cm.S1()).Type() == chess.Pawn {
		halfmove = 0
	}
	next := cur.pos.Update(cm)
	b.push(state{pos: next, move: m, key: positionKey(next), halfmove: halfmove})
}

// Undo takes back the last applied move. Undoing past the position the
// board was created with panics.
func (b *Board) Undo() {
	if len(b.stack) < 2 {
		panic("undo: no move to take back")
	}
	top := b.stack[len(b.stack)-1]
	b.seen[top.key]--
	if b.seen[top.key] == 0 {
		delete(b.seen, top.key)
	}
	b.stack = b.stack[:len(b.stack)-1]
}

// Plies returns the number of moves applied since the board was created.
func (b *Board) Plies() int {
	return len(b.stack) - 1
}

// Moves returns the moves applied since the board was created.
func (b *Board) Moves() []Move {
	return lo.Map(b.stack[1:], func(s state, _ int) Move { return s.move })
}

// LastMove returns the most recently applied move, or NoMove.
func (b *Board) LastMove() Move {
	return b.current().move
}

func (b *Board) SideToMove() Color {
	return fromChessColor(b.current().pos.Turn())
}

func (b *Board) HalfmoveClock() int {
	return b.current().halfmove
}

// FEN returns the current position in Forsyth-Edwards notation.
func (b *Board) FEN() string {
	return b.current().pos.String()
}

// Draw renders the board for a terminal.
func (b *Board) Draw() string {
	return b.current().pos.Board().Draw()
}

func (b *Board) String() string {
	return b.FEN()
}

// PieceAt returns the piece on sq, if any.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	p := b.current().pos.Board().Piece(chess.Square(sq))
	if p == chess.NoPiece {
		return Piece{}, false
	}
	return Piece{Kind: fromChessPieceType(p.Type()), Color: fromChessColor(p.Color())}, true
}

// PieceCount counts the pieces of one kind and color.
func (b *Board) PieceCount(kind PieceKind, c Color) int {
	want := Piece{Kind: kind, Color: c}
	n := 0
	for sq := Square(0); sq < NumSquares; sq++ {
		if p, ok := b.PieceAt(sq); ok && p == want {
			n++
		}
	}
	return n
}

func (b *Board) IsCheckmate() bool {
	return b.current().pos.Status() == chess.Checkmate
}

func (b *Board) IsStalemate() bool {
	return b.current().pos.Status() == chess.Stalemate
}

// IsRepetition returns true if the current position has occurred at least
// count times on this board, the current occurrence included.
func (b *Board) IsRepetition(count int) bool {
	return b.seen[b.current().key] >= count
}

// HasInsufficientMaterial returns true if c cannot possibly deliver
// checkmate, whatever the opponent does.
func (b *Board) HasInsufficientMaterial(c Color) bool {
	var own, ownKnights, ownBishops, oppMinorOrRook int
	var pawns, knights, lightBishops, darkBishops int
	for sq := Square(0); sq < NumSquares; sq++ {
		p, ok := b.PieceAt(sq)
		if !ok {
			continue
		}
		switch p.Kind {
		case Pawn:
			pawns++
		case Knight:
			knights++
		case Bishop:
			if sq.Light() {
				lightBishops++
			} else {
				darkBishops++
			}
		}
		if p.Color != c {
			if p.Kind != King && p.Kind != Queen {
				oppMinorOrRook++
			}
			continue
		}
		own++
		switch p.Kind {
		case Pawn, Rook, Queen:
			return false
		case Knight:
			ownKnights++
		case Bishop:
			ownBishops++
		}
	}
	if ownKnights > 0 {
		// A lone knight can only mate if the opponent has blockers of
		// their own (queens cannot be forced to block).
		return own <= 2 && oppMinorOrRook == 0
	}
	if ownBishops > 0 {
		// Bishops all on one square color cannot mate without help from
		// pawns or knights.
		sameColor := lightBishops == 0 || darkBishops == 0
		return sameColor && pawns == 0 && knights == 0
	}
	return true
}

// IsInsufficientMaterial returns true if neither side can mate.
func (b *Board) IsInsufficientMaterial() bool {
	return b.HasInsufficientMaterial(White) && b.HasInsufficientMaterial(Black)
}

// Termination reports why the game is over, or NotOver. Draws that need a
// claim (threefold, fifty moves) do not end the game.
func (b *Board) Termination() Termination {
	switch b.current().pos.Status() {
	case chess.Checkmate:
		return Checkmate
	case chess.Stalemate:
		return Stalemate
	}
	if b.IsInsufficientMaterial() {
		return InsufficientMaterial
	}
	if b.HalfmoveClock() >= SeventyFiveMoveClock {
		return SeventyFiveMoves
	}
	if b.IsRepetition(FivefoldRepetition) {
		return FivefoldRepetitionDraw
	}
	return NotOver
}

func (b *Board) IsGameOver() bool {
	return b.Termination() != NotOver
}

// Winner returns the winning color after checkmate, and NoColor otherwise.
func (b *Board) Winner() Color {
	if b.IsCheckmate() {
		return b.SideToMove().Other()
	}
	return NoColor
}

// Result returns the PGN-style result string: 1-0, 0-1, 1/2-1/2 or *.
func (b *Board) Result() string {
	switch t := b.Termination(); {
	case t == NotOver:
		return "*"
	case b.Winner() == White:
		return "1-0"
	case b.Winner() == Black:
		return "0-1"
	}
	return "1/2-1/2"
}

// ParseMove decodes a move typed by a person, in UCI (e2e4) or standard
// algebraic (Nf3) notation, and checks it is legal here.
func (b *Board) ParseMove(s string) (Move, error) {
	pos := b.current().pos
	if cm, err := (chess.UCINotation{}).Decode(pos, s); err == nil {
		if m := fromChessMove(cm); b.IsLegal(m) {
			return m, nil
		}
	}
	if cm, err := (chess.AlgebraicNotation{}).Decode(pos, s); err == nil {
		if m := fromChessMove(cm); b.IsLegal(m) {
			return m, nil
		}
	}
	return NoMove, fmt.Errorf("%w: %q", ErrIllegalMove, s)
}

// SAN returns m in standard algebraic notation for the current position.
func (b *Board) SAN(m Move) string {
	cm := b.findMove(m)
	if cm == nil {
		return m.String()
	}
	return chess.AlgebraicNotation{}.Encode(b.current().pos, cm)
}

func fromChessMove(cm *chess.Move) Move {
	return Move{
		From:      Square(cm.S1()),
		To:        Square(cm.S2()),
		Promotion: fromChessPieceType(cm.Promo()),
	}
}

func fromChessColor(c chess.Color) Color {
	switch c {
	case chess.White:
		return White
	case chess.Black:
		return Black
	}
	return NoColor
}

func fromChessPieceType(t chess.PieceType) PieceKind {
	switch t {
	case chess.Pawn:
		return Pawn
	case chess.Knight:
		return Knight
	case chess.Bishop:
		return Bishop
	case chess.Rook:
		return Rook
	case chess.Queen:
		return Queen
	case chess.King:
		return King
	}
	return NoPieceKind
}
