package model

import "errors"

var (
	ErrInvalidNotation  = errors.New("invalid notation")
	ErrUnknownPiece     = errors.New("unknown piece")
	ErrNoPiece          = errors.New("no piece at square")
	ErrDeadPiece        = errors.New("piece is not on the board")
	ErrOccupied         = errors.New("square is occupied")
	ErrIllegalMove      = errors.New("illegal move")
	ErrNotYourTurn      = errors.New("not your turn")
	ErrNoLegalMoves     = errors.New("no legal moves")
	ErrGameOver         = errors.New("game is over")
	ErrInvalidFEN       = errors.New("invalid FEN")
	ErrReserveExhausted = errors.New("no reserve queen available")

	// ErrInvariant marks internal-consistency failures. It never results
	// from bad input; seeing it means move application is broken.
	ErrInvariant = errors.New("internal consistency failure")
)

// InvariantError describes a broken board invariant.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return ErrInvariant.Error() + ": " + e.Msg
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariant
}

// recoverInvariant turns an InvariantError panic raised inside the game
// into a returned error. Any other panic is re-raised.
func recoverInvariant(err *error) {
	if r := recover(); r != nil {
		if ie, ok := r.(*InvariantError); ok {
			*err = ie
			return
		}
		panic(r)
	}
}
