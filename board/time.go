package board

import "fmt"

// ChessTime counts game time in rounds, turns within a round and
// movements within a turn. It doubles as an effect duration.
type ChessTime struct {
	Round    uint32
	Turn     uint32
	Movement uint32
}

func NewChessTime() ChessTime {
	return ChessTime{}
}

func (chessTime *ChessTime) OnMovement() {
	chessTime.Movement += 1
}

func (chessTime *ChessTime) OnTurn() {
	chessTime.Turn += 1
	chessTime.Movement = 0
}

func (chessTime *ChessTime) OnRound() {
	chessTime.Round += 1
	chessTime.Turn = 0
	chessTime.Movement = 0
}

func (chessTime ChessTime) Halve() ChessTime {
	return ChessTime{chessTime.Round / 2, chessTime.Turn / 2, chessTime.Movement / 2}
}

func (chessTime ChessTime) Double() ChessTime {
	return ChessTime{chessTime.Round * 2, chessTime.Turn * 2, chessTime.Movement * 2}
}

func (chessTime ChessTime) IsZero() bool {
	return chessTime == ChessTime{}
}

func (chessTime ChessTime) String() string {
	return fmt.Sprintf("r%d t%d m%d", chessTime.Round, chessTime.Turn, chessTime.Movement)
}
