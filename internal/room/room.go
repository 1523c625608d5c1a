package room

import (
	"errors"
	"sync"
	"time"

	"gridplay/internal/game/othello"
	"gridplay/internal/game/puzzle"
)

type Kind string

const (
	KindOthello Kind = "othello"
	KindPuzzle  Kind = "puzzle"
)

type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusPlaying  Status = "playing"
	StatusFinished Status = "finished"
	StatusAborted  Status = "aborted"
)

type SeatColor string

const (
	SeatBlack SeatColor = "black"
	SeatWhite SeatColor = "white"
)

// seatOrder is the first-come-first-served color assignment.
var seatOrder = [2]SeatColor{SeatBlack, SeatWhite}

func (c SeatColor) Other() SeatColor {
	if c == SeatBlack {
		return SeatWhite
	}
	return SeatBlack
}

var (
	ErrRoomFull  = errors.New("room: room full")
	ErrWrongKind = errors.New("room: game kind mismatch")
)

type Seat struct {
	ConnID string    `json:"-"`
	Name   string    `json:"name"`
	Color  SeatColor `json:"color"`
}

// OthelloState is the per-room state that only exists for KindOthello rooms.
type OthelloState struct {
	Board othello.Board `json:"board"`
	Turn  othello.Disc  `json:"turn"`
}

// PuzzleState is the per-room state that only exists for KindPuzzle rooms.
type PuzzleState struct {
	Board    puzzle.Board                   `json:"board"`
	Turn     SeatColor                      `json:"turn"`
	Hands    map[SeatColor]*puzzle.Hand     `json:"hands"`
	Progress map[SeatColor]*puzzle.Progress `json:"progress"`
	Dealer   puzzle.Dealer                  `json:"-"`
}

func (s *PuzzleState) Scores() map[SeatColor]int {
	out := make(map[SeatColor]int, len(s.Progress))
	for color, p := range s.Progress {
		out[color] = p.Score
	}
	return out
}

// Room is the authoritative session object. Exactly one of Othello/Puzzle is
// non-nil, matching Kind. The manager is the only component that holds Room
// references across calls.
type Room struct {
	mu sync.Mutex

	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Status    Status    `json:"status"`
	Seats     []Seat    `json:"seats"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Othello *OthelloState `json:"othello,omitempty"`
	Puzzle  *PuzzleState  `json:"puzzle,omitempty"`
}

// freeColor returns the first seat color not currently taken, black before
// white.
func freeColor(seats []Seat) SeatColor {
	for _, color := range seatOrder {
		taken := false
		for _, s := range seats {
			if s.Color == color {
				taken = true
				break
			}
		}
		if !taken {
			return color
		}
	}
	return SeatBlack
}

func (r *Room) seatByConn(connID string) *Seat {
	for i := range r.Seats {
		if r.Seats[i].ConnID == connID {
			return &r.Seats[i]
		}
	}
	return nil
}

func (r *Room) touch() {
	r.UpdatedAt = time.Now()
}

// discOf maps a seat color to its othello disc.
func discOf(c SeatColor) othello.Disc {
	if c == SeatBlack {
		return othello.Black
	}
	return othello.White
}

// colorOf is the inverse of discOf; Empty maps to "" (a draw).
func colorOf(d othello.Disc) SeatColor {
	switch d {
	case othello.Black:
		return SeatBlack
	case othello.White:
		return SeatWhite
	}
	return ""
}

// ownerOf maps a seat color to its puzzle cell tag.
func ownerOf(c SeatColor) puzzle.Owner {
	if c == SeatBlack {
		return puzzle.Owner1
	}
	return puzzle.Owner2
}
