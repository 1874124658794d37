package entity

import (
	"fmt"

	"github.com/rocketscienceinc/gridgame/internal/apperror"
)

type Cell string

const (
	EmptyCell Cell = ""
	PlayerX   Cell = "X"
	PlayerO   Cell = "O"
)

// IsPlayer reports whether the cell holds one of the two player markers.
func (that Cell) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent - returns the other player's marker.
func (that Cell) Opponent() Cell {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWon     Status = "won"
	StatusDraw    Status = "draw"
)

func (that Status) IsTerminal() bool {
	return that == StatusWon || that == StatusDraw
}

func (that Status) IsValid() bool {
	return that == StatusOngoing || that.IsTerminal()
}

// Board is an N×N grid indexed as [row][col].
type Board [][]Cell

func NewBoard(size int) Board {
	board := make(Board, size)
	for row := range board {
		board[row] = make([]Cell, size)
	}

	return board
}

func (that Board) Size() int {
	return len(that)
}

// Clone - returns a deep copy that shares no rows with the original.
func (that Board) Clone() Board {
	if that == nil {
		return nil
	}

	board := make(Board, len(that))
	for row := range that {
		board[row] = append([]Cell(nil), that[row]...)
	}

	return board
}

func (that Board) InBounds(row, col int) bool {
	return row >= 0 && row < len(that) && col >= 0 && col < len(that)
}

func (that Board) At(row, col int) Cell {
	return that[row][col]
}

// IsFull - the game will continue until all the squares are full.
func (that Board) IsFull() bool {
	for _, cells := range that {
		for _, cell := range cells {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

// Validate checks that the board is square and every cell holds a known value.
func (that Board) Validate() error {
	if len(that) < 1 {
		return fmt.Errorf("%w: empty board", apperror.ErrInvalidState)
	}

	for row, cells := range that {
		if len(cells) != len(that) {
			return fmt.Errorf("%w: row %d has %d cells, want %d", apperror.ErrInvalidState, row, len(cells), len(that))
		}

		for col, cell := range cells {
			if cell != EmptyCell && !cell.IsPlayer() {
				return fmt.Errorf("%w: unknown cell %q at (%d,%d)", apperror.ErrInvalidState, cell, row, col)
			}
		}
	}

	return nil
}

// MoveRecord is the state captured right before a move was applied.
type MoveRecord struct {
	Board  Board `json:"board"`
	Player Cell  `json:"player"`
	Row    int   `json:"row"`
	Col    int   `json:"col"`
}

// Outcome is what a move reports back to the caller.
type Outcome struct {
	Status Status `json:"status"`
	Winner Cell   `json:"winner,omitempty"`
}
