package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gridplay/internal/game/puzzle"
	"gridplay/internal/solo"
)

// Interactive solo puzzle game on the terminal. The networked server lives
// in cmd/server.
func main() {
	s := solo.NewSession(puzzle.NewRandomDealer(0))

	reader := bufio.NewReader(os.Stdin)
	for !s.Over {
		fmt.Printf("\nScore: %d  Combo: %d\n", s.Progress.Score, s.Progress.Combo)
		printBoard(&s.Board)
		printHand(&s.Hand)

		fmt.Println("Enter move: slot row col (example: 0 3 4)")
		for {
			fmt.Print("> ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return
			}
			parts := strings.Fields(line)
			if len(parts) != 3 {
				fmt.Println("Bad format, try again.")
				continue
			}
			slot, _ := strconv.Atoi(parts[0])
			row, _ := strconv.Atoi(parts[1])
			col, _ := strconv.Atoi(parts[2])
			ms, err := s.Place(slot, row, col)
			if err != nil {
				fmt.Println("Invalid move:", err)
				continue
			}
			fmt.Printf("+%d points", ms.Total)
			if ms.LineCount > 0 {
				fmt.Printf(" (%d lines, combo %d)", ms.LineCount, ms.Combo)
			}
			if ms.AllClear > 0 {
				fmt.Print(" ALL CLEAR!")
			}
			fmt.Println()
			break
		}
	}

	fmt.Printf("\nNo shape fits anywhere. Game over!\nFinal score: %d\n", s.Progress.Score)
}

func printBoard(b *puzzle.Board) {
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			if b.Cells[r][c] == puzzle.None {
				fmt.Print(". ")
			} else {
				fmt.Print("# ")
			}
		}
		fmt.Println()
	}
}

func printHand(h *puzzle.Hand) {
	for i, sh := range h {
		if sh == nil {
			fmt.Printf("[%d] (played)\n", i)
			continue
		}
		fmt.Printf("[%d] %s\n", i, sh.ID)
		for _, row := range sh.Matrix {
			fmt.Print("    ")
			for _, f := range row {
				if f {
					fmt.Print("#")
				} else {
					fmt.Print(" ")
				}
			}
			fmt.Println()
		}
	}
}
