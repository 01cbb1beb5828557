package console

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/shaunduncan/tictactoe/internal/entity"
)

// RenderBoard draws the board with row and column headers:
//
//	    0   1   2
//	 0   X |   | O
//	    ---+---+---
//	 1     | X |
//	    ---+---+---
//	 2   O |   |
//
// Only square positions and marks are read; the game is never mutated.
func RenderBoard(game *entity.Game) string {
	var builder strings.Builder

	headers := make([]string, 0, game.Size)
	for col := 0; col < game.Size; col++ {
		headers = append(headers, fmt.Sprintf("%d", col))
	}
	builder.WriteString("\n    " + strings.Join(headers, "   ") + " \n")

	glue := strings.Repeat("---+", game.Size)
	glue = "   " + glue[:len(glue)-1] + "\n"

	for row := 0; row < game.Size; row++ {
		cells := make([]string, 0, game.Size)
		for col := 0; col < game.Size; col++ {
			cells = append(cells, renderMark(game.Board[game.CoordinateKey(row, col)].Mark))
		}
		if row > 0 {
			builder.WriteString(glue)
		}
		builder.WriteString(fmt.Sprintf(" %d  ", row) + strings.Join(cells, " | ") + " \n")
	}
	builder.WriteString("\n")

	return builder.String()
}

func renderMark(mark string) string {
	switch mark {
	case entity.PlayerX:
		return aurora.Red(mark).String()
	case entity.PlayerO:
		return aurora.Cyan(mark).String()
	default:
		return " "
	}
}
