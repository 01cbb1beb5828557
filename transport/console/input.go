package console

import (
	"fmt"
	"strconv"
	"strings"
)

// readLine returns the next trimmed input line. The second return is false
// once stdin is exhausted, which the caller treats as the player leaving.
func (that *Console) readLine() (string, bool) {
	if !that.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(that.scanner.Text()), true
}

func (that *Console) promptBoardSize() (int, bool) {
	for {
		fmt.Fprintf(that.out, "What size board would you like to play? (Minimum 3, Default %d) ", that.defaultSize)

		answer, ok := that.readLine()
		if !ok {
			return 0, false
		}
		if answer == "" {
			return that.defaultSize, true
		}

		size, err := strconv.Atoi(answer)
		if err != nil || size < 3 {
			fmt.Fprintf(that.out, "I'm sorry, %s is not a valid board size\n", answer)
			continue
		}
		return size, true
	}
}

// promptMoveOrder asks whether the human or the computer opens. True means
// the computer moves first.
func (that *Console) promptMoveOrder() (bool, bool) {
	fmt.Fprint(that.out, "Would you like to move first? (Enter 1 or 2): ")
	for {
		answer, ok := that.readLine()
		if !ok {
			return false, false
		}

		switch answer {
		case "1":
			return false, true
		case "2":
			return true, true
		}

		fmt.Fprintf(that.out, "I'm sorry, %s is an invalid choice\n", answer)
		fmt.Fprint(that.out, "Would you like to move first or second? (Enter 1 or 2): ")
	}
}

func (that *Console) promptCoordinate(label string, maxValue int) (int, bool) {
	for {
		fmt.Fprintf(that.out, "Enter a %s number (0-%d): ", label, maxValue)

		answer, ok := that.readLine()
		if !ok {
			return 0, false
		}

		value, err := strconv.Atoi(answer)
		if err != nil || value < 0 || value > maxValue {
			fmt.Fprintf(that.out, "I'm sorry, %s is not a valid input\n", answer)
			continue
		}
		return value, true
	}
}

func (that *Console) promptPlayAgain() (bool, bool) {
	fmt.Fprint(that.out, "Would you like to play again? (Enter y or n): ")
	for {
		answer, ok := that.readLine()
		if !ok {
			return false, false
		}

		switch strings.ToUpper(answer) {
		case "Y":
			return true, true
		case "N":
			return false, true
		}

		fmt.Fprintf(that.out, "I'm sorry, but %s is an invalid option\n", answer)
		fmt.Fprint(that.out, "Would you like to play again? (Enter y or n): ")
	}
}
