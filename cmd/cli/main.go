package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ferndraper/eights/deck"
	"github.com/ferndraper/eights/game"
)

const thinkDelay = time.Second

func main() {
	g := game.NewGame(game.GameOpts{})
	g.Start()

	input := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println()
		fmt.Println(g.Message)

		if g.Status != game.InProgress {
			if !promptYesNo(input, "Play again? (y/n) ") {
				return
			}
			g.Start()
			continue
		}

		if g.Turn == game.OpponentSide {
			time.Sleep(thinkDelay)
			if err := g.ApplyOpponentAction(g.DecideOpponentMove()); err != nil {
				fmt.Println(err.Error())
			}
			continue
		}

		if g.AwaitingSuitChoice() {
			suit, quit := promptSuit(input)
			if quit {
				return
			}
			if err := g.ChooseSuit(suit); err != nil {
				fmt.Println(err.Error())
			}
			continue
		}

		printTable(g)

		choice, quit := promptMove(input)
		if quit {
			return
		}

		var err error
		if choice < 0 {
			err = g.Draw(game.PlayerSide)
		} else if choice < len(g.PlayerHand) {
			err = g.Play(game.PlayerSide, g.PlayerHand[choice])
		} else {
			err = fmt.Errorf("no card at position %d", choice+1)
		}
		if err != nil {
			fmt.Println(err.Error())
		}
	}
}

func printTable(g *game.Game) {
	fmt.Printf("Top of discard: %s", g.TopDiscard())
	if g.ActiveSuit != nil {
		fmt.Printf(" (suit in play: %s)", g.ActiveSuit)
	}
	fmt.Println()
	fmt.Printf("Deck: %d cards. Opponent: %d cards.\n", len(g.Deck), len(g.OpponentHand))

	fmt.Println("Your hand:")
	legal := map[int]bool{}
	for _, idx := range g.LegalMoves() {
		legal[idx] = true
	}
	for i, c := range g.PlayerHand {
		marker := " "
		if legal[i] {
			marker = "*"
		}
		fmt.Printf("  %2d %s %s\n", i+1, marker, c)
	}
}

// promptMove reads the player's move: a 1-based card position, d to draw or q
// to quit. Returns -1 as the position for a draw.
func promptMove(input *bufio.Scanner) (int, bool) {
	for {
		fmt.Print("Play a card (number), (d)raw or (q)uit: ")
		if !input.Scan() {
			return 0, true
		}

		answer := strings.TrimSpace(strings.ToLower(input.Text()))
		switch answer {
		case "q":
			return 0, true
		case "d":
			return -1, false
		default:
			if n, err := strconv.Atoi(answer); err == nil && n > 0 {
				return n - 1, false
			}
			fmt.Println("Didn't catch that.")
		}
	}
}

func promptSuit(input *bufio.Scanner) (deck.Suit, bool) {
	for {
		fmt.Print("Choose a suit - (c)lubs, (d)iamonds, (h)earts or (s)pades: ")
		if !input.Scan() {
			return deck.Clubs, true
		}

		switch strings.TrimSpace(strings.ToLower(input.Text())) {
		case "c":
			return deck.Clubs, false
		case "d":
			return deck.Diamonds, false
		case "h":
			return deck.Hearts, false
		case "s":
			return deck.Spades, false
		case "q":
			return deck.Clubs, true
		}
		fmt.Println("Didn't catch that.")
	}
}

func promptYesNo(input *bufio.Scanner, prompt string) bool {
	fmt.Print(prompt)
	if !input.Scan() {
		return false
	}
	return strings.HasPrefix(strings.TrimSpace(strings.ToLower(input.Text())), "y")
}
