package deck

import (
	"math/rand"
	"testing"

	utils "github.com/ferndraper/eights/internal"
)

func TestCard(t *testing.T) {
	cases := []struct {
		name     string
		rank     int
		suit     int
		expected string
	}{
		{"Lowest value card", 0, 0, "Ace of Clubs"},
		{"Wild card", 7, 2, "Eight of Hearts"},
		{"Highest value card", 12, 3, "King of Spades"},
	}

	for _, c := range cases {
		card, err := NewCard(c.rank, c.suit)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, card.String(), c.expected)
	}

	t.Run("out of range", func(t *testing.T) {
		_, err := NewCard(13, 2)
		utils.AssertErrored(t, err)

		_, err = NewCard(4, 4)
		utils.AssertErrored(t, err)

		_, err = NewCard(-1, 0)
		utils.AssertErrored(t, err)
	})

	t.Run("get rank", func(t *testing.T) {
		six := Card{Rank: Six, Suit: Suit(rand.Intn(4))}
		utils.AssertEqual(t, six.Rank.String(), "Six")
	})

	t.Run("get suit", func(t *testing.T) {
		spade := Card{Rank: Rank(rand.Intn(13)), Suit: Spades}
		utils.AssertEqual(t, spade.Suit.String(), "Spades")
	})
}
