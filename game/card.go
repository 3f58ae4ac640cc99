package game

import (
	"fmt"

	"teg/meta"
)

type CardType int

const (
	Infantry  CardType = iota // 0
	Cavalry                   // 1
	Artillery                 // 2
	Wild                      // 3
)

func (t CardType) String() string {
	switch t {
	case Infantry:
		return "infantry"
	case Cavalry:
		return "cavalry"
	case Artillery:
		return "artillery"
	case Wild:
		return "wildcard"
	}
	return fmt.Sprintf("CardType(%d)", int(t))
}

// Card is a country card or a wildcard. Only Owner, InDeck and BonusClaimed change.
type Card struct {
	ID           int      `json:"id"`
	TerritoryID  int      `json:"territory_id"` // -1 for wildcards
	Type         CardType `json:"type"`
	Owner        int      `json:"owner"` // Seat holding the card, -1 if none
	InDeck       bool     `json:"in_deck"`
	BonusClaimed bool     `json:"bonus_claimed"`
}

// NewDeck builds one card per territory with symbols cycled, plus two wildcards.
func NewDeck(m *Map) []*Card {
	types := []CardType{Infantry, Cavalry, Artillery}
	deck := make([]*Card, 0, m.Size()+2)
	for i := 0; i < m.Size(); i++ {
		deck = append(deck, &Card{ID: i, TerritoryID: i, Type: types[i%3], Owner: -1, InDeck: true})
	}
	deck = append(deck, &Card{ID: len(deck), TerritoryID: -1, Type: Wild, Owner: -1, InDeck: true})
	deck = append(deck, &Card{ID: len(deck), TerritoryID: -1, Type: Wild, Owner: -1, InDeck: true})
	return deck
}

// CanTradeCards reports whether exactly three cards form a set: three of a
// kind, one of each symbol, or anything completed by a wildcard.
func CanTradeCards(cards []*Card) bool {
	if len(cards) != 3 {
		return false
	}
	counts := map[CardType]int{}
	for _, c := range cards {
		if c == nil {
			return false
		}
		counts[c.Type]++
	}
	if counts[Wild] > 0 {
		return true
	}
	return len(counts) == 1 || len(counts) == 3
}

// TradeValue is the reward for a player's n-th trade: 4, 7, 10, then 15, 20 and
// five more for every further trade.
func TradeValue(n int) int {
	if n <= 0 {
		return 0
	}
	if n <= 3 {
		return 3*n + 1
	}
	return 5 * (n - 1)
}

// FindSet returns the indices of a tradable set in hand, or nil.
// Preference: three of a kind, one of each, then sets completed by wildcards.
func FindSet(hand []*Card) []int {
	countType := map[CardType][]int{} // type -> indices
	for i, c := range hand {
		countType[c.Type] = append(countType[c.Type], i)
	}

	for _, t := range []CardType{Infantry, Cavalry, Artillery} {
		if len(countType[t]) >= 3 {
			return countType[t][:3]
		}
	}

	inf, cav, art := countType[Infantry], countType[Cavalry], countType[Artillery]
	if len(inf) > 0 && len(cav) > 0 && len(art) > 0 {
		return []int{inf[0], cav[0], art[0]}
	}

	wilds := countType[Wild]
	if len(wilds) == 0 || len(hand) < 3 {
		return nil
	}
	set := []int{wilds[0]}
	for i := range hand {
		if i != wilds[0] && len(set) < 3 {
			set = append(set, i)
		}
	}
	return set
}

// Hand returns the cards seat holds, in card ID order.
func (m *Match) Hand(seat int) []*Card {
	var hand []*Card
	for _, c := range m.Cards {
		if c.Owner == seat {
			hand = append(hand, c)
		}
	}
	return hand
}

// CardByID looks a card up in the match deck.
func (m *Match) CardByID(id int) (*Card, error) {
	for _, c := range m.Cards {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w %d", ErrUnknownCard, id)
}

// TradeCards exchanges three of the player's cards for armies, which are
// added to the player's pending reinforcements. It returns the reward.
func (m *Match) TradeCards(playerID string, cardIDs [3]int) (int, error) {
	p, err := m.requireTurn(playerID, ActionTradeCards)
	if err != nil {
		return 0, err
	}
	if cardIDs[0] == cardIDs[1] || cardIDs[0] == cardIDs[2] || cardIDs[1] == cardIDs[2] {
		return 0, fmt.Errorf("%w: duplicate card", ErrInvalidTrade)
	}
	cards := make([]*Card, 0, 3)
	for _, id := range cardIDs {
		c, err := m.CardByID(id)
		if err != nil {
			return 0, err
		}
		if c.Owner != p.Seat {
			return 0, fmt.Errorf("%w: card %d", ErrNotYourCard, id)
		}
		cards = append(cards, c)
	}
	if !CanTradeCards(cards) {
		return 0, ErrInvalidTrade
	}

	p.TradeCount++
	reward := TradeValue(p.TradeCount)
	for _, c := range cards {
		c.Owner = -1
		c.InDeck = true
		c.BonusClaimed = false
	}
	p.PendingArmies += reward
	return reward, nil
}

// DrawCard hands seat a uniformly random card from the deck. An empty deck
// is refilled with every unowned card first; if that leaves it empty the
// match is misconfigured and ErrDeckExhausted is returned.
func (m *Match) DrawCard(seat int, r Roller) (*Card, error) {
	candidates := m.deckCards()
	if len(candidates) == 0 {
		for _, c := range m.Cards {
			if c.Owner < 0 {
				c.InDeck = true
			}
		}
		candidates = m.deckCards()
	}
	if len(candidates) == 0 {
		return nil, ErrDeckExhausted
	}

	card := candidates[r.Intn(len(candidates))]
	card.Owner = seat
	card.InDeck = false

	if card.TerritoryID >= 0 && m.Ownership[card.TerritoryID] == seat && !card.BonusClaimed {
		m.Armies[card.TerritoryID] += meta.COUNTRY_CARD_BONUS
		card.BonusClaimed = true
	}
	return card, nil
}

func (m *Match) deckCards() []*Card {
	var cards []*Card
	for _, c := range m.Cards {
		if c.InDeck && c.Owner < 0 {
			cards = append(cards, c)
		}
	}
	return cards
}

// ConquestsForCard is how many conquests in one turn earn p a card.
func ConquestsForCard(p *Player) int {
	if p.TradeCount >= 3 {
		return 2
	}
	return 1
}

// ClaimCard draws the card the current player earned by conquering this turn.
func (m *Match) ClaimCard(playerID string, r Roller) (*Card, error) {
	p, err := m.requireTurn(playerID, ActionClaimCard)
	if err != nil {
		return nil, err
	}
	if m.CardClaimed || m.ConquestsThisTurn < ConquestsForCard(p) {
		return nil, ErrNoCardEarned
	}
	card, err := m.DrawCard(p.Seat, r)
	if err != nil {
		return nil, err
	}
	m.CardClaimed = true
	return card, nil
}
