package game

// Payout records what one player received at settlement
type Payout struct {
	PlayerID int
	Staked   int
	Won      bool
	Credited int
}

// AttributeChips pays each round winner twice their stake and clears every stake
func AttributeChips(players []*Player) []Payout {
	payouts := make([]Payout, 0, len(players))
	for _, p := range players {
		staked := p.Staked()
		won := p.IsRoundWinner()
		credited := p.SettleRound(won)
		payouts = append(payouts, Payout{
			PlayerID: p.ID,
			Staked:   staked,
			Won:      won,
			Credited: credited,
		})
	}
	return payouts
}
