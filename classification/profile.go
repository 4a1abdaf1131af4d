package classification

import "github.com/lox/flopbluff/poker"

// Profile is every flop property of one hand at every requirement level.
type Profile struct {
	Hand     FiveCardHand
	NoPair   bool
	Straight [3]bool // indexed by Requirement
	Flush    [3]bool // indexed by Requirement
	Bluff    bool
}

// ThreeToStraight returns the straight result at a level.
func (p Profile) ThreeToStraight(req Requirement) bool {
	return int(req) < len(p.Straight) && p.Straight[req]
}

// ThreeToFlush returns the flush result at a level.
func (p Profile) ThreeToFlush(req Requirement) bool {
	return int(req) < len(p.Flush) && p.Flush[req]
}

// Profile evaluates the hole cards on board at every level.
func (a *Analyzer) Profile(hole HoleCards, board []poker.Card) (Profile, error) {
	five, err := Assemble(hole, board)
	if err != nil {
		return Profile{}, err
	}

	p := Profile{Hand: five}
	if p.NoPair, err = a.pairs.IsNoPair(five); err != nil {
		return Profile{}, err
	}
	for _, req := range Requirements {
		p.Straight[req] = hasThreeToStraight(five, req)
		p.Flush[req] = hasThreeToFlush(five, req)
	}
	p.Bluff = p.NoPair && p.Straight[RequireBoth] && p.Flush[RequireBoth]
	return p, nil
}
