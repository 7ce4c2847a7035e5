// Package scenario generates valid practice hands for the trainer.
//
// A Scenario is one question: a hand category, the concrete player cards,
// the player total and the dealer up-card. Generation is driven by a
// Filter that narrows the dealer cards, the hand category or the set of
// situations, and every generated scenario satisfies the hand validity
// rules: all cards in 2-11, the cards sum to the total under the
// category's ace rule, and a hard hand never contains an ace counted
// as 11.
package scenario
