// Package strategy implements the blackjack basic-strategy decision engine.
//
// The chart assumes the common table rules: 4-8 decks, dealer stands on
// soft 17, double after split allowed, no surrender. Under those rules every
// hand situation has exactly one mathematically correct action, and the
// chart is total over its domain: hard totals 5-21, soft totals 13-20
// (A,2 through A,9) and pair ranks 2-11 (11 is A,A), each against dealer
// up-cards 2-11 (11 is an ace).
//
// # Core Components
//
// Chart: The fully-enumerated decision table. Lookup is pure and panics on
// out-of-domain keys instead of guessing, since a silent default would hide
// a broken caller.
//
// Catalog: Maps situations to the mnemonic or pattern text shown to the
// user after a wrong answer. Wording is pedagogical only; the Action
// returned by Chart is the contract.
//
// DealerStrength: The weak/medium/strong classification of the dealer
// up-card used to focus practice and to break down statistics.
//
// Both Chart and Catalog are built once and never mutated, so they are safe
// to share between any number of readers.
package strategy
