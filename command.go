package saldo

import (
	"fmt"
	"strings"
)

// Command is one of the operations the ledger understands.
type Command int

const (
	Buy Command = iota + 1
	Sell
	Balance
	Reset
	End
)

// TakesAmount reports whether the command requires an amount argument.
func (c Command) TakesAmount() bool { return c == Buy || c == Sell }

func (c Command) String() string {
	switch c {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	case Balance:
		return "balance"
	case Reset:
		return "reset"
	case End:
		return "end"
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// Keywords is the vocabulary typed by the user, one word per command.
type Keywords map[string]Command

var (
	// English is the default vocabulary.
	English = Keywords{"buy": Buy, "sell": Sell, "balance": Balance, "reset": Reset, "end": End}
	// Spanish is the historical vocabulary of the ledger.
	Spanish = Keywords{"compra": Buy, "venta": Sell, "saldo": Balance, "reset": Reset, "fin": End}
)

// ParseKeywords returns the vocabulary for a language code ("en" or "es").
func ParseKeywords(lang string) (Keywords, error) {
	switch strings.ToLower(lang) {
	case "", "en", "english":
		return English, nil
	case "es", "spanish", "español":
		return Spanish, nil
	}
	return nil, fmt.Errorf("unsupported language %q, valid values are en and es", lang)
}

// Lookup returns the command for word. Matching is case sensitive.
func (k Keywords) Lookup(word string) (Command, bool) {
	c, ok := k[word]
	return c, ok
}

// IsCommand reports whether word belongs to the vocabulary.
func (k Keywords) IsCommand(word string) bool {
	_, ok := k[word]
	return ok
}

// ParseLine splits a line in a command word and an optional amount.
//
// Blank lines and lines with more than two words yield two empty strings.
func ParseLine(line string) (command, amount string) {
	words := strings.Fields(line)
	switch len(words) {
	case 1:
		return words[0], ""
	case 2:
		return words[0], words[1]
	}
	return "", ""
}
