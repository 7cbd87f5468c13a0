package spending

import (
	"fmt"
	"sync"
)

// Editor holds a Ledger loaded from a Channel and saves it back after every
// mutation.
//
// Editor methods are safe for concurrent use; mutations are applied one at a
// time.
type Editor struct {
	mu      sync.Mutex
	ledger  *Ledger
	channel Channel
}

// Open loads the ledger from ch.
func Open(ch Channel) (*Editor, error) {
	text, err := ch.Load()
	if err != nil {
		return nil, err
	}
	return &Editor{ledger: Decode(text), channel: ch}, nil
}

// OnTextChanged replaces the ledger with the content of text. It is called
// when the document changed outside of the Editor.
func (e *Editor) OnTextChanged(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ledger = Decode(text)
}

// Update applies mutate to the ledger. If mutate reports a change, the
// ledger is serialized and saved. It returns whether the ledger changed.
func (e *Editor) Update(mutate func(*Ledger) bool) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !mutate(e.ledger) {
		return false, nil
	}
	if err := e.channel.Save(e.ledger.String()); err != nil {
		return true, fmt.Errorf("could not save ledger: %w", err)
	}
	return true, nil
}

// Ledger returns a copy of the current ledger.
func (e *Editor) Ledger() *Ledger {
	e.mu.Lock()
	defer e.mu.Unlock()
	return &Ledger{
		Daily:     append([]Daily{}, e.ledger.Daily...),
		Recurring: append([]Recurring{}, e.ledger.Recurring...),
	}
}
