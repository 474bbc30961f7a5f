// Package tracker holds the in-memory goal, history and run stores.
//
// Stores are owned by the presentation layer and mutated from a single thread
// of control (a CLI command or the terminal UI event loop). They are not safe
// for concurrent use. Every mutation notifies subscribers synchronously
// before it returns.
package tracker

import "tableflip.dev/runlog/pkg/entry"

// StoreID names the list a change happened in.
type StoreID string

const (
	StoreGoals          StoreID = "goals"
	StoreRuns           StoreID = "runs"
	StoreCompletedGoals StoreID = "completed-goals"
	StoreHistoryRuns    StoreID = "history-runs"
)

// Action enumerates list mutations.
type Action string

const (
	ActionAdd    Action = "add"
	ActionRemove Action = "remove"
)

// Change describes a single list mutation.
type Change struct {
	Store  StoreID
	Action Action
	ID     entry.ID
}

// Notifier fans a Change out to subscribers in subscription order.
type Notifier struct {
	next int
	subs []subscription
}

type subscription struct {
	id int
	fn func(Change)
}

// Subscribe registers fn and returns a function that removes it again.
func (n *Notifier) Subscribe(fn func(Change)) (cancel func()) {
	n.next++
	id := n.next
	n.subs = append(n.subs, subscription{id: id, fn: fn})
	return func() {
		for i, s := range n.subs {
			if s.id == id {
				n.subs = append(n.subs[:i:i], n.subs[i+1:]...)
				return
			}
		}
	}
}

func (n *Notifier) notify(c Change) {
	// Copy so a subscriber may cancel itself while being notified.
	subs := append([]subscription(nil), n.subs...)
	for _, s := range subs {
		s.fn(c)
	}
}
