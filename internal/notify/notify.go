// Package notify is the user-facing message center. Id berasal dari
// sequence milik Center sendiri, bukan counter level modul.
package notify

import "sync"

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

type Message struct {
	ID   int64  `json:"id"`
	Text string `json:"message"`
	Kind Kind   `json:"type"`
}

type Center struct {
	mu   sync.Mutex
	seq  int64
	msgs []Message
}

func NewCenter() *Center {
	return &Center{}
}

func (c *Center) Push(kind Kind, text string) Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	m := Message{ID: c.seq, Text: text, Kind: kind}
	c.msgs = append(c.msgs, m)
	return m
}

func (c *Center) Remove(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, m := range c.msgs {
		if m.ID == id {
			c.msgs = append(c.msgs[:i], c.msgs[i+1:]...)
			return
		}
	}
}

func (c *Center) List() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.msgs))
	copy(out, c.msgs)
	return out
}
