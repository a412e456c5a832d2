package bus

import "context"

// ChannelBus delivers insights through a buffered channel to in-process
// subscribers.
type ChannelBus struct {
	ch chan Message
}

// NewChannelBus creates a ChannelBus with a buffered channel of size 64.
func NewChannelBus() *ChannelBus {
	return &ChannelBus{
		ch: make(chan Message, 64),
	}
}

// ShareInsight sends the insight in a non-blocking fashion. If the channel
// is full, the message is silently dropped; the primary analysis path must
// never stall on a slow subscriber.
func (b *ChannelBus) ShareInsight(_ context.Context, sourceID string, insight Insight) error {
	select {
	case b.ch <- Message{SourceID: sourceID, Insight: insight}:
	default:
		// Drop the message if the channel is full.
	}
	return nil
}

// Subscribe returns a read-only channel for consuming insights.
func (b *ChannelBus) Subscribe() <-chan Message {
	return b.ch
}

// Close closes the insight channel.
func (b *ChannelBus) Close() {
	close(b.ch)
}
