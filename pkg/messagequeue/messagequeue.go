package messagequeue

// MessageQueue defines the interface for message queue services.
type MessageQueue interface {
	Publish(queueName string, body []byte) error
	Consume(queueName string, handler func(body []byte)) error
	Close() error
}

// NoopQueue is a MessageQueue that discards everything. It stands in when no
// broker is configured so callers can publish unconditionally.
type NoopQueue struct{}

// NewNoopQueue creates a NoopQueue.
func NewNoopQueue() *NoopQueue {
	return &NoopQueue{}
}

// Publish discards the message.
func (q *NoopQueue) Publish(string, []byte) error { return nil }

// Consume never delivers any messages.
func (q *NoopQueue) Consume(string, func(body []byte)) error { return nil }

// Close is a no-op.
func (q *NoopQueue) Close() error { return nil }
