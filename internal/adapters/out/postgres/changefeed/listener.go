package changefeed

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"opsboard/internal/core/ports"

	"github.com/lib/pq"
)

const (
	listenMinReconnect = 2 * time.Second
	listenMaxReconnect = 30 * time.Second
)

// Listener receives pg_notify notifications and fans them out to subscribers.
// Implements ports.ChangeFeed.
//
// One pq.Listener connection serves all subscriptions. Channels are joined
// lazily on the first subscriber for a collection and left when the last one
// unsubscribes. Callbacks run on the listener's dispatch goroutine; they must
// not block.
type Listener struct {
	pq     *pq.Listener
	logger *slog.Logger

	mu          sync.Mutex
	nextID      int
	subscribers map[string]map[int]func(ports.ChangeEvent)
	closed      bool
}

// NewListener creates a change-feed listener on the given connection string
// and starts its dispatch loop. Connection drops are retried with backoff by
// the underlying pq listener; notifications sent while disconnected are lost,
// which is within the feed's delivery contract.
func NewListener(dsn string, logger *slog.Logger) *Listener {
	l := &Listener{
		logger:      logger,
		subscribers: make(map[string]map[int]func(ports.ChangeEvent)),
	}

	l.pq = pq.NewListener(dsn, listenMinReconnect, listenMaxReconnect, func(_ pq.ListenerEventType, err error) {
		if err != nil {
			logger.Warn("change feed connection event", slog.Any("error", err))
		}
	})

	go l.dispatch()
	return l
}

// Subscribe registers onChange for every change in the named collection.
func (l *Listener) Subscribe(collection string, onChange func(ports.ChangeEvent)) (ports.Subscription, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.subscribers[collection] == nil {
		if err := l.pq.Listen(collection); err != nil {
			return nil, err
		}
		l.subscribers[collection] = make(map[int]func(ports.ChangeEvent))
	}

	id := l.nextID
	l.nextID++
	l.subscribers[collection][id] = onChange

	return &subscription{listener: l, collection: collection, id: id}, nil
}

// Close stops the dispatch loop and drops the database connection.
func (l *Listener) Close() error {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()
	return l.pq.Close()
}

func (l *Listener) dispatch() {
	for notification := range l.pq.Notify {
		// nil notifications mark reconnects.
		if notification == nil {
			continue
		}

		var event ports.ChangeEvent
		if err := json.Unmarshal([]byte(notification.Extra), &event); err != nil {
			l.logger.Warn("change feed payload unmarshal failed",
				slog.String("channel", notification.Channel),
				slog.Any("error", err))
			continue
		}

		l.mu.Lock()
		callbacks := make([]func(ports.ChangeEvent), 0, len(l.subscribers[notification.Channel]))
		for _, callback := range l.subscribers[notification.Channel] {
			callbacks = append(callbacks, callback)
		}
		l.mu.Unlock()

		for _, callback := range callbacks {
			callback(event)
		}
	}
}

func (l *Listener) unsubscribe(collection string, id int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	subscribers, ok := l.subscribers[collection]
	if !ok {
		return
	}

	delete(subscribers, id)
	if len(subscribers) == 0 {
		delete(l.subscribers, collection)
		if !l.closed {
			if err := l.pq.Unlisten(collection); err != nil {
				l.logger.Warn("change feed unlisten failed",
					slog.String("channel", collection),
					slog.Any("error", err))
			}
		}
	}
}

// subscription is a handle on one registered callback.
type subscription struct {
	listener   *Listener
	collection string
	id         int
	once       sync.Once
}

// Unsubscribe stops delivery to this subscriber. Safe to call more than once.
func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		s.listener.unsubscribe(s.collection, s.id)
	})
}
