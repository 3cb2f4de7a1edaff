// Package listener implements a client for the WebSocket endpoint of a catapult node.
package listener

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gorilla/websocket"
	"github.com/iotaledger/hive.go/logger"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/iotaledger/catapult-client/packages/jsonmodels"
)

var (
	// ErrNotConnected is returned if the Listener is used before Connect or after Close.
	ErrNotConnected = errors.New("listener not connected")

	// ErrAlreadyConnected is returned if Connect is called twice.
	ErrAlreadyConnected = errors.New("listener already connected")
)

const writeTimeout = 5 * time.Second

type connectionState int

const (
	stateIdle connectionState = iota
	stateConnecting
	stateConnected
	stateClosed
)

// Listener subscribes to channels of the WebSocket endpoint of a node and triggers its Events for every message on a
// subscribed channel. It is safe for concurrent use.
type Listener struct {
	Events *Events

	url    string
	dialer *websocket.Dialer
	log    *logger.Logger

	// conn is set once the dial succeeded and is only accessed under stateMutex.
	conn       *websocket.Conn
	state      connectionState
	cancelDial context.CancelFunc
	stateMutex sync.Mutex
	uid        *atomic.String
	writeMutex sync.Mutex
	done       chan struct{}

	subscriptions      map[string]struct{}
	subscriptionsMutex sync.RWMutex
}

// New creates a Listener for the given WebSocket URL.
func New(url string, opts ...Option) *Listener {
	options := &options{
		dialer: websocket.DefaultDialer,
		log:    zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(options)
	}

	return &Listener{
		Events:        newEvents(),
		url:           url,
		dialer:        options.dialer,
		log:           options.log,
		uid:           atomic.NewString(""),
		done:          make(chan struct{}),
		subscriptions: make(map[string]struct{}),
	}
}

// URLFromNodeURL returns the WebSocket URL that belongs to the REST URL of a node.
func URLFromNodeURL(nodeURL string) string {
	url := strings.TrimSuffix(nodeURL, "/") + "/ws"
	switch {
	case strings.HasPrefix(url, "https://"):
		return "wss://" + strings.TrimPrefix(url, "https://")
	case strings.HasPrefix(url, "http://"):
		return "ws://" + strings.TrimPrefix(url, "http://")
	default:
		return url
	}
}

// Connect dials the node and waits for the uid that identifies the connection. The Listener stops when ctx is
// canceled or Close is called. A Close during Connect aborts the dial and Connect returns ErrNotConnected.
func (l *Listener) Connect(ctx context.Context) error {
	l.stateMutex.Lock()
	switch l.state {
	case stateClosed:
		l.stateMutex.Unlock()
		return ErrNotConnected
	case stateConnecting, stateConnected:
		l.stateMutex.Unlock()
		return ErrAlreadyConnected
	}
	dialCtx, cancelDial := context.WithCancel(ctx)
	l.state = stateConnecting
	l.cancelDial = cancelDial
	l.stateMutex.Unlock()

	conn, _, err := l.dialer.DialContext(dialCtx, l.url, nil)
	if err != nil {
		return l.abortConnect(nil, cancelDial, errors.Wrapf(err, "failed to dial %s", l.url))
	}
	if !l.publishPendingConn(conn) {
		_ = conn.Close()
		cancelDial()
		return ErrNotConnected
	}

	uid := &jsonmodels.ListenerUID{}
	if err := conn.ReadJSON(uid); err != nil {
		return l.abortConnect(conn, cancelDial, errors.Wrap(err, "failed to read connection uid"))
	}
	if uid.UID == "" {
		return l.abortConnect(conn, cancelDial, errors.New("node sent an empty connection uid"))
	}

	l.stateMutex.Lock()
	if l.state == stateClosed {
		l.stateMutex.Unlock()
		cancelDial()
		return ErrNotConnected
	}
	l.uid.Store(uid.UID)
	l.state = stateConnected
	l.stateMutex.Unlock()

	l.log.Infow("listener connected", "url", l.url, "uid", uid.UID)

	go l.readLoop(conn)
	go func() {
		defer cancelDial()

		select {
		case <-dialCtx.Done():
			_ = l.Close()
		case <-l.done:
		}
	}()

	return nil
}

// publishPendingConn stores the dialed connection so that a concurrent Close can interrupt the handshake. It returns
// false if the Listener was closed in the meantime.
func (l *Listener) publishPendingConn(conn *websocket.Conn) bool {
	l.stateMutex.Lock()
	defer l.stateMutex.Unlock()

	if l.state == stateClosed {
		return false
	}
	l.conn = conn

	return true
}

// abortConnect releases a failed dial. The Listener can be connected again unless it was closed during the dial.
func (l *Listener) abortConnect(conn *websocket.Conn, cancelDial context.CancelFunc, err error) error {
	cancelDial()
	if conn != nil {
		_ = conn.Close()
	}

	l.stateMutex.Lock()
	defer l.stateMutex.Unlock()

	if l.state == stateClosed {
		return ErrNotConnected
	}
	l.state = stateIdle
	l.conn = nil
	l.cancelDial = nil

	return err
}

// UID returns the identifier that the node assigned to the connection.
func (l *Listener) UID() string {
	return l.uid.Load()
}

// Done returns a channel that is closed when the connection ends.
func (l *Listener) Done() <-chan struct{} {
	return l.done
}

// Subscribe subscribes to a channel. The address is ignored for the block channel.
func (l *Listener) Subscribe(channel string, address string) error {
	if channel == jsonmodels.ChannelBlock {
		address = ""
	}
	path := jsonmodels.ChannelPath(channel, address)

	l.subscriptionsMutex.Lock()
	defer l.subscriptionsMutex.Unlock()

	if _, exists := l.subscriptions[path]; exists {
		return nil
	}
	if err := l.send(&jsonmodels.ListenerSubscription{UID: l.UID(), Subscribe: path}); err != nil {
		return errors.Wrapf(err, "failed to subscribe to %s", path)
	}
	l.subscriptions[path] = struct{}{}

	return nil
}

// Unsubscribe stops a subscription.
func (l *Listener) Unsubscribe(channel string, address string) error {
	path := jsonmodels.ChannelPath(channel, address)

	l.subscriptionsMutex.Lock()
	defer l.subscriptionsMutex.Unlock()

	if _, exists := l.subscriptions[path]; !exists {
		return nil
	}
	if err := l.send(&jsonmodels.ListenerUnsubscription{UID: l.UID(), Unsubscribe: path}); err != nil {
		return errors.Wrapf(err, "failed to unsubscribe from %s", path)
	}
	delete(l.subscriptions, path)

	return nil
}

// Subscribed returns true if the Listener is subscribed to the given channel path.
func (l *Listener) Subscribed(path string) bool {
	l.subscriptionsMutex.RLock()
	defer l.subscriptionsMutex.RUnlock()

	_, exists := l.subscriptions[path]
	return exists
}

// Close ends the connection. Calling Close before or during Connect releases the Listener as well, so Done is closed
// and later calls to Connect fail.
func (l *Listener) Close() error {
	l.stateMutex.Lock()
	previousState := l.state
	conn := l.conn
	cancelDial := l.cancelDial
	l.state = stateClosed
	l.stateMutex.Unlock()

	switch previousState {
	case stateClosed:
		return nil
	case stateIdle:
		close(l.done)
		return nil
	case stateConnecting:
		cancelDial()
		if conn != nil {
			_ = conn.Close()
		}
		close(l.done)
		return nil
	}

	l.writeMutex.Lock()
	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeTimeout))
	l.writeMutex.Unlock()

	err := conn.Close()
	<-l.done

	return errors.WithStack(err)
}

func (l *Listener) send(message interface{}) error {
	conn, err := l.connectedConn()
	if err != nil {
		return err
	}
	select {
	case <-l.done:
		return ErrNotConnected
	default:
	}

	l.writeMutex.Lock()
	defer l.writeMutex.Unlock()

	if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}

	return conn.WriteJSON(message)
}

func (l *Listener) connectedConn() (*websocket.Conn, error) {
	l.stateMutex.Lock()
	defer l.stateMutex.Unlock()

	if l.state != stateConnected || l.conn == nil {
		return nil, ErrNotConnected
	}

	return l.conn, nil
}

func (l *Listener) isClosed() bool {
	l.stateMutex.Lock()
	defer l.stateMutex.Unlock()

	return l.state == stateClosed
}

func (l *Listener) readLoop(conn *websocket.Conn) {
	defer close(l.done)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if !l.isClosed() {
				l.log.Warnw("listener connection lost", "url", l.url, "err", err)
				l.Events.Error.Trigger(errors.Wrap(err, "listener connection lost"))
			}
			return
		}

		message := &jsonmodels.ListenerMessage{}
		if err := json.Unmarshal(data, message); err != nil {
			l.Events.Error.Trigger(errors.Wrap(err, "failed to unmarshal listener message"))
			continue
		}
		l.dispatch(message)
	}
}

func (l *Listener) dispatch(message *jsonmodels.ListenerMessage) {
	path := message.Channel()
	subscribedPaths := l.subscribedPaths(path)
	if len(subscribedPaths) == 0 {
		l.log.Debugw("dropping message of unsubscribed channel", "channel", path)
		return
	}

	for _, subscribedPath := range subscribedPaths {
		l.trigger(subscribedPath, message)
	}
}

// subscribedPaths returns the subscriptions that a message with the given channel path belongs to. Some gateways name
// the channel without the address, such a path matches every subscribed address of the channel.
func (l *Listener) subscribedPaths(path string) []string {
	if path == "" {
		return nil
	}

	l.subscriptionsMutex.RLock()
	defer l.subscriptionsMutex.RUnlock()

	if _, exists := l.subscriptions[path]; exists {
		return []string{path}
	}
	if strings.Contains(path, "/") {
		return nil
	}

	matches := make([]string, 0)
	prefix := path + "/"
	for subscription := range l.subscriptions {
		if strings.HasPrefix(subscription, prefix) {
			matches = append(matches, subscription)
		}
	}
	sort.Strings(matches)

	return matches
}

func (l *Listener) trigger(path string, message *jsonmodels.ListenerMessage) {
	channel, address := jsonmodels.SplitChannelPath(path)
	switch channel {
	case jsonmodels.ChannelBlock:
		l.Events.Block.Trigger(&BlockEvent{Block: message.Block})
	case jsonmodels.ChannelConfirmedAdded, jsonmodels.ChannelUnconfirmedAdded, jsonmodels.ChannelPartialAdded:
		l.Events.TransactionAdded.Trigger(&TransactionEvent{Channel: channel, Address: address, Transaction: message.TransactionInfo()})
	case jsonmodels.ChannelUnconfirmedRemoved, jsonmodels.ChannelPartialRemoved:
		l.Events.TransactionRemoved.Trigger(&TransactionEvent{Channel: channel, Address: address, Transaction: message.TransactionInfo()})
	case jsonmodels.ChannelStatus:
		l.Events.Status.Trigger(&StatusEvent{Address: address, Status: message.TransactionStatus()})
	case jsonmodels.ChannelCosignature:
		l.Events.Cosignature.Trigger(&CosignatureEvent{Address: address, Cosignature: message.CosignatureRequest()})
	default:
		l.log.Debugw("dropping message of unknown channel", "channel", path)
	}
}
