package listener

import (
	"github.com/gorilla/websocket"
	"github.com/iotaledger/hive.go/logger"
)

type options struct {
	dialer *websocket.Dialer
	log    *logger.Logger
}

// Option configures a Listener.
type Option func(*options)

// WithDialer sets the dialer that opens the connection.
func WithDialer(dialer *websocket.Dialer) Option {
	return func(o *options) {
		o.dialer = dialer
	}
}

// WithLogger sets the logger that connection changes are reported to.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}
