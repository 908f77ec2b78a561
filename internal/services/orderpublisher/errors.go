package orderpublisher

import "errors"

// ErrBrokerOperation covers every connect, declare, publish and close failure.
var ErrBrokerOperation = errors.New("broker operation failed")
