package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// The order identifier is the wire contract correlating an outbound payment
// request with the (user, protocol) pair that initiated it:
//
//	{userId}_{protocolId}_{epochMillis}
//
// The first two fields are consumed by correlation; the timestamp suffix is
// ignored. Identifiers containing the delimiter are rejected at checkout time
// (ErrUnsafeIdentifier) so the split stays exact.

const orderIDDelimiter = "_"

var (
	ErrMalformedOrderID = errors.New("malformed order id")
	ErrUnsafeIdentifier = errors.New("identifier contains the order id delimiter")
)

// NewOrderID synthesizes the order identifier for a checkout attempt.
func NewOrderID(userID, protocolID string, at time.Time) (string, error) {
	if strings.Contains(userID, orderIDDelimiter) || strings.Contains(protocolID, orderIDDelimiter) {
		return "", ErrUnsafeIdentifier
	}
	return fmt.Sprintf("%s%s%s%s%d", userID, orderIDDelimiter, protocolID, orderIDDelimiter, at.UnixMilli()), nil
}

// ParseOrderID recovers the (user, protocol) pair from an order identifier
// echoed back by the processor. Anything past the second field is discarded.
func ParseOrderID(orderID string) (userID, protocolID string, err error) {
	parts := strings.Split(orderID, orderIDDelimiter)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", ErrMalformedOrderID
	}
	return parts[0], parts[1], nil
}
