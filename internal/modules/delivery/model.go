// README: Delivery outcomes and the payload handed to both channels.
package delivery

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedScheme = errors.New("uri scheme not supported by client")
	ErrRelayRejected     = errors.New("form relay rejected submission")
)

// Outcome of one channel. Exactly one fallback is ever tried.
type Outcome int

const (
	Failed Outcome = iota
	Primary
	Fallback
)

func (o Outcome) String() string {
	switch o {
	case Primary:
		return "primary"
	case Fallback:
		return "fallback"
	default:
		return "failed"
	}
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(b []byte) error {
	switch string(b) {
	case "primary":
		*o = Primary
	case "fallback":
		*o = Fallback
	case "failed":
		*o = Failed
	default:
		return fmt.Errorf("unknown outcome %q", b)
	}
	return nil
}

func (o Outcome) Delivered() bool {
	return o != Failed
}

type ChannelResult struct {
	Outcome Outcome `json:"outcome"`
	// URI is the link opened or the endpoint posted to by the deciding attempt.
	URI    string `json:"uri,omitempty"`
	Detail string `json:"detail,omitempty"`
	Err    error  `json:"-"`
}

func failed(uri string, err error) ChannelResult {
	return ChannelResult{Outcome: Failed, URI: uri, Detail: err.Error(), Err: err}
}

type Result struct {
	Messaging ChannelResult `json:"messaging"`
	Relay     ChannelResult `json:"relay"`
}

// Delivered reports whether at least one channel got through.
func (r Result) Delivered() bool {
	return r.Messaging.Outcome.Delivered() || r.Relay.Outcome.Delivered()
}

type Field struct {
	Name  string
	Value string
}

// Envelope is one booking rendered for transport.
type Envelope struct {
	Reference string
	Subject   string
	Message   string
	Fields    []Field
}

// Contact is where bookings are sent.
type Contact struct {
	WhatsApp string // E.164, e.g. +33750535658
	Email    string
}
