package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/stan.go"
	"github.com/quintans/faults"
	log "github.com/sirupsen/logrus"

	"github.com/DamianCazal/kipu-bank/internal/event"
)

const PayoutSubject = "payouts"

var ErrPayoutDeclined = errors.New("payout declined by processor")

type PayoutRequest struct {
	Recipient string `json:"recipient"`
	Amount    int64  `json:"amount"`
}

type PayoutReply struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}

// Envelope wraps published events with their kind so consumers can route
// without decoding the payload.
type Envelope struct {
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

// Messenger is the message bus adapter. Payouts go out as request/reply over
// plain NATS, where an external payout processor acks or declines, and
// completion events are published to a streaming topic.
type Messenger struct {
	nats    *nats.Conn
	stan    stan.Conn
	topic   string
	timeout time.Duration
}

func NewMessenger(natsURL, clusterID, clientID, topic string, timeout time.Duration) (*Messenger, error) {
	nc, err := nats.Connect(natsURL)
	if err != nil {
		return nil, faults.Errorf("connecting to NATS (%s): %w", natsURL, err)
	}
	sc, err := stan.Connect(clusterID, clientID, stan.NatsConn(nc))
	if err != nil {
		nc.Close()
		return nil, faults.Errorf("connecting to NATS streaming cluster '%s': %w", clusterID, err)
	}
	return &Messenger{
		nats:    nc,
		stan:    sc,
		topic:   topic,
		timeout: timeout,
	}, nil
}

func (m *Messenger) Send(ctx context.Context, recipient string, amount int64) error {
	payload, err := json.Marshal(PayoutRequest{
		Recipient: recipient,
		Amount:    amount,
	})
	if err != nil {
		return faults.Wrap(err)
	}
	msg, err := m.nats.Request(PayoutSubject, payload, m.timeout)
	if err != nil {
		return faults.Errorf("requesting payout of %d to '%s': %w", amount, recipient, err)
	}
	reply := PayoutReply{}
	if err := json.Unmarshal(msg.Data, &reply); err != nil {
		return faults.Errorf("unable to parse payout reply: %w", err)
	}
	if !reply.Accepted {
		return faults.Errorf("%w: %s", ErrPayoutDeclined, reply.Reason)
	}
	return nil
}

func (m *Messenger) DepositCompleted(ctx context.Context, e event.DepositCompleted) error {
	return m.publish(e.GetType(), e)
}

func (m *Messenger) WithdrawalCompleted(ctx context.Context, e event.WithdrawalCompleted) error {
	return m.publish(e.GetType(), e)
}

func (m *Messenger) publish(kind string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return faults.Wrap(err)
	}
	data, err := json.Marshal(Envelope{
		Kind:    kind,
		Payload: payload,
	})
	if err != nil {
		return faults.Wrap(err)
	}
	return faults.Wrap(m.stan.Publish(m.topic, data))
}

func (m *Messenger) Close() {
	if err := m.stan.Close(); err != nil {
		log.Warnf("Closing streaming connection: %v", err)
	}
	m.nats.Close()
}
