package manifest

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/chisel-gen/chisel/log"
)

// Publisher announces finished manifests on a NATS subject so downstream
// generation passes can react instead of polling the output directory.
type Publisher struct {
	conn    *nats.Conn
	subject string
}

func NewPublisher(url, subject string) (*Publisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to nats")
	}
	return &Publisher{conn: conn, subject: subject}, nil
}

func (p *Publisher) Publish(ctx context.Context, m Manifest) error {
	_, span := otel.Tracer("").Start(ctx, "manifest.Publisher.Publish")
	defer span.End()

	payload, err := json.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "marshalling manifest")
	}

	msg := nats.NewMsg(p.subject)
	msg.Header.Set("ArtifactID", m.ArtifactID)
	msg.Data = payload

	if err := p.conn.PublishMsg(msg); err != nil {
		return errors.Wrap(err, "publishing manifest")
	}
	log.Println("published manifest", m.ArtifactID, "to", p.subject)
	return nil
}

func (p *Publisher) Close() {
	p.conn.Drain()
}
