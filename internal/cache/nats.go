package cache

import (
	"context"
	"errors"
	"log/slog"

	libnats "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"carebird/internal/config"
	"carebird/internal/core"
)

const bucketName = "carebird"

// NATS implements core.KeyValueStore on a JetStream key-value bucket.
type NATS struct {
	Logger *slog.Logger
	Config *config.Config

	js jetstream.JetStream
	kv jetstream.KeyValue
}

func (n *NATS) Init(ctx context.Context) error {
	n.Logger = n.Logger.With("component", "cache.NATS")

	nc, err := libnats.Connect(n.Config.NATSURL)
	if err != nil {
		return err
	}

	js, err := jetstream.New(nc)
	if err != nil {
		return err
	}
	n.js = js

	kv, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket: bucketName,
	})
	if err != nil {
		return err
	}
	n.kv = kv

	return nil
}

func (n *NATS) Get(ctx context.Context, key string) ([]byte, error) {
	entry, err := n.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}

	return entry.Value(), nil
}

func (n *NATS) Set(ctx context.Context, key string, value []byte) error {
	_, err := n.kv.Put(ctx, key, value)
	return err
}

func (n *NATS) HealthCheck(context.Context) error {
	_, err := n.js.Conn().RTT()
	return err
}

func (n *NATS) Shutdown(context.Context) error {
	return n.js.Conn().Drain()
}
