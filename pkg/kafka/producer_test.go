package kafka

import (
	"context"
	"testing"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBrokers(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, ParseBrokers(" a:9092, ,b:9092 "))
	assert.Nil(t, ParseBrokers(""))
	assert.False(t, Config{}.Enabled())
	assert.True(t, Config{Brokers: []string{"a:9092"}}.Enabled())
}

func TestNewProducer_Plain(t *testing.T) {
	p, err := NewProducer(Config{Brokers: []string{"localhost:9092", "localhost:9093"}})
	require.NoError(t, err)
	assert.Len(t, p.brokers, 2)
	assert.Nil(t, p.transport)
	assert.Empty(t, p.writers)
}

func TestNewProducer_SASL(t *testing.T) {
	for _, mech := range []string{"", "PLAIN", "SCRAM-SHA-256", "SCRAM-SHA-512"} {
		t.Run("mechanism "+mech, func(t *testing.T) {
			p, err := NewProducer(Config{
				Brokers:       []string{"kafka:9092"},
				SASLEnabled:   true,
				SASLMechanism: mech,
				SASLUsername:  "user",
				SASLPassword:  "pass",
				TLS:           true,
			})
			require.NoError(t, err)
			require.NotNil(t, p.transport)
			assert.NotNil(t, p.transport.SASL)
			assert.NotNil(t, p.transport.TLS)
		})
	}

	_, err := NewProducer(Config{SASLEnabled: true, SASLMechanism: "GSSAPI"})
	assert.Error(t, err)
}

func TestGetOrCreateWriter_ReusesPerTopic(t *testing.T) {
	p, err := NewProducer(Config{Brokers: []string{"localhost:9092"}})
	require.NoError(t, err)

	w1 := p.getOrCreateWriter("health.events")
	w2 := p.getOrCreateWriter("health.events")
	w3 := p.getOrCreateWriter("health.alerts")

	assert.Same(t, w1, w2)
	assert.NotSame(t, w1, w3)
	assert.Equal(t, kafkago.RequireAll, w1.RequiredAcks)
	assert.Len(t, p.writers, 2)

	require.NoError(t, p.Close())
	assert.Empty(t, p.writers)
}

func TestPublish_NoMessagesIsNoop(t *testing.T) {
	p, err := NewProducer(Config{Brokers: []string{"localhost:9092"}})
	require.NoError(t, err)

	require.NoError(t, p.Publish(context.Background(), "health.events"))
	assert.Empty(t, p.writers)
}

func TestPing_NoBrokers(t *testing.T) {
	p, err := NewProducer(Config{})
	require.NoError(t, err)

	assert.Error(t, p.Ping(context.Background()))
}

func TestPing_UnreachableBroker(t *testing.T) {
	p, err := NewProducer(Config{Brokers: []string{"127.0.0.1:1"}})
	require.NoError(t, err)

	err = p.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kafka unreachable")
}
