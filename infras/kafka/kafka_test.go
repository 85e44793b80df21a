package kafka_test

import (
	"calgrid/infras/kafka"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

func TestMessageRoundTrip(t *testing.T) {
	message := kafka.Message{Key: "salon-1", Value: payload{Type: "event-drop", Count: 2}}

	encoded, err := message.ToKafkaMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte("salon-1"), encoded.Key)
	assert.JSONEq(t, `{"type":"event-drop","count":2}`, string(encoded.Value))

	key, decoded, err := kafka.DecodeKafkaMessage[payload](encoded)
	require.NoError(t, err)
	assert.Equal(t, "salon-1", key)
	assert.Equal(t, payload{Type: "event-drop", Count: 2}, decoded)
}

func TestToKafkaMessage_Unmarshalable(t *testing.T) {
	message := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := message.ToKafkaMessage()
	assert.Error(t, err)
}

func TestDecodeKafkaMessage_Invalid(t *testing.T) {
	_, _, err := kafka.DecodeKafkaMessage[payload](kafkaGo.Message{Value: []byte("{")})
	assert.Error(t, err)
}
