package mq

import (
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDeclarer struct {
	exchangeName    string
	exchangeKind    string
	exchangeDurable bool
	queueName       string
	queueDurable    bool
	bindQueue       string
	bindKey         string
	bindExchange    string
}

func (f *fakeDeclarer) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	f.exchangeName = name
	f.exchangeKind = kind
	f.exchangeDurable = durable
	return nil
}

func (f *fakeDeclarer) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error) {
	f.queueName = name
	f.queueDurable = durable
	return amqp.Queue{Name: name}, nil
}

func (f *fakeDeclarer) QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error {
	f.bindQueue = name
	f.bindKey = key
	f.bindExchange = exchange
	return nil
}

func TestDeclareTopology_BindsQueueToExchange(t *testing.T) {
	f := &fakeDeclarer{}

	q, err := declareTopology(f, "atrium.events", "atrium.project_views", "project.viewed")
	require.NoError(t, err)
	assert.Equal(t, "atrium.project_views", q.Name)

	assert.Equal(t, "atrium.events", f.exchangeName)
	assert.Equal(t, "topic", f.exchangeKind)
	assert.True(t, f.exchangeDurable)

	assert.Equal(t, "atrium.project_views", f.queueName)
	assert.True(t, f.queueDurable)

	// Delivery depends on this binding existing on a fresh broker.
	assert.Equal(t, "atrium.project_views", f.bindQueue)
	assert.Equal(t, "project.viewed", f.bindKey)
	assert.Equal(t, "atrium.events", f.bindExchange)
}
