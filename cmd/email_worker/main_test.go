package main

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-newsroom/config"
)

func TestRunRequiresBrokerAndMailgun(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	err := run(&config.Config{MailSendEnabled: true}, logger)
	require.ErrorContains(t, err, "rabbitmq not configured")

	err = run(&config.Config{MailSendEnabled: true, RabbitMQURL: "amqp://x", RabbitMQEmailQueue: "emails"}, logger)
	require.ErrorContains(t, err, "mailgun not configured")
}
