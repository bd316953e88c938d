package mqtt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	MQTT "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
	"gitlab.com/adam.stanek/growthwalk/pkg/walkthrough"
)

const (
	connectTimeout = 10 * time.Second
	publishTimeout = 5 * time.Second
)

// Message - single retained publication
type Message struct {
	Topic   string
	Payload string
}

// ReportMessages - converts walkthrough report into messages
// Each step publishes its outcome kind and, if a response was received, its HTTP status.
// <prefix>/result carries "ok" or the kind of the first failing gating step.
func ReportMessages(prefix string, report *walkthrough.Report) []Message {
	messages := make([]Message, 0, len(report.Outcomes)*2+1)

	for _, o := range report.Outcomes {
		messages = append(messages, Message{
			Topic:   fmt.Sprintf("%v/steps/%v/outcome", prefix, o.Step),
			Payload: string(o.Kind),
		})

		if o.StatusCode != 0 {
			messages = append(messages, Message{
				Topic:   fmt.Sprintf("%v/steps/%v/status", prefix, o.Step),
				Payload: strconv.Itoa(o.StatusCode),
			})
		}
	}

	result := string(walkthrough.KindOK)
	if failure, ok := report.FirstFailure(); ok {
		result = string(failure.Kind)
	}

	return append(messages, Message{Topic: prefix + "/result", Payload: result})
}

// PublishReport - connects to the broker, publishes report and disconnects
func PublishReport(opts Opts, report *walkthrough.Report) error {
	clientOpts := MQTT.NewClientOptions()
	clientOpts.AddBroker(opts.BrokerURL)
	clientOpts.SetClientID(opts.ClientID)
	clientOpts.SetUsername(opts.Username)
	clientOpts.SetPassword(opts.Password)
	clientOpts.SetConnectTimeout(connectTimeout)

	client := MQTT.NewClient(clientOpts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Error().Str("broker_url", opts.BrokerURL).Err(token.Error()).Msg("Unable to connect to MQTT broker")
		return token.Error()
	}

	log.Info().Str("broker_url", opts.BrokerURL).Msg("Successfully connected to MQTT broker")
	defer client.Disconnect(250)

	return publishAll(ReportMessages(opts.TopicPrefix, report), func(m Message) error {
		token := client.Publish(m.Topic, 0, true, m.Payload)
		if !token.WaitTimeout(publishTimeout) {
			return errors.New("publish timed out")
		}

		return token.Error()
	})
}

func publishAll(messages []Message, publish func(Message) error) error {
	var firstErr error

	for _, m := range messages {
		log.Debug().Str("topic", m.Topic).Str("payload", m.Payload).Msg("Publishing")
		if err := publish(m); err != nil {
			log.Error().Str("topic", m.Topic).Err(err).Msg("Unable to publish outcome")
			if firstErr == nil {
				firstErr = fmt.Errorf("unable to publish %v: %w", m.Topic, err)
			}
		}
	}

	return firstErr
}
