package mqtt

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/adam.stanek/growthwalk/pkg/walkthrough"
)

func TestReportMessagesCompleted(t *testing.T) {
	report := &walkthrough.Report{}
	for _, s := range walkthrough.Steps {
		report.Outcomes = append(report.Outcomes, walkthrough.StepOutcome{Step: s, Kind: walkthrough.KindOK, StatusCode: http.StatusOK})
	}

	messages := ReportMessages("growthwalk", report)

	assert.Len(t, messages, len(walkthrough.Steps)*2+1)
	assert.Equal(t, Message{Topic: "growthwalk/steps/register/outcome", Payload: "ok"}, messages[0])
	assert.Equal(t, Message{Topic: "growthwalk/steps/register/status", Payload: "200"}, messages[1])
	assert.Equal(t, Message{Topic: "growthwalk/result", Payload: "ok"}, messages[len(messages)-1])
}

func TestReportMessagesHalted(t *testing.T) {
	report := &walkthrough.Report{Outcomes: []walkthrough.StepOutcome{
		{Step: walkthrough.StepRegister, Kind: walkthrough.KindStatus, StatusCode: http.StatusBadRequest},
		{Step: walkthrough.StepLogin, Kind: walkthrough.KindTransport},
		{Step: walkthrough.StepFamily, Kind: walkthrough.KindSkipped},
	}}

	messages := ReportMessages("bc", report)

	assert.Equal(t, []Message{
		{Topic: "bc/steps/register/outcome", Payload: "status"},
		{Topic: "bc/steps/register/status", Payload: "400"},
		{Topic: "bc/steps/login/outcome", Payload: "transport"},
		{Topic: "bc/steps/family/outcome", Payload: "skipped"},
		{Topic: "bc/result", Payload: "transport"},
	}, messages)
}

func TestPublishAllContinuesAfterError(t *testing.T) {
	published := []string{}
	messages := []Message{{Topic: "a"}, {Topic: "b"}, {Topic: "c"}}

	err := publishAll(messages, func(m Message) error {
		published = append(published, m.Topic)
		if m.Topic == "b" {
			return errors.New("broker gone")
		}
		return nil
	})

	assert.EqualError(t, err, "unable to publish b: broker gone")
	assert.Equal(t, []string{"a", "b", "c"}, published)
}
