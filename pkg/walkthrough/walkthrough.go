package walkthrough

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"gitlab.com/adam.stanek/growthwalk/pkg/baby"
	"gitlab.com/adam.stanek/growthwalk/pkg/client"
	"gitlab.com/adam.stanek/growthwalk/pkg/utils"
)

// API - Baby Care API calls the walkthrough depends on
type API interface {
	Register(ctx context.Context, req baby.RegisterRequest) (*client.Response, error)
	Login(ctx context.Context, req baby.LoginRequest) (*client.Response, error)
	CreateFamily(ctx context.Context, token string, req baby.FamilyCreateRequest) (*client.Response, error)
	AddBaby(ctx context.Context, token string, req baby.BabyCreateRequest) (*client.Response, error)
	CreateGrowthRecord(ctx context.Context, token string, req baby.GrowthRecordCreateRequest) (*client.Response, error)
}

// console texts of a single step
type stepText struct {
	step     Step
	announce string
	label    string
	action   string
	field    string
	types    []gjson.Type
	success  string
	failed   string
	missing  string
}

var (
	registerText = stepText{
		step:     StepRegister,
		announce: "Attempting to register user...",
		label:    "Register",
		action:   "registration",
	}
	loginText = stepText{
		step:     StepLogin,
		announce: "Attempting to login...",
		label:    "Login",
		action:   "login",
		field:    client.TokenField,
		types:    client.TokenTypes,
		success:  "Successfully logged in. Token:",
		failed:   "Login failed.",
		missing:  "Failed to extract token from login response.",
	}
	familyText = stepText{
		step:     StepFamily,
		announce: "Attempting to create family...",
		label:    "Family creation",
		action:   "family creation",
		field:    client.IDField,
		types:    client.IDTypes,
		success:  "Successfully created family with ID:",
		failed:   "Failed to create family.",
		missing:  "Failed to extract family ID from family creation response.",
	}
	babyText = stepText{
		step:     StepBaby,
		announce: "Attempting to add baby...",
		label:    "Baby creation",
		action:   "baby creation",
		field:    client.IDField,
		types:    client.IDTypes,
		success:  "Successfully created baby with ID:",
		failed:   "Failed to create baby.",
		missing:  "Failed to extract baby ID from baby creation response.",
	}
	recordText = stepText{
		step:     StepRecord,
		announce: "Attempting to create growth record...",
		label:    "Record creation",
		action:   "record creation",
		success:  "Successfully created growth record!",
		failed:   "Failed to create growth record.",
	}
)

// Walkthrough - runs register, login, family, baby and growth record creation in order
type Walkthrough struct {
	API      API
	Out      io.Writer
	Scenario Scenario
}

// New - constructor, nil out prints to stdout
func New(api API, out io.Writer, scenario Scenario) *Walkthrough {
	if out == nil {
		out = os.Stdout
	}

	return &Walkthrough{
		API:      api,
		Out:      out,
		Scenario: scenario,
	}
}

// Run - executes all steps sequentially
// The chain stops at the first gating step that fails, remaining steps are reported as skipped.
// Registration is attempted first but its outcome does not gate the login.
func (w *Walkthrough) Run(ctx context.Context) *Report {
	report := &Report{}

	w.register(ctx, report)

	token, ok := w.login(ctx, report)
	if !ok {
		report.skip(StepFamily, StepBaby, StepRecord)
		return report
	}

	familyID, ok := w.create(familyText, report, func() (*client.Response, error) {
		return w.API.CreateFamily(ctx, token, w.Scenario.Family)
	})
	if !ok {
		report.skip(StepBaby, StepRecord)
		return report
	}

	babyReq := w.Scenario.Baby
	babyReq.FamilyID = familyID
	babyID, ok := w.create(babyText, report, func() (*client.Response, error) {
		return w.API.AddBaby(ctx, token, babyReq)
	})
	if !ok {
		report.skip(StepRecord)
		return report
	}

	recordReq := w.Scenario.Record
	recordReq.BabyID = babyID
	w.createRecord(ctx, token, recordReq, report)

	return report
}

func (w *Walkthrough) register(ctx context.Context, report *Report) {
	res, failure := w.exchange(registerText, func() (*client.Response, error) {
		return w.API.Register(ctx, w.Scenario.Account)
	})
	if failure != nil {
		report.add(*failure)
		return
	}

	outcome := StepOutcome{Step: StepRegister, StatusCode: res.StatusCode, Kind: KindOK}
	if !res.OK() {
		outcome.Kind = KindStatus
		outcome.Err = &client.StatusError{Path: res.Path, StatusCode: res.StatusCode}
		log.Warn().Int("code", res.StatusCode).Str("message", res.Message()).Msg("Registration rejected, continuing with login")
	}

	report.add(outcome)
}

func (w *Walkthrough) login(ctx context.Context, report *Report) (string, bool) {
	res, failure := w.exchange(loginText, func() (*client.Response, error) {
		return w.API.Login(ctx, w.Scenario.login())
	})
	if failure != nil {
		report.add(*failure)
		return "", false
	}

	value, outcome := w.expect(loginText, res)
	report.add(outcome)
	if outcome.Kind != KindOK {
		return "", false
	}

	token := value.String()
	w.printf("%s %s\n", loginText.success, token)

	msg := log.Info().Str("token", utils.AnonymizeToken(token, 4))
	if info := client.InspectToken(token); info.IsJWT {
		msg.Str("subject", info.Subject).Time("expires", info.ExpiresAt)
	}
	msg.Msg("Authorized")

	return token, true
}

// create - runs a step whose response carries data.id of the created entity
func (w *Walkthrough) create(t stepText, report *Report, call func() (*client.Response, error)) (json.RawMessage, bool) {
	res, failure := w.exchange(t, call)
	if failure != nil {
		report.add(*failure)
		return nil, false
	}

	value, outcome := w.expect(t, res)
	if outcome.Kind == KindOK {
		outcome.ID = value.String()
	}
	report.add(outcome)

	if outcome.Kind != KindOK {
		return nil, false
	}

	w.printf("%s %s\n", t.success, value.String())
	log.Info().Str("step", string(t.step)).Str("id", value.String()).Msg("Entity created")

	return json.RawMessage(value.Raw), true
}

func (w *Walkthrough) createRecord(ctx context.Context, token string, req baby.GrowthRecordCreateRequest, report *Report) {
	res, failure := w.exchange(recordText, func() (*client.Response, error) {
		return w.API.CreateGrowthRecord(ctx, token, req)
	})
	if failure != nil {
		report.add(*failure)
		return
	}

	_, outcome := w.expect(recordText, res)
	report.add(outcome)

	if outcome.Kind == KindOK {
		w.println(recordText.success)
	}
}

// exchange - announces the step, performs the call and prints status and body
// Returns outcome only if the call itself failed.
func (w *Walkthrough) exchange(t stepText, call func() (*client.Response, error)) (*client.Response, *StepOutcome) {
	if t.step != StepRegister {
		w.println("")
	}
	w.println(t.announce)

	res, err := call()
	if err != nil {
		w.printf("Error during %s: %v\n", t.action, err)
		log.Error().Str("step", string(t.step)).Err(err).Msg("Step failed")
		return nil, &StepOutcome{Step: t.step, Kind: KindTransport, Err: err}
	}

	w.printf("%s response status: %d\n", t.label, res.StatusCode)
	w.printf("%s response body: %s\n", t.label, res.Text())

	return res, nil
}

// expect - checks status and extracts the step's field, printing failure messages
func (w *Walkthrough) expect(t stepText, res *client.Response) (gjson.Result, StepOutcome) {
	outcome := StepOutcome{Step: t.step, StatusCode: res.StatusCode, Kind: KindOK}

	if !res.OK() {
		w.println(t.failed)
		outcome.Kind = KindStatus
		outcome.Err = &client.StatusError{Path: res.Path, StatusCode: res.StatusCode}
		log.Warn().Str("step", string(t.step)).Int("code", res.StatusCode).Str("message", res.Message()).Msg("Unexpected status code")
		return gjson.Result{}, outcome
	}

	if t.field == "" {
		return gjson.Result{}, outcome
	}

	value, err := res.Field(t.field, t.types...)
	if err == nil {
		return value, outcome
	}

	var malformedErr *client.MalformedBodyError
	if errors.As(err, &malformedErr) {
		w.printf("Error during %s: %v\n", t.action, err)
		outcome.Kind = KindMalformed
	} else {
		w.println(t.missing)
		outcome.Kind = KindMissingField
	}

	outcome.Err = err
	log.Warn().Str("step", string(t.step)).Err(err).Msg("Unable to extract field from response")

	return gjson.Result{}, outcome
}

func (w *Walkthrough) printf(format string, args ...interface{}) {
	fmt.Fprintf(w.Out, format, args...)
}

func (w *Walkthrough) println(line string) {
	fmt.Fprintln(w.Out, line)
}
