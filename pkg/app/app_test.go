package app_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/adam.stanek/growthwalk/pkg/app"
	"gitlab.com/adam.stanek/growthwalk/pkg/fakeapi"
)

func newTestOpts(t *testing.T) app.Opts {
	opts := app.DefaultOpts()

	server := httptest.NewServer(fakeapi.New([]byte("app-secret")))
	t.Cleanup(server.Close)
	opts.BaseURL = server.URL + "/api/"

	return opts
}

func TestRunCompletes(t *testing.T) {
	out := &bytes.Buffer{}
	instance := app.NewApp(newTestOpts(t), out)

	report := instance.Run(context.Background())

	assert.True(t, report.Completed(), out.String())
	assert.True(t, strings.HasPrefix(out.String(), "Attempting to register user...\n"))
}

func TestUniqueUsername(t *testing.T) {
	opts := newTestOpts(t)
	opts.UniqueUsername = true

	first := app.NewApp(opts, &bytes.Buffer{})
	second := app.NewApp(opts, &bytes.Buffer{})

	assert.True(t, strings.HasPrefix(first.Scenario.Account.Username, "newuser789_"))
	assert.NotEqual(t, first.Scenario.Account.Username, second.Scenario.Account.Username)

	assert.True(t, first.Run(context.Background()).Completed())
	assert.True(t, second.Run(context.Background()).Completed())
}

func TestRunWithoutServer(t *testing.T) {
	opts := newTestOpts(t)
	opts.BaseURL = "http://127.0.0.1:1/api"
	out := &bytes.Buffer{}

	report := app.NewApp(opts, out).Run(context.Background())

	assert.False(t, report.Completed())
	assert.Contains(t, out.String(), "Error during login: ")
}
