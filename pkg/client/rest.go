package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gitlab.com/adam.stanek/growthwalk/pkg/baby"
)

// BabyCareClient - client context
type BabyCareClient struct {
	BaseURL string
	HTTP    *http.Client
}

// NewBabyCareClient - constructor, zero timeout means requests wait for the server indefinitely
func NewBabyCareClient(baseURL string, timeout time.Duration) *BabyCareClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &BabyCareClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// Register - creates user account
func (c *BabyCareClient) Register(ctx context.Context, req baby.RegisterRequest) (*Response, error) {
	log.Info().Str("username", req.Username).Msg("Registering user")
	return c.post(ctx, RegisterPath, "", req)
}

// Login - authenticates user, token is expected in data.token of the response
func (c *BabyCareClient) Login(ctx context.Context, req baby.LoginRequest) (*Response, error) {
	log.Info().Str("username", req.Username).Msg("Authorizing using user credentials")
	return c.post(ctx, LoginPath, "", req)
}

// CreateFamily - creates family owned by the authorized user
func (c *BabyCareClient) CreateFamily(ctx context.Context, token string, req baby.FamilyCreateRequest) (*Response, error) {
	return c.post(ctx, FamilyCreatePath, token, req)
}

// AddBaby - adds baby profile to a family
func (c *BabyCareClient) AddBaby(ctx context.Context, token string, req baby.BabyCreateRequest) (*Response, error) {
	return c.post(ctx, BabyAddPath, token, req)
}

// CreateGrowthRecord - creates growth record of a baby
func (c *BabyCareClient) CreateGrowthRecord(ctx context.Context, token string, req baby.GrowthRecordCreateRequest) (*Response, error) {
	return c.post(ctx, GrowthRecordCreatePath, token, req)
}

func (c *BabyCareClient) post(ctx context.Context, path string, token string, payload interface{}) (*Response, error) {
	requestBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("unable to marshal %v payload: %w", path, err)
	}

	url := c.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(requestBody))
	if err != nil {
		return nil, fmt.Errorf("unable to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log.Debug().Str("url", url).Bool("authorized", token != "").Msg("Sending request")

	res, err := c.httpClient().Do(req)
	if err != nil {
		log.Error().Str("url", url).Err(err).Msg("HTTP request failed")
		return nil, &TransportError{Path: path, Err: err}
	}

	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &TransportError{Path: path, Err: err}
	}

	response := &Response{Path: path, StatusCode: res.StatusCode, Body: body}

	msg := log.Debug().Str("url", url).Int("code", res.StatusCode)
	if m := response.Message(); m != "" {
		msg.Str("message", m)
	}
	msg.Msg("Received response")

	return response, nil
}

func (c *BabyCareClient) httpClient() *http.Client {
	if c.HTTP == nil {
		return http.DefaultClient
	}

	return c.HTTP
}
