package gotrue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"notes-be/pkg/identity"

	"github.com/google/uuid"
)

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInResponse struct {
	AccessToken string `json:"access_token"`
	User        struct {
		Id string `json:"id"`
	} `json:"user"`
}

// Provider authenticates against a GoTrue-compatible endpoint (Supabase
// auth speaks this protocol). The app never sees passwords validated here.
type Provider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewProvider(baseURL, apiKey string) *Provider {
	return &Provider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{},
	}
}

func (p *Provider) SignInWithPassword(ctx context.Context, email, password string) (uuid.UUID, error) {
	payload := signInRequest{
		Email:    email,
		Password: password,
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return uuid.Nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		"POST",
		p.baseURL+"/auth/v1/token?grant_type=password",
		bytes.NewBuffer(payloadJson),
	)
	if err != nil {
		return uuid.Nil, err
	}

	req.Header.Set("apikey", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return uuid.Nil, err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return uuid.Nil, err
	}

	if res.StatusCode == http.StatusBadRequest || res.StatusCode == http.StatusUnauthorized {
		return uuid.Nil, identity.ErrInvalidCredentials
	}
	if res.StatusCode != http.StatusOK {
		return uuid.Nil, fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var signIn signInResponse
	if err := json.Unmarshal(resBody, &signIn); err != nil {
		return uuid.Nil, err
	}

	userId, err := uuid.Parse(signIn.User.Id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id in auth response: %w", err)
	}

	return userId, nil
}
