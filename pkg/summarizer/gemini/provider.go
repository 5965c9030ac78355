package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"notes-be/pkg/summarizer"
)

// summaryInstruction is fixed; tone and length are part of the product,
// not caller-configurable.
const summaryInstruction = "Summarize the following note in a concise, warm tone, 2-3 sentences:\n\n"

type geminiParts struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []*geminiParts `json:"parts"`
	Role  string         `json:"role"`
}

type geminiRequest struct {
	Contents []*geminiContent `json:"contents"`
}

type geminiCandidate struct {
	Content *geminiContent `json:"content"`
}

type geminiResponse struct {
	Candidates []*geminiCandidate `json:"candidates"`
}

type Provider struct {
	apiKey string
	model  string
	client *http.Client
}

func NewProvider(apiKey, model string) summarizer.Provider {
	return &Provider{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{},
	}
}

func (p *Provider) Summarize(ctx context.Context, content string) (string, error) {
	payload := geminiRequest{
		Contents: []*geminiContent{
			{
				Parts: []*geminiParts{
					{Text: summaryInstruction + content},
				},
				Role: "user",
			},
		},
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1/models/%s:generateContent",
		p.model,
	)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", err
	}

	req.Header.Set("x-goog-api-key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var geminiRes geminiResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return "", err
	}

	if len(geminiRes.Candidates) == 0 ||
		geminiRes.Candidates[0].Content == nil ||
		len(geminiRes.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty candidates in gemini response")
	}

	return geminiRes.Candidates[0].Content.Parts[0].Text, nil
}
