// Package imagegen calls an external image-synthesis API to render a
// shareable tax-impact infographic. It is strictly best-effort: the calculator
// never waits on it and every failure degrades to "no image".
package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
)

const defaultModel = "dall-e-3"

type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient builds a client for an OpenAI-compatible image generation
// endpoint. An empty apiKey disables the client; generation then always
// reports absence.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   defaultModel,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Enabled reports whether the client has credentials to call the provider.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

type generateRequest struct {
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	Size    string `json:"size"`
	Quality string `json:"quality"`
	N       int    `json:"n"`
}

type generateResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

// TaxImpactImage requests an infographic for the given annual tax and 30-year
// lost wealth figures and returns its URL. On any failure it logs and returns
// the empty string; callers treat that as "no image available".
func (c *Client) TaxImpactImage(ctx context.Context, totalTax, lostWealth float64) string {
	if !c.Enabled() {
		return ""
	}

	url, err := c.generate(ctx, taxImpactPrompt(totalTax, lostWealth))
	if err != nil {
		log.Printf("image generation failed: %v", err)
		return ""
	}
	return url
}

func taxImpactPrompt(totalTax, lostWealth float64) string {
	return fmt.Sprintf(`Create a minimalist infographic showing Canadian tax impact.
A professional financial chart with two main numbers:
Annual Tax: $%s
30-Year Lost Wealth: $%s
Use blue and red color scheme, clean modern design, white background.
Include Canadian maple leaf symbol.`,
		humanize.FormatFloat("#,###.", totalTax),
		humanize.FormatFloat("#,###.", lostWealth))
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:   c.model,
		Prompt:  prompt,
		Size:    "1024x1024",
		Quality: "standard",
		N:       1,
	})
	if err != nil {
		return "", fmt.Errorf("marshal image request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/images/generations", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build image request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call image provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("image provider error (status %d): %s", resp.StatusCode, string(detail))
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("decode image response: %w", err)
	}
	if len(genResp.Data) == 0 || genResp.Data[0].URL == "" {
		return "", fmt.Errorf("image response contained no image URL")
	}

	return genResp.Data[0].URL, nil
}
