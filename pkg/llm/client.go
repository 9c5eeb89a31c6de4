package llm

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nikogura/resume-builder/pkg/resume"
	"github.com/pkg/errors"
	"github.com/sashabaranov/go-openai"
)

const (
	// DefaultBaseURL is the OpenRouter OpenAI compatible API root.
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	// DefaultModel is the model to use.
	DefaultModel = "nvidia/nemotron-3-nano-30b-a3b:free"
	// DefaultTimeout bounds the single outbound call.
	DefaultTimeout = 60 * time.Second
	// DefaultAppTitle is sent as the X-Title attribution header.
	DefaultAppTitle = "AI Resume Builder"
)

// Client talks to an OpenAI compatible chat completion endpoint.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	referer string
	title   string
	timeout time.Duration
	api     *openai.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another OpenAI compatible API root.
func WithBaseURL(baseURL string) (opt Option) {
	opt = func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
	return opt
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(timeout time.Duration) (opt Option) {
	opt = func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
	return opt
}

// WithAttribution sets the OpenRouter HTTP-Referer and X-Title headers.
// Empty values leave the header off.
func WithAttribution(referer, title string) (opt Option) {
	opt = func(c *Client) {
		c.referer = referer
		c.title = title
	}
	return opt
}

// NewClient creates a new generation API client.
func NewClient(apiKey, model string, opts ...Option) (client *Client) {
	if model == "" {
		model = DefaultModel
	}

	client = &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: DefaultBaseURL,
		title:   DefaultAppTitle,
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = client.baseURL
	config.HTTPClient = &http.Client{
		Timeout: client.timeout,
		Transport: &attributionTransport{
			base:    http.DefaultTransport,
			referer: client.referer,
			title:   client.title,
		},
	}
	client.api = openai.NewClientWithConfig(config)

	return client
}

// Model returns the model the client sends requests for.
func (c *Client) Model() (model string) {
	model = c.model
	return model
}

// Enhance asks the model to rewrite the resume against the job description.
// Any failure comes back as one of ConfigError, TransportError, UpstreamError
// or PayloadError.
func (c *Client) Enhance(ctx context.Context, resumeText, jobDescription string) (enhancement resume.Enhancement, err error) {
	var content string
	content, err = c.complete(ctx, enhanceSystemPrompt, buildEnhancePrompt(resumeText, jobDescription))
	if err != nil {
		return enhancement, err
	}

	enhancement, err = ParseEnhancement(content)
	return enhancement, err
}

// CoverLetter asks the model for a plain text cover letter.
func (c *Client) CoverLetter(ctx context.Context, resumeText, jobDescription string) (letter string, err error) {
	var content string
	content, err = c.complete(ctx, coverLetterSystemPrompt, buildCoverLetterPrompt(resumeText, jobDescription))
	if err != nil {
		return letter, err
	}

	letter = strings.TrimSpace(stripMarkdownCodeFences(strings.TrimSpace(content)))
	if letter == "" {
		err = &PayloadError{Reason: "cover letter is empty"}
		return letter, err
	}

	return letter, err
}

// complete sends one chat completion request and returns the first choice.
func (c *Client) complete(ctx context.Context, system, user string) (content string, err error) {
	if strings.TrimSpace(c.apiKey) == "" {
		err = &ConfigError{Message: "missing API key"}
		return content, err
	}

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: system,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: user,
			},
		},
	}

	body := &errorBody{}
	ctx = context.WithValue(ctx, errorBodyKey{}, body)

	var resp openai.ChatCompletionResponse
	resp, err = c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		err = classify(err, body.text)
		return content, err
	}

	if len(resp.Choices) == 0 {
		err = &PayloadError{Reason: "response has no choices"}
		return content, err
	}

	content = resp.Choices[0].Message.Content
	return content, err
}

// maxErrorBody caps how much of a failed response is kept for UpstreamError.
const maxErrorBody = 64 << 10

type errorBodyKey struct{}

// errorBody receives the raw body of a failed response for one call.
type errorBody struct {
	text string
}

// attributionTransport adds the OpenRouter attribution headers and keeps a
// copy of any error response body for the caller.
type attributionTransport struct {
	base    http.RoundTripper
	referer string
	title   string
}

func (t *attributionTransport) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	if t.referer != "" || t.title != "" {
		req = req.Clone(req.Context())
		if t.referer != "" {
			req.Header.Set("HTTP-Referer", t.referer)
		}
		if t.title != "" {
			req.Header.Set("X-Title", t.title)
		}
	}

	resp, err = t.base.RoundTrip(req)
	if err != nil || resp.StatusCode < http.StatusBadRequest {
		return resp, err
	}

	body, ok := req.Context().Value(errorBodyKey{}).(*errorBody)
	if !ok {
		return resp, err
	}

	// The client still decodes the body, so hand back what was read.
	var head []byte
	head, err = io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		_ = resp.Body.Close()
		err = errors.Wrap(err, "failed to read error response")
		return nil, err
	}

	body.text = strings.TrimSpace(string(head))
	resp.Body = struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(head), resp.Body), resp.Body}

	return resp, err
}

// stripMarkdownCodeFences removes markdown code fences from model responses.
func stripMarkdownCodeFences(text string) (cleaned string) {
	cleaned = text

	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}

	// Drop the opening fence line, language tag included.
	start := strings.IndexByte(cleaned, '\n')
	if start < 0 {
		cleaned = strings.Trim(cleaned, "`")
		return cleaned
	}
	cleaned = cleaned[start+1:]

	cleaned = strings.TrimRight(cleaned, " \r\n\t")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimRight(cleaned, " \r\n\t")

	return cleaned
}
