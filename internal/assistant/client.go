// Package assistant is the boundary to the language-model collaborator.
// The model only ever sees a read-only snapshot of factory state; it never
// issues commands, and a failed call degrades to a canned Arabic apology.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	// FallbackReply is returned whenever the upstream call fails. The
	// console surfaces it as a normal chat turn, not an error.
	FallbackReply = "عذرًا، حدث خطأ أثناء الاتصال بالنموذج اللغوي. حاول مرة أخرى لاحقًا."

	defaultTimeout = 30 * time.Second
)

// Client calls a text-completion endpoint.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	model      string
	logger     *slog.Logger
}

// NewClient builds Client. endpoint may be empty, in which case every
// reply is the fallback.
func NewClient(logger *slog.Logger, endpoint, apiKey, model string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		endpoint:   endpoint,
		apiKey:     apiKey,
		model:      model,
		logger:     logger,
	}
}

type completionRequest struct {
	Model       string  `json:"model"`
	System      string  `json:"system"`
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temperature"`
}

type completionResponse struct {
	Text string `json:"text"`
}

// systemInstruction frames the model as the factory's analyst and appends
// the state snapshot it may consult.
func systemInstruction(view string, snapshot any) string {
	var b strings.Builder
	b.WriteString("أنت مساعد ذكي لنظام إدارة مصنع مستحضرات تجميل. هدفك هو مساعدة المستخدم على تحليل البيانات وإدارة عمليات المصنع بفعالية.\n")
	b.WriteString("يجب أن تكون إجاباتك دائماً باللغة العربية، احترافية، ومركزة على تقديم قيمة عملية للمستخدم.")

	switch view {
	case "customers":
		b.WriteString("\n\nأنت الآن تعمل كمستشار تطوير أعمال. ركز على فهم بيانات العملاء واقتراح استراتيجيات لزيادة المبيعات وتحسين العلاقات مع العملاء.")
	case "suppliers":
		b.WriteString("\n\nأنت الآن تعمل كمستشار مشتريات وسلاسل إمداد. ركز على تحليل بيانات الموردين واقتراح طرق لتحسين شروط الشراء.")
	}

	if data, err := json.Marshal(snapshot); err == nil {
		b.WriteString("\n\nإليك الحالة الحالية لبيانات المصنع بصيغة JSON. استخدم هذه البيانات للإجابة على أسئلة المستخدم:\n")
		b.Write(data)
	}
	return b.String()
}

// GetReply asks the model for one chat turn. The reply is always usable;
// upstream failures are logged and replaced with FallbackReply.
func (c *Client) GetReply(ctx context.Context, prompt, view string, snapshot any) string {
	reply, err := c.complete(ctx, prompt, view, snapshot)
	if err != nil {
		c.logger.Error("assistant call", slog.Any("error", err))
		return FallbackReply
	}
	return reply
}

func (c *Client) complete(ctx context.Context, prompt, view string, snapshot any) (string, error) {
	if c.endpoint == "" {
		return "", fmt.Errorf("no endpoint configured")
	}
	payload, err := json.Marshal(completionRequest{
		Model:       c.model,
		System:      systemInstruction(view, snapshot),
		Prompt:      prompt,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call completion endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("completion endpoint returned %d", resp.StatusCode)
	}

	var out completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if out.Text == "" {
		return "", fmt.Errorf("empty completion")
	}
	return out.Text, nil
}
