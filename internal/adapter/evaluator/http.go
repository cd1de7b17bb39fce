package evaluator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/domain"
	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/port"
)

// HTTPEvaluator implements port.QualityEvaluator against the AI keyword
// evaluation service. One POST per run with the whole batch; the engine
// treats any failure as non-fatal.
type HTTPEvaluator struct {
	url    string
	client *http.Client
}

// NewHTTPEvaluator returns an evaluator posting batches to url.
func NewHTTPEvaluator(url string, timeout time.Duration) *HTTPEvaluator {
	return &HTTPEvaluator{url: url, client: &http.Client{Timeout: timeout}}
}

type evalKeyword struct {
	ID            int64   `json:"id"`
	Text          string  `json:"text"`
	MonthlyVolume int     `json:"monthly_volume"`
	EstimatedCPC  float64 `json:"estimated_cpc"`
	Intent        string  `json:"intent"`
}

type evalRequest struct {
	Keywords []evalKeyword `json:"keywords"`
}

type evalResponse struct {
	Bid          int `json:"bid"`
	Review       int `json:"review"`
	Skip         int `json:"skip"`
	AutoArchived int `json:"auto_archived"`
}

// EvaluateKeywords posts the batch and returns the service's decision
// counts.
func (e *HTTPEvaluator) EvaluateKeywords(ctx context.Context, keywords []domain.CandidateKeyword) (port.EvaluationSummary, error) {
	batch := evalRequest{Keywords: make([]evalKeyword, 0, len(keywords))}
	for _, kw := range keywords {
		batch.Keywords = append(batch.Keywords, evalKeyword{
			ID:            kw.ID,
			Text:          kw.Text,
			MonthlyVolume: kw.MonthlyVolume,
			EstimatedCPC:  kw.EstimatedCPC,
			Intent:        string(kw.Intent),
		})
	}
	body, err := json.Marshal(batch)
	if err != nil {
		return port.EvaluationSummary{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(body))
	if err != nil {
		return port.EvaluationSummary{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return port.EvaluationSummary{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return port.EvaluationSummary{}, fmt.Errorf("evaluator returned %s", resp.Status)
	}

	var out evalResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return port.EvaluationSummary{}, err
	}
	return port.EvaluationSummary{
		Bid:          out.Bid,
		Review:       out.Review,
		Skip:         out.Skip,
		AutoArchived: out.AutoArchived,
	}, nil
}
