package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"premiumcalc/internal/models/request_models"
	"premiumcalc/internal/models/response_models"
	"premiumcalc/pkg/utils"
)

// RemotePremiumClient calls a running POST /predict endpoint. No retries.
type RemotePremiumClient struct {
	url        string
	httpClient *http.Client
}

func NewRemotePremiumClient(url string, timeout time.Duration) *RemotePremiumClient {
	return &RemotePremiumClient{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *RemotePremiumClient) Predict(ctx context.Context, req request_models.PremiumRequest) (float64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return 0, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return 0, &utils.NetworkError{URL: c.url, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, &utils.NetworkError{URL: c.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return 0, &utils.NetworkError{
			URL:        c.url,
			StatusCode: resp.StatusCode,
			Err:        utils.ErrUnexpectedStatus,
		}
	}

	var out response_models.PredictionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, &utils.NetworkError{URL: c.url, StatusCode: resp.StatusCode, Err: err}
	}
	return float64(out.PredictedPremium), nil
}
