package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"

	"salestrack/internal/domain/kpi"
	"salestrack/internal/domain/roster"
	"salestrack/internal/domain/tasks"
	"salestrack/internal/platform/jobs"
)

// Client talks to the spreadsheet script endpoint. The script multiplexes
// everything over one URL with an action query parameter: getData returns
// the full snapshot, the save actions upsert a single record.
type Client struct {
	scriptURL string
	http      *http.Client
}

func New(scriptURL string) *Client {
	return &Client{
		scriptURL: scriptURL,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

type envelope struct {
	Status string        `json:"status"`
	Data   jobs.Snapshot `json:"data"`
}

// LoadAll fetches the full snapshot. The fetch is retried a few times with
// exponential backoff since the script endpoint cold-starts; mirror writes
// deliberately get no such treatment.
func (c *Client) LoadAll(ctx context.Context) (jobs.Snapshot, error) {
	var snapshot jobs.Snapshot

	operation := func() error {
		// Cache-busting timestamp, the script endpoint sits behind an
		// aggressive edge cache.
		endpoint := c.scriptURL + "?action=getData&t=" + strconv.FormatInt(time.Now().UnixMilli(), 10)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("bulk load returned status %d", resp.StatusCode)
		}

		var env envelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			return err
		}
		if env.Status != "success" {
			return fmt.Errorf("bulk load returned status %q", env.Status)
		}
		snapshot = env.Data
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return jobs.Snapshot{}, err
	}

	normalizeSnapshot(&snapshot)
	return snapshot, nil
}

func (c *Client) SaveEvaluation(ctx context.Context, ev kpi.Evaluation) error {
	return c.post(ctx, "saveEvaluation", ev)
}

func (c *Client) SaveUser(ctx context.Context, u roster.User) error {
	return c.post(ctx, "saveUser", u)
}

func (c *Client) SaveSalesPerson(ctx context.Context, sp roster.SalesPerson) error {
	return c.post(ctx, "saveSales", sp)
}

func (c *Client) SaveTask(ctx context.Context, task tasks.Task) error {
	return c.post(ctx, "saveTask", task)
}

func (c *Client) AddPrinciple(ctx context.Context, name string) error {
	return c.post(ctx, "addPrinciple", map[string]string{"name": name})
}

func (c *Client) post(ctx context.Context, action string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	endpoint := c.scriptURL + "?action=" + url.QueryEscape(action)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s returned status %d", action, resp.StatusCode)
	}
	return nil
}

// normalizeSnapshot lifts fractional ratings back onto the 0-100 scale.
// Sheet formulas occasionally hand scores back as 0-1 fractions depending on
// how the cell was formatted.
func normalizeSnapshot(snapshot *jobs.Snapshot) {
	for i := range snapshot.Evaluations {
		ev := &snapshot.Evaluations[i]
		for key, value := range ev.Scores {
			ev.Scores[key] = normalizeRating(value)
		}
		ev.FinalScore = normalizeRating(ev.FinalScore)
	}
}

func normalizeRating(value float64) float64 {
	if value > 0 && value <= 1 {
		return value * 100
	}
	return value
}
