package parser

import (
	"context"
	"fmt"
	"net/http"

	"github.com/UnknownOlympus/focuslearn/internal/models"
)

// RosterParserIface fetches and parses a training roster published over HTTP.
type RosterParserIface interface {
	FetchRoster(ctx context.Context) ([]models.TrainingEmployee, error)
}

type RosterParser struct {
	client  *http.Client
	destURL string
}

func NewRosterParser(client *http.Client, destURL string) RosterParserIface {
	return &RosterParser{client: client, destURL: destURL}
}

func (rp *RosterParser) FetchRoster(ctx context.Context) ([]models.TrainingEmployee, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rp.destURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create new request %s: %w", rp.destURL, err)
	}
	req.Header.Set("User-Agent", models.UserAgent)

	resp, err := rp.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request %s: %w", rp.destURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from %s", resp.StatusCode, rp.destURL)
	}

	return ParseRoster(resp.Body)
}
