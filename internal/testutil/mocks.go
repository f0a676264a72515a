package testutil

import (
	"net/http"

	"github.com/habtools/habctl/internal/errors"
)

// FailingHTTPClient always rejects with the configured error, simulating a
// transport failure.
type FailingHTTPClient struct {
	Err error
}

// Do implements rest.HTTPClientProvider
func (c *FailingHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return nil, c.Err
}

// RecordingPrompter is a Prompter stub that records presented messages and
// returns scripted answers.
type RecordingPrompter struct {
	Messages []string
	Action   errors.RecoveryAction
	Host     string
}

// PickRecovery records the message and returns the scripted action
func (p *RecordingPrompter) PickRecovery(message string) (errors.RecoveryAction, error) {
	p.Messages = append(p.Messages, message)
	if p.Action == "" {
		return errors.ActionDismiss, nil
	}
	return p.Action, nil
}

// AskHost returns the scripted host value
func (p *RecordingPrompter) AskHost(current string) (string, error) {
	return p.Host, nil
}
