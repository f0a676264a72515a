// Package prompt collects interactive input using the survey library.
package prompt

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/habtools/habctl/internal/errors"
)

// Prompter presents interactive choices and inputs. Implementations other
// than the survey one exist only in tests.
type Prompter interface {
	// PickRecovery presents an error message with the fixed recovery
	// actions and returns the chosen one. A dismissed or aborted prompt
	// returns ActionDismiss.
	PickRecovery(message string) (errors.RecoveryAction, error)

	// AskHost collects a new host value, offering the current one as the
	// default.
	AskHost(current string) (string, error)
}

// SurveyPrompter implements Prompter on top of survey.
type SurveyPrompter struct {
	interactive bool
}

// NewSurveyPrompter creates a survey-based prompter. When interactive is
// false every prompt resolves to its dismissive default.
func NewSurveyPrompter(interactive bool) *SurveyPrompter {
	return &SurveyPrompter{interactive: interactive}
}

// PickRecovery presents the recovery action selector.
func (p *SurveyPrompter) PickRecovery(message string) (errors.RecoveryAction, error) {
	if !p.interactive {
		return errors.ActionDismiss, nil
	}

	options := make([]string, 0, len(errors.RecoveryActions()))
	for _, action := range errors.RecoveryActions() {
		options = append(options, string(action))
	}

	var choice string
	question := &survey.Select{
		Message: message,
		Options: options,
		Default: string(errors.ActionDismiss),
	}
	if err := survey.AskOne(question, &choice); err != nil {
		// Ctrl-C on the selector means dismiss, not failure
		return errors.ActionDismiss, nil
	}

	return errors.RecoveryAction(choice), nil
}

// AskHost collects a replacement host value.
func (p *SurveyPrompter) AskHost(current string) (string, error) {
	if !p.interactive {
		return "", errors.New(errors.ErrorTypeConfig, "cannot prompt for host in non-interactive mode")
	}

	var host string
	question := &survey.Input{
		Message: "Server host:",
		Default: current,
	}
	if err := survey.AskOne(question, &host); err != nil {
		return "", errors.Wrap(err, errors.ErrorTypeConfig, "host prompt aborted")
	}

	return host, nil
}
