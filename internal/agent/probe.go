package agent

import (
	"context"
	"errors"
)

// ProbePrompt is sent to each candidate model by FindWorkingModel.
const ProbePrompt = "Say 'Hello'"

// ErrNoWorkingModel is returned when every candidate failed.
var ErrNoWorkingModel = errors.New("no candidate model answered")

// FindWorkingModel tries candidates in order and returns the first model
// that answers the probe prompt. onAttempt, if set, sees every outcome.
func FindWorkingModel(ctx context.Context, candidates []string, build func(model string) (Agent, error), onAttempt func(model string, err error)) (string, error) {
	for _, model := range candidates {
		err := probe(ctx, model, build)
		if onAttempt != nil {
			onAttempt(model, err)
		}
		if err == nil {
			return model, nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}
	return "", ErrNoWorkingModel
}

func probe(ctx context.Context, model string, build func(string) (Agent, error)) error {
	a, err := build(model)
	if err != nil {
		return err
	}
	_, err = a.Send(ctx, ProbePrompt)
	return err
}
