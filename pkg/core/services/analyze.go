package services

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/mfcardoso/soure-transport/pkg/clients/geminiclient"
	"github.com/mfcardoso/soure-transport/pkg/core/model"
)

// AdvisoryGenerator produces free-form advisory text from a prompt
type AdvisoryGenerator interface {
	GenerateAdvisory(ctx context.Context, prompt string) (string, error)
}

// AnalyzeScheduleResult carries the advisory text and whether it came
// from the model or the static fallback
type AnalyzeScheduleResult struct {
	Advisory string
	Fallback bool
}

// AnalyzeSchedule asks the generative model for a short coordination
// summary over the current state
// Any failure degrades to the fixed fallback text instead of an error;
// the advisory is decorative and must never block dispatch work
func AnalyzeSchedule(
	ctx context.Context,
	store SnapshotStore,
	generator AdvisoryGenerator,
	logger *zap.Logger,
) (*AnalyzeScheduleResult, error) {
	snapshot, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	prompt, err := buildAdvisoryPrompt(snapshot)
	if err != nil {
		logger.Warn("Failed to build advisory prompt", zap.Error(err))
		return &AnalyzeScheduleResult{Advisory: geminiclient.FallbackAdvisory, Fallback: true}, nil
	}

	advisory, err := generator.GenerateAdvisory(ctx, prompt)
	if err != nil {
		logger.Warn("Advisory generation failed", zap.Error(err))
		return &AnalyzeScheduleResult{Advisory: geminiclient.FallbackAdvisory, Fallback: true}, nil
	}

	logger.Info("Generated schedule advisory", zap.Int("length", len(advisory)))
	return &AnalyzeScheduleResult{Advisory: advisory}, nil
}

// buildAdvisoryPrompt serialises the dispatch state into the analysis
// prompt. Only requests with no complete assignments count as pending;
// half-filled slots left over from editing don't resolve anything.
func buildAdvisoryPrompt(snapshot *model.Snapshot) (string, error) {
	pending := make([]model.BusRequest, 0)
	for _, r := range snapshot.Requests {
		if len(r.CompleteAssignments()) == 0 {
			pending = append(pending, r)
		}
	}

	drivers, err := json.Marshal(snapshot.Drivers)
	if err != nil {
		return "", fmt.Errorf("failed to serialise drivers: %w", err)
	}
	buses, err := json.Marshal(snapshot.Buses)
	if err != nil {
		return "", fmt.Errorf("failed to serialise buses: %w", err)
	}
	pendingJSON, err := json.Marshal(pending)
	if err != nil {
		return "", fmt.Errorf("failed to serialise pending requests: %w", err)
	}
	unavailabilities, err := json.Marshal(snapshot.Unavailabilities)
	if err != nil {
		return "", fmt.Errorf("failed to serialise unavailabilities: %w", err)
	}

	prompt := fmt.Sprintf(`Act as the transport coordinator for the Municipality of Soure.
Analyse the following data and give a short summary (3 paragraphs at most) covering schedule conflicts and suggested driver and bus assignments.

Drivers: %s
Buses: %s
Pending requests: %s
Unavailabilities: %s

Be direct and practical.`,
		drivers, buses, pendingJSON, unavailabilities)

	return prompt, nil
}
