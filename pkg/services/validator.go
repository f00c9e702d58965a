// Package services implements the question-to-rows pipeline stages.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/askdb-io/askdb/pkg/llm"
	"github.com/askdb-io/askdb/pkg/models"
	"github.com/askdb-io/askdb/pkg/prompts"
)

// failClosedJustification is returned when the model reply cannot be parsed.
const failClosedJustification = "Failed to validate query."

// QueryValidator judges whether a question is a sensible, schema-aligned
// data-retrieval request.
type QueryValidator interface {
	Validate(ctx context.Context, question string) (*models.Verdict, error)
}

type queryValidator struct {
	chatClient llm.ChatClient
	logger     *zap.Logger
}

// NewQueryValidator creates a validator backed by the given chat client.
func NewQueryValidator(chatClient llm.ChatClient, logger *zap.Logger) QueryValidator {
	return &queryValidator{
		chatClient: chatClient,
		logger:     logger.Named("validator"),
	}
}

// Validate sends the question with the validation instruction and parses the
// two-token verdict. An unparseable or empty reply fails closed (both
// judgments false) rather than erroring; a gateway failure propagates.
func (v *queryValidator) Validate(ctx context.Context, question string) (*models.Verdict, error) {
	result, err := v.chatClient.GenerateResponse(ctx, question, prompts.BuildValidationSystemMessage())
	if err != nil {
		if errors.Is(err, llm.ErrEmptyCompletion) {
			v.logger.Warn("Empty validation reply, failing closed")
			return failClosedVerdict(), nil
		}
		return nil, fmt.Errorf("validate question: %w", err)
	}

	verdict := parseVerdict(result.Content)
	v.logger.Debug("Validation verdict",
		zap.Bool("is_valid", verdict.IsValid),
		zap.Bool("is_aligned", verdict.IsAligned),
		zap.String("justification", verdict.Justification))
	return verdict, nil
}

// parseVerdict reads the model reply: first whitespace-delimited token is the
// validity judgment, second is the schema-alignment judgment, remaining tokens
// are joined back into the justification. Anything that is not an explicit
// "yes" counts as "no".
func parseVerdict(reply string) *models.Verdict {
	fields := strings.Fields(reply)
	if len(fields) < 2 {
		return failClosedVerdict()
	}

	verdict := &models.Verdict{
		IsValid:       isYes(fields[0]),
		IsAligned:     isYes(fields[1]),
		Justification: strings.Join(fields[2:], " "),
	}
	if verdict.Justification == "" {
		verdict.Justification = "No justification provided."
	}
	return verdict
}

func isYes(token string) bool {
	return strings.EqualFold(strings.Trim(token, ".,:;"), "yes")
}

func failClosedVerdict() *models.Verdict {
	return &models.Verdict{
		IsValid:       false,
		IsAligned:     false,
		Justification: failClosedJustification,
	}
}
