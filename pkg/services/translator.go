package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/askdb-io/askdb/pkg/apperrors"
	"github.com/askdb-io/askdb/pkg/llm"
	"github.com/askdb-io/askdb/pkg/models"
	"github.com/askdb-io/askdb/pkg/prompts"
)

// SQLTranslator turns an already-validated question into a SQL statement with
// an explanation.
type SQLTranslator interface {
	Translate(ctx context.Context, question string) (*models.Translation, error)
}

type sqlTranslator struct {
	chatClient llm.ChatClient
	logger     *zap.Logger
}

// NewSQLTranslator creates a translator backed by the given chat client.
func NewSQLTranslator(chatClient llm.ChatClient, logger *zap.Logger) SQLTranslator {
	return &sqlTranslator{
		chatClient: chatClient,
		logger:     logger.Named("translator"),
	}
}

// Translate sends the question with the translation instruction and parses the
// tagged-field reply. A reply missing either field is a translation failure;
// no schema or syntax validation is performed on the returned SQL beyond the
// safety gate applied by the caller.
func (t *sqlTranslator) Translate(ctx context.Context, question string) (*models.Translation, error) {
	result, err := t.chatClient.GenerateResponse(ctx, question, prompts.BuildTranslationSystemMessage())
	if err != nil {
		if errors.Is(err, llm.ErrEmptyCompletion) {
			return nil, fmt.Errorf("%w: empty model reply", apperrors.ErrTranslationFailed)
		}
		return nil, fmt.Errorf("translate question: %w", err)
	}

	translation, err := parseTranslation(result.Content)
	if err != nil {
		t.logger.Warn("Unparseable translation reply",
			zap.String("reply", result.Content),
			zap.Error(err))
		return nil, err
	}

	t.logger.Debug("Translated question",
		zap.String("sql", translation.SQLQuery),
		zap.String("explanation", translation.Explanation))
	return translation, nil
}

// parseTranslation extracts the SQL: and EXPLANATION: fields from the reply.
// Markdown code fences around the reply are tolerated; missing fields are not.
func parseTranslation(reply string) (*models.Translation, error) {
	var sqlQuery, explanation string

	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(strings.Trim(strings.TrimSpace(line), "`"))
		if after, ok := strings.CutPrefix(line, "SQL:"); ok {
			sqlQuery = strings.TrimSpace(after)
		} else if after, ok := strings.CutPrefix(line, "EXPLANATION:"); ok {
			explanation = strings.TrimSpace(after)
		}
	}

	if sqlQuery == "" {
		return nil, fmt.Errorf("%w: no SQL field in model reply", apperrors.ErrTranslationFailed)
	}
	if explanation == "" {
		return nil, fmt.Errorf("%w: no explanation field in model reply", apperrors.ErrTranslationFailed)
	}

	return &models.Translation{
		SQLQuery:    sqlQuery,
		Explanation: explanation,
	}, nil
}
