package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/askdb-io/askdb/pkg/apperrors"
	"github.com/askdb-io/askdb/pkg/models"
	"github.com/askdb-io/askdb/pkg/observability"
	"github.com/askdb-io/askdb/pkg/services"
	sqlguard "github.com/askdb-io/askdb/pkg/sql"
)

// maxQueryLength caps the incoming question size; enforced before any model call.
const maxQueryLength = 500

// QueryRequest is the shared body of POST /query, /validate and /explain.
type QueryRequest struct {
	Query string `json:"query"`
}

// QueryResponse is the success body of POST /query.
type QueryResponse struct {
	Message     string           `json:"message"`
	SQLQuery    string           `json:"sqlQuery"`
	Rows        []map[string]any `json:"rows"`
	Explanation string           `json:"explanation"`
}

// ValidateResponse is the success body of POST /validate.
type ValidateResponse struct {
	Message       string `json:"message"`
	Justification string `json:"justification"`
}

// ExplainResponse is the success body of POST /explain.
type ExplainResponse struct {
	Message     string `json:"message"`
	SQLQuery    string `json:"sqlQuery"`
	Explanation string `json:"explanation"`
}

// QueryHandler runs the question-to-rows pipeline over HTTP.
type QueryHandler struct {
	validator  services.QueryValidator
	translator services.SQLTranslator
	executor   services.QueryExecutor
	logger     *zap.Logger
}

// NewQueryHandler creates a new query handler.
func NewQueryHandler(
	validator services.QueryValidator,
	translator services.SQLTranslator,
	executor services.QueryExecutor,
	logger *zap.Logger,
) *QueryHandler {
	return &QueryHandler{
		validator:  validator,
		translator: translator,
		executor:   executor,
		logger:     logger.Named("query_handler"),
	}
}

// RegisterRoutes registers the query handler's routes on the given mux.
func (h *QueryHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /query", h.Query)
	mux.HandleFunc("POST /validate", h.Validate)
	mux.HandleFunc("POST /explain", h.Explain)
}

// Query handles POST /query: validate, translate, guard, execute.
func (h *QueryHandler) Query(w http.ResponseWriter, r *http.Request) {
	question, ok := h.parseQuestion(w, r)
	if !ok {
		return
	}
	if !h.validateQuestion(w, r, question) {
		return
	}
	translation, ok := h.translateQuestion(w, r, question)
	if !ok {
		return
	}

	rows, err := h.executor.Execute(r.Context(), translation.SQLQuery)
	if err != nil {
		observability.RecordExecution("failed")
		h.respondError(w, r, http.StatusInternalServerError, apperrors.ErrExecutionFailed.Error())
		return
	}
	observability.RecordExecution("ok")

	h.respondJSON(w, r, http.StatusOK, "Query executed successfully.", QueryResponse{
		Message:     "Query executed successfully.",
		SQLQuery:    translation.SQLQuery,
		Rows:        rows,
		Explanation: translation.Explanation,
	})
}

// Validate handles POST /validate: runs only the validation stage.
func (h *QueryHandler) Validate(w http.ResponseWriter, r *http.Request) {
	question, ok := h.parseQuestion(w, r)
	if !ok {
		return
	}

	verdict, err := h.validator.Validate(r.Context(), question)
	if err != nil {
		observability.RecordValidation("failed")
		h.respondError(w, r, http.StatusInternalServerError, "Failed to validate query")
		return
	}
	if !verdict.Accepted() {
		observability.RecordValidation("rejected")
		h.respondError(w, r, http.StatusBadRequest, verdict.Justification)
		return
	}
	observability.RecordValidation("accepted")

	h.respondJSON(w, r, http.StatusOK, "Query is valid.", ValidateResponse{
		Message:       "Query is valid.",
		Justification: verdict.Justification,
	})
}

// Explain handles POST /explain: validate and translate without executing.
func (h *QueryHandler) Explain(w http.ResponseWriter, r *http.Request) {
	question, ok := h.parseQuestion(w, r)
	if !ok {
		return
	}
	if !h.validateQuestion(w, r, question) {
		return
	}
	translation, ok := h.translateQuestion(w, r, question)
	if !ok {
		return
	}

	h.respondJSON(w, r, http.StatusOK, "Query explained successfully.", ExplainResponse{
		Message:     "Query explained successfully.",
		SQLQuery:    translation.SQLQuery,
		Explanation: translation.Explanation,
	})
}

// parseQuestion decodes the request body and enforces the input contract:
// the query is required, capped at 500 characters, and screened for SQL
// injection payloads before any model call.
func (h *QueryHandler) parseQuestion(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, http.StatusBadRequest, "Invalid request body")
		return "", false
	}

	question := strings.TrimSpace(req.Query)
	if question == "" {
		h.respondError(w, r, http.StatusBadRequest, apperrors.ErrQueryRequired.Error())
		return "", false
	}
	if len(req.Query) > maxQueryLength {
		h.respondError(w, r, http.StatusBadRequest, apperrors.ErrQueryTooLong.Error())
		return "", false
	}
	if result := sqlguard.CheckQuestionForInjection(question); result != nil {
		observability.RecordGuardRejection("injection")
		h.logger.Warn("Question rejected by injection screen",
			zap.String("fingerprint", result.Fingerprint))
		h.respondError(w, r, http.StatusBadRequest, apperrors.ErrSuspiciousQuery.Error())
		return "", false
	}

	return question, true
}

// validateQuestion runs the validation stage and writes the rejection or
// failure response itself. Returns true if the pipeline may continue.
func (h *QueryHandler) validateQuestion(w http.ResponseWriter, r *http.Request, question string) bool {
	verdict, err := h.validator.Validate(r.Context(), question)
	if err != nil {
		observability.RecordValidation("failed")
		h.respondError(w, r, http.StatusInternalServerError, "Failed to validate query")
		return false
	}
	if !verdict.Accepted() {
		observability.RecordValidation("rejected")
		h.respondError(w, r, http.StatusBadRequest, verdict.Justification)
		return false
	}
	observability.RecordValidation("accepted")
	return true
}

// translateQuestion runs the translation stage and the safety gate.
func (h *QueryHandler) translateQuestion(w http.ResponseWriter, r *http.Request, question string) (*models.Translation, bool) {
	translation, err := h.translator.Translate(r.Context(), question)
	if err != nil {
		observability.RecordTranslation("failed")
		h.respondError(w, r, http.StatusInternalServerError, apperrors.ErrTranslationFailed.Error())
		return nil, false
	}
	observability.RecordTranslation("ok")

	result := sqlguard.ValidateAndNormalize(translation.SQLQuery)
	if result.Error != nil {
		observability.RecordGuardRejection("multi_statement")
		h.respondError(w, r, http.StatusBadRequest, "Only a single SQL statement is allowed")
		return nil, false
	}
	if sqlguard.IsDestructive(result.NormalizedSQL) {
		observability.RecordGuardRejection("destructive")
		h.respondError(w, r, http.StatusBadRequest, apperrors.ErrDestructiveQuery.Error())
		return nil, false
	}
	translation.SQLQuery = result.NormalizedSQL

	return translation, true
}

// respondError writes the uniform error envelope and logs the outbound
// response with method, path, status and message.
func (h *QueryHandler) respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.logger.Info("Response",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.String("message", message))
	if err := ErrorResponse(w, status, message); err != nil {
		h.logger.Error("Failed to write error response", zap.Error(err))
	}
}

// respondJSON writes a success body and logs the outbound response.
func (h *QueryHandler) respondJSON(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	h.logger.Info("Response",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.String("message", message))
	if err := WriteJSON(w, status, data); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
