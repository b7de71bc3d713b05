package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/forumapi/forum-api/shared/domain"
	"github.com/forumapi/forum-api/shared/errors"
	"github.com/forumapi/forum-api/shared/logger"
	"github.com/go-playground/validator/v10"
)

const internalErrorMessage = "terjadi kegagalan pada server kami"

var validate = validator.New(validator.WithRequiredStructEnabled())

type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// WriteSuccess writes {"status":"success","data":data}. A nil data omits the field.
func WriteSuccess(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, envelope{Status: "success", Data: data})
}

// WriteFail writes a client error envelope.
func WriteFail(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, envelope{Status: "fail", Message: message})
}

func writeInternal(w http.ResponseWriter, err error) {
	logger.Log.Error("internal server error", "error", err)
	writeJSON(w, http.StatusInternalServerError, envelope{Status: "error", Message: internalErrorMessage})
}

// WriteErrorAndStatusCode maps domain errors onto the response envelope.
// Anything unrecognized is reported as 500 without leaking its text.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	var (
		validation *errors.ValidationError
		notFound   *errors.NotFoundError
		authz      *errors.AuthorizationError
		withStatus *errors.ErrorWithStatusCode
	)
	switch {
	case errors.As(err, &validation):
		WriteFail(w, http.StatusBadRequest, validation.Message)
	case errors.As(err, &notFound):
		WriteFail(w, http.StatusNotFound, notFound.Message)
	case errors.As(err, &authz):
		WriteFail(w, http.StatusForbidden, authz.Message)
	case errors.As(err, &withStatus) && withStatus.StatusCode < http.StatusInternalServerError:
		WriteFail(w, withStatus.StatusCode, withStatus.Message)
	default:
		writeInternal(w, err)
	}
}

// DecodeValidate decodes a JSON body into a tagged struct and runs validator tags on it.
func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("invalid json body", "error", err)
		return &errors.ErrorWithStatusCode{Message: "body bukan json yang valid", StatusCode: http.StatusBadRequest}
	}
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug("body failed validation", "error", err)
		return &errors.ErrorWithStatusCode{Message: "properti yang dibutuhkan tidak ada atau tipe data tidak sesuai", StatusCode: http.StatusBadRequest}
	}
	return nil
}

// DecodePayload decodes a JSON object body without imposing a shape.
// Entity constructors validate the result. An empty body yields an empty payload.
func DecodePayload(r io.Reader) (domain.Payload, error) {
	payload := domain.Payload{}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		if err == io.EOF {
			return domain.Payload{}, nil
		}
		logger.Log.Debug("invalid json payload", "error", err)
		return nil, &errors.ErrorWithStatusCode{Message: "body bukan json yang valid", StatusCode: http.StatusBadRequest}
	}
	if payload == nil {
		// literal null
		payload = domain.Payload{}
	}
	return payload, nil
}
