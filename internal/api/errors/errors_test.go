package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "collab-filter/internal/app/errors"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want int
	}{
		{KindValidation, http.StatusUnprocessableEntity},
		{KindBadRequest, http.StatusBadRequest},
		{KindNotFound, http.StatusNotFound},
		{KindServiceUnavailable, http.StatusServiceUnavailable},
		{KindInternal, http.StatusInternalServerError},
		{ErrorKind("other"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, (&APIError{Kind: tt.kind}).HTTPStatus())
		})
	}
}

func TestFromEngine(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"out of range", apperrors.OutOfRange("row", 9, 3), KindNotFound},
		{"wrapped out of range", apperrors.Wrap(apperrors.OutOfRange("row", 9, 3), "score"), KindNotFound},
		{"invalid k", apperrors.Wrapf(apperrors.ErrInvalidK, "got %d", 0), KindBadRequest},
		{"unknown metric", apperrors.Wrapf(apperrors.ErrUnknownMetric, "%q", "cosine"), KindBadRequest},
		{"index not ready", apperrors.ErrIndexNotReady, KindServiceUnavailable},
		{"api error passes through", NewServiceUnavailableError("loading"), KindServiceUnavailable},
		{"other", fmt.Errorf("disk on fire"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := FromEngine(tt.err)
			assert.Equal(t, tt.want, apiErr.Kind)
			assert.NotEmpty(t, apiErr.Message)
		})
	}

	assert.Nil(t, FromEngine(nil))
}
