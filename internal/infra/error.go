package infra

import (
	"context"
	"errors"
	"log/slog"

	"breakfast-deals/internal/pkg/errs"
)

type StoreErrorKind string

const (
	KindStoreFailure  StoreErrorKind = "STORE_FAILURE"
	KindEncodeFailure StoreErrorKind = "ENCODE_FAILURE"
	KindDecodeFailure StoreErrorKind = "DECODE_FAILURE"
)

// StoreError reports a failed read or write of a persisted document.
type StoreError struct {
	Kind StoreErrorKind
	Key  string
	msg  string
	err  error
}

func (e StoreError) Error() string {
	out := string(e.Kind) + " [" + e.Key + "]: " + e.msg
	if e.err != nil {
		out += ": " + e.err.Error()
	}
	return out
}

func (e StoreError) Unwrap() error {
	return e.err
}

// WrapStoreErr logs the failure once at the infra boundary and returns a
// StoreError carrying the underlying cause.
func WrapStoreErr(ctx context.Context, logger *slog.Logger, kind StoreErrorKind, key, msg string, err error) error {
	attrs := []any{
		slog.String("kind", string(kind)),
		slog.String("key", key),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		err = errs.Wrap(err, msg)
	}
	logger.ErrorContext(ctx, "store error: "+msg, attrs...)

	return StoreError{Kind: kind, Key: key, msg: msg, err: err}
}

func IsKind(err error, kind StoreErrorKind) bool {
	var e StoreError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
