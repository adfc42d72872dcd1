package infra

import (
	"errors"
	"log/slog"

	"levelup-cart/internal/pkg/errs"
)

type RepositoryErrorKind string

const (
	KindNotFound       RepositoryErrorKind = "NOT_FOUND"
	KindDuplicateKey   RepositoryErrorKind = "DUPLICATE_KEY"
	KindMalformedData  RepositoryErrorKind = "MALFORMED_DATA"
	KindStorageFailure RepositoryErrorKind = "STORAGE_FAILURE"
)

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func NewRepoErr(kind RepositoryErrorKind, msg string) error {
	return RepositoryError{Kind: kind, msg: msg}
}

func WrapRepoErr(kind RepositoryErrorKind, msg string, err error) error {
	if kind != KindNotFound {
		slog.Error("Repository error: "+msg, slog.String("kind", string(kind)))
	}
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
