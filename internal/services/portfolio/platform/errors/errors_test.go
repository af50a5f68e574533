package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapsKnownKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{err: nil, want: http.StatusOK},
		{err: E(KindInvalidInput, "bad"), want: http.StatusBadRequest},
		{err: E(KindUnavailable, "down"), want: http.StatusServiceUnavailable},
		{err: E(KindNotFound, "missing"), want: http.StatusNotFound},
		{err: E(KindUnknown, "unknown"), want: http.StatusInternalServerError},
		{err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tc := range tests {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestHTTPStatusSeesThroughWrapping(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("render: %w", E(KindNotFound, "missing"))
	if got := HTTPStatus(err); got != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", got, http.StatusNotFound)
	}
}

func TestErrorStringFallsBackToKindWhenMessageEmpty(t *testing.T) {
	t.Parallel()

	err := Error{Kind: KindNotFound}
	if got := err.Error(); got != string(KindNotFound) {
		t.Fatalf("Error() = %q, want %q", got, string(KindNotFound))
	}
}

func TestWrapKeepsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("failed to load /data/projects.json: 500")
	err := Wrap(KindUnavailable, " portfolio.load_error.title ", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("errors.Is(%v, cause) = false", err)
	}
	if got := LocalizationKey(err); got != "portfolio.load_error.title" {
		t.Fatalf("LocalizationKey() = %q", got)
	}
	if got := HTTPStatus(err); got != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", got, http.StatusServiceUnavailable)
	}
	if got := err.Error(); got != cause.Error() {
		t.Fatalf("Error() = %q, want %q", got, cause.Error())
	}
	if Wrap(KindUnavailable, "k", nil) != nil {
		t.Fatal("Wrap(nil) should be nil")
	}
}

func TestLocalizationKey(t *testing.T) {
	t.Parallel()

	if got := LocalizationKey(EK(KindNotFound, "core.error.title_not_found", "missing")); got != "core.error.title_not_found" {
		t.Fatalf("LocalizationKey() = %q", got)
	}
	if got := LocalizationKey(errors.New("plain")); got != "" {
		t.Fatalf("LocalizationKey(plain) = %q, want empty", got)
	}
	if got := LocalizationKey(nil); got != "" {
		t.Fatalf("LocalizationKey(nil) = %q, want empty", got)
	}
}
