package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsKind(t *testing.T) {
	err := NotFoundf("exercise %d not found", 7)
	if !IsKind(err, KindNotFound) {
		t.Fatal("kind not recognized")
	}
	if IsKind(err, KindForbidden) {
		t.Fatal("wrong kind matched")
	}
	if IsKind(errors.New("plain"), KindNotFound) {
		t.Fatal("plain error matched a kind")
	}
	if err.Error() != "exercise 7 not found" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading exercise: %w", Forbiddenf("denied"))
	var be *Error
	if !errors.As(wrapped, &be) {
		t.Fatal("errors.As failed through wrapping")
	}
	if be.Kind != KindForbidden {
		t.Fatalf("unexpected kind: %v", be.Kind)
	}
}
