package snapmeta

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that all sentinel errors are defined correctly.
func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "ErrNilNode",
			err:  ErrNilNode,
			want: "nil node",
		},
		{
			name: "ErrNilNodeList",
			err:  ErrNilNodeList,
			want: "nil node list",
		},
		{
			name: "ErrNilCrossReferenceTarget",
			err:  ErrNilCrossReferenceTarget,
			want: "nil cross-reference target",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatalf("sentinel error %s is nil", tt.name)
			}
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("error message = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "with underlying error",
			err: &Error{
				Op:   "Store.SetCrossReference",
				Kind: KindInvalidArgument,
				Err:  ErrNilCrossReferenceTarget,
			},
			want: "snapmeta: Store.SetCrossReference (invalid_argument): nil cross-reference target",
		},
		{
			name: "without underlying error",
			err: &Error{
				Op:   "Store.ClearConstrainedByDifferentialDeep",
				Kind: KindInvalidArgument,
			},
			want: "snapmeta: Store.ClearConstrainedByDifferentialDeep: invalid_argument",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	err := newInvalidArgumentError("Store.ClearConstrainedByDifferentialDeep", ErrNilNode)

	if !errors.Is(err, ErrNilNode) {
		t.Error("expected errors.Is to match the underlying sentinel")
	}
	if errors.Is(err, ErrNilNodeList) {
		t.Error("did not expect errors.Is to match a different sentinel")
	}

	var e *Error
	if !errors.As(err, &e) {
		t.Fatal("expected errors.As to extract *Error")
	}
	if e.Kind != KindInvalidArgument {
		t.Errorf("Kind = %q, want %q", e.Kind, KindInvalidArgument)
	}
}

func TestError_Is_KindMatching(t *testing.T) {
	err := newInvalidArgumentError("Store.SetCrossReference", ErrNilCrossReferenceTarget)

	if !errors.Is(err, &Error{Kind: KindInvalidArgument}) {
		t.Error("expected kind-only target to match")
	}
	if !errors.Is(err, &Error{Op: "Store.SetCrossReference", Kind: KindInvalidArgument}) {
		t.Error("expected op+kind target to match")
	}
	if errors.Is(err, &Error{Op: "Store.MarkGenerated", Kind: KindInvalidArgument}) {
		t.Error("did not expect a different op to match")
	}
}

func TestError_Wrapped(t *testing.T) {
	inner := newInvalidArgumentError("NewCrossReference", ErrNilCrossReferenceTarget)
	outer := fmt.Errorf("during merge: %w", inner)

	if !errors.Is(outer, ErrNilCrossReferenceTarget) {
		t.Error("expected sentinel to survive wrapping")
	}
	if !IsInvalidArgument(outer) {
		t.Error("expected IsInvalidArgument to see through wrapping")
	}
	if IsInvalidArgument(errors.New("unrelated")) {
		t.Error("did not expect IsInvalidArgument on an unrelated error")
	}
	if !strings.Contains(outer.Error(), "invalid_argument") {
		t.Errorf("expected kind in message, got %q", outer.Error())
	}
}
