package errors

import (
	stdlib "errors"
	"io"
	"testing"

	"github.com/pkg/errors"
)

func TestWrapKeepsRootCause(t *testing.T) {
	std := stdlib.New("disk full")

	cases := map[string]struct {
		err     error
		root    error
		wantMsg string
	}{
		"root error": {
			err:     ErrNotFound,
			root:    ErrNotFound,
			wantMsg: "not found",
		},
		"wrapped root error": {
			err:     Wrapf(ErrNotFound, "photo %d", 3),
			root:    ErrNotFound,
			wantMsg: "photo 3: not found",
		},
		"wrapped stdlib error": {
			err:     Wrap(Wrap(std, "save photo"), "mint"),
			root:    std,
			wantMsg: "mint: save photo: disk full",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := errors.Cause(tc.err); got != tc.root {
				t.Fatalf("want %v root, got %v", tc.root, got)
			}
			if got := tc.err.Error(); got != tc.wantMsg {
				t.Fatalf("want %q message, got %q", tc.wantMsg, got)
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	var nilErr *Error

	cases := map[string]struct {
		kind *Error
		err  error
		want bool
	}{
		"same root error": {
			kind: ErrNotFound,
			err:  ErrNotFound,
			want: true,
		},
		"different root error": {
			kind: ErrNotFound,
			err:  ErrModel,
		},
		"wrapped by pkg/errors": {
			kind: ErrNotFound,
			err:  errors.Wrap(ErrNotFound, "gone"),
			want: true,
		},
		"wrapped twice": {
			kind: ErrNotFound,
			err:  Wrap(Wrapf(ErrNotFound, "photo %d", 4), "load"),
			want: true,
		},
		"wrapped different root error": {
			kind: ErrNotFound,
			err:  Wrap(ErrOverflow, "inventory"),
		},
		"stdlib error": {
			kind: ErrNotFound,
			err:  io.EOF,
		},
		"wrapped stdlib error": {
			kind: ErrNotFound,
			err:  Wrap(io.EOF, "read"),
		},
		"nil matches nil": {
			kind: nil,
			err:  nil,
			want: true,
		},
		"nil matches typed nil": {
			kind: nil,
			err:  nilErr,
			want: true,
		},
		"nil does not match an error": {
			kind: nil,
			err:  ErrNotFound,
		},
		"error does not match nil": {
			kind: ErrNotFound,
			err:  nil,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.kind.Is(tc.err); got != tc.want {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "nothing"); err != nil {
		t.Fatalf("want nil, got %v", err)
	}
	if err := Wrapf(nil, "nothing %d", 1); err != nil {
		t.Fatalf("want nil, got %v", err)
	}
}

func TestStacktraceRecordedOnce(t *testing.T) {
	if st := Stacktrace(ErrNotFound); st != nil {
		t.Fatal("root error must not carry a stacktrace")
	}
	inner := Wrap(io.EOF, "inner")
	st := Stacktrace(inner)
	if len(st) == 0 {
		t.Fatal("stacktrace not attached")
	}
	outer := Wrap(inner, "outer")
	if got := Stacktrace(outer); len(got) != len(st) || got[0] != st[0] {
		t.Fatal("outer wrap must reuse the innermost stacktrace")
	}
}

func TestRegisterTakenCode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("want panic")
		}
	}()
	Register(ErrNotFound.code, "another not found")
}

func TestRecover(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err)
		var m map[string]int
		m["photo"] = 1
		return nil
	}
	if err := fn(); !ErrPanic.Is(err) {
		t.Fatalf("want panic error, got %v", err)
	}
}
