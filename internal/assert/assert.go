package assert

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func OK(t testing.TB, err error) {
	if err != nil {
		t.Helper()
		t.Fatal("error:", err)
	}
}

func Error(t testing.TB, got, want error) {
	if !errors.Is(got, want) {
		t.Helper()
		t.Fatalf("error mismatch\nwant = %s\ngot  = %s", want, got)
	}
}

func Equal[T comparable](t testing.TB, got, want T) {
	if got != want {
		t.Helper()
		t.Fatalf("value mismatch\nwant = %#v\ngot  = %#v", want, got)
	}
}

func NotEqual[T comparable](t testing.TB, got, want T) {
	if got == want {
		t.Helper()
		t.Fatalf("values must differ\nwant != %#v\ngot   = %#v", want, got)
	}
}

func True(t testing.TB, ok bool) {
	if !ok {
		t.Helper()
		t.Fatal("condition is false")
	}
}

func False(t testing.TB, ok bool) {
	if ok {
		t.Helper()
		t.Fatal("condition is true")
	}
}

func HasPrefix(t testing.TB, got, prefix string) {
	if !strings.HasPrefix(got, prefix) {
		t.Helper()
		t.Fatalf("prefix mismatch\nwant prefix = %q\ngot         = %q", prefix, got)
	}
}

func Contains(t testing.TB, got, substring string) {
	if !strings.Contains(got, substring) {
		t.Helper()
		t.Fatalf("missing substring\nwant substring = %q\ngot            = %q", substring, got)
	}
}

func DeepEqual(t testing.TB, got, want any) {
	if diff := cmp.Diff(want, got); diff != "" {
		t.Helper()
		t.Fatalf("value mismatch (-want +got):\n%s", diff)
	}
}
