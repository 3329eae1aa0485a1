package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
)

func TestEnvFunc(t *testing.T) {
	env := map[string]any{}
	for _, a := range []string{"n=3", "s=hello", "l=[1, 'x']", "q='a b'"} {
		if err := envFunc(env, a); err != nil {
			t.Fatal(err)
		}
	}
	want := map[string]any{
		"n": int64(3),
		"s": "hello",
		"l": []any{int64(1), "x"},
		"q": "a b",
	}
	if diff := cmp.Diff(want, env); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if err := envFunc(env, "novalue"); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("expected a usage error, got %v", err)
	}
}
