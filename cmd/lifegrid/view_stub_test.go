//go:build !ebiten

package main

import (
	"strings"
	"testing"
)

func TestViewCmdRequiresTag(t *testing.T) {
	isolateEnv(t)
	root := newRootCmd()
	var errOut strings.Builder
	root.SetErr(&errOut)
	root.SetArgs([]string{"view"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error without the ebiten tag")
	}
	if !strings.Contains(errOut.String(), "-tags ebiten") {
		t.Errorf("stderr = %q, want build hint", errOut.String())
	}
}
