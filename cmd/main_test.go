package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommands_InvalidConfigReturnsError(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NARRATIVE_PROVIDER", "oracle")

	for _, args := range [][]string{{"serve"}, {"simulate", "--duration", "1s"}} {
		t.Run(args[0], func(t *testing.T) {
			cmd := newRootCmd()
			cmd.SetArgs(args)
			cmd.SetContext(context.Background())

			err := cmd.Execute()

			assert.ErrorContains(t, err, "failed to load config")
			assert.ErrorContains(t, err, "unknown NARRATIVE_PROVIDER")
		})
	}
}
