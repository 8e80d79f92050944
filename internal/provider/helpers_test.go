package provider_test

import (
	"context"
	"sync"

	"gitprovider.dev/gitprovider/internal/git"
)

// recordingRunner forwards to an optional inner runner and records every argv
type recordingRunner struct {
	mu    sync.Mutex
	inner git.Runner
	calls [][]string
}

func (r *recordingRunner) Run(ctx context.Context, dir string, argv []string) (git.Invocation, error) {
	r.mu.Lock()
	r.calls = append(r.calls, append([]string(nil), argv...))
	r.mu.Unlock()

	if r.inner == nil {
		return git.Invocation{}, nil
	}
	return r.inner.Run(ctx, dir, argv)
}

// verbs returns the git verb of every recorded invocation
func (r *recordingRunner) verbs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	verbs := make([]string, 0, len(r.calls))
	for _, argv := range r.calls {
		if len(argv) > 0 {
			verbs = append(verbs, argv[0])
		}
	}
	return verbs
}

func (r *recordingRunner) last() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.calls) == 0 {
		return nil
	}
	return r.calls[len(r.calls)-1]
}
