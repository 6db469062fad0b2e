// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"context"
	"sync"
	"time"

	"github.com/invowk/jarrunner/internal/cmdline"
	"github.com/invowk/jarrunner/internal/config"
	"github.com/invowk/jarrunner/internal/mode"
	"github.com/invowk/jarrunner/internal/notify"
	"github.com/invowk/jarrunner/internal/testutil"
	"github.com/invowk/jarrunner/pkg/types"

	"github.com/charmbracelet/log"
)

type (
	fakeConsole struct {
		attach bool
		hidden bool
	}

	fakeProvider struct {
		cfg *config.Config
		err error
	}

	fakeProcess struct {
		code     types.ExitCode
		waitErr  error
		waited   bool
		released bool
	}

	startCall struct {
		spec        cmdline.CommandSpec
		interactive bool
	}

	fakeStarter struct {
		mu    sync.Mutex
		proc  *fakeProcess
		err   error
		calls []startCall
	}

	recordingNotifier struct {
		messages []notify.Message
		err      error
	}

	// steppingClock advances by step every time elapsed time is read.
	steppingClock struct {
		*testutil.FakeClock
		step time.Duration
	}
)

func (c *fakeConsole) HideOwn()           { c.hidden = true }
func (c *fakeConsole) AttachParent() bool { return c.attach }

func (p fakeProvider) Load(context.Context, config.LoadOptions) (*config.Config, string, error) {
	return p.cfg, "", p.err
}

func (p *fakeProcess) Wait() (types.ExitCode, error) {
	p.waited = true
	return p.code, p.waitErr
}

func (p *fakeProcess) Release() error {
	p.released = true
	return nil
}

func (s *fakeStarter) Start(spec cmdline.CommandSpec, interactive bool) (Process, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, startCall{spec: spec, interactive: interactive})
	if s.err != nil {
		return nil, s.err
	}
	return s.proc, nil
}

func (n *recordingNotifier) Notify(msg notify.Message) error {
	n.messages = append(n.messages, msg)
	return n.err
}

func (n *recordingNotifier) factory() func(mode.InvocationContext, *log.Logger) notify.Notifier {
	return func(mode.InvocationContext, *log.Logger) notify.Notifier { return n }
}

func (c steppingClock) Since(t time.Time) time.Duration {
	d := c.FakeClock.Since(t)
	c.Advance(c.step)
	return d
}
