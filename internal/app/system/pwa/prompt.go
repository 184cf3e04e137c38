package pwa

import (
	"context"
	"sync"
)

// ReportedPrompt is a DeferredPrompt whose outcome arrives later as a host
// event. The browser shows the real prompt; Prompt only marks it shown and
// Resolve delivers the choice the page reported.
type ReportedPrompt struct {
	choice chan Choice
	once   sync.Once
}

// NewReportedPrompt returns an unresolved prompt.
func NewReportedPrompt() *ReportedPrompt {
	return &ReportedPrompt{choice: make(chan Choice, 1)}
}

func (p *ReportedPrompt) Prompt() error { return nil }

// Resolve records c. Only the first call has an effect.
func (p *ReportedPrompt) Resolve(c Choice) {
	p.once.Do(func() { p.choice <- c })
}

// AwaitChoice blocks until Resolve is called or ctx is done.
func (p *ReportedPrompt) AwaitChoice(ctx context.Context) (Choice, error) {
	select {
	case c := <-p.choice:
		return c, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
