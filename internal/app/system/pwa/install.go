package pwa

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrNoPrompt is returned by Install when no deferred prompt is held.
var ErrNoPrompt = errors.New("no install prompt available")

// Choice is the user's answer to the install prompt.
type Choice string

const (
	ChoiceAccepted  Choice = "accepted"
	ChoiceDismissed Choice = "dismissed"
)

// DeferredPrompt is the capability handed over by the host when it offers
// installation. A prompt can be shown once.
type DeferredPrompt interface {
	Prompt() error
	AwaitChoice(ctx context.Context) (Choice, error)
}

// InstallFlow owns at most one deferred prompt and publishes the install
// lifecycle on a Bus.
type InstallFlow struct {
	mu        sync.Mutex
	bus       *Bus
	prompt    DeferredPrompt
	installed bool
}

// NewInstallFlow returns a flow publishing on bus. bus may be nil.
func NewInstallFlow(bus *Bus) *InstallFlow {
	return &InstallFlow{bus: bus}
}

// Capture stores p, replacing any earlier prompt, and announces that
// installation is available. Prompts offered after installation are ignored.
func (f *InstallFlow) Capture(p DeferredPrompt) {
	if p == nil {
		return
	}
	f.mu.Lock()
	if f.installed {
		f.mu.Unlock()
		return
	}
	f.prompt = p
	f.mu.Unlock()

	f.publish(Event{Kind: KindInstallPromptAvailable})
}

// Available reports whether a prompt is held.
func (f *InstallFlow) Available() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.prompt != nil
}

// Installed reports whether MarkInstalled has been called.
func (f *InstallFlow) Installed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.installed
}

// Install shows the held prompt and waits for the user's choice. The prompt
// is released whatever the outcome.
func (f *InstallFlow) Install(ctx context.Context) (Choice, error) {
	f.mu.Lock()
	p := f.prompt
	f.prompt = nil
	f.mu.Unlock()

	if p == nil {
		return "", ErrNoPrompt
	}
	if err := p.Prompt(); err != nil {
		return "", fmt.Errorf("show install prompt: %w", err)
	}
	choice, err := p.AwaitChoice(ctx)
	if err != nil {
		return "", fmt.Errorf("await install choice: %w", err)
	}

	f.publish(Event{Kind: KindInstallChoice, Detail: string(choice)})
	return choice, nil
}

// MarkInstalled records that the app was installed and drops any held
// prompt.
func (f *InstallFlow) MarkInstalled() {
	f.mu.Lock()
	f.prompt = nil
	f.installed = true
	f.mu.Unlock()

	f.publish(Event{Kind: KindAppInstalled})
}

func (f *InstallFlow) publish(e Event) {
	if f.bus != nil {
		f.bus.Publish(e)
	}
}
