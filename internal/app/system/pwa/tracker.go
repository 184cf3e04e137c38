package pwa

import (
	"context"
	"sync"
	"time"
)

// Tracker keeps one InstallFlow per client so that install events posted by
// the page drive the same lifecycle a host integration would. The number of
// tracked clients is bounded; the least recently seen client is dropped when
// the bound is reached.
type Tracker struct {
	mu      sync.Mutex
	bus     *Bus
	max     int
	clients map[string]*trackedClient

	now func() time.Time
}

type trackedClient struct {
	flow   *InstallFlow
	prompt *ReportedPrompt
	seen   time.Time
}

// NewTracker returns a Tracker publishing on bus and holding at most
// maxClients flows. maxClients below 1 is treated as 1.
func NewTracker(bus *Bus, maxClients int) *Tracker {
	if maxClients < 1 {
		maxClients = 1
	}
	return &Tracker{
		bus:     bus,
		max:     maxClients,
		clients: make(map[string]*trackedClient),
		now:     time.Now,
	}
}

// Report applies e to the flow of clientID and publishes the resulting
// events. It reports whether the client's app is known to be installed.
//
// An install choice with no held prompt is published as reported.
func (t *Tracker) Report(ctx context.Context, clientID string, e Event) (installed bool, err error) {
	t.mu.Lock()
	c := t.client(clientID)
	t.mu.Unlock()

	switch e.Kind {
	case KindInstallPromptAvailable:
		if c.flow.Installed() {
			t.publish(e)
			break
		}
		p := NewReportedPrompt()
		t.mu.Lock()
		c.prompt = p
		t.mu.Unlock()
		c.flow.Capture(p)

	case KindInstallChoice:
		t.mu.Lock()
		p := c.prompt
		c.prompt = nil
		t.mu.Unlock()
		if p == nil || !c.flow.Available() {
			t.publish(e)
			break
		}
		p.Resolve(Choice(e.Detail))
		if _, err := c.flow.Install(ctx); err != nil {
			return c.flow.Installed(), err
		}

	case KindAppInstalled:
		t.mu.Lock()
		c.prompt = nil
		t.mu.Unlock()
		c.flow.MarkInstalled()

	default:
		t.publish(e)
	}
	return c.flow.Installed(), nil
}

// Len returns the number of tracked clients.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.clients)
}

// client returns the entry for id, creating it if needed. Caller holds t.mu.
func (t *Tracker) client(id string) *trackedClient {
	now := t.now()
	if c, ok := t.clients[id]; ok {
		c.seen = now
		return c
	}
	if len(t.clients) >= t.max {
		t.evictOldest()
	}
	c := &trackedClient{flow: NewInstallFlow(t.bus), seen: now}
	t.clients[id] = c
	return c
}

func (t *Tracker) evictOldest() {
	var (
		oldestID string
		oldest   time.Time
		found    bool
	)
	for id, c := range t.clients {
		if !found || c.seen.Before(oldest) {
			oldestID, oldest, found = id, c.seen, true
		}
	}
	if found {
		delete(t.clients, oldestID)
	}
}

func (t *Tracker) publish(e Event) {
	if t.bus != nil {
		t.bus.Publish(e)
	}
}
