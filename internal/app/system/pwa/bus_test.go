package pwa_test

import (
	"sync"
	"testing"

	"github.com/dalemusser/mlhub/internal/app/system/pwa"
	"github.com/google/go-cmp/cmp"
)

func TestBus_DeliversInSubscriptionOrder(t *testing.T) {
	bus := pwa.NewBus()
	var got []string
	bus.Subscribe(func(e pwa.Event) { got = append(got, "a:"+string(e.Kind)) })
	bus.Subscribe(func(e pwa.Event) { got = append(got, "b:"+string(e.Kind)) })

	bus.Publish(pwa.Event{Kind: pwa.KindSWRegistered})

	want := []string{"a:sw_registered", "b:sw_registered"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("delivery mismatch (-want +got):\n%s", diff)
	}
}

func TestBus_SetsTimestamp(t *testing.T) {
	bus := pwa.NewBus()
	var ev pwa.Event
	bus.Subscribe(func(e pwa.Event) { ev = e })

	bus.Publish(pwa.Event{Kind: pwa.KindUpdateAvailable})

	if ev.At.IsZero() {
		t.Error("expected At to be set")
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := pwa.NewBus()
	var a, b int
	unsubA := bus.Subscribe(func(pwa.Event) { a++ })
	bus.Subscribe(func(pwa.Event) { b++ })

	bus.Publish(pwa.Event{Kind: pwa.KindAppInstalled})
	unsubA()
	unsubA() // second call is harmless
	bus.Publish(pwa.Event{Kind: pwa.KindAppInstalled})

	if a != 1 || b != 2 {
		t.Errorf("a=%d b=%d, want a=1 b=2", a, b)
	}
}

func TestBus_UnsubscribeDuringPublish(t *testing.T) {
	bus := pwa.NewBus()
	var calls int
	var unsub func()
	unsub = bus.Subscribe(func(pwa.Event) {
		calls++
		unsub()
	})

	bus.Publish(pwa.Event{Kind: pwa.KindSWRegistered})
	bus.Publish(pwa.Event{Kind: pwa.KindSWRegistered})

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestBus_Close(t *testing.T) {
	bus := pwa.NewBus()
	var calls int
	bus.Subscribe(func(pwa.Event) { calls++ })

	bus.Close()
	bus.Publish(pwa.Event{Kind: pwa.KindSWRegistered})
	bus.Subscribe(func(pwa.Event) { calls++ })()
	bus.Publish(pwa.Event{Kind: pwa.KindSWRegistered})

	if calls != 0 {
		t.Errorf("calls = %d after close, want 0", calls)
	}
}

func TestBus_ConcurrentPublish(t *testing.T) {
	bus := pwa.NewBus()
	var mu sync.Mutex
	count := 0
	bus.Subscribe(func(pwa.Event) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				bus.Publish(pwa.Event{Kind: pwa.KindSWRegistered})
			}
		}()
	}
	wg.Wait()

	if count != 1000 {
		t.Errorf("count = %d, want 1000", count)
	}
}

func TestIsValidEventKind(t *testing.T) {
	for _, k := range pwa.EventKinds {
		if !pwa.IsValidEventKind(k) {
			t.Errorf("IsValidEventKind(%q) = false", k)
		}
	}
	if pwa.IsValidEventKind("beforeinstallprompt") {
		t.Error("IsValidEventKind(beforeinstallprompt) = true")
	}
}
