package usage

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T, limit int) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "usage.db"), limit, nil)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAllowCountsDown(t *testing.T) {
	s := newTestStore(t, 3)
	ctx := context.Background()

	for want := 2; want >= 0; want-- {
		d := s.Allow(ctx, "1.2.3.4", "test-agent")
		if !d.Allowed {
			t.Fatalf("request refused with %d expected remaining", want)
		}
		if d.Remaining != want {
			t.Fatalf("remaining %d, want %d", d.Remaining, want)
		}
	}

	d := s.Allow(ctx, "1.2.3.4", "test-agent")
	if d.Allowed {
		t.Fatalf("request over the limit allowed")
	}
	if d.Remaining != 0 {
		t.Fatalf("refusal remaining %d", d.Remaining)
	}
	if d.Message == "" {
		t.Fatalf("refusal carries no message")
	}
}

func TestAllowSeparatesCallers(t *testing.T) {
	s := newTestStore(t, 1)
	ctx := context.Background()

	if d := s.Allow(ctx, "1.2.3.4", "agent-a"); !d.Allowed {
		t.Fatalf("first caller refused")
	}
	// Same IP, different user agent hashes to a different caller.
	if d := s.Allow(ctx, "1.2.3.4", "agent-b"); !d.Allowed {
		t.Fatalf("second caller shares the first caller's quota")
	}
	if d := s.Allow(ctx, "1.2.3.4", "agent-a"); d.Allowed {
		t.Fatalf("exhausted caller allowed")
	}
}

func TestAllowFailsOpenOnClosedDB(t *testing.T) {
	s := newTestStore(t, 3)
	_ = s.Close()

	d := s.Allow(context.Background(), "1.2.3.4", "test-agent")
	if !d.Allowed {
		t.Fatalf("storage failure refused a request")
	}
	if d.Message != "Usage tracking is temporarily disabled" {
		t.Fatalf("unexpected degraded message %q", d.Message)
	}
}

func TestStats(t *testing.T) {
	s := newTestStore(t, 3)
	ctx := context.Background()

	stats := s.Stats(ctx, "1.2.3.4", "test-agent")
	if stats.TodayUsage != 0 || stats.Remaining != 3 || stats.Limit != 3 {
		t.Fatalf("fresh stats %+v", stats)
	}
	if stats.LastRequest != nil {
		t.Fatalf("fresh caller has a last request")
	}

	s.Allow(ctx, "1.2.3.4", "test-agent")
	s.Allow(ctx, "1.2.3.4", "test-agent")

	stats = s.Stats(ctx, "1.2.3.4", "test-agent")
	if stats.TodayUsage != 2 || stats.Remaining != 1 {
		t.Fatalf("stats after two requests %+v", stats)
	}
	if stats.LastRequest == nil {
		t.Fatalf("last request missing")
	}
}

func TestReset(t *testing.T) {
	s := newTestStore(t, 1)
	ctx := context.Background()

	s.Allow(ctx, "1.2.3.4", "test-agent")
	if d := s.Allow(ctx, "1.2.3.4", "test-agent"); d.Allowed {
		t.Fatalf("limit not enforced before reset")
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if d := s.Allow(ctx, "1.2.3.4", "test-agent"); !d.Allowed {
		t.Fatalf("quota not restored after reset")
	}
}

func TestCleanupKeepsToday(t *testing.T) {
	s := newTestStore(t, 3)
	ctx := context.Background()

	s.Allow(ctx, "1.2.3.4", "test-agent")
	if err := s.Cleanup(ctx, 30); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	stats := s.Stats(ctx, "1.2.3.4", "test-agent")
	if stats.TodayUsage != 1 {
		t.Fatalf("cleanup removed today's record: %+v", stats)
	}
}

func TestUserHashStable(t *testing.T) {
	a := userHash("1.2.3.4", "agent")
	b := userHash("1.2.3.4", "agent")
	if a != b {
		t.Fatalf("hash not deterministic")
	}
	if len(a) != 32 {
		t.Fatalf("hash length %d", len(a))
	}
	if a == userHash("1.2.3.4", "other") {
		t.Fatalf("distinct agents collide")
	}
}
