package guard

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/anthropics/tutor-engine/internal/domain"
)

func TestAllowWithinLimit(t *testing.T) {
	g := New(3, 0)
	for i := 0; i < 3; i++ {
		if err := g.Allow("client-a"); err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
	}
	if err := g.Allow("client-a"); !errors.Is(err, domain.ErrRateLimitExceeded) {
		t.Errorf("fourth request: %v, want rate limit error", err)
	}
}

func TestAllowIsPerClient(t *testing.T) {
	g := New(1, 0)
	if err := g.Allow("client-a"); err != nil {
		t.Fatalf("client-a: %v", err)
	}
	if err := g.Allow("client-b"); err != nil {
		t.Errorf("client-b should have its own window: %v", err)
	}
}

func TestAllowWindowSlides(t *testing.T) {
	g := New(2, 0)
	current := time.Unix(1000, 0)
	g.now = func() time.Time { return current }

	if err := g.Allow("c"); err != nil {
		t.Fatalf("first: %v", err)
	}
	if err := g.Allow("c"); err != nil {
		t.Fatalf("second: %v", err)
	}
	if err := g.Allow("c"); err == nil {
		t.Fatal("third request inside window should be denied")
	}

	current = current.Add(61 * time.Second)
	if err := g.Allow("c"); err != nil {
		t.Errorf("request after window expiry: %v", err)
	}
}

func TestAllowUnlimitedWhenDisabled(t *testing.T) {
	g := New(0, 0)
	for i := 0; i < 100; i++ {
		if err := g.Allow("c"); err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
	}
}

func TestCheckQuestion(t *testing.T) {
	g := New(10, 20)

	if err := g.CheckQuestion("what is 2+2"); err != nil {
		t.Errorf("valid question: %v", err)
	}
	if err := g.CheckQuestion("   "); !errors.Is(err, domain.ErrEmptyQuestion) {
		t.Errorf("blank question: %v", err)
	}
	if err := g.CheckQuestion(strings.Repeat("x", 21)); !errors.Is(err, domain.ErrQuestionTooLong) {
		t.Errorf("long question: %v", err)
	}
}
