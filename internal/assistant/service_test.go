// README: Chat service tests; fallback chain from remote generation down to the local pipeline.
package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"menuboard/internal/ai"
	"menuboard/internal/catalog"
)

type fixedCatalog struct {
	snap *catalog.Snapshot
}

func (f fixedCatalog) Snapshot() *catalog.Snapshot { return f.snap }

type fakeGenerator struct {
	text  string
	err   error
	calls int
}

func (g *fakeGenerator) Generate(ctx context.Context, query string, snap *catalog.Snapshot) (string, error) {
	g.calls++
	return g.text, g.err
}

type denyQuota struct{}

func (denyQuota) UseToken(ctx context.Context, clientKey string) error {
	return errors.New("exhausted")
}

func newTestAssistant(gen Generator, quota Quota) *Service {
	return NewService(ServiceDeps{
		Catalog:   fixedCatalog{snap: testSnapshot()},
		Generator: gen,
		Quota:     quota,
		StoreName: "Mundo Frappe",
		Resolver:  pinnedResolver(),
		Logger:    zap.NewNop(),
	})
}

func TestServiceOpenWelcome(t *testing.T) {
	svc := newTestAssistant(nil, nil)
	sess := svc.Open()

	history, err := svc.History(sess.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || !strings.Contains(history[0].Text, "Mundo Frappe") {
		t.Errorf("welcome = %+v", history)
	}
}

func TestServiceSubmitValidation(t *testing.T) {
	svc := newTestAssistant(nil, nil)
	sess := svc.Open()

	if _, err := svc.Submit(context.Background(), "missing", "hola"); err != ErrSessionNotFound {
		t.Errorf("unknown session = %v, want ErrSessionNotFound", err)
	}
	if _, err := svc.Submit(context.Background(), sess.ID, "   "); err != ErrEmptyMessage {
		t.Errorf("blank message = %v, want ErrEmptyMessage", err)
	}
}

func TestServiceSubmitRemoteSuccess(t *testing.T) {
	gen := &fakeGenerator{text: "Te recomiendo el Frappe de Oreo, combina con todo."}
	svc := newTestAssistant(gen, nil)
	sess := svc.Open()

	msg, err := svc.Submit(context.Background(), sess.ID, "qué me recomiendas")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d", gen.calls)
	}
	if msg.Text != gen.text {
		t.Errorf("reply = %q", msg.Text)
	}

	found := false
	for _, it := range msg.Recommendations {
		if it.ID == "p1" {
			found = true
		}
	}
	if !found {
		t.Errorf("mentioned item not extracted: %v", msg.Recommendations)
	}
}

func TestServiceSubmitRemoteFailureFallsBack(t *testing.T) {
	gen := &fakeGenerator{err: ai.ErrRemoteUnavailable}
	svc := newTestAssistant(gen, nil)
	sess := svc.Open()

	msg, err := svc.Submit(context.Background(), sess.ID, "quiero un frappe")
	if err != nil {
		t.Fatalf("submit must not surface adapter failures: %v", err)
	}
	if msg.Text == "" {
		t.Fatal("fallback reply is empty")
	}
	if len(msg.Recommendations) == 0 {
		t.Error("local pipeline should resolve frappes")
	}
}

func TestServiceSubmitQuotaExhaustedFallsBack(t *testing.T) {
	gen := &fakeGenerator{text: "remote text"}
	svc := newTestAssistant(gen, denyQuota{})
	sess := svc.Open()

	msg, err := svc.Submit(context.Background(), sess.ID, "hola")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if gen.calls != 0 {
		t.Error("generator must not run when the quota is exhausted")
	}
	if msg.Text != greetingReply {
		t.Errorf("reply = %q, want local greeting", msg.Text)
	}
}

func TestServiceSubmitLocalOnly(t *testing.T) {
	svc := newTestAssistant(nil, nil)
	sess := svc.Open()

	tests := []struct {
		query string
		want  string
	}{
		{"hola", greetingReply},
		{"adios", farewellReply},
		{"ayuda", helpReply},
	}
	for _, tt := range tests {
		msg, err := svc.Submit(context.Background(), sess.ID, tt.query)
		if err != nil {
			t.Fatalf("submit %q: %v", tt.query, err)
		}
		if msg.Text != tt.want {
			t.Errorf("reply for %q = %q", tt.query, msg.Text)
		}
	}
}

func TestServiceSubmitAppendsHistory(t *testing.T) {
	svc := newTestAssistant(nil, nil)
	sess := svc.Open()

	if _, err := svc.Submit(context.Background(), sess.ID, "hola"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	history, err := svc.History(sess.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	// welcome + user + assistant
	if len(history) != 3 {
		t.Fatalf("history length = %d, want 3", len(history))
	}
	if history[1].Speaker != SpeakerUser || history[2].Speaker != SpeakerAssistant {
		t.Errorf("speakers = %v, %v", history[1].Speaker, history[2].Speaker)
	}
}

func TestServiceClose(t *testing.T) {
	svc := newTestAssistant(nil, nil)
	sess := svc.Open()

	if err := svc.Close(sess.ID); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := svc.History(sess.ID); err != ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound after close, got %v", err)
	}
}
