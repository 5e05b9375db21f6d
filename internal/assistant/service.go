// README: Chat service; remote generation first, local classifier pipeline as the fallback.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"menuboard/internal/ai"
	"menuboard/internal/catalog"
	"menuboard/internal/metrics"
)

// SnapshotProvider yields the catalog view for one turn. The service reads it
// exactly once per submission so a concurrent refresh can never split a turn
// across two catalog states.
type SnapshotProvider interface {
	Snapshot() *catalog.Snapshot
}

// Generator is the remote generation adapter. A nil Generator turns the
// service into a purely local assistant.
type Generator interface {
	Generate(ctx context.Context, query string, snap *catalog.Snapshot) (string, error)
}

// Quota meters remote generation. UseToken returns an error when the current
// allowance is exhausted; the turn then resolves locally.
type Quota interface {
	UseToken(ctx context.Context, clientKey string) error
}

type ServiceDeps struct {
	Catalog   SnapshotProvider
	Generator Generator
	Quota     Quota
	QuotaKey  string
	StoreName string
	Resolver  *Resolver
	Logger    *zap.Logger
}

type Service struct {
	catalog   SnapshotProvider
	gen       Generator
	quota     Quota
	quotaKey  string
	storeName string
	resolver  *Resolver
	sessions  *SessionStore
	logger    *zap.Logger
}

func NewService(deps ServiceDeps) *Service {
	resolver := deps.Resolver
	if resolver == nil {
		resolver = NewResolver()
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	quotaKey := deps.QuotaKey
	if quotaKey == "" {
		quotaKey = "board"
	}
	return &Service{
		catalog:   deps.Catalog,
		gen:       deps.Generator,
		quota:     deps.Quota,
		quotaKey:  quotaKey,
		storeName: deps.StoreName,
		resolver:  resolver,
		sessions:  NewSessionStore(),
		logger:    logger,
	}
}

// Open starts a conversation seeded with the welcome message.
func (s *Service) Open() *Session {
	welcome := fmt.Sprintf("¡Hola! 👋 Soy tu asistente de %s. Puedo ayudarte a encontrar la bebida perfecta. ¿Qué te gustaría probar hoy?", s.storeName)
	return s.sessions.Open(welcome)
}

// History returns the ordered message log of an open session.
func (s *Service) History(sessionID string) ([]Message, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.History(), nil
}

// Close discards a session and its history.
func (s *Service) Close(sessionID string) error {
	return s.sessions.Close(sessionID)
}

// Submit handles one turn: it appends the user message, answers remotely when
// possible and locally otherwise, appends the reply and returns it. Every
// input, including an empty catalog, resolves to some reply.
func (s *Service) Submit(ctx context.Context, sessionID, text string) (Message, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return Message{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, ErrEmptyMessage
	}

	// One in-flight turn per session: a second submission waits here until
	// the previous reply has been appended.
	sess.mu.Lock()
	defer sess.mu.Unlock()

	metrics.ChatTurns.Inc()
	snap := s.catalog.Snapshot()

	sess.append(Message{
		ID:        uuid.NewString(),
		Speaker:   SpeakerUser,
		Text:      text,
		Timestamp: time.Now(),
	})

	reply := s.respond(ctx, text, snap)

	msg := Message{
		ID:              uuid.NewString(),
		Speaker:         SpeakerAssistant,
		Text:            reply.Text,
		Recommendations: reply.Recommendations,
		Timestamp:       time.Now(),
	}
	sess.append(msg)
	return msg, nil
}

func (s *Service) respond(ctx context.Context, query string, snap *catalog.Snapshot) Reply {
	if s.gen != nil {
		if text, ok := s.generate(ctx, query, snap); ok {
			metrics.RemoteReplies.Inc()
			return Reply{Text: text, Recommendations: ExtractMentions(text, snap)}
		}
	}

	metrics.FallbackReplies.Inc()
	return s.respondLocally(query, snap)
}

// generate runs the quota gate and the remote adapter. It never returns an
// error: any failure is logged for operators, counted, and reported as !ok so
// the caller falls back.
func (s *Service) generate(ctx context.Context, query string, snap *catalog.Snapshot) (string, bool) {
	if s.quota != nil {
		if err := s.quota.UseToken(ctx, s.quotaKey); err != nil {
			metrics.RemoteFailures.WithLabelValues("quota").Inc()
			s.logger.Warn("remote generation skipped", zap.Error(err))
			return "", false
		}
	}

	start := time.Now()
	text, err := s.gen.Generate(ctx, query, snap)
	metrics.RemoteDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RemoteFailures.WithLabelValues(failureReason(err)).Inc()
		s.logger.Warn("remote generation failed, answering locally", zap.Error(err))
		return "", false
	}
	return text, true
}

// respondLocally is the deterministic pipeline: classify, resolve, compose.
// Candidates are only resolved when the query either asks for a
// recommendation or is not one of the canned intents, preserving the
// precedence: recommendation request > greeting > farewell > help > default.
func (s *Service) respondLocally(query string, snap *catalog.Snapshot) Reply {
	sig := Classify(query, snap)

	var candidates []catalog.Item
	if sig.SeeksRecommendation || (!sig.IsGreeting && !sig.IsFarewell && !sig.IsHelp) {
		candidates = s.resolver.Resolve(sig, snap)
	}

	return Compose(sig, candidates, snap)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ai.ErrMalformedResponse):
		return "malformed"
	case errors.Is(err, ai.ErrRemoteUnavailable):
		return "unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "other"
	}
}
