// Package rtc tracks remote audio/video subscriptions during a call. The
// vendor's publish events race with its membership state, so a subscribe can
// fail transiently right after a peer publishes; attempts are bounded per
// (user, media kind) and a periodic sweep picks up whatever gave up.
package rtc

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/carebridge/chat-gateway/internal/model"
	"github.com/carebridge/chat-gateway/internal/pkg/retry"
)

// ErrPeerNotInChannel is the expected transient failure between a publish
// event and the peer becoming visible in the channel.
var ErrPeerNotInChannel = errors.New("peer not in channel")

const (
	maxAttempts = 3
	retryStep   = 500 * time.Millisecond
)

// TrackClient is the slice of the RTC vendor SDK the subscriber needs.
type TrackClient interface {
	Subscribe(ctx context.Context, userID, kind string) error
	Unsubscribe(ctx context.Context, userID, kind string) error
}

type trackKey struct {
	userID string
	kind   string
}

type Subscriber struct {
	client TrackClient

	mu         sync.Mutex
	subscribed map[trackKey]bool
	wanted     map[trackKey]bool
}

func NewSubscriber(client TrackClient) *Subscriber {
	return &Subscriber{
		client:     client,
		subscribed: make(map[trackKey]bool),
		wanted:     make(map[trackKey]bool),
	}
}

// OnPublished handles a remote publish event: a bounded retry loop with
// linearly increasing delay. Non-transient SDK errors stop the loop; once
// the bound is reached the failure is swallowed and EnsureSubscribed retries
// later.
func (s *Subscriber) OnPublished(ctx context.Context, userID, kind string) error {
	key := trackKey{userID: userID, kind: kind}

	s.mu.Lock()
	s.wanted[key] = true
	if s.subscribed[key] {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	err := retry.Do(ctx, maxAttempts, retry.Linear(retryStep), func(ctx context.Context) error {
		subErr := s.client.Subscribe(ctx, userID, kind)
		if subErr == nil {
			return nil
		}
		if errors.Is(subErr, ErrPeerNotInChannel) {
			return subErr
		}
		return fmt.Errorf("%w: %v", retry.ErrGiveUp, subErr)
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.subscribed[key] = true
	s.mu.Unlock()
	return nil
}

// OnUnpublished drops the track from both the wanted set and the vendor
// subscription.
func (s *Subscriber) OnUnpublished(ctx context.Context, userID, kind string) error {
	key := trackKey{userID: userID, kind: kind}

	s.mu.Lock()
	delete(s.wanted, key)
	wasSubscribed := s.subscribed[key]
	delete(s.subscribed, key)
	s.mu.Unlock()

	if !wasSubscribed {
		return nil
	}
	return s.client.Unsubscribe(ctx, userID, kind)
}

// EnsureSubscribed is the periodic sweep: a single subscribe attempt for
// every wanted-but-unsubscribed track. Failures stay silent; the next sweep
// tries again.
func (s *Subscriber) EnsureSubscribed(ctx context.Context) {
	s.mu.Lock()
	var missing []trackKey
	for key := range s.wanted {
		if !s.subscribed[key] {
			missing = append(missing, key)
		}
	}
	s.mu.Unlock()

	for _, key := range missing {
		if err := s.client.Subscribe(ctx, key.userID, key.kind); err != nil {
			continue
		}
		s.mu.Lock()
		s.subscribed[key] = true
		s.mu.Unlock()
	}
}

// HandleTransportEvent maps track lifecycle frames onto the subscription
// bookkeeping. Publish failures are swallowed here; the wanted set keeps the
// track and the sweep retries it. A peer going offline drops all its tracks.
func (s *Subscriber) HandleTransportEvent(ctx context.Context, event model.TransportEvent) {
	switch event.Event {
	case model.EventTrackPublished:
		if validKind(event.Kind) {
			_ = s.OnPublished(ctx, event.UserID, event.Kind)
		}
	case model.EventTrackUnpublished:
		if validKind(event.Kind) {
			_ = s.OnUnpublished(ctx, event.UserID, event.Kind)
		}
	case model.EventPresence:
		if event.Status == model.StatusOffline {
			_ = s.OnUnpublished(ctx, event.UserID, model.MediaKindAudio)
			_ = s.OnUnpublished(ctx, event.UserID, model.MediaKindVideo)
		}
	}
}

func validKind(kind string) bool {
	return kind == model.MediaKindAudio || kind == model.MediaKindVideo
}

// RunSweep runs EnsureSubscribed on the given interval until the context is
// canceled. Call it from the call session's lifetime scope.
func (s *Subscriber) RunSweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.EnsureSubscribed(ctx)
		}
	}
}

// Reset clears all tracked state on call teardown.
func (s *Subscriber) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribed = make(map[trackKey]bool)
	s.wanted = make(map[trackKey]bool)
}
