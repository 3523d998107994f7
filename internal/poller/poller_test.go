package poller

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/soccercentral/roster-service/internal/domain/players"
	"github.com/soccercentral/roster-service/internal/domain/teams"
	"github.com/soccercentral/roster-service/internal/store"
	"github.com/soccercentral/roster-service/internal/testutil"
)

type stubRefresher struct {
	roster []players.Player
	err    error
	calls  atomic.Int32
	notify chan struct{}
}

func (s *stubRefresher) Refresh(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	s.calls.Add(1)
	if s.notify != nil {
		select {
		case <-s.notify:
		default:
			close(s.notify)
		}
	}
	return s.roster, s.err
}

func TestPollerRefreshesAndSwapsSnapshots(t *testing.T) {
	refresher := &stubRefresher{
		roster: testutil.SampleRoster(),
		notify: make(chan struct{}),
	}
	teamSrc := &testutil.StubProvider{Teams: []teams.Team{testutil.SampleTeam("t1")}}
	ms := store.NewMemoryStore()

	p := New(refresher, teamSrc, playerSink{ms}, teamSink{ms}, nil, nil, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)

	select {
	case <-refresher.notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial refresh")
	}

	time.Sleep(30 * time.Millisecond) // allow at least one ticker fire

	cancel()
	_ = p.Stop(context.Background())

	if got := ms.ListPlayers(); len(got) != 3 {
		t.Fatalf("expected roster snapshot in store, got %d players", len(got))
	}
	if got := ms.ListTeams(); len(got) != 1 {
		t.Fatalf("expected teams snapshot in store, got %d teams", len(got))
	}
	if refresher.calls.Load() < 1 {
		t.Fatalf("expected at least one refresh call")
	}

	status := p.Status()
	if !status.IsReady() {
		t.Fatalf("expected poller ready after success, got %+v", status)
	}
}

func TestPollerRecordsFailures(t *testing.T) {
	refresher := &stubRefresher{
		err:    errors.New("upstream down"),
		notify: make(chan struct{}),
	}
	p := New(refresher, nil, nil, nil, nil, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)

	select {
	case <-refresher.notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial refresh")
	}
	_ = p.Stop(context.Background())

	status := p.Status()
	if status.IsReady() {
		t.Fatalf("expected not ready after failure")
	}
	if status.ConsecutiveFailures < 1 || status.LastError != "upstream down" {
		t.Fatalf("unexpected status %+v", status)
	}
}

func TestPollerTeamFetchFailureKeepsPreviousSnapshot(t *testing.T) {
	refresher := &stubRefresher{
		roster: testutil.SampleRoster(),
		notify: make(chan struct{}),
	}
	ms := store.NewMemoryStore()
	teamSrc := &testutil.StubProvider{TeamErr: errors.New("teams down")}
	p := New(refresher, teamSrc, playerSink{ms}, teamSink{ms}, nil, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)

	select {
	case <-refresher.notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial refresh")
	}
	_ = p.Stop(context.Background())

	if !p.Status().IsReady() {
		t.Fatalf("expected team fetch failure to stay best-effort")
	}
	if got := ms.ListPlayers(); len(got) != 3 {
		t.Fatalf("expected roster swapped despite team failure, got %d", len(got))
	}
}

func TestPollerStopsOnContextCancel(t *testing.T) {
	refresher := &stubRefresher{notify: make(chan struct{})}
	p := New(refresher, nil, nil, nil, nil, nil, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	p.Start(ctx)

	select {
	case <-refresher.notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial refresh")
	}

	cancel()
	_ = p.Stop(context.Background())

	callsAfterStop := refresher.calls.Load()
	time.Sleep(20 * time.Millisecond)
	if refresher.calls.Load() != callsAfterStop {
		t.Fatalf("expected no additional refreshes after stop; before=%d after=%d", callsAfterStop, refresher.calls.Load())
	}
}

func TestPollerStopIsIdempotent(t *testing.T) {
	p := New(&stubRefresher{}, nil, nil, nil, nil, nil, time.Hour)

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("first stop returned error: %v", err)
	}
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("second stop returned error: %v", err)
	}
}

func TestPollerStartIsIdempotent(t *testing.T) {
	refresher := &stubRefresher{notify: make(chan struct{})}
	p := New(refresher, nil, nil, nil, nil, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)
	p.Start(ctx)

	select {
	case <-refresher.notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial refresh")
	}
	_ = p.Stop(context.Background())

	if refresher.calls.Load() != 1 {
		t.Fatalf("expected a single initial refresh, got %d", refresher.calls.Load())
	}
}

// playerSink and teamSink adapt the memory store to the poller seams.
type playerSink struct{ ms *store.MemoryStore }

func (s playerSink) ReplacePlayers(items []players.Player) { s.ms.SetPlayers(items) }

type teamSink struct{ ms *store.MemoryStore }

func (s teamSink) ReplaceTeams(items []teams.Team) { s.ms.SetTeams(items) }
