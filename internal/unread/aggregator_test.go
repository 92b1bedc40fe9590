package unread

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource serves canned lookups keyed by channel ID.
type fakeSource struct {
	lastRead    map[string]string
	latest      map[string]string
	lastReadErr map[string]error
	latestErr   map[string]error
	delay       time.Duration

	mu       sync.Mutex
	calls    int
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (f *fakeSource) enter() func() {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	n := f.inFlight.Add(1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return func() { f.inFlight.Add(-1) }
}

func (f *fakeSource) LastRead(_ context.Context, id string) (string, error) {
	defer f.enter()()
	if err := f.lastReadErr[id]; err != nil {
		return "", err
	}
	return f.lastRead[id], nil
}

func (f *fakeSource) LatestTimestamp(_ context.Context, id string) (string, error) {
	defer f.enter()()
	if err := f.latestErr[id]; err != nil {
		return "", err
	}
	return f.latest[id], nil
}

// entry is a minimal Summary implementation.
type entry struct {
	id     string
	count  *int
	signal *bool
}

func (e *entry) ChannelID() string { return e.id }
func (e *entry) Counter() *int { return e.count }
func (e *entry) SetSignal(s Signal) { e.signal = s.Bool() }

func intPtr(n int) *int { return &n }

func TestResolve_OrderAndSignals(t *testing.T) {
	src := &fakeSource{
		lastRead: map[string]string{"C1": "1700000000.000100", "C2": "1700000000.000200"},
		latest:   map[string]string{"C1": "1700000000.000200", "C2": "1700000000.000200"},
	}
	a := New(src)

	got := a.Resolve(context.Background(), []string{"C1", "C2", "C3"})

	assert.Equal(t, []Signal{Unread, Read, Unknown}, got)
}

func TestResolve_Empty(t *testing.T) {
	a := New(&fakeSource{})

	got := a.Resolve(context.Background(), nil)

	assert.Empty(t, got)
}

func TestResolve_FailuresDegrade(t *testing.T) {
	src := &fakeSource{
		lastRead:    map[string]string{"C1": "1.0", "C2": "1.0", "C3": "1.0"},
		latest:      map[string]string{"C1": "2.0", "C2": "2.0", "C3": "2.0"},
		lastReadErr: map[string]error{"C1": errors.New("channel_not_found")},
		latestErr:   map[string]error{"C2": errors.New("timeout")},
	}
	a := New(src)

	got := a.Resolve(context.Background(), []string{"C1", "C2", "C3"})

	assert.Equal(t, []Signal{Unknown, Unknown, Unread}, got)
}

func TestResolve_BoundedConcurrency(t *testing.T) {
	ids := make([]string, 40)
	src := &fakeSource{lastRead: map[string]string{}, latest: map[string]string{}, delay: 5 * time.Millisecond}
	for i := range ids {
		ids[i] = fmt.Sprintf("C%d", i)
		src.lastRead[ids[i]] = "1.0"
		src.latest[ids[i]] = "2.0"
	}
	a := New(src, WithConcurrency(3))

	got := a.Resolve(context.Background(), ids)

	require.Len(t, got, 40)
	for i, s := range got {
		assert.Equal(t, Unread, s, "slot %d", i)
	}
	assert.LessOrEqual(t, src.peak.Load(), int32(3))
	assert.Equal(t, 80, src.calls)
}

func TestAnnotate_CheckOnly(t *testing.T) {
	// C1: counter 3, no last read. C2: read. C3: newer message.
	src := &fakeSource{
		lastRead: map[string]string{"C2": "1700000000.000200", "C3": "1700000000.000100"},
		latest:   map[string]string{"C1": "1700000000.000900", "C2": "1700000000.000200", "C3": "1700000000.000200"},
	}
	channels := []entry{{id: "C1", count: intPtr(3)}, {id: "C2"}, {id: "C3"}}

	got := Annotate(context.Background(), New(src), channels, false)

	require.Len(t, got, 3)
	assert.Nil(t, got[0].signal)
	require.NotNil(t, got[1].signal)
	assert.False(t, *got[1].signal)
	require.NotNil(t, got[2].signal)
	assert.True(t, *got[2].signal)
}

func TestAnnotate_UnreadOnly(t *testing.T) {
	src := &fakeSource{
		lastRead: map[string]string{"C2": "1700000000.000200", "C3": "1700000000.000100"},
		latest:   map[string]string{"C1": "1700000000.000900", "C2": "1700000000.000200", "C3": "1700000000.000200"},
	}
	channels := []entry{{id: "C1", count: intPtr(3)}, {id: "C2"}, {id: "C3"}}

	got := Annotate(context.Background(), New(src), channels, true)

	require.Len(t, got, 2)
	assert.Equal(t, "C1", got[0].id)
	assert.Equal(t, "C3", got[1].id)
}

func TestAnnotate_AllFailuresEmptyUnreadOnly(t *testing.T) {
	boom := errors.New("boom")
	src := &fakeSource{lastReadErr: map[string]error{"C1": boom, "C2": boom}}
	channels := []entry{{id: "C1"}, {id: "C2", count: intPtr(0)}}

	got := Annotate(context.Background(), New(src), channels, true)

	assert.Empty(t, got)
}

func TestAnnotate_Idempotent(t *testing.T) {
	src := &fakeSource{
		lastRead: map[string]string{"C1": "1.0", "C2": "2.0"},
		latest:   map[string]string{"C1": "2.0", "C2": "2.0"},
	}
	a := New(src)
	channels := []entry{{id: "C1"}, {id: "C2"}}

	first := Annotate(context.Background(), a, channels, true)
	second := Annotate(context.Background(), a, first, true)

	assert.Equal(t, first, second)
}

func TestNew_Options(t *testing.T) {
	a := New(&fakeSource{}, WithConcurrency(0), WithLogger(nil))
	assert.Equal(t, DefaultConcurrency, a.concurrency)
	assert.NotNil(t, a.log)

	a = New(&fakeSource{}, WithConcurrency(2))
	assert.Equal(t, 2, a.concurrency)
}

func TestAnnotate_UnreadOnlyScenarios(t *testing.T) {
	tests := []struct {
		name    string
		entries []entry
		src     *fakeSource
		want    []string
	}{
		{
			name: "counter wins over unknown signals",
			entries: []entry{
				{id: "A", count: intPtr(2)},
				{id: "B", count: intPtr(0)},
				{id: "C", count: intPtr(0)},
			},
			src: &fakeSource{
				lastReadErr: map[string]error{
					"A": errors.New("timeout"),
					"B": errors.New("timeout"),
					"C": errors.New("timeout"),
				},
			},
			want: []string{"A"},
		},
		{
			name:    "newer message with zero counter",
			entries: []entry{{id: "D", count: intPtr(0)}},
			src: &fakeSource{
				lastRead: map[string]string{"D": "100.0"},
				latest:   map[string]string{"D": "200.5"},
			},
			want: []string{"D"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Annotate(context.Background(), New(tc.src), tc.entries, true)

			ids := make([]string, len(got))
			for i := range got {
				ids[i] = got[i].id
			}
			assert.Equal(t, tc.want, ids)
		})
	}
}
