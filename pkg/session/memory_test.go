package session_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Joako199002/proyecto-alzarea/pkg/flow"
	"github.com/Joako199002/proyecto-alzarea/pkg/session"
)

const testPrompt = "eres una asesora de estilo"

func newStore(t *testing.T, maxSessions int) *session.MemoryStore {
	t.Helper()
	s := session.NewMemoryStore(testPrompt, maxSessions, time.Hour, nil)
	t.Cleanup(s.Shutdown)
	return s
}

func TestGetOrCreateSeedsSystemPrompt(t *testing.T) {
	store := newStore(t, 10)

	sess := store.GetOrCreate("s1")
	history := sess.History()

	require.Len(t, history, 1)
	require.Equal(t, session.RoleSystem, history[0].Role)
	require.Equal(t, testPrompt, history[0].Content)
	require.Equal(t, flow.StepGreeting, sess.FlowStep())
	require.Equal(t, 1, store.Count())
}

func TestGetOrCreateReturnsSameSession(t *testing.T) {
	store := newStore(t, 10)

	first := store.GetOrCreate("s1")
	first.AppendUser("hola")

	second := store.GetOrCreate("s1")
	require.Same(t, first, second)
	require.Equal(t, 2, second.Len())
}

func TestSystemMessageStaysFirst(t *testing.T) {
	store := newStore(t, 10)
	sess := store.GetOrCreate("s1")

	for i := 0; i < 5; i++ {
		sess.AppendUser("pregunta")
		sess.AppendAssistant("respuesta")
	}

	history := sess.History()
	require.Equal(t, session.RoleSystem, history[0].Role)
	for _, m := range history[1:] {
		require.NotEqual(t, session.RoleSystem, m.Role)
	}
}

func TestResetThenRecreate(t *testing.T) {
	store := newStore(t, 10)
	sess := store.GetOrCreate("s1")
	sess.AppendUser("hola")
	sess.AppendAssistant("bienvenida, ¿tu nombre?")
	sess.AdvanceFlow(flow.StepName)

	store.Reset("s1")
	require.Equal(t, 0, store.Count())

	fresh := store.GetOrCreate("s1")
	require.NotSame(t, sess, fresh)
	require.Equal(t, 1, fresh.Len())
	require.Equal(t, flow.StepGreeting, fresh.FlowStep())
}

func TestResetAbsentKeyIsNoOp(t *testing.T) {
	store := newStore(t, 10)
	store.Reset("nunca-existió")
	require.Equal(t, 0, store.Count())
}

func TestAdvanceFlowIsMonotonic(t *testing.T) {
	store := newStore(t, 10)
	sess := store.GetOrCreate("s1")

	sess.AdvanceFlow(flow.StepColor)
	require.Equal(t, flow.StepColor, sess.FlowStep())

	// a lower inferred step never regresses the tracker
	sess.AdvanceFlow(flow.StepName)
	require.Equal(t, flow.StepColor, sess.FlowStep())

	sess.AdvanceFlow(flow.StepRecommendation)
	require.Equal(t, flow.StepRecommendation, sess.FlowStep())
}

func TestHistoryReturnsCopy(t *testing.T) {
	store := newStore(t, 10)
	sess := store.GetOrCreate("s1")
	sess.AppendUser("hola")

	snapshot := sess.History()
	snapshot[0].Content = "mutado"

	require.Equal(t, testPrompt, sess.History()[0].Content)
}

func TestLRUEvictionAtCapacity(t *testing.T) {
	store := newStore(t, 2)

	old := store.GetOrCreate("vieja")
	time.Sleep(5 * time.Millisecond)
	store.GetOrCreate("media")
	time.Sleep(5 * time.Millisecond)
	old.AppendUser("sigo aquí") // refreshes activity; "media" is now oldest

	store.GetOrCreate("nueva")
	require.Equal(t, 2, store.Count())

	// the touched session survived
	require.Same(t, old, store.GetOrCreate("vieja"))
	require.Equal(t, 2, old.Len())
}

func TestConcurrentGetOrCreateSingleSession(t *testing.T) {
	store := newStore(t, 100)

	const workers = 32
	sessions := make([]*session.Session, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sessions[i] = store.GetOrCreate("compartida")
		}(i)
	}
	wg.Wait()

	require.Equal(t, 1, store.Count())
	for i := 1; i < workers; i++ {
		require.Same(t, sessions[0], sessions[i])
	}
}

func TestDistinctKeysAreIsolated(t *testing.T) {
	store := newStore(t, 10)

	a := store.GetOrCreate("a")
	b := store.GetOrCreate("b")
	a.AppendUser("solo para a")

	require.Equal(t, 2, a.Len())
	require.Equal(t, 1, b.Len())
}
