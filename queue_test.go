package luxafor

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQueue() *commandQueue {
	return newCommandQueue(nil)
}

// waitErr, sonuç kanalını zaman aşımıyla okur; takılan test asılı kalmaz.
func waitErr(t *testing.T, ch <-chan error) error {
	t.Helper()
	select {
	case err := <-ch:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("görev sonucu zamanında gelmedi")
		return nil
	}
}

func TestQueueRunsTasksInOrder(t *testing.T) {
	q := newTestQueue()

	var mu sync.Mutex
	var order []string
	record := func(name string) func() error {
		return func() error {
			mu.Lock()
			order = append(order, name)
			mu.Unlock()
			return nil
		}
	}

	// İlk görev kapıda bekletilir ki arkaya sıra birikebilsin.
	release := make(chan struct{})
	first := q.enqueue("first", func() error {
		<-release
		return nil
	})

	a := q.enqueue("a", record("a"))
	b := q.enqueue("b", record("b"))
	c := q.enqueue("c", record("c"))

	close(release)
	require.NoError(t, waitErr(t, first))
	require.NoError(t, waitErr(t, a))
	require.NoError(t, waitErr(t, b))
	require.NoError(t, waitErr(t, c))

	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestQueueSingleInFlight(t *testing.T) {
	q := newTestQueue()

	var active atomic.Int32
	var violated atomic.Bool
	body := func() error {
		if active.Add(1) != 1 {
			violated.Store(true)
		}
		time.Sleep(time.Millisecond)
		active.Add(-1)
		return nil
	}

	var results []<-chan error
	for i := 0; i < 20; i++ {
		results = append(results, q.enqueue("t", body))
	}
	for _, ch := range results {
		require.NoError(t, waitErr(t, ch))
	}

	assert.False(t, violated.Load(), "aynı anda birden fazla görev uçuştaydı")
}

func TestQueueDeliversBodyError(t *testing.T) {
	q := newTestQueue()
	sentinel := errors.New("yazma hatası")

	err := waitErr(t, q.enqueue("fail", func() error { return sentinel }))
	assert.ErrorIs(t, err, sentinel)

	// Hatayla biten görev kuyruğu tıkamaz.
	assert.NoError(t, waitErr(t, q.enqueue("next", func() error { return nil })))
}

func TestQueueDepth(t *testing.T) {
	q := newTestQueue()
	assert.Equal(t, 0, q.depth())

	started := make(chan struct{})
	release := make(chan struct{})
	current := q.enqueue("current", func() error {
		close(started)
		<-release
		return nil
	})
	<-started

	q.enqueue("b1", func() error { return nil })
	b2 := q.enqueue("b2", func() error { return nil })
	assert.Equal(t, 3, q.depth())

	close(release)
	require.NoError(t, waitErr(t, current))
	require.NoError(t, waitErr(t, b2))
	assert.Equal(t, 0, q.depth())
}

func TestExpectSatisfyExactMatch(t *testing.T) {
	q := newTestQueue()
	w := q.expect(ResponseAck)

	// Eşleşmeyen kod bekleyeni uyandırmaz.
	assert.False(t, q.satisfy(ResponseDone))
	select {
	case <-w.ch:
		t.Fatal("yanlış yanıt beklemeyi çözdü")
	default:
	}

	assert.True(t, q.satisfy(ResponseAck))
	w.wait()

	// İşaret tüketildi; aynı kod ikinci kez eşleşmez.
	assert.False(t, q.satisfy(ResponseAck))
}

func TestSatisfyWithoutWaiter(t *testing.T) {
	q := newTestQueue()
	assert.False(t, q.satisfy(ResponseAck))
	assert.False(t, q.satisfy(ResponseDone))
}

func TestAdvanceClearsStaleWait(t *testing.T) {
	q := newTestQueue()

	// Gövde yanıt bekleyecekken yazma hatasıyla erken dönüyor.
	done := q.enqueue("t", func() error {
		q.expect(ResponseDone)
		return errors.New("çerçeve yazılamadı")
	})
	require.Error(t, waitErr(t, done))

	// Biten komuta ait geç rapor artık kimseyi uyandırmaz.
	assert.False(t, q.satisfy(ResponseDone))
}

func TestClearDropsBacklog(t *testing.T) {
	q := newTestQueue()

	started := make(chan struct{})
	release := make(chan struct{})
	current := q.enqueue("current", func() error {
		close(started)
		<-release
		return nil
	})
	<-started

	var ran atomic.Bool
	b1 := q.enqueue("b1", func() error { ran.Store(true); return nil })
	b2 := q.enqueue("b2", func() error { ran.Store(true); return nil })

	cleared := q.clear()

	// Düşürülen görevler anında ErrQueueCleared alır.
	assert.ErrorIs(t, waitErr(t, b1), ErrQueueCleared)
	assert.ErrorIs(t, waitErr(t, b2), ErrQueueCleared)

	// Uçuştaki görev sürerken clear henüz çözülmez.
	select {
	case <-cleared:
		t.Fatal("clear, uçuştaki görev bitmeden çözüldü")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	assert.NoError(t, waitErr(t, cleared))
	assert.NoError(t, waitErr(t, current))

	assert.False(t, ran.Load(), "düşürülen görev gövdesi çalıştı")
	assert.Equal(t, 0, q.depth())
}

func TestClearOnIdleQueue(t *testing.T) {
	q := newTestQueue()
	assert.NoError(t, waitErr(t, q.clear()))
}

func TestQueueUsableAfterClear(t *testing.T) {
	q := newTestQueue()

	started := make(chan struct{})
	release := make(chan struct{})
	current := q.enqueue("current", func() error {
		close(started)
		<-release
		return nil
	})
	<-started

	dropped := q.enqueue("dropped", func() error { return nil })
	cleared := q.clear()
	assert.ErrorIs(t, waitErr(t, dropped), ErrQueueCleared)

	close(release)
	require.NoError(t, waitErr(t, current))
	require.NoError(t, waitErr(t, cleared))

	// Temizlik sonrası kuyruk normal çalışmaya devam eder.
	assert.NoError(t, waitErr(t, q.enqueue("fresh", func() error { return nil })))
}
