package luxafor

import (
	"sync"

	"github.com/google/uuid"
)

// ─── Görev ──────────────────────────────────────────────────────────────────────

// task, kuyruğa alınmış tek bir komutu ve sonucunun teslim edileceği
// kanalı taşır. done kanalı 1 kapasitelidir ve tam bir kez yazılır;
// çağıran okumasa bile gönderen bloklanmaz.
type task struct {
	id   string
	name string
	body func() error
	done chan error
}

func newTask(name string, body func() error) *task {
	return &task{
		id:   uuid.New().String(),
		name: name,
		body: body,
		done: make(chan error, 1),
	}
}

// ─── Yanıt Bekleme ──────────────────────────────────────────────────────────────

// responseWait, uçuştaki komutun cihazdan beklediği yanıtı ve komut
// gövdesini uyandıracak kanalı tutar. Kanal 1 kapasitelidir; okuma
// döngüsü yazarken hiçbir koşulda bloklanmaz.
type responseWait struct {
	want Response
	ch   chan struct{}
}

// wait, beklenen yanıt gelene kadar bloklar.
func (w *responseWait) wait() {
	<-w.ch
}

// ─── Komut Kuyruğu ──────────────────────────────────────────────────────────────

// commandQueue, cihaz komutlarını geliş sırasıyla ve her an en fazla bir
// komut uçuşta olacak şekilde işletir. Uçuştaki komut, cihaz beklenen
// onayı verene kadar sıradakini engeller; böylece tek bir fiziksel cihaz
// üzerinde komutlar asla iç içe geçmez.
//
// Kuyruk boştayken gelen görev hemen işletilmeye başlar; doluyken sıraya
// eklenir. İşletme tek bir drain goroutine'inde yürür ve kuyruk
// boşaldığında goroutine sonlanır.
type commandQueue struct {
	mu           sync.Mutex
	backlog      []*task
	current      *task
	waiting      *responseWait
	clearWaiters []chan error
	logf         func(format string, v ...interface{})
}

func newCommandQueue(logf func(format string, v ...interface{})) *commandQueue {
	if logf == nil {
		logf = func(string, ...interface{}) {}
	}
	return &commandQueue{logf: logf}
}

// enqueue, bir görevi kuyruğa ekler ve sonucunun okunacağı kanalı döner.
// Kuyruk boşsa görev hemen uçuşa alınır.
func (q *commandQueue) enqueue(name string, body func() error) <-chan error {
	t := newTask(name, body)

	q.mu.Lock()
	if q.current == nil {
		q.current = t
		q.mu.Unlock()
		q.logf("kuyruk: %s uçuşa alındı (id=%s)", t.name, t.id)
		go q.drain(t)
		return t.done
	}
	q.backlog = append(q.backlog, t)
	n := len(q.backlog)
	q.mu.Unlock()

	q.logf("kuyruk: %s sıraya eklendi (id=%s, bekleyen=%d)", t.name, t.id, n)
	return t.done
}

// drain, uçuştaki görevden başlayarak kuyruk boşalana kadar görevleri
// sırayla işletir. Sonuç kanalına yazma, bir sonraki görev uçuşa
// alındıktan sonra yapılır; böylece sonucu bekleyen çağıran kuyruğun
// ilerleyişini geciktiremez.
func (q *commandQueue) drain(t *task) {
	for t != nil {
		err := t.body()
		next := q.advance()
		if err != nil {
			q.logf("kuyruk: %s hatayla bitti (id=%s): %v", t.name, t.id, err)
		}
		t.done <- err
		t = next
	}
}

// advance, biten görevi kuyruktan düşürür ve varsa sıradaki görevi uçuşa
// alır. Bekleyen yanıt işareti koşulsuz temizlenir; biten komuta ait geç
// gelen bir rapor sıradaki komutun beklemesini çözemez.
func (q *commandQueue) advance() *task {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.waiting = nil

	for _, ch := range q.clearWaiters {
		ch <- nil
	}
	q.clearWaiters = nil

	if len(q.backlog) > 0 {
		next := q.backlog[0]
		q.backlog = q.backlog[1:]
		q.current = next
		q.logf("kuyruk: %s uçuşa alındı (id=%s)", next.name, next.id)
		return next
	}

	q.current = nil
	return nil
}

// expect, uçuştaki komutun bekleyeceği yanıtı kaydeder. Çerçeve cihaza
// yazılmadan ÖNCE çağrılır; hızlı yanıt veren bir cihazın raporu, okuma
// döngüsü tarafından işaret kurulmadan önce görülemez.
func (q *commandQueue) expect(want Response) *responseWait {
	w := &responseWait{want: want, ch: make(chan struct{}, 1)}
	q.mu.Lock()
	q.waiting = w
	q.mu.Unlock()
	return w
}

// satisfy, okuma döngüsünden gelen bir yanıtı bekleyen komutla eşleştirir.
// Yanıt tam olarak beklenen kodsa komut gövdesi uyandırılır ve true döner.
// Bekleyen komut yokken veya kod eşleşmezken rapor yok sayılır ve false
// döner; eşleşmeyen raporlar kuyruğu asla ilerletmez.
func (q *commandQueue) satisfy(r Response) bool {
	q.mu.Lock()
	w := q.waiting
	if w == nil || w.want != r {
		q.mu.Unlock()
		return false
	}
	q.waiting = nil
	q.mu.Unlock()

	w.ch <- struct{}{}
	return true
}

// clear, sıradaki tüm görevleri düşürür ve her birinin sonuç kanalına
// ErrQueueCleared yazar. Uçuştaki görev kesilmez; dönen kanal, o görev
// tamamlandığında (kuyruk boşsa hemen) nil değerini taşır.
func (q *commandQueue) clear() <-chan error {
	done := make(chan error, 1)

	q.mu.Lock()
	dropped := q.backlog
	q.backlog = nil
	idle := q.current == nil
	if !idle {
		q.clearWaiters = append(q.clearWaiters, done)
	}
	q.mu.Unlock()

	for _, t := range dropped {
		t.done <- ErrQueueCleared
	}
	if len(dropped) > 0 {
		q.logf("kuyruk: %d bekleyen görev düşürüldü", len(dropped))
	}
	if idle {
		done <- nil
	}
	return done
}

// depth, uçuştaki görev dahil tamamlanmamış görev sayısını döner.
func (q *commandQueue) depth() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := len(q.backlog)
	if q.current != nil {
		n++
	}
	return n
}
