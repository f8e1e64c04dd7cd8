// Пакет lifecycle — согласование остановки фонового цикла опроса и управляющей горутины.
//
// Coordinator объединяет два одноразовых сигнала:
//   - отмена (RequestShutdown): отменяет контекст, которым ограничен блокирующий опрос;
//   - завершение (Release): закрывает канал, который ждёт управляющая горутина перед выходом.
//
// Оба сигнала срабатывают не больше одного раза и безопасны для конкурентных вызовов.
package lifecycle

import (
	"context"
	"sync"
	"sync/atomic"
)

// Coordinator — одноразовые сигналы отмены и завершения для одного экземпляра цикла.
type Coordinator struct {
	ctx       context.Context
	cancel    context.CancelFunc
	requested atomic.Bool

	done        chan struct{}
	releaseOnce sync.Once
}

// New — конструктор. Отмена parent действует так же, как RequestShutdown.
func New(parent context.Context) *Coordinator {
	ctx, cancel := context.WithCancel(parent)
	return &Coordinator{
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

// Context — токен отмены для цикла опроса.
func (c *Coordinator) Context() context.Context { return c.ctx }

// RequestShutdown — запросить остановку. Повторные и конкурентные вызовы ничего не меняют.
func (c *Coordinator) RequestShutdown() {
	c.requested.Store(true)
	c.cancel()
}

// ShutdownRequested — была ли запрошена остановка (явно или отменой родительского контекста).
func (c *Coordinator) ShutdownRequested() bool {
	return c.requested.Load() || c.ctx.Err() != nil
}

// Release — открыть ворота завершения. Срабатывает ровно один раз.
func (c *Coordinator) Release() {
	c.releaseOnce.Do(func() {
		close(c.done)
	})
}

// Done — канал закрывается, когда цикл полностью завершился.
func (c *Coordinator) Done() <-chan struct{} { return c.done }

// Released — ворота уже открыты.
func (c *Coordinator) Released() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// AwaitCompletion — ждать завершения цикла. ctx ограничивает только ожидание, а не сам цикл.
func (c *Coordinator) AwaitCompletion(ctx context.Context) error {
	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
