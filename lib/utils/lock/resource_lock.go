package lock

import (
	"context"
	"sync"
	"sync/atomic"
)

// Resource сериализует обращения к ИИ: в любой момент времени генерацию
// выполняет одна горутина, остальные ждут очереди или завершаются с контекстом

var Resource = newResourceLock()

func InitResourceLock(ctx context.Context) {
	Resource = newResourceLock()

	go func() {
		<-ctx.Done()
		Resource.Stop()
	}()
}

type ResourceLock struct {
	mu        sync.Mutex
	cond      *sync.Cond
	holder    string
	waitCount int32
	stopped   bool
}

func newResourceLock() *ResourceLock {
	lock := &ResourceLock{}
	lock.cond = sync.NewCond(&lock.mu)
	return lock
}

// Acquire захватывает ресурс для указанной функции.
// Возвращает false, если контекст завершился до получения доступа.
func (c *ResourceLock) Acquire(ctx context.Context, functionName string) bool {
	atomic.AddInt32(&c.waitCount, 1)
	defer atomic.AddInt32(&c.waitCount, -1)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return false
	}

	for c.holder != "" && !c.stopped {
		select {
		case <-ctx.Done():
			return false
		default:
			c.cond.Wait()
		}
	}

	if c.stopped {
		return false
	}

	c.holder = functionName
	return true
}

// Release освобождает ресурс
func (c *ResourceLock) Release(functionName string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.holder == functionName {
		c.holder = ""
		c.cond.Broadcast()
	}
}

// Stop будит и завершает все ожидающие горутины
func (c *ResourceLock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopped = true
	c.cond.Broadcast()
}

// WaitCount количество горутин в очереди за ресурсом
func (c *ResourceLock) WaitCount() int {
	return int(atomic.LoadInt32(&c.waitCount))
}
