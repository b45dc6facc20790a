package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusDelivered TaskStatus = "delivered"
	TaskStatusFailed    TaskStatus = "failed"
)

// TaskResult итог доставки уведомления
type TaskResult struct {
	ID     string     `json:"id"`
	Status TaskStatus `json:"status"`
	Reason string     `json:"reason,omitempty"` // Причина отказа при status=failed
}

type task struct {
	result TaskResult
	done   chan struct{}
}

// Dispatcher выполняет доставку уведомлений в фоне. Успех основной
// операции никогда не зависит от исхода доставки: вызывающий получает
// ID задачи и при желании спрашивает результат отдельно.
type Dispatcher struct {
	notifier Notifier
	timeout  time.Duration
	logger   *zap.Logger

	mu    sync.RWMutex
	tasks map[string]*task

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewDispatcher(notifier Notifier, timeout time.Duration, logger *zap.Logger) *Dispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		notifier: notifier,
		timeout:  timeout,
		logger:   logger,
		tasks:    make(map[string]*task),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Dispatch ставит уведомление в доставку и возвращает ID задачи.
// Одна попытка с коротким дедлайном, без ретраев.
func (d *Dispatcher) Dispatch(target Target, text, actionURL string) string {
	id := uuid.NewString()

	t := &task{
		result: TaskResult{ID: id, Status: TaskStatusPending},
		done:   make(chan struct{}),
	}

	d.mu.Lock()
	d.tasks[id] = t
	d.mu.Unlock()

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer close(t.done)

		ctx, cancel := context.WithTimeout(d.ctx, d.timeout)
		defer cancel()

		err := d.notifier.Notify(ctx, target, text, actionURL)

		d.mu.Lock()
		if err != nil {
			t.result.Status = TaskStatusFailed
			t.result.Reason = err.Error()
		} else {
			t.result.Status = TaskStatusDelivered
		}
		d.mu.Unlock()

		if err != nil {
			d.logger.Warn("Notification delivery failed",
				zap.String("task_id", id),
				zap.Error(err),
			)
		} else {
			d.logger.Info("Notification delivered",
				zap.String("task_id", id),
			)
		}
	}()

	return id
}

// Result возвращает текущее состояние задачи доставки
func (d *Dispatcher) Result(id string) (TaskResult, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	t, ok := d.tasks[id]
	if !ok {
		return TaskResult{}, false
	}
	return t.result, true
}

// Wait блокируется до завершения доставки или отмены контекста
func (d *Dispatcher) Wait(ctx context.Context, id string) (TaskResult, error) {
	d.mu.RLock()
	t, ok := d.tasks[id]
	d.mu.RUnlock()

	if !ok {
		return TaskResult{}, context.Canceled
	}

	select {
	case <-t.done:
	case <-ctx.Done():
		return TaskResult{}, ctx.Err()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	return t.result, nil
}

// Stop отменяет незавершённые доставки и дожидается горутин
func (d *Dispatcher) Stop() {
	d.cancel()
	d.wg.Wait()
}
