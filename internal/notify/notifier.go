package notify

import "context"

// Target адресат уведомления. ChatID предпочтительнее:
// это стабильный числовой идентификатор, username может меняться.
type Target struct {
	ChatID   int64
	Username string
}

// Notifier отправляет уведомление адресату. Доставка best-effort:
// результат не влияет на основную операцию.
type Notifier interface {
	Notify(ctx context.Context, target Target, text, actionURL string) error
}
