package feed

import (
	"context"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

// Notifiers рассылает событие нескольким получателям по порядку
type Notifiers []Notifier

func (n Notifiers) Notify(ctx context.Context, event domain.SlotEvent) {
	for _, notifier := range n {
		if notifier != nil {
			notifier.Notify(ctx, event)
		}
	}
}
