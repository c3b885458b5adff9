package notify

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/sustainalink/platform/internal/core/ports"
)

// LogNotifier writes notifications to the structured log instead of sending
// them. Data values may carry reset links, so only their keys are logged.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(ctx context.Context, msg ports.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	keys := make([]string, 0, len(msg.Data))
	for k := range msg.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	n.log.Info().
		Str("kind", string(msg.Kind)).
		Str("recipient", msg.Recipient).
		Str("subject", msg.Subject).
		Strs("data_keys", keys).
		Msg("notification delivered")
	return nil
}
