package trades

import (
	"fmt"
	"strings"

	"github.com/dylan-park/TradeBell/internal/domain/entity"
)

// ComposeNotification renders the Telegram HTML text for one matched trade.
// A section is omitted entirely when its asset list is empty.
func ComposeNotification(record entity.TradeHistoryRecord, received, given []string) string {
	lines := []string{fmt.Sprintf("Trade ID: %s", record.TradeID)}

	if len(received) > 0 {
		lines = append(lines, "\n<b>Received:</b>")
		for _, name := range received {
			lines = append(lines, "- "+name)
		}
	}

	if len(given) > 0 {
		lines = append(lines, "\n<b>Given:</b>")
		for _, name := range given {
			lines = append(lines, "- "+name)
		}
	}

	return strings.Join(lines, "\n")
}
