package rest

// Status describes the running watcher process.
type Status struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	UptimeS  int64  `json:"uptimeS"`
	Accounts int    `json:"accounts"`
}

// Account is a point-in-time snapshot of one account poller.
type Account struct {
	Name            string `json:"name"`
	ProcessedTrades int    `json:"processedTrades"`
	LastPollAt      int64  `json:"lastPollAt,omitempty"`
	LastError       string `json:"lastError,omitempty"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`
}

// ErrorCode Код ошибки
type ErrorCode string
