package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	AccountNotFound    failure.ErrorCode = "AccountNotFound"
	InvalidAccountName failure.ErrorCode = "InvalidAccountName"

	SteamAPIError     failure.ErrorCode = "SteamAPIError"
	TradeHistoryError failure.ErrorCode = "TradeHistoryError"
	CachePersistError failure.ErrorCode = "CachePersistError"
	NotificationError failure.ErrorCode = "NotificationError"
)
