package entity

// ClassInstance is the (classid, instanceid) identifier pair Steam uses to
// distinguish item templates from per-instance variations.
type ClassInstance struct {
	ClassID    string
	InstanceID string
}

// Asset is one item instance involved in a trade. ClassID identifies the item
// template, InstanceID the per-instance variation.
type Asset struct {
	AppID      uint32
	ContextID  string
	AssetID    string
	ClassID    string
	InstanceID string
	Amount     string

	// Assigned by Steam after the exchange completes.
	NewAssetID   string
	NewContextID string
}

// TradeHistoryRecord is a completed-trade ledger entry from
// IEconService/GetTradeHistory. It is keyed independently of trade offer ids.
type TradeHistoryRecord struct {
	TradeID        string
	OtherSteamID   string
	TimeInit       int64
	AssetsReceived []Asset
	AssetsGiven    []Asset
}
