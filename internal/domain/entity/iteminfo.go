package entity

// ItemInfo is the resolved display metadata for an item class, as returned by
// ISteamEconomy/GetAssetClassInfo and persisted in the item cache.
type ItemInfo struct {
	IconURL        string `json:"icon_url,omitempty"`
	Name           string `json:"name"`
	MarketName     string `json:"market_name"`
	MarketHashName string `json:"market_hash_name"`
	NameColor      string `json:"name_color"`
	Type           string `json:"type"`
}
