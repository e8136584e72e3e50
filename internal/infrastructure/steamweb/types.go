package steamweb

import (
	"github.com/samber/lo"

	"github.com/dylan-park/TradeBell/internal/domain/entity"
)

type getTradeOffersResponse struct {
	Response tradeOffersData `json:"response"`
}

type tradeOffersData struct {
	TradeOffersReceived []tradeOffer `json:"trade_offers_received"`
	TradeOffersSent     []tradeOffer `json:"trade_offers_sent"`
}

type tradeOffer struct {
	TradeOfferID    string `json:"tradeofferid"`
	TradeOfferState int    `json:"trade_offer_state"`
	Message         string `json:"message"`
	TimeCreated     int64  `json:"time_created"`
	TimeUpdated     int64  `json:"time_updated"`
	AccountIDOther  int64  `json:"accountid_other"`
}

func (o tradeOffer) toDomain() entity.TradeOffer {
	return entity.TradeOffer{
		TradeOfferID:   o.TradeOfferID,
		State:          entity.OfferState(o.TradeOfferState),
		Message:        o.Message,
		TimeCreated:    o.TimeCreated,
		TimeUpdated:    o.TimeUpdated,
		OtherAccountID: o.AccountIDOther,
	}
}

type getTradeHistoryResponse struct {
	Response tradeHistoryData `json:"response"`
}

type tradeHistoryData struct {
	TotalTrades int            `json:"total_trades"`
	More        bool           `json:"more"`
	Trades      []tradeHistory `json:"trades"`
}

type tradeHistory struct {
	TradeID        string  `json:"tradeid"`
	SteamIDOther   string  `json:"steamid_other"`
	TimeInit       int64   `json:"time_init"`
	AssetsReceived []asset `json:"assets_received"`
	AssetsGiven    []asset `json:"assets_given"`
}

func (h tradeHistory) toDomain() entity.TradeHistoryRecord {
	return entity.TradeHistoryRecord{
		TradeID:        h.TradeID,
		OtherSteamID:   h.SteamIDOther,
		TimeInit:       h.TimeInit,
		AssetsReceived: lo.Map(h.AssetsReceived, func(a asset, _ int) entity.Asset { return a.toDomain() }),
		AssetsGiven:    lo.Map(h.AssetsGiven, func(a asset, _ int) entity.Asset { return a.toDomain() }),
	}
}

type asset struct {
	AppID        uint32 `json:"appid"`
	ContextID    string `json:"contextid"`
	AssetID      string `json:"assetid"`
	ClassID      string `json:"classid"`
	InstanceID   string `json:"instanceid"`
	Amount       string `json:"amount"`
	NewAssetID   string `json:"new_assetid,omitempty"`
	NewContextID string `json:"new_contextid,omitempty"`
}

func (a asset) toDomain() entity.Asset {
	return entity.Asset{
		AppID:        a.AppID,
		ContextID:    a.ContextID,
		AssetID:      a.AssetID,
		ClassID:      a.ClassID,
		InstanceID:   a.InstanceID,
		Amount:       a.Amount,
		NewAssetID:   a.NewAssetID,
		NewContextID: a.NewContextID,
	}
}

type assetClassInfo struct {
	IconURL        string `json:"icon_url"`
	Name           string `json:"name"`
	MarketHashName string `json:"market_hash_name"`
	MarketName     string `json:"market_name"`
	NameColor      string `json:"name_color"`
	Type           string `json:"type"`
}

func (i assetClassInfo) toDomain() entity.ItemInfo {
	return entity.ItemInfo{
		IconURL:        i.IconURL,
		Name:           i.Name,
		MarketName:     i.MarketName,
		MarketHashName: i.MarketHashName,
		NameColor:      i.NameColor,
		Type:           i.Type,
	}
}
