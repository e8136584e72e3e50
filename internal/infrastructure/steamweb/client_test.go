package steamweb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dylan-park/TradeBell/internal/domain/entity"
	"github.com/dylan-park/TradeBell/internal/infrastructure/steamweb"
)

func newTestServer(t *testing.T, wantPath string, body string) (*httptest.Server, *url.Values) {
	t.Helper()

	var query url.Values

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, wantPath, r.URL.Path)
		query = r.URL.Query()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server, &query
}

func TestListOffers(t *testing.T) {
	rq := require.New(t)

	server, query := newTestServer(t, "/IEconService/GetTradeOffers/v1/", `{
		"response": {
			"trade_offers_received": [
				{
					"tradeofferid": "123456",
					"trade_offer_state": 3,
					"message": "gg",
					"time_created": 1699999000,
					"time_updated": 1700000000,
					"accountid_other": 42
				}
			],
			"trade_offers_sent": [
				{
					"tradeofferid": "123457",
					"trade_offer_state": 2,
					"time_updated": 1700000100
				}
			]
		}
	}`)

	client := steamweb.NewClient("secret", steamweb.WithBaseURL(server.URL))

	offers, err := client.ListOffers(context.Background(), 1699999940)
	rq.NoError(err)

	rq.Equal("secret", query.Get("key"))
	rq.Equal("json", query.Get("format"))
	rq.Equal("1", query.Get("get_received_offers"))
	rq.Equal("1", query.Get("get_sent_offers"))
	rq.Equal("0", query.Get("active_only"))
	rq.Equal("0", query.Get("historical_only"))
	rq.Equal("1699999940", query.Get("time_historical_cutoff"))

	rq.Len(offers.Received, 1)
	rq.Equal(entity.TradeOffer{
		TradeOfferID:   "123456",
		State:          entity.AcceptedOfferState,
		Message:        "gg",
		TimeCreated:    1699999000,
		TimeUpdated:    1700000000,
		OtherAccountID: 42,
	}, offers.Received[0])

	rq.Len(offers.Sent, 1)
	rq.Equal(entity.ActiveOfferState, offers.Sent[0].State)
}

func TestListHistory(t *testing.T) {
	rq := require.New(t)

	server, query := newTestServer(t, "/IEconService/GetTradeHistory/v1/", `{
		"response": {
			"total_trades": 1,
			"more": false,
			"trades": [
				{
					"tradeid": "T1",
					"steamid_other": "76561198000000000",
					"time_init": 1699999900,
					"assets_received": [
						{
							"appid": 440,
							"contextid": "2",
							"assetid": "5000",
							"classid": "100",
							"instanceid": "0",
							"amount": "1"
						}
					]
				}
			]
		}
	}`)

	client := steamweb.NewClient("secret", steamweb.WithBaseURL(server.URL))

	records, err := client.ListHistory(context.Background(), 1699999940, 10)
	rq.NoError(err)

	rq.Equal("10", query.Get("max_trades"))
	rq.Equal("1699999940", query.Get("start_time"))
	rq.Equal("0", query.Get("get_descriptions"))

	rq.Len(records, 1)
	rq.Equal("T1", records[0].TradeID)
	rq.Equal("76561198000000000", records[0].OtherSteamID)
	rq.Equal(int64(1699999900), records[0].TimeInit)
	rq.Len(records[0].AssetsReceived, 1)
	rq.Equal(entity.Asset{
		AppID:      440,
		ContextID:  "2",
		AssetID:    "5000",
		ClassID:    "100",
		InstanceID: "0",
		Amount:     "1",
	}, records[0].AssetsReceived[0])
	rq.Empty(records[0].AssetsGiven)
}

func TestBatchLookup(t *testing.T) {
	rq := require.New(t)

	server, query := newTestServer(t, "/ISteamEconomy/GetAssetClassInfo/v0001/", `{
		"result": {
			"100": {
				"name": "Test Item",
				"market_name": "Test Item",
				"market_hash_name": "Test Item",
				"type": "Misc"
			},
			"200_1": {
				"market_hash_name": "Variant Item"
			},
			"success": true
		}
	}`)

	client := steamweb.NewClient("secret", steamweb.WithBaseURL(server.URL))

	infos, err := client.BatchLookup(context.Background(), 440, []entity.ClassInstance{
		{ClassID: "100", InstanceID: "0"},
		{ClassID: "200", InstanceID: "1"},
	})
	rq.NoError(err)

	rq.Equal("440", query.Get("appid"))
	rq.Equal("2", query.Get("class_count"))
	rq.Equal("100", query.Get("classid0"))
	rq.Equal("0", query.Get("instanceid0"))
	rq.Equal("200", query.Get("classid1"))
	rq.Equal("1", query.Get("instanceid1"))

	// The trailing success flag is not class info and must be dropped.
	rq.Len(infos, 2)
	rq.Equal("Test Item", infos["100"].MarketHashName)
	rq.Equal("Variant Item", infos["200_1"].MarketHashName)
}

func TestBatchLookupNoPairs(t *testing.T) {
	rq := require.New(t)

	client := steamweb.NewClient("secret", steamweb.WithBaseURL("http://127.0.0.1:1"))

	infos, err := client.BatchLookup(context.Background(), 440, nil)
	rq.NoError(err)
	rq.Empty(infos)
}

func TestClientAPIError(t *testing.T) {
	rq := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "Forbidden", http.StatusForbidden)
	}))
	t.Cleanup(server.Close)

	client := steamweb.NewClient("bad-key", steamweb.WithBaseURL(server.URL))

	_, err := client.ListOffers(context.Background(), 0)
	rq.Error(err)
	rq.ErrorContains(err, "403")
}
