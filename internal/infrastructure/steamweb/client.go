// Package steamweb is a thin client for the Steam Web API endpoints the
// watcher consumes: GetTradeOffers, GetTradeHistory and GetAssetClassInfo.
package steamweb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	jsoniter "github.com/json-iterator/go"
	"github.com/rotisserie/eris"
	"github.com/samber/lo"

	"github.com/dylan-park/TradeBell/internal/domain/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const defaultBaseURL = "https://api.steampowered.com"

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithBaseURL overrides the API host, used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTransport installs a custom round tripper under the retrying client,
// e.g. the debug logging round tripper.
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.Transport = transport
	}
}

// NewClient builds a client for one account's API key. All endpoints are
// idempotent GETs, so requests go through a retrying HTTP client.
func NewClient(apiKey string, opts ...Option) *Client {
	client := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Transport: cleanhttp.DefaultPooledTransport(),
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = client.httpClient
	retryClient.Logger = nil
	client.httpClient = retryClient.StandardClient()

	return client
}

// ListOffers fetches received and sent trade offers since the cutoff
// timestamp.
func (c *Client) ListOffers(ctx context.Context, cutoff int64) (entity.TradeOffers, error) {
	values := url.Values{
		"get_received_offers":    {"1"},
		"get_sent_offers":        {"1"},
		"active_only":            {"0"},
		"historical_only":        {"0"},
		"time_historical_cutoff": {strconv.FormatInt(cutoff, 10)},
	}

	var response getTradeOffersResponse
	if err := c.get(ctx, "/IEconService/GetTradeOffers/v1/", values, &response); err != nil {
		return entity.TradeOffers{}, eris.Wrap(err, "GetTradeOffers")
	}

	toDomain := func(o tradeOffer, _ int) entity.TradeOffer { return o.toDomain() }

	return entity.TradeOffers{
		Received: lo.Map(response.Response.TradeOffersReceived, toDomain),
		Sent:     lo.Map(response.Response.TradeOffersSent, toDomain),
	}, nil
}

// ListHistory fetches completed-trade ledger entries starting at startTime,
// newest-first.
func (c *Client) ListHistory(ctx context.Context, startTime int64, maxTrades int) ([]entity.TradeHistoryRecord, error) {
	values := url.Values{
		"max_trades":       {strconv.Itoa(maxTrades)},
		"start_time":       {strconv.FormatInt(startTime, 10)},
		"get_descriptions": {"0"},
	}

	var response getTradeHistoryResponse
	if err := c.get(ctx, "/IEconService/GetTradeHistory/v1/", values, &response); err != nil {
		return nil, eris.Wrap(err, "GetTradeHistory")
	}

	return lo.Map(response.Response.Trades, func(h tradeHistory, _ int) entity.TradeHistoryRecord {
		return h.toDomain()
	}), nil
}

// BatchLookup resolves class info for all pairs within one appid. The result
// map is keyed by "classid" or "classid_instanceid" depending on the item
// type; entries that are not class info objects (the trailing success flag)
// are skipped.
func (c *Client) BatchLookup(
	ctx context.Context,
	appID uint32,
	pairs []entity.ClassInstance,
) (map[string]entity.ItemInfo, error) {
	if len(pairs) == 0 {
		return map[string]entity.ItemInfo{}, nil
	}

	values := url.Values{
		"appid":       {strconv.FormatUint(uint64(appID), 10)},
		"class_count": {strconv.Itoa(len(pairs))},
	}

	for i, pair := range pairs {
		values.Set(fmt.Sprintf("classid%d", i), pair.ClassID)
		values.Set(fmt.Sprintf("instanceid%d", i), pair.InstanceID)
	}

	var response struct {
		Result map[string]jsoniter.RawMessage `json:"result"`
	}

	if err := c.get(ctx, "/ISteamEconomy/GetAssetClassInfo/v0001/", values, &response); err != nil {
		return nil, eris.Wrap(err, "GetAssetClassInfo")
	}

	infos := make(map[string]entity.ItemInfo, len(response.Result))

	for key, raw := range response.Result {
		var info assetClassInfo
		if err := json.Unmarshal(raw, &info); err != nil || info.MarketHashName == "" {
			continue
		}

		infos[key] = info.toDomain()
	}

	return infos, nil
}

func (c *Client) get(ctx context.Context, path string, values url.Values, response any) error {
	values.Set("key", c.apiKey)
	values.Set("format", "json")

	requestURL := c.baseURL + path + "?" + values.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, http.NoBody)
	if err != nil {
		return eris.Wrap(err, "build request")
	}

	request.Header.Set("Accept", "application/json")

	httpResponse, err := c.httpClient.Do(request)
	if err != nil {
		return eris.Errorf("request to Steam failed: %v", err)
	}
	defer httpResponse.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return eris.Wrap(err, "read response body")
	}

	if httpResponse.StatusCode != http.StatusOK {
		return eris.Errorf("steam api error (%d): %s", httpResponse.StatusCode, body)
	}

	if err := json.Unmarshal(body, response); err != nil {
		return eris.Errorf("unmarshal response: %v, body: %s", err, body)
	}

	return nil
}
