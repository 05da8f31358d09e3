package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/joefazee/streaks/internal/cache"
	"github.com/joefazee/streaks/internal/logger"
	"github.com/joefazee/streaks/models"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

const latestPricePath = "/v2/updates/price/latest"

type hermesPrice struct {
	Price       string `json:"price"`
	Conf        string `json:"conf"`
	Expo        int32  `json:"expo"`
	PublishTime int64  `json:"publish_time"`
}

type hermesFeed struct {
	ID    string      `json:"id"`
	Price hermesPrice `json:"price"`
}

type hermesResponse struct {
	Parsed []hermesFeed `json:"parsed"`
}

// HermesOracle reads Pyth price feeds from a Hermes endpoint. Quotes are
// cached briefly and requests are paced by a token bucket.
type HermesOracle struct {
	http    *http.Client
	baseURL string
	feeds   map[string]string
	limiter *rate.Limiter
	quotes  cache.Cache[Quote]
	config  *Config
	clock   clockwork.Clock
	log     logger.Logger
}

// NewHermesOracle creates a Hermes client. httpClient may be nil.
func NewHermesOracle(config *Config, httpClient *http.Client, quotes cache.Cache[Quote], clock clockwork.Clock, log logger.Logger) *HermesOracle {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.RequestTimeout}
	}
	return &HermesOracle{
		http:    httpClient,
		baseURL: strings.TrimRight(config.HermesURL, "/"),
		feeds:   config.Feeds,
		limiter: rate.NewLimiter(rate.Limit(config.RequestsPerSecond), config.Burst),
		quotes:  quotes,
		config:  config,
		clock:   clock,
		log:     log,
	}
}

func (o *HermesOracle) GetPrice(ctx context.Context, symbol string) (*Quote, error) {
	feedID, ok := o.feeds[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: no feed for %s", models.ErrOracleUnavailable, symbol)
	}

	q, err := cache.Fetch(ctx, o.quotes, symbol, o.config.QuoteTTL, func(ctx context.Context) (Quote, error) {
		return o.fetch(ctx, symbol, feedID)
	})
	if err != nil {
		if !errors.Is(err, models.ErrOracleUnavailable) {
			err = fmt.Errorf("%w: quote cache: %w", models.ErrOracleUnavailable, err)
		}
		o.log.Error(err, map[string]interface{}{"symbol": symbol, "op": "fetch price"})
		return nil, err
	}

	if err := checkQuote(&q, o.clock.Now(), o.config.MaxStaleness, o.config.MaxConfidenceRatio()); err != nil {
		return nil, err
	}
	return &q, nil
}

func (o *HermesOracle) CheckCondition(ctx context.Context, cond models.OracleCondition) (bool, error) {
	return checkCondition(ctx, o, cond)
}

func (o *HermesOracle) fetch(ctx context.Context, symbol, feedID string) (Quote, error) {
	if err := o.limiter.Wait(ctx); err != nil {
		return Quote{}, fmt.Errorf("%w: rate limiter: %v", models.ErrOracleUnavailable, err)
	}

	query := url.Values{}
	query.Add("ids[]", feedID)
	query.Set("parsed", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+latestPricePath+"?"+query.Encode(), http.NoBody)
	if err != nil {
		return Quote{}, fmt.Errorf("%w: %v", models.ErrOracleUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := o.http.Do(req)
	if err != nil {
		return Quote{}, fmt.Errorf("%w: %v", models.ErrOracleUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Quote{}, fmt.Errorf("%w: hermes status %d: %s", models.ErrOracleUnavailable, resp.StatusCode, string(body))
	}

	var payload hermesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Quote{}, fmt.Errorf("%w: decode response: %v", models.ErrOracleUnavailable, err)
	}

	for _, feed := range payload.Parsed {
		if strings.EqualFold(strings.TrimPrefix(feed.ID, "0x"), strings.TrimPrefix(feedID, "0x")) {
			return toQuote(symbol, feed.Price)
		}
	}
	return Quote{}, fmt.Errorf("%w: feed %s missing from response", models.ErrOracleUnavailable, feedID)
}

// toQuote scales the integer mantissas by the feed exponent
func toQuote(symbol string, p hermesPrice) (Quote, error) {
	price, err := decimal.NewFromString(p.Price)
	if err != nil {
		return Quote{}, fmt.Errorf("%w: bad price %q", models.ErrOracleUnavailable, p.Price)
	}
	conf, err := decimal.NewFromString(p.Conf)
	if err != nil {
		return Quote{}, fmt.Errorf("%w: bad confidence %q", models.ErrOracleUnavailable, p.Conf)
	}
	return Quote{
		Symbol:      symbol,
		Price:       price.Shift(p.Expo),
		Confidence:  conf.Shift(p.Expo),
		PublishedAt: time.Unix(p.PublishTime, 0).UTC(),
	}, nil
}
