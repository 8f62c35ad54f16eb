package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/guttosm/courier-portal/internal/backend"
	"github.com/guttosm/courier-portal/internal/domain/model"
	"github.com/guttosm/courier-portal/internal/service/cache"
)

// ErrWeightExceedsLimit is returned when no matching international service
// accepts the parcel's chargeable weight.
var ErrWeightExceedsLimit = errors.New("chargeable weight exceeds the service limit")

const optionsCacheKey = "international_options"

// sharedFetchTimeout bounds a backend fetch shared by concurrent callers.
const sharedFetchTimeout = 30 * time.Second

// DomesticQuoteInput describes a domestic price request.
type DomesticQuoteInput struct {
	City       string
	State      string
	Mode       string
	Dimensions model.PackageDimensions
}

// InternationalQuoteInput describes an international price request.
// An empty Service asks the backend for its default rate to Country.
type InternationalQuoteInput struct {
	Country    string
	Service    string
	Dimensions model.PackageDimensions
}

// QuoteService defines the interface for price quotes.
type QuoteService interface {
	DomesticQuote(ctx context.Context, in DomesticQuoteInput) (*model.Quote, error)
	InternationalQuote(ctx context.Context, in InternationalQuoteInput) (*model.Quote, error)
	InternationalOptions(ctx context.Context) ([]model.InternationalOption, error)
}

// QuoteOption configures a QuoteServiceImpl.
type QuoteOption func(*QuoteServiceImpl)

// WithQuoteCache caches quotes for ttl, up to capacity entries.
func WithQuoteCache(capacity int, ttl time.Duration) QuoteOption {
	return func(s *QuoteServiceImpl) {
		if capacity > 0 && ttl > 0 {
			s.quotes = cache.NewSharded[string, model.Quote]("quotes", capacity, ttl, 16)
		}
	}
}

// WithOptionsCache caches the international options list for ttl.
func WithOptionsCache(ttl time.Duration) QuoteOption {
	return func(s *QuoteServiceImpl) {
		if ttl > 0 {
			s.options = cache.NewTTL[string, []model.InternationalOption]("international_options", 1, ttl)
		}
	}
}

// QuoteServiceImpl prices shipments through the backend.
// Identical concurrent requests share one backend call.
type QuoteServiceImpl struct {
	backend backend.Client
	weights WeightCalculator
	quotes  cache.Cache[string, model.Quote]
	options cache.Cache[string, []model.InternationalOption]
	group   singleflight.Group
}

// NewQuoteService creates a new quote service.
func NewQuoteService(client backend.Client, weights WeightCalculator, opts ...QuoteOption) *QuoteServiceImpl {
	s := &QuoteServiceImpl{
		backend: client,
		weights: weights,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stop releases the caches' background goroutines.
func (s *QuoteServiceImpl) Stop() {
	if s.quotes != nil {
		s.quotes.Stop()
	}
	if s.options != nil {
		s.options.Stop()
	}
}

// DomesticQuote prices a domestic shipment.
func (s *QuoteServiceImpl) DomesticQuote(ctx context.Context, in DomesticQuoteInput) (*model.Quote, error) {
	weight := s.weights.Calculate(in.Dimensions)
	key := cacheKey("domestic", in.City, in.State, in.Mode, weight.Chargeable)

	return s.cached(ctx, key, func(ctx context.Context) (model.Quote, error) {
		resp, err := s.backend.DomesticPrice(ctx, backend.DomesticPriceRequest{
			City:   strings.TrimSpace(in.City),
			State:  strings.TrimSpace(in.State),
			Weight: weight.Chargeable,
			Mode:   strings.TrimSpace(in.Mode),
		})
		if err != nil {
			return model.Quote{}, err
		}

		q, err := newQuote(model.ShipmentDomestic, weight, resp)
		if err != nil {
			return model.Quote{}, err
		}
		q.Destination = strings.TrimSpace(in.City)
		q.Mode = strings.TrimSpace(in.Mode)
		return q, nil
	})
}

// InternationalQuote prices an international shipment. The options list is
// fetched alongside the price to enforce per-service weight limits; if it
// cannot be fetched the limit check is skipped.
func (s *QuoteServiceImpl) InternationalQuote(ctx context.Context, in InternationalQuoteInput) (*model.Quote, error) {
	weight := s.weights.Calculate(in.Dimensions)
	country := strings.TrimSpace(in.Country)
	service := strings.TrimSpace(in.Service)
	key := cacheKey("international", country, service, "", weight.Chargeable)

	return s.cached(ctx, key, func(ctx context.Context) (model.Quote, error) {
		var (
			options []model.InternationalOption
			resp    *backend.PriceResponse
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			opts, err := s.InternationalOptions(gctx)
			if err != nil {
				log.Warn().Err(err).Msg("International options unavailable, skipping weight limit check")
				return nil
			}
			options = opts
			return nil
		})
		g.Go(func() error {
			var err error
			if service != "" {
				resp, err = s.backend.InternationalPrice(gctx, backend.InternationalPriceRequest{
					Country: country,
					Service: service,
					Weight:  weight.Chargeable,
				})
			} else {
				resp, err = s.backend.InternationalCalculate(gctx, backend.InternationalCalculateRequest{
					Destination: country,
					Weight:      weight.Chargeable,
				})
			}
			return err
		})
		if err := g.Wait(); err != nil {
			return model.Quote{}, err
		}

		if err := checkWeightLimit(options, country, service, weight.Chargeable); err != nil {
			return model.Quote{}, err
		}

		q, err := newQuote(model.ShipmentInternational, weight, resp)
		if err != nil {
			return model.Quote{}, err
		}
		q.Destination = country
		q.Service = service
		return q, nil
	})
}

// InternationalOptions lists destinations and services, cached when configured.
func (s *QuoteServiceImpl) InternationalOptions(ctx context.Context) ([]model.InternationalOption, error) {
	if s.options != nil {
		if opts, ok := s.options.Get(optionsCacheKey); ok {
			return opts, nil
		}
	}

	v, _, err := s.share(ctx, optionsCacheKey, func(ctx context.Context) (interface{}, error) {
		opts, err := s.backend.InternationalOptions(ctx)
		if err != nil {
			return nil, err
		}
		if opts == nil {
			opts = []model.InternationalOption{}
		}
		if s.options != nil {
			s.options.Set(optionsCacheKey, opts)
		}
		return opts, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.InternationalOption), nil
}

// cached serves key from the quote cache, or runs fetch once for all
// concurrent callers and caches a successful result.
func (s *QuoteServiceImpl) cached(ctx context.Context, key string, fetch func(context.Context) (model.Quote, error)) (*model.Quote, error) {
	if s.quotes != nil {
		if q, ok := s.quotes.Get(key); ok {
			return &q, nil
		}
	}

	v, shared, err := s.share(ctx, key, func(ctx context.Context) (interface{}, error) {
		q, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		if s.quotes != nil {
			s.quotes.Set(key, q)
		}
		return q, nil
	})
	if err != nil {
		return nil, err
	}

	q := v.(model.Quote)
	log.Debug().
		Str("key", key).
		Bool("shared", shared).
		Float64("total", q.Total).
		Str("total_field", q.TotalField).
		Msg("Quote served from backend")
	return &q, nil
}

// share runs fn once for all concurrent callers of key. fn gets ctx's values
// without its cancellation, bounded by sharedFetchTimeout, so one caller
// giving up does not fail the others. Each caller still stops waiting when
// its own ctx ends.
func (s *QuoteServiceImpl) share(ctx context.Context, key string, fn func(context.Context) (interface{}, error)) (interface{}, bool, error) {
	ch := s.group.DoChan(key, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedFetchTimeout)
		defer cancel()
		return fn(fetchCtx)
	})

	select {
	case res := <-ch:
		return res.Val, res.Shared, res.Err
	case <-ctx.Done():
		return nil, false, ctx.Err()
	}
}

func newQuote(kind model.ShipmentKind, weight model.ChargeableWeight, resp *backend.PriceResponse) (model.Quote, error) {
	total, field, err := resp.Total()
	if err != nil {
		log.Warn().
			Err(err).
			Interface("total_price", resp.TotalPrice).
			Interface("total_with_tax", resp.TotalWithTax).
			Msg("Unusable price response")
		return model.Quote{}, fmt.Errorf("%s quote: %w", kind, err)
	}

	return model.Quote{
		Kind:       kind,
		Weight:     weight,
		Total:      total,
		TotalField: field,
		Currency:   model.CurrencyINR,
	}, nil
}

// checkWeightLimit fails only when options for the destination exist and none
// of them accepts the weight.
func checkWeightLimit(options []model.InternationalOption, country, service string, chargeableKg float64) error {
	matched := false
	for _, opt := range options {
		if !strings.EqualFold(opt.Destination, country) && !strings.EqualFold(opt.Country, country) {
			continue
		}
		if service != "" && !strings.EqualFold(opt.Service, service) {
			continue
		}
		matched = true
		if opt.Allows(chargeableKg) {
			return nil
		}
	}
	if matched {
		return fmt.Errorf("%w: %.2f kg to %s", ErrWeightExceedsLimit, chargeableKg, country)
	}
	return nil
}

func cacheKey(kind, a, b, c string, weight float64) string {
	var sb strings.Builder
	for _, part := range []string{kind, a, b, c} {
		sb.WriteString(strings.ToLower(strings.TrimSpace(part)))
		sb.WriteByte('|')
	}
	sb.WriteString(strconv.FormatFloat(weight, 'f', -1, 64))
	return sb.String()
}
