package revenue

import (
	"context"
	"fmt"
	"github.com/ougirez/revman/internal/domain"
	"github.com/ougirez/revman/internal/domain/dto"
	"github.com/ougirez/revman/internal/pkg/constants"
	"github.com/ougirez/revman/internal/pkg/logger"
	"github.com/ougirez/revman/internal/pkg/notify"
	"github.com/ougirez/revman/internal/pkg/store"
	engine "github.com/ougirez/revman/internal/revenue"
	"strconv"
	"time"
)

type Service struct {
	store     store.Store
	publisher notify.Publisher
	defaults  engine.Config
}

// NewRevenueService builds the service. publisher may be nil, then publishing answers with
// constants.ErrPublisherDisabled.
func NewRevenueService(store store.Store, publisher notify.Publisher, defaults engine.Config) *Service {
	return &Service{store: store, publisher: publisher, defaults: defaults}
}

func (s *Service) ListProperties(ctx context.Context) ([]*domain.Property, error) {
	properties, err := s.store.ListProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListProperties: %w", err)
	}
	return properties, nil
}

func (s *Service) Report(ctx context.Context, q dto.ReportQuery) (*engine.YearReport, error) {
	report, _, err := s.computeReport(ctx, q.PropertyID, q.Year, q.Seed)
	return report, err
}

func (s *Service) Pricing(ctx context.Context, q dto.ReportQuery) (*dto.PricingResponse, error) {
	report, _, err := s.computeReport(ctx, q.PropertyID, q.Year, q.Seed)
	if err != nil {
		return nil, err
	}

	days := report.Days
	if q.Month != 0 {
		days = report.DaysOf(q.Month)
	}

	return &dto.PricingResponse{PropertyID: q.PropertyID, Year: q.Year, Month: q.Month, Days: days}, nil
}

func (s *Service) Performance(ctx context.Context, q dto.ReportQuery) (*dto.PerformanceResponse, error) {
	report, _, err := s.computeReport(ctx, q.PropertyID, q.Year, q.Seed)
	if err != nil {
		return nil, err
	}

	return &dto.PerformanceResponse{
		ReportID:   report.ReportID,
		PropertyID: q.PropertyID,
		Year:       q.Year,
		Months:     report.Months,
		Summary:    report.Summary,
	}, nil
}

func (s *Service) Recommendations(ctx context.Context, q dto.ReportQuery) (*dto.RecommendationsResponse, error) {
	report, _, err := s.computeReport(ctx, q.PropertyID, q.Year, q.Seed)
	if err != nil {
		return nil, err
	}

	recs := make([]engine.Recommendation, 0, 36)
	for _, m := range report.Months {
		if q.Month != 0 && m.Month != q.Month {
			continue
		}
		recs = append(recs, m.Recommendations...)
	}

	return &dto.RecommendationsResponse{PropertyID: q.PropertyID, Year: q.Year, Recommendations: recs}, nil
}

func (s *Service) AdviceFacts(ctx context.Context, q dto.ReportQuery) (*dto.AdviceFactsResponse, error) {
	report, _, err := s.computeReport(ctx, q.PropertyID, q.Year, q.Seed)
	if err != nil {
		return nil, err
	}

	return &dto.AdviceFactsResponse{PropertyID: q.PropertyID, Year: q.Year, Facts: engine.Facts(report)}, nil
}

func (s *Service) UpsertOccupancy(ctx context.Context, req dto.UpsertOccupancyRequest) ([]*domain.OccupancyRecord, error) {
	seen := make(map[int]struct{}, len(req.Items))
	records := make([]*domain.OccupancyRecord, 0, len(req.Items))
	for _, item := range req.Items {
		if _, dup := seen[item.Month]; dup {
			return nil, fmt.Errorf("duplicate month %d: %w", item.Month, constants.ErrInvalidInput)
		}
		seen[item.Month] = struct{}{}

		records = append(records, &domain.OccupancyRecord{
			PropertyID:    req.PropertyID,
			Year:          req.Year,
			Month:         item.Month,
			OccupancyRate: item.OccupancyRate,
		})
	}

	if _, err := s.store.GetProperty(ctx, req.PropertyID); err != nil {
		return nil, fmt.Errorf("store.GetProperty: %w", err)
	}
	if err := s.store.UpsertOccupancy(ctx, records); err != nil {
		return nil, fmt.Errorf("store.UpsertOccupancy: %w", err)
	}

	return records, nil
}

func (s *Service) PublishCard(ctx context.Context, req dto.PublishCardRequest) (notify.PerformanceCard, error) {
	if s.publisher == nil {
		return notify.PerformanceCard{}, constants.ErrPublisherDisabled
	}

	report, property, err := s.computeReport(ctx, req.PropertyID, req.Year, req.Seed)
	if err != nil {
		return notify.PerformanceCard{}, err
	}

	month, ok := report.Month(req.Month)
	if !ok {
		return notify.PerformanceCard{}, fmt.Errorf("month %d: %w", req.Month, constants.ErrInvalidInput)
	}
	if month.Snapshot == nil {
		return notify.PerformanceCard{}, fmt.Errorf("month %d %s: %w", req.Month, month.Reason, constants.ErrInsufficientData)
	}

	card := notify.NewPerformanceCard(property.ID, property.Name, req.Year, *month.Snapshot)
	if err := s.publisher.PublishCard(ctx, card); err != nil {
		return notify.PerformanceCard{}, fmt.Errorf("publisher.PublishCard: %w", err)
	}

	logger.Infof(ctx, "published performance card %s", card.Key())
	return card, nil
}

// Quote prices a single night using the default calendar unless the request overrides it.
func (s *Service) Quote(_ context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error) {
	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		return dto.QuoteResponse{}, fmt.Errorf("date %q: %w", req.Date, constants.ErrInvalidInput)
	}

	holidays := s.defaults.Holidays
	if req.Holidays != nil {
		holidays, err = engine.NormalizeHolidays(req.Holidays)
		if err != nil {
			return dto.QuoteResponse{}, fmt.Errorf("NormalizeHolidays: %w", err)
		}
	}
	months := s.defaults.HighSeasonMonths
	if len(req.HighSeason) > 0 {
		months = req.HighSeason
	}
	rule := s.defaults.WeekendRule
	if req.WeekendRule != "" {
		rule = req.WeekendRule
	}

	flags := engine.NewClassifier(holidays, months, rule).Classify(engine.CalendarDay{
		Year:  date.Year(),
		Month: int(date.Month()),
		Day:   date.Day(),
	})
	price, err := engine.DynamicPrice(req.BasePrice, flags, req.OccupancyRate)
	if err != nil {
		return dto.QuoteResponse{}, fmt.Errorf("DynamicPrice: %w", err)
	}

	return dto.QuoteResponse{
		Date:           req.Date,
		Price:          price,
		Flags:          flags,
		Recommendation: engine.RecommendByOccupancy(int(date.Month()), req.OccupancyRate),
	}, nil
}

func (s *Service) computeReport(ctx context.Context, propertyID int64, year int, rawSeed string) (*engine.YearReport, *domain.Property, error) {
	ctx = logger.WithFields(ctx, "property_id", propertyID, "year", year)

	seed, err := parseSeed(rawSeed)
	if err != nil {
		return nil, nil, err
	}

	property, err := s.store.GetProperty(ctx, propertyID)
	if err != nil {
		return nil, nil, fmt.Errorf("store.GetProperty: %w", err)
	}

	cfg, err := s.configFor(ctx, property)
	if err != nil {
		return nil, nil, err
	}
	eng, err := engine.NewEngine(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("NewEngine: %w", err)
	}

	records, err := s.store.ListOccupancy(ctx, propertyID, year)
	if err != nil {
		return nil, nil, fmt.Errorf("store.ListOccupancy: %w", err)
	}
	history := make([]engine.HistoricalSample, 0, len(records))
	for _, r := range records {
		history = append(history, engine.SampleFromOccupancy(r.Month, r.OccupancyRate, cfg.TotalRooms))
	}

	closures, err := s.store.ListClosures(ctx, propertyID, year)
	if err != nil {
		return nil, nil, fmt.Errorf("store.ListClosures: %w", err)
	}
	closed := make([]engine.CalendarDay, 0, len(closures))
	for _, c := range closures {
		closed = append(closed, engine.CalendarDay{Year: c.Date.Year(), Month: int(c.Date.Month()), Day: c.Date.Day()})
	}

	in := engine.YearInput{Year: year, History: history, Closed: closed}
	if seed != nil {
		in.Random = engine.NewSeededSource(*seed)
	}

	report, err := eng.ComputeYear(ctx, in)
	if err != nil {
		return nil, nil, fmt.Errorf("engine.ComputeYear: %w", err)
	}
	report.PropertyID = propertyID
	report.Seed = seed

	logger.Debugf(ctx, "computed report %s, %d of 12 months priced", report.ReportID, report.Summary.MonthsComputed)
	return report, property, nil
}

// configFor applies the property row over the configured defaults. Holidays stored for the
// property override default holidays on the same date.
func (s *Service) configFor(ctx context.Context, property *domain.Property) (engine.Config, error) {
	cfg := s.defaults
	if property.BasePrice > 0 {
		cfg.BasePrice = property.BasePrice
	}
	if property.TotalRooms > 0 {
		cfg.TotalRooms = property.TotalRooms
	}
	if len(property.HighSeasonMonths) > 0 {
		cfg.HighSeasonMonths = make([]int, 0, len(property.HighSeasonMonths))
		for _, m := range property.HighSeasonMonths {
			cfg.HighSeasonMonths = append(cfg.HighSeasonMonths, int(m))
		}
	}

	stored, err := s.store.ListHolidays(ctx, property.ID)
	if err != nil {
		return engine.Config{}, fmt.Errorf("store.ListHolidays: %w", err)
	}
	cfg.Holidays, err = engine.NormalizeHolidays(s.defaults.Holidays)
	if err != nil {
		return engine.Config{}, fmt.Errorf("NormalizeHolidays: %w", err)
	}
	for _, h := range stored {
		cfg.Holidays[engine.HolidayKey(h.Month, h.Day)] = h.Name
	}

	return cfg, nil
}

func parseSeed(raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("seed %q: %w", raw, constants.ErrInvalidInput)
	}
	return &seed, nil
}
