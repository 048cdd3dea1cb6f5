package revenue

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/ougirez/revman/internal/pkg/constants"
	"golang.org/x/sync/errgroup"
)

// Engine runs the yearly pricing pipeline for one property. It holds no mutable state and can
// be shared between goroutines.
type Engine struct {
	cfg        Config
	classifier *Classifier
	calculator *PriceCalculator
	expenses   ExpenseModel
}

func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	calculator, err := NewPriceCalculator(cfg.BasePrice)
	if err != nil {
		return nil, err
	}

	return &Engine{
		cfg:        cfg,
		classifier: NewClassifier(cfg.Holidays, cfg.HighSeasonMonths, cfg.WeekendRule),
		calculator: calculator,
		expenses:   NewExpenseModel(cfg.HighSeasonMonths),
	}, nil
}

func (e *Engine) Config() Config {
	return e.cfg
}

func (e *Engine) Classifier() *Classifier {
	return e.classifier
}

type YearInput struct {
	Year    int
	History []HistoricalSample
	// Random drives growth factors and expense jitter. Nil means a clock seeded source.
	Random RandomSource
	// Closed days are left out of pricing. A fully closed month is reported as skipped.
	Closed []CalendarDay
}

type MonthResult struct {
	Month           int                  `json:"month"`
	Skipped         bool                 `json:"skipped"`
	Reason          string               `json:"reason,omitempty"`
	Snapshot        *PerformanceSnapshot `json:"snapshot,omitempty"`
	Recommendations []Recommendation     `json:"recommendations,omitempty"`
}

type YearReport struct {
	ReportID   uuid.UUID       `json:"report_id"`
	PropertyID int64           `json:"property_id,omitempty"`
	Seed       *int64          `json:"seed,omitempty"`
	Year       int             `json:"year"`
	TotalRooms int             `json:"total_rooms"`
	BasePrice  float64         `json:"base_price"`
	Forecast   []ForecastPoint `json:"forecast"`
	Days       []DailyPricing  `json:"days"`
	Months     []MonthResult   `json:"months"`
	Summary    YearSummary     `json:"summary"`
}

// Snapshots returns the computed months in order, skipping months without data.
func (r *YearReport) Snapshots() []PerformanceSnapshot {
	out := make([]PerformanceSnapshot, 0, len(r.Months))
	for _, m := range r.Months {
		if m.Snapshot != nil {
			out = append(out, *m.Snapshot)
		}
	}
	return out
}

func (r *YearReport) DaysOf(month int) []DailyPricing {
	out := make([]DailyPricing, 0, 31)
	for _, d := range r.Days {
		if d.Month == month {
			out = append(out, d)
		}
	}
	return out
}

func (r *YearReport) Month(month int) (MonthResult, bool) {
	if month < 1 || month > len(r.Months) {
		return MonthResult{}, false
	}
	return r.Months[month-1], true
}

// ComputeYear runs classifier, forecaster, price calculator, aggregator, metrics and
// recommendations for every month. Invalid input or configuration aborts the year; a month
// without priced days is reported as skipped.
func (e *Engine) ComputeYear(ctx context.Context, in YearInput) (*YearReport, error) {
	if in.Year < 1 || in.Year > 9999 {
		return nil, fmt.Errorf("year %d: %w", in.Year, constants.ErrInvalidInput)
	}

	random := in.Random
	if random == nil {
		random = NewClockSource()
	}

	forecaster, err := NewForecaster(e.cfg.TotalRooms, random)
	if err != nil {
		return nil, err
	}
	points, err := forecaster.Forecast(in.History)
	if err != nil {
		return nil, fmt.Errorf("forecaster.Forecast: %w", err)
	}

	// Jitter is drawn before the fan-out so results do not depend on goroutine scheduling.
	jitters := make([]float64, 12)
	for i := range jitters {
		jitters[i] = DrawJitter(random)
		if !finite(jitters[i]) {
			return nil, fmt.Errorf("expense jitter %v: %w", jitters[i], constants.ErrConfiguration)
		}
	}

	closed := make(map[CalendarDay]struct{}, len(in.Closed))
	for _, d := range in.Closed {
		closed[d] = struct{}{}
	}

	type monthOutput struct {
		days      []DailyPricing
		aggregate *MonthlyAggregate
		skipErr   error
	}
	outputs := make([]monthOutput, 12)

	eg, egCtx := errgroup.WithContext(ctx)
	for i := range points {
		i := i
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			point := points[i]
			days, err := e.priceMonth(in.Year, point, closed)
			if err != nil {
				return fmt.Errorf("priceMonth, month-%d: %w", point.Month, err)
			}
			outputs[i].days = days

			agg, err := Aggregate(days, point, e.cfg.TotalRooms)
			if errors.Is(err, constants.ErrInsufficientData) {
				outputs[i].skipErr = err
				return nil
			}
			if err != nil {
				return fmt.Errorf("Aggregate, month-%d: %w", point.Month, err)
			}
			outputs[i].aggregate = &agg
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	computed := make([]MonthlyAggregate, 0, 12)
	for _, out := range outputs {
		if out.aggregate != nil {
			computed = append(computed, *out.aggregate)
		}
	}
	withTargets := AllocateTargets(computed, e.cfg.Policy.TargetUplift)
	targets := make(map[int]MonthlyAggregate, len(withTargets))
	for _, agg := range withTargets {
		targets[agg.Month] = agg
	}

	report := &YearReport{
		ReportID:   uuid.New(),
		Year:       in.Year,
		TotalRooms: e.cfg.TotalRooms,
		BasePrice:  e.cfg.BasePrice,
		Forecast:   points,
		Days:       make([]DailyPricing, 0, 366),
		Months:     make([]MonthResult, 12),
	}
	snapshots := make([]PerformanceSnapshot, 0, 12)
	for i, out := range outputs {
		month := i + 1
		report.Days = append(report.Days, out.days...)

		agg, ok := targets[month]
		if !ok {
			report.Months[i] = MonthResult{Month: month, Skipped: true, Reason: reason(out.skipErr)}
			continue
		}

		expenses := e.expenses.Expenses(agg.EstimatedRevenue, month, agg.ForecastOccupancy, jitters[i])
		snapshot := Performance(agg, e.cfg.TotalRooms, expenses)
		snapshots = append(snapshots, snapshot)
		report.Months[i] = MonthResult{
			Month:           month,
			Snapshot:        &snapshot,
			Recommendations: RecommendSnapshot(snapshot),
		}
	}
	report.Summary = Summarize(snapshots, e.cfg.Policy.EBITDARAddBack)

	return report, nil
}

func (e *Engine) priceMonth(year int, point ForecastPoint, closed map[CalendarDay]struct{}) ([]DailyPricing, error) {
	n := DaysIn(year, point.Month)
	days := make([]DailyPricing, 0, n)
	bookings := point.ForecastBooking

	for day := 1; day <= n; day++ {
		cd := CalendarDay{Year: year, Month: point.Month, Day: day}
		if _, isClosed := closed[cd]; isClosed {
			continue
		}

		flags := e.classifier.Classify(cd)
		price, err := e.calculator.Price(flags, point.ForecastOccupancy)
		if err != nil {
			return nil, err
		}

		days = append(days, DailyPricing{
			Date:          cd.String(),
			Year:          year,
			Month:         point.Month,
			Day:           day,
			OccupancyRate: point.ForecastOccupancy,
			Bookings:      bookings,
			DynamicPrice:  price,
			DayFlags:      flags,
		})
	}

	return days, nil
}

func reason(err error) string {
	if err == nil {
		return "no data"
	}
	return err.Error()
}
