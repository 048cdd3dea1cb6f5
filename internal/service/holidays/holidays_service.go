package holidays

import (
	"context"
	"fmt"
	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"github.com/ougirez/revman/internal/domain"
	"github.com/ougirez/revman/internal/domain/dto"
	"github.com/ougirez/revman/internal/pkg/constants"
	"github.com/ougirez/revman/internal/pkg/logger"
	"github.com/ougirez/revman/internal/pkg/store"
	"golang.org/x/sync/errgroup"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var dateLayouts = []string{time.DateOnly, "2 January 2006", "2 January", "January 2"}

type Service struct {
	store      store.Store
	client     *http.Client
	maxRetries uint64
	retryDelay time.Duration
}

func NewHolidaysService(store store.Store, client *http.Client) *Service {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Service{store: store, client: client, maxRetries: 10, retryDelay: 10 * time.Millisecond}
}

// ImportHolidays parses the holiday calendar at sourceURL, plus every page it links to from
// "ul.pages", and stores the result for the property.
func (s *Service) ImportHolidays(ctx context.Context, propertyID int64, sourceURL string) ([]*domain.Holiday, error) {
	if sourceURL == "" {
		return nil, fmt.Errorf("empty holiday source url: %w", constants.ErrInvalidInput)
	}
	base, err := url.Parse(sourceURL)
	if err != nil {
		return nil, fmt.Errorf("url.Parse: %s: %w", err.Error(), constants.ErrInvalidInput)
	}

	doc, err := s.fetchDocument(ctx, sourceURL)
	if err != nil {
		return nil, fmt.Errorf("fetchDocument: %w", err)
	}

	table := dto.NewHolidayTable()
	if err := fillHolidayTable(doc, table); err != nil {
		return nil, fmt.Errorf("fillHolidayTable: %w", err)
	}

	eg, egCtx := errgroup.WithContext(ctx)
	doc.Find("ul.pages a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			// скипаем
			return
		}
		ref, parseErr := url.Parse(href)
		if parseErr != nil {
			logger.Warnf(ctx, "skip holiday page %q: %s", href, parseErr.Error())
			return
		}
		pageURL := base.ResolveReference(ref).String()

		eg.Go(func() error {
			page, err := s.fetchDocument(egCtx, pageURL)
			if err != nil {
				return fmt.Errorf("fetchDocument, url-%s: %w", pageURL, err)
			}
			if err := fillHolidayTable(page, table); err != nil {
				return fmt.Errorf("fillHolidayTable, url-%s: %w", pageURL, err)
			}
			return nil
		})
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("err in goroutine: %w", err)
	}

	holidays := table.List()
	if err := s.store.UpsertHolidays(ctx, propertyID, holidays); err != nil {
		return nil, fmt.Errorf("store.UpsertHolidays: %w", err)
	}
	for _, h := range holidays {
		h.PropertyID = propertyID
	}

	logger.Infof(ctx, "imported %d holidays for property %d", len(holidays), propertyID)
	return holidays, nil
}

func (s *Service) fetchDocument(ctx context.Context, pageURL string) (doc *goquery.Document, err error) {
	var resp *http.Response
	err = backoff.Retry(
		func() error {
			req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
			if reqErr != nil {
				return backoff.Permanent(reqErr)
			}

			var httpErr error
			resp, httpErr = s.client.Do(req)
			if httpErr != nil {
				return fmt.Errorf("client.Do: %w", httpErr)
			}
			if resp.StatusCode != http.StatusOK {
				_ = resp.Body.Close()
				statusErr := fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
				if resp.StatusCode >= 400 && resp.StatusCode < 500 {
					return backoff.Permanent(statusErr)
				}
				return statusErr
			}

			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(s.retryDelay), s.maxRetries),
			ctx,
		),
	)
	if err != nil {
		return nil, err
	}

	defer func() {
		closeErr := resp.Body.Close()
		if closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close reader: %w", closeErr)
		}
	}()

	doc, err = goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("goquery.NewDocumentFromReader: %w", err)
	}
	return doc, nil
}

func fillHolidayTable(doc *goquery.Document, table *dto.HolidayTable) error {
	var err error
	doc.Find("table.holidays tbody tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		rawDate := strings.TrimSpace(tr.Find("td.date").Text())
		name := strings.Join(strings.Fields(tr.Find("td.name").Text()), " ")
		if rawDate == "" || name == "" {
			return true
		}

		month, day, parseErr := parseHolidayDate(rawDate)
		if parseErr != nil {
			err = parseErr
			return false
		}
		if putErr := table.Put(month, day, name); putErr != nil {
			err = putErr
			return false
		}
		return true
	})

	return err
}

func parseHolidayDate(raw string) (month, day int, err error) {
	for _, layout := range dateLayouts {
		t, parseErr := time.Parse(layout, raw)
		if parseErr == nil {
			return int(t.Month()), t.Day(), nil
		}
	}
	return 0, 0, fmt.Errorf("unrecognised holiday date %q: %w", raw, constants.ErrInvalidInput)
}
