package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"evently/internal/domain"
)

type analyticsService struct {
	registrationRepo domain.RegistrationRepository
	eventRepo        domain.EventRepository
	contextTimeout   time.Duration
}

func NewAnalyticsService(registrationRepo domain.RegistrationRepository, eventRepo domain.EventRepository, timeout time.Duration) domain.AnalyticsService {
	return &analyticsService{
		registrationRepo: registrationRepo,
		eventRepo:        eventRepo,
		contextTimeout:   timeout,
	}
}

func (s *analyticsService) GetAnalytics(ctx context.Context) (*domain.Analytics, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	regs, err := s.registrationRepo.ListActiveWithEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active registrations: %w", err)
	}
	events, err := s.eventRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return BuildAnalytics(regs, events), nil
}

// BuildAnalytics folds active registrations and all events into the dashboard report.
// Registrations without an event add to the registration total only. Those with an
// unparseable date are left out of the monthly buckets.
func BuildAnalytics(regs []*domain.RegistrationWithEvent, events []*domain.Event) *domain.Analytics {
	type bucket struct {
		events        map[string]struct{}
		revenue       float64
		registrations int
	}
	var months [12]bucket

	a := &domain.Analytics{}
	for _, r := range regs {
		if r == nil || r.Registration == nil {
			continue
		}
		a.Totals.Registrations++
		if r.Event == nil {
			continue
		}
		a.Totals.Revenue += r.Event.Price

		d, err := time.Parse(domain.RegistrationDateLayout, r.RegistrationDate)
		if err != nil {
			continue
		}
		b := &months[d.Month()-1]
		if b.events == nil {
			b.events = make(map[string]struct{})
		}
		b.events[r.Event.ID] = struct{}{}
		b.revenue += r.Event.Price
		b.registrations++
	}

	a.MonthlyData = make([]domain.MonthlyStat, len(months))
	for i, b := range months {
		a.MonthlyData[i] = domain.MonthlyStat{
			Name:          domain.MonthNames[i],
			Events:        len(b.events),
			Revenue:       b.revenue,
			Registrations: b.registrations,
		}
	}

	a.CategoryData = []domain.CategoryStat{}
	index := make(map[string]int)
	for _, e := range events {
		if i, ok := index[e.Category]; ok {
			a.CategoryData[i].Value++
			continue
		}
		index[e.Category] = len(a.CategoryData)
		a.CategoryData = append(a.CategoryData, domain.CategoryStat{Name: e.Category, Value: 1})
	}

	a.Totals.Events = len(events)
	if a.Totals.Events > 0 {
		a.Totals.AvgAttendance = int(math.Round(float64(a.Totals.Registrations) / float64(a.Totals.Events)))
	}
	return a
}
