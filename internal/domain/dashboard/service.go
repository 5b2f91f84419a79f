package dashboard

import "context"

const (
	upcomingWindowDays = 14
	upcomingLimit      = 10
	coverageLimit      = 10
)

// Summary is the whole dashboard payload
type Summary struct {
	Counts         *Counts           `json:"counts"`
	UpcomingSales  []*UpcomingSale   `json:"upcoming_sales"`
	LatestCoverage []*RecentCoverage `json:"latest_coverage"`
}

// Service assembles the dashboard summary
type Service struct {
	repo Repository
}

// NewService creates dashboard service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Summary returns the headline counts, sales starting in the next two
// weeks, and the latest coverage
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	counts, err := s.repo.Counts(ctx)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.repo.UpcomingSales(ctx, upcomingWindowDays, upcomingLimit)
	if err != nil {
		return nil, err
	}

	latest, err := s.repo.LatestCoverage(ctx, coverageLimit)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Counts:         counts,
		UpcomingSales:  upcoming,
		LatestCoverage: latest,
	}, nil
}
