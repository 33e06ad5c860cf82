package service

import (
	"context"

	"tunisiaclean/internal/model"
)

const (
	demoCleanPoints = 125
	demoNextLevel   = 200
)

// DashboardService builds the demo user dashboard from the catalog
type DashboardService struct {
	catalog LocationSource
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(catalog LocationSource) *DashboardService {
	return &DashboardService{catalog: catalog}
}

// Dashboard returns the dashboard of the demo visitor
func (s *DashboardService) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	all := s.catalog.All()

	return &model.Dashboard{
		User: model.UserProfile{
			Name:     "Sarah Ben Ali",
			Email:    "sarah.benali@example.com",
			JoinDate: "12 août 2023",
		},
		Favorites: window(all, 0, 3),
		History:   window(all, 1, 4),
		Contributions: []model.Contribution{
			{Kind: "review", Location: "Café Sidi Bou Said", When: "Il y a 2 semaines"},
			{Kind: "photo", Location: "Plage de Hammamet", When: "Il y a 1 mois"},
			{Kind: "review", Location: "Restaurant El Walima", When: "Il y a 2 mois"},
		},
		Rewards: rewards(demoCleanPoints, demoNextLevel),
		Tabs:    []string{"favorites", "history", "rewards", "settings"},
	}, nil
}

func rewards(points, nextLevel int) model.Rewards {
	toNext := nextLevel - points
	if toNext < 0 {
		toNext = 0
	}
	progress := 100.0
	if nextLevel > 0 && points < nextLevel {
		progress = float64(points) / float64(nextLevel) * 100
	}
	return model.Rewards{
		CleanPoints:  points,
		NextLevel:    nextLevel,
		PointsToNext: toNext,
		Progress:     progress,
		Certifications: []model.Certification{
			{Name: "Découvreur", Description: "A découvert plus de 10 lieux"},
			{Name: "Critique", Description: "A laissé plus de 5 avis"},
			{Name: "Photographe", Description: "A partagé plus de 3 photos"},
		},
	}
}

// window returns locs[from:to] clamped to the slice bounds
func window(locs []model.Location, from, to int) []model.Location {
	if from > len(locs) {
		from = len(locs)
	}
	if to > len(locs) {
		to = len(locs)
	}
	return append([]model.Location{}, locs[from:to]...)
}
