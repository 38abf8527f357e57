package services

import (
	"context"

	"portfolio.site/models"
	"portfolio.site/repositories"
)

// DashboardSummary feeds the dashboard home cards.
type DashboardSummary struct {
	Education      int64
	Experiences    int64
	Skills         int64
	Projects       int64
	Testimonials   int64
	Messages       int64
	UnreadMessages int64
	LatestMessages []models.ContactMessage
}

const latestMessagesOnDashboard = 5

type IDashboardService interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}

type DashboardService struct {
	education    IShowcaseService[models.Education]
	experiences  IShowcaseService[models.Experience]
	skills       IShowcaseService[models.Skill]
	projects     IShowcaseService[models.Project]
	testimonials IShowcaseService[models.Testimonial]
	messages     IMessageService
}

// NewDashboardService creates the dashboard summary service.
func NewDashboardService(
	education IShowcaseService[models.Education],
	experiences IShowcaseService[models.Experience],
	skills IShowcaseService[models.Skill],
	projects IShowcaseService[models.Project],
	testimonials IShowcaseService[models.Testimonial],
	messages IMessageService,
) IDashboardService {
	return &DashboardService{
		education:    education,
		experiences:  experiences,
		skills:       skills,
		projects:     projects,
		testimonials: testimonials,
		messages:     messages,
	}
}

// Summary counts every record kind and loads the latest messages.
func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	sum := &DashboardSummary{}
	counters := []struct {
		dst   *int64
		count func(context.Context) (int64, error)
	}{
		{&sum.Education, s.education.Count},
		{&sum.Experiences, s.experiences.Count},
		{&sum.Skills, s.skills.Count},
		{&sum.Projects, s.projects.Count},
		{&sum.Testimonials, s.testimonials.Count},
		{&sum.UnreadMessages, s.messages.CountUnread},
	}
	for _, c := range counters {
		n, err := c.count(ctx)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}

	msgs, err := s.messages.List(ctx, repositories.MessageFilter{})
	if err != nil {
		return nil, err
	}
	sum.Messages = int64(len(msgs))
	if len(msgs) > latestMessagesOnDashboard {
		msgs = msgs[:latestMessagesOnDashboard]
	}
	sum.LatestMessages = msgs
	return sum, nil
}

var _ IDashboardService = (*DashboardService)(nil)
