package services

import (
	"context"
	"errors"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
	"portfolio.site/repositories"

	"go.uber.org/zap"
)

// HomePageData is everything the public page renders.
type HomePageData struct {
	Profile      *models.Profile // nil until the owner fills in a profile
	Settings     *models.SiteSettings
	Experiences  []models.Experience
	Education    []models.Education
	Skills       []models.Skill
	Projects     []models.Project
	Testimonials []models.Testimonial
}

// SkillGroup is one category block of the skills section.
type SkillGroup struct {
	Category models.SkillCategory
	Label    string
	Skills   []models.Skill
}

// SkillsByCategory groups Skills in category display order, dropping empty categories.
// Skills keep their (category, order) ordering inside each group.
func (d HomePageData) SkillsByCategory() []SkillGroup {
	byCat := make(map[models.SkillCategory][]models.Skill)
	for _, s := range d.Skills {
		byCat[s.Category] = append(byCat[s.Category], s)
	}
	groups := make([]SkillGroup, 0, len(byCat))
	for _, cat := range models.SkillCategories {
		if skills := byCat[cat]; len(skills) > 0 {
			groups = append(groups, SkillGroup{Category: cat, Label: cat.Label(), Skills: skills})
		}
	}
	return groups
}

// ShowTestimonials is true when the section is enabled and has something to show.
func (d HomePageData) ShowTestimonials() bool {
	return d.Settings != nil && d.Settings.EnableTestimonials && len(d.Testimonials) > 0
}

type IHomeService interface {
	GetHomePage(ctx context.Context) (*HomePageData, error)
}

type HomeService struct {
	profileRepo     repositories.IProfileRepository
	settingsRepo    repositories.ISiteSettingsRepository
	experienceRepo  repositories.IOrderedRepository[models.Experience]
	educationRepo   repositories.IOrderedRepository[models.Education]
	skillRepo       repositories.IOrderedRepository[models.Skill]
	projectRepo     repositories.IProjectRepository
	testimonialRepo repositories.IOrderedRepository[models.Testimonial]
}

// HomeRepositories bundles the stores the home page reads from.
type HomeRepositories struct {
	Profile     repositories.IProfileRepository
	Settings    repositories.ISiteSettingsRepository
	Experience  repositories.IOrderedRepository[models.Experience]
	Education   repositories.IOrderedRepository[models.Education]
	Skill       repositories.IOrderedRepository[models.Skill]
	Project     repositories.IProjectRepository
	Testimonial repositories.IOrderedRepository[models.Testimonial]
}

// NewHomeService creates the public page aggregation.
func NewHomeService(r HomeRepositories) IHomeService {
	return &HomeService{
		profileRepo:     r.Profile,
		settingsRepo:    r.Settings,
		experienceRepo:  r.Experience,
		educationRepo:   r.Education,
		skillRepo:       r.Skill,
		projectRepo:     r.Project,
		testimonialRepo: r.Testimonial,
	}
}

// GetHomePage assembles the public view model. The only write it can cause is the
// first-time creation of the settings row.
func (s *HomeService) GetHomePage(ctx context.Context) (*HomePageData, error) {
	data := &HomePageData{}

	profile, err := s.profileRepo.Get(ctx)
	switch {
	case err == nil:
		data.Profile = profile
	case errors.Is(err, repositories.ErrNotFound):
		configslog.SLog.Debug("Home page rendered without a profile")
	default:
		return nil, s.fail("load profile", err)
	}

	if data.Settings, err = s.settingsRepo.Load(ctx); err != nil {
		return nil, s.fail("load site settings", err)
	}
	if data.Experiences, err = s.experienceRepo.ListOrdered(ctx); err != nil {
		return nil, s.fail("list experiences", err)
	}
	if data.Education, err = s.educationRepo.ListOrdered(ctx); err != nil {
		return nil, s.fail("list education", err)
	}
	if data.Skills, err = s.skillRepo.ListOrdered(ctx); err != nil {
		return nil, s.fail("list skills", err)
	}
	if data.Projects, err = s.projectRepo.ListByStatuses(ctx, models.PublicProjectStatuses); err != nil {
		return nil, s.fail("list projects", err)
	}
	if data.Testimonials, err = s.testimonialRepo.ListWhere(ctx, "is_active", true); err != nil {
		return nil, s.fail("list testimonials", err)
	}

	return data, nil
}

func (s *HomeService) fail(op string, err error) error {
	configslog.Log.Error("HomeService.GetHomePage failed", zap.String("op", op), zap.Error(err))
	return &PersistenceError{Op: op, Err: err}
}

var _ IHomeService = (*HomeService)(nil)
