package routes

import (
	"portfolio.site/models"
	"portfolio.site/repositories"
	"portfolio.site/services"

	"gorm.io/gorm"
)

// container holds the services shared by the route groups.
type container struct {
	home      services.IHomeService
	contact   services.IContactService
	auth      services.IAuthService
	profile   services.IProfileService
	settings  services.ISiteSettingsService
	messages  services.IMessageService
	dashboard services.IDashboardService

	education    services.IShowcaseService[models.Education]
	experiences  services.IShowcaseService[models.Experience]
	skills       services.IShowcaseService[models.Skill]
	projects     services.IShowcaseService[models.Project]
	testimonials services.IShowcaseService[models.Testimonial]
}

func newContainer(db *gorm.DB, opts Options) *container {
	profileRepo := repositories.NewProfileRepository(db)
	settingsRepo := repositories.NewSiteSettingsRepository(db)
	messageRepo := repositories.NewContactMessageRepository(db)
	educationRepo := repositories.NewEducationRepository(db)
	experienceRepo := repositories.NewExperienceRepository(db)
	skillRepo := repositories.NewSkillRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	testimonialRepo := repositories.NewTestimonialRepository(db)

	c := &container{
		home: services.NewHomeService(services.HomeRepositories{
			Profile:     profileRepo,
			Settings:    settingsRepo,
			Experience:  experienceRepo,
			Education:   educationRepo,
			Skill:       skillRepo,
			Project:     projectRepo,
			Testimonial: testimonialRepo,
		}),
		contact:  services.NewContactService(messageRepo, settingsRepo, opts.Notifier, opts.NotifyTimeout),
		auth:     services.NewAuthService(repositories.NewUserRepository(db), opts.MaxLoginFailures, opts.LoginLockout),
		profile:  services.NewProfileService(profileRepo),
		settings: services.NewSiteSettingsService(settingsRepo),
		messages: services.NewMessageService(messageRepo),

		education:    services.NewShowcaseService[models.Education]("education", educationRepo),
		experiences:  services.NewShowcaseService[models.Experience]("experience", experienceRepo),
		skills:       services.NewShowcaseService[models.Skill]("skill", skillRepo),
		projects:     services.NewShowcaseService[models.Project]("project", projectRepo),
		testimonials: services.NewShowcaseService[models.Testimonial]("testimonial", testimonialRepo),
	}
	c.dashboard = services.NewDashboardService(c.education, c.experiences, c.skills, c.projects, c.testimonials, c.messages)
	return c
}
