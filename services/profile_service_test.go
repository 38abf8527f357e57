package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"portfolio.site/database/testdb"
	"portfolio.site/models"
	"portfolio.site/repositories"
)

func TestProfileServiceImageLimit(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(repositories.NewProfileRepository(testdb.Open(t)))

	for i := 0; i < models.MaxProfileImages; i++ {
		if _, err := svc.AddImage(ctx, fmt.Sprintf("profile/%d.jpg", i), i); err != nil {
			t.Fatalf("AddImage %d: %v", i, err)
		}
	}
	if _, err := svc.AddImage(ctx, "profile/extra.jpg", 0); !errors.Is(err, ErrProfileImageLimit) {
		t.Errorf("seventh image = %v, want ErrProfileImageLimit", err)
	}
	if _, err := svc.AddImage(ctx, "", 0); !errors.Is(err, ErrProfileImageRequired) {
		t.Errorf("empty path = %v, want ErrProfileImageRequired", err)
	}

	profile, err := svc.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	removed, err := svc.DeleteImage(ctx, profile.Images[0].ID)
	if err != nil {
		t.Fatalf("DeleteImage: %v", err)
	}
	if removed.Image != "profile/0.jpg" {
		t.Errorf("removed = %q, want profile/0.jpg", removed.Image)
	}
	if _, err := svc.DeleteImage(ctx, removed.ID); !errors.Is(err, ErrProfileImageNotFound) {
		t.Errorf("second delete = %v, want ErrProfileImageNotFound", err)
	}
}

func TestProfileServiceUpdateKeepsFiles(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(repositories.NewProfileRepository(testdb.Open(t)))

	p := models.DefaultProfile()
	p.ProfileImage = "profile/me.jpg"
	p.ResumeFile = "resume/cv.pdf"
	if _, err := svc.Create(ctx, &p); err != nil {
		t.Fatalf("Create: %v", err)
	}

	edit := models.Profile{Name: "Ada Lovelace", Tagline: "Analyst", Email: "ada@example.com"}
	if err := svc.Update(ctx, &edit); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := svc.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Name != "Ada Lovelace" || got.ProfileImage != "profile/me.jpg" || got.ResumeFile != "resume/cv.pdf" {
		t.Errorf("profile after update = %+v", got)
	}

	bad := models.Profile{Name: "Ada", Email: "nope"}
	if err := svc.Update(ctx, &bad); !errors.Is(err, ErrValidation) {
		t.Errorf("invalid email = %v, want validation error", err)
	}
	noEmail := models.Profile{Name: "Ada"}
	err = svc.Update(ctx, &noEmail)
	if verr, ok := IsValidation(err); !ok {
		t.Errorf("missing email = %v, want validation error", err)
	} else if _, ok := verr.Fields["email"]; !ok {
		t.Errorf("missing email errors = %v, want an entry for email", verr.Fields)
	}
}

func TestProfileServiceCreateKeepsSingleton(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	svc := NewProfileService(repositories.NewProfileRepository(db))

	first, err := svc.Create(ctx, &models.Profile{Name: "First", Email: "first@example.com"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := svc.Create(ctx, &models.Profile{Name: "Second", Email: "second@example.com"})
	if err != nil {
		t.Fatalf("second Create: %v", err)
	}
	if second.ID != first.ID || second.Name != "First" {
		t.Errorf("second Create = %d/%q, want existing %d/First", second.ID, second.Name, first.ID)
	}
	var n int64
	db.Model(&models.Profile{}).Count(&n)
	if n != 1 {
		t.Errorf("profiles = %d, want 1", n)
	}
}

func TestShowcaseServiceCRUD(t *testing.T) {
	ctx := context.Background()
	svc := NewShowcaseService[models.Skill]("skill", repositories.NewSkillRepository(testdb.Open(t)))

	skill := models.Skill{Category: models.SkillCategoryBackend, Name: "Go", Proficiency: 85}
	if err := svc.Create(ctx, &skill); err != nil {
		t.Fatalf("Create: %v", err)
	}
	created, err := svc.Get(ctx, skill.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	edit := models.Skill{Category: models.SkillCategoryBackend, Name: "Go", Proficiency: 95}
	if err := svc.Update(ctx, skill.ID, &edit); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ := svc.Get(ctx, skill.ID)
	if got.Proficiency != 95 || !got.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("after update = %+v (created %v)", got, created.CreatedAt)
	}

	invalid := models.Skill{Category: "cooking", Name: "Go"}
	if err := svc.Update(ctx, skill.ID, &invalid); !errors.Is(err, ErrValidation) {
		t.Errorf("invalid update = %v, want validation error", err)
	}
	if err := svc.Update(ctx, 9999, &edit); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("update missing = %v, want ErrRecordNotFound", err)
	}

	if err := svc.Delete(ctx, skill.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, skill.ID); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("Get after delete = %v, want ErrRecordNotFound", err)
	}
	if _, err := svc.Get(ctx, 0); !errors.Is(err, ErrInvalidID) {
		t.Errorf("Get(0) = %v, want ErrInvalidID", err)
	}
}

func TestSiteSettingsServiceKeepsFavicon(t *testing.T) {
	ctx := context.Background()
	svc := NewSiteSettingsService(repositories.NewSiteSettingsRepository(testdb.Open(t)))

	s := models.DefaultSiteSettings()
	s.Favicon = "favicon/icon.png"
	if err := svc.Update(ctx, &s); err != nil {
		t.Fatalf("Update: %v", err)
	}
	edit := models.DefaultSiteSettings()
	edit.SiteTitle = "Ada's site"
	if err := svc.Update(ctx, &edit); err != nil {
		t.Fatalf("second Update: %v", err)
	}
	got, err := svc.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.SiteTitle != "Ada's site" || got.Favicon != "favicon/icon.png" {
		t.Errorf("settings = %+v", got)
	}
}
