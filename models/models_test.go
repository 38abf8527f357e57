package models

import (
	"errors"
	"testing"
	"time"
)

func TestSkillTier(t *testing.T) {
	tests := []struct {
		proficiency int
		tier        string
		color       string
	}{
		{100, "high", "#4CAF50"},
		{85, "high", "#4CAF50"},
		{70, "high", "#4CAF50"},
		{69, "medium", "#FFC107"},
		{45, "medium", "#FFC107"},
		{40, "medium", "#FFC107"},
		{39, "low", "#F44336"},
		{15, "low", "#F44336"},
		{0, "low", "#F44336"},
	}
	for _, tt := range tests {
		s := Skill{Proficiency: tt.proficiency}
		if got := s.Tier(); got != tt.tier {
			t.Errorf("Skill{Proficiency: %d}.Tier() = %q, want %q", tt.proficiency, got, tt.tier)
		}
		if got := s.TierColor(); got != tt.color {
			t.Errorf("Skill{Proficiency: %d}.TierColor() = %q, want %q", tt.proficiency, got, tt.color)
		}
	}
}

func TestSkillValidation(t *testing.T) {
	tests := []struct {
		name  string
		skill Skill
		field string
	}{
		{"valid", Skill{Category: SkillCategoryBackend, Name: "Go", Proficiency: 90}, ""},
		{"unknown category", Skill{Category: "cooking", Name: "Go", Proficiency: 90}, "category"},
		{"missing name", Skill{Category: SkillCategoryTools, Proficiency: 10}, "name"},
		{"proficiency above range", Skill{Category: SkillCategoryTools, Name: "Git", Proficiency: 101}, "proficiency"},
		{"proficiency below range", Skill{Category: SkillCategoryTools, Name: "Git", Proficiency: -1}, "proficiency"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.skill)
			if tt.field == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if _, ok := ve.Fields[tt.field]; !ok {
				t.Errorf("Validate() fields = %v, want an entry for %q", ve.Fields, tt.field)
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("errors.Is(err, ErrValidation) = false")
			}
		})
	}
}

func TestProjectAndTestimonialValidation(t *testing.T) {
	p := NewProject()
	p.Title, p.Description, p.Technologies = "Site", "A site", "Go"
	p.Status = "abandoned"
	if err := Validate(&p); err == nil {
		t.Errorf("project with unknown status validated")
	}
	p.Status = ProjectStatusPlanned
	if err := Validate(&p); err != nil {
		t.Errorf("planned project: %v", err)
	}

	for _, rating := range []int{0, 6} {
		tm := NewTestimonial()
		tm.Name, tm.Position, tm.Testimonial = "Ada", "CTO", "Great"
		tm.Rating = rating
		if err := Validate(&tm); err == nil {
			t.Errorf("testimonial with rating %d validated", rating)
		}
	}
}

func TestTestimonialStars(t *testing.T) {
	tests := []struct {
		rating int
		want   string
	}{
		{5, "★★★★★"},
		{3, "★★★☆☆"},
		{1, "★☆☆☆☆"},
		{9, "★★★★★"},
	}
	for _, tt := range tests {
		if got := (Testimonial{Rating: tt.rating}).Stars(); got != tt.want {
			t.Errorf("Stars() for rating %d = %q, want %q", tt.rating, got, tt.want)
		}
	}
}

func TestTimelineNormalize(t *testing.T) {
	start := time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)

	current := Timeline{StartDate: &start, EndDate: &end, IsCurrent: true}
	if err := current.normalize(); err != nil {
		t.Fatalf("normalize() = %v", err)
	}
	if current.EndDate != nil {
		t.Errorf("current entry kept its end date")
	}

	reversed := Timeline{StartDate: &end, EndDate: &start}
	if err := reversed.normalize(); !errors.Is(err, ErrValidation) {
		t.Errorf("reversed range: normalize() = %v, want validation error", err)
	}
}

func TestTimelinePeriod(t *testing.T) {
	start := time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		tl   Timeline
		want string
	}{
		{"closed", Timeline{StartDate: &start, EndDate: &end}, "Jan 2022 – Jun 2023"},
		{"current", Timeline{StartDate: &start, IsCurrent: true}, "Jan 2022 – Present"},
		{"start only", Timeline{StartDate: &start}, "Jan 2022"},
		{"empty", Timeline{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tl.Period(); got != tt.want {
				t.Errorf("Period() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContactMessagePreviewAndStatus(t *testing.T) {
	long := "This message is definitely longer than fifty characters in total."
	m := ContactMessage{Message: long}
	if got, want := m.Preview(), long[:50]+"..."; got != want {
		t.Errorf("Preview() = %q, want %q", got, want)
	}
	m.Subject = "Hello"
	if got := m.Preview(); got != "Hello" {
		t.Errorf("Preview() with subject = %q", got)
	}

	if got := (ContactMessage{}).StatusLabel(); got != "New" {
		t.Errorf("StatusLabel() = %q, want New", got)
	}
	if got := (ContactMessage{IsRead: true}).StatusLabel(); got != "Read" {
		t.Errorf("StatusLabel() = %q, want Read", got)
	}
	if got := (ContactMessage{IsRead: true, IsReplied: true}).StatusLabel(); got != "Replied" {
		t.Errorf("StatusLabel() = %q, want Replied", got)
	}
}

func TestContactMessageValidation(t *testing.T) {
	valid := ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "Hello"}
	if err := Validate(&valid); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	missing := ContactMessage{Name: "Ada", Email: "ada@example.com"}
	var ve *ValidationError
	if err := Validate(&missing); !errors.As(err, &ve) || ve.Fields["message"] == "" {
		t.Errorf("missing message: Validate() = %v", err)
	}
}

func TestProjectTechnologyList(t *testing.T) {
	p := Project{Technologies: " Go, HTMX ,, PostgreSQL "}
	got := p.TechnologyList()
	want := []string{"Go", "HTMX", "PostgreSQL"}
	if len(got) != len(want) {
		t.Fatalf("TechnologyList() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TechnologyList()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
