package fieldsets

import (
	"testing"
	"time"
)

type sample struct {
	ID        uint
	Title     string `form:"title"`
	Kind      string `form:"kind"`
	Rank      int    `form:"order"`
	Active    bool   `form:"is_active"`
	StartDate *time.Time
	Published time.Time `form:"published"`
	Image     string    `form:"-"`
}

var sampleForm = Form{
	{Title: "Main", Fields: []Field{
		{Name: "title", Label: "Title", Type: Text, Required: true},
		{Name: "kind", Label: "Kind", Type: Select, Choices: []Choice{{"a", "A"}, {"b", "B"}}},
		{Name: "order", Label: "Order", Type: Number},
		{Name: "is_active", Label: "Active", Type: Checkbox},
	}},
	{Title: "Dates", Collapsed: true, Fields: []Field{
		{Name: "start_date", Label: "Start", Type: Date},
		{Name: "published", Label: "Published", Type: Date},
		{Name: "image", Label: "Image", Type: File},
	}},
}

func values(m map[string]string) func(string) string {
	return func(name string) string { return m[name] }
}

func TestDecode(t *testing.T) {
	rec := sample{Rank: 7, Active: true, Image: "keep.png"}
	errs := sampleForm.Decode(&rec, values(map[string]string{
		"title":      "  Hello  ",
		"kind":       "b",
		"start_date": "2024-03-15",
		"published":  "2024-01-02",
		"image":      "ignored.png",
	}))
	if len(errs) != 0 {
		t.Fatalf("Decode errors = %v", errs)
	}
	if rec.Title != "Hello" || rec.Kind != "b" {
		t.Errorf("strings = %q, %q", rec.Title, rec.Kind)
	}
	if rec.Rank != 7 {
		t.Errorf("empty number changed Rank to %d", rec.Rank)
	}
	if rec.Active {
		t.Errorf("absent checkbox left Active true")
	}
	if rec.StartDate == nil || rec.StartDate.Format(DateLayout) != "2024-03-15" {
		t.Errorf("StartDate = %v", rec.StartDate)
	}
	if rec.Published.Format(DateLayout) != "2024-01-02" {
		t.Errorf("Published = %v", rec.Published)
	}
	if rec.Image != "keep.png" {
		t.Errorf("file field was decoded: %q", rec.Image)
	}
}

func TestDecodeErrors(t *testing.T) {
	rec := sample{}
	errs := sampleForm.Decode(&rec, values(map[string]string{
		"order":      "twelve",
		"start_date": "15/03/2024",
		"is_active":  "on",
	}))
	if _, ok := errs["order"]; !ok {
		t.Errorf("bad number not reported: %v", errs)
	}
	if _, ok := errs["start_date"]; !ok {
		t.Errorf("bad date not reported: %v", errs)
	}
	if !rec.Active {
		t.Errorf("checkbox value \"on\" not decoded")
	}
}

func TestDecodeClearsOptionalDate(t *testing.T) {
	d := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	rec := sample{StartDate: &d}
	sampleForm.Decode(&rec, values(nil))
	if rec.StartDate != nil {
		t.Errorf("StartDate = %v, want nil", rec.StartDate)
	}
}

func TestBind(t *testing.T) {
	d := time.Date(2022, 5, 9, 0, 0, 0, 0, time.UTC)
	rec := sample{Title: "Hello", Kind: "a", Rank: 3, Active: true, StartDate: &d}
	views := sampleForm.Bind(&rec, map[string]string{"start_date": "bad date"})

	if len(views) != 2 {
		t.Fatalf("Bind = %d fieldsets, want 2", len(views))
	}
	main := views[0].Fields
	if main[0].Value != "Hello" || main[2].Value != "3" || !main[3].Checked {
		t.Errorf("main fields = %+v", main)
	}
	dates := views[1]
	if dates.Collapsed {
		t.Errorf("fieldset with an error stayed collapsed")
	}
	if dates.Fields[0].Value != "2022-05-09" || dates.Fields[0].Error != "bad date" {
		t.Errorf("start_date view = %+v", dates.Fields[0])
	}
	if dates.Fields[1].Value != "" {
		t.Errorf("zero time rendered as %q", dates.Fields[1].Value)
	}
}

func TestHasFiles(t *testing.T) {
	if !sampleForm.HasFiles() {
		t.Errorf("HasFiles() = false")
	}
	if (Form{{Fields: []Field{{Name: "a", Type: Text}}}}).HasFiles() {
		t.Errorf("HasFiles() = true for a text-only form")
	}
}

func TestSnake(t *testing.T) {
	tests := map[string]string{
		"StartDate":    "start_date",
		"ID":           "id",
		"FieldOfStudy": "field_of_study",
		"ProjectURL":   "project_url",
	}
	for in, want := range tests {
		if got := snake(in); got != want {
			t.Errorf("snake(%q) = %q, want %q", in, got, want)
		}
	}
}
