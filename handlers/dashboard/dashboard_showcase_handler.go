package handlers

import (
	"errors"
	"fmt"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
	"portfolio.site/pkg/fieldsets"
	"portfolio.site/pkg/flashmessages"
	"portfolio.site/pkg/renderer"
	"portfolio.site/pkg/uploads"
	"portfolio.site/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const dashboardLayout = "layouts/dashboard_layout"

// ShowcaseMeta describes how one record type is listed and edited.
type ShowcaseMeta[T services.Showcase] struct {
	Slug     string // URL segment below /dashboard
	Singular string
	Plural   string
	Form     fieldsets.Form
	Columns  []string
	Row      func(*T) []string
	New      func() T
	// Files stores uploads posted for record. Nil for types without files.
	Files func(c *fiber.Ctx, files *uploads.Store, record *T, errs formErrors)
	// FileRefs lists the stored files a record points at.
	FileRefs func(*T) []string
}

// RecordRow is one line of the list table.
type RecordRow struct {
	ID    uint
	Cells []string
}

// ShowcaseHandler serves list/create/update/delete screens for one record type.
type ShowcaseHandler[T services.Showcase] struct {
	service services.IShowcaseService[T]
	files   *uploads.Store
	meta    ShowcaseMeta[T]
}

// NewShowcaseHandler creates the CRUD handler described by meta.
func NewShowcaseHandler[T services.Showcase](service services.IShowcaseService[T], files *uploads.Store, meta ShowcaseMeta[T]) *ShowcaseHandler[T] {
	return &ShowcaseHandler[T]{service: service, files: files, meta: meta}
}

// Slug is the URL segment of this record type below /dashboard.
func (h *ShowcaseHandler[T]) Slug() string { return h.meta.Slug }

func (h *ShowcaseHandler[T]) basePath() string { return "/dashboard/" + h.meta.Slug }

// List shows all records in display order.
func (h *ShowcaseHandler[T]) List(c *fiber.Ctx) error {
	data := fiber.Map{
		"Title":    h.meta.Plural,
		"Singular": h.meta.Singular,
		"BaseURL":  h.basePath(),
		"Columns":  h.meta.Columns,
	}
	records, err := h.service.List(c.UserContext())
	if err != nil {
		configslog.Log.Error("Dashboard - list failed", zap.String("kind", h.meta.Slug), zap.Error(err))
		data[renderer.FlashErrorKeyView] = fmt.Sprintf("%s could not be loaded.", h.meta.Plural)
	}
	rows := make([]RecordRow, 0, len(records))
	for i := range records {
		rows = append(rows, RecordRow{ID: recordID(&records[i]), Cells: h.meta.Row(&records[i])})
	}
	data["Rows"] = rows
	return renderer.RenderWithFlash(c, "dashboard/records/list", dashboardLayout, data)
}

// ShowCreate renders an empty form filled with the model defaults.
func (h *ShowcaseHandler[T]) ShowCreate(c *fiber.Ctx) error {
	record := h.meta.New()
	return h.renderForm(c, &record, "/create", nil, fiber.StatusOK)
}

// Create validates and stores a new record.
func (h *ShowcaseHandler[T]) Create(c *fiber.Ctx) error {
	record := h.meta.New()
	errs := h.read(c, &record)
	newFiles := h.newRefs(nil, &record)
	if len(errs) > 0 {
		h.removeRefs(newFiles)
		return h.renderForm(c, &record, "/create", errs, fiber.StatusUnprocessableEntity)
	}

	if err := h.service.Create(c.UserContext(), &record); err != nil {
		h.removeRefs(newFiles)
		if errs.merge(err) {
			return h.renderForm(c, &record, "/create", errs, fiber.StatusUnprocessableEntity)
		}
		configslog.Log.Error("Dashboard - create failed", zap.String("kind", h.meta.Slug), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, fmt.Sprintf("%s could not be created.", h.meta.Singular))
		return c.Redirect(h.basePath(), fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, fmt.Sprintf("%s created.", h.meta.Singular))
	return c.Redirect(h.basePath(), fiber.StatusSeeOther)
}

// ShowUpdate renders the form of an existing record.
func (h *ShowcaseHandler[T]) ShowUpdate(c *fiber.Ctx) error {
	record, ok, err := h.load(c)
	if !ok {
		return err
	}
	return h.renderForm(c, record, fmt.Sprintf("/update/%d", recordID(record)), nil, fiber.StatusOK)
}

// Update overwrites a record. File fields left empty keep their stored file.
func (h *ShowcaseHandler[T]) Update(c *fiber.Ctx) error {
	existing, ok, err := h.load(c)
	if !ok {
		return err
	}
	id := recordID(existing)
	action := fmt.Sprintf("/update/%d", id)

	record := *existing
	errs := h.read(c, &record)
	newFiles := h.newRefs(existing, &record)
	if len(errs) > 0 {
		h.removeRefs(newFiles)
		return h.renderForm(c, &record, action, errs, fiber.StatusUnprocessableEntity)
	}

	if err := h.service.Update(c.UserContext(), id, &record); err != nil {
		h.removeRefs(newFiles)
		if errs.merge(err) {
			return h.renderForm(c, &record, action, errs, fiber.StatusUnprocessableEntity)
		}
		msg := fmt.Sprintf("%s could not be updated.", h.meta.Singular)
		if errors.Is(err, services.ErrRecordNotFound) {
			msg = fmt.Sprintf("%s not found.", h.meta.Singular)
		} else {
			configslog.Log.Error("Dashboard - update failed", zap.String("kind", h.meta.Slug), zap.Uint("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, msg)
		return c.Redirect(h.basePath(), fiber.StatusSeeOther)
	}

	h.removeRefs(h.newRefs(&record, existing))
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, fmt.Sprintf("%s updated.", h.meta.Singular))
	return c.Redirect(h.basePath(), fiber.StatusSeeOther)
}

// Delete removes a record together with its files.
func (h *ShowcaseHandler[T]) Delete(c *fiber.Ctx) error {
	existing, ok, err := h.load(c)
	if !ok {
		return err
	}
	id := recordID(existing)
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		configslog.Log.Error("Dashboard - delete failed", zap.String("kind", h.meta.Slug), zap.Uint("id", id), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, fmt.Sprintf("%s could not be deleted.", h.meta.Singular))
		return c.Redirect(h.basePath(), fiber.StatusSeeOther)
	}
	h.removeRefs(h.newRefs(nil, existing))
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, fmt.Sprintf("%s deleted.", h.meta.Singular))
	return c.Redirect(h.basePath(), fiber.StatusSeeOther)
}

// load fetches the record named by :id. When ok is false the response has
// already been decided and err must be returned.
func (h *ShowcaseHandler[T]) load(c *fiber.Ctx) (*T, bool, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid ID.")
		return nil, false, c.Redirect(h.basePath(), fiber.StatusSeeOther)
	}
	record, err := h.service.Get(c.UserContext(), uint(id))
	if err != nil {
		msg := fmt.Sprintf("%s not found.", h.meta.Singular)
		if !errors.Is(err, services.ErrRecordNotFound) {
			configslog.Log.Error("Dashboard - load failed", zap.String("kind", h.meta.Slug), zap.Int("id", id), zap.Error(err))
			msg = fmt.Sprintf("%s could not be loaded.", h.meta.Singular)
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, msg)
		return nil, false, c.Redirect(h.basePath(), fiber.StatusSeeOther)
	}
	return record, true, nil
}

func (h *ShowcaseHandler[T]) read(c *fiber.Ctx, record *T) formErrors {
	errs := formErrors(h.meta.Form.Decode(record, func(name string) string { return c.FormValue(name) }))
	if h.meta.Files != nil {
		h.meta.Files(c, h.files, record, errs)
	}
	return errs
}

// newRefs returns the files record points at that before did not.
func (h *ShowcaseHandler[T]) newRefs(before, record *T) []string {
	if h.meta.FileRefs == nil || record == nil {
		return nil
	}
	var old []string
	if before != nil {
		old = h.meta.FileRefs(before)
	}
	return changed(old, h.meta.FileRefs(record))
}

func (h *ShowcaseHandler[T]) removeRefs(refs []string) {
	for _, ref := range refs {
		h.files.Remove(ref)
	}
}

func (h *ShowcaseHandler[T]) renderForm(c *fiber.Ctx, record *T, action string, errs formErrors, status int) error {
	title := "Add " + h.meta.Singular
	if recordID(record) != 0 {
		title = "Edit " + h.meta.Singular
	}
	data := fiber.Map{
		"Title":     title,
		"BaseURL":   h.basePath(),
		"Action":    h.basePath() + action,
		"Multipart": h.meta.Form.HasFiles(),
		"Fieldsets": h.meta.Form.Bind(record, errs),
		"Files":     h.fileLinks(record),
	}
	if len(errs) > 0 {
		data[renderer.FlashErrorKeyView] = "Please correct the errors below."
	}
	return renderer.Render(c, "dashboard/records/form", dashboardLayout, data, status)
}

// fileLinks maps file field names to their current URL for the form preview.
func (h *ShowcaseHandler[T]) fileLinks(record *T) map[string]string {
	out := map[string]string{}
	for _, fs := range h.meta.Form.Bind(record, nil) {
		for _, f := range fs.Fields {
			if f.Type == fieldsets.File && f.Value != "" {
				out[f.Name] = uploads.URL(f.Value)
			}
		}
	}
	return out
}

func recordID[T any](record *T) uint {
	if r, ok := any(record).(models.Record); ok {
		return r.GetID()
	}
	return 0
}
