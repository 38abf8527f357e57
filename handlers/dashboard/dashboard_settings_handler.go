package handlers

import (
	"portfolio.site/configs/configslog"
	"portfolio.site/models"
	"portfolio.site/pkg/flashmessages"
	"portfolio.site/pkg/renderer"
	"portfolio.site/pkg/uploads"
	"portfolio.site/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const settingsPath = "/dashboard/settings"

// SettingsHandler edits the site settings. Settings cannot be created or deleted here.
type SettingsHandler struct {
	service services.ISiteSettingsService
	files   *uploads.Store
}

// NewSettingsHandler creates the site settings handler.
func NewSettingsHandler(service services.ISiteSettingsService, files *uploads.Store) *SettingsHandler {
	return &SettingsHandler{service: service, files: files}
}

// ShowUpdate renders the settings form.
func (h *SettingsHandler) ShowUpdate(c *fiber.Ctx) error {
	settings, err := h.service.Load(c.UserContext())
	if err != nil {
		return err
	}
	return h.render(c, settings, nil, fiber.StatusOK)
}

// Update saves the settings form. The favicon is replaced only when a new file is sent.
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	current, err := h.service.Load(c.UserContext())
	if err != nil {
		return err
	}
	settings := *current
	errs := formErrors(settingsForm.Decode(&settings, func(name string) string { return c.FormValue(name) }))
	settings.Favicon = upload(c, h.files, "favicon", "site", current.Favicon, uploads.ImageExtensions, errs)
	added := changed([]string{current.Favicon}, []string{settings.Favicon})

	if len(errs) == 0 {
		if err := h.service.Update(c.UserContext(), &settings); err != nil && !errs.merge(err) {
			h.remove(added)
			configslog.Log.Error("Dashboard - settings update failed", zap.Error(err))
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Settings could not be saved.")
			return c.Redirect(settingsPath, fiber.StatusSeeOther)
		}
	}
	if len(errs) > 0 {
		h.remove(added)
		return h.render(c, &settings, errs, fiber.StatusUnprocessableEntity)
	}

	h.remove(changed([]string{settings.Favicon}, []string{current.Favicon}))
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Settings saved.")
	return c.Redirect(settingsPath, fiber.StatusSeeOther)
}

func (h *SettingsHandler) render(c *fiber.Ctx, settings *models.SiteSettings, errs formErrors, status int) error {
	data := fiber.Map{
		"Title":     "Site settings",
		"Action":    settingsPath,
		"Multipart": true,
		"Fieldsets": settingsForm.Bind(settings, errs),
		"Files":     map[string]string{"favicon": uploads.URL(settings.Favicon)},
	}
	if len(errs) > 0 {
		data[renderer.FlashErrorKeyView] = "Please correct the errors below."
		return renderer.Render(c, "dashboard/records/form", dashboardLayout, data, status)
	}
	return renderer.RenderWithFlash(c, "dashboard/records/form", dashboardLayout, data, status)
}

func (h *SettingsHandler) remove(refs []string) {
	for _, ref := range refs {
		h.files.Remove(ref)
	}
}
