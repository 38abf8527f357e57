package handlers

import (
	"errors"
	"strconv"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
	"portfolio.site/pkg/flashmessages"
	"portfolio.site/pkg/renderer"
	"portfolio.site/pkg/uploads"
	"portfolio.site/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const profilePath = "/dashboard/profile"

// ProfileHandler edits the single profile and its slider images.
type ProfileHandler struct {
	service services.IProfileService
	files   *uploads.Store
}

// NewProfileHandler creates the profile handler. Uploaded files are stored in files.
func NewProfileHandler(service services.IProfileService, files *uploads.Store) *ProfileHandler {
	return &ProfileHandler{service: service, files: files}
}

// ShowUpdate renders the profile form, creating the default profile on first visit.
func (h *ProfileHandler) ShowUpdate(c *fiber.Ctx) error {
	profile, err := h.service.Load(c.UserContext())
	if err != nil {
		return err
	}
	return h.render(c, profile, nil, fiber.StatusOK, true)
}

// Update saves the profile form. Invalid input re-renders the form with 422;
// newly uploaded files are removed again when the save does not go through.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	current, err := h.service.Load(c.UserContext())
	if err != nil {
		return err
	}
	profile := *current
	errs := formErrors(profileForm.Decode(&profile, func(name string) string { return c.FormValue(name) }))
	profile.ProfileImage = upload(c, h.files, "profile_image", "profile", current.ProfileImage, uploads.ImageExtensions, errs)
	profile.ResumeFile = upload(c, h.files, "resume_file", "resume", current.ResumeFile, uploads.DocumentExtensions, errs)

	added := changed([]string{current.ProfileImage, current.ResumeFile}, []string{profile.ProfileImage, profile.ResumeFile})
	if len(errs) == 0 {
		err = h.service.Update(c.UserContext(), &profile)
		if err != nil && !errs.merge(err) {
			h.remove(added)
			configslog.Log.Error("Dashboard - profile update failed", zap.Error(err))
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Profile could not be updated.")
			return c.Redirect(profilePath, fiber.StatusSeeOther)
		}
	}
	if len(errs) > 0 {
		h.remove(added)
		return h.render(c, &profile, errs, fiber.StatusUnprocessableEntity, false)
	}

	h.remove(changed([]string{profile.ProfileImage, profile.ResumeFile}, []string{current.ProfileImage, current.ResumeFile}))
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Profile updated.")
	return c.Redirect(profilePath, fiber.StatusSeeOther)
}

// AddImage uploads a slider image.
func (h *ProfileHandler) AddImage(c *fiber.Ctx) error {
	errs := formErrors{}
	rel := upload(c, h.files, "image", "profile/slider", "", uploads.ImageExtensions, errs)
	if msg, ok := errs["image"]; ok {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, msg)
		return c.Redirect(profilePath, fiber.StatusSeeOther)
	}
	order, err := strconv.Atoi(c.FormValue("order", "0"))
	if err != nil {
		h.files.Remove(rel)
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "order must be a whole number")
		return c.Redirect(profilePath, fiber.StatusSeeOther)
	}

	if _, err := h.service.AddImage(c.UserContext(), rel, order); err != nil {
		h.files.Remove(rel)
		var svcErr services.ProfileServiceError
		msg := "Image could not be added."
		if errors.As(err, &svcErr) {
			msg = svcErr.Error()
		} else {
			configslog.Log.Error("Dashboard - profile image add failed", zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, msg)
		return c.Redirect(profilePath, fiber.StatusSeeOther)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Image added.")
	return c.Redirect(profilePath, fiber.StatusSeeOther)
}

// DeleteImage removes a slider image and its file.
func (h *ProfileHandler) DeleteImage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid ID.")
		return c.Redirect(profilePath, fiber.StatusSeeOther)
	}
	image, err := h.service.DeleteImage(c.UserContext(), uint(id))
	if err != nil {
		msg := "Image could not be deleted."
		if errors.Is(err, services.ErrProfileImageNotFound) {
			msg = err.Error()
		} else {
			configslog.Log.Error("Dashboard - profile image delete failed", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, msg)
		return c.Redirect(profilePath, fiber.StatusSeeOther)
	}
	h.files.Remove(image.Image)
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Image deleted.")
	return c.Redirect(profilePath, fiber.StatusSeeOther)
}

func (h *ProfileHandler) render(c *fiber.Ctx, profile *models.Profile, errs formErrors, status int, withFlash bool) error {
	data := fiber.Map{
		"Title":     "Profile",
		"Action":    profilePath,
		"Multipart": true,
		"Fieldsets": profileForm.Bind(profile, errs),
		"Files": map[string]string{
			"profile_image": uploads.URL(profile.ProfileImage),
			"resume_file":   uploads.URL(profile.ResumeFile),
		},
		"Images":    profile.Images,
		"CanAdd":    len(profile.Images) < models.MaxProfileImages,
		"MaxImages": models.MaxProfileImages,
	}
	if len(errs) > 0 {
		data[renderer.FlashErrorKeyView] = "Please correct the errors below."
	}
	if withFlash {
		return renderer.RenderWithFlash(c, "dashboard/profile/form", dashboardLayout, data, status)
	}
	return renderer.Render(c, "dashboard/profile/form", dashboardLayout, data, status)
}

func (h *ProfileHandler) remove(refs []string) {
	for _, ref := range refs {
		h.files.Remove(ref)
	}
}

// changed returns the non-empty refs of after that are not in before.
func changed(before, after []string) []string {
	old := map[string]bool{}
	for _, ref := range before {
		old[ref] = true
	}
	var out []string
	for _, ref := range after {
		if ref != "" && !old[ref] {
			out = append(out, ref)
		}
	}
	return out
}
