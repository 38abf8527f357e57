package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"portfolio.site/configs/configslog"
	"portfolio.site/pkg/flashmessages"
	"portfolio.site/pkg/renderer"
	"portfolio.site/repositories"
	"portfolio.site/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const messagesPath = "/dashboard/messages"

// MessageHandler is the contact message inbox.
type MessageHandler struct {
	service services.IMessageService
}

// NewMessageHandler creates the inbox handler.
func NewMessageHandler(service services.IMessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// List shows messages newest first. ?read= and ?replied= ("true"/"false") filter the list.
func (h *MessageHandler) List(c *fiber.Ctx) error {
	filter := repositories.MessageFilter{
		IsRead:    queryBool(c, "read"),
		IsReplied: queryBool(c, "replied"),
	}
	data := fiber.Map{
		"Title":   "Messages",
		"Read":    c.Query("read"),
		"Replied": c.Query("replied"),
	}
	msgs, err := h.service.List(c.UserContext(), filter)
	if err != nil {
		configslog.Log.Error("Dashboard - message list failed", zap.Error(err))
		data[renderer.FlashErrorKeyView] = "Messages could not be loaded."
	}
	data["Messages"] = msgs
	return renderer.RenderWithFlash(c, "dashboard/messages/list", dashboardLayout, data)
}

// Show displays one message and marks it read.
func (h *MessageHandler) Show(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid ID.")
		return c.Redirect(messagesPath, fiber.StatusSeeOther)
	}
	msg, err := h.service.Open(c.UserContext(), uint(id))
	if err != nil {
		if !errors.Is(err, services.ErrMessageNotFound) {
			configslog.Log.Error("Dashboard - message open failed", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Message not found.")
		return c.Redirect(messagesPath, fiber.StatusSeeOther)
	}
	return renderer.RenderWithFlash(c, "dashboard/messages/show", dashboardLayout, fiber.Map{
		"Title":   "Message from " + msg.Name,
		"Message": msg,
	})
}

// Bulk applies the action in the "action" field to the checked "ids".
func (h *MessageHandler) Bulk(c *fiber.Ctx) error {
	ids, err := formIDs(c, "ids")
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid selection.")
		return c.Redirect(messagesPath, fiber.StatusSeeOther)
	}
	n, err := h.service.ApplyBulk(c.UserContext(), c.FormValue("action"), ids)
	if err != nil {
		var svcErr services.MessageServiceError
		msg := "Action could not be applied."
		if errors.As(err, &svcErr) {
			msg = svcErr.Error()
		} else {
			configslog.Log.Error("Dashboard - bulk action failed", zap.String("action", c.FormValue("action")), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, msg)
		return c.Redirect(messagesPath, fiber.StatusSeeOther)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, fmt.Sprintf("%d message(s) updated.", n))
	return c.Redirect(messagesPath, fiber.StatusSeeOther)
}

// MarkReplied marks a single message replied from its detail page.
func (h *MessageHandler) MarkReplied(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Redirect(messagesPath, fiber.StatusSeeOther)
	}
	if _, err := h.service.MarkReplied(c.UserContext(), []uint{uint(id)}); err != nil {
		configslog.Log.Error("Dashboard - mark replied failed", zap.Int("id", id), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Message could not be updated.")
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Message marked as replied.")
	}
	return c.Redirect(fmt.Sprintf("%s/%d", messagesPath, id), fiber.StatusSeeOther)
}

// Delete removes one message.
func (h *MessageHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid ID.")
		return c.Redirect(messagesPath, fiber.StatusSeeOther)
	}
	if err := h.service.Delete(c.UserContext(), uint(id)); err != nil {
		if !errors.Is(err, services.ErrMessageNotFound) {
			configslog.Log.Error("Dashboard - message delete failed", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Message could not be deleted.")
		return c.Redirect(messagesPath, fiber.StatusSeeOther)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Message deleted.")
	return c.Redirect(messagesPath, fiber.StatusSeeOther)
}

func queryBool(c *fiber.Ctx, key string) *bool {
	switch c.Query(key) {
	case "true", "1":
		v := true
		return &v
	case "false", "0":
		v := false
		return &v
	}
	return nil
}

// formIDs reads every value posted under key as an id.
func formIDs(c *fiber.Ctx, key string) ([]uint, error) {
	var raw []string
	if form, err := c.MultipartForm(); err == nil && form != nil {
		raw = form.Value[key]
	} else {
		c.Request().PostArgs().VisitAll(func(k, v []byte) {
			if string(k) == key {
				raw = append(raw, string(v))
			}
		})
	}
	ids := make([]uint, 0, len(raw))
	for _, r := range raw {
		n, err := strconv.ParseUint(r, 10, 64)
		if err != nil || n == 0 {
			return nil, fmt.Errorf("invalid id %q", r)
		}
		ids = append(ids, uint(n))
	}
	return ids, nil
}
