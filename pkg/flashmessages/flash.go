package flashmessages

import (
	"portfolio.site/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	FlashSuccessKey = "success"
	FlashErrorKey   = "error"

	sessionPrefix = "flash_"
)

// FlashMessages are the one-shot messages read on the next page view.
type FlashMessages struct {
	Success string
	Error   string
}

func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(sessionPrefix+key, message)
	return sess.Save()
}

// GetFlashMessages reads and clears the pending messages.
func GetFlashMessages(c *fiber.Ctx) (FlashMessages, error) {
	var fm FlashMessages
	sess, err := utils.SessionStart(c)
	if err != nil {
		return fm, err
	}
	found := false
	if v, ok := sess.Get(sessionPrefix + FlashSuccessKey).(string); ok {
		fm.Success = v
		sess.Delete(sessionPrefix + FlashSuccessKey)
		found = true
	}
	if v, ok := sess.Get(sessionPrefix + FlashErrorKey).(string); ok {
		fm.Error = v
		sess.Delete(sessionPrefix + FlashErrorKey)
		found = true
	}
	if found {
		return fm, sess.Save()
	}
	return fm, nil
}
