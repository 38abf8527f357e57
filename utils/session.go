package utils

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Session keys of the logged-in dashboard user.
const (
	SessionUserIDKey   = "user_id"
	SessionUserNameKey = "user_name"
	sessionStoreLocal  = "session_store"
)

var ErrNoSessionStore = errors.New("session store is not initialised")

// SetSessionStore makes store available to SessionStart for this request.
func SetSessionStore(c *fiber.Ctx, store *session.Store) {
	c.Locals(sessionStoreLocal, store)
}

// SessionStart returns the session of the request.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals(sessionStoreLocal).(*session.Store)
	if !ok || store == nil {
		return nil, ErrNoSessionStore
	}
	return store.Get(c)
}

func GetUserIDFromSession(sess *session.Session) (uint, error) {
	switch v := sess.Get(SessionUserIDKey).(type) {
	case uint:
		if v == 0 {
			return 0, errors.New("user id in session is zero")
		}
		return v, nil
	case nil:
		return 0, errors.New("no user id in session")
	default:
		return 0, fmt.Errorf("unexpected user id type %T in session", v)
	}
}

// LoginSession regenerates the session id and stores the user in it.
func LoginSession(c *fiber.Ctx, userID uint, userName string) error {
	sess, err := SessionStart(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(SessionUserIDKey, userID)
	sess.Set(SessionUserNameKey, userName)
	return sess.Save()
}

func LogoutSession(c *fiber.Ctx) error {
	sess, err := SessionStart(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}
