package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"painel_master/internal/config"
	"painel_master/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

const identityKey = "identity"

var ErrNoSession = errors.New("no identity in session")

// Manager keeps the logged-in identity in a signed cookie.
type Manager struct {
	store sessions.Store
	name  string
}

func NewManager(cfg config.Session) *Manager {
	secret := []byte(cfg.Secret)
	if len(secret) == 0 {
		log.Printf("[session] SESSION_SECRET not set; using a random key, sessions will not survive a restart")
		secret = securecookie.GenerateRandomKey(32)
	}
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store, name: entities.IdentityCookieName}
}

// Load returns ErrNoSession when the cookie is missing, unreadable or empty.
func (m *Manager) Load(c *gin.Context) (entities.Identity, error) {
	s, err := m.store.Get(c.Request, m.name)
	if err != nil {
		// a tampered or stale cookie is treated as logged out
		log.Printf("[session] discarding unreadable cookie err=%v", err)
		return entities.Identity{}, ErrNoSession
	}
	raw, ok := s.Values[identityKey].(string)
	if !ok || raw == "" {
		return entities.Identity{}, ErrNoSession
	}
	var identity entities.Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil || identity.IsZero() {
		return entities.Identity{}, ErrNoSession
	}
	return identity, nil
}

func (m *Manager) Save(c *gin.Context, identity entities.Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}
	s, _ := m.store.Get(c.Request, m.name)
	s.Values[identityKey] = string(raw)
	return s.Save(c.Request, c.Writer)
}

// Update merges patch into the stored identity and writes it back.
func (m *Manager) Update(c *gin.Context, patch entities.IdentityPatch) (entities.Identity, error) {
	current, err := m.Load(c)
	if err != nil {
		return entities.Identity{}, err
	}
	next := current.Merge(patch)
	if err := m.Save(c, next); err != nil {
		return entities.Identity{}, err
	}
	return next, nil
}

func (m *Manager) Clear(c *gin.Context) error {
	s, _ := m.store.Get(c.Request, m.name)
	delete(s.Values, identityKey)
	s.Options.MaxAge = -1
	return s.Save(c.Request, c.Writer)
}
