package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/automoto/dobok/session Store

// ErrNoStore is returned by Save and Load when the session has no store.
var ErrNoStore = errors.New("session has no store")

const playerDataKey = "player"

// Store is the key/value persistence used for save data. *gdata.Manager
// satisfies it.
type Store interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// OpenStore opens the on-disk gdata store for appName.
func OpenStore(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open gdata store %q: %w", appName, err)
	}
	return m, nil
}

// PlayerData is the persisted player progress
type PlayerData struct {
	Stage   int     `json:"stage"`
	Health  int     `json:"health"`
	Mana    int     `json:"mana"`
	Dobok   string  `json:"dobok"`
	PlayerX float64 `json:"playerX"`
	PlayerY float64 `json:"playerY"`
}

// Save writes player data to the store
func (s *Session) Save(data PlayerData) error {
	if s.store == nil {
		return ErrNoStore
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode player data: %w", err)
	}
	if err := s.store.SaveItem(playerDataKey, raw); err != nil {
		return fmt.Errorf("save player data: %w", err)
	}
	log.Printf("[session] Saved player data (stage %d)", data.Stage)
	return nil
}

// Load reads player data from the store. ok is false when nothing has been
// saved yet.
func (s *Session) Load() (data PlayerData, ok bool, err error) {
	if s.store == nil {
		return PlayerData{}, false, ErrNoStore
	}

	raw, err := s.store.LoadItem(playerDataKey)
	if err != nil {
		return PlayerData{}, false, fmt.Errorf("load player data: %w", err)
	}
	if raw == nil {
		return PlayerData{}, false, nil
	}

	if err := json.Unmarshal(raw, &data); err != nil {
		return PlayerData{}, false, fmt.Errorf("decode player data: %w", err)
	}
	log.Printf("[session] Loaded player data (stage %d)", data.Stage)
	return data, true, nil
}

// Continue loads saved progress and moves the session to the saved stage.
func (s *Session) Continue() (PlayerData, bool, error) {
	data, ok, err := s.Load()
	if err != nil || !ok {
		return data, ok, err
	}
	s.SetStage(data.Stage)
	s.setState(Playing)
	return data, true, nil
}
