package session_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/automoto/dobok/session"
	"github.com/automoto/dobok/session/mocks"
)

type SessionTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	store *mocks.MockStore
	sess  *session.Session
}

func (s *SessionTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockStore(s.ctrl)
	s.sess = session.New(s.store)
}

func (s *SessionTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SessionTestSuite) TestPauseToggle() {
	s.True(s.sess.IsGameplayActive())

	s.sess.TogglePause()
	s.Equal(session.Paused, s.sess.State())
	s.False(s.sess.IsGameplayActive())

	s.sess.TogglePause()
	s.Equal(session.Playing, s.sess.State())
}

func (s *SessionTestSuite) TestPauseIgnoredAfterGameOver() {
	s.sess.EndGame()
	s.sess.TogglePause()
	s.Equal(session.GameOver, s.sess.State())
}

func (s *SessionTestSuite) TestStageProgression() {
	s.Require().Equal(2, s.sess.MaxStages())
	s.Equal(1, s.sess.Stage())

	s.True(s.sess.ClearStage())
	s.False(s.sess.ClearStage(), "clear fires once per stage")
	s.Equal(session.Playing, s.sess.State())

	stage, ok := s.sess.TakeAdvance()
	s.True(ok)
	s.Equal(2, stage)
	s.False(s.sess.StageCleared())

	_, ok = s.sess.TakeAdvance()
	s.False(ok)

	s.True(s.sess.ClearStage())
	s.Equal(session.Victory, s.sess.State())
	_, ok = s.sess.TakeAdvance()
	s.False(ok, "final stage does not advance")

	s.sess.EndGame()
	s.Equal(session.Victory, s.sess.State(), "victory is final")

	s.sess.Restart()
	s.Equal(1, s.sess.Stage())
	s.Equal(session.Playing, s.sess.State())
}

func (s *SessionTestSuite) TestSaveWritesJSON() {
	data := session.PlayerData{Stage: 2, Health: 75, Mana: 50, Dobok: "blue", PlayerX: 10, PlayerY: 20}

	s.store.EXPECT().
		SaveItem("player", gomock.Any()).
		DoAndReturn(func(_ string, raw []byte) error {
			var got session.PlayerData
			s.Require().NoError(json.Unmarshal(raw, &got))
			s.Equal(data, got)
			return nil
		})

	s.NoError(s.sess.Save(data))
}

func (s *SessionTestSuite) TestSaveWrapsStoreError() {
	diskFull := errors.New("disk full")
	s.store.EXPECT().SaveItem("player", gomock.Any()).Return(diskFull)

	err := s.sess.Save(session.PlayerData{})
	s.Error(err)
	s.True(errors.Is(err, diskFull))
}

func (s *SessionTestSuite) TestLoadNothingSaved() {
	s.store.EXPECT().LoadItem("player").Return(nil, nil)

	_, ok, err := s.sess.Load()
	s.NoError(err)
	s.False(ok)
}

func (s *SessionTestSuite) TestLoadCorrupt() {
	s.store.EXPECT().LoadItem("player").Return([]byte("{not json"), nil)

	_, ok, err := s.sess.Load()
	s.Error(err)
	s.False(ok)
}

func (s *SessionTestSuite) TestContinueMovesToSavedStage() {
	raw, err := json.Marshal(session.PlayerData{Stage: 5, Health: 40})
	s.Require().NoError(err)
	s.store.EXPECT().LoadItem("player").Return(raw, nil)

	data, ok, err := s.sess.Continue()
	s.NoError(err)
	s.True(ok)
	s.Equal(40, data.Health)
	s.Equal(2, s.sess.Stage(), "saved stage is clamped to MaxStages")
}

func TestSessionTestSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func TestNoStore(t *testing.T) {
	sess := session.New(nil)

	err := sess.Save(session.PlayerData{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, session.ErrNoStore))

	_, ok, err := sess.Load()
	assert.False(t, ok)
	assert.True(t, errors.Is(err, session.ErrNoStore))
}
