package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/codequest-gg/codequest-api/internal/entities"
	"github.com/codequest-gg/codequest-api/internal/errors"
	"github.com/codequest-gg/codequest-api/internal/handlers/httpapi"
	"github.com/codequest-gg/codequest-api/internal/orchestrators/combat"
)

type CombatHandlerTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	mocks  *handlerMocks
	router chi.Router
}

func (s *CombatHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.router, s.mocks = newTestHandler(s.T(), s.ctrl)
}

func (s *CombatHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CombatHandlerTestSuite) testSession() *entities.CombatSession {
	return &entities.CombatSession{
		ID:       "session-1",
		PlayerID: "player-1",
		SpawnID:  "spawn-slime-meadow",
		Enemy: entities.ScaledEnemy{
			EnemyID: "enemy-slime",
			Name:    "Slime",
			Level:   2,
			HP:      34,
			MaxHP:   34,
		},
		Turn: 1,
	}
}

func (s *CombatHandlerTestSuite) TestStartCombat() {
	s.mocks.combat.EXPECT().
		StartCombat(gomock.Any(), &combat.StartCombatInput{
			PlayerID: "player-1",
			SpawnID:  "spawn-slime-meadow",
		}).
		Return(&combat.StartCombatOutput{
			Session:  s.testSession(),
			PlayerHP: 100,
			MaxHP:    100,
		}, nil)

	body := strings.NewReader(`{"spawn_id": "spawn-slime-meadow"}`)
	req := httptest.NewRequest(http.MethodPost, "/players/player-1/combat/start", body)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusCreated, w.Code)

	var resp httpapi.StartCombatResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
	s.Equal("session-1", resp.Session.ID)
	s.Equal("Slime", resp.Session.Enemy.Name)
	s.Equal(100, resp.PlayerHP)
}

func (s *CombatHandlerTestSuite) TestStartCombatAlreadyActive() {
	s.mocks.combat.EXPECT().
		StartCombat(gomock.Any(), gomock.Any()).
		Return(nil, errors.AlreadyExistsf("player %s already has an active combat session", "player-1"))

	body := strings.NewReader(`{"spawn_id": "spawn-slime-meadow"}`)
	req := httptest.NewRequest(http.MethodPost, "/players/player-1/combat/start", body)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusConflict, w.Code)
}

func (s *CombatHandlerTestSuite) TestGetCombat() {
	s.mocks.combat.EXPECT().
		GetCombat(gomock.Any(), &combat.GetCombatInput{PlayerID: "player-1"}).
		Return(&combat.GetCombatOutput{Session: s.testSession()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/players/player-1/combat", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var resp httpapi.GetCombatResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
	s.Equal(1, resp.Session.Turn)
}

func (s *CombatHandlerTestSuite) TestGetCombatNoSession() {
	s.mocks.combat.EXPECT().
		GetCombat(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFoundf("player %s has no active combat session", "player-1"))

	req := httptest.NewRequest(http.MethodGet, "/players/player-1/combat", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *CombatHandlerTestSuite) TestResolveAttack() {
	s.mocks.combat.EXPECT().
		ResolveAction(gomock.Any(), &combat.ResolveActionInput{
			PlayerID: "player-1",
			Action:   entities.ActionAttack,
		}).
		Return(&combat.ResolveActionOutput{
			PlayerMessage: "You hit Slime for 9 damage",
			EnemyMessage:  "Slime hits you for 6 damage",
			PlayerDamage:  &entities.DamageInfo{Amount: 9},
			EnemyDamage:   &entities.DamageInfo{Amount: 6},
			PlayerHP:      94,
			EnemyHP:       25,
		}, nil)

	body := strings.NewReader(`{"action": "attack"}`)
	req := httptest.NewRequest(http.MethodPost, "/players/player-1/combat/action", body)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var resp httpapi.ResolveActionResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
	s.Equal(9, resp.PlayerDamage.Amount)
	s.Equal(94, resp.PlayerHP)
	s.False(resp.Ended)
}

func (s *CombatHandlerTestSuite) TestResolveVictory() {
	s.mocks.combat.EXPECT().
		ResolveAction(gomock.Any(), gomock.Any()).
		Return(&combat.ResolveActionOutput{
			PlayerMessage: "You defeated Slime!",
			PlayerDamage:  &entities.DamageInfo{Amount: 13, IsCritical: true},
			PlayerHP:      94,
			EnemyHP:       0,
			Ended:         true,
			Outcome:       entities.OutcomeVictory,
			XPGained:      26,
			CoinsGained:   13,
			Loot: []*entities.LootDrop{
				{ItemID: "item-slime-gel", Name: "Slime Gel", Quantity: 1},
			},
		}, nil)

	body := strings.NewReader(`{"action": "attack"}`)
	req := httptest.NewRequest(http.MethodPost, "/players/player-1/combat/action", body)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var resp httpapi.ResolveActionResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
	s.True(resp.Ended)
	s.Equal(entities.OutcomeVictory, resp.Outcome)
	s.Equal(26, resp.XPGained)
	s.Require().Len(resp.Loot, 1)
	s.Equal("item-slime-gel", resp.Loot[0].ItemID)
}

func (s *CombatHandlerTestSuite) TestResolveUnknownAction() {
	s.mocks.combat.EXPECT().
		ResolveAction(gomock.Any(), &combat.ResolveActionInput{
			PlayerID: "player-1",
			Action:   entities.CombatAction("dance"),
		}).
		Return(nil, errors.InvalidArgumentf("unknown combat action %q", "dance"))

	body := strings.NewReader(`{"action": "dance"}`)
	req := httptest.NewRequest(http.MethodPost, "/players/player-1/combat/action", body)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *CombatHandlerTestSuite) TestResolveUseItem() {
	s.mocks.combat.EXPECT().
		ResolveAction(gomock.Any(), &combat.ResolveActionInput{
			PlayerID: "player-1",
			Action:   entities.ActionUseItem,
			ItemID:   "item-potion",
		}).
		Return(&combat.ResolveActionOutput{
			PlayerMessage: "You used Potion and recovered 30 HP",
			EnemyMessage:  "Slime hits you for 6 damage",
			EnemyDamage:   &entities.DamageInfo{Amount: 6},
			PlayerHP:      74,
			EnemyHP:       34,
		}, nil)

	body := strings.NewReader(`{"action": "useItem", "item_id": "item-potion"}`)
	req := httptest.NewRequest(http.MethodPost, "/players/player-1/combat/action", body)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
}

func TestCombatHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CombatHandlerTestSuite))
}
