package httpapi_test

import (
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/codequest-gg/codequest-api/internal/handlers/httpapi"
	charactermock "github.com/codequest-gg/codequest-api/internal/orchestrators/character/mock"
	chestmock "github.com/codequest-gg/codequest-api/internal/orchestrators/chest/mock"
	combatmock "github.com/codequest-gg/codequest-api/internal/orchestrators/combat/mock"
	inventorymock "github.com/codequest-gg/codequest-api/internal/orchestrators/inventory/mock"
	progressionmock "github.com/codequest-gg/codequest-api/internal/orchestrators/progression/mock"
	questmock "github.com/codequest-gg/codequest-api/internal/orchestrators/quest/mock"
)

type handlerMocks struct {
	progression *progressionmock.MockService
	quest       *questmock.MockService
	character   *charactermock.MockService
	combat      *combatmock.MockService
	chest       *chestmock.MockService
	inventory   *inventorymock.MockService
}

func newTestHandler(t *testing.T, ctrl *gomock.Controller) (chi.Router, *handlerMocks) {
	t.Helper()

	mocks := &handlerMocks{
		progression: progressionmock.NewMockService(ctrl),
		quest:       questmock.NewMockService(ctrl),
		character:   charactermock.NewMockService(ctrl),
		combat:      combatmock.NewMockService(ctrl),
		chest:       chestmock.NewMockService(ctrl),
		inventory:   inventorymock.NewMockService(ctrl),
	}

	handler, err := httpapi.NewHandler(&httpapi.Config{
		ProgressionService: mocks.progression,
		QuestService:       mocks.quest,
		CharacterService:   mocks.character,
		CombatService:      mocks.combat,
		ChestService:       mocks.chest,
		InventoryService:   mocks.inventory,
	})
	require.NoError(t, err)

	return handler.Routes(), mocks
}

func TestConfigValidate(t *testing.T) {
	_, err := httpapi.NewHandler(&httpapi.Config{})
	assert.Error(t, err)
}
