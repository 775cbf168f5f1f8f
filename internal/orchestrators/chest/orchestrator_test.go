package chest_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/codequest-gg/codequest-api/internal/entities"
	"github.com/codequest-gg/codequest-api/internal/errors"
	"github.com/codequest-gg/codequest-api/internal/orchestrators/chest"
	"github.com/codequest-gg/codequest-api/internal/pkg/clock"
	"github.com/codequest-gg/codequest-api/internal/pkg/rng"
	chestprogress "github.com/codequest-gg/codequest-api/internal/repositories/chest_progress"
	chestprogressmock "github.com/codequest-gg/codequest-api/internal/repositories/chest_progress/mock"
	contentmock "github.com/codequest-gg/codequest-api/internal/repositories/content/mock"
	inventoryrepo "github.com/codequest-gg/codequest-api/internal/repositories/inventory"
	inventorymock "github.com/codequest-gg/codequest-api/internal/repositories/inventory/mock"
	playerrepo "github.com/codequest-gg/codequest-api/internal/repositories/player"
	playermock "github.com/codequest-gg/codequest-api/internal/repositories/player/mock"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockPlayerRepo    *playermock.MockRepository
	mockInventoryRepo *inventorymock.MockRepository
	mockProgressRepo  *chestprogressmock.MockRepository
	mockContentRepo   *contentmock.MockRepository
	roller            *rng.Script
	ctx               context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockPlayerRepo = playermock.NewMockRepository(s.ctrl)
	s.mockInventoryRepo = inventorymock.NewMockRepository(s.ctrl)
	s.mockProgressRepo = chestprogressmock.NewMockRepository(s.ctrl)
	s.mockContentRepo = contentmock.NewMockRepository(s.ctrl)
	s.roller = &rng.Script{}
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) newService() chest.Service {
	svc, err := chest.NewOrchestrator(&chest.Config{
		PlayerRepo:        s.mockPlayerRepo,
		InventoryRepo:     s.mockInventoryRepo,
		ChestProgressRepo: s.mockProgressRepo,
		ContentRepo:       s.mockContentRepo,
		Roller:            s.roller,
		Clock:             clock.NewFixed(testNow),
	})
	s.Require().NoError(err)
	return svc
}

func simpleChest() *entities.Chest {
	return &entities.Chest{
		ID:         "chest-meadow-1",
		ZoneID:     "zone-meadow",
		ChestType:  "wooden",
		CoinAmount: 15,
		LootTable: []entities.LootEntry{
			{ItemID: "potion-small", Chance: 1.0, Quantity: 2},
		},
	}
}

func (s *OrchestratorTestSuite) expectPlayer(p *entities.Player) {
	s.mockPlayerRepo.EXPECT().
		Get(s.ctx, playerrepo.GetInput{ID: p.ID}).
		Return(&playerrepo.GetOutput{Player: p}, nil)
}

func (s *OrchestratorTestSuite) TestOpenChestGrantsCoinsAndLoot() {
	p := entities.NewPlayer("alice")
	c := simpleChest()

	s.roller.Floats = []float64{0.5} // 0.5 <= 1.0 always drops

	s.mockContentRepo.EXPECT().GetChest(s.ctx, c.ID).Return(c, nil)
	s.expectPlayer(p)
	s.mockPlayerRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input playerrepo.SaveInput) (*playerrepo.SaveOutput, error) {
			s.Equal(65, input.Player.Coins)
			return &playerrepo.SaveOutput{}, nil
		})
	s.mockContentRepo.EXPECT().
		GetItem(s.ctx, "potion-small").
		Return(&entities.Item{ID: "potion-small", Name: "Small Potion", Rarity: "common"}, nil)
	s.mockInventoryRepo.EXPECT().
		Get(s.ctx, inventoryrepo.GetInput{PlayerID: "alice", ItemID: "potion-small"}).
		Return(&inventoryrepo.GetOutput{Entry: &entities.InventoryEntry{
			PlayerID: "alice",
			ItemID:   "potion-small",
			Quantity: 1,
		}}, nil)
	s.mockInventoryRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input inventoryrepo.SaveInput) (*inventoryrepo.SaveOutput, error) {
			s.Equal(3, input.Entry.Quantity) // merged into the existing stack
			return &inventoryrepo.SaveOutput{}, nil
		})

	out, err := s.newService().OpenChest(s.ctx, &chest.OpenChestInput{
		PlayerID: "alice",
		ChestID:  c.ID,
	})
	s.Require().NoError(err)

	s.Equal(15, out.CoinsGained)
	s.Require().Len(out.Loot, 1)
	s.Equal(2, out.Loot[0].Quantity)
	s.Empty(out.KeyConsumed)
}

func (s *OrchestratorTestSuite) TestOpenOneTimeChestTwiceRejected() {
	p := entities.NewPlayer("alice")
	c := simpleChest()
	c.IsOneTime = true

	s.mockContentRepo.EXPECT().GetChest(s.ctx, c.ID).Return(c, nil)
	s.expectPlayer(p)
	s.mockProgressRepo.EXPECT().
		Get(s.ctx, chestprogress.GetInput{PlayerID: "alice", ChestID: c.ID}).
		Return(&chestprogress.GetOutput{Progress: &entities.ChestProgress{
			PlayerID: "alice",
			ChestID:  c.ID,
			OpenedAt: testNow.Add(-time.Hour),
		}}, nil)

	_, err := s.newService().OpenChest(s.ctx, &chest.OpenChestInput{
		PlayerID: "alice",
		ChestID:  c.ID,
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestOpenOneTimeChestRecordsOpen() {
	p := entities.NewPlayer("alice")
	c := simpleChest()
	c.IsOneTime = true
	c.LootTable = nil

	s.mockContentRepo.EXPECT().GetChest(s.ctx, c.ID).Return(c, nil)
	s.expectPlayer(p)
	s.mockProgressRepo.EXPECT().
		Get(s.ctx, chestprogress.GetInput{PlayerID: "alice", ChestID: c.ID}).
		Return(nil, errors.NotFoundf("not opened"))
	s.mockPlayerRepo.EXPECT().Save(s.ctx, gomock.Any()).Return(&playerrepo.SaveOutput{}, nil)
	s.mockProgressRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input chestprogress.SaveInput) (*chestprogress.SaveOutput, error) {
			s.Equal(testNow, input.Progress.OpenedAt)
			return &chestprogress.SaveOutput{}, nil
		})

	out, err := s.newService().OpenChest(s.ctx, &chest.OpenChestInput{
		PlayerID: "alice",
		ChestID:  c.ID,
	})
	s.Require().NoError(err)
	s.Equal(15, out.CoinsGained)
	s.Empty(out.Loot)
}

func (s *OrchestratorTestSuite) TestOpenLockedChestConsumesKey() {
	p := entities.NewPlayer("alice")
	c := simpleChest()
	c.IsLocked = true
	c.RequiredKeyItemID = "rusty-key"
	c.LootTable = nil

	s.mockContentRepo.EXPECT().GetChest(s.ctx, c.ID).Return(c, nil)
	s.expectPlayer(p)
	s.mockInventoryRepo.EXPECT().
		Get(s.ctx, inventoryrepo.GetInput{PlayerID: "alice", ItemID: "rusty-key"}).
		Return(&inventoryrepo.GetOutput{Entry: &entities.InventoryEntry{
			PlayerID: "alice",
			ItemID:   "rusty-key",
			Quantity: 1,
		}}, nil)
	s.mockInventoryRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input inventoryrepo.SaveInput) (*inventoryrepo.SaveOutput, error) {
			s.Equal(0, input.Entry.Quantity) // stack drains to zero
			return &inventoryrepo.SaveOutput{}, nil
		})
	s.mockPlayerRepo.EXPECT().Save(s.ctx, gomock.Any()).Return(&playerrepo.SaveOutput{}, nil)

	out, err := s.newService().OpenChest(s.ctx, &chest.OpenChestInput{
		PlayerID: "alice",
		ChestID:  c.ID,
	})
	s.Require().NoError(err)
	s.Equal("rusty-key", out.KeyConsumed)
}

func (s *OrchestratorTestSuite) TestOpenLockedChestWithoutKeyRejected() {
	p := entities.NewPlayer("alice")
	c := simpleChest()
	c.IsLocked = true
	c.RequiredKeyItemID = "rusty-key"

	s.mockContentRepo.EXPECT().GetChest(s.ctx, c.ID).Return(c, nil)
	s.expectPlayer(p)
	s.mockInventoryRepo.EXPECT().
		Get(s.ctx, inventoryrepo.GetInput{PlayerID: "alice", ItemID: "rusty-key"}).
		Return(nil, errors.NotFoundf("no stack"))

	_, err := s.newService().OpenChest(s.ctx, &chest.OpenChestInput{
		PlayerID: "alice",
		ChestID:  c.ID,
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal("rusty-key", errors.GetMeta(err)["required_key_item_id"])
}

func (s *OrchestratorTestSuite) TestGetChestReportsOpenState() {
	c := simpleChest()
	c.IsOneTime = true

	s.mockContentRepo.EXPECT().GetChest(s.ctx, c.ID).Return(c, nil)
	s.mockProgressRepo.EXPECT().
		Get(s.ctx, chestprogress.GetInput{PlayerID: "alice", ChestID: c.ID}).
		Return(&chestprogress.GetOutput{Progress: &entities.ChestProgress{
			PlayerID: "alice",
			ChestID:  c.ID,
			OpenedAt: testNow,
		}}, nil)

	out, err := s.newService().GetChest(s.ctx, &chest.GetChestInput{
		PlayerID: "alice",
		ChestID:  c.ID,
	})
	s.Require().NoError(err)
	s.True(out.AlreadyOpened)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
