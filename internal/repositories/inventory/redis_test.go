package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/codequest-gg/codequest-api/internal/entities"
	"github.com/codequest-gg/codequest-api/internal/errors"
	"github.com/codequest-gg/codequest-api/internal/repositories/inventory"
	"github.com/codequest-gg/codequest-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    inventory.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := inventory.NewRedis(&inventory.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) save(itemID string, qty int) {
	s.T().Helper()
	_, err := s.repo.Save(s.ctx, inventory.SaveInput{Entry: &entities.InventoryEntry{
		PlayerID: "player-1",
		ItemID:   itemID,
		Quantity: qty,
	}})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGet() {
	s.save("potion-small", 3)

	out, err := s.repo.Get(s.ctx, inventory.GetInput{PlayerID: "player-1", ItemID: "potion-small"})
	s.Require().NoError(err)
	s.Equal(3, out.Entry.Quantity)
}

func (s *RedisRepositoryTestSuite) TestSaveZeroQuantityRemoves() {
	s.save("potion-small", 2)
	s.save("potion-small", 0)

	_, err := s.repo.Get(s.ctx, inventory.GetInput{PlayerID: "player-1", ItemID: "potion-small"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	out, err := s.repo.ListByPlayer(s.ctx, inventory.ListByPlayerInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Empty(out.Entries)
}

func (s *RedisRepositoryTestSuite) TestRemove() {
	s.save("rusty-key", 1)

	_, err := s.repo.Remove(s.ctx, inventory.RemoveInput{PlayerID: "player-1", ItemID: "rusty-key"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, inventory.GetInput{PlayerID: "player-1", ItemID: "rusty-key"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListByPlayer() {
	s.save("potion-small", 3)
	s.save("wooden-sword", 1)

	out, err := s.repo.ListByPlayer(s.ctx, inventory.ListByPlayerInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Len(out.Entries, 2)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
