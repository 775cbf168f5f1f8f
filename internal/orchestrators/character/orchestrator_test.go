package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/codequest-gg/codequest-api/internal/entities"
	"github.com/codequest-gg/codequest-api/internal/errors"
	"github.com/codequest-gg/codequest-api/internal/orchestrators/character"
	contentmock "github.com/codequest-gg/codequest-api/internal/repositories/content/mock"
	playerrepo "github.com/codequest-gg/codequest-api/internal/repositories/player"
	playermock "github.com/codequest-gg/codequest-api/internal/repositories/player/mock"
	questprogress "github.com/codequest-gg/codequest-api/internal/repositories/quest_progress"
	questprogressmock "github.com/codequest-gg/codequest-api/internal/repositories/quest_progress/mock"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockPlayerRepo   *playermock.MockRepository
	mockProgressRepo *questprogressmock.MockRepository
	mockContentRepo  *contentmock.MockRepository
	service          character.Service
	ctx              context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockPlayerRepo = playermock.NewMockRepository(s.ctrl)
	s.mockProgressRepo = questprogressmock.NewMockRepository(s.ctrl)
	s.mockContentRepo = contentmock.NewMockRepository(s.ctrl)

	svc, err := character.NewOrchestrator(&character.Config{
		PlayerRepo:        s.mockPlayerRepo,
		QuestProgressRepo: s.mockProgressRepo,
		ContentRepo:       s.mockContentRepo,
	})
	s.Require().NoError(err)
	s.service = svc
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectPlayer(p *entities.Player) {
	s.mockPlayerRepo.EXPECT().
		Get(s.ctx, playerrepo.GetInput{ID: p.ID}).
		Return(&playerrepo.GetOutput{Player: p}, nil)
}

func (s *OrchestratorTestSuite) expectNoProgress(playerID string) {
	s.mockProgressRepo.EXPECT().
		ListByPlayer(s.ctx, questprogress.ListByPlayerInput{PlayerID: playerID}).
		Return(&questprogress.ListByPlayerOutput{}, nil)
}

func knight() *entities.Character {
	return &entities.Character{ID: "char-knight", LevelRequired: 5}
}

func wizard() *entities.Character {
	return &entities.Character{ID: "char-wizard", LevelRequired: 1, CoinCost: 100}
}

func (s *OrchestratorTestSuite) TestListCharacters() {
	p := entities.NewPlayer("alice")
	p.Level = 5
	p.Coins = 100
	p.SelectedCharacterID = "char-knight"

	s.expectPlayer(p)
	s.mockContentRepo.EXPECT().
		ListCharacters(s.ctx).
		Return([]*entities.Character{knight(), wizard()}, nil)
	s.expectNoProgress("alice")

	out, err := s.service.ListCharacters(s.ctx, &character.ListCharactersInput{PlayerID: "alice"})
	s.Require().NoError(err)
	s.Require().Len(out.Characters, 2)

	s.True(out.Characters[0].Unlocked)
	s.Empty(out.Characters[0].LockReason)
	s.True(out.Characters[0].Selected)

	// Affordable and gated, so reported unlocked even before purchase
	s.True(out.Characters[1].Unlocked)
	s.False(out.Characters[1].Owned)
}

func (s *OrchestratorTestSuite) TestListCharactersLevelGate() {
	p := entities.NewPlayer("alice")
	p.Level = 4

	s.expectPlayer(p)
	s.mockContentRepo.EXPECT().
		ListCharacters(s.ctx).
		Return([]*entities.Character{knight()}, nil)
	s.expectNoProgress("alice")

	out, err := s.service.ListCharacters(s.ctx, &character.ListCharactersInput{PlayerID: "alice"})
	s.Require().NoError(err)
	s.False(out.Characters[0].Unlocked)
	s.Equal("Requires level 5", out.Characters[0].LockReason)
}

func (s *OrchestratorTestSuite) TestSelectFreeCharacter() {
	p := entities.NewPlayer("alice")
	p.Level = 5

	s.mockContentRepo.EXPECT().GetCharacter(s.ctx, "char-knight").Return(knight(), nil)
	s.expectPlayer(p)
	s.expectNoProgress("alice")
	s.mockPlayerRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input playerrepo.SaveInput) (*playerrepo.SaveOutput, error) {
			s.Equal("char-knight", input.Player.SelectedCharacterID)
			return &playerrepo.SaveOutput{}, nil
		})

	out, err := s.service.SelectCharacter(s.ctx, &character.SelectCharacterInput{
		PlayerID:    "alice",
		CharacterID: "char-knight",
	})
	s.Require().NoError(err)
	s.Equal("char-knight", out.Player.SelectedCharacterID)
	s.Equal(50, out.Player.Coins) // selection never debits
}

func (s *OrchestratorTestSuite) TestSelectBelowLevelGate() {
	p := entities.NewPlayer("alice")
	p.Level = 4

	s.mockContentRepo.EXPECT().GetCharacter(s.ctx, "char-knight").Return(knight(), nil)
	s.expectPlayer(p)
	s.expectNoProgress("alice")

	_, err := s.service.SelectCharacter(s.ctx, &character.SelectCharacterInput{
		PlayerID:    "alice",
		CharacterID: "char-knight",
	})
	s.Require().Error(err)
	s.True(errors.IsPermissionDenied(err))
	s.Equal("Requires level 5", errors.GetMessage(err))
}

func (s *OrchestratorTestSuite) TestSelectPricedUnownedRejected() {
	p := entities.NewPlayer("alice")
	p.Coins = 500

	s.mockContentRepo.EXPECT().GetCharacter(s.ctx, "char-wizard").Return(wizard(), nil)
	s.expectPlayer(p)
	s.expectNoProgress("alice")

	_, err := s.service.SelectCharacter(s.ctx, &character.SelectCharacterInput{
		PlayerID:    "alice",
		CharacterID: "char-wizard",
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal("Purchase for 100 coins", errors.GetMessage(err))
}

func (s *OrchestratorTestSuite) TestSelectOwnedPricedCharacter() {
	p := entities.NewPlayer("alice")
	p.UnlockedCharacterIDs = []string{"char-wizard"}
	p.Coins = 0 // owning is enough, affordability is not re-checked

	s.mockContentRepo.EXPECT().GetCharacter(s.ctx, "char-wizard").Return(wizard(), nil)
	s.expectPlayer(p)
	s.expectNoProgress("alice")
	s.mockPlayerRepo.EXPECT().Save(s.ctx, gomock.Any()).Return(&playerrepo.SaveOutput{}, nil)

	out, err := s.service.SelectCharacter(s.ctx, &character.SelectCharacterInput{
		PlayerID:    "alice",
		CharacterID: "char-wizard",
	})
	s.Require().NoError(err)
	s.Equal("char-wizard", out.Player.SelectedCharacterID)
	s.Zero(out.Player.Coins)
}

func (s *OrchestratorTestSuite) TestPurchaseDebitsOnceAndSelects() {
	p := entities.NewPlayer("alice")
	p.Coins = 150

	s.mockContentRepo.EXPECT().GetCharacter(s.ctx, "char-wizard").Return(wizard(), nil)
	s.expectPlayer(p)
	s.expectNoProgress("alice")
	s.mockPlayerRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input playerrepo.SaveInput) (*playerrepo.SaveOutput, error) {
			s.Equal(50, input.Player.Coins)
			s.Equal([]string{"char-wizard"}, input.Player.UnlockedCharacterIDs)
			s.Equal("char-wizard", input.Player.SelectedCharacterID)
			return &playerrepo.SaveOutput{}, nil
		})

	out, err := s.service.PurchaseCharacter(s.ctx, &character.PurchaseCharacterInput{
		PlayerID:    "alice",
		CharacterID: "char-wizard",
	})
	s.Require().NoError(err)
	s.Equal(100, out.CoinsSpent)
	s.Equal(50, out.Player.Coins)
}

func (s *OrchestratorTestSuite) TestPurchaseInsufficientCoins() {
	p := entities.NewPlayer("alice")
	p.Coins = 40

	s.mockContentRepo.EXPECT().GetCharacter(s.ctx, "char-wizard").Return(wizard(), nil)
	s.expectPlayer(p)
	s.expectNoProgress("alice")

	_, err := s.service.PurchaseCharacter(s.ctx, &character.PurchaseCharacterInput{
		PlayerID:    "alice",
		CharacterID: "char-wizard",
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(100, errors.GetMeta(err)["coin_cost"])
}

func (s *OrchestratorTestSuite) TestPurchaseFreeCharacterRejected() {
	s.mockContentRepo.EXPECT().GetCharacter(s.ctx, "char-knight").Return(knight(), nil)

	_, err := s.service.PurchaseCharacter(s.ctx, &character.PurchaseCharacterInput{
		PlayerID:    "alice",
		CharacterID: "char-knight",
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestPurchaseTwiceRejected() {
	p := entities.NewPlayer("alice")
	p.Coins = 500
	p.UnlockedCharacterIDs = []string{"char-wizard"}

	s.mockContentRepo.EXPECT().GetCharacter(s.ctx, "char-wizard").Return(wizard(), nil)
	s.expectPlayer(p)

	_, err := s.service.PurchaseCharacter(s.ctx, &character.PurchaseCharacterInput{
		PlayerID:    "alice",
		CharacterID: "char-wizard",
	})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *OrchestratorTestSuite) TestQuestGateUsesCompletedAt() {
	gated := &entities.Character{ID: "char-rogue", QuestsRequired: []string{"quest-stealth"}}
	p := entities.NewPlayer("alice")

	// A progress record without completedAt does not satisfy the gate
	s.mockContentRepo.EXPECT().GetCharacter(s.ctx, "char-rogue").Return(gated, nil)
	s.expectPlayer(p)
	s.mockProgressRepo.EXPECT().
		ListByPlayer(s.ctx, questprogress.ListByPlayerInput{PlayerID: "alice"}).
		Return(&questprogress.ListByPlayerOutput{Records: []*entities.QuestProgress{
			{PlayerID: "alice", QuestID: "quest-stealth", Attempts: 3},
		}}, nil)

	_, err := s.service.SelectCharacter(s.ctx, &character.SelectCharacterInput{
		PlayerID:    "alice",
		CharacterID: "char-rogue",
	})
	s.Require().Error(err)
	s.True(errors.IsPermissionDenied(err))

	// With completedAt set the gate passes
	now := time.Now()
	s.mockContentRepo.EXPECT().GetCharacter(s.ctx, "char-rogue").Return(gated, nil)
	s.expectPlayer(p)
	s.mockProgressRepo.EXPECT().
		ListByPlayer(s.ctx, questprogress.ListByPlayerInput{PlayerID: "alice"}).
		Return(&questprogress.ListByPlayerOutput{Records: []*entities.QuestProgress{
			{PlayerID: "alice", QuestID: "quest-stealth", Attempts: 3, CompletedAt: &now},
		}}, nil)
	s.mockPlayerRepo.EXPECT().Save(s.ctx, gomock.Any()).Return(&playerrepo.SaveOutput{}, nil)

	_, err = s.service.SelectCharacter(s.ctx, &character.SelectCharacterInput{
		PlayerID:    "alice",
		CharacterID: "char-rogue",
	})
	s.NoError(err)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
