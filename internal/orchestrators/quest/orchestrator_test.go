package quest_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/codequest-gg/codequest-api/internal/entities"
	"github.com/codequest-gg/codequest-api/internal/errors"
	"github.com/codequest-gg/codequest-api/internal/orchestrators/quest"
	"github.com/codequest-gg/codequest-api/internal/pkg/clock"
	contentmock "github.com/codequest-gg/codequest-api/internal/repositories/content/mock"
	playerrepo "github.com/codequest-gg/codequest-api/internal/repositories/player"
	playermock "github.com/codequest-gg/codequest-api/internal/repositories/player/mock"
	questprogress "github.com/codequest-gg/codequest-api/internal/repositories/quest_progress"
	questprogressmock "github.com/codequest-gg/codequest-api/internal/repositories/quest_progress/mock"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockPlayerRepo   *playermock.MockRepository
	mockProgressRepo *questprogressmock.MockRepository
	mockContentRepo  *contentmock.MockRepository
	service          quest.Service
	ctx              context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockPlayerRepo = playermock.NewMockRepository(s.ctrl)
	s.mockProgressRepo = questprogressmock.NewMockRepository(s.ctrl)
	s.mockContentRepo = contentmock.NewMockRepository(s.ctrl)

	svc, err := quest.NewOrchestrator(&quest.Config{
		PlayerRepo:        s.mockPlayerRepo,
		QuestProgressRepo: s.mockProgressRepo,
		ContentRepo:       s.mockContentRepo,
		Clock:             clock.NewFixed(testNow),
	})
	s.Require().NoError(err)
	s.service = svc
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func testQuest() *entities.Quest {
	return &entities.Quest{
		ID:               "quest-loops-1",
		Title:            "Round and Round",
		XPReward:         80,
		CoinReward:       40,
		LevelRequirement: 1,
	}
}

func (s *OrchestratorTestSuite) TestCompleteQuestFirstCompletion() {
	q := testQuest()
	p := entities.NewPlayer("alice")
	p.CurrentXP = 50 // 50 + 80 = 130 crosses the level-1 threshold of 100

	s.mockContentRepo.EXPECT().GetQuest(s.ctx, q.ID).Return(q, nil)
	s.mockPlayerRepo.EXPECT().
		Get(s.ctx, playerrepo.GetInput{ID: "alice"}).
		Return(&playerrepo.GetOutput{Player: p}, nil)
	s.mockProgressRepo.EXPECT().
		Get(s.ctx, questprogress.GetInput{PlayerID: "alice", QuestID: q.ID}).
		Return(nil, errors.NotFoundf("no record"))

	var savedProgress *entities.QuestProgress
	s.mockProgressRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input questprogress.SaveInput) (*questprogress.SaveOutput, error) {
			savedProgress = input.Progress
			return &questprogress.SaveOutput{}, nil
		})
	s.mockPlayerRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		Return(&playerrepo.SaveOutput{}, nil)

	out, err := s.service.CompleteQuest(s.ctx, &quest.CompleteQuestInput{
		PlayerID:    "alice",
		QuestID:     q.ID,
		ActionCount: 18,
	})
	s.Require().NoError(err)

	s.True(out.IsFirstCompletion)
	s.Equal(3, out.StarsEarned) // 18 <= default 3-star threshold of 20
	s.Equal(80, out.XPGained)
	s.Equal(40, out.CoinsGained)
	s.True(out.LeveledUp)
	s.Equal(2, out.NewLevel)
	s.Equal(30, out.Player.CurrentXP) // 130 - 100
	s.Equal(90, out.Player.Coins)    // 50 + 40

	// Level-up stat growth
	s.Equal(110, out.Player.MaxHP)
	s.Equal(110, out.Player.HP)
	s.Equal(12, out.Player.Attack)
	s.Equal(6, out.Player.Defense)

	s.Require().NotNil(savedProgress)
	s.Equal(1, savedProgress.Attempts)
	s.Equal(3, savedProgress.StarsEarned)
	s.Require().NotNil(savedProgress.BestActionCount)
	s.Equal(18, *savedProgress.BestActionCount)
	s.Require().NotNil(savedProgress.CompletedAt)
	s.Equal(testNow, *savedProgress.CompletedAt)
}

func (s *OrchestratorTestSuite) TestCompleteQuestRepeatNoRewards() {
	q := testQuest()
	p := entities.NewPlayer("alice")

	completed := testNow.Add(-24 * time.Hour)
	best := 30
	existing := &entities.QuestProgress{
		PlayerID:        "alice",
		QuestID:         q.ID,
		StarsEarned:     2,
		BestActionCount: &best,
		Attempts:        1,
		CompletedAt:     &completed,
	}

	s.mockContentRepo.EXPECT().GetQuest(s.ctx, q.ID).Return(q, nil)
	s.mockPlayerRepo.EXPECT().
		Get(s.ctx, playerrepo.GetInput{ID: "alice"}).
		Return(&playerrepo.GetOutput{Player: p}, nil)
	s.mockProgressRepo.EXPECT().
		Get(s.ctx, questprogress.GetInput{PlayerID: "alice", QuestID: q.ID}).
		Return(&questprogress.GetOutput{Progress: existing}, nil)

	var savedProgress *entities.QuestProgress
	s.mockProgressRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input questprogress.SaveInput) (*questprogress.SaveOutput, error) {
			savedProgress = input.Progress
			return &questprogress.SaveOutput{}, nil
		})
	// No player save: repeat completions grant nothing

	out, err := s.service.CompleteQuest(s.ctx, &quest.CompleteQuestInput{
		PlayerID:    "alice",
		QuestID:     q.ID,
		ActionCount: 15,
	})
	s.Require().NoError(err)

	s.False(out.IsFirstCompletion)
	s.Equal(3, out.StarsEarned)
	s.Zero(out.XPGained)
	s.Zero(out.CoinsGained)
	s.False(out.LeveledUp)

	// Stars rose, best fell, attempts grew, completedAt untouched
	s.Equal(3, savedProgress.StarsEarned)
	s.Equal(15, *savedProgress.BestActionCount)
	s.Equal(2, savedProgress.Attempts)
	s.Equal(completed, *savedProgress.CompletedAt)
}

func (s *OrchestratorTestSuite) TestCompleteQuestWorseAttemptKeepsBest() {
	q := testQuest()
	p := entities.NewPlayer("alice")

	completed := testNow.Add(-time.Hour)
	best := 15
	existing := &entities.QuestProgress{
		PlayerID:        "alice",
		QuestID:         q.ID,
		StarsEarned:     3,
		BestActionCount: &best,
		Attempts:        2,
		CompletedAt:     &completed,
	}

	s.mockContentRepo.EXPECT().GetQuest(s.ctx, q.ID).Return(q, nil)
	s.mockPlayerRepo.EXPECT().
		Get(s.ctx, playerrepo.GetInput{ID: "alice"}).
		Return(&playerrepo.GetOutput{Player: p}, nil)
	s.mockProgressRepo.EXPECT().
		Get(s.ctx, questprogress.GetInput{PlayerID: "alice", QuestID: q.ID}).
		Return(&questprogress.GetOutput{Progress: existing}, nil)

	var savedProgress *entities.QuestProgress
	s.mockProgressRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input questprogress.SaveInput) (*questprogress.SaveOutput, error) {
			savedProgress = input.Progress
			return &questprogress.SaveOutput{}, nil
		})

	out, err := s.service.CompleteQuest(s.ctx, &quest.CompleteQuestInput{
		PlayerID:    "alice",
		QuestID:     q.ID,
		ActionCount: 80,
	})
	s.Require().NoError(err)

	s.Equal(1, out.StarsEarned)
	s.Equal(3, savedProgress.StarsEarned)      // never lowered
	s.Equal(15, *savedProgress.BestActionCount) // never raised
	s.Equal(3, savedProgress.Attempts)
}

func (s *OrchestratorTestSuite) TestCompleteQuestUnknownQuest() {
	s.mockContentRepo.EXPECT().
		GetQuest(s.ctx, "quest-missing").
		Return(nil, errors.NotFoundf("quest quest-missing not found"))

	_, err := s.service.CompleteQuest(s.ctx, &quest.CompleteQuestInput{
		PlayerID:    "alice",
		QuestID:     "quest-missing",
		ActionCount: 10,
	})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestGetQuestMap() {
	p := entities.NewPlayer("alice")
	p.Level = 2

	quests := []*entities.Quest{
		{ID: "quest-a", LevelRequirement: 1},
		{ID: "quest-b", LevelRequirement: 1, PrerequisiteQuests: []string{"quest-a"}},
		{ID: "quest-c", LevelRequirement: 5, PrerequisiteQuests: []string{"quest-a"}},
	}

	completedAt := testNow
	records := []*entities.QuestProgress{
		{PlayerID: "alice", QuestID: "quest-a", StarsEarned: 2, Attempts: 1, CompletedAt: &completedAt},
	}

	s.mockPlayerRepo.EXPECT().
		Get(s.ctx, playerrepo.GetInput{ID: "alice"}).
		Return(&playerrepo.GetOutput{Player: p}, nil)
	s.mockContentRepo.EXPECT().ListQuests(s.ctx).Return(quests, nil)
	s.mockProgressRepo.EXPECT().
		ListByPlayer(s.ctx, questprogress.ListByPlayerInput{PlayerID: "alice"}).
		Return(&questprogress.ListByPlayerOutput{Records: records}, nil)

	out, err := s.service.GetQuestMap(s.ctx, &quest.GetQuestMapInput{PlayerID: "alice"})
	s.Require().NoError(err)

	s.Require().Len(out.Nodes, 3)
	s.Equal(entities.QuestCompleted, out.Nodes[0].Status)
	s.Equal(entities.QuestUnlocked, out.Nodes[1].Status)
	s.Equal(entities.QuestLocked, out.Nodes[2].Status) // level gate

	s.Require().Len(out.Edges, 2)
	s.Equal("quest-a", out.Edges[0].FromQuestID)
	s.Equal("quest-b", out.Edges[0].ToQuestID)
}

func (s *OrchestratorTestSuite) TestGetQuestDetail() {
	p := entities.NewPlayer("alice")
	q := testQuest()

	s.mockContentRepo.EXPECT().GetQuest(s.ctx, q.ID).Return(q, nil)
	s.mockPlayerRepo.EXPECT().
		Get(s.ctx, playerrepo.GetInput{ID: "alice"}).
		Return(&playerrepo.GetOutput{Player: p}, nil)
	s.mockProgressRepo.EXPECT().
		ListByPlayer(s.ctx, questprogress.ListByPlayerInput{PlayerID: "alice"}).
		Return(&questprogress.ListByPlayerOutput{}, nil)

	out, err := s.service.GetQuest(s.ctx, &quest.GetQuestInput{PlayerID: "alice", QuestID: q.ID})
	s.Require().NoError(err)
	s.Equal(entities.QuestUnlocked, out.Node.Status)
	s.Nil(out.Node.Progress)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
