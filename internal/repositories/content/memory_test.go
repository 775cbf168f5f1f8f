package content_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codequest-gg/codequest-api/internal/entities"
	"github.com/codequest-gg/codequest-api/internal/errors"
	"github.com/codequest-gg/codequest-api/internal/repositories/content"
)

func newTestRepo(t *testing.T) content.Repository {
	t.Helper()

	repo, err := content.NewMemory(&content.MemoryConfig{
		Quests: []*entities.Quest{
			{ID: "quest-variables-1", Title: "First Steps"},
			{ID: "quest-loops-1", Title: "Round and Round", PrerequisiteQuests: []string{"quest-variables-1"}},
		},
		Characters: []*entities.Character{
			{ID: "char-wizard", SortOrder: 2},
			{ID: "char-knight", SortOrder: 1},
		},
		Enemies: []*entities.Enemy{
			{ID: "enemy-slime", Name: "Slime"},
		},
		Spawns: []*entities.EnemySpawn{
			{ID: "spawn-slime-meadow", EnemyID: "enemy-slime", LevelMin: 1, LevelMax: 3},
		},
		Items: []*entities.Item{
			{ID: "potion-small", Name: "Small Potion", ItemType: entities.ItemTypeConsumable},
		},
		Chests: []*entities.Chest{
			{ID: "chest-meadow-1", CoinAmount: 15},
		},
	})
	require.NoError(t, err)
	return repo
}

func TestMemoryLookups(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	quest, err := repo.GetQuest(ctx, "quest-loops-1")
	require.NoError(t, err)
	assert.Equal(t, "Round and Round", quest.Title)

	enemy, err := repo.GetEnemy(ctx, "enemy-slime")
	require.NoError(t, err)
	assert.Equal(t, "Slime", enemy.Name)

	spawn, err := repo.GetEnemySpawn(ctx, "spawn-slime-meadow")
	require.NoError(t, err)
	assert.Equal(t, "enemy-slime", spawn.EnemyID)

	item, err := repo.GetItem(ctx, "potion-small")
	require.NoError(t, err)
	assert.Equal(t, entities.ItemTypeConsumable, item.ItemType)

	chest, err := repo.GetChest(ctx, "chest-meadow-1")
	require.NoError(t, err)
	assert.Equal(t, 15, chest.CoinAmount)
}

func TestMemoryMissingReturnsNotFound(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.GetQuest(ctx, "quest-missing")
	assert.True(t, errors.IsNotFound(err))

	_, err = repo.GetCharacter(ctx, "char-missing")
	assert.True(t, errors.IsNotFound(err))
}

func TestMemoryListCharactersSorted(t *testing.T) {
	repo := newTestRepo(t)

	chars, err := repo.ListCharacters(context.Background())
	require.NoError(t, err)
	require.Len(t, chars, 2)
	assert.Equal(t, "char-knight", chars[0].ID)
	assert.Equal(t, "char-wizard", chars[1].ID)
}

func TestMemoryRejectsDuplicateIDs(t *testing.T) {
	_, err := content.NewMemory(&content.MemoryConfig{
		Quests: []*entities.Quest{
			{ID: "quest-dupe"},
			{ID: "quest-dupe"},
		},
	})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestMemoryRejectsDanglingSpawn(t *testing.T) {
	_, err := content.NewMemory(&content.MemoryConfig{
		Spawns: []*entities.EnemySpawn{
			{ID: "spawn-1", EnemyID: "enemy-missing"},
		},
	})
	assert.True(t, errors.IsInvalidArgument(err))
}
