// Package content provides read-only access to the game's static
// definitions: quests, characters, enemies, spawn points, items, and
// chests. Definitions are authored offline and loaded once at startup,
// so lookups skip the Input/Output struct convention the mutable
// repositories use.
package content

//go:generate mockgen -destination=mock/mock_repository.go -package=contentmock -source=repository.go

import (
	"context"

	"github.com/codequest-gg/codequest-api/internal/entities"
)

// Repository defines lookups over the static content bundle
type Repository interface {
	GetQuest(ctx context.Context, questID string) (*entities.Quest, error)
	ListQuests(ctx context.Context) ([]*entities.Quest, error)

	GetCharacter(ctx context.Context, characterID string) (*entities.Character, error)
	ListCharacters(ctx context.Context) ([]*entities.Character, error)

	GetEnemy(ctx context.Context, enemyID string) (*entities.Enemy, error)
	GetEnemySpawn(ctx context.Context, spawnID string) (*entities.EnemySpawn, error)

	GetItem(ctx context.Context, itemID string) (*entities.Item, error)

	GetChest(ctx context.Context, chestID string) (*entities.Chest, error)
}
