package content

import (
	"context"
	"sort"

	"github.com/codequest-gg/codequest-api/internal/entities"
	"github.com/codequest-gg/codequest-api/internal/errors"
)

// MemoryConfig carries the loaded content bundle
type MemoryConfig struct {
	Quests     []*entities.Quest
	Characters []*entities.Character
	Enemies    []*entities.Enemy
	Spawns     []*entities.EnemySpawn
	Items      []*entities.Item
	Chests     []*entities.Chest
}

type memoryRepository struct {
	quests      map[string]*entities.Quest
	questOrder  []*entities.Quest
	characters  map[string]*entities.Character
	charOrder   []*entities.Character
	enemies     map[string]*entities.Enemy
	spawns      map[string]*entities.EnemySpawn
	items       map[string]*entities.Item
	chests      map[string]*entities.Chest
}

// NewMemory builds an in-memory content repository from a loaded bundle.
// Duplicate IDs within a section are rejected.
func NewMemory(cfg *MemoryConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}

	r := &memoryRepository{
		quests:     make(map[string]*entities.Quest, len(cfg.Quests)),
		characters: make(map[string]*entities.Character, len(cfg.Characters)),
		enemies:    make(map[string]*entities.Enemy, len(cfg.Enemies)),
		spawns:     make(map[string]*entities.EnemySpawn, len(cfg.Spawns)),
		items:      make(map[string]*entities.Item, len(cfg.Items)),
		chests:     make(map[string]*entities.Chest, len(cfg.Chests)),
	}

	for _, q := range cfg.Quests {
		if _, ok := r.quests[q.ID]; ok {
			return nil, errors.InvalidArgumentf("duplicate quest ID %q", q.ID)
		}
		r.quests[q.ID] = q
		r.questOrder = append(r.questOrder, q)
	}
	for _, c := range cfg.Characters {
		if _, ok := r.characters[c.ID]; ok {
			return nil, errors.InvalidArgumentf("duplicate character ID %q", c.ID)
		}
		r.characters[c.ID] = c
		r.charOrder = append(r.charOrder, c)
	}
	sort.SliceStable(r.charOrder, func(i, j int) bool {
		return r.charOrder[i].SortOrder < r.charOrder[j].SortOrder
	})
	for _, e := range cfg.Enemies {
		if _, ok := r.enemies[e.ID]; ok {
			return nil, errors.InvalidArgumentf("duplicate enemy ID %q", e.ID)
		}
		r.enemies[e.ID] = e
	}
	for _, s := range cfg.Spawns {
		if _, ok := r.spawns[s.ID]; ok {
			return nil, errors.InvalidArgumentf("duplicate spawn ID %q", s.ID)
		}
		if _, ok := r.enemies[s.EnemyID]; !ok {
			return nil, errors.InvalidArgumentf("spawn %q references unknown enemy %q", s.ID, s.EnemyID)
		}
		r.spawns[s.ID] = s
	}
	for _, it := range cfg.Items {
		if _, ok := r.items[it.ID]; ok {
			return nil, errors.InvalidArgumentf("duplicate item ID %q", it.ID)
		}
		r.items[it.ID] = it
	}
	for _, ch := range cfg.Chests {
		if _, ok := r.chests[ch.ID]; ok {
			return nil, errors.InvalidArgumentf("duplicate chest ID %q", ch.ID)
		}
		r.chests[ch.ID] = ch
	}

	return r, nil
}

var _ Repository = (*memoryRepository)(nil)

func (r *memoryRepository) GetQuest(_ context.Context, questID string) (*entities.Quest, error) {
	q, ok := r.quests[questID]
	if !ok {
		return nil, errors.NotFoundf("quest %s not found", questID)
	}
	return q, nil
}

func (r *memoryRepository) ListQuests(_ context.Context) ([]*entities.Quest, error) {
	out := make([]*entities.Quest, len(r.questOrder))
	copy(out, r.questOrder)
	return out, nil
}

func (r *memoryRepository) GetCharacter(_ context.Context, characterID string) (*entities.Character, error) {
	c, ok := r.characters[characterID]
	if !ok {
		return nil, errors.NotFoundf("character %s not found", characterID)
	}
	return c, nil
}

func (r *memoryRepository) ListCharacters(_ context.Context) ([]*entities.Character, error) {
	out := make([]*entities.Character, len(r.charOrder))
	copy(out, r.charOrder)
	return out, nil
}

func (r *memoryRepository) GetEnemy(_ context.Context, enemyID string) (*entities.Enemy, error) {
	e, ok := r.enemies[enemyID]
	if !ok {
		return nil, errors.NotFoundf("enemy %s not found", enemyID)
	}
	return e, nil
}

func (r *memoryRepository) GetEnemySpawn(_ context.Context, spawnID string) (*entities.EnemySpawn, error) {
	s, ok := r.spawns[spawnID]
	if !ok {
		return nil, errors.NotFoundf("enemy spawn %s not found", spawnID)
	}
	return s, nil
}

func (r *memoryRepository) GetItem(_ context.Context, itemID string) (*entities.Item, error) {
	it, ok := r.items[itemID]
	if !ok {
		return nil, errors.NotFoundf("item %s not found", itemID)
	}
	return it, nil
}

func (r *memoryRepository) GetChest(_ context.Context, chestID string) (*entities.Chest, error) {
	ch, ok := r.chests[chestID]
	if !ok {
		return nil, errors.NotFoundf("chest %s not found", chestID)
	}
	return ch, nil
}
