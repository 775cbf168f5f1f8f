package engine

import (
	"github.com/codequest-gg/codequest-api/internal/entities"
	"github.com/codequest-gg/codequest-api/internal/pkg/rng"
)

// LootHit is a loot table entry that rolled successfully
type LootHit struct {
	ItemID   string
	Quantity int
}

// RollLoot rolls every table entry independently against its drop
// chance. A chance of 1.0 always hits and a chance of 0 or below
// never does. Quantities default to 1. Coin amounts attached to loot
// sources are flat grants and are not rolled here.
func RollLoot(r rng.Roller, table []entities.LootEntry) []LootHit {
	var hits []LootHit
	for _, entry := range table {
		if entry.Chance <= 0 {
			continue
		}
		if r.Float64() <= entry.Chance {
			qty := entry.Quantity
			if qty <= 0 {
				qty = 1
			}
			hits = append(hits, LootHit{ItemID: entry.ItemID, Quantity: qty})
		}
	}
	return hits
}
