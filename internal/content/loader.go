// Package content loads the game's static definitions from YAML files.
//
// A content directory holds one file per section (quests.yaml,
// characters.yaml, and so on). Missing files leave that section empty
// so partial bundles work in development.
package content

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/codequest-gg/codequest-api/internal/entities"
	"github.com/codequest-gg/codequest-api/internal/errors"
)

// Bundle is the full set of static definitions loaded from disk
type Bundle struct {
	Quests     []*entities.Quest      `yaml:"quests"`
	Characters []*entities.Character  `yaml:"characters"`
	Enemies    []*entities.Enemy      `yaml:"enemies"`
	Spawns     []*entities.EnemySpawn `yaml:"spawns"`
	Items      []*entities.Item       `yaml:"items"`
	Chests     []*entities.Chest      `yaml:"chests"`
}

// Section file names within a content directory
const (
	questsFile     = "quests.yaml"
	charactersFile = "characters.yaml"
	enemiesFile    = "enemies.yaml"
	spawnsFile     = "spawns.yaml"
	itemsFile      = "items.yaml"
	chestsFile     = "chests.yaml"
)

// LoadDir reads every section file under dir into a Bundle
func LoadDir(dir string) (*Bundle, error) {
	if dir == "" {
		return nil, errors.InvalidArgument("content directory cannot be empty")
	}

	var b Bundle
	if err := loadSection(dir, questsFile, &b.Quests); err != nil {
		return nil, err
	}
	if err := loadSection(dir, charactersFile, &b.Characters); err != nil {
		return nil, err
	}
	if err := loadSection(dir, enemiesFile, &b.Enemies); err != nil {
		return nil, err
	}
	if err := loadSection(dir, spawnsFile, &b.Spawns); err != nil {
		return nil, err
	}
	if err := loadSection(dir, itemsFile, &b.Items); err != nil {
		return nil, err
	}
	if err := loadSection(dir, chestsFile, &b.Chests); err != nil {
		return nil, err
	}
	return &b, nil
}

func loadSection(dir, name string, out interface{}) error {
	path := filepath.Clean(filepath.Join(dir, name))
	data, err := os.ReadFile(path) //nolint:gosec // path is cleaned
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "failed to read %s", name)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "failed to parse %s", name)
	}
	return nil
}
