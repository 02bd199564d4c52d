package persistence

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/genomelab/genedex/internal/database"
	"gorm.io/gorm"
	"gopkg.in/yaml.v3"
)

//go:embed species.yaml
var speciesManifest []byte

type speciesSeedFile struct {
	Species []speciesSeed `yaml:"species"`
}

type speciesSeed struct {
	TaxID          int64  `yaml:"tax_id"`
	ScientificName string `yaml:"scientific_name"`
	CommonName     string `yaml:"common_name"`
}

// SeedSpecies inserts the embedded species catalog into an empty species
// table so a fresh deployment can serve the catalog before the annotation
// ETL runs. A populated table is left untouched. Returns the number of
// rows inserted.
func SeedSpecies(ctx context.Context, db database.Database) (int, error) {
	var manifest speciesSeedFile
	if err := yaml.Unmarshal(speciesManifest, &manifest); err != nil {
		return 0, fmt.Errorf("parse species manifest: %w", err)
	}

	var existing int64
	if err := db.Session(ctx).Model(&SpeciesModel{}).Count(&existing).Error; err != nil {
		return 0, fmt.Errorf("count species: %w", err)
	}
	if existing > 0 {
		return 0, nil
	}

	return database.WithTransactionResult(ctx, db, func(tx *gorm.DB) (int, error) {
		for _, s := range manifest.Species {
			model := SpeciesModel{
				TaxID:          s.TaxID,
				ScientificName: s.ScientificName,
				CommonName:     s.CommonName,
			}
			if err := tx.Create(&model).Error; err != nil {
				return 0, fmt.Errorf("seed species %d: %w", s.TaxID, err)
			}
		}
		return len(manifest.Species), nil
	})
}
