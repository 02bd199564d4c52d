package persistence

import (
	"context"
	"fmt"

	"github.com/genomelab/genedex/domain/gene"
	"github.com/genomelab/genedex/domain/search"
	"github.com/genomelab/genedex/internal/database"
)

// displayRowsQuery denormalizes everything a result list row shows in one
// round trip: species names plus per-gene badge scalars from the annotation
// tables. COUNT stands in for EXISTS so both dialects scan into integers.
const displayRowsQuery = `
SELECT g.id,
       g.tax_id,
       g.symbol,
       g.name,
       g.chromosome,
       g.map_location,
       g.gene_type,
       g.description,
       COALESCE(sp.common_name, '') AS species_common,
       COALESCE(sp.scientific_name, '') AS species_scientific,
       (SELECT COUNT(*) FROM trait_associations t WHERE t.gene_id = g.id) AS trait_count,
       (SELECT COUNT(*) FROM gene_summaries fs WHERE fs.gene_id = g.id) AS summary_count,
       (SELECT MAX(c.pli) FROM constraint_metrics c WHERE c.gene_id = g.id) AS max_pli,
       (SELECT MIN(c.loeuf) FROM constraint_metrics c WHERE c.gene_id = g.id) AS min_loeuf,
       COALESCE((SELECT cs.pathogenic_alleles FROM clinical_summaries cs WHERE cs.gene_id = g.id), 0) AS pathogenic_alleles
FROM genes g
LEFT JOIN species sp ON sp.tax_id = g.tax_id
WHERE g.id IN ?`

// DisplayStore implements search.DisplayStore using GORM.
type DisplayStore struct {
	db database.Database
}

// NewDisplayStore creates a new DisplayStore.
func NewDisplayStore(db database.Database) DisplayStore {
	return DisplayStore{db: db}
}

type displayRowRecord struct {
	ID                int64
	TaxID             int64
	Symbol            string
	Name              string
	Chromosome        string
	MapLocation       string
	GeneType          string
	Description       string
	SpeciesCommon     string
	SpeciesScientific string
	TraitCount        int64
	SummaryCount      int64
	MaxPLI            *float64 `gorm:"column:max_pli"`
	MinLOEUF          *float64 `gorm:"column:min_loeuf"`
	PathogenicAlleles int64
}

// DisplayRows fetches the denormalized display rows for the given gene ids.
// Ids that resolve to no gene are simply absent from the result map.
func (s DisplayStore) DisplayRows(ctx context.Context, geneIDs []int64) (map[int64]search.DisplayRow, error) {
	if len(geneIDs) == 0 {
		return map[int64]search.DisplayRow{}, nil
	}

	var records []displayRowRecord
	err := s.db.Session(ctx).Raw(displayRowsQuery, geneIDs).Scan(&records).Error
	if err != nil {
		return nil, fmt.Errorf("load display rows: %w", err)
	}

	rows := make(map[int64]search.DisplayRow, len(records))
	for _, r := range records {
		g := gene.ReconstructGene(
			r.ID,
			r.TaxID,
			r.Symbol,
			r.Name,
			r.Chromosome,
			r.MapLocation,
			r.GeneType,
			r.Description,
		)

		speciesName := r.SpeciesCommon
		if speciesName == "" {
			speciesName = r.SpeciesScientific
		}

		rows[r.ID] = search.NewDisplayRow(
			g,
			speciesName,
			r.TraitCount,
			r.SummaryCount > 0,
			r.MaxPLI,
			r.MinLOEUF,
			r.PathogenicAlleles,
		)
	}
	return rows, nil
}
