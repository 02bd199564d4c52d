package persistence

// GeneModel is the GORM model for core gene records. Gene ids are assigned
// by the upstream annotation source, never auto-incremented.
type GeneModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement:false"`
	TaxID       int64  `gorm:"index;index:idx_genes_tax_chromosome,priority:1"`
	Symbol      string `gorm:"index"`
	Name        string
	Chromosome  string `gorm:"index:idx_genes_tax_chromosome,priority:2"`
	MapLocation string `gorm:"index"`
	GeneType    string
	Description string `gorm:"type:text"`
}

// TableName returns the table name for GeneModel.
func (GeneModel) TableName() string { return "genes" }

// SpeciesModel is the GORM model for the species catalog.
type SpeciesModel struct {
	TaxID          int64 `gorm:"primaryKey;autoIncrement:false"`
	ScientificName string
	CommonName     string
	GeneCount      int64
}

// TableName returns the table name for SpeciesModel.
func (SpeciesModel) TableName() string { return "species" }

// SynonymModel is the GORM model for gene synonyms, one row per synonym.
type SynonymModel struct {
	ID      int64 `gorm:"primaryKey"`
	GeneID  int64 `gorm:"index"`
	Synonym string
}

// TableName returns the table name for SynonymModel.
func (SynonymModel) TableName() string { return "gene_synonyms" }

// AnnotationModel is the GORM model for GO term links. Duplicate terms
// across evidence codes are kept as distinct rows.
type AnnotationModel struct {
	ID       int64  `gorm:"primaryKey"`
	GeneID   int64  `gorm:"index"`
	Category string `gorm:"index"`
	TermID   string
	Term     string
}

// TableName returns the table name for AnnotationModel.
func (AnnotationModel) TableName() string { return "go_annotations" }

// TraitModel is the GORM model for trait associations.
type TraitModel struct {
	ID         int64 `gorm:"primaryKey"`
	GeneID     int64 `gorm:"index"`
	Trait      string
	SNPID      string `gorm:"column:snp_id"`
	PValue     *float64
	PValueText string
	RiskAllele string
	OddsRatio  *float64
	PubmedID   string
}

// TableName returns the table name for TraitModel.
func (TraitModel) TableName() string { return "trait_associations" }

// ConstraintModel is the GORM model for constraint metrics. At most one row
// per gene per source version; nil metric columns mean "not measured".
type ConstraintModel struct {
	ID         int64 `gorm:"primaryKey"`
	GeneID     int64 `gorm:"index"`
	Transcript string
	PLI        *float64 `gorm:"column:pli"`
	LOEUF      *float64 `gorm:"column:loeuf"`
	OELof      *float64 `gorm:"column:oe_lof"`
	OEMis      *float64 `gorm:"column:oe_mis"`
	MisZ       *float64
	Version    string
}

// TableName returns the table name for ConstraintModel.
func (ConstraintModel) TableName() string { return "constraint_metrics" }

// ClinicalSummaryModel is the GORM model for per-gene bucketed allele counts.
type ClinicalSummaryModel struct {
	GeneID             int64 `gorm:"primaryKey;autoIncrement:false"`
	TotalSubmissions   int64
	TotalAlleles       int64
	PathogenicAlleles  int64
	UncertainAlleles   int64
	ConflictingAlleles int64
	MIMNumber          string `gorm:"column:mim_number"`
}

// TableName returns the table name for ClinicalSummaryModel.
func (ClinicalSummaryModel) TableName() string { return "clinical_summaries" }

// ClinicalVariantModel is the GORM model for individual variant records.
// Allele ids are assigned by the upstream archive.
type ClinicalVariantModel struct {
	AlleleID     int64 `gorm:"primaryKey;autoIncrement:false"`
	GeneID       int64 `gorm:"index"`
	Name         string
	VariantType  string
	Significance string
	ReviewStatus string
	Phenotypes   string `gorm:"type:text"`
	Chromosome   string
	Start        int64
	RsID         string
}

// TableName returns the table name for ClinicalVariantModel.
func (ClinicalVariantModel) TableName() string { return "clinical_variants" }

// GeneSummaryModel is the GORM model for functional summaries, zero or one
// per gene.
type GeneSummaryModel struct {
	GeneID  int64  `gorm:"primaryKey;autoIncrement:false"`
	Summary string `gorm:"type:text"`
	Source  string
}

// TableName returns the table name for GeneSummaryModel.
func (GeneSummaryModel) TableName() string { return "gene_summaries" }
