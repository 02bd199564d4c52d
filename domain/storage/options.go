package storage

// WithGeneID filters by the "gene_id" column.
func WithGeneID(id int64) Option {
	return WithCondition("gene_id", id)
}

// WithGeneIDIn filters by the "gene_id" column using IN.
func WithGeneIDIn(ids []int64) Option {
	return WithConditionIn("gene_id", ids)
}

// WithTaxID filters by the "tax_id" column.
func WithTaxID(taxID int64) Option {
	return WithCondition("tax_id", taxID)
}

// WithChromosome filters by the "chromosome" column.
func WithChromosome(chromosome string) Option {
	return WithCondition("chromosome", chromosome)
}

// WithSymbol filters by the "symbol" column.
func WithSymbol(symbol string) Option {
	return WithCondition("symbol", symbol)
}

// WithLocationPrefix filters rows whose map_location starts with the prefix.
func WithLocationPrefix(prefix string) Option {
	return WithWhere("map_location LIKE ?", prefix+"%")
}
