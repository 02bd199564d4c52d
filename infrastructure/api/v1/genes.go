package v1

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/genomelab/genedex"
	"github.com/genomelab/genedex/domain/gene"
	"github.com/genomelab/genedex/infrastructure/api/middleware"
	"github.com/genomelab/genedex/infrastructure/api/v1/dto"
)

// GenesRouter handles gene detail API endpoints.
type GenesRouter struct {
	client *genedex.Client
	logger *slog.Logger
}

// NewGenesRouter creates a new GenesRouter.
func NewGenesRouter(client *genedex.Client) *GenesRouter {
	return &GenesRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for gene endpoints.
func (r *GenesRouter) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{id}", r.Get)
	return router
}

// Get handles GET /api/v1/genes/{id}.
//
//	@Summary		Get gene detail
//	@Description	Aggregated gene record: identity, summary, GO terms, traits, constraint, clinical
//	@Tags			genes
//	@Produce		json
//	@Param			id	path		int	true	"NCBI gene ID"
//	@Success		200	{object}	dto.GeneDetailResponse
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Failure		503	{object}	map[string]string
//	@Router			/genes/{id} [get]
func (r *GenesRouter) Get(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	idStr := chi.URLParam(req, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		middleware.WriteError(w, req, middleware.NewAPIError(
			http.StatusBadRequest, fmt.Sprintf("invalid gene id %q", idStr), err), r.logger)
		return
	}

	detail, err := r.client.Genes.Detail(ctx, id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.GeneDetailResponse{
		Data: detailToDTO(detail),
	})
}

func detailToDTO(d gene.Detail) dto.GeneDetailData {
	g := d.Gene()

	attrs := dto.GeneDetailAttributes{
		Symbol:      g.Symbol(),
		Name:        g.Name(),
		TaxID:       g.TaxID(),
		Species:     d.Species().DisplayName(),
		Chromosome:  g.Chromosome(),
		MapLocation: g.MapLocation(),
		GeneType:    g.GeneType(),
		Description: g.Description(),
		Synonyms:    g.Synonyms(),
		Degraded:    d.Degraded(),
	}

	if s := d.Summary(); s != nil {
		attrs.Summary = &dto.SummarySection{
			Text:   s.Text(),
			Source: s.Source(),
		}
	}

	if o := d.Ontology(); !o.IsEmpty() {
		attrs.GO = &dto.OntologySection{
			Function:  goTermsToDTO(o.Function()),
			Process:   goTermsToDTO(o.Process()),
			Component: goTermsToDTO(o.Component()),
		}
	}

	if t := d.Traits(); !t.IsEmpty() {
		attrs.Traits = &dto.TraitsSection{
			Total: t.Total(),
			Items: traitsToDTO(t.Items()),
		}
	}

	if c := d.Constraint(); c != nil {
		attrs.Constraint = constraintToDTO(*c)
	}

	if c := d.Clinical(); c != nil {
		attrs.Clinical = clinicalToDTO(*c)
	}

	return dto.GeneDetailData{
		Type:       "gene",
		ID:         strconv.FormatInt(g.ID(), 10),
		Attributes: attrs,
	}
}

func goTermsToDTO(annotations []gene.Annotation) []dto.GOTermSchema {
	if len(annotations) == 0 {
		return nil
	}
	terms := make([]dto.GOTermSchema, len(annotations))
	for i, a := range annotations {
		terms[i] = dto.GOTermSchema{
			TermID: a.TermID(),
			Term:   a.Term(),
		}
	}
	return terms
}

func traitsToDTO(traits []gene.TraitAssociation) []dto.TraitSchema {
	items := make([]dto.TraitSchema, len(traits))
	for i, t := range traits {
		item := dto.TraitSchema{
			Trait:      t.Trait(),
			SNPID:      t.SNPID(),
			PValueText: t.PValueText(),
			RiskAllele: t.RiskAllele(),
			PubmedID:   t.PubmedID(),
		}
		if p, ok := t.PValue(); ok {
			item.PValue = &p
		}
		if or, ok := t.OddsRatio(); ok {
			item.OddsRatio = &or
		}
		items[i] = item
	}
	return items
}

func constraintToDTO(c gene.ConstraintMetrics) *dto.ConstraintSection {
	section := &dto.ConstraintSection{
		Transcript: c.Transcript(),
		Version:    c.Version(),
	}
	if v, ok := c.PLI(); ok {
		section.PLI = &v
	}
	if v, ok := c.LOEUF(); ok {
		section.LOEUF = &v
	}
	if v, ok := c.OELof(); ok {
		section.OELof = &v
	}
	if v, ok := c.OEMis(); ok {
		section.OEMis = &v
	}
	if v, ok := c.MisZ(); ok {
		section.MisZ = &v
	}
	return section
}

func clinicalToDTO(c gene.ClinicalRecord) *dto.ClinicalSection {
	summary := c.Summary()

	variants := c.Variants()
	variantData := make([]dto.VariantSchema, len(variants))
	for i, v := range variants {
		variantData[i] = dto.VariantSchema{
			AlleleID:     v.AlleleID(),
			Name:         v.Name(),
			VariantType:  v.VariantType(),
			Significance: v.Significance(),
			ReviewStatus: v.ReviewStatus(),
			Phenotypes:   v.Phenotypes(),
			Chromosome:   v.Chromosome(),
			Start:        v.Start(),
			RSID:         v.RSID(),
		}
	}

	return &dto.ClinicalSection{
		TotalSubmissions:   summary.TotalSubmissions(),
		TotalAlleles:       summary.TotalAlleles(),
		PathogenicAlleles:  summary.PathogenicAlleles(),
		UncertainAlleles:   summary.UncertainAlleles(),
		ConflictingAlleles: summary.ConflictingAlleles(),
		MIMNumber:          summary.MIMNumber(),
		Variants:           variantData,
	}
}
