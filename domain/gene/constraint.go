package gene

// Classification thresholds for constraint metrics. Derived bands are
// recomputed from these on every read, never stored.
const (
	pliEssential    = 0.9
	pliIntermediate = 0.5

	loeufStrong   = 0.35
	loeufModerate = 1.0
)

// LossSensitivity classifies a gene's intolerance to loss-of-function
// variation, derived from pLI.
type LossSensitivity string

// LossSensitivity bands.
const (
	SensitivityEssential    LossSensitivity = "essential"
	SensitivityIntermediate LossSensitivity = "intermediate"
	SensitivityTolerant     LossSensitivity = "tolerant"
)

// ConstraintLevel classifies a gene's constraint strength, derived from LOEUF.
type ConstraintLevel string

// ConstraintLevel bands.
const (
	ConstraintStrong   ConstraintLevel = "strongly constrained"
	ConstraintModerate ConstraintLevel = "moderately constrained"
	ConstraintRelaxed  ConstraintLevel = "less constrained"
)

// ConstraintMetrics holds population-genetics constraint metrics for one
// gene from one source version. Every metric is independently nullable;
// absence means no data, never zero.
type ConstraintMetrics struct {
	geneID     int64
	transcript string
	pli        *float64
	loeuf      *float64
	oeLof      *float64
	oeMis      *float64
	misZ       *float64
	version    string
}

// ReconstructConstraintMetrics creates ConstraintMetrics from persisted state.
func ReconstructConstraintMetrics(
	geneID int64,
	transcript string,
	pli *float64,
	loeuf *float64,
	oeLof *float64,
	oeMis *float64,
	misZ *float64,
	version string,
) ConstraintMetrics {
	return ConstraintMetrics{
		geneID:     geneID,
		transcript: transcript,
		pli:        copyFloat(pli),
		loeuf:      copyFloat(loeuf),
		oeLof:      copyFloat(oeLof),
		oeMis:      copyFloat(oeMis),
		misZ:       copyFloat(misZ),
		version:    version,
	}
}

// GeneID returns the gene id.
func (c ConstraintMetrics) GeneID() int64 { return c.geneID }

// Transcript returns the canonical transcript the metrics were computed on.
func (c ConstraintMetrics) Transcript() string { return c.transcript }

// PLI returns the probability of loss-of-function intolerance, if present.
func (c ConstraintMetrics) PLI() (float64, bool) {
	if c.pli == nil {
		return 0, false
	}
	return *c.pli, true
}

// LOEUF returns the loss-of-function observed/expected upper bound, if present.
func (c ConstraintMetrics) LOEUF() (float64, bool) {
	if c.loeuf == nil {
		return 0, false
	}
	return *c.loeuf, true
}

// OELof returns the observed/expected loss-of-function ratio, if present.
func (c ConstraintMetrics) OELof() (float64, bool) {
	if c.oeLof == nil {
		return 0, false
	}
	return *c.oeLof, true
}

// OEMis returns the observed/expected missense ratio, if present.
func (c ConstraintMetrics) OEMis() (float64, bool) {
	if c.oeMis == nil {
		return 0, false
	}
	return *c.oeMis, true
}

// MisZ returns the missense Z score, if present.
func (c ConstraintMetrics) MisZ() (float64, bool) {
	if c.misZ == nil {
		return 0, false
	}
	return *c.misZ, true
}

// Version returns the source version tag ("v4.1", "v2.1.1").
func (c ConstraintMetrics) Version() string { return c.version }

// Sensitivity derives the loss-of-function sensitivity band from pLI.
// Returns false when pLI is absent.
func (c ConstraintMetrics) Sensitivity() (LossSensitivity, bool) {
	pli, ok := c.PLI()
	if !ok {
		return "", false
	}
	switch {
	case pli > pliEssential:
		return SensitivityEssential, true
	case pli > pliIntermediate:
		return SensitivityIntermediate, true
	default:
		return SensitivityTolerant, true
	}
}

// Level derives the constraint strength band from LOEUF. Returns false when
// LOEUF is absent.
func (c ConstraintMetrics) Level() (ConstraintLevel, bool) {
	loeuf, ok := c.LOEUF()
	if !ok {
		return "", false
	}
	switch {
	case loeuf < loeufStrong:
		return ConstraintStrong, true
	case loeuf < loeufModerate:
		return ConstraintModerate, true
	default:
		return ConstraintRelaxed, true
	}
}
