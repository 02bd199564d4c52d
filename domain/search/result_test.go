package search

import "testing"

func TestDedupe_KeepsFirstPerGene(t *testing.T) {
	hits := []Hit{
		NewHit(3630, 9.1, "insulin", SourceGene),
		NewHit(3643, 7.2, "insulin receptor", SourceGene),
		NewHit(3630, 4.0, "INS", SourceSynonym),
		NewHit(3643, 1.1, "insulin binding", SourceGOTerm),
	}
	got := Dedupe(hits)

	if len(got) != 2 {
		t.Fatalf("Dedupe() returned %d hits, want 2", len(got))
	}
	if got[0].GeneID() != 3630 || got[0].Source() != SourceGene {
		t.Errorf("first hit = %d/%s, want 3630/gene", got[0].GeneID(), got[0].Source())
	}
	if got[1].GeneID() != 3643 {
		t.Errorf("second hit = %d, want 3643", got[1].GeneID())
	}
}

func TestSortHits_ScoreDescGeneIDAsc(t *testing.T) {
	hits := []Hit{
		NewHit(5, 1.0, "", SourceGene),
		NewHit(3, 2.0, "", SourceGene),
		NewHit(1, 1.0, "", SourceGene),
		NewHit(2, 2.0, "", SourceGene),
	}
	SortHits(hits)

	want := []int64{2, 3, 1, 5}
	for i, id := range want {
		if hits[i].GeneID() != id {
			t.Errorf("position %d = %d, want %d", i, hits[i].GeneID(), id)
		}
	}
}

func TestMatchSource_Rank(t *testing.T) {
	order := []MatchSource{SourceGene, SourceSynonym, SourceGOTerm, SourceTrait}
	for i := 1; i < len(order); i++ {
		if order[i-1].Rank() >= order[i].Rank() {
			t.Errorf("%s should outrank %s", order[i-1], order[i])
		}
	}
}

func TestNewQuery_Validation(t *testing.T) {
	if _, err := NewQuery("  ", NewFilters(), 0); err != ErrEmptyTerm {
		t.Errorf("blank term: err = %v, want ErrEmptyTerm", err)
	}

	q, err := NewQuery(" insulin ", NewFilters(), 0)
	if err != nil {
		t.Fatalf("NewQuery: %v", err)
	}
	if q.Term() != "insulin" {
		t.Errorf("Term() = %q, want trimmed", q.Term())
	}
	if q.Limit() != DefaultLimit {
		t.Errorf("Limit() = %d, want default %d", q.Limit(), DefaultLimit)
	}

	q, err = NewQuery("insulin", NewFilters(), 9999)
	if err != nil {
		t.Fatalf("NewQuery: %v", err)
	}
	if q.Limit() != MaxLimit {
		t.Errorf("Limit() = %d, want ceiling %d", q.Limit(), MaxLimit)
	}
}

func TestParseFilterVocabulary(t *testing.T) {
	if _, err := ParseConstraintTier("Essential"); err != nil {
		t.Errorf("ParseConstraintTier: %v", err)
	}
	if _, err := ParseConstraintTier("fragile"); err == nil {
		t.Error("ParseConstraintTier accepted unknown tier")
	}
	if got, _ := ParseGeneTypeClass("protein_coding"); got != TypeProteinCoding {
		t.Errorf("ParseGeneTypeClass(protein_coding) = %q", got)
	}
	if got, _ := ParseGOFilter("ANY"); got != GOAny {
		t.Errorf("ParseGOFilter(ANY) = %q", got)
	}
	if _, err := ParseClinicalBucket("benign"); err == nil {
		t.Error("ParseClinicalBucket accepted unknown bucket")
	}
}

func TestFilters_IsEmpty(t *testing.T) {
	if !NewFilters().IsEmpty() {
		t.Error("zero Filters should be empty")
	}
	if NewFilters(WithSpecies(9606)).IsEmpty() {
		t.Error("species filter should mark Filters non-empty")
	}
	if NewFilters(WithGOFilter(GOAny)).IsEmpty() {
		t.Error("GO filter should mark Filters non-empty")
	}
}
