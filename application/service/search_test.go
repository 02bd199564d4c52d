package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/genomelab/genedex/domain/gene"
	"github.com/genomelab/genedex/domain/search"
)

// fakeTextIndex implements search.TextIndex for testing.
type fakeTextIndex struct {
	hits        []search.Hit
	err         error
	searchCalls int
	lastQuery   search.Query
}

func (f *fakeTextIndex) Search(_ context.Context, query search.Query) ([]search.Hit, error) {
	f.searchCalls++
	f.lastQuery = query
	if f.err != nil {
		return nil, f.err
	}
	return f.hits, nil
}

func (f *fakeTextIndex) Index(_ context.Context, _ []search.Document) error { return nil }

func (f *fakeTextIndex) Rebuild(_ context.Context) error { return nil }

// fakeDisplayStore implements search.DisplayStore for testing.
type fakeDisplayStore struct {
	rows  map[int64]search.DisplayRow
	err   error
	calls int
}

func (f *fakeDisplayStore) DisplayRows(_ context.Context, _ []int64) (map[int64]search.DisplayRow, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func displayRow(id int64, symbol, speciesName string) search.DisplayRow {
	g := gene.ReconstructGene(id, 9606, symbol, "", "", "", "protein-coding", "")
	return search.NewDisplayRow(g, speciesName, 0, false, nil, nil, 0)
}

func TestSearchQuery_EmptyTerm(t *testing.T) {
	index := &fakeTextIndex{}
	display := &fakeDisplayStore{}
	svc := NewSearch(index, display, 100, nil, nil)

	for _, term := range []string{"", "   ", "\t\n"} {
		_, err := svc.Query(context.Background(), term)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("term %q: expected ErrInvalidArgument, got %v", term, err)
		}
	}

	if index.searchCalls != 0 {
		t.Errorf("expected zero index calls for invalid terms, got %d", index.searchCalls)
	}
	if display.calls != 0 {
		t.Errorf("expected zero display calls for invalid terms, got %d", display.calls)
	}
}

func TestSearchQuery_OrdersAndDedupes(t *testing.T) {
	index := &fakeTextIndex{
		hits: []search.Hit{
			search.NewHit(7157, 5.0, "TP53", search.SourceGene),
			search.NewHit(3630, 8.0, "INS", search.SourceGene),
			search.NewHit(3630, 2.0, "IRDN", search.SourceSynonym),
		},
	}
	display := &fakeDisplayStore{
		rows: map[int64]search.DisplayRow{
			3630: displayRow(3630, "INS", "Human"),
			7157: displayRow(7157, "TP53", "Human"),
		},
	}
	svc := NewSearch(index, display, 100, nil, nil)

	items, err := svc.Query(context.Background(), "anything")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Gene().ID() != 3630 || items[1].Gene().ID() != 7157 {
		t.Errorf("expected order [3630 7157], got [%d %d]", items[0].Gene().ID(), items[1].Gene().ID())
	}
	if items[0].Score() != 8.0 {
		t.Errorf("expected the higher-scored duplicate to win, got score %v", items[0].Score())
	}
}

func TestSearchQuery_DropsHitsWithoutDisplayRow(t *testing.T) {
	index := &fakeTextIndex{
		hits: []search.Hit{
			search.NewHit(3630, 8.0, "INS", search.SourceGene),
			search.NewHit(999, 7.0, "GONE", search.SourceGene),
		},
	}
	display := &fakeDisplayStore{
		rows: map[int64]search.DisplayRow{
			3630: displayRow(3630, "INS", "Human"),
		},
	}
	svc := NewSearch(index, display, 100, nil, nil)

	items, err := svc.Query(context.Background(), "ins")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Gene().ID() != 3630 {
		t.Errorf("expected gene 3630, got %d", items[0].Gene().ID())
	}
}

func TestSearchQuery_NoMatches(t *testing.T) {
	index := &fakeTextIndex{}
	display := &fakeDisplayStore{}
	svc := NewSearch(index, display, 100, nil, nil)

	items, err := svc.Query(context.Background(), "zzz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty result, got %d items", len(items))
	}
	if display.calls != 0 {
		t.Errorf("expected no display lookup for an empty hit list, got %d calls", display.calls)
	}
}

func TestSearchQuery_IndexFailure(t *testing.T) {
	index := &fakeTextIndex{err: errors.New("index offline")}
	svc := NewSearch(index, &fakeDisplayStore{}, 100, nil, nil)

	_, err := svc.Query(context.Background(), "ins")
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestSearchQuery_DisplayFailure(t *testing.T) {
	index := &fakeTextIndex{
		hits: []search.Hit{search.NewHit(3630, 8.0, "INS", search.SourceGene)},
	}
	display := &fakeDisplayStore{err: errors.New("display offline")}
	svc := NewSearch(index, display, 100, nil, nil)

	_, err := svc.Query(context.Background(), "ins")
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestSearchQuery_Closed(t *testing.T) {
	var closed atomic.Bool
	closed.Store(true)
	svc := NewSearch(&fakeTextIndex{}, &fakeDisplayStore{}, 100, &closed, nil)

	_, err := svc.Query(context.Background(), "ins")
	if !errors.Is(err, ErrClientClosed) {
		t.Errorf("expected ErrClientClosed, got %v", err)
	}
}

func TestSearchQuery_FiltersAndLimitReachIndex(t *testing.T) {
	index := &fakeTextIndex{}
	svc := NewSearch(index, &fakeDisplayStore{}, 100, nil, nil)

	_, err := svc.Query(context.Background(), "insulin",
		WithSpecies(9606),
		WithChromosome("11"),
		WithConstraintTier(search.TierEssential),
		WithClinicalBucket(search.BucketGWAS),
		WithGeneType(search.TypeProteinCoding),
		WithGOFilter(search.GOFunction),
		WithLimit(7),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := index.lastQuery
	if q.Term() != "insulin" {
		t.Errorf("expected term insulin, got %q", q.Term())
	}
	if q.Limit() != 7 {
		t.Errorf("expected limit 7, got %d", q.Limit())
	}
	f := q.Filters()
	if f.TaxID() != 9606 || f.Chromosome() != "11" {
		t.Errorf("species/chromosome filters not forwarded: %+v", f)
	}
	if f.ConstraintTier() != search.TierEssential || f.ClinicalBucket() != search.BucketGWAS {
		t.Errorf("tier/bucket filters not forwarded: %+v", f)
	}
	if f.GeneType() != search.TypeProteinCoding || f.GOFilter() != search.GOFunction {
		t.Errorf("type/GO filters not forwarded: %+v", f)
	}
}

func TestSearchQuery_DefaultLimit(t *testing.T) {
	index := &fakeTextIndex{}
	svc := NewSearch(index, &fakeDisplayStore{}, 42, nil, nil)

	if _, err := svc.Query(context.Background(), "ins"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if index.lastQuery.Limit() != 42 {
		t.Errorf("expected configured default limit 42, got %d", index.lastQuery.Limit())
	}
}

func TestSearchQuery_InsulinScenario(t *testing.T) {
	index := &fakeTextIndex{
		hits: []search.Hit{
			search.NewHit(3630, 9.1, "INS insulin", search.SourceGene),
			search.NewHit(3643, 4.2, "INSR insulin receptor", search.SourceGene),
		},
	}
	display := &fakeDisplayStore{
		rows: map[int64]search.DisplayRow{
			3630: displayRow(3630, "INS", "Human"),
			3643: displayRow(3643, "INSR", "Human"),
		},
	}
	svc := NewSearch(index, display, 100, nil, nil)

	items, err := svc.Query(context.Background(), "insulin", WithSpecies(9606))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("expected results for the insulin scenario")
	}

	foundINS := false
	for _, item := range items {
		if item.SpeciesName() != "Human" {
			t.Errorf("expected only human results, got %q", item.SpeciesName())
		}
		if item.Gene().Symbol() == "INS" {
			foundINS = true
		}
	}
	if !foundINS {
		t.Error("expected symbol INS among results")
	}
	if index.lastQuery.Filters().TaxID() != 9606 {
		t.Errorf("expected species filter forwarded, got %d", index.lastQuery.Filters().TaxID())
	}
}
