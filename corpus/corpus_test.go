package corpus

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/deanrtaylor1/partsdiscovery/tfidf"
)

func TestNewEmptyModel(t *testing.T) {
	model := NewEmptyModel()

	if model == nil {
		t.Errorf("NewEmptyModel() == nil, want non-nil")
	} else {
		if model.TFPD == nil {
			t.Errorf("NewEmptyModel().TFPD == nil, want non-nil")
		}

		if model.DF == nil {
			t.Errorf("NewEmptyModel().DF == nil, want non-nil")
		}
	}
}

func TestAddCatalog(t *testing.T) {
	model := NewEmptyModel()

	model.AddCatalog("brakes", []string{"brake", "pad", "brake"})
	model.AddCatalog("rotors", []string{"rotor", "pad"})

	if model.DocCount != 2 {
		t.Errorf("AddCatalog().DocCount == %d, want 2", model.DocCount)
	}
	if model.TermCount != 5 {
		t.Errorf("AddCatalog().TermCount == %d, want 5", model.TermCount)
	}
	if !reflect.DeepEqual(model.Names, []string{"brakes", "rotors"}) {
		t.Errorf("AddCatalog().Names == %v, want [brakes rotors]", model.Names)
	}

	expectedDF := DocFreq{"brake": 1, "pad": 2, "rotor": 1}
	if !reflect.DeepEqual(model.DF, expectedDF) {
		t.Errorf("AddCatalog().DF == %v, want %v", model.DF, expectedDF)
	}

	expectedTerms := tfidf.TermFreq{"brake": 2, "pad": 1}
	if !reflect.DeepEqual(model.TFPD["brakes"].Terms, expectedTerms) {
		t.Errorf("AddCatalog().TFPD[brakes] == %v, want %v", model.TFPD["brakes"].Terms, expectedTerms)
	}
}

func TestAddCatalogReplaces(t *testing.T) {
	model := NewEmptyModel()

	model.AddCatalog("brakes", []string{"brake", "pad"})
	model.AddCatalog("rotors", []string{"rotor"})
	model.AddCatalog("brakes", []string{"caliper"})

	if model.DocCount != 2 {
		t.Errorf("DocCount == %d, want 2", model.DocCount)
	}
	if model.TermCount != 2 {
		t.Errorf("TermCount == %d, want 2", model.TermCount)
	}
	if !reflect.DeepEqual(model.Names, []string{"rotors", "brakes"}) {
		t.Errorf("Names == %v, want [rotors brakes]", model.Names)
	}
	expectedDF := DocFreq{"rotor": 1, "caliper": 1}
	if !reflect.DeepEqual(model.DF, expectedDF) {
		t.Errorf("DF == %v, want %v", model.DF, expectedDF)
	}
}

func TestRemoveCatalog(t *testing.T) {
	model := NewEmptyModel()
	model.AddCatalog("brakes", []string{"brake", "pad"})

	if model.RemoveCatalog("missing") {
		t.Errorf("RemoveCatalog(missing) == true, want false")
	}
	if !model.RemoveCatalog("brakes") {
		t.Errorf("RemoveCatalog(brakes) == false, want true")
	}
	if model.DocCount != 0 || model.TermCount != 0 || len(model.DF) != 0 || len(model.Names) != 0 {
		t.Errorf("RemoveCatalog() left state behind: %+v", model)
	}
}

func TestResetModel(t *testing.T) {
	model := NewEmptyModel()

	model.Name = "test"
	model.AddCatalog("test", []string{"test"})

	model.ResetModel()

	if model.Name != "" {
		t.Errorf("ResetModel().Name == %s, want empty string", model.Name)
	}

	if model.DocCount != 0 {
		t.Errorf("ResetModel().DocCount == %d, want 0", model.DocCount)
	}

	if model.TermCount != 0 {
		t.Errorf("ResetModel().TermCount == %d, want 0", model.TermCount)
	}

	if len(model.TFPD) != 0 {
		t.Errorf("ResetModel().TFPD == %d, want 0", len(model.TFPD))
	}

	if len(model.DF) != 0 {
		t.Errorf("ResetModel().DF == %d, want 0", len(model.DF))
	}

	if len(model.Names) != 0 {
		t.Errorf("ResetModel().Names == %d, want 0", len(model.Names))
	}
}

func TestDiscover(t *testing.T) {
	model := NewEmptyModel()
	model.AddCatalog("brakes", []string{"the", "brake", "pad", "brake", "the", "the", "ceramic"})
	model.AddCatalog("rotors", []string{"the", "rotor", "pad", "rotor"})

	results, err := model.Discover(Options{TopK: 2})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Discover() len == %d, want 2", len(results))
	}

	brakes := results[0]
	if brakes.Name != "brakes" {
		t.Errorf("results[0].Name == %q, want brakes", brakes.Name)
	}
	if !brakes.HasMostFrequent || brakes.MostFrequent != "the" {
		t.Errorf("results[0].MostFrequent == %q, want the", brakes.MostFrequent)
	}
	if !reflect.DeepEqual(brakes.Keywords, []string{"brake", "ceramic"}) {
		t.Errorf("results[0].Keywords == %v, want [brake ceramic]", brakes.Keywords)
	}
	if len(brakes.Scores) != 4 {
		t.Errorf("results[0].Scores len == %d, want 4", len(brakes.Scores))
	}
	if math.Abs(brakes.Scores[0].Score-2*math.Log10(2)) > 1e-5 {
		t.Errorf("results[0].Scores[0] == %f, want %f", brakes.Scores[0].Score, 2*math.Log10(2))
	}

	rotors := results[1]
	if !reflect.DeepEqual(rotors.Keywords, []string{"rotor", "pad"}) {
		t.Errorf("results[1].Keywords == %v, want [rotor pad]", rotors.Keywords)
	}
}

func TestDiscoverStopWords(t *testing.T) {
	model := NewEmptyModel()
	model.AddCatalog("brakes", []string{"the", "the", "the", "brake"})
	model.AddCatalog("rotors", []string{"rotor"})

	results, err := model.Discover(Options{StopWords: []string{"the", "absent"}})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if results[0].MostFrequent != "brake" {
		t.Errorf("MostFrequent == %q, want brake", results[0].MostFrequent)
	}
	if !reflect.DeepEqual(results[0].Keywords, []string{"brake"}) {
		t.Errorf("Keywords == %v, want [brake]", results[0].Keywords)
	}
	if model.TFPD["brakes"].Terms["the"] != 3 {
		t.Errorf("Discover() modified the stored counts")
	}
}

func TestDiscoverEmptyCatalog(t *testing.T) {
	model := NewEmptyModel()
	model.AddCatalog("empty", nil)
	model.AddCatalog("fuses", []string{"fuse"})

	results, err := model.Discover(Options{})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if results[0].HasMostFrequent {
		t.Errorf("empty catalog HasMostFrequent == true, want false")
	}
	if len(results[0].Keywords) != 0 {
		t.Errorf("empty catalog Keywords == %v, want none", results[0].Keywords)
	}
}

func TestDiscoverEmptyModel(t *testing.T) {
	model := NewEmptyModel()

	_, err := model.Discover(Options{})
	if !errors.Is(err, tfidf.ErrEmptyCorpus) {
		t.Errorf("Expected: %v, got: %v", tfidf.ErrEmptyCorpus, err)
	}
}

func TestConvertToDocData(t *testing.T) {
	docData := ConvertToDocData(tfidf.TermFreq{"a": 2, "b": 3})
	if docData.TermCount != 5 {
		t.Errorf("ConvertToDocData().TermCount == %d, want 5", docData.TermCount)
	}
}

func TestFilterResults(t *testing.T) {
	results := []tfidf.ScoredWord{
		{
			Word:  "test",
			Score: 1,
		}, {
			Word:  "test2",
			Score: 0,
		},
	}

	filtered := FilterResults(results, IsGreaterThanZero)

	if len(filtered) != 1 {
		t.Errorf("FilterResults().len(filtered) == %d, want 1", len(filtered))
	}

	filtered = FilterResults(results, func(x float64) bool {
		return x > 1
	})

	if len(filtered) != 0 {
		t.Errorf("FilterResults().len(filtered) == %d, want 0", len(filtered))
	}
}
