package stringdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tcxian/ppinet/internal/provider"
)

func TestFetch_Success(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"identifiers":     r.URL.Query().Get("identifiers"),
			"species":         r.URL.Query().Get("species"),
			"limit":           r.URL.Query().Get("limit"),
			"caller_identity": r.URL.Query().Get("caller_identity"),
		}
		w.Write([]byte(`[
			{"stringId_A": "9606.ENSP00000269305", "stringId_B": "9606.ENSP00000258149",
			 "preferredName_A": "TP53", "preferredName_B": "MDM2", "score": 0.999}
		]`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	records, err := client.Fetch(context.Background(), provider.Query{Protein: "TP53", TaxonID: 9606})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if gotQuery["identifiers"] != "TP53" {
		t.Errorf("identifiers = %q, want TP53", gotQuery["identifiers"])
	}
	if gotQuery["species"] != "9606" {
		t.Errorf("species = %q, want 9606", gotQuery["species"])
	}
	if gotQuery["limit"] != "20" {
		t.Errorf("limit = %q, want default 20", gotQuery["limit"])
	}
	if gotQuery["caller_identity"] != "ppinet" {
		t.Errorf("caller_identity = %q, want ppinet", gotQuery["caller_identity"])
	}

	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	r := records[0]
	if r.SourceLabel != "TP53" || r.TargetLabel != "MDM2" {
		t.Errorf("labels = %q, %q, want TP53, MDM2", r.SourceLabel, r.TargetLabel)
	}
	if r.Score != 0.999 {
		t.Errorf("score = %v, want 0.999", r.Score)
	}
}

func TestFetch_ExplicitLimit(t *testing.T) {
	var gotLimit string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		w.Write([]byte(`[{"stringId_A": "a", "stringId_B": "b"}]`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.Fetch(context.Background(), provider.Query{Protein: "TP53", TaxonID: 9606, Limit: 50})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if gotLimit != "50" {
		t.Errorf("limit = %q, want 50", gotLimit)
	}
}

func TestFetch_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.Fetch(context.Background(), provider.Query{Protein: "NOSUCH", TaxonID: 9606})
	if !provider.IsEmptyResult(err) {
		t.Errorf("Fetch() error = %v, want empty result error", err)
	}
}

func TestFetch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.Fetch(context.Background(), provider.Query{Protein: "TP53", TaxonID: 9606})
	if !provider.IsUpstreamUnavailable(err) {
		t.Errorf("Fetch() error = %v, want upstream error", err)
	}
}

func TestFetch_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>down</html>"))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.Fetch(context.Background(), provider.Query{Protein: "TP53", TaxonID: 9606})
	if !errors.Is(err, provider.ErrInvalidResponse) {
		t.Errorf("Fetch() error = %v, want ErrInvalidResponse", err)
	}
}

func TestClient_Name(t *testing.T) {
	if got := NewClient().Name(); got != "string" {
		t.Errorf("Name() = %q, want string", got)
	}
}
