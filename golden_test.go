package mdgen_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bjaus/mdgen"
	"github.com/bjaus/mdgen/internal/sample"
	"github.com/google/go-cmp/cmp"
)

func TestGoldenCorpus(t *testing.T) {
	t.Parallel()
	for _, doc := range sample.Docs() {
		doc := doc
		t.Run(doc.Name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join("testdata", doc.Name+".golden")
			want, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("missing golden %s (run \"go run ./cmd/gen-golden\" to regenerate): %v", path, err)
			}
			got, err := mdgen.Marshal(doc.Nodes...)
			if err != nil {
				t.Fatalf("marshal %s: %v", doc.Name, err)
			}
			if diff := cmp.Diff(string(want), string(got)); diff != "" {
				t.Errorf("Marshal() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
