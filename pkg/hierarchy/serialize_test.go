package hierarchy

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/medialens/medialens/pkg/outlet"
)

func TestMarshalRoundTrip(t *testing.T) {
	owners := Build([]outlet.Record{
		{Outlet: "Daily Planet", Owner: "Acme Media", FoundingYear: 1990, Audience: 1000000},
		{Outlet: "Herald", Owner: "Globex", FoundingYear: 1950, Audience: 42000},
	})

	data, err := Marshal(owners)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	decoded, err := Read(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if len(decoded) != 2 {
		t.Fatalf("owners = %d, want 2", len(decoded))
	}
	acme, ok := Find(decoded, "Acme Media")
	if !ok {
		t.Fatal("Acme Media missing after round trip")
	}
	if acme.Children[0].Record == nil || acme.Children[0].Record.Audience != 1000000 {
		t.Errorf("record not preserved: %+v", acme.Children[0].Record)
	}
}

func TestWriteReadFile(t *testing.T) {
	owners := Build([]outlet.Record{{Outlet: "X", Owner: "Acme"}})
	path := filepath.Join(t.TempDir(), "tree.json")

	if err := WriteFile(owners, path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	decoded, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(decoded) != 1 || decoded[0].ID != "Acme" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFile(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
