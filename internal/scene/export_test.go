package scene

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/justinom/leo-triplet/internal/catalog"
)

func TestExportRoundTrip(t *testing.T) {
	objects := catalog.LeoTriplet()
	s, err := Build(objects, DefaultConfig())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	export := Export(s, objects, catalog.DistanceLy)

	var buf bytes.Buffer
	if err := export.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var decoded SceneExport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if len(decoded.Objects) != 3 {
		t.Errorf("objects = %d, want 3", len(decoded.Objects))
	}
	if len(decoded.Separations) != 3 {
		t.Errorf("separations = %d, want 3", len(decoded.Separations))
	}
	if len(decoded.Tail) != 12 {
		t.Errorf("tail points = %d, want 12", len(decoded.Tail))
	}
	if decoded.TailAnchor != catalog.NameNGC3628 {
		t.Errorf("tail anchor = %q", decoded.TailAnchor)
	}
	if decoded.DistanceLy != catalog.DistanceLy {
		t.Errorf("distance = %v, want %v", decoded.DistanceLy, catalog.DistanceLy)
	}
}

func TestExportCarriesCatalogStrings(t *testing.T) {
	objects := catalog.LeoTriplet()
	s, err := Build(objects, DefaultConfig())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	export := Export(s, objects, catalog.DistanceLy)
	for _, obj := range export.Objects {
		if obj.RA == "" || obj.Dec == "" {
			t.Errorf("%s: missing formatted coordinates", obj.Name)
		}
		if obj.Name == catalog.NameM66 && obj.RA != "11h20m15.0s" {
			t.Errorf("M66 RA = %q", obj.RA)
		}
	}
}

func TestWriteSummary(t *testing.T) {
	objects := catalog.LeoTriplet()
	s, err := Build(objects, DefaultConfig())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var buf bytes.Buffer
	WriteSummary(&buf, s, objects)
	out := buf.String()

	for _, want := range []string{"Leo Triplet", "NGC 3628", "M66", "M65", "Separations:", "Tidal tail"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}
