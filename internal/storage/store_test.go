package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/suvat/internal/analysis"
	"github.com/san-kum/suvat/internal/motion"
	"github.com/san-kum/suvat/internal/quantity"
)

func sampleResult(t *testing.T, name string) *motion.Result {
	t.Helper()
	res, err := motion.New().Run(context.Background(), motion.Profile{
		Name:  name,
		Start: quantity.NewSpeed(3),
		Accel: quantity.NewAcceleration(-1.5),
	}, motion.Config{Dt: quantity.NewTime(0.1), Duration: quantity.NewTime(1)})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	res.Metrics["peak_speed"] = 3
	res.Metrics["stop_time"] = math.NaN()
	return res
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	result := sampleResult(t, "test")
	summary, err := analysis.Summarize(result)
	if err != nil {
		t.Fatal(err)
	}

	runID, err := st.Save(result, &summary)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if !strings.HasPrefix(runID, "test_") {
		t.Errorf("unexpected run id %q", runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Name != "test" {
		t.Errorf("expected name 'test', got '%s'", meta.Name)
	}
	if meta.StartSpeed != 3 || meta.Acceleration != -1.5 {
		t.Errorf("profile not stored: %+v", meta)
	}
	if meta.Samples != 11 {
		t.Errorf("expected 11 samples, got %d", meta.Samples)
	}
	if meta.Metrics["peak_speed"] != 3 {
		t.Errorf("expected peak_speed 3, got %f", meta.Metrics["peak_speed"])
	}
	if _, ok := meta.Metrics["stop_time"]; ok {
		t.Error("NaN metric should not be stored")
	}
	if meta.Summary == nil || meta.Summary.Samples != 11 {
		t.Errorf("summary not stored: %+v", meta.Summary)
	}

	samples, err := st.LoadSamples(runID)
	if err != nil {
		t.Fatalf("load samples failed: %v", err)
	}
	if len(samples) != len(result.Samples) {
		t.Fatalf("expected %d samples, got %d", len(result.Samples), len(samples))
	}
	for i := range samples {
		if samples[i] != result.Samples[i] {
			t.Errorf("sample %d = %+v, want %+v", i, samples[i], result.Samples[i])
		}
	}
}

func TestStoreLoadResult(t *testing.T) {
	st := New(t.TempDir())
	result := sampleResult(t, "replay")

	runID, err := st.Save(result, nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, loaded, err := st.LoadResult(runID)
	if err != nil {
		t.Fatalf("load result failed: %v", err)
	}
	if meta.Summary != nil {
		t.Error("expected no summary")
	}
	if loaded.Profile != result.Profile {
		t.Errorf("profile = %v, want %v", loaded.Profile, result.Profile)
	}
	if loaded.Config != result.Config {
		t.Errorf("config = %+v, want %+v", loaded.Config, result.Config)
	}
	if loaded.Final() != result.Final() {
		t.Errorf("final = %+v, want %+v", loaded.Final(), result.Final())
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		st.now = func() time.Time { return base.Add(time.Duration(i) * time.Minute) }
		if _, err := st.Save(sampleResult(t, name), nil); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	// a corrupt run is skipped rather than failing the listing
	bad := filepath.Join(st.Dir(), "broken")
	if err := os.MkdirAll(bad, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(bad, metadataFile), []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	for i, want := range []string{"third", "second", "first"} {
		if runs[i].Name != want {
			t.Errorf("runs[%d] = %s, want %s", i, runs[i].Name, want)
		}
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "absent"))
	runs, err := st.List()
	if err != nil || len(runs) != 0 {
		t.Errorf("expected empty list, got %v, %v", runs, err)
	}
}

func TestStoreNotFound(t *testing.T) {
	st := New(t.TempDir())

	if _, err := st.Load("nope"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
	if _, err := st.LoadSamples("nope"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	runID, err := st.Save(sampleResult(t, "with space/slash"), nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if strings.ContainsAny(runID, " /") {
		t.Errorf("run id %q not sanitised", runID)
	}

	runDir := filepath.Join(tmpDir, runID)
	for _, name := range []string{metadataFile, samplesFile} {
		if _, err := os.Stat(filepath.Join(runDir, name)); os.IsNotExist(err) {
			t.Errorf("%s not created", name)
		}
	}

	data, err := os.ReadFile(filepath.Join(runDir, samplesFile))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "time,distance,speed\n") {
		t.Errorf("unexpected header in %q", string(data[:20]))
	}
}

func TestLoadSamplesSkipsBadRows(t *testing.T) {
	st := New(t.TempDir())
	dir := filepath.Join(st.Dir(), "hand")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	csv := "time,distance,speed\n0,0,1\n0.5,x,1\n1\n1,1,1\n"
	if err := os.WriteFile(filepath.Join(dir, samplesFile), []byte(csv), 0644); err != nil {
		t.Fatal(err)
	}

	samples, err := st.LoadSamples("hand")
	if err != nil {
		t.Fatalf("load samples failed: %v", err)
	}
	if len(samples) != 2 {
		t.Errorf("expected 2 samples, got %d", len(samples))
	}
}

func TestExportJSON(t *testing.T) {
	result := sampleResult(t, "export")
	meta := &RunMetadata{ID: "export_1", Name: "export", Samples: len(result.Samples)}

	var buf bytes.Buffer
	if err := ExportJSON(&buf, meta, result); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var got ExportData
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got.Run.ID != "export_1" {
		t.Errorf("expected id export_1, got %s", got.Run.ID)
	}
	if len(got.Times) != 11 || len(got.Distances) != 11 || len(got.Speeds) != 11 {
		t.Errorf("series lengths %d/%d/%d", len(got.Times), len(got.Distances), len(got.Speeds))
	}
	if got.Speeds[10] != result.Final().V.Value() {
		t.Errorf("final speed %v, want %v", got.Speeds[10], result.Final().V.Value())
	}
}

func TestStoreSaveOverflowingRun(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)

	res, err := motion.New().Run(context.Background(), motion.Profile{
		Name:  "overflow",
		Accel: quantity.NewAcceleration(1e308),
	}, motion.Config{Dt: quantity.NewTime(1), Duration: quantity.NewTime(10)})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	res.Metrics["peak_speed"] = math.Inf(1)

	summary, err := analysis.Summarize(res)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Finite() {
		t.Fatal("expected an infinite summary")
	}

	runID, err := st.Save(res, &summary)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Summary != nil {
		t.Errorf("non-finite summary should be dropped, got %+v", meta.Summary)
	}
	if _, ok := meta.Metrics["peak_speed"]; ok {
		t.Error("non-finite metric should be dropped")
	}

	samples, err := st.LoadSamples(runID)
	if err != nil {
		t.Fatalf("load samples failed: %v", err)
	}
	if len(samples) != 11 || !samples[10].V.IsInf(1) {
		t.Errorf("expected 11 samples ending at +Inf speed, got %d", len(samples))
	}
}

func TestStoreSaveFailureLeavesNoRun(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)

	res := sampleResult(t, "broken")
	// an infinite dt cannot be encoded as JSON
	res.Config.Dt = quantity.NewTime(math.Inf(1))

	if _, err := st.Save(res, nil); err == nil {
		t.Fatal("expected encode error")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("failed save left %d entries behind", len(entries))
	}

	runs, err := st.List()
	if err != nil || len(runs) != 0 {
		t.Errorf("List() = %v, %v; want no runs", runs, err)
	}
}
