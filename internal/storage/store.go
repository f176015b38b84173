// Package storage persists sampled runs on disk. Each run is a directory
// holding metadata.json and samples.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/suvat/internal/analysis"
	"github.com/san-kum/suvat/internal/motion"
	"github.com/san-kum/suvat/internal/quantity"
)

const (
	metadataFile = "metadata.json"
	samplesFile  = "samples.csv"
)

// ErrRunNotFound indicates no run directory matches the requested ID.
var ErrRunNotFound = errors.New("storage: run not found")

var samplesHeader = []string{"time", "distance", "speed"}

type Store struct {
	baseDir string
	logger  *slog.Logger
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{
		baseDir: baseDir,
		logger:  slog.Default().With("component", "storage"),
		now:     time.Now,
	}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Dir returns the directory runs are stored under.
func (s *Store) Dir() string { return s.baseDir }

type RunMetadata struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Timestamp    time.Time          `json:"timestamp"`
	StartSpeed   float64            `json:"start_speed"`
	Acceleration float64            `json:"acceleration"`
	Dt           float64            `json:"dt"`
	Duration     float64            `json:"duration"`
	Samples      int                `json:"samples"`
	Metrics      map[string]float64 `json:"metrics"`
	Summary      *analysis.Summary  `json:"summary,omitempty"`
}

// Profile rebuilds the profile the run was sampled from.
func (m *RunMetadata) Profile() motion.Profile {
	return motion.Profile{
		Name:  m.Name,
		Start: quantity.NewSpeed(m.StartSpeed),
		Accel: quantity.NewAcceleration(m.Acceleration),
	}
}

func newRunID(name string) string {
	if name == "" {
		name = "run"
	}
	name = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ' ' {
			return '-'
		}
		return r
	}, name)
	return name + "_" + strings.SplitN(uuid.NewString(), "-", 2)[0]
}

// Save writes result under a new run ID and returns it. Metrics that are NaN
// or infinite are left out of the metadata, as is a summary holding any.
// A failed save leaves no run directory behind.
func (s *Store) Save(result *motion.Result, summary *analysis.Summary) (string, error) {
	runID := newRunID(result.Profile.Name)

	meta := RunMetadata{
		ID:           runID,
		Name:         result.Profile.Name,
		Timestamp:    s.now(),
		StartSpeed:   result.Profile.Start.Value(),
		Acceleration: result.Profile.Accel.Value(),
		Dt:           result.Config.Dt.Value(),
		Duration:     result.Config.Duration.Value(),
		Samples:      len(result.Samples),
		Metrics:      make(map[string]float64, len(result.Metrics)),
	}
	for name, v := range result.Metrics {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			s.logger.Debug("dropping non-finite metric", "run", runID, "metric", name, "value", v)
			continue
		}
		meta.Metrics[name] = v
	}
	if summary != nil {
		if summary.Finite() {
			meta.Summary = summary
		} else {
			s.logger.Warn("dropping non-finite summary", "run", runID)
		}
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode metadata: %w", err)
	}

	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}
	if err := writeRun(runDir, append(data, '\n'), result.Samples); err != nil {
		if rmErr := os.RemoveAll(runDir); rmErr != nil {
			s.logger.Warn("failed to remove partial run", "run", runID, "err", rmErr)
		}
		return "", err
	}

	s.logger.Debug("saved run", "run", runID, "samples", len(result.Samples))
	return runID, nil
}

func writeRun(runDir string, metadata []byte, samples []motion.Sample) error {
	if err := os.WriteFile(filepath.Join(runDir, metadataFile), metadata, 0644); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}

	f, err := os.Create(filepath.Join(runDir, samplesFile))
	if err != nil {
		return err
	}
	if err := WriteCSV(f, samples); err != nil {
		f.Close()
		return fmt.Errorf("write samples: %w", err)
	}
	return f.Close()
}

// List returns every readable run, newest first. Directories with missing or
// corrupt metadata are skipped with a warning.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			s.logger.Warn("skipping run", "dir", entry.Name(), "err", err)
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("decode %s metadata: %w", runID, err)
	}

	return &meta, nil
}

// LoadSamples reads the samples of a run. Rows that fail to parse are skipped.
func (s *Store) LoadSamples(runID string) ([]motion.Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, samplesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []motion.Sample{}, nil
	}

	samples := make([]motion.Sample, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) < len(samplesHeader) {
			s.logger.Warn("short sample row", "run", runID, "row", i+1)
			continue
		}

		var vals [3]float64
		ok := true
		for j := range vals {
			vals[j], err = strconv.ParseFloat(record[j], 64)
			if err != nil {
				s.logger.Warn("bad sample value", "run", runID, "row", i+1, "err", err)
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		samples = append(samples, motion.Sample{
			T: quantity.NewTime(vals[0]),
			S: quantity.NewDistance(vals[1]),
			V: quantity.NewSpeed(vals[2]),
		})
	}

	return samples, nil
}

// LoadResult rebuilds a motion.Result from a stored run.
func (s *Store) LoadResult(runID string) (*RunMetadata, *motion.Result, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	samples, err := s.LoadSamples(runID)
	if err != nil {
		return nil, nil, err
	}
	return meta, &motion.Result{
		Profile: meta.Profile(),
		Config: motion.Config{
			Dt:       quantity.NewTime(meta.Dt),
			Duration: quantity.NewTime(meta.Duration),
		},
		Samples: samples,
		Metrics: meta.Metrics,
	}, nil
}
