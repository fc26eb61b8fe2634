package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dohyunkim/fadegate/internal/application/transition"
)

// SceneVisit records a single scene load during a session
type SceneVisit struct {
	At   float64 `json:"at"` // Seconds since session start
	From string  `json:"from,omitempty"`
	To   string  `json:"to"`
}

// JourneyData contains the scene flow of one game session
type JourneyData struct {
	Version   string       `json:"version"`
	StartTime string       `json:"startTime"`
	Visits    []SceneVisit `json:"visits"`
}

// Journey records which scenes a session visited and when.
// Useful when debugging transition wiring.
type Journey struct {
	data  JourneyData
	start time.Time
	last  string
}

// NewJourney creates a new journey recorder
func NewJourney() *Journey {
	return &Journey{
		data: JourneyData{
			Version:   "1.0",
			StartTime: time.Now().Format(time.RFC3339),
		},
		start: time.Now(),
	}
}

// Record adds a visit to the named scene
func (j *Journey) Record(name string) {
	j.data.Visits = append(j.data.Visits, SceneVisit{
		At:   time.Since(j.start).Seconds(),
		From: j.last,
		To:   name,
	})
	j.last = name
}

// Count returns the number of recorded visits
func (j *Journey) Count() int {
	return len(j.data.Visits)
}

// Save writes the journey to a JSON file
func (j *Journey) Save(filename string) error {
	data, err := json.MarshalIndent(j.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal journey: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write journey: %w", err)
	}
	return nil
}

// GenerateFilename creates a timestamped journey filename
func GenerateFilename() string {
	return fmt.Sprintf("journey_%s.json", time.Now().Format("20060102_150405"))
}

// journeyLoader decorates a scene loader, recording every load
type journeyLoader struct {
	inner   transition.Loader
	journey *Journey
}

func (l *journeyLoader) LoadAsync(name string) transition.Handle {
	h := l.inner.LoadAsync(name)
	if h != nil {
		l.journey.Record(name)
	}
	return h
}

func (l *journeyLoader) LoadImmediate(name string) error {
	err := l.inner.LoadImmediate(name)
	if err == nil {
		l.journey.Record(name)
	}
	return err
}
