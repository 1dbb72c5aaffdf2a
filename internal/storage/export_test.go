// ABOUTME: Tests for export and import functionality.
// ABOUTME: Verifies round trips over both backends and both encodings.
package storage

import (
	"strings"
	"testing"
)

func setupExportPair(t *testing.T) (Repository, Repository) {
	t.Helper()
	return setupTestDB(t), setupTestKV(t)
}

func TestExportAllEmpty(t *testing.T) {
	src, _ := setupExportPair(t)

	data, err := src.(Exporter).ExportAll()
	if err != nil {
		t.Fatalf("ExportAll failed: %v", err)
	}

	if data.Version != "1.0" {
		t.Errorf("Version = %s, want 1.0", data.Version)
	}
	if data.Tool != "healthtrack" {
		t.Errorf("Tool = %s, want healthtrack", data.Tool)
	}
	if len(data.Meals) != 0 || len(data.Exercises) != 0 || len(data.Activities) != 0 {
		t.Error("Expected empty export")
	}
}

func TestExportImportAcrossBackends(t *testing.T) {
	src, dst := setupExportPair(t)

	if _, err := src.AddMeal("Oatmeal", 300); err != nil {
		t.Fatalf("AddMeal failed: %v", err)
	}
	if _, err := src.AddExercise("Cycling", 30, 2.0); err != nil {
		t.Fatalf("AddExercise failed: %v", err)
	}
	actID, err := src.AddActivity("Recycle")
	if err != nil {
		t.Fatalf("AddActivity failed: %v", err)
	}
	if _, err := src.SetActivityCompleted(actID, true); err != nil {
		t.Fatalf("SetActivityCompleted failed: %v", err)
	}

	data, err := src.(Exporter).ExportAll()
	if err != nil {
		t.Fatalf("ExportAll failed: %v", err)
	}
	if len(data.Meals) != 1 || len(data.Exercises) != 1 || len(data.Activities) != 1 {
		t.Fatalf("Unexpected export counts: %d meals, %d exercises, %d activities",
			len(data.Meals), len(data.Exercises), len(data.Activities))
	}

	if err := dst.(Exporter).ImportAll(data); err != nil {
		t.Fatalf("ImportAll failed: %v", err)
	}

	meals, err := dst.ListMeals(testDay)
	if err != nil {
		t.Fatalf("ListMeals failed: %v", err)
	}
	if len(meals) != 1 || meals[0].Name != "Oatmeal" {
		t.Errorf("Expected imported meal, got %+v", meals)
	}

	burned, err := dst.TotalCaloriesBurned(testDay)
	if err != nil {
		t.Fatalf("TotalCaloriesBurned failed: %v", err)
	}
	if burned != 150 {
		t.Errorf("TotalCaloriesBurned = %d, want 150", burned)
	}

	completed, err := dst.CompletedActivitiesCount(testDay)
	if err != nil {
		t.Fatalf("CompletedActivitiesCount failed: %v", err)
	}
	if completed != 1 {
		t.Errorf("CompletedActivitiesCount = %d, want 1", completed)
	}
}

func TestExportEncodeDecodeJSON(t *testing.T) {
	src, _ := setupExportPair(t)

	if _, err := src.AddMeal("Salad", 200); err != nil {
		t.Fatalf("AddMeal failed: %v", err)
	}

	data, err := src.(Exporter).ExportAll()
	if err != nil {
		t.Fatalf("ExportAll failed: %v", err)
	}

	raw, err := data.EncodeJSON()
	if err != nil {
		t.Fatalf("EncodeJSON failed: %v", err)
	}
	if !strings.Contains(string(raw), "Salad") {
		t.Error("Expected meal name in JSON export")
	}

	decoded, err := DecodeExport(raw)
	if err != nil {
		t.Fatalf("DecodeExport failed: %v", err)
	}
	if len(decoded.Meals) != 1 || decoded.Meals[0].Calories != 200 {
		t.Errorf("Unexpected decoded meals: %+v", decoded.Meals)
	}
}

func TestExportEncodeDecodeYAML(t *testing.T) {
	src, _ := setupExportPair(t)

	if _, err := src.AddActivity("Compost"); err != nil {
		t.Fatalf("AddActivity failed: %v", err)
	}

	data, err := src.(Exporter).ExportAll()
	if err != nil {
		t.Fatalf("ExportAll failed: %v", err)
	}

	raw, err := data.EncodeYAML()
	if err != nil {
		t.Fatalf("EncodeYAML failed: %v", err)
	}
	if !strings.Contains(string(raw), "Compost") {
		t.Error("Expected activity name in YAML export")
	}

	decoded, err := DecodeExport(raw)
	if err != nil {
		t.Fatalf("DecodeExport failed: %v", err)
	}
	if len(decoded.Activities) != 1 || decoded.Activities[0].Name != "Compost" {
		t.Errorf("Unexpected decoded activities: %+v", decoded.Activities)
	}
}

func TestDecodeExportGarbage(t *testing.T) {
	if _, err := DecodeExport([]byte("{not valid")); err == nil {
		t.Error("Expected error for garbage input")
	}
}
