package store

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/hgrv/partlog"
	"github.com/hgrv/partlog/date"
	"github.com/shopspring/decimal"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "builds.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testParts() []partlog.Part {
	return []partlog.Part{{
		ID:          "p1",
		Name:        "RTX 4070",
		Category:    partlog.GPU,
		LastChecked: date.New(2024, 1, 2),
		Listings: []partlog.Listing{{
			ID: "l1", Vendor: "Newegg", URL: "https://newegg.example/4070",
			Price: "$449.99", InStock: true,
			History: []partlog.PricePoint{
				{On: date.New(2024, 1, 1), Price: decimal.RequireFromString("449.99")},
			},
		}},
	}}
}

func TestSaveBuild_roundTrip(t *testing.T) {
	db := openTestDB(t)
	on := date.New(2024, 1, 2)

	saved, err := db.SaveBuild("budget gamer", on, testParts())
	if err != nil {
		t.Fatalf("SaveBuild: %v", err)
	}
	if saved.ID == "" || saved.Name != "budget gamer" || saved.On != on {
		t.Fatalf("saved build = %+v", saved)
	}

	builds, err := db.Builds()
	if err != nil {
		t.Fatalf("Builds: %v", err)
	}
	if len(builds) != 1 {
		t.Fatalf("stored %d builds, want 1", len(builds))
	}
	if !reflect.DeepEqual(builds[0], saved) {
		t.Errorf("stored build differs from the saved one:\ngot  %+v\nwant %+v", builds[0], saved)
	}

	got, err := db.Build(saved.ID)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !reflect.DeepEqual(got.Parts, testParts()) {
		t.Errorf("snapshot parts differ after the round trip")
	}
}

func TestSaveBuild_isSnapshot(t *testing.T) {
	db := openTestDB(t)
	parts := testParts()

	saved, err := db.SaveBuild("snap", date.New(2024, 1, 2), parts)
	if err != nil {
		t.Fatalf("SaveBuild: %v", err)
	}

	// Mutating the source after saving must not leak into the snapshot.
	parts[0].Listings[0].Price = "$1.00"
	if saved.Parts[0].Listings[0].Price != "$449.99" {
		t.Errorf("snapshot shares storage with the source parts")
	}
}

func TestSaveBuild_rejectsBlankName(t *testing.T) {
	db := openTestDB(t)

	for _, name := range []string{"", "   "} {
		if _, err := db.SaveBuild(name, date.New(2024, 1, 2), testParts()); err == nil {
			t.Errorf("SaveBuild(%q) should fail", name)
		}
	}
	builds, err := db.Builds()
	if err != nil {
		t.Fatalf("Builds: %v", err)
	}
	if len(builds) != 0 {
		t.Errorf("a rejected save wrote %d builds", len(builds))
	}
}

func TestDeleteBuild(t *testing.T) {
	db := openTestDB(t)
	on := date.New(2024, 1, 2)

	var ids []string
	for _, name := range []string{"first", "second", "third"} {
		b, err := db.SaveBuild(name, on, testParts())
		if err != nil {
			t.Fatalf("SaveBuild(%q): %v", name, err)
		}
		ids = append(ids, b.ID)
	}

	if err := db.DeleteBuild(ids[1]); err != nil {
		t.Fatalf("DeleteBuild: %v", err)
	}
	builds, err := db.Builds()
	if err != nil {
		t.Fatalf("Builds: %v", err)
	}
	if len(builds) != 2 || builds[0].Name != "first" || builds[1].Name != "third" {
		t.Errorf("remaining builds = %+v, want first and third in order", builds)
	}

	if err := db.DeleteBuild(ids[1]); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleting a gone id: err = %v, want ErrNotFound", err)
	}
	if _, err := db.Build("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("looking up an unknown id: err = %v, want ErrNotFound", err)
	}
}
