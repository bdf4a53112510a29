package sqlite3

import (
	"context"
	"database/sql"
	"testing"

	"github.com/playonbsd/igdb"
	"github.com/playonbsd/igdb/operations"
)

func makeDb(t *testing.T) *Db {
	pool, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { pool.Close() })
	_, err = pool.Exec(`
CREATE TABLE games (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    rating REAL NOT NULL,
    platform INTEGER NOT NULL,
    checksum TEXT NOT NULL
)
	`)
	if err != nil {
		t.Fatal(err)
	}
	games := []struct {
		id       int
		name     string
		rating   float64
		platform int
		checksum string
	}{
		{1, "Conan", 68.5, 6, "F0E4C2F7-6E4A-4B2B-9A5B-7C2D1A3B4C5D"},
		{500, "The Legend of Zelda", 84.0, 18, "0d9818f3-1f0c-4d3a-b8b5-4a7cf9b42a1e"},
		{1942, "The Witcher 3", 93.4, 6, "7a9c3e21-0f44-4f8a-9d15-2b6f0c8e5a77"},
		{39047, "Zelda II", 73.2, 130, "c2a7f0d4-88e1-4b09-a3c5-6e1d9b2f4a10"},
	}
	for _, g := range games {
		_, err := pool.Exec(
			`INSERT INTO games (id, name, rating, platform, checksum) VALUES (?, ?, ?, ?, ?)`,
			g.id, g.name, g.rating, g.platform, g.checksum,
		)
		if err != nil {
			t.Fatal(err)
		}
	}
	return NewDb(pool)
}

func find(t *testing.T, db *Db, b *igdb.Builder) []map[string]any {
	t.Helper()
	records, err := db.Find(context.Background(), igdb.Games, b.Query())
	if err != nil {
		t.Fatal(err)
	}
	return records
}

func checkNames(t *testing.T, records []map[string]any, want ...string) {
	t.Helper()
	if len(records) != len(want) {
		t.Fatalf("%v != %v", records, want)
	}
	for i, r := range records {
		if r["name"] != want[i] {
			t.Fatalf("%v != %v", r["name"], want[i])
		}
	}
}

func TestFindAll(t *testing.T) {
	db := makeDb(t)
	records := find(t, db, igdb.NewBuilder().AllFields())
	checkNames(t, records, "Conan", "The Legend of Zelda", "The Witcher 3", "Zelda II")
	if records[0]["id"] != int64(1) {
		t.Fatalf("%v != %v", records[0]["id"], int64(1))
	}
}

func TestFindEq(t *testing.T) {
	db := makeDb(t)
	b := igdb.NewBuilder().AllFields().AddWhere("name", operations.Eq, "Conan")
	checkNames(t, find(t, db, b), "Conan")
}

func TestFindLtAndGt(t *testing.T) {
	db := makeDb(t)
	b := igdb.NewBuilder().AllFields().AddWhere("id", operations.Lt, "500")
	checkNames(t, find(t, db, b), "Conan")

	b = igdb.NewBuilder().AllFields().AddWhere("rating", operations.Gt, "90")
	checkNames(t, find(t, db, b), "The Witcher 3")
}

func TestFindCombinesFiltersWithAnd(t *testing.T) {
	db := makeDb(t)
	b := igdb.NewBuilder().
		AllFields().
		AddWhere("platform", operations.Eq, "6").
		AddWhere("rating", operations.Lt, "70")
	checkNames(t, find(t, db, b), "Conan")
}

func TestFindWhereIn(t *testing.T) {
	db := makeDb(t)
	b := igdb.NewBuilder().AllFields().AddWhereIn("id", "1", "500")
	checkNames(t, find(t, db, b), "Conan", "The Legend of Zelda")
}

func TestFindWhereInEmptyList(t *testing.T) {
	db := makeDb(t)
	b := igdb.NewBuilder().AllFields().AddWhereIn("id")
	checkNames(t, find(t, db, b))
}

func TestFindSearch(t *testing.T) {
	db := makeDb(t)
	b := igdb.NewBuilder().AllFields().Search("zelda")
	checkNames(t, find(t, db, b), "The Legend of Zelda", "Zelda II")
}

func TestFindSort(t *testing.T) {
	db := makeDb(t)
	b := igdb.NewBuilder().AllFields().SortBy("rating", igdb.Desc)
	checkNames(t, find(t, db, b), "The Witcher 3", "The Legend of Zelda", "Zelda II", "Conan")
}

func TestFindLimit(t *testing.T) {
	db := makeDb(t)
	b := igdb.NewBuilder().AllFields().SortBy("id", igdb.Asc).Limit(2)
	checkNames(t, find(t, db, b), "Conan", "The Legend of Zelda")
}

func TestFindProjectsFields(t *testing.T) {
	db := makeDb(t)
	b := igdb.NewBuilder().AddField("name").AddWhere("id", operations.Eq, "1")
	records := find(t, db, b)
	if len(records) != 1 || len(records[0]) != 1 {
		t.Fatalf("unexpected records: %v", records)
	}
	if records[0]["name"] != "Conan" {
		t.Fatalf("%v != %v", records[0]["name"], "Conan")
	}
}

func TestFindChecksum(t *testing.T) {
	db := makeDb(t)
	b := igdb.NewBuilder().
		AllFields().
		AddWhere("checksum", operations.Eq, "f0e4c2f7-6e4a-4b2b-9a5b-7c2d1a3b4c5d")
	checkNames(t, find(t, db, b), "Conan")
}

func TestFindChecksumIn(t *testing.T) {
	db := makeDb(t)
	b := igdb.NewBuilder().AllFields().AddWhereIn(
		"checksum",
		"f0e4c2f7-6e4a-4b2b-9a5b-7c2d1a3b4c5d",
		"0D9818F3-1F0C-4D3A-B8B5-4A7CF9B42A1E",
	)
	checkNames(t, find(t, db, b), "Conan", "The Legend of Zelda")
}

func TestFindEmptyFieldList(t *testing.T) {
	db := makeDb(t)
	records := find(t, db, igdb.NewBuilder().Limit(1))
	if len(records) != 1 || len(records[0]) != 0 {
		t.Fatalf("unexpected records: %v", records)
	}
}
