package catalog

import (
	"context"
	"fmt"
	"testing"

	"id-reserve/feature/catalog/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite DB with the catalog tables.
func setupTestDB(t *testing.T, dbName string) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", dbName)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.Exec(`CREATE TABLE content_entries (
		uid INTEGER PRIMARY KEY AUTOINCREMENT,
		namespace VARCHAR(20),
		content_id INTEGER,
		post_id INTEGER,
		chara INTEGER
	)`).Error
	if err != nil {
		t.Fatalf("failed to create content_entries: %v", err)
	}

	err = db.Exec(`CREATE TABLE post_authors (
		post_id INTEGER,
		user_id INTEGER,
		PRIMARY KEY (post_id, user_id)
	)`).Error
	if err != nil {
		t.Fatalf("failed to create post_authors: %v", err)
	}

	return db
}

func seedEntry(t *testing.T, db *gorm.DB, ns Namespace, id, postID int32, chara int32) {
	t.Helper()
	err := db.Create(&models.ContentEntry{
		Namespace: string(ns),
		ContentID: id,
		PostID:    postID,
		Chara:     chara,
	}).Error
	assert.NoError(t, err)
}

func TestSQLIndex_QueryFilters(t *testing.T) {
	db := setupTestDB(t, "index_query")
	index := NewSQLIndex(db)
	ctx := context.Background()

	seedEntry(t, db, NamespaceSongs, 100, 1, 0)
	seedEntry(t, db, NamespaceSongs, 101, 2, 0)
	seedEntry(t, db, NamespaceModules, 100, 3, 0)
	seedEntry(t, db, NamespaceCostumes, 5, 4, int32(CharaRin))
	seedEntry(t, db, NamespaceCostumes, 5, 5, int32(CharaTeto))

	hits, err := index.Query(ctx, NamespaceSongs, Filter{}, 0)
	assert.NoError(t, err)
	assert.Len(t, hits, 2)
	assert.Equal(t, int32(100), hits[0].ID)
	assert.Equal(t, int32(101), hits[1].ID)

	hits, err = index.Query(ctx, NamespaceSongs, Filter{IDs: []int32{101}}, 0)
	assert.NoError(t, err)
	assert.Len(t, hits, 1)
	assert.Equal(t, int32(2), hits[0].PostID)

	// Same costume ID exists for two characters.
	chara := CharaTeto
	hits, err = index.Query(ctx, NamespaceCostumes, Filter{Character: &chara}, 0)
	assert.NoError(t, err)
	assert.Len(t, hits, 1)
	assert.Equal(t, int32(5), hits[0].PostID)

	hits, err = index.Query(ctx, NamespaceSongs, Filter{PostIDs: []int32{1, 2}}, 1)
	assert.NoError(t, err)
	assert.Len(t, hits, 1)
}

func TestSQLIndex_DeleteWhere(t *testing.T) {
	db := setupTestDB(t, "index_delete")
	index := NewSQLIndex(db)
	ctx := context.Background()

	seedEntry(t, db, NamespaceModules, 1, 10, 0)
	seedEntry(t, db, NamespaceModules, 2, 11, 0)

	err := index.DeleteWhere(ctx, NamespaceModules, Filter{PostIDs: []int32{10}})
	assert.NoError(t, err)

	hits, err := index.Query(ctx, NamespaceModules, Filter{}, 0)
	assert.NoError(t, err)
	assert.Len(t, hits, 1)
	assert.Equal(t, int32(2), hits[0].ID)
}

func TestSQLRegistry(t *testing.T) {
	db := setupTestDB(t, "registry")
	registry := NewSQLRegistry(db)
	ctx := context.Background()

	db.Create(&models.PostAuthor{PostID: 7, UserID: 100})
	db.Create(&models.PostAuthor{PostID: 7, UserID: 200})
	db.Create(&models.PostAuthor{PostID: 8, UserID: 100})

	authors, err := registry.AuthorsOf(ctx, 7)
	assert.NoError(t, err)
	assert.Len(t, authors, 2)
	assert.Contains(t, authors, int64(100))
	assert.Contains(t, authors, int64(200))

	// A post with no author rows is owned by nobody.
	authors, err = registry.AuthorsOf(ctx, 99)
	assert.NoError(t, err)
	assert.Empty(t, authors)

	posts, err := registry.PostsOf(ctx, 100)
	assert.NoError(t, err)
	assert.Equal(t, []int32{7, 8}, posts)
}

func TestResolver_ResolveOwners(t *testing.T) {
	db := setupTestDB(t, "resolver_owners")
	resolver := NewResolver(NewSQLIndex(db), NewSQLRegistry(db))
	ctx := context.Background()

	seedEntry(t, db, NamespaceSongs, 100, 1, 0)
	seedEntry(t, db, NamespaceSongs, 105, 2, 0)
	seedEntry(t, db, NamespaceSongs, 200, 3, 0)
	seedEntry(t, db, NamespaceSongs, 103, UnclaimedPost, 0)

	owners, err := resolver.ResolveOwners(ctx, NamespaceSongs, nil, 100, 10)
	assert.NoError(t, err)
	assert.Equal(t, map[int32]int32{
		100: 1,
		103: UnclaimedPost,
		105: 2,
	}, owners)
}

func TestResolver_PublishedIDs(t *testing.T) {
	db := setupTestDB(t, "resolver_published")
	resolver := NewResolver(NewSQLIndex(db), NewSQLRegistry(db))
	ctx := context.Background()

	db.Create(&models.PostAuthor{PostID: 1, UserID: 42})
	db.Create(&models.PostAuthor{PostID: 2, UserID: 42})
	seedEntry(t, db, NamespaceSongs, 10, 1, 0)
	seedEntry(t, db, NamespaceSongs, 11, 2, 0)
	seedEntry(t, db, NamespaceSongs, 12, 3, 0)

	ids, err := resolver.PublishedIDs(ctx, NamespaceSongs, nil, 42)
	assert.NoError(t, err)
	assert.Len(t, ids, 2)
	assert.Contains(t, ids, int32(10))
	assert.Contains(t, ids, int32(11))

	// No posts means no published IDs and no index round trip.
	ids, err = resolver.PublishedIDs(ctx, NamespaceSongs, nil, 7777)
	assert.NoError(t, err)
	assert.Empty(t, ids)
}

func TestCharacterValid(t *testing.T) {
	assert.True(t, CharaMiku.Valid())
	assert.True(t, CharaTeto.Valid())
	assert.False(t, Character(10).Valid())
	assert.False(t, Character(-1).Valid())
	assert.Equal(t, "SAKINE", CharaSakine.String())
	assert.Equal(t, "UNKNOWN", Character(42).String())
}
