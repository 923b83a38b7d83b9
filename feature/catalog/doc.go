// Package catalog gives the reservation engine its view of already-published
// content.
//
// Published content lives in an attribute index (one row per published
// content ID, carrying the owning post) and a post/author registry. Both are
// defined as interfaces here and backed by MySQL tables that the archive's
// ingestion pipeline writes; this service only reads them, except for
// DeleteWhere which listing endpoints use to evict entries whose post has
// disappeared.
//
// # Namespaces
//
// Each reservation type targets one namespace: songs, modules, cstm_items,
// or costumes. Costume entries additionally carry the playable character
// they belong to, and all costume lookups filter on it.
//
// # Ownership
//
// The Resolver composes the index and the registry. An indexed ID with
// owning post -1 is UNCLAIMED: content that cannot be attributed to any
// post. A post that resolves to zero known authors is treated as owned by
// nobody, which blocks reservation just like a third-party post.
package catalog
