// Package reservation implements ID reservation and conflict resolution
// over sparse integer ranges.
//
// Contributors claim numeric content IDs ahead of publication. A requested
// range is classified by the validator against published content and
// existing reservations, granted by the mutator as minimal contiguous
// rows, and periodically compacted: IDs that ship as published content are
// dropped from their holder's rows, freeing quota.
//
// A reservation is a soft hold. Validation reads without a transaction,
// so two concurrent grants can race; publication remains the source of
// truth for who actually owns an ID.
package reservation
