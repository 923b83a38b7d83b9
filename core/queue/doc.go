// Package queue connects reservation grants to background compaction via
// RabbitMQ.
//
// A partial grant changes who effectively owns previously reserved IDs, so
// the mutator publishes a CompactEvent for the affected reservation type
// instead of blocking the request on a full compaction sweep. The server
// runs StartCompactConsumer, which executes the compactor for each event.
//
// The broker is optional: when disabled or unreachable the mutator runs the
// compactor inline, so grants never skip compaction.
package queue
