// Package reconciliation implements the inventory reconciliation engine:
// bounded stock-count sessions in which a seller records counted
// quantities against snapshots of live stock and atomically commits the
// corrections back to inventory.
//
// # Lifecycle
//
// A reconciliation is created in_progress with no items. Items are
// enrolled one at a time; enrollment snapshots the live stock as the
// expected quantity and is read-only with respect to inventory. Counted
// quantities are recorded per item, recomputing the discrepancy
// (actual - expected) and the signed monetary adjustment. The session
// ends in exactly one of two terminal states:
//
//   - completed: every counted quantity is written back to live stock
//     (absolute, idempotent writes), then the status flips via
//     compare-and-set
//   - cancelled: nothing is written
//
// Terminal records are immutable. Completed records also cannot be
// deleted; they are the audit trail of applied corrections.
//
// # Concurrency
//
// Live stock is shared with the rest of the platform, so the expected
// snapshot can go stale while counting is underway. That race is
// accepted by design: completion commits the counted quantity as the new
// truth, overwriting interleaved order-driven changes. Duplicate
// enrollment and double termination are prevented at the storage layer
// (composite unique index, conditional status update).
package reconciliation
