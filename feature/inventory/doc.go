// Package inventory is the boundary to the live inventory records the
// rest of the platform reads and writes: raw materials and finished
// pieces.
//
// The reconciliation engine only touches these records through the
// StockAdapter interface: Lookup at item enrollment (a read-only
// snapshot) and SetStock at completion (an absolute, idempotent write).
// One adapter exists per item kind and is selected by ItemType, keeping
// the commit loop free of runtime type checks.
package inventory
