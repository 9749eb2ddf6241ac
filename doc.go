// Package partlog provides the data model and core logic for a local-first
// inventory and price tracker for PC-building parts.
//
// The core functionalities include:
//   - Catalog Management: An explicitly owned, ordered collection of parts,
//     each carrying one or more vendor listings, mutated only through
//     whole-list replacement operations.
//   - Price History: An append-only, dated price series per listing, fed by
//     price updates and never edited or reordered.
//   - Derivation: Stateless functions computing best price, availability,
//     and total build cost from a catalog snapshot on demand.
//   - Build Snapshots: Named, dated, immutable deep copies of the whole
//     catalog, persisted in a local key-value store.
//   - Data Interchange: Encoding and decoding the catalog to and from a
//     human-readable JSONL format, and importing listings from third-party
//     vendor price dumps.
//
// This package serves as the foundational logic for the `plog` command-line
// tool.
package partlog
