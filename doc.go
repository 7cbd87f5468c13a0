// Package spending keeps a personal expense ledger as a plain Markdown
// document. The document holds two tables separated by a horizontal rule:
// the daily expenses, and the yearly recurring expenses.
//
// The core of the package is a bidirectional codec:
//   - Parse recovers the typed records from the document text. It never fails:
//     lines that do not look like a data row are skipped, so the document can
//     be freely edited by hand.
//   - Serialize renders the records back into column-aligned tables. Column
//     widths are computed from the records only, so Serialize(Parse(text)) is
//     a fixed point once the text has been normalized once.
//
// The in-memory state lives in a Ledger, owned by the caller. An Editor ties a
// Ledger to a Channel (typically a File) and saves the document after every
// mutation.
package spending
