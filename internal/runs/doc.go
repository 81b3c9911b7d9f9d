// Package runs keeps a local SQLite ledger of segmentation runs so past
// outputs can be listed and inspected. A file lock around the database
// serializes writers when several invocations share a workspace.
package runs
