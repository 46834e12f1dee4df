// Package jot is the Composition Root for the jot note keeper.
//
// It connects the core note logic (Domain Layer) with the flat-file storage
// adapter (Persistence Layer).
//
// Notes are kept as an ordered list in memory and the whole list is rewritten
// to a single file after every change. The file format (JSON, ';'-delimited
// CSV or YAML) is chosen when the manager is built.
//
// Usage:
//
//	mgr, err := jot.New(ctx,
//		jot.WithFormat(fs.FormatCSV),
//		jot.WithPath("./notes.csv"),
//		jot.WithLogger(logger),
//	)
//
//	// Add a note
//	_, err = mgr.Add(ctx, "Shopping", "milk,eggs")
package jot
