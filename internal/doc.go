// Package internal provides the lint engine behind nameit.
//
// The engine splits a source file into numbered lines, extracts the variables
// declared by let, var and const statements or plain assignments, and asks each
// recommender for a finding about every variable. Findings are collected
// recommender by recommender, in declaration order, without duplicates.
//
// Engine: runs the pipeline for a file or an in-memory source.
//
// Watcher: re-runs the engine for files that change on disk.
//
// Cache: remembers the last findings of a file by content hash.
//
// Usage:
//
//	engine := internal.NewEngine()
//	findings, err := engine.Run("path/to/app.js")
//	if err != nil {
//	    // handle error
//	}
//	for _, f := range findings {
//	    fmt.Println(f.VariableName, f.Title)
//	}
package internal
