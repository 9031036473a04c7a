// Package fs abstracts the file operations of the local blob store so that
// tests can inject write, sync and close failures.
//
// Production code uses fs.Default:
//
//	f, err := fs.Default.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
//
// Tests wrap it in a FaultyFS:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule("_0m.cube", fs.Fault{FailAfterBytes: 64})
package fs
