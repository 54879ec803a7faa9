// Package file provides the operating-system implementation of
// driven.Persistence used by the collection store.
//
// Adapters:
//   - Persistence: whole-file reads and writes, optional atomic replace,
//     and advisory flock locks on the storage directory
//   - Watcher: fsnotify-based change notification for the storage file
package file
