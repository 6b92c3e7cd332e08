// Package services contains the synchronization workflow that ties the
// scanner, the document rewriters and the filesystem together: discover
// the workspace documents, rewrite each one in memory, and write back
// only the documents whose content actually changed.
package services
