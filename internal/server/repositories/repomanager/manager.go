// Package repomanager wires repositories to a shared database handle and owns
// the process-wide connection lifecycle.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/blogkeeper/internal/dbx"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/blogs"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/categories"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	// Conn returns the shared store handle, establishing it on first use.
	// Calls while already connected are no-ops returning the same handle.
	Conn(ctx context.Context) (dbx.DBTX, error)
	Users(db dbx.DBTX) users.Repository
	Categories(db dbx.DBTX) categories.Repository
	Blogs(db dbx.DBTX) blogs.Repository
}
