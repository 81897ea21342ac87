package interfaces

import "context"

// ChangelogFetcher retrieves the raw changelog document from its source.
// A failed retrieval is the only error that crosses the pipeline boundary;
// retry policy belongs to the caller.
type ChangelogFetcher interface {
	Fetch(ctx context.Context) (string, error)
}
