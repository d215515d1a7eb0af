package domain

// RepoMeta describes the repository being ingested.
// It is supplied by the content source collaborator.
type RepoMeta struct {
	// Name is the short repository name (e.g. "flux").
	Name string

	// FullName is the owner-qualified name (e.g. "sky-flux/flux").
	FullName string

	// Description is the repository description, if any.
	Description string

	// Stars is the stargazer count at ingestion time.
	Stars int

	// DefaultBranch is the branch the file tree was read from.
	DefaultBranch string
}

// TreeEntry is one entry in a repository's flat file tree.
type TreeEntry struct {
	// Path is the /-separated path within the repository.
	Path string

	// IsBlob reports whether the entry is a file (as opposed to a
	// directory or submodule).
	IsBlob bool

	// Size is the blob size in bytes, when the tree listing reports it.
	Size int64
}

// SourceFile is one fetched file handed to the extraction pipeline.
// It is ephemeral input, owned by the caller for one ingestion pass.
type SourceFile struct {
	// Path is the /-separated repository path of the file.
	Path string

	// Content is the UTF-8 decoded file content. It may be arbitrarily
	// malformed; extraction must never fail on bad content.
	Content string
}
