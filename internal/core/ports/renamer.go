package ports

// Renamer applies a new base name to a file within its directory.
//
//go:generate mockgen -source=renamer.go -destination=mocks/mock_renamer.go -package=mocks
type Renamer interface {
	// Rename gives the file at path the base name newName and returns the new path.
	// It fails with domain.ErrRenameFailed and never replaces a different existing file.
	Rename(path, newName string) (string, error)
}
