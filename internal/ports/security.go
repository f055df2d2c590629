package ports

// PasswordHasher is the external hashing collaborator. The domain core only
// ever stores the opaque hash strings this interface produces.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
