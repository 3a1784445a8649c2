package pg

// Repository serves reads and writes from one connection pool
type Repository struct {
	*Reader
	*Storer
}

func NewRepository(pool *ConnectionPool) (*Repository, error) {
	reader, err := NewReader(pool)
	if err != nil {
		return nil, err
	}
	storer, err := NewStorer(pool)
	if err != nil {
		return nil, err
	}
	return &Repository{Reader: reader, Storer: storer}, nil
}
