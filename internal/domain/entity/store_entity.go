package entity

// Store is the root aggregate persisted as one document.
type Store struct {
	Users []User     `json:"users"`
	News  []NewsItem `json:"news"`
}

// NewStore returns an empty store whose collections serialize as [] rather than null.
func NewStore() *Store {
	return &Store{Users: []User{}, News: []NewsItem{}}
}

// Normalize replaces nil collections with empty ones, including comment lists.
func (s *Store) Normalize() {
	if s.Users == nil {
		s.Users = []User{}
	}
	if s.News == nil {
		s.News = []NewsItem{}
	}
	for i := range s.News {
		if s.News[i].Comments == nil {
			s.News[i].Comments = []Comment{}
		}
	}
}

// FindUserByEmail scans users for an exact email match.
func (s *Store) FindUserByEmail(email string) (*User, bool) {
	for i := range s.Users {
		if s.Users[i].Email == email {
			return &s.Users[i], true
		}
	}
	return nil, false
}

// FindUserByID scans users for id.
func (s *Store) FindUserByID(id string) (*User, bool) {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i], true
		}
	}
	return nil, false
}

// NewsIndex returns the position of the news item with id, or -1.
func (s *Store) NewsIndex(id string) int {
	for i := range s.News {
		if s.News[i].ID == id {
			return i
		}
	}
	return -1
}
