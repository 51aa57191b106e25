package model

import "context"

// DocumentStore loads and saves the whole catalog document.
//
// Implementations do not lock: callers run a load, mutate, save cycle and
// the last save wins.
type DocumentStore interface {
	Load(ctx context.Context) (Document, error)
	Save(ctx context.Context, doc Document) error
}

// Document is the single persisted unit holding every user and book.
type Document struct {
	Users []User `json:"users"`
	Books []Book `json:"books"`
}

// Normalize replaces nil collections with empty ones so the document
// always serializes with both arrays present.
func (d *Document) Normalize() {
	if d.Users == nil {
		d.Users = []User{}
	}
	if d.Books == nil {
		d.Books = []Book{}
	}
}

// Clone returns a copy that shares no slices with d.
func (d Document) Clone() Document {
	out := Document{
		Users: make([]User, len(d.Users)),
		Books: make([]Book, len(d.Books)),
	}
	copy(out.Users, d.Users)
	copy(out.Books, d.Books)
	return out
}
