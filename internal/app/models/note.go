package models

import "time"

// Note represents uploaded study notes. The file itself lives in file
// storage; the note only carries the opaque URL.
type Note struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	FileURL   string    `json:"fileUrl" db:"file_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// NoteRating records one user's rating of one note. The store enforces
// at most one row per (note, user); resubmitting replaces value and
// timestamp.
type NoteRating struct {
	ID        int64     `json:"id" db:"id"`
	NoteID    int64     `json:"noteId" db:"note_id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Rating    int       `json:"rating" db:"rating"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
