package model

import (
	"time"
)

// Post is a single authored entry. On disk it is one file under the author's
// directory: three header lines (title, published timestamp, edited marker)
// followed by the free-form body.
type Post struct {
	Author    string     `json:"author"`
	Title     string     `json:"title"`
	Published time.Time  `json:"published"`
	Edited    *time.Time `json:"edited,omitempty"` // nil until the first edit
	Content   string     `json:"content"`
	Filename  string     `json:"filename"` // opaque id, storage key and URL segment
}
