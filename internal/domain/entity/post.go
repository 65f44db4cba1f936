package entity

import "time"

// Post is a publishable blog entry. Date is the human-readable publication
// date stamped once at creation ("January 2, 2006" style) and never
// rewritten by edits; CreatedAt/UpdatedAt are the machine timestamps.
type Post struct {
	ID        int64
	Title     string
	Subtitle  string
	Body      string
	ImgURL    string
	Date      string
	AuthorID  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DateLayout is the display format for Post.Date.
const DateLayout = "January 2, 2006"
