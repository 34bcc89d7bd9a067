package models

import (
	"time"
)

// Post is a blog entry owned by exactly one user. CreatedAt is stamped once
// on insert and never rewritten; deletes are hard deletes, so there is no
// soft-delete column.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	User      User      `json:"user,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Title     string    `json:"title" gorm:"not null"`
	Subtitle  string    `json:"subtitle"`
	ImageURL  string    `json:"image_url"`
	Content   string    `json:"content" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

type PostForm struct {
	Title    string `form:"title" binding:"required"`
	Subtitle string `form:"subtitle"`
	ImageURL string `form:"image_url"`
	Content  string `form:"content" binding:"max=10000"`
}

// OwnedBy reports whether userID is the post's owner. It is the sole
// authorization rule for edit and delete.
func (p *Post) OwnedBy(userID uint) bool {
	return p.UserID == userID
}

// PostFormFromPost maps an entity to its editable fields, used to
// prepopulate the edit form.
func PostFormFromPost(p *Post) *PostForm {
	return &PostForm{
		Title:    p.Title,
		Subtitle: p.Subtitle,
		ImageURL: p.ImageURL,
		Content:  p.Content,
	}
}
