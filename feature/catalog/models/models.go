package models

// ContentEntry is one published, indexed piece of content.
type ContentEntry struct {
	UID       int64  `gorm:"column:uid;primaryKey;autoIncrement" json:"uid"`
	Namespace string `gorm:"column:namespace" json:"namespace"`
	ContentID int32  `gorm:"column:content_id" json:"content_id"`
	PostID    int32  `gorm:"column:post_id" json:"post_id"`
	Chara     int32  `gorm:"column:chara" json:"chara"`
}

func (ContentEntry) TableName() string {
	return "content_entries"
}

// PostAuthor credits one user on one post.
type PostAuthor struct {
	PostID int32 `gorm:"column:post_id;primaryKey" json:"post_id"`
	UserID int64 `gorm:"column:user_id;primaryKey" json:"user_id"`
}

func (PostAuthor) TableName() string {
	return "post_authors"
}
