package dto

type CommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

type TweetRequest struct {
	Content string `json:"content" binding:"required,min=1,max=500"`
}

type PlaylistRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"required,max=1000"`
}

type PageQuery struct {
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=10" binding:"min=1,max=100"`
}
