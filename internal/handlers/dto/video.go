package dto

type PublishVideoRequest struct {
	Title       string  `form:"title" binding:"required,min=1,max=200"`
	Description string  `form:"description" binding:"required"`
	Duration    float64 `form:"duration" binding:"required,gt=0"`
}

type UpdateVideoRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	Thumbnail   *string `json:"thumbnail" binding:"omitempty,url"`
}

type VideoListQuery struct {
	Page     int    `form:"page,default=1" binding:"min=1"`
	Limit    int    `form:"limit,default=10" binding:"min=1,max=100"`
	Query    string `form:"query"`
	SortBy   string `form:"sortBy,default=createdAt"`
	SortType string `form:"sortType,default=desc"`
	UserID   string `form:"userId" binding:"omitempty,uuid"`
}
