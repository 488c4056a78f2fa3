package dashboard

type UpdateFiltersRequest struct {
	Query       string   `json:"query"`
	Departments []string `json:"departments"`
	MinRating   int      `json:"min_rating" binding:"min=0,max=5"`
	MaxRating   int      `json:"max_rating" binding:"min=0,max=5"`
}

type SetPageRequest struct {
	Page int `json:"page" binding:"required"`
}

type SetPerPageRequest struct {
	PageSize int `json:"page_size" binding:"required,oneof=8 12 16 20"`
}

type SetModeRequest struct {
	Mode string `json:"mode" binding:"required,oneof=paged infinite"`
}
