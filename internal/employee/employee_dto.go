package employee

type CreateEmployeeRequest struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone"`
	Age        int    `json:"age" binding:"omitempty,min=18,max=100"`
	Department string `json:"department"`
}

type AddFeedbackRequest struct {
	From    string `json:"from" binding:"required"`
	Comment string `json:"comment" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}
