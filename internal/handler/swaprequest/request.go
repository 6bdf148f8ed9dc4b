package swaprequest

type CreateRequest struct {
	RecipientID    uint   `json:"recipient_id" binding:"required" validate:"required"`
	OfferedSkill   string `json:"offered_skill" binding:"required" validate:"required,max=50"`
	RequestedSkill string `json:"requested_skill" binding:"required" validate:"required,max=50"`
	Message        string `json:"message" validate:"max=500"`
}

type RespondRequest struct {
	Decision        string `json:"decision" binding:"required,oneof=accept reject"`
	ResponseMessage string `json:"response_message" validate:"max=500"`
}

type SubmitRatingRequest struct {
	Score   int    `json:"score" binding:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=500"`
}
