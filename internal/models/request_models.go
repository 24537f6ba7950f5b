package models

// CreateQuestionRequest represents the request body for posting a new question.
// TitleEn is validated (non-empty after trimming) in the write service so that
// whitespace-only titles are rejected too; the Chinese fields are optional.
type CreateQuestionRequest struct {
	Category string `json:"category" binding:"required"`
	TitleEn  string `json:"titleEn"`
	TitleZh  string `json:"titleZh,omitempty"`
	DetailEn string `json:"detailEn,omitempty"`
	DetailZh string `json:"detailZh,omitempty"`
}

// CreateSolutionRequest represents the request body for adding a solution to a
// question. ContentEn is validated in the write service; ContentZh is optional.
type CreateSolutionRequest struct {
	ContentEn string `json:"contentEn"`
	ContentZh string `json:"contentZh,omitempty"`
}
