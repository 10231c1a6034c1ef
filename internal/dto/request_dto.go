package dto

// ExamCreateDTO is the manual creation path: the caller supplies the exact
// question list.
type ExamCreateDTO struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description,omitempty"`
	ClassLevel  string `json:"class_level" binding:"required"`
	Duration    int    `json:"duration" binding:"required,gt=0"`
	Questions   []uint `json:"questions" binding:"required"`
}

// ExamAutoGenerateDTO drives stratified sampling over the question bank.
// ClassLevel defaults to "all" (no filter); Subject is matched as a
// case-insensitive substring.
type ExamAutoGenerateDTO struct {
	Title      string `json:"title" binding:"required"`
	Duration   int    `json:"duration"`
	ClassLevel string `json:"class_level"`
	Subject    string `json:"subject"`
}

// ExamSubmitDTO carries a student's answers keyed by question ID. Questions
// missing from the map are treated as blank.
type ExamSubmitDTO struct {
	StudentID   string          `json:"student_id" binding:"required"`
	StudentName string          `json:"student_name"`
	Answers     map[uint]string `json:"answers" binding:"required"`
}
