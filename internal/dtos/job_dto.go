package dtos

type JobCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location" binding:"required"`

	// Optional Fields
	Company   string   `json:"company"` // defaults to the employer's company name
	Skills    []string `json:"skills"`
	SalaryMin *int     `json:"salary_min"`
	SalaryMax *int     `json:"salary_max"`
}

// JobUpdateRequest is a partial update: nil fields keep their current
// value.
type JobUpdateRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Company     *string   `json:"company"`
	Location    *string   `json:"location"`
	Skills      *[]string `json:"skills"`
	SalaryMin   *int      `json:"salary_min"`
	SalaryMax   *int      `json:"salary_max"`
}
