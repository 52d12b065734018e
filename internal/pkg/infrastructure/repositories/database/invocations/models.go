package invocations

type Invocation struct {
	ID             uint    `gorm:"primarykey" json:"id"`
	Country        string  `gorm:"index;not null" json:"country"`
	Distance       float64 `json:"distance"`
	NumberRequests float64 `json:"numberRequests"`
}

// TableName keeps the table name used by earlier deployments.
func (Invocation) TableName() string {
	return "invocation"
}
