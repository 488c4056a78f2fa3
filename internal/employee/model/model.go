package model

// Address is the upstream user's address sub-object. Only the fields the
// dashboard renders are kept.
type Address struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	StateCode  string `json:"stateCode"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Company is the upstream user's employer sub-object.
type Company struct {
	Department string `json:"department"`
	Name       string `json:"name"`
	Title      string `json:"title"`
}

// User is the raw record shape served by the upstream test API.
type User struct {
	ID         int     `json:"id"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	MaidenName string  `json:"maidenName"`
	Age        int     `json:"age"`
	Gender     string  `json:"gender"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Username   string  `json:"username"`
	BirthDate  string  `json:"birthDate"`
	Image      string  `json:"image"`
	University string  `json:"university"`
	Address    Address `json:"address"`
	Company    Company `json:"company"`
	Role       string  `json:"role"`
}

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectOnHold    ProjectStatus = "on-hold"
)

// Project is immutable once generated.
type Project struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Role      string        `json:"role"`
	Status    ProjectStatus `json:"status"`
	StartDate string        `json:"startDate"`
	EndDate   string        `json:"endDate,omitempty"`
}

type Feedback struct {
	ID      string `json:"id"`
	From    string `json:"from"`
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
	Date    string `json:"date"`
}

// PerformanceRecord is one fiscal quarter of history, generated once at
// enrichment time.
type PerformanceRecord struct {
	Quarter      string   `json:"quarter"`
	Rating       int      `json:"rating"`
	Goals        []string `json:"goals"`
	Achievements []string `json:"achievements"`
}

// Employee is an upstream user augmented with synthetic HR metadata.
// Department and PerformanceRating are assigned once at enrichment time
// and never mutated; PerformanceRating is always within [1,5].
type Employee struct {
	User
	Department         string              `json:"department"`
	PerformanceRating  int                 `json:"performanceRating"`
	Bio                string              `json:"bio,omitempty"`
	Projects           []Project           `json:"projects,omitempty"`
	Feedback           []Feedback          `json:"feedback,omitempty"`
	PerformanceHistory []PerformanceRecord `json:"performanceHistory,omitempty"`
}
