package employee

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

var departments = []string{
	"Engineering",
	"Human Resources",
	"Sales",
	"Marketing",
	"Finance",
	"Operations",
	"Customer Support",
	"Product Management",
	"Design",
	"Legal",
}

var bioTemplates = []string{
	"%[1]s %[2]s is a dedicated professional in the %[3]s department with a passion for excellence and innovation.",
	"With years of experience in %[3]s, %[1]s brings valuable expertise and leadership to our team.",
	"%[1]s is known for their collaborative approach and commitment to delivering high-quality results in %[3]s.",
	"A results-driven professional, %[1]s %[2]s consistently exceeds expectations in their role within %[3]s.",
	"%[1]s combines technical expertise with strong communication skills, making them a valuable asset to the %[3]s team.",
}

var projectNames = []string{
	"Customer Portal Redesign",
	"Mobile App Development",
	"Data Analytics Platform",
	"Security Audit",
	"Performance Optimization",
	"User Experience Research",
	"API Integration",
	"Cloud Migration",
	"Automation Framework",
	"Quality Assurance",
}

var projectRoles = []string{
	"Lead Developer", "Project Manager", "Designer", "Analyst", "Consultant", "Coordinator",
}

var projectStatuses = []ProjectStatus{ProjectActive, ProjectCompleted, ProjectOnHold}

var feedbackComments = []string{
	"Excellent work on the recent project. Great attention to detail.",
	"Shows strong leadership skills and helps team members grow.",
	"Consistently delivers high-quality work on time.",
	"Great communication skills and collaborative approach.",
	"Innovative thinking and problem-solving abilities.",
	"Reliable team player who goes above and beyond.",
	"Strong technical skills and willingness to learn.",
	"Positive attitude and great work ethic.",
}

var feedbackAuthors = []string{
	"John Smith", "Sarah Johnson", "Mike Davis", "Emily Brown", "David Wilson", "Lisa Garcia",
}

var quarters = []string{"Q1 2024", "Q2 2024", "Q3 2024", "Q4 2023"}

var goalCatalog = []string{
	"Improve code quality",
	"Enhance team collaboration",
	"Complete certification",
	"Mentor junior developers",
	"Optimize system performance",
	"Implement new features",
}

var achievementCatalog = []string{
	"Reduced bug count by 30%",
	"Led successful project delivery",
	"Improved team productivity",
	"Implemented new process",
	"Received client commendation",
	"Completed training program",
}

// Enricher turns raw upstream users into employees by attaching synthetic
// HR metadata. The random source is injected so tests can seed it; in
// production the output is deliberately non-deterministic, so two
// enrichments of the same user diverge.
type Enricher struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

// NewEnricher builds an enricher around the given source. A nil source
// gets a time-seeded one.
func NewEnricher(rnd *rand.Rand) *Enricher {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Enricher{rnd: rnd, now: time.Now}
}

// Enrich produces an Employee from a raw user. Pure apart from consuming
// randomness; safe for concurrent use.
func (e *Enricher) Enrich(u User) Employee {
	e.mu.Lock()
	defer e.mu.Unlock()

	dept := departments[e.rnd.Intn(len(departments))]
	return Employee{
		User:               u,
		Department:         dept,
		PerformanceRating:  e.rating(),
		Bio:                e.bio(u.FirstName, u.LastName, dept),
		Projects:           e.projects(),
		Feedback:           e.feedbackEntries(),
		PerformanceHistory: e.history(),
	}
}

// EnrichWithDepartment is the creation-form path: the department is caller
// chosen, everything else is generated.
func (e *Enricher) EnrichWithDepartment(u User, dept string) Employee {
	emp := e.Enrich(u)
	if strings.TrimSpace(dept) != "" {
		emp.Department = dept
		e.mu.Lock()
		emp.Bio = e.bio(u.FirstName, u.LastName, dept)
		e.mu.Unlock()
	}
	return emp
}

// NewFeedback generates one synthetic-id feedback entry dated today.
func (e *Enricher) NewFeedback(from, comment string, rating int) Feedback {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Feedback{
		ID:      shortID("feedback"),
		From:    from,
		Comment: comment,
		Rating:  rating,
		Date:    e.now().Format(dateLayout),
	}
}

func (e *Enricher) rating() int {
	return e.rnd.Intn(5) + 1
}

func (e *Enricher) bio(first, last, dept string) string {
	tpl := bioTemplates[e.rnd.Intn(len(bioTemplates))]
	return fmt.Sprintf(tpl, first, last, dept)
}

func (e *Enricher) projects() []Project {
	n := e.rnd.Intn(4) + 1 // 1-4 projects
	out := make([]Project, 0, n)
	now := e.now()

	for i := 0; i < n; i++ {
		p := Project{
			ID:        shortID("proj"),
			Name:      projectNames[e.rnd.Intn(len(projectNames))],
			Role:      projectRoles[e.rnd.Intn(len(projectRoles))],
			Status:    projectStatuses[e.rnd.Intn(len(projectStatuses))],
			StartDate: now.AddDate(0, 0, -e.rnd.Intn(365)).Format(dateLayout),
		}
		if e.rnd.Intn(2) == 0 { // 50% chance of a planned end date
			p.EndDate = now.AddDate(0, 0, e.rnd.Intn(180)).Format(dateLayout)
		}
		out = append(out, p)
	}

	return out
}

func (e *Enricher) feedbackEntries() []Feedback {
	n := e.rnd.Intn(3) + 1 // 1-3 feedback items
	out := make([]Feedback, 0, n)
	now := e.now()

	for i := 0; i < n; i++ {
		out = append(out, Feedback{
			ID:      shortID("feedback"),
			From:    feedbackAuthors[e.rnd.Intn(len(feedbackAuthors))],
			Comment: feedbackComments[e.rnd.Intn(len(feedbackComments))],
			Rating:  e.rating(),
			Date:    now.AddDate(0, 0, -e.rnd.Intn(90)).Format(dateLayout),
		})
	}

	return out
}

func (e *Enricher) history() []PerformanceRecord {
	out := make([]PerformanceRecord, 0, len(quarters))
	for _, q := range quarters {
		out = append(out, PerformanceRecord{
			Quarter:      q,
			Rating:       e.rating(),
			Goals:        prefix(goalCatalog, e.rnd.Intn(3)+1),
			Achievements: prefix(achievementCatalog, e.rnd.Intn(3)+1),
		})
	}
	return out
}

// Departments returns the fixed assignment catalog.
func Departments() []string {
	out := make([]string, len(departments))
	copy(out, departments)
	return out
}

func prefix(catalog []string, n int) []string {
	out := make([]string, n)
	copy(out, catalog[:n])
	return out
}

func shortID(kind string) string {
	return fmt.Sprintf("%s-%s", kind, strings.Split(uuid.New().String(), "-")[0])
}
