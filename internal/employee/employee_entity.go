package employee

// The entity declarations live in the leaf package internal/employee/model
// so that internal/search can reference them without importing this
// package (which itself imports search). The aliases below keep
// employee.Employee and friends as the identical types.

import "hrboard/internal/employee/model"

type Address = model.Address

type Company = model.Company

type User = model.User

type ProjectStatus = model.ProjectStatus

const (
	ProjectActive    = model.ProjectActive
	ProjectCompleted = model.ProjectCompleted
	ProjectOnHold    = model.ProjectOnHold
)

type Project = model.Project

type Feedback = model.Feedback

type PerformanceRecord = model.PerformanceRecord

type Employee = model.Employee
