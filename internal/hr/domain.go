package hr

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Employee is a payroll-bearing staff record.
type Employee struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Position   string          `json:"position"`
	Department string          `json:"department"`
	HireDate   string          `json:"hire_date"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
}

// AttendanceLog is one day's check-in for an employee. CheckOut stays
// empty until the employee leaves.
type AttendanceLog struct {
	ID           string `json:"id"`
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`
	CheckIn      string `json:"check_in"`
	CheckOut     string `json:"check_out,omitempty"`
}

// PayrollRecord is a settled pay period. TotalPay is derived from hours
// and rate at creation and stored with the record.
type PayrollRecord struct {
	ID           string          `json:"id"`
	EmployeeName string          `json:"employee_name"`
	PayPeriod    string          `json:"pay_period"`
	TotalHours   decimal.Decimal `json:"total_hours"`
	HourlyRate   decimal.Decimal `json:"hourly_rate"`
	TotalPay     decimal.Decimal `json:"total_pay"`
}

// State is the HR slice of the shared object graph.
type State struct {
	Employees  []Employee
	Attendance []AttendanceLog
	Payroll    []PayrollRecord
}

// FindEmployeeByName looks an employee up by display name.
func (s *State) FindEmployeeByName(name string) *Employee {
	for i := range s.Employees {
		if s.Employees[i].Name == name {
			return &s.Employees[i]
		}
	}
	return nil
}

// ErrDuplicateEmployee indicates the employee name is already on the roster.
var ErrDuplicateEmployee = errors.New("hr: employee already exists")

// ErrUnknownEmployee indicates the named employee does not exist.
var ErrUnknownEmployee = errors.New("hr: unknown employee")

// ErrInvalidHours rejects a payroll run with non-positive hours.
var ErrInvalidHours = errors.New("hr: total hours must be positive")
