package hr

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/abkrino/cozmo-factor/internal/shared"
)

// StateStore is the slice of the store HR needs.
type StateStore interface {
	UpdateHR(fn func(*State) error) error
	ViewHR(fn func(State))
}

// Service owns staff, attendance and payroll commands.
type Service struct {
	store StateStore
	clock shared.Clock
}

// NewService wires the HR service.
func NewService(store StateStore, clock shared.Clock) *Service {
	return &Service{store: store, clock: clock}
}

// NewEmployeeInput carries the hire form.
type NewEmployeeInput struct {
	Name       string
	Position   string
	Department string
	HourlyRate decimal.Decimal
}

// AddEmployee hires a staff member. Names key attendance and payroll, so
// they must be unique.
func (s *Service) AddEmployee(in NewEmployeeInput) (Employee, error) {
	emp := Employee{
		ID:         shared.NewCode("EMP"),
		Name:       in.Name,
		Position:   in.Position,
		Department: in.Department,
		HireDate:   s.clock.Today(),
		HourlyRate: in.HourlyRate,
	}
	err := s.store.UpdateHR(func(st *State) error {
		if st.FindEmployeeByName(in.Name) != nil {
			return fmt.Errorf("add employee %q: %w", in.Name, ErrDuplicateEmployee)
		}
		st.Employees = append(st.Employees, emp)
		return nil
	})
	if err != nil {
		return Employee{}, err
	}
	return emp, nil
}

// ListEmployees returns a copy of the roster.
func (s *Service) ListEmployees() []Employee {
	var out []Employee
	s.store.ViewHR(func(st State) {
		out = append([]Employee(nil), st.Employees...)
	})
	return out
}

// CheckIn opens today's attendance log for an employee.
func (s *Service) CheckIn(employeeName, at string) (AttendanceLog, error) {
	log := AttendanceLog{
		ID:           shared.NewCode("ATT"),
		EmployeeName: employeeName,
		Date:         s.clock.Today(),
		CheckIn:      at,
	}
	err := s.store.UpdateHR(func(st *State) error {
		if st.FindEmployeeByName(employeeName) == nil {
			return fmt.Errorf("check in %q: %w", employeeName, ErrUnknownEmployee)
		}
		st.Attendance = append(st.Attendance, log)
		return nil
	})
	if err != nil {
		return AttendanceLog{}, err
	}
	return log, nil
}

// CheckOut closes the employee's most recent open log for today.
func (s *Service) CheckOut(employeeName, at string) (AttendanceLog, error) {
	var updated AttendanceLog
	err := s.store.UpdateHR(func(st *State) error {
		today := s.clock.Today()
		for i := len(st.Attendance) - 1; i >= 0; i-- {
			l := &st.Attendance[i]
			if l.EmployeeName == employeeName && l.Date == today && l.CheckOut == "" {
				l.CheckOut = at
				updated = *l
				return nil
			}
		}
		return fmt.Errorf("check out %q: %w", employeeName, ErrUnknownEmployee)
	})
	if err != nil {
		return AttendanceLog{}, err
	}
	return updated, nil
}

// ListAttendance returns a copy of the attendance logs.
func (s *Service) ListAttendance() []AttendanceLog {
	var out []AttendanceLog
	s.store.ViewHR(func(st State) {
		out = append([]AttendanceLog(nil), st.Attendance...)
	})
	return out
}

// RunPayroll settles a pay period for one employee. The rate is read from
// the roster at run time, so a raise affects only later periods.
func (s *Service) RunPayroll(employeeName, payPeriod string, totalHours decimal.Decimal) (PayrollRecord, error) {
	if !totalHours.IsPositive() {
		return PayrollRecord{}, ErrInvalidHours
	}
	var record PayrollRecord
	err := s.store.UpdateHR(func(st *State) error {
		emp := st.FindEmployeeByName(employeeName)
		if emp == nil {
			return fmt.Errorf("run payroll for %q: %w", employeeName, ErrUnknownEmployee)
		}
		record = PayrollRecord{
			ID:           shared.NewCode("PAY"),
			EmployeeName: employeeName,
			PayPeriod:    payPeriod,
			TotalHours:   totalHours,
			HourlyRate:   emp.HourlyRate,
			TotalPay:     totalHours.Mul(emp.HourlyRate),
		}
		st.Payroll = append([]PayrollRecord{record}, st.Payroll...)
		return nil
	})
	if err != nil {
		return PayrollRecord{}, err
	}
	return record, nil
}

// ListPayroll returns settled pay periods, newest first.
func (s *Service) ListPayroll() []PayrollRecord {
	var out []PayrollRecord
	s.store.ViewHR(func(st State) {
		out = append([]PayrollRecord(nil), st.Payroll...)
	})
	return out
}
