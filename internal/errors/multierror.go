package errors

import "strings"

// MultiError collects errors across a flow and reports them as one.
type MultiError struct {
	Name   string
	Errors []error
}

func NewMultiError(name string) *MultiError {
	return &MultiError{Name: name, Errors: []error{}}
}

func (m *MultiError) Append(errs ...error) {
	for _, err := range errs {
		if err == nil {
			continue
		}

		var me *MultiError
		if As(err, &me) {
			m.Errors = append(m.Errors, me.Errors...)
			continue
		}
		m.Errors = append(m.Errors, err)
	}
}

func (m *MultiError) Error() string {
	var sb strings.Builder
	sb.WriteString(m.Name + ":")
	for _, err := range m.Errors {
		sb.WriteString("\n " + err.Error())
	}
	return sb.String()
}

// ToErr returns nil when no error was collected, so the MultiError can be
// returned directly at the end of a flow.
func (m *MultiError) ToErr() error {
	if m == nil || len(m.Errors) == 0 {
		return nil
	}
	return m
}
