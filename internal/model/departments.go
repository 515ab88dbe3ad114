package model

// DefaultDepartments lists the departments counted in a doctor's summary
// block when no configuration overrides them.
var DefaultDepartments = []string{"MRI", "CT"}
