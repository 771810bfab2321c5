package dashboard

// DashboardStatsResponse is the payload for GET /dashboard/stats
type DashboardStatsResponse struct {
	TotalEmployees   int64                  `json:"total_employees"`
	PresentToday     int64                  `json:"present_today"`
	AbsentToday      int64                  `json:"absent_today"`
	UnmarkedToday    int64                  `json:"unmarked_today"` // not clamped, can go negative
	Departments      []DepartmentCount      `json:"departments"`
	RecentAttendance []RecentAttendanceItem `json:"recent_attendance"`
}

type DepartmentCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// RecentAttendanceItem represents a single attendance event in the recent list
type RecentAttendanceItem struct {
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`   // Format: "YYYY-MM-DD"
	Status       string `json:"status"` // Present | Absent
}
